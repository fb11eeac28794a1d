package model

import (
	"adbook/shared/model"
	"time"

	"github.com/shopspring/decimal"
)

const (
	EntityName = "deal"
)

type Deal struct {
	ID              string   `json:"id"`
	DealName        string   `json:"deal_name"`
	Vertical        string   `json:"vertical"`
	DealType        string   `json:"deal_type"`
	AdvertiserName  string   `json:"advertiser_name"`
	AgencyName      string   `json:"agency_name"`
	ClientNames     []string `json:"client_names"`
	BrandNames      []string `json:"brand_names"`
	ChannelNames    []string `json:"channel_names"`
	ProductCategory string   `json:"product_category"`
	SalesPerson     string   `json:"sales_person"`
	Plant           string   `json:"plant"`
	Zone            string   `json:"zone"`
	SalesGroup      string   `json:"sales_group"`

	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`

	DealCurrency      string          `json:"deal_currency"`
	ExecutionCurrency string          `json:"execution_currency"`
	ConversionRate    decimal.Decimal `json:"conversion_rate"`

	BookedRevenue             decimal.Decimal `json:"booked_revenue"`
	BookedRevenueDealCurrency decimal.Decimal `json:"booked_revenue_deal_currency"`
	BookedRevenueExecCurrency decimal.Decimal `json:"booked_revenue_exec_currency"`

	DealStatus string `json:"deal_status"`
	Comments   string `json:"comments"`
	model.Metadata
}

func (d Deal) GetID() string {
	return d.ID
}
