package model

import (
	"adbook/shared/model"
	"time"

	"github.com/shopspring/decimal"
)

const (
	EntityName = "placement"

	CopySuffix = " - Copy"
)

type Placement struct {
	ID            string `json:"id"`
	DealID        string `json:"deal_id"`
	PlacementName string `json:"placement_name"`

	BrandName       string   `json:"brand_name"`
	AdServer        string   `json:"ad_server"`
	BuyType         string   `json:"buy_type"`
	AdFormat        string   `json:"ad_format"`
	SpotType        string   `json:"spot_type"`
	Platform        string   `json:"platform"`
	TimeBand        string   `json:"time_band"`
	CreativeIDs     []string `json:"creative_ids"`
	RONumber        string   `json:"ro_number"`
	Stream          string   `json:"stream"`
	MaterialNumber  string   `json:"material_number"`
	Targeting       string   `json:"targeting"`
	CampaignManager string   `json:"campaign_manager"`
	Comments        string   `json:"comments"`

	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`

	// Currency terms are copied from the parent deal at creation time and do
	// not follow later deal edits.
	DealCurrency      string          `json:"deal_currency"`
	ExecutionCurrency string          `json:"execution_currency"`
	ConversionRate    decimal.Decimal `json:"conversion_rate"`

	BookedQuantity decimal.Decimal `json:"booked_quantity"`
	Rate           decimal.Decimal `json:"rate"`

	TotalSpots    int64           `json:"total_spots"`
	BookedRevenue decimal.Decimal `json:"booked_revenue"`

	DeliveredQuantity int64           `json:"delivered_quantity"`
	DeliveredRevenue  decimal.Decimal `json:"delivered_revenue"`

	Status string `json:"status"`
	model.Metadata
}

func (p Placement) GetID() string {
	return p.ID
}

// BalanceRevenue is the booked amount not yet delivered.
func (p Placement) BalanceRevenue() decimal.Decimal {
	return p.BookedRevenue.Sub(p.DeliveredRevenue)
}

// RemainingQuantity is the spot count not yet delivered.
func (p Placement) RemainingQuantity() int64 {
	return p.TotalSpots - p.DeliveredQuantity
}
