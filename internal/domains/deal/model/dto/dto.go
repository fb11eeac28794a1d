package dto

import (
	"adbook/internal/domains/deal/model"
	"adbook/shared"
	"adbook/shared/constant"
	gDto "adbook/shared/dto"
	"adbook/shared/id"
	gModel "adbook/shared/model"
	"adbook/shared/money"
	"adbook/shared/timezone"

	"github.com/shopspring/decimal"
)

type CreateDealRequest struct {
	DealName        string   `json:"deal_name"        validate:"required,max=200"`
	Vertical        string   `json:"vertical"         validate:"omitempty,max=100"`
	DealType        string   `json:"deal_type"        validate:"omitempty,max=100"`
	AdvertiserName  string   `json:"advertiser_name"  validate:"omitempty,max=200"`
	AgencyName      string   `json:"agency_name"      validate:"omitempty,max=200"`
	ClientNames     []string `json:"client_names"     validate:"omitempty,dive,max=200"`
	BrandNames      []string `json:"brand_names"      validate:"omitempty,dive,max=200"`
	ChannelNames    []string `json:"channel_names"    validate:"omitempty,dive,max=200"`
	ProductCategory string   `json:"product_category" validate:"omitempty,max=100"`
	SalesPerson     string   `json:"sales_person"     validate:"omitempty,max=100"`
	Plant           string   `json:"plant"            validate:"omitempty,max=100"`
	Zone            string   `json:"zone"             validate:"omitempty,max=100"`
	SalesGroup      string   `json:"sales_group"      validate:"omitempty,max=100"`

	StartDate string `json:"start_date" validate:"required"`
	EndDate   string `json:"end_date"   validate:"required"`

	DealCurrency   string          `json:"deal_currency" validate:"required,max=10"`
	ConversionRate decimal.Decimal `json:"conversion_rate"`
	BookedRevenue  decimal.Decimal `json:"booked_revenue"`

	Comments string `json:"comments" validate:"omitempty"`
}

func (c *CreateDealRequest) ToModel(user string) (model.Deal, error) {
	startDate, err := timezone.Parse(constant.DayFormat, c.StartDate)
	if err != nil {
		return model.Deal{}, err
	}

	endDate, err := timezone.Parse(constant.DayFormat, c.EndDate)
	if err != nil {
		return model.Deal{}, err
	}

	return model.Deal{
		ID:                id.New(constant.DealIDPrefix),
		DealName:          c.DealName,
		Vertical:          c.Vertical,
		DealType:          c.DealType,
		AdvertiserName:    c.AdvertiserName,
		AgencyName:        c.AgencyName,
		ClientNames:       c.ClientNames,
		BrandNames:        c.BrandNames,
		ChannelNames:      c.ChannelNames,
		ProductCategory:   c.ProductCategory,
		SalesPerson:       c.SalesPerson,
		Plant:             c.Plant,
		Zone:              c.Zone,
		SalesGroup:        c.SalesGroup,
		StartDate:         startDate,
		EndDate:           endDate,
		DealCurrency:      c.DealCurrency,
		ExecutionCurrency: constant.CurrencyINR,
		ConversionRate:    c.ConversionRate,
		BookedRevenue:     c.BookedRevenue,
		DealStatus:        constant.StatusActive,
		Comments:          c.Comments,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}, nil
}

type UpdateDealRequest struct {
	DealName        *string  `json:"deal_name"        validate:"omitempty,max=200"`
	Vertical        *string  `json:"vertical"         validate:"omitempty,max=100"`
	DealType        *string  `json:"deal_type"        validate:"omitempty,max=100"`
	AdvertiserName  *string  `json:"advertiser_name"  validate:"omitempty,max=200"`
	AgencyName      *string  `json:"agency_name"      validate:"omitempty,max=200"`
	ClientNames     []string `json:"client_names"     validate:"omitempty,dive,max=200"`
	BrandNames      []string `json:"brand_names"      validate:"omitempty,dive,max=200"`
	ChannelNames    []string `json:"channel_names"    validate:"omitempty,dive,max=200"`
	ProductCategory *string  `json:"product_category" validate:"omitempty,max=100"`
	SalesPerson     *string  `json:"sales_person"     validate:"omitempty,max=100"`
	Plant           *string  `json:"plant"            validate:"omitempty,max=100"`
	Zone            *string  `json:"zone"             validate:"omitempty,max=100"`
	SalesGroup      *string  `json:"sales_group"      validate:"omitempty,max=100"`

	StartDate *string `json:"start_date" validate:"omitempty"`
	EndDate   *string `json:"end_date"   validate:"omitempty"`

	DealCurrency   *string          `json:"deal_currency" validate:"omitempty,max=10"`
	ConversionRate *decimal.Decimal `json:"conversion_rate"`
	BookedRevenue  *decimal.Decimal `json:"booked_revenue"`

	Comments *string `json:"comments" validate:"omitempty"`
}

// IsEmpty reports whether the request carries no field at all.
func (u *UpdateDealRequest) IsEmpty() bool {
	return u.DealName == nil && u.Vertical == nil && u.DealType == nil &&
		u.AdvertiserName == nil && u.AgencyName == nil &&
		u.ClientNames == nil && u.BrandNames == nil && u.ChannelNames == nil &&
		u.ProductCategory == nil && u.SalesPerson == nil && u.Plant == nil &&
		u.Zone == nil && u.SalesGroup == nil &&
		u.StartDate == nil && u.EndDate == nil &&
		u.DealCurrency == nil && u.ConversionRate == nil && u.BookedRevenue == nil &&
		u.Comments == nil
}

// ApplyTo merges the supplied fields over the existing deal and stamps the
// modifying user. Fields absent from the request keep their stored value.
func (u *UpdateDealRequest) ApplyTo(deal *model.Deal, user string) error {
	if u.DealName != nil {
		deal.DealName = *u.DealName
	}

	if u.Vertical != nil {
		deal.Vertical = *u.Vertical
	}

	if u.DealType != nil {
		deal.DealType = *u.DealType
	}

	if u.AdvertiserName != nil {
		deal.AdvertiserName = *u.AdvertiserName
	}

	if u.AgencyName != nil {
		deal.AgencyName = *u.AgencyName
	}

	if u.ClientNames != nil {
		deal.ClientNames = u.ClientNames
	}

	if u.BrandNames != nil {
		deal.BrandNames = u.BrandNames
	}

	if u.ChannelNames != nil {
		deal.ChannelNames = u.ChannelNames
	}

	if u.ProductCategory != nil {
		deal.ProductCategory = *u.ProductCategory
	}

	if u.SalesPerson != nil {
		deal.SalesPerson = *u.SalesPerson
	}

	if u.Plant != nil {
		deal.Plant = *u.Plant
	}

	if u.Zone != nil {
		deal.Zone = *u.Zone
	}

	if u.SalesGroup != nil {
		deal.SalesGroup = *u.SalesGroup
	}

	if u.StartDate != nil {
		startDate, err := timezone.Parse(constant.DayFormat, *u.StartDate)
		if err != nil {
			return err
		}

		deal.StartDate = startDate
	}

	if u.EndDate != nil {
		endDate, err := timezone.Parse(constant.DayFormat, *u.EndDate)
		if err != nil {
			return err
		}

		deal.EndDate = endDate
	}

	if u.DealCurrency != nil {
		deal.DealCurrency = *u.DealCurrency
	}

	if u.ConversionRate != nil {
		deal.ConversionRate = *u.ConversionRate
	}

	if u.BookedRevenue != nil {
		deal.BookedRevenue = *u.BookedRevenue
	}

	if u.Comments != nil {
		deal.Comments = *u.Comments
	}

	deal.ModifiedAt = timezone.Now()
	deal.ModifiedBy = user

	return nil
}

type DealResponse struct {
	ID              string `json:"id"`
	DealName        string `json:"deal_name"`
	Vertical        string `json:"vertical"`
	DealType        string `json:"deal_type"`
	AdvertiserName  string `json:"advertiser_name"`
	AgencyName      string `json:"agency_name"`
	ClientName      string `json:"client_name"`
	BrandName       string `json:"brand_name"`
	ChannelName     string `json:"channel_name"`
	ProductCategory string `json:"product_category"`
	SalesPerson     string `json:"sales_person"`
	Plant           string `json:"plant"`
	Zone            string `json:"zone"`
	SalesGroup      string `json:"sales_group"`

	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`

	DealCurrency      string `json:"deal_currency"`
	ExecutionCurrency string `json:"execution_currency"`
	ConversionRate    string `json:"conversion_rate"`

	BookedRevenue             string `json:"booked_revenue"`
	BookedRevenueDealCurrency string `json:"booked_revenue_deal_currency"`
	BookedRevenueExecCurrency string `json:"booked_revenue_exec_currency"`

	DealStatus string `json:"deal_status"`
	Comments   string `json:"comments"`
	gDto.Metadata
}

func (r *DealResponse) FromModel(deal model.Deal) {
	r.ID = deal.ID
	r.DealName = deal.DealName
	r.Vertical = deal.Vertical
	r.DealType = deal.DealType
	r.AdvertiserName = deal.AdvertiserName
	r.AgencyName = deal.AgencyName
	r.ClientName = shared.JoinMulti(deal.ClientNames)
	r.BrandName = shared.JoinMulti(deal.BrandNames)
	r.ChannelName = shared.JoinMulti(deal.ChannelNames)
	r.ProductCategory = deal.ProductCategory
	r.SalesPerson = deal.SalesPerson
	r.Plant = deal.Plant
	r.Zone = deal.Zone
	r.SalesGroup = deal.SalesGroup
	r.StartDate = deal.StartDate.Format(constant.DayFormat)
	r.EndDate = deal.EndDate.Format(constant.DayFormat)
	r.DealCurrency = deal.DealCurrency
	r.ExecutionCurrency = deal.ExecutionCurrency
	r.ConversionRate = deal.ConversionRate.String()
	// Deal-level revenue figures render with Indian digit grouping; line-level
	// amounts elsewhere stay plain fixed-point.
	r.BookedRevenue = money.Format(deal.BookedRevenue)
	r.BookedRevenueDealCurrency = money.Format(deal.BookedRevenueDealCurrency)
	r.BookedRevenueExecCurrency = money.Format(deal.BookedRevenueExecCurrency)
	r.DealStatus = deal.DealStatus
	r.Comments = deal.Comments
	r.Metadata.FromModel(deal.Metadata)
}

type GetDealsResponse struct {
	Deals     []DealResponse `json:"deals"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func (r *GetDealsResponse) FromModels(models []model.Deal, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Deals = make([]DealResponse, len(models))
	for i, mod := range models {
		r.Deals[i].FromModel(mod)
	}
}
