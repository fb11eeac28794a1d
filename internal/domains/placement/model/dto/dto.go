package dto

import (
	"adbook/internal/domains/placement/model"
	"adbook/shared"
	"adbook/shared/constant"
	gDto "adbook/shared/dto"
	"adbook/shared/id"
	gModel "adbook/shared/model"
	"adbook/shared/money"
	"adbook/shared/timezone"
	"strconv"

	"github.com/shopspring/decimal"
)

type CreatePlacementRequest struct {
	BrandName       string   `json:"brand_name"       validate:"omitempty,max=200"`
	AdServer        string   `json:"ad_server"        validate:"omitempty,max=100"`
	BuyType         string   `json:"buy_type"         validate:"omitempty,max=100"`
	AdFormat        string   `json:"ad_format"        validate:"omitempty,max=100"`
	SpotType        string   `json:"spot_type"        validate:"omitempty,max=100"`
	Platform        string   `json:"platform"         validate:"omitempty,max=100"`
	TimeBand        string   `json:"time_band"        validate:"omitempty,max=100"`
	CreativeIDs     []string `json:"creative_ids"     validate:"omitempty,dive,max=100"`
	RONumber        string   `json:"ro_number"        validate:"omitempty,max=100"`
	Stream          string   `json:"stream"           validate:"omitempty,max=100"`
	MaterialNumber  string   `json:"material_number"  validate:"omitempty,max=100"`
	Targeting       string   `json:"targeting"        validate:"omitempty,max=200"`
	CampaignManager string   `json:"campaign_manager" validate:"omitempty,max=100"`
	Comments        string   `json:"comments"         validate:"omitempty"`

	StartDate string `json:"start_date" validate:"required"`
	EndDate   string `json:"end_date"   validate:"required"`

	BookedQuantity decimal.Decimal `json:"booked_quantity"`
	Rate           decimal.Decimal `json:"rate"`
}

func (c *CreatePlacementRequest) ToModel(dealID, user string) (model.Placement, error) {
	startDate, err := timezone.Parse(constant.DayFormat, c.StartDate)
	if err != nil {
		return model.Placement{}, err
	}

	endDate, err := timezone.Parse(constant.DayFormat, c.EndDate)
	if err != nil {
		return model.Placement{}, err
	}

	return model.Placement{
		ID:              id.New(constant.PlacementIDPrefix),
		DealID:          dealID,
		BrandName:       c.BrandName,
		AdServer:        c.AdServer,
		BuyType:         c.BuyType,
		AdFormat:        c.AdFormat,
		SpotType:        c.SpotType,
		Platform:        c.Platform,
		TimeBand:        c.TimeBand,
		CreativeIDs:     c.CreativeIDs,
		RONumber:        c.RONumber,
		Stream:          c.Stream,
		MaterialNumber:  c.MaterialNumber,
		Targeting:       c.Targeting,
		CampaignManager: c.CampaignManager,
		Comments:        c.Comments,
		StartDate:       startDate,
		EndDate:         endDate,
		BookedQuantity:  c.BookedQuantity,
		Rate:            c.Rate,
		Status:          constant.StatusActive,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}, nil
}

type UpdatePlacementRequest struct {
	BrandName       *string  `json:"brand_name"       validate:"omitempty,max=200"`
	AdServer        *string  `json:"ad_server"        validate:"omitempty,max=100"`
	BuyType         *string  `json:"buy_type"         validate:"omitempty,max=100"`
	AdFormat        *string  `json:"ad_format"        validate:"omitempty,max=100"`
	SpotType        *string  `json:"spot_type"        validate:"omitempty,max=100"`
	Platform        *string  `json:"platform"         validate:"omitempty,max=100"`
	TimeBand        *string  `json:"time_band"        validate:"omitempty,max=100"`
	CreativeIDs     []string `json:"creative_ids"     validate:"omitempty,dive,max=100"`
	RONumber        *string  `json:"ro_number"        validate:"omitempty,max=100"`
	Stream          *string  `json:"stream"           validate:"omitempty,max=100"`
	MaterialNumber  *string  `json:"material_number"  validate:"omitempty,max=100"`
	Targeting       *string  `json:"targeting"        validate:"omitempty,max=200"`
	CampaignManager *string  `json:"campaign_manager" validate:"omitempty,max=100"`
	Comments        *string  `json:"comments"         validate:"omitempty"`

	StartDate *string `json:"start_date" validate:"omitempty"`
	EndDate   *string `json:"end_date"   validate:"omitempty"`

	BookedQuantity *decimal.Decimal `json:"booked_quantity"`
	Rate           *decimal.Decimal `json:"rate"`
}

// IsEmpty reports whether the request carries no field at all.
func (u *UpdatePlacementRequest) IsEmpty() bool {
	return u.BrandName == nil && u.AdServer == nil && u.BuyType == nil &&
		u.AdFormat == nil && u.SpotType == nil && u.Platform == nil &&
		u.TimeBand == nil && u.CreativeIDs == nil && u.RONumber == nil &&
		u.Stream == nil && u.MaterialNumber == nil && u.Targeting == nil &&
		u.CampaignManager == nil && u.Comments == nil &&
		u.StartDate == nil && u.EndDate == nil &&
		u.BookedQuantity == nil && u.Rate == nil
}

// ApplyTo merges the supplied fields over the existing placement and stamps
// the modifying user. Fields absent from the request keep their stored value.
func (u *UpdatePlacementRequest) ApplyTo(placement *model.Placement, user string) error {
	if u.BrandName != nil {
		placement.BrandName = *u.BrandName
	}

	if u.AdServer != nil {
		placement.AdServer = *u.AdServer
	}

	if u.BuyType != nil {
		placement.BuyType = *u.BuyType
	}

	if u.AdFormat != nil {
		placement.AdFormat = *u.AdFormat
	}

	if u.SpotType != nil {
		placement.SpotType = *u.SpotType
	}

	if u.Platform != nil {
		placement.Platform = *u.Platform
	}

	if u.TimeBand != nil {
		placement.TimeBand = *u.TimeBand
	}

	if u.CreativeIDs != nil {
		placement.CreativeIDs = u.CreativeIDs
	}

	if u.RONumber != nil {
		placement.RONumber = *u.RONumber
	}

	if u.Stream != nil {
		placement.Stream = *u.Stream
	}

	if u.MaterialNumber != nil {
		placement.MaterialNumber = *u.MaterialNumber
	}

	if u.Targeting != nil {
		placement.Targeting = *u.Targeting
	}

	if u.CampaignManager != nil {
		placement.CampaignManager = *u.CampaignManager
	}

	if u.Comments != nil {
		placement.Comments = *u.Comments
	}

	if u.StartDate != nil {
		startDate, err := timezone.Parse(constant.DayFormat, *u.StartDate)
		if err != nil {
			return err
		}

		placement.StartDate = startDate
	}

	if u.EndDate != nil {
		endDate, err := timezone.Parse(constant.DayFormat, *u.EndDate)
		if err != nil {
			return err
		}

		placement.EndDate = endDate
	}

	if u.BookedQuantity != nil {
		placement.BookedQuantity = *u.BookedQuantity
	}

	if u.Rate != nil {
		placement.Rate = *u.Rate
	}

	placement.ModifiedAt = timezone.Now()
	placement.ModifiedBy = user

	return nil
}

type PlacementResponse struct {
	ID            string `json:"id"`
	DealID        string `json:"deal_id"`
	PlacementName string `json:"placement_name"`

	BrandName       string `json:"brand_name"`
	AdServer        string `json:"ad_server"`
	BuyType         string `json:"buy_type"`
	AdFormat        string `json:"ad_format"`
	SpotType        string `json:"spot_type"`
	Platform        string `json:"platform"`
	TimeBand        string `json:"time_band"`
	CreativeID      string `json:"creative_id"`
	RONumber        string `json:"ro_number"`
	Stream          string `json:"stream"`
	MaterialNumber  string `json:"material_number"`
	Targeting       string `json:"targeting"`
	CampaignManager string `json:"campaign_manager"`
	Comments        string `json:"comments"`

	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`

	DealCurrency      string `json:"deal_currency"`
	ExecutionCurrency string `json:"execution_currency"`
	ConversionRate    string `json:"conversion_rate"`

	BookedQuantity string `json:"booked_quantity"`
	Rate           string `json:"rate"`

	TotalSpots    int64  `json:"total_spots"`
	BookedRevenue string `json:"booked_revenue"`

	DeliveredQuantity int64  `json:"delivered_quantity"`
	DeliveredRevenue  string `json:"delivered_revenue"`
	BalanceRevenue    string `json:"balance_revenue"`
	RemainingQuantity int64  `json:"remaining_quantity"`

	Status string `json:"status"`
	gDto.Metadata
}

func (r *PlacementResponse) FromModel(placement model.Placement) {
	r.ID = placement.ID
	r.DealID = placement.DealID
	r.PlacementName = placement.PlacementName
	r.BrandName = placement.BrandName
	r.AdServer = placement.AdServer
	r.BuyType = placement.BuyType
	r.AdFormat = placement.AdFormat
	r.SpotType = placement.SpotType
	r.Platform = placement.Platform
	r.TimeBand = placement.TimeBand
	r.CreativeID = shared.JoinMulti(placement.CreativeIDs)
	r.RONumber = placement.RONumber
	r.Stream = placement.Stream
	r.MaterialNumber = placement.MaterialNumber
	r.Targeting = placement.Targeting
	r.CampaignManager = placement.CampaignManager
	r.Comments = placement.Comments
	r.StartDate = placement.StartDate.Format(constant.DayFormat)
	r.EndDate = placement.EndDate.Format(constant.DayFormat)
	r.DealCurrency = placement.DealCurrency
	r.ExecutionCurrency = placement.ExecutionCurrency
	r.ConversionRate = placement.ConversionRate.String()
	r.BookedQuantity = strconv.FormatInt(placement.BookedQuantity.IntPart(), 10)
	r.Rate = placement.Rate.String()
	r.TotalSpots = placement.TotalSpots
	r.BookedRevenue = money.Display(placement.BookedRevenue)
	r.DeliveredQuantity = placement.DeliveredQuantity
	r.DeliveredRevenue = money.Display(placement.DeliveredRevenue)
	r.BalanceRevenue = money.Display(placement.BalanceRevenue())
	r.RemainingQuantity = placement.RemainingQuantity()
	r.Status = placement.Status
	r.Metadata.FromModel(placement.Metadata)
}

type GetPlacementsResponse struct {
	Placements []PlacementResponse `json:"placements"`
	TotalData  int                 `json:"total_data"`
}

func (r *GetPlacementsResponse) FromModels(models []model.Placement) {
	r.TotalData = len(models)

	r.Placements = make([]PlacementResponse, len(models))
	for i, mod := range models {
		r.Placements[i].FromModel(mod)
	}
}
