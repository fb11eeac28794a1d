package dto

import (
	"adbook/internal/domains/booking/model"
	placementModel "adbook/internal/domains/placement/model"
	"adbook/shared/constant"
	"adbook/shared/money"

	"github.com/shopspring/decimal"
)

type RowRequest struct {
	PlacementID      string `json:"placement_id"      validate:"required"`
	Duration         int    `json:"duration"          validate:"required"`
	CreativeID       string `json:"creative_id"       validate:"omitempty,max=100"`
	TimeBand         string `json:"time_band"         validate:"omitempty,max=100"`
	DistributionType string `json:"distribution_type" validate:"omitempty,max=100"`
	Playlist         string `json:"playlist"          validate:"omitempty,max=100"`
	Priority         int    `json:"priority"          validate:"omitempty,min=1"`

	DailySpots []int           `json:"daily_spots" validate:"required"`
	Rate       decimal.Decimal `json:"rate"`
}

func (r *RowRequest) ToRow() model.Row {
	return model.Row{
		PlacementID:      r.PlacementID,
		Duration:         r.Duration,
		CreativeID:       r.CreativeID,
		TimeBand:         r.TimeBand,
		DistributionType: r.DistributionType,
		Playlist:         r.Playlist,
		Priority:         r.Priority,
		DailySpots:       r.DailySpots,
		Rate:             r.Rate,
	}
}

type SaveGridRequest struct {
	PlacementID string       `json:"placement_id" validate:"required"`
	Rows        []RowRequest `json:"rows"         validate:"required,min=1,dive"`
}

type RowResponse struct {
	PlacementID      string `json:"placement_id"`
	Duration         int    `json:"duration"`
	CreativeID       string `json:"creative_id"`
	TimeBand         string `json:"time_band"`
	DistributionType string `json:"distribution_type"`
	Playlist         string `json:"playlist"`
	Priority         int    `json:"priority"`

	DailySpots []int  `json:"daily_spots"`
	Rate       string `json:"rate"`

	TotalSpots   int    `json:"total_spots"`
	TotalSeconds int    `json:"total_seconds"`
	TotalAmount  string `json:"total_amount"`
}

func (r *RowResponse) FromModel(row model.Row) {
	r.PlacementID = row.PlacementID
	r.Duration = row.Duration
	r.CreativeID = row.CreativeID
	r.TimeBand = row.TimeBand
	r.DistributionType = row.DistributionType
	r.Playlist = row.Playlist
	r.Priority = row.Priority
	r.DailySpots = row.DailySpots
	r.Rate = row.Rate.String()
	r.TotalSpots = row.TotalSpots
	r.TotalSeconds = row.TotalSeconds
	r.TotalAmount = money.Display(row.TotalAmount)
}

type PlacementOption struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type GridResponse struct {
	DealID      string `json:"deal_id"`
	PlacementID string `json:"placement_id"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`

	Days             []string          `json:"days"`
	PlacementOptions []PlacementOption `json:"placement_options"`
	Durations        []int             `json:"durations"`
	Rows             []RowResponse     `json:"rows"`
}

func (r *GridResponse) FromModels(set model.BookingSet, placementID string, placements []placementModel.Placement) {
	r.DealID = set.DealID
	r.PlacementID = placementID
	r.StartDate = set.StartDate.Format(constant.DayFormat)
	r.EndDate = set.EndDate.Format(constant.DayFormat)
	r.Durations = model.Durations

	dayCount := set.DayCount()
	r.Days = make([]string, dayCount)

	for i := range dayCount {
		r.Days[i] = set.StartDate.AddDate(0, 0, i).Format(constant.DayFormat)
	}

	r.PlacementOptions = make([]PlacementOption, len(placements))
	for i, placement := range placements {
		r.PlacementOptions[i] = PlacementOption{
			ID:   placement.ID,
			Name: placement.PlacementName,
		}
	}

	r.Rows = make([]RowResponse, len(set.Rows))
	for i, row := range set.Rows {
		r.Rows[i].FromModel(row)
	}
}

type GetBookingsResponse struct {
	DealID    string        `json:"deal_id"`
	StartDate string        `json:"start_date"`
	EndDate   string        `json:"end_date"`
	Rows      []RowResponse `json:"rows"`
}

func (r *GetBookingsResponse) FromModel(set model.BookingSet) {
	r.DealID = set.DealID

	if !set.StartDate.IsZero() {
		r.StartDate = set.StartDate.Format(constant.DayFormat)
	}

	if !set.EndDate.IsZero() {
		r.EndDate = set.EndDate.Format(constant.DayFormat)
	}

	r.Rows = make([]RowResponse, len(set.Rows))
	for i, row := range set.Rows {
		r.Rows[i].FromModel(row)
	}
}
