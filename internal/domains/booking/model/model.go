package model

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	EntityName = "booking"
)

// Durations enumerates the spot lengths, in seconds, a booking row may use.
var Durations = []int{10, 15, 20, 30}

func ValidDuration(duration int) bool {
	for _, d := range Durations {
		if d == duration {
			return true
		}
	}

	return false
}

// BookingSet is one deal's saved booking grid. Rows are positional: a save
// replaces the whole set, so rows carry no ids of their own. All rows share
// the set's date axis.
type BookingSet struct {
	DealID    string    `json:"deal_id"`
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
	Rows      []Row     `json:"rows"`
}

func (b BookingSet) GetID() string {
	return b.DealID
}

// DayCount is the inclusive number of days on the set's date axis.
func (b BookingSet) DayCount() int {
	return DayCount(b.StartDate, b.EndDate)
}

// DayCount returns the inclusive day count between two dates.
// 2024-01-01 through 2024-01-05 counts 5 days. Both ends are normalized to
// calendar dates first, so a DST transition inside the range cannot shave
// hours off the count.
func DayCount(startDate, endDate time.Time) int {
	start := time.Date(startDate.Year(), startDate.Month(), startDate.Day(), 0, 0, 0, 0, time.UTC)
	end := time.Date(endDate.Year(), endDate.Month(), endDate.Day(), 0, 0, 0, 0, time.UTC)

	if end.Before(start) {
		return 0
	}

	return int(end.Sub(start).Hours()/24) + 1
}

type Row struct {
	PlacementID      string `json:"placement_id"`
	Duration         int    `json:"duration"`
	CreativeID       string `json:"creative_id"`
	TimeBand         string `json:"time_band"`
	DistributionType string `json:"distribution_type"`
	Playlist         string `json:"playlist"`
	Priority         int    `json:"priority"`

	DailySpots []int           `json:"daily_spots"`
	Rate       decimal.Decimal `json:"rate"`

	TotalSpots   int             `json:"total_spots"`
	TotalSeconds int             `json:"total_seconds"`
	TotalAmount  decimal.Decimal `json:"total_amount"`
}
