package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"adbook/infras/otel/mocks"
	bookingRepo "adbook/internal/domains/booking/repository"
	"adbook/internal/domains/booking/model"
	"adbook/internal/domains/booking/model/dto"
	"adbook/internal/domains/booking/service"
	dealModel "adbook/internal/domains/deal/model"
	dealRepo "adbook/internal/domains/deal/repository"
	placementModel "adbook/internal/domains/placement/model"
	placementRepo "adbook/internal/domains/placement/repository"
	"adbook/internal/record"
	"adbook/shared/constant"
	"adbook/shared/failure"
)

func TestCalculateRow(t *testing.T) {
	tests := []struct {
		name        string
		dailySpots  []int
		duration    int
		rate        string
		wantSpots   int
		wantSeconds int
		wantAmount  string
	}{
		{
			name:        "mixed cells",
			dailySpots:  []int{2, 3, 0, 5},
			duration:    15,
			rate:        "10",
			wantSpots:   10,
			wantSeconds: 150,
			wantAmount:  "1500.00",
		},
		{
			name:        "all zero cells",
			dailySpots:  []int{0, 0, 0},
			duration:    30,
			rate:        "100",
			wantSpots:   0,
			wantSeconds: 0,
			wantAmount:  "0.00",
		},
		{
			name:        "fractional rate rounds half up",
			dailySpots:  []int{1},
			duration:    10,
			rate:        "0.125",
			wantSpots:   1,
			wantSeconds: 10,
			wantAmount:  "1.25",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spots, seconds, amount := service.CalculateRow(tt.dailySpots, tt.duration, decimal.RequireFromString(tt.rate))

			assert.Equal(t, tt.wantSpots, spots)
			assert.Equal(t, tt.wantSeconds, seconds)
			assert.Equal(t, tt.wantAmount, amount.StringFixed(2))
		})
	}
}

func TestDayCount(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, 5, model.DayCount(start, time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, 1, model.DayCount(start, start))
	assert.Equal(t, 0, model.DayCount(start, start.AddDate(0, 0, -1)))
}

func TestDayCount_SpringForward(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	// The clock jumps forward on 2024-03-10, leaving only 23 hours in that
	// day. The calendar still counts three days.
	start := time.Date(2024, 3, 9, 0, 0, 0, 0, loc)
	end := time.Date(2024, 3, 11, 0, 0, 0, 0, loc)

	assert.Equal(t, 3, model.DayCount(start, end))
}

type fixture struct {
	svc        service.Booking
	deals      dealRepo.Deal
	placements placementRepo.Placement
	deal       dealModel.Deal
	placement  placementModel.Placement
}

// newFixture wires the service against real repositories over the in-memory
// store, seeded with one deal and one five-day placement.
func newFixture(t *testing.T) fixture {
	t.Helper()

	store := record.NewMemoryStore()
	mockOtel := mocks.NewOtel()

	deals := dealRepo.New(store, mockOtel)
	placements := placementRepo.New(store, mockOtel)
	bookings := bookingRepo.New(store, mockOtel)

	deal := dealModel.Deal{
		ID:           "DL-1",
		DealName:     "Festive Burst",
		ChannelNames: []string{"Sports HD"},
	}
	require.NoError(t, deals.Upsert(context.Background(), deal))

	placement := placementModel.Placement{
		ID:        "PL-1",
		DealID:    "DL-1",
		StartDate: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC),
		Rate:      decimal.NewFromInt(10),
		Status:    constant.StatusActive,
	}
	require.NoError(t, placements.Upsert(context.Background(), placement))

	return fixture{
		svc:        service.New(bookings, placements, deals, mockOtel),
		deals:      deals,
		placements: placements,
		deal:       deal,
		placement:  placement,
	}
}

func TestBookingService_OpenGrid(t *testing.T) {
	t.Run("fresh grid opens with one template row", func(t *testing.T) {
		f := newFixture(t)

		res, err := f.svc.OpenGrid(context.Background(), "DL-1", "PL-1")

		require.NoError(t, err)
		assert.Len(t, res.Days, 5)
		assert.Equal(t, "2024-01-01", res.Days[0])
		assert.Equal(t, "2024-01-05", res.Days[4])
		require.Len(t, res.Rows, 1)
		assert.Equal(t, "PL-1", res.Rows[0].PlacementID)
		assert.Equal(t, 10, res.Rows[0].Duration)
		assert.Equal(t, 1, res.Rows[0].Priority)
		assert.Equal(t, []int{0, 0, 0, 0, 0}, res.Rows[0].DailySpots)
		assert.Equal(t, "0.00", res.Rows[0].TotalAmount)
		require.Len(t, res.PlacementOptions, 1)
		assert.Equal(t, "PL-1", res.PlacementOptions[0].ID)
	})

	t.Run("placement from another deal rejected", func(t *testing.T) {
		f := newFixture(t)

		other := f.placement
		other.ID = "PL-2"
		other.DealID = "DL-2"
		require.NoError(t, f.placements.Upsert(context.Background(), other))

		_, err := f.svc.OpenGrid(context.Background(), "DL-1", "PL-2")

		assert.Error(t, err)
		assert.Equal(t, 400, failure.GetCode(err))
	})

	t.Run("unknown placement", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.svc.OpenGrid(context.Background(), "DL-1", "PL-404")

		assert.Error(t, err)
		assert.Equal(t, 404, failure.GetCode(err))
	})
}

func TestBookingService_SaveGrid(t *testing.T) {
	validRow := dto.RowRequest{
		PlacementID: "PL-1",
		Duration:    15,
		Priority:    1,
		DailySpots:  []int{2, 3, 0, 5, 0},
		Rate:        decimal.NewFromInt(10),
	}

	t.Run("totals recomputed and set persisted", func(t *testing.T) {
		f := newFixture(t)

		res, err := f.svc.SaveGrid(context.Background(), dto.SaveGridRequest{
			PlacementID: "PL-1",
			Rows:        []dto.RowRequest{validRow},
		}, "DL-1")

		require.NoError(t, err)
		require.Len(t, res.Rows, 1)
		assert.Equal(t, 10, res.Rows[0].TotalSpots)
		assert.Equal(t, 150, res.Rows[0].TotalSeconds)
		assert.Equal(t, "1500.00", res.Rows[0].TotalAmount)

		read, err := f.svc.GetByDeal(context.Background(), "DL-1")
		require.NoError(t, err)
		require.Len(t, read.Rows, 1)
		assert.Equal(t, "1500.00", read.Rows[0].TotalAmount)
	})

	t.Run("save replaces the whole set", func(t *testing.T) {
		f := newFixture(t)
		ctx := context.Background()

		_, err := f.svc.SaveGrid(ctx, dto.SaveGridRequest{
			PlacementID: "PL-1",
			Rows:        []dto.RowRequest{validRow, validRow},
		}, "DL-1")
		require.NoError(t, err)

		_, err = f.svc.SaveGrid(ctx, dto.SaveGridRequest{
			PlacementID: "PL-1",
			Rows:        []dto.RowRequest{validRow},
		}, "DL-1")
		require.NoError(t, err)

		read, err := f.svc.GetByDeal(ctx, "DL-1")
		require.NoError(t, err)
		assert.Len(t, read.Rows, 1)
	})

	t.Run("empty grid rejected", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.svc.SaveGrid(context.Background(), dto.SaveGridRequest{
			PlacementID: "PL-1",
		}, "DL-1")

		assert.Error(t, err)
		assert.Equal(t, 400, failure.GetCode(err))
	})

	t.Run("wrong cell count rejected", func(t *testing.T) {
		f := newFixture(t)

		row := validRow
		row.DailySpots = []int{1, 2}

		_, err := f.svc.SaveGrid(context.Background(), dto.SaveGridRequest{
			PlacementID: "PL-1",
			Rows:        []dto.RowRequest{row},
		}, "DL-1")

		assert.Error(t, err)
		assert.Equal(t, 400, failure.GetCode(err))
	})

	t.Run("unsupported duration rejected", func(t *testing.T) {
		f := newFixture(t)

		row := validRow
		row.Duration = 45

		_, err := f.svc.SaveGrid(context.Background(), dto.SaveGridRequest{
			PlacementID: "PL-1",
			Rows:        []dto.RowRequest{row},
		}, "DL-1")

		assert.Error(t, err)
		assert.Equal(t, 400, failure.GetCode(err))
	})

	t.Run("row referencing foreign placement rejected", func(t *testing.T) {
		f := newFixture(t)

		row := validRow
		row.PlacementID = "PL-999"

		_, err := f.svc.SaveGrid(context.Background(), dto.SaveGridRequest{
			PlacementID: "PL-1",
			Rows:        []dto.RowRequest{row},
		}, "DL-1")

		assert.Error(t, err)
		assert.Equal(t, 400, failure.GetCode(err))
	})

	t.Run("negative cell rejected", func(t *testing.T) {
		f := newFixture(t)

		row := validRow
		row.DailySpots = []int{2, -1, 0, 5, 0}

		_, err := f.svc.SaveGrid(context.Background(), dto.SaveGridRequest{
			PlacementID: "PL-1",
			Rows:        []dto.RowRequest{row},
		}, "DL-1")

		assert.Error(t, err)
		assert.Equal(t, 400, failure.GetCode(err))
	})
}

func TestBookingService_ReopenGrid(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.svc.SaveGrid(ctx, dto.SaveGridRequest{
		PlacementID: "PL-1",
		Rows: []dto.RowRequest{{
			PlacementID: "PL-1",
			Duration:    15,
			Priority:    2,
			DailySpots:  []int{2, 3, 0, 5, 0},
			Rate:        decimal.NewFromInt(10),
		}},
	}, "DL-1")
	require.NoError(t, err)

	res, err := f.svc.OpenGrid(ctx, "DL-1", "PL-1")

	require.NoError(t, err)
	require.Len(t, res.Rows, 1)
	assert.Equal(t, []int{2, 3, 0, 5, 0}, res.Rows[0].DailySpots)
	assert.Equal(t, 2, res.Rows[0].Priority)
	assert.Equal(t, "1500.00", res.Rows[0].TotalAmount)
}

func TestBookingService_ReopenGridRefitsAxis(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.svc.SaveGrid(ctx, dto.SaveGridRequest{
		PlacementID: "PL-1",
		Rows: []dto.RowRequest{{
			PlacementID: "PL-1",
			Duration:    15,
			DailySpots:  []int{2, 3, 0, 5, 0},
			Rate:        decimal.NewFromInt(10),
		}},
	}, "DL-1")
	require.NoError(t, err)

	// Shorten the placement window; saved rows must come back truncated to
	// the new axis with their totals recomputed.
	shortened := f.placement
	shortened.EndDate = time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC)
	require.NoError(t, f.placements.Upsert(ctx, shortened))

	res, err := f.svc.OpenGrid(ctx, "DL-1", "PL-1")

	require.NoError(t, err)
	assert.Len(t, res.Days, 3)
	require.Len(t, res.Rows, 1)
	assert.Equal(t, []int{2, 3, 0}, res.Rows[0].DailySpots)
	assert.Equal(t, 5, res.Rows[0].TotalSpots)
	assert.Equal(t, 75, res.Rows[0].TotalSeconds)
	assert.Equal(t, "750.00", res.Rows[0].TotalAmount)
}

func TestBookingService_GetByDeal(t *testing.T) {
	t.Run("no saved grid reads as empty set", func(t *testing.T) {
		f := newFixture(t)

		res, err := f.svc.GetByDeal(context.Background(), "DL-1")

		require.NoError(t, err)
		assert.Equal(t, "DL-1", res.DealID)
		assert.Empty(t, res.Rows)
	})

	t.Run("unknown deal", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.svc.GetByDeal(context.Background(), "DL-404")

		assert.Error(t, err)
		assert.Equal(t, 404, failure.GetCode(err))
	})
}
