package service

import (
	"context"
	"errors"
	"fmt"

	"adbook/infras/otel"
	"adbook/internal/domains/booking/model"
	"adbook/internal/domains/booking/model/dto"
	"adbook/internal/domains/booking/repository"
	dealRepo "adbook/internal/domains/deal/repository"
	placementModel "adbook/internal/domains/placement/model"
	placementRepo "adbook/internal/domains/placement/repository"
	"adbook/shared/constant"
	"adbook/shared/failure"
	"adbook/shared/money"
	gRepo "adbook/shared/repository"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

type Booking interface {
	OpenGrid(ctx context.Context, dealID, placementID string) (dto.GridResponse, error)
	SaveGrid(ctx context.Context, req dto.SaveGridRequest, dealID string) (dto.GetBookingsResponse, error)
	GetByDeal(ctx context.Context, dealID string) (dto.GetBookingsResponse, error)
}

type serviceImpl struct {
	repo          repository.Booking
	placementRepo placementRepo.Placement
	dealRepo      dealRepo.Deal
	otel          otel.Otel
}

func New(repo repository.Booking, placementRepo placementRepo.Placement, dealRepo dealRepo.Deal, otel otel.Otel) Booking {
	return &serviceImpl{
		repo:          repo,
		placementRepo: placementRepo,
		dealRepo:      dealRepo,
		otel:          otel,
	}
}

// CalculateRow derives the totals for one allocation row: total spots is the
// sum of the daily cells, total seconds multiplies by the spot duration, and
// the amount multiplies by the per-second rate, rounded to 2 decimal places
// half up. Each row computes independently of the others in its grid.
func CalculateRow(dailySpots []int, duration int, rate decimal.Decimal) (totalSpots, totalSeconds int, totalAmount decimal.Decimal) {
	for _, spots := range dailySpots {
		totalSpots += spots
	}

	totalSeconds = totalSpots * duration
	totalAmount = money.Round2(decimal.NewFromInt(int64(totalSeconds)).Mul(rate))

	return totalSpots, totalSeconds, totalAmount
}

func (s *serviceImpl) OpenGrid(ctx context.Context, dealID, placementID string) (res dto.GridResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.OpenGrid")
	defer scope.End()
	defer scope.TraceIfError(err)

	placement, err := s.resolvePlacement(ctx, dealID, placementID)
	if err != nil {
		return res, err
	}

	placements, err := s.placementRepo.GetByDeal(ctx, dealID)
	if err != nil {
		log.Error().Err(err).Msg("failed to get placements of deal")

		return res, fmt.Errorf("failed to get placements of deal: %w", err)
	}

	dayCount := model.DayCount(placement.StartDate, placement.EndDate)
	if dayCount == 0 {
		return res, failure.BadRequestFromString("placement has no valid date range") // nolint:wrapcheck
	}

	set := model.BookingSet{
		DealID:    dealID,
		StartDate: placement.StartDate,
		EndDate:   placement.EndDate,
	}

	// Previously saved rows come back refit to the current axis instead of
	// the grid starting empty, so a reopened grid never silently discards
	// what an earlier save recorded.
	saved, err := s.repo.GetByDeal(ctx, dealID)
	if err != nil && !errors.Is(err, gRepo.ErrNotFound) {
		log.Error().Err(err).Msg("failed to get bookings of deal")

		return res, fmt.Errorf("failed to get bookings of deal: %w", err)
	}

	for _, row := range saved.Rows {
		row.DailySpots = fitCells(row.DailySpots, dayCount)
		row.TotalSpots, row.TotalSeconds, row.TotalAmount = CalculateRow(row.DailySpots, row.Duration, row.Rate)
		set.Rows = append(set.Rows, row)
	}

	if len(set.Rows) == 0 {
		set.Rows = []model.Row{templateRow(placement, dayCount)}
	}

	res.FromModels(set, placementID, placements)

	return res, nil
}

func (s *serviceImpl) SaveGrid(ctx context.Context, req dto.SaveGridRequest, dealID string) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.SaveGrid")
	defer scope.End()
	defer scope.TraceIfError(err)

	if len(req.Rows) == 0 {
		return res, failure.BadRequestFromString("booking grid must keep at least one row") // nolint:wrapcheck
	}

	placement, err := s.resolvePlacement(ctx, dealID, req.PlacementID)
	if err != nil {
		return res, err
	}

	dayCount := model.DayCount(placement.StartDate, placement.EndDate)
	if dayCount == 0 {
		return res, failure.BadRequestFromString("placement has no valid date range") // nolint:wrapcheck
	}

	placements, err := s.placementRepo.GetByDeal(ctx, dealID)
	if err != nil {
		log.Error().Err(err).Msg("failed to get placements of deal")

		return res, fmt.Errorf("failed to get placements of deal: %w", err)
	}

	known := make(map[string]bool, len(placements))
	for _, p := range placements {
		known[p.ID] = true
	}

	set := model.BookingSet{
		DealID:    dealID,
		StartDate: placement.StartDate,
		EndDate:   placement.EndDate,
		Rows:      make([]model.Row, len(req.Rows)),
	}

	for i, rowReq := range req.Rows {
		if !known[rowReq.PlacementID] {
			return res, failure.BadRequestFromString(fmt.Sprintf("row %d references a placement outside this deal", i+1)) // nolint:wrapcheck
		}

		if !model.ValidDuration(rowReq.Duration) {
			return res, failure.BadRequestFromString(fmt.Sprintf("row %d has an unsupported duration", i+1)) // nolint:wrapcheck
		}

		if len(rowReq.DailySpots) != dayCount {
			return res, failure.BadRequestFromString(fmt.Sprintf("row %d must carry %d daily cells", i+1, dayCount)) // nolint:wrapcheck
		}

		for _, spots := range rowReq.DailySpots {
			if spots < 0 {
				return res, failure.BadRequestFromString(fmt.Sprintf("row %d has a negative daily spot count", i+1)) // nolint:wrapcheck
			}
		}

		if rowReq.Rate.IsNegative() {
			return res, failure.BadRequestFromString(fmt.Sprintf("row %d has a negative rate", i+1)) // nolint:wrapcheck
		}

		row := rowReq.ToRow()
		if row.Priority == 0 {
			row.Priority = 1
		}

		// Totals are always recomputed here; whatever the client derived is
		// ignored.
		row.TotalSpots, row.TotalSeconds, row.TotalAmount = CalculateRow(row.DailySpots, row.Duration, row.Rate)
		set.Rows[i] = row
	}

	if err = s.repo.Upsert(ctx, set); err != nil {
		log.Error().Err(err).Msg("failed to save booking grid")

		return res, fmt.Errorf("failed to save booking grid: %w", err)
	}

	res.FromModel(set)

	return res, nil
}

func (s *serviceImpl) GetByDeal(ctx context.Context, dealID string) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.GetByDeal")
	defer scope.End()
	defer scope.TraceIfError(err)

	exist, err := s.dealRepo.Exist(ctx, dealID)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if deal exists")

		return res, fmt.Errorf("failed to check if deal exists: %w", err)
	}

	if !exist {
		return res, failure.NotFound("deal not found") // nolint:wrapcheck
	}

	set, err := s.repo.GetByDeal(ctx, dealID)
	if err != nil {
		if errors.Is(err, gRepo.ErrNotFound) {
			res.FromModel(model.BookingSet{DealID: dealID})

			return res, nil
		}

		log.Error().Err(err).Msg("failed to get bookings of deal")

		return res, fmt.Errorf("failed to get bookings of deal: %w", err)
	}

	res.FromModel(set)

	return res, nil
}

func (s *serviceImpl) resolvePlacement(ctx context.Context, dealID, placementID string) (placementModel.Placement, error) {
	placement, err := s.placementRepo.Get(ctx, placementID)
	if err != nil {
		if errors.Is(err, gRepo.ErrNotFound) {
			return placementModel.Placement{}, failure.NotFound("placement not found") // nolint:wrapcheck
		}

		log.Error().Err(err).Msg("failed to get placement")

		return placementModel.Placement{}, fmt.Errorf("failed to get placement: %w", err)
	}

	if placement.DealID != dealID {
		return placementModel.Placement{}, failure.BadRequestFromString("placement does not belong to this deal") // nolint:wrapcheck
	}

	return placement, nil
}

// templateRow is the single zeroed row a fresh grid opens with. Its rate is
// seeded from the opening placement.
func templateRow(placement placementModel.Placement, dayCount int) model.Row {
	row := model.Row{
		PlacementID: placement.ID,
		Duration:    model.Durations[0],
		Priority:    1,
		DailySpots:  make([]int, dayCount),
		Rate:        placement.Rate,
	}

	row.TotalSpots, row.TotalSeconds, row.TotalAmount = CalculateRow(row.DailySpots, row.Duration, row.Rate)

	return row
}

// fitCells pads or truncates a saved row's cells to the current axis length.
func fitCells(cells []int, dayCount int) []int {
	fitted := make([]int, dayCount)
	copy(fitted, cells)

	return fitted
}
