package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"adbook/infras/otel"
	dealModel "adbook/internal/domains/deal/model"
	dealRepo "adbook/internal/domains/deal/repository"
	"adbook/internal/domains/placement/model"
	"adbook/internal/domains/placement/model/dto"
	"adbook/internal/domains/placement/repository"
	"adbook/shared"
	"adbook/shared/constant"
	"adbook/shared/failure"
	"adbook/shared/id"
	"adbook/shared/money"
	gRepo "adbook/shared/repository"
	"adbook/shared/timezone"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

type Placement interface {
	Create(ctx context.Context, req dto.CreatePlacementRequest, dealID string) (dto.PlacementResponse, error)
	GetByDeal(ctx context.Context, dealID string) (dto.GetPlacementsResponse, error)
	Get(ctx context.Context, id string) (dto.PlacementResponse, error)
	Update(ctx context.Context, req dto.UpdatePlacementRequest, id string) (dto.PlacementResponse, error)
	Copy(ctx context.Context, id string) (dto.PlacementResponse, error)
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo     repository.Placement
	dealRepo dealRepo.Deal
	otel     otel.Otel
}

func New(repo repository.Placement, dealRepo dealRepo.Deal, otel otel.Otel) Placement {
	return &serviceImpl{
		repo:     repo,
		dealRepo: dealRepo,
		otel:     otel,
	}
}

// DeriveMetrics computes the spot and revenue figures for a quantity and a
// per-spot rate. A fractional quantity is truncated to a whole number of
// spots first; both the spot count and the revenue product come from the
// truncated value. Revenue is rounded to 2 decimal places half up.
func DeriveMetrics(quantity, rate decimal.Decimal) (totalSpots int64, bookedRevenue decimal.Decimal) {
	spots := quantity.Floor()

	totalSpots = spots.IntPart()
	bookedRevenue = money.Round2(spots.Mul(rate))

	return totalSpots, bookedRevenue
}

// DeriveName builds the auto-generated placement name
// "<brand>_<channel>_<buyType>_<adFormat>_<start>-<end>" with day-month
// labels like "05 Jan". When any input is missing the generation is skipped
// and ok is false; callers keep the prior name in that case.
func DeriveName(brand, channel, buyType, adFormat string, startDate, endDate time.Time) (name string, ok bool) {
	if brand == constant.Empty || channel == constant.Empty ||
		buyType == constant.Empty || adFormat == constant.Empty ||
		startDate.IsZero() || endDate.IsZero() {
		return constant.Empty, false
	}

	window := startDate.Format(constant.DayMonthLabel) + "-" + endDate.Format(constant.DayMonthLabel)

	return brand + "_" + channel + "_" + buyType + "_" + adFormat + "_" + window, true
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreatePlacementRequest, dealID string) (res dto.PlacementResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".placement.Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	if err = validateAmounts(req.BookedQuantity, req.Rate); err != nil {
		return res, err
	}

	deal, err := s.resolveDeal(ctx, dealID)
	if err != nil {
		return res, err
	}

	placement, err := req.ToModel(dealID, user)
	if err != nil {
		log.Error().Err(err).Msg("failed to parse placement request")

		return res, failure.BadRequestFromString(fmt.Sprintf("invalid date format: %v", err)) // nolint:wrapcheck
	}

	if placement.EndDate.Before(placement.StartDate) {
		return res, failure.BadRequestFromString("end date must not precede start date") // nolint:wrapcheck
	}

	placement.DealCurrency = deal.DealCurrency
	placement.ExecutionCurrency = deal.ExecutionCurrency
	placement.ConversionRate = deal.ConversionRate

	placement.TotalSpots, placement.BookedRevenue = DeriveMetrics(placement.BookedQuantity, placement.Rate)

	if name, ok := DeriveName(placement.BrandName, shared.JoinMulti(deal.ChannelNames), placement.BuyType, placement.AdFormat, placement.StartDate, placement.EndDate); ok {
		placement.PlacementName = name
	}

	if err = s.repo.Upsert(ctx, placement); err != nil {
		log.Error().Err(err).Msg("failed to create placement")

		return res, fmt.Errorf("failed to create placement: %w", err)
	}

	res.FromModel(placement)

	return res, nil
}

func (s *serviceImpl) GetByDeal(ctx context.Context, dealID string) (res dto.GetPlacementsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".placement.GetByDeal")
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

	placements, err := s.repo.GetByDeal(ctx, dealID)
	if err != nil {
		log.Error().Err(err).Msg("failed to get placements")

		return res, fmt.Errorf("failed to get placements: %w", err)
	}

	res.FromModels(placements)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.PlacementResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".placement.Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	placement, err := s.resolve(ctx, id)
	if err != nil {
		return res, err
	}

	res.FromModel(placement)

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdatePlacementRequest, id string) (res dto.PlacementResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".placement.Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	if req.IsEmpty() {
		return res, failure.BadRequestFromString("update request cannot be empty") // nolint:wrapcheck
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	placement, err := s.resolve(ctx, id)
	if err != nil {
		return res, err
	}

	if err = req.ApplyTo(&placement, user); err != nil {
		log.Error().Err(err).Msg("failed to parse placement request")

		return res, failure.BadRequestFromString(fmt.Sprintf("invalid date format: %v", err)) // nolint:wrapcheck
	}

	if err = validateAmounts(placement.BookedQuantity, placement.Rate); err != nil {
		return res, err
	}

	if placement.EndDate.Before(placement.StartDate) {
		return res, failure.BadRequestFromString("end date must not precede start date") // nolint:wrapcheck
	}

	placement.TotalSpots, placement.BookedRevenue = DeriveMetrics(placement.BookedQuantity, placement.Rate)

	// The name regenerates only when every input is present; otherwise the
	// stored name stays untouched.
	deal, err := s.resolveDeal(ctx, placement.DealID)
	if err != nil {
		return res, err
	}

	if name, ok := DeriveName(placement.BrandName, shared.JoinMulti(deal.ChannelNames), placement.BuyType, placement.AdFormat, placement.StartDate, placement.EndDate); ok {
		placement.PlacementName = name
	}

	if err = s.repo.Upsert(ctx, placement); err != nil {
		log.Error().Err(err).Msg("failed to update placement")

		return res, fmt.Errorf("failed to update placement: %w", err)
	}

	res.FromModel(placement)

	return res, nil
}

func (s *serviceImpl) Copy(ctx context.Context, sourceID string) (res dto.PlacementResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".placement.Copy")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	source, err := s.resolve(ctx, sourceID)
	if err != nil {
		return res, err
	}

	copied := source
	copied.ID = id.New(constant.PlacementIDPrefix)
	copied.PlacementName = source.PlacementName + model.CopySuffix
	copied.CreatedAt = timezone.Now()
	copied.ModifiedAt = timezone.Now()
	copied.CreatedBy = user
	copied.ModifiedBy = user

	if err = s.repo.Upsert(ctx, copied); err != nil {
		log.Error().Err(err).Msg("failed to copy placement")

		return res, fmt.Errorf("failed to copy placement: %w", err)
	}

	res.FromModel(copied)

	return res, nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".placement.Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	exist, err := s.repo.Exist(ctx, id)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if placement exists")

		return fmt.Errorf("failed to check if placement exists: %w", err)
	}

	if !exist {
		log.Error().Str("id", id).Msg("placement not found")

		return failure.NotFound("placement not found") // nolint:wrapcheck
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		log.Error().Err(err).Msg("failed to delete placement")

		return fmt.Errorf("failed to delete placement: %w", err)
	}

	return nil
}

func (s *serviceImpl) resolve(ctx context.Context, id string) (model.Placement, error) {
	placement, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, gRepo.ErrNotFound) {
			return model.Placement{}, failure.NotFound("placement not found") // nolint:wrapcheck
		}

		log.Error().Err(err).Msg("failed to get placement")

		return model.Placement{}, fmt.Errorf("failed to get placement: %w", err)
	}

	return placement, nil
}

func (s *serviceImpl) resolveDeal(ctx context.Context, dealID string) (dealModel.Deal, error) {
	deal, err := s.dealRepo.Get(ctx, dealID)
	if err != nil {
		if errors.Is(err, gRepo.ErrNotFound) {
			return dealModel.Deal{}, failure.BadRequestFromString("deal does not exist") // nolint:wrapcheck
		}

		log.Error().Err(err).Msg("failed to get deal")

		return dealModel.Deal{}, fmt.Errorf("failed to get deal: %w", err)
	}

	return deal, nil
}

func validateAmounts(quantity, rate decimal.Decimal) error {
	if quantity.IsNegative() {
		return failure.BadRequestFromString("booked quantity must not be negative") // nolint:wrapcheck
	}

	if rate.IsNegative() {
		return failure.BadRequestFromString("rate must not be negative") // nolint:wrapcheck
	}

	return nil
}
