package service

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"adbook/infras/otel"
	"adbook/internal/domains/deal/model"
	"adbook/internal/domains/deal/model/dto"
	"adbook/internal/domains/deal/repository"
	placementRepo "adbook/internal/domains/placement/repository"
	"adbook/shared"
	"adbook/shared/constant"
	gDto "adbook/shared/dto"
	"adbook/shared/failure"
	"adbook/shared/money"
	gRepo "adbook/shared/repository"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

type Deal interface {
	Create(ctx context.Context, req dto.CreateDealRequest) (dto.DealResponse, error)
	GetAll(ctx context.Context, params gDto.QueryParams) (dto.GetDealsResponse, error)
	Get(ctx context.Context, id string) (dto.DealResponse, error)
	Update(ctx context.Context, req dto.UpdateDealRequest, id string) (dto.DealResponse, error)
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo          repository.Deal
	placementRepo placementRepo.Placement
	otel          otel.Otel
}

func New(repo repository.Deal, placementRepo placementRepo.Placement, otel otel.Otel) Deal {
	return &serviceImpl{
		repo:          repo,
		placementRepo: placementRepo,
		otel:          otel,
	}
}

// DeriveRevenue converts a base booked revenue into its deal-currency and
// execution-currency amounts, both rounded to 2 decimal places half up.
// The execution currency is INR: an INR deal converts 1:1 regardless of the
// conversion rate; anything else multiplies by the rate. A zero rate is
// treated as 1. Derivation is pure, so re-deriving from stored inputs always
// reproduces the stored amounts.
func DeriveRevenue(bookedRevenue, conversionRate decimal.Decimal, dealCurrency string) (dealAmount, execAmount decimal.Decimal) {
	if conversionRate.IsZero() {
		conversionRate = decimal.NewFromInt(1)
	}

	dealAmount = money.Round2(bookedRevenue)

	if dealCurrency == constant.CurrencyINR {
		execAmount = dealAmount
	} else {
		execAmount = money.Round2(bookedRevenue.Mul(conversionRate))
	}

	return dealAmount, execAmount
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateDealRequest) (res dto.DealResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".deal.Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	if err := validateAmounts(req.BookedRevenue, req.ConversionRate); err != nil {
		return res, err
	}

	deal, err := req.ToModel(user)
	if err != nil {
		log.Error().Err(err).Msg("failed to parse deal request")

		return res, failure.BadRequestFromString(fmt.Sprintf("invalid date format: %v", err)) // nolint:wrapcheck
	}

	if deal.EndDate.Before(deal.StartDate) {
		return res, failure.BadRequestFromString("end date must not precede start date") // nolint:wrapcheck
	}

	if deal.ConversionRate.IsZero() {
		deal.ConversionRate = decimal.NewFromInt(1)
	}

	deal.BookedRevenueDealCurrency, deal.BookedRevenueExecCurrency = DeriveRevenue(deal.BookedRevenue, deal.ConversionRate, deal.DealCurrency)

	if err = s.repo.Upsert(ctx, deal); err != nil {
		log.Error().Err(err).Msg("failed to create deal")

		return res, fmt.Errorf("failed to create deal: %w", err)
	}

	res.FromModel(deal)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, params gDto.QueryParams) (res dto.GetDealsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".deal.GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	deals, err := s.repo.GetAll(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to get deals")

		return res, fmt.Errorf("failed to get deals: %w", err)
	}

	sortDeals(deals, params.SortDir)

	page := shared.Paginate(deals, params.Page, params.Limit)
	res.FromModels(page, len(deals), params.Limit)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.DealResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".deal.Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	deal, err := s.resolve(ctx, id)
	if err != nil {
		return res, err
	}

	res.FromModel(deal)

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateDealRequest, id string) (res dto.DealResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".deal.Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	if req.IsEmpty() {
		return res, failure.BadRequestFromString("update request cannot be empty") // nolint:wrapcheck
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	deal, err := s.resolve(ctx, id)
	if err != nil {
		return res, err
	}

	if err = req.ApplyTo(&deal, user); err != nil {
		log.Error().Err(err).Msg("failed to parse deal request")

		return res, failure.BadRequestFromString(fmt.Sprintf("invalid date format: %v", err)) // nolint:wrapcheck
	}

	if err = validateAmounts(deal.BookedRevenue, deal.ConversionRate); err != nil {
		return res, err
	}

	if deal.EndDate.Before(deal.StartDate) {
		return res, failure.BadRequestFromString("end date must not precede start date") // nolint:wrapcheck
	}

	// Derived amounts are recomputed on every edit so the stored figures can
	// never diverge from their inputs.
	deal.BookedRevenueDealCurrency, deal.BookedRevenueExecCurrency = DeriveRevenue(deal.BookedRevenue, deal.ConversionRate, deal.DealCurrency)

	if err = s.repo.Upsert(ctx, deal); err != nil {
		log.Error().Err(err).Msg("failed to update deal")

		return res, fmt.Errorf("failed to update deal: %w", err)
	}

	res.FromModel(deal)

	return res, nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".deal.Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	exist, err := s.repo.Exist(ctx, id)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if deal exists")

		return fmt.Errorf("failed to check if deal exists: %w", err)
	}

	if !exist {
		log.Error().Str("id", id).Msg("deal not found")

		return failure.NotFound("deal not found") // nolint:wrapcheck
	}

	placements, err := s.placementRepo.GetByDeal(ctx, id)
	if err != nil {
		log.Error().Err(err).Msg("failed to list placements of deal")

		return fmt.Errorf("failed to list placements of deal: %w", err)
	}

	if len(placements) > 0 {
		return failure.Conflict("deal still has placements") // nolint:wrapcheck
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		log.Error().Err(err).Msg("failed to delete deal")

		return fmt.Errorf("failed to delete deal: %w", err)
	}

	return nil
}

func (s *serviceImpl) resolve(ctx context.Context, id string) (model.Deal, error) {
	deal, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, gRepo.ErrNotFound) {
			return model.Deal{}, failure.NotFound("deal not found") // nolint:wrapcheck
		}

		log.Error().Err(err).Msg("failed to get deal")

		return model.Deal{}, fmt.Errorf("failed to get deal: %w", err)
	}

	return deal, nil
}

func validateAmounts(bookedRevenue, conversionRate decimal.Decimal) error {
	if bookedRevenue.IsNegative() {
		return failure.BadRequestFromString("booked revenue must not be negative") // nolint:wrapcheck
	}

	if conversionRate.IsNegative() {
		return failure.BadRequestFromString("conversion rate must be positive") // nolint:wrapcheck
	}

	return nil
}

func sortDeals(deals []model.Deal, sortDir string) {
	sort.SliceStable(deals, func(i, j int) bool {
		if sortDir == gDto.SortDirAsc {
			return deals[i].CreatedAt.Before(deals[j].CreatedAt)
		}

		return deals[i].CreatedAt.After(deals[j].CreatedAt)
	})
}
