package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"adbook/infras/otel/mocks"
	dealMocks "adbook/internal/domains/deal/mocks"
	dealModel "adbook/internal/domains/deal/model"
	placementMocks "adbook/internal/domains/placement/mocks"
	"adbook/internal/domains/placement/model"
	"adbook/internal/domains/placement/model/dto"
	"adbook/internal/domains/placement/service"
	"adbook/shared/constant"
	"adbook/shared/failure"
	gModel "adbook/shared/model"
	gRepo "adbook/shared/repository"
)

func TestDeriveMetrics(t *testing.T) {
	tests := []struct {
		name        string
		quantity    string
		rate        string
		wantSpots   int64
		wantRevenue string
	}{
		{
			name:        "whole quantity",
			quantity:    "30",
			rate:        "500",
			wantSpots:   30,
			wantRevenue: "15000.00",
		},
		{
			name:        "fractional quantity truncates before both figures",
			quantity:    "10.9",
			rate:        "100",
			wantSpots:   10,
			wantRevenue: "1000.00",
		},
		{
			name:        "half spot does not bill",
			quantity:    "2.5",
			rate:        "10",
			wantSpots:   2,
			wantRevenue: "20.00",
		},
		{
			name:        "zero quantity",
			quantity:    "0",
			rate:        "500",
			wantSpots:   0,
			wantRevenue: "0.00",
		},
		{
			name:        "fractional product rounds half up",
			quantity:    "3",
			rate:        "1.335",
			wantSpots:   3,
			wantRevenue: "4.01",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			quantity := decimal.RequireFromString(tt.quantity)
			rate := decimal.RequireFromString(tt.rate)

			spots, revenue := service.DeriveMetrics(quantity, rate)

			assert.Equal(t, tt.wantSpots, spots)
			assert.Equal(t, tt.wantRevenue, revenue.StringFixed(2))
		})
	}
}

func TestDeriveName(t *testing.T) {
	start := time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC)

	t.Run("all inputs present", func(t *testing.T) {
		name, ok := service.DeriveName("Thums Up", "Sports HD", "Fixed", "L-Band", start, end)

		assert.True(t, ok)
		assert.Equal(t, "Thums Up_Sports HD_Fixed_L-Band_05 Jan-10 Feb", name)
	})

	t.Run("missing input suppresses generation", func(t *testing.T) {
		name, ok := service.DeriveName("Thums Up", "", "Fixed", "L-Band", start, end)

		assert.False(t, ok)
		assert.Empty(t, name)
	})

	t.Run("zero dates suppress generation", func(t *testing.T) {
		_, ok := service.DeriveName("Thums Up", "Sports HD", "Fixed", "L-Band", time.Time{}, end)

		assert.False(t, ok)
	})
}

func TestPlacementService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := placementMocks.NewMockPlacement(ctrl)
	mockDealRepo := dealMocks.NewMockDeal(ctrl)
	mockOtel := mocks.NewOtel()

	svc := service.New(mockRepo, mockDealRepo, mockOtel)

	parentDeal := dealModel.Deal{
		ID:                "DL-1",
		ChannelNames:      []string{"Sports HD"},
		DealCurrency:      "USD",
		ExecutionCurrency: constant.CurrencyINR,
		ConversionRate:    decimal.NewFromInt(83),
	}

	validReq := dto.CreatePlacementRequest{
		BrandName:      "Thums Up",
		BuyType:        "Fixed",
		AdFormat:       "L-Band",
		StartDate:      "2024-01-05",
		EndDate:        "2024-02-10",
		BookedQuantity: decimal.NewFromInt(30),
		Rate:           decimal.NewFromInt(500),
	}

	t.Run("successful creation with derived fields", func(t *testing.T) {
		mockDealRepo.EXPECT().Get(gomock.Any(), "DL-1").Return(parentDeal, nil)

		var saved model.Placement
		mockRepo.EXPECT().
			Upsert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, placement model.Placement) error {
				saved = placement
				return nil
			})

		ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user")
		res, err := svc.Create(ctx, validReq, "DL-1")

		require.NoError(t, err)
		assert.Contains(t, res.ID, constant.PlacementIDPrefix+"-")
		assert.Equal(t, int64(30), res.TotalSpots)
		assert.Equal(t, "15000.00", res.BookedRevenue)
		assert.Equal(t, "Thums Up_Sports HD_Fixed_L-Band_05 Jan-10 Feb", res.PlacementName)
		assert.Equal(t, "USD", saved.DealCurrency)
		assert.Equal(t, constant.CurrencyINR, saved.ExecutionCurrency)
		assert.True(t, saved.ConversionRate.Equal(decimal.NewFromInt(83)))
		assert.Equal(t, constant.StatusActive, saved.Status)
		assert.Equal(t, int64(0), saved.DeliveredQuantity)
		assert.Equal(t, "15000.00", res.BalanceRevenue)
		assert.Equal(t, int64(30), res.RemainingQuantity)
	})

	t.Run("missing name inputs leave name empty", func(t *testing.T) {
		mockDealRepo.EXPECT().Get(gomock.Any(), "DL-1").Return(parentDeal, nil)
		mockRepo.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return(nil)

		req := validReq
		req.BrandName = ""

		res, err := svc.Create(context.Background(), req, "DL-1")

		require.NoError(t, err)
		assert.Empty(t, res.PlacementName)
	})

	t.Run("parent deal must exist", func(t *testing.T) {
		mockDealRepo.EXPECT().Get(gomock.Any(), "DL-404").Return(dealModel.Deal{}, gRepo.ErrNotFound)

		_, err := svc.Create(context.Background(), validReq, "DL-404")

		assert.Error(t, err)
		assert.Equal(t, 400, failure.GetCode(err))
	})

	t.Run("negative quantity rejected", func(t *testing.T) {
		req := validReq
		req.BookedQuantity = decimal.NewFromInt(-5)

		_, err := svc.Create(context.Background(), req, "DL-1")

		assert.Error(t, err)
		assert.Equal(t, 400, failure.GetCode(err))
	})
}

func TestPlacementService_Copy(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := placementMocks.NewMockPlacement(ctrl)
	mockDealRepo := dealMocks.NewMockDeal(ctrl)
	mockOtel := mocks.NewOtel()

	svc := service.New(mockRepo, mockDealRepo, mockOtel)

	source := model.Placement{
		ID:             "PL-1",
		DealID:         "DL-1",
		PlacementName:  "Thums Up_Sports HD_Fixed_L-Band_05 Jan-10 Feb",
		BookedQuantity: decimal.NewFromInt(30),
		Rate:           decimal.NewFromInt(500),
		TotalSpots:     30,
		BookedRevenue:  decimal.NewFromInt(15000),
		Status:         constant.StatusActive,
		Metadata: gModel.Metadata{
			CreatedBy:  "creator",
			ModifiedBy: "creator",
		},
	}

	t.Run("copy gets new id and suffixed name", func(t *testing.T) {
		mockRepo.EXPECT().Get(gomock.Any(), "PL-1").Return(source, nil)

		var saved model.Placement
		mockRepo.EXPECT().
			Upsert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, placement model.Placement) error {
				saved = placement
				return nil
			})

		ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "copier")
		res, err := svc.Copy(ctx, "PL-1")

		require.NoError(t, err)
		assert.NotEqual(t, source.ID, res.ID)
		assert.Equal(t, source.PlacementName+model.CopySuffix, res.PlacementName)
		assert.Equal(t, source.DealID, saved.DealID)
		assert.True(t, saved.BookedQuantity.Equal(source.BookedQuantity))
		assert.Equal(t, source.TotalSpots, saved.TotalSpots)
		assert.Equal(t, "copier", saved.CreatedBy)
	})

	t.Run("unknown source", func(t *testing.T) {
		mockRepo.EXPECT().Get(gomock.Any(), "PL-404").Return(model.Placement{}, gRepo.ErrNotFound)

		_, err := svc.Copy(context.Background(), "PL-404")

		assert.Error(t, err)
		assert.Equal(t, 404, failure.GetCode(err))
	})
}

func TestPlacementService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := placementMocks.NewMockPlacement(ctrl)
	mockDealRepo := dealMocks.NewMockDeal(ctrl)
	mockOtel := mocks.NewOtel()

	svc := service.New(mockRepo, mockDealRepo, mockOtel)

	t.Run("successful delete", func(t *testing.T) {
		mockRepo.EXPECT().Exist(gomock.Any(), "PL-1").Return(true, nil)
		mockRepo.EXPECT().Delete(gomock.Any(), "PL-1").Return(nil)

		assert.NoError(t, svc.Delete(context.Background(), "PL-1"))
	})

	t.Run("unknown placement", func(t *testing.T) {
		mockRepo.EXPECT().Exist(gomock.Any(), "PL-404").Return(false, nil)

		err := svc.Delete(context.Background(), "PL-404")

		assert.Error(t, err)
		assert.Equal(t, 404, failure.GetCode(err))
	})
}

func TestPlacementService_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := placementMocks.NewMockPlacement(ctrl)
	mockDealRepo := dealMocks.NewMockDeal(ctrl)
	mockOtel := mocks.NewOtel()

	svc := service.New(mockRepo, mockDealRepo, mockOtel)

	stored := model.Placement{
		ID:             "PL-1",
		DealID:         "DL-1",
		PlacementName:  "prior name",
		StartDate:      time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC),
		EndDate:        time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC),
		BookedQuantity: decimal.NewFromInt(30),
		Rate:           decimal.NewFromInt(500),
		TotalSpots:     30,
		BookedRevenue:  decimal.NewFromInt(15000),
	}

	t.Run("metrics re-derived, prior name kept when inputs incomplete", func(t *testing.T) {
		mockRepo.EXPECT().Get(gomock.Any(), "PL-1").Return(stored, nil)
		mockDealRepo.EXPECT().Get(gomock.Any(), "DL-1").Return(dealModel.Deal{ID: "DL-1"}, nil)

		var saved model.Placement
		mockRepo.EXPECT().
			Upsert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, placement model.Placement) error {
				saved = placement
				return nil
			})

		quantity := decimal.NewFromInt(40)
		res, err := svc.Update(context.Background(), dto.UpdatePlacementRequest{BookedQuantity: &quantity}, "PL-1")

		require.NoError(t, err)
		assert.Equal(t, int64(40), res.TotalSpots)
		assert.Equal(t, "20000.00", res.BookedRevenue)
		assert.Equal(t, "prior name", saved.PlacementName)
	})

	t.Run("empty request rejected", func(t *testing.T) {
		_, err := svc.Update(context.Background(), dto.UpdatePlacementRequest{}, "PL-1")

		assert.Error(t, err)
		assert.Equal(t, 400, failure.GetCode(err))
	})
}
