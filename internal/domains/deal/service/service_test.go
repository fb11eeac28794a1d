package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"adbook/infras/otel/mocks"
	dealMocks "adbook/internal/domains/deal/mocks"
	"adbook/internal/domains/deal/model"
	"adbook/internal/domains/deal/model/dto"
	"adbook/internal/domains/deal/service"
	placementMocks "adbook/internal/domains/placement/mocks"
	placementModel "adbook/internal/domains/placement/model"
	"adbook/shared/constant"
	"adbook/shared/failure"
	gModel "adbook/shared/model"
	gRepo "adbook/shared/repository"
	"adbook/shared/timezone"
)

func TestDeriveRevenue(t *testing.T) {
	tests := []struct {
		name           string
		bookedRevenue  string
		conversionRate string
		dealCurrency   string
		wantDeal       string
		wantExec       string
	}{
		{
			name:           "USD converts by rate",
			bookedRevenue:  "1000",
			conversionRate: "83",
			dealCurrency:   "USD",
			wantDeal:       "1000.00",
			wantExec:       "83000.00",
		},
		{
			name:           "INR ignores rate",
			bookedRevenue:  "1000",
			conversionRate: "83",
			dealCurrency:   "INR",
			wantDeal:       "1000.00",
			wantExec:       "1000.00",
		},
		{
			name:           "zero rate treated as one",
			bookedRevenue:  "500.5",
			conversionRate: "0",
			dealCurrency:   "USD",
			wantDeal:       "500.50",
			wantExec:       "500.50",
		},
		{
			name:           "fractional product rounds half up",
			bookedRevenue:  "10.005",
			conversionRate: "1",
			dealCurrency:   "USD",
			wantDeal:       "10.01",
			wantExec:       "10.01",
		},
		{
			name:           "zero revenue",
			bookedRevenue:  "0",
			conversionRate: "83",
			dealCurrency:   "USD",
			wantDeal:       "0.00",
			wantExec:       "0.00",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			revenue := decimal.RequireFromString(tt.bookedRevenue)
			rate := decimal.RequireFromString(tt.conversionRate)

			dealAmount, execAmount := service.DeriveRevenue(revenue, rate, tt.dealCurrency)

			assert.Equal(t, tt.wantDeal, dealAmount.StringFixed(2))
			assert.Equal(t, tt.wantExec, execAmount.StringFixed(2))
		})
	}
}

func TestDeriveRevenue_Idempotent(t *testing.T) {
	revenue := decimal.RequireFromString("1234.567")
	rate := decimal.RequireFromString("82.75")

	dealFirst, execFirst := service.DeriveRevenue(revenue, rate, "USD")
	dealAgain, execAgain := service.DeriveRevenue(revenue, rate, "USD")

	assert.True(t, dealFirst.Equal(dealAgain))
	assert.True(t, execFirst.Equal(execAgain))

	// Re-deriving from the already rounded base must reproduce it unchanged.
	dealSecond, _ := service.DeriveRevenue(dealFirst, rate, "USD")
	assert.True(t, dealFirst.Equal(dealSecond))
}

func TestDealService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := dealMocks.NewMockDeal(ctrl)
	mockPlacementRepo := placementMocks.NewMockPlacement(ctrl)
	mockOtel := mocks.NewOtel()

	svc := service.New(mockRepo, mockPlacementRepo, mockOtel)

	validReq := dto.CreateDealRequest{
		DealName:       "Festive Burst",
		DealCurrency:   "USD",
		ConversionRate: decimal.NewFromInt(83),
		BookedRevenue:  decimal.NewFromInt(1000),
		StartDate:      "2024-01-01",
		EndDate:        "2024-03-31",
	}

	tests := []struct {
		name      string
		req       dto.CreateDealRequest
		setupMock func()
		wantErr   bool
	}{
		{
			name: "successful creation",
			req:  validReq,
			setupMock: func() {
				mockRepo.EXPECT().
					Upsert(gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "invalid date format",
			req: dto.CreateDealRequest{
				DealName:     "Festive Burst",
				DealCurrency: "USD",
				StartDate:    "01/01/2024",
				EndDate:      "2024-03-31",
			},
			setupMock: func() {},
			wantErr:   true,
		},
		{
			name: "end date before start date",
			req: dto.CreateDealRequest{
				DealName:     "Festive Burst",
				DealCurrency: "USD",
				StartDate:    "2024-03-31",
				EndDate:      "2024-01-01",
			},
			setupMock: func() {},
			wantErr:   true,
		},
		{
			name: "negative revenue",
			req: dto.CreateDealRequest{
				DealName:      "Festive Burst",
				DealCurrency:  "USD",
				BookedRevenue: decimal.NewFromInt(-1),
				StartDate:     "2024-01-01",
				EndDate:       "2024-03-31",
			},
			setupMock: func() {},
			wantErr:   true,
		},
		{
			name: "repository error",
			req:  validReq,
			setupMock: func() {
				mockRepo.EXPECT().
					Upsert(gomock.Any(), gomock.Any()).
					Return(errors.New("store unavailable"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user")
			res, err := svc.Create(ctx, tt.req)

			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.NotEmpty(t, res.ID)
			assert.Contains(t, res.ID, constant.DealIDPrefix+"-")
			assert.Equal(t, "1,000.00", res.BookedRevenueDealCurrency)
			assert.Equal(t, "83,000.00", res.BookedRevenueExecCurrency)
			assert.Equal(t, constant.CurrencyINR, res.ExecutionCurrency)
			assert.Equal(t, constant.StatusActive, res.DealStatus)
			assert.Equal(t, "test-user", res.CreatedBy)
		})
	}
}

func TestDealService_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := dealMocks.NewMockDeal(ctrl)
	mockPlacementRepo := placementMocks.NewMockPlacement(ctrl)
	mockOtel := mocks.NewOtel()

	svc := service.New(mockRepo, mockPlacementRepo, mockOtel)

	stored := model.Deal{
		ID:                "DL-1",
		DealName:          "Festive Burst",
		DealCurrency:      "USD",
		ExecutionCurrency: constant.CurrencyINR,
		ConversionRate:    decimal.NewFromInt(83),
		BookedRevenue:     decimal.NewFromInt(1000),
		StartDate:         timezone.Now().AddDate(0, -1, 0),
		EndDate:           timezone.Now().AddDate(0, 1, 0),
		DealStatus:        constant.StatusActive,
		Metadata: gModel.Metadata{
			CreatedBy:  "creator",
			ModifiedBy: "creator",
		},
	}

	newRevenue := decimal.NewFromInt(2000)

	t.Run("re-derives revenue on edit", func(t *testing.T) {
		mockRepo.EXPECT().Get(gomock.Any(), "DL-1").Return(stored, nil)

		var saved model.Deal
		mockRepo.EXPECT().
			Upsert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, deal model.Deal) error {
				saved = deal
				return nil
			})

		ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "editor")
		res, err := svc.Update(ctx, dto.UpdateDealRequest{BookedRevenue: &newRevenue}, "DL-1")

		require.NoError(t, err)
		assert.Equal(t, "2,000.00", res.BookedRevenueDealCurrency)
		assert.Equal(t, "1,66,000.00", res.BookedRevenueExecCurrency)
		assert.Equal(t, "editor", saved.ModifiedBy)
		assert.Equal(t, "creator", saved.CreatedBy)
	})

	t.Run("empty request rejected", func(t *testing.T) {
		_, err := svc.Update(context.Background(), dto.UpdateDealRequest{}, "DL-1")

		assert.Error(t, err)
		assert.Equal(t, 400, failure.GetCode(err))
	})

	t.Run("unknown deal", func(t *testing.T) {
		mockRepo.EXPECT().Get(gomock.Any(), "DL-404").Return(model.Deal{}, gRepo.ErrNotFound)

		_, err := svc.Update(context.Background(), dto.UpdateDealRequest{BookedRevenue: &newRevenue}, "DL-404")

		assert.Error(t, err)
		assert.Equal(t, 404, failure.GetCode(err))
	})
}

func TestDealService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := dealMocks.NewMockDeal(ctrl)
	mockPlacementRepo := placementMocks.NewMockPlacement(ctrl)
	mockOtel := mocks.NewOtel()

	svc := service.New(mockRepo, mockPlacementRepo, mockOtel)

	t.Run("rejected while placements exist", func(t *testing.T) {
		mockRepo.EXPECT().Exist(gomock.Any(), "DL-1").Return(true, nil)
		mockPlacementRepo.EXPECT().
			GetByDeal(gomock.Any(), "DL-1").
			Return([]placementModel.Placement{{ID: "PL-1", DealID: "DL-1"}}, nil)

		err := svc.Delete(context.Background(), "DL-1")

		assert.Error(t, err)
		assert.Equal(t, 409, failure.GetCode(err))
	})

	t.Run("deletes when no placements remain", func(t *testing.T) {
		mockRepo.EXPECT().Exist(gomock.Any(), "DL-1").Return(true, nil)
		mockPlacementRepo.EXPECT().GetByDeal(gomock.Any(), "DL-1").Return(nil, nil)
		mockRepo.EXPECT().Delete(gomock.Any(), "DL-1").Return(nil)

		err := svc.Delete(context.Background(), "DL-1")

		assert.NoError(t, err)
	})

	t.Run("unknown deal", func(t *testing.T) {
		mockRepo.EXPECT().Exist(gomock.Any(), "DL-404").Return(false, nil)

		err := svc.Delete(context.Background(), "DL-404")

		assert.Error(t, err)
		assert.Equal(t, 404, failure.GetCode(err))
	})
}

func TestDealService_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := dealMocks.NewMockDeal(ctrl)
	mockPlacementRepo := placementMocks.NewMockPlacement(ctrl)
	mockOtel := mocks.NewOtel()

	svc := service.New(mockRepo, mockPlacementRepo, mockOtel)

	t.Run("joins multi-valued fields for display", func(t *testing.T) {
		mockRepo.EXPECT().Get(gomock.Any(), "DL-1").Return(model.Deal{
			ID:           "DL-1",
			ClientNames:  []string{"Acme", "Globex"},
			ChannelNames: []string{"Sports HD"},
		}, nil)

		res, err := svc.Get(context.Background(), "DL-1")

		require.NoError(t, err)
		assert.Equal(t, "Acme, Globex", res.ClientName)
		assert.Equal(t, "Sports HD", res.ChannelName)
	})

	t.Run("unknown deal", func(t *testing.T) {
		mockRepo.EXPECT().Get(gomock.Any(), "DL-404").Return(model.Deal{}, gRepo.ErrNotFound)

		_, err := svc.Get(context.Background(), "DL-404")

		assert.Error(t, err)
		assert.Equal(t, 404, failure.GetCode(err))
	})
}
