package service_test

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"tourbase/config"
	"tourbase/infras/otel/mocks"
	pricingMocks "tourbase/internal/domains/pricing/mocks"
	"tourbase/internal/domains/pricing/model"
	"tourbase/internal/domains/pricing/model/dto"
	"tourbase/internal/domains/pricing/service"
	unitMocks "tourbase/internal/domains/unit/mocks"
	cacheMocks "tourbase/shared/cache/mocks"
	"tourbase/shared/constant"
	"tourbase/shared/failure"
)

type pricingServiceMocks struct {
	profileRepo *pricingMocks.MockPricingProfile
	ruleRepo    *pricingMocks.MockPricingRule
	unitRepo    *unitMocks.MockUnit
	cache       *cacheMocks.MockRedisCache
}

func newPricingService(ctrl *gomock.Controller) (service.Pricing, pricingServiceMocks) {
	m := pricingServiceMocks{
		profileRepo: pricingMocks.NewMockPricingProfile(ctrl),
		ruleRepo:    pricingMocks.NewMockPricingRule(ctrl),
		unitRepo:    unitMocks.NewMockUnit(ctrl),
		cache:       cacheMocks.NewMockRedisCache(ctrl),
	}

	m.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	m.cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	m.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(m.profileRepo, m.ruleRepo, m.unitRepo, cfg, m.cache, mocks.NewOtel())

	return svc, m
}

func floatPtr(v float64) *float64 {
	return &v
}

func TestPricingService_CreateProfile(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newPricingService(ctrl)

	tests := []struct {
		name      string
		req       dto.CreatePricingProfileRequest
		setupMock func()
		wantErr   bool
		wantCode  int
	}{
		{
			name: "successful creation",
			req: dto.CreatePricingProfileRequest{
				Name:     "high season",
				Mode:     model.ModeRules,
				MinPrice: floatPtr(500),
				MaxPrice: floatPtr(2500),
			},
			setupMock: func() {
				m.profileRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(nil)
			},
		},
		{
			name: "min above max",
			req: dto.CreatePricingProfileRequest{
				Name:     "inverted",
				Mode:     model.ModeRules,
				MinPrice: floatPtr(3000),
				MaxPrice: floatPtr(1000),
			},
			setupMock: func() {},
			wantErr:   true,
			wantCode:  http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
			res, err := svc.CreateProfile(ctx, tt.req)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			assert.NoError(t, err)
			assert.True(t, res.Enabled)
			assert.Equal(t, model.ModeRules, res.Mode)
		})
	}
}

func TestPricingService_UpdateProfile(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newPricingService(ctrl)

	tests := []struct {
		name      string
		req       dto.UpdatePricingProfileRequest
		setupMock func()
		wantErr   bool
		wantCode  int
	}{
		{
			name: "successful update",
			req:  dto.UpdatePricingProfileRequest{MaxPrice: floatPtr(5000)},
			setupMock: func() {
				m.profileRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.PricingProfile{ID: testProfileID, MinPrice: floatPtr(500)}, nil)
				m.profileRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
		},
		{
			name: "patch would invert stored bounds",
			req:  dto.UpdatePricingProfileRequest{MinPrice: floatPtr(3000)},
			setupMock: func() {
				m.profileRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.PricingProfile{ID: testProfileID, MaxPrice: floatPtr(2000)}, nil)
			},
			wantErr:  true,
			wantCode: http.StatusBadRequest,
		},
		{
			name:      "empty request",
			req:       dto.UpdatePricingProfileRequest{},
			setupMock: func() {},
			wantErr:   true,
			wantCode:  http.StatusBadRequest,
		},
		{
			name: "profile not found",
			req:  dto.UpdatePricingProfileRequest{MaxPrice: floatPtr(5000)},
			setupMock: func() {
				m.profileRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.PricingProfile{}, nil)
			},
			wantErr:  true,
			wantCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
			err := svc.UpdateProfile(ctx, tt.req, testProfileID)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			assert.NoError(t, err)
		})
	}
}

func TestPricingService_CreateRule(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newPricingService(ctrl)

	tests := []struct {
		name      string
		req       dto.CreatePricingRuleRequest
		setupMock func()
		wantErr   bool
		wantCode  int
	}{
		{
			name: "successful creation",
			req: dto.CreatePricingRuleRequest{
				ProfileID:      testProfileID,
				Name:           "high occupancy",
				ConditionType:  model.ConditionOccupancy,
				ConditionValue: json.RawMessage(`{"threshold": 80, "operator": ">="}`),
				ActionType:     model.ActionIncrease,
				ActionUnit:     model.UnitPercent,
				ActionValue:    20,
				Priority:       10,
			},
			setupMock: func() {
				m.profileRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)
				m.ruleRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(nil)
			},
		},
		{
			name: "malformed condition_value",
			req: dto.CreatePricingRuleRequest{
				ProfileID:      testProfileID,
				Name:           "broken",
				ConditionType:  model.ConditionOccupancy,
				ConditionValue: json.RawMessage(`{invalid`),
				ActionType:     model.ActionIncrease,
				ActionUnit:     model.UnitPercent,
				ActionValue:    20,
			},
			setupMock: func() {},
			wantErr:   true,
			wantCode:  http.StatusBadRequest,
		},
		{
			name: "profile does not exist",
			req: dto.CreatePricingRuleRequest{
				ProfileID:      testProfileID,
				Name:           "orphan",
				ConditionType:  model.ConditionDayOfWeek,
				ConditionValue: json.RawMessage(`{"days": [5, 6]}`),
				ActionType:     model.ActionIncrease,
				ActionUnit:     model.UnitPercent,
				ActionValue:    15,
			},
			setupMock: func() {
				m.profileRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)
			},
			wantErr:  true,
			wantCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
			res, err := svc.CreateRule(ctx, tt.req)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, testProfileID, res.ProfileID)
			assert.True(t, res.Enabled)
		})
	}
}

func TestPricingService_ToggleDynamic(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newPricingService(ctrl)

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
		wantCode  int
	}{
		{
			name: "enables dynamic pricing",
			setupMock: func() {
				m.unitRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)
				m.unitRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
		},
		{
			name: "unit not found",
			setupMock: func() {
				m.unitRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)
			},
			wantErr:  true,
			wantCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
			err := svc.ToggleDynamic(ctx, testUnitID, true)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			assert.NoError(t, err)
		})
	}
}
