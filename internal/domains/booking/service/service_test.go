package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"tourbase/config"
	lockMocks "tourbase/infras/lock/mocks"
	"tourbase/infras/otel/mocks"
	bookingMocks "tourbase/internal/domains/booking/mocks"
	"tourbase/internal/domains/booking/model"
	"tourbase/internal/domains/booking/model/dto"
	"tourbase/internal/domains/booking/service"
	calendarsyncMocks "tourbase/internal/domains/calendarsync/mocks"
	calendarsyncModel "tourbase/internal/domains/calendarsync/model"
	pendingMocks "tourbase/internal/domains/pending/mocks"
	pendingModel "tourbase/internal/domains/pending/model"
	pricingMocks "tourbase/internal/domains/pricing/mocks"
	unitMocks "tourbase/internal/domains/unit/mocks"
	unitModel "tourbase/internal/domains/unit/model"
	cacheMocks "tourbase/shared/cache/mocks"
	"tourbase/shared/constant"
	"tourbase/shared/daterange"
	"tourbase/shared/failure"
)

const testUnitID = "0d4f22a3-5f4e-4b6a-9a0d-8f2d6f6c1a11"

func day(value string) time.Time {
	d, _ := daterange.ParseDay(value)

	return d
}

type bookingServiceMocks struct {
	repo      *bookingMocks.MockBooking
	unitRepo  *unitMocks.MockUnit
	pending   *pendingMocks.MockPendingBooking
	busyBlock *calendarsyncMocks.MockExternalBusyBlock
	pricing   *pricingMocks.MockEngine
	cache     *cacheMocks.MockRedisCache
}

func newBookingService(ctrl *gomock.Controller) (service.Booking, bookingServiceMocks) {
	m := bookingServiceMocks{
		repo:      bookingMocks.NewMockBooking(ctrl),
		unitRepo:  unitMocks.NewMockUnit(ctrl),
		pending:   pendingMocks.NewMockPendingBooking(ctrl),
		busyBlock: calendarsyncMocks.NewMockExternalBusyBlock(ctrl),
		pricing:   pricingMocks.NewMockEngine(ctrl),
		cache:     cacheMocks.NewMockRedisCache(ctrl),
	}

	m.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	m.cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	m.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(m.repo, m.unitRepo, m.pending, m.busyBlock, m.pricing, lockMocks.NewLocker(), cfg, m.cache, mocks.NewOtel())

	return svc, m
}

func TestBookingService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newBookingService(ctrl)

	unit := unitModel.Unit{ID: testUnitID, Name: "Villa Sari", BasePrice: 1000}

	tests := []struct {
		name      string
		req       dto.CreateBookingRequest
		setupMock func()
		wantErr   bool
		wantCode  int
		wantPrice float64
	}{
		{
			name: "successful creation with explicit price",
			req: dto.CreateBookingRequest{
				UnitID:    testUnitID,
				GuestName: "Budi",
				CheckIn:   "2026-09-01",
				CheckOut:  "2026-09-04",
				TotalPrice: 4500,
			},
			setupMock: func() {
				m.unitRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(unit, nil)
				m.repo.EXPECT().
					FindOverlapping(gomock.Any(), testUnitID, day("2026-09-01"), day("2026-09-04")).
					Return(nil, nil)
				m.busyBlock.EXPECT().
					FindOverlapping(gomock.Any(), testUnitID, day("2026-09-01"), day("2026-09-04")).
					Return(nil, nil)
				m.repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantPrice: 4500,
		},
		{
			name: "price quoted by the engine when omitted",
			req: dto.CreateBookingRequest{
				UnitID:    testUnitID,
				GuestName: "Budi",
				CheckIn:   "2026-09-01",
				CheckOut:  "2026-09-04",
			},
			setupMock: func() {
				m.unitRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(unit, nil)
				m.repo.EXPECT().
					FindOverlapping(gomock.Any(), testUnitID, gomock.Any(), gomock.Any()).
					Return(nil, nil)
				m.busyBlock.EXPECT().
					FindOverlapping(gomock.Any(), testUnitID, gomock.Any(), gomock.Any()).
					Return(nil, nil)
				m.pricing.EXPECT().
					QuoteStay(gomock.Any(), unit, day("2026-09-01"), day("2026-09-04")).
					Return(3300.0, nil)
				m.repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantPrice: 3300,
		},
		{
			name: "check_out before check_in",
			req: dto.CreateBookingRequest{
				UnitID:    testUnitID,
				GuestName: "Budi",
				CheckIn:   "2026-09-04",
				CheckOut:  "2026-09-01",
			},
			setupMock: func() {},
			wantErr:   true,
			wantCode:  http.StatusBadRequest,
		},
		{
			name: "zero-night stay rejected",
			req: dto.CreateBookingRequest{
				UnitID:    testUnitID,
				GuestName: "Budi",
				CheckIn:   "2026-09-01",
				CheckOut:  "2026-09-01",
			},
			setupMock: func() {},
			wantErr:   true,
			wantCode:  http.StatusBadRequest,
		},
		{
			name: "unit does not exist",
			req: dto.CreateBookingRequest{
				UnitID:    testUnitID,
				GuestName: "Budi",
				CheckIn:   "2026-09-01",
				CheckOut:  "2026-09-04",
			},
			setupMock: func() {
				m.unitRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(unitModel.Unit{}, nil)
			},
			wantErr:  true,
			wantCode: http.StatusBadRequest,
		},
		{
			name: "dates overlap an existing booking",
			req: dto.CreateBookingRequest{
				UnitID:    testUnitID,
				GuestName: "Budi",
				CheckIn:   "2026-09-01",
				CheckOut:  "2026-09-04",
			},
			setupMock: func() {
				m.unitRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(unit, nil)
				m.repo.EXPECT().
					FindOverlapping(gomock.Any(), testUnitID, gomock.Any(), gomock.Any()).
					Return([]model.Booking{{ID: "existing"}}, nil)
			},
			wantErr:  true,
			wantCode: http.StatusConflict,
		},
		{
			name: "dates blocked by an external calendar",
			req: dto.CreateBookingRequest{
				UnitID:    testUnitID,
				GuestName: "Budi",
				CheckIn:   "2026-09-01",
				CheckOut:  "2026-09-04",
			},
			setupMock: func() {
				m.unitRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(unit, nil)
				m.repo.EXPECT().
					FindOverlapping(gomock.Any(), testUnitID, gomock.Any(), gomock.Any()).
					Return(nil, nil)
				m.busyBlock.EXPECT().
					FindOverlapping(gomock.Any(), testUnitID, gomock.Any(), gomock.Any()).
					Return([]calendarsyncModel.ExternalBusyBlock{{ID: "block"}}, nil)
			},
			wantErr:  true,
			wantCode: http.StatusConflict,
		},
		{
			name: "repository error",
			req: dto.CreateBookingRequest{
				UnitID:    testUnitID,
				GuestName: "Budi",
				CheckIn:   "2026-09-01",
				CheckOut:  "2026-09-04",
				TotalPrice: 4500,
			},
			setupMock: func() {
				m.unitRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(unit, nil)
				m.repo.EXPECT().
					FindOverlapping(gomock.Any(), testUnitID, gomock.Any(), gomock.Any()).
					Return(nil, nil)
				m.busyBlock.EXPECT().
					FindOverlapping(gomock.Any(), testUnitID, gomock.Any(), gomock.Any()).
					Return(nil, nil)
				m.repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
			res, err := svc.Create(ctx, tt.req)

			if tt.wantErr {
				assert.Error(t, err)

				if tt.wantCode != 0 {
					assert.Equal(t, tt.wantCode, failure.GetCode(err))
				}

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, testUnitID, res.UnitID)
			assert.Equal(t, model.StatusConfirmed, res.Status)
			assert.Equal(t, tt.wantPrice, res.TotalPrice)
		})
	}
}

func TestBookingService_GetDayStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newBookingService(ctrl)

	date := day("2026-09-02")
	next := day("2026-09-03")

	tests := []struct {
		name       string
		setupMock  func()
		wantStatus model.DayStatus
	}{
		{
			name: "confirmed booking wins",
			setupMock: func() {
				m.repo.EXPECT().
					FindOverlapping(gomock.Any(), testUnitID, date, next).
					Return([]model.Booking{{ID: "b1"}}, nil)
			},
			wantStatus: model.DayStatusConfirmed,
		},
		{
			name: "pending beats external",
			setupMock: func() {
				m.repo.EXPECT().
					FindOverlapping(gomock.Any(), testUnitID, date, next).
					Return(nil, nil)
				m.pending.EXPECT().
					FindOverlapping(gomock.Any(), testUnitID, date, next).
					Return([]pendingModel.PendingBooking{{ID: "p1"}}, nil)
			},
			wantStatus: model.DayStatusPending,
		},
		{
			name: "external busy block",
			setupMock: func() {
				m.repo.EXPECT().
					FindOverlapping(gomock.Any(), testUnitID, date, next).
					Return(nil, nil)
				m.pending.EXPECT().
					FindOverlapping(gomock.Any(), testUnitID, date, next).
					Return(nil, nil)
				m.busyBlock.EXPECT().
					FindOverlapping(gomock.Any(), testUnitID, date, next).
					Return([]calendarsyncModel.ExternalBusyBlock{{ID: "e1"}}, nil)
			},
			wantStatus: model.DayStatusExternal,
		},
		{
			name: "free day",
			setupMock: func() {
				m.repo.EXPECT().
					FindOverlapping(gomock.Any(), testUnitID, date, next).
					Return(nil, nil)
				m.pending.EXPECT().
					FindOverlapping(gomock.Any(), testUnitID, date, next).
					Return(nil, nil)
				m.busyBlock.EXPECT().
					FindOverlapping(gomock.Any(), testUnitID, date, next).
					Return(nil, nil)
			},
			wantStatus: model.DayStatusFree,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := svc.GetDayStatus(context.Background(), testUnitID, date)

			assert.NoError(t, err)
			assert.Equal(t, tt.wantStatus, res.Status)
			assert.Equal(t, "2026-09-02", res.Date)
		})
	}
}

func TestBookingService_GetCalendar(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newBookingService(ctrl)

	from := day("2026-09-01")
	to := day("2026-09-05")

	t.Run("resolves each day with the right precedence", func(t *testing.T) {
		m.cache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("cache miss"))

		m.repo.EXPECT().
			FindOverlapping(gomock.Any(), testUnitID, from, to).
			Return([]model.Booking{{ID: "b1", CheckIn: day("2026-09-01"), CheckOut: day("2026-09-02")}}, nil)
		m.pending.EXPECT().
			FindOverlapping(gomock.Any(), testUnitID, from, to).
			Return([]pendingModel.PendingBooking{{ID: "p1", CheckIn: day("2026-09-02"), CheckOut: day("2026-09-03")}}, nil)
		m.busyBlock.EXPECT().
			FindOverlapping(gomock.Any(), testUnitID, from, to).
			Return([]calendarsyncModel.ExternalBusyBlock{{ID: "e1", StartDate: day("2026-09-03"), EndDate: day("2026-09-04")}}, nil)

		res, err := svc.GetCalendar(context.Background(), testUnitID, from, to)

		assert.NoError(t, err)
		assert.Len(t, res.Days, 4)
		assert.Equal(t, model.DayStatusConfirmed, res.Days[0].Status)
		assert.Equal(t, model.DayStatusPending, res.Days[1].Status)
		assert.Equal(t, model.DayStatusExternal, res.Days[2].Status)
		assert.Equal(t, model.DayStatusFree, res.Days[3].Status)
	})

	t.Run("rejects an empty range", func(t *testing.T) {
		_, err := svc.GetCalendar(context.Background(), testUnitID, to, from)

		assert.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})
}

func TestBookingService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newBookingService(ctrl)

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
		wantCode  int
	}{
		{
			name: "successful deletion",
			setupMock: func() {
				m.repo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)
				m.repo.EXPECT().
					Delete(gomock.Any(), gomock.Any()).
					Return(nil)
			},
		},
		{
			name: "booking not found",
			setupMock: func() {
				m.repo.EXPECT().
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

			err := svc.Delete(context.Background(), "booking-id")

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			assert.NoError(t, err)
		})
	}
}
