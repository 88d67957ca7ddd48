package service_test

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"tourbase/config"
	lockMocks "tourbase/infras/lock/mocks"
	"tourbase/infras/otel/mocks"
	postgresMocks "tourbase/infras/postgres/mocks"
	bookingMocks "tourbase/internal/domains/booking/mocks"
	bookingModel "tourbase/internal/domains/booking/model"
	"tourbase/internal/domains/calendarsync/feed"
	syncMocks "tourbase/internal/domains/calendarsync/mocks"
	"tourbase/internal/domains/calendarsync/model"
	"tourbase/internal/domains/calendarsync/model/dto"
	"tourbase/internal/domains/calendarsync/service"
	unitMocks "tourbase/internal/domains/unit/mocks"
	cacheMocks "tourbase/shared/cache/mocks"
	"tourbase/shared/constant"
	"tourbase/shared/daterange"
	"tourbase/shared/failure"
)

const (
	testUnitID = "0d4f22a3-5f4e-4b6a-9a0d-8f2d6f6c1a11"
	testSyncID = "7a1c9f02-3b84-4d15-8a6e-2f0b9c4d7e33"
)

func day(value string) time.Time {
	d, _ := daterange.ParseDay(value)

	return d
}

type calendarSyncMocks struct {
	repo        *syncMocks.MockCalendarSync
	blockRepo   *syncMocks.MockExternalBusyBlock
	bookingRepo *bookingMocks.MockBooking
	unitRepo    *unitMocks.MockUnit
	fetcher     *syncMocks.MockFetcher
	cache       *cacheMocks.MockRedisCache
}

func newCalendarSyncService(ctrl *gomock.Controller) (service.CalendarSync, calendarSyncMocks) {
	m := calendarSyncMocks{
		repo:        syncMocks.NewMockCalendarSync(ctrl),
		blockRepo:   syncMocks.NewMockExternalBusyBlock(ctrl),
		bookingRepo: bookingMocks.NewMockBooking(ctrl),
		unitRepo:    unitMocks.NewMockUnit(ctrl),
		fetcher:     syncMocks.NewMockFetcher(ctrl),
		cache:       cacheMocks.NewMockRedisCache(ctrl),
	}

	m.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	m.cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	m.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600
	cfg.Sync.FeedTimeoutSeconds = 10
	cfg.Sync.ExportHost = "tourbase.example.com"

	svc := service.New(
		m.repo,
		m.blockRepo,
		m.bookingRepo,
		m.unitRepo,
		m.fetcher,
		lockMocks.NewLocker(),
		postgresMocks.NewTxRunner(),
		cfg,
		m.cache,
		mocks.NewOtel(),
	)

	return svc, m
}

func activeSync() model.CalendarSync {
	return model.CalendarSync{
		ID:          testSyncID,
		UnitID:      testUnitID,
		Platform:    "airbnb",
		CalendarURL: "https://airbnb.example.com/calendar.ics",
		IsActive:    true,
	}
}

func TestCalendarSyncService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newCalendarSyncService(ctrl)

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
		wantCode  int
	}{
		{
			name: "successful creation",
			setupMock: func() {
				m.unitRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)
				m.repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(nil)
			},
		},
		{
			name: "unit does not exist",
			setupMock: func() {
				m.unitRepo.EXPECT().
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
			res, err := svc.Create(ctx, dto.CreateCalendarSyncRequest{
				UnitID:      testUnitID,
				Platform:    "airbnb",
				CalendarURL: "https://airbnb.example.com/calendar.ics",
			})

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			assert.NoError(t, err)
			assert.True(t, res.IsActive)
			assert.Equal(t, "airbnb", res.Platform)
		})
	}
}

func TestCalendarSyncService_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newCalendarSyncService(ctrl)

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
		wantCode  int
	}{
		{
			name: "found",
			setupMock: func() {
				m.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(activeSync(), nil)
			},
		},
		{
			name: "not found",
			setupMock: func() {
				m.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.CalendarSync{}, nil)
			},
			wantErr:  true,
			wantCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := svc.Get(context.Background(), testSyncID)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, testSyncID, res.ID)
		})
	}
}

func TestCalendarSyncService_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newCalendarSyncService(ctrl)

	inactive := false

	tests := []struct {
		name      string
		req       dto.UpdateCalendarSyncRequest
		setupMock func()
		wantErr   bool
		wantCode  int
	}{
		{
			name: "successful update",
			req:  dto.UpdateCalendarSyncRequest{IsActive: &inactive},
			setupMock: func() {
				m.repo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)
				m.repo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
		},
		{
			name:      "empty request",
			req:       dto.UpdateCalendarSyncRequest{},
			setupMock: func() {},
			wantErr:   true,
			wantCode:  http.StatusBadRequest,
		},
		{
			name: "not found",
			req:  dto.UpdateCalendarSyncRequest{IsActive: &inactive},
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

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
			err := svc.Update(ctx, tt.req, testSyncID)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			assert.NoError(t, err)
		})
	}
}

func TestCalendarSyncService_SyncNow(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newCalendarSyncService(ctrl)

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
		wantCode  int
	}{
		{
			name: "inactive sync is skipped",
			setupMock: func() {
				sync := activeSync()
				sync.IsActive = false

				m.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(sync, nil)
			},
		},
		{
			name: "fetch failure is recorded on the sync",
			setupMock: func() {
				m.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(activeSync(), nil)
				m.fetcher.EXPECT().
					Fetch(gomock.Any(), "https://airbnb.example.com/calendar.ics").
					Return(nil, errors.New("http 503"))
				m.repo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: true,
		},
		{
			name: "sync not found",
			setupMock: func() {
				m.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.CalendarSync{}, nil)
			},
			wantErr:  true,
			wantCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := svc.SyncNow(context.Background(), testSyncID)

			if tt.wantErr {
				assert.Error(t, err)

				if tt.wantCode != 0 {
					assert.Equal(t, tt.wantCode, failure.GetCode(err))
				}

				return
			}

			assert.NoError(t, err)
			assert.Zero(t, res.Imported)
			assert.Zero(t, res.Updated)
			assert.Zero(t, res.Removed)
		})
	}
}

func busyBlock(id, uid, from, to string) model.ExternalBusyBlock {
	return model.ExternalBusyBlock{
		ID:          id,
		SyncID:      testSyncID,
		UnitID:      testUnitID,
		ExternalUID: uid,
		StartDate:   day(from),
		EndDate:     day(to),
		Summary:     "Reserved",
	}
}

func TestCalendarSyncService_SyncNow_Reconcile(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newCalendarSyncService(ctrl)

	t.Run("unchanged feed is a zero-op", func(t *testing.T) {
		events := []feed.Event{
			{UID: "uid-a", Start: day("2026-10-01"), End: day("2026-10-04"), Summary: "Reserved"},
			{UID: "uid-b", Start: day("2026-10-10"), End: day("2026-10-12"), Summary: "Reserved"},
		}
		existing := []model.ExternalBusyBlock{
			busyBlock("block-a", "uid-a", "2026-10-01", "2026-10-04"),
			busyBlock("block-b", "uid-b", "2026-10-10", "2026-10-12"),
		}

		m.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(activeSync(), nil)
		m.fetcher.EXPECT().
			Fetch(gomock.Any(), "https://airbnb.example.com/calendar.ics").
			Return(events, nil)
		m.blockRepo.EXPECT().
			FindBySync(gomock.Any(), testSyncID).
			Return(existing, nil)
		m.repo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil)

		res, err := svc.SyncNow(context.Background(), testSyncID)

		assert.NoError(t, err)
		assert.Zero(t, res.Imported)
		assert.Zero(t, res.Updated)
		assert.Zero(t, res.Removed)
	})

	t.Run("new, shifted and vanished uids reconcile", func(t *testing.T) {
		events := []feed.Event{
			{UID: "uid-a", Start: day("2026-10-01"), End: day("2026-10-04"), Summary: "Reserved"},
			{UID: "uid-b", Start: day("2026-10-11"), End: day("2026-10-13"), Summary: "Reserved"},
			{UID: "uid-d", Start: day("2026-11-01"), End: day("2026-11-03"), Summary: "Reserved"},
		}
		existing := []model.ExternalBusyBlock{
			busyBlock("block-a", "uid-a", "2026-10-01", "2026-10-04"),
			busyBlock("block-b", "uid-b", "2026-10-10", "2026-10-12"),
			busyBlock("block-c", "uid-c", "2026-10-20", "2026-10-22"),
		}

		m.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(activeSync(), nil)
		m.fetcher.EXPECT().
			Fetch(gomock.Any(), "https://airbnb.example.com/calendar.ics").
			Return(events, nil)
		m.blockRepo.EXPECT().
			FindBySync(gomock.Any(), testSyncID).
			Return(existing, nil)

		m.blockRepo.EXPECT().
			InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ any, block model.ExternalBusyBlock) error {
				assert.Equal(t, "uid-d", block.ExternalUID)
				assert.Equal(t, testUnitID, block.UnitID)

				return nil
			})
		m.blockRepo.EXPECT().
			UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ any, fields map[string]any, _ any) error {
				assert.Equal(t, day("2026-10-11"), fields[model.FieldBlockStartAt])
				assert.Equal(t, day("2026-10-13"), fields[model.FieldBlockEndAt])

				return nil
			})
		m.blockRepo.EXPECT().
			DeleteTx(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil)
		m.repo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil)

		res, err := svc.SyncNow(context.Background(), testSyncID)

		assert.NoError(t, err)
		assert.Equal(t, 1, res.Imported)
		assert.Equal(t, 1, res.Updated)
		assert.Equal(t, 1, res.Removed)
	})
}

func TestCalendarSyncService_SyncNow_InvalidatesCalendars(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := calendarSyncMocks{
		repo:        syncMocks.NewMockCalendarSync(ctrl),
		blockRepo:   syncMocks.NewMockExternalBusyBlock(ctrl),
		bookingRepo: bookingMocks.NewMockBooking(ctrl),
		unitRepo:    unitMocks.NewMockUnit(ctrl),
		fetcher:     syncMocks.NewMockFetcher(ctrl),
		cache:       cacheMocks.NewMockRedisCache(ctrl),
	}

	cleared := make(chan string, 8)

	m.cache.EXPECT().
		Clear(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, prefix string) error {
			cleared <- prefix

			return nil
		}).
		AnyTimes()
	m.cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600
	cfg.Sync.FeedTimeoutSeconds = 10

	svc := service.New(
		m.repo,
		m.blockRepo,
		m.bookingRepo,
		m.unitRepo,
		m.fetcher,
		lockMocks.NewLocker(),
		postgresMocks.NewTxRunner(),
		cfg,
		m.cache,
		mocks.NewOtel(),
	)

	m.repo.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		Return(activeSync(), nil)
	m.fetcher.EXPECT().
		Fetch(gomock.Any(), "https://airbnb.example.com/calendar.ics").
		Return([]feed.Event{
			{UID: "uid-a", Start: day("2026-10-01"), End: day("2026-10-04"), Summary: "Reserved"},
		}, nil)
	m.blockRepo.EXPECT().
		FindBySync(gomock.Any(), testSyncID).
		Return(nil, nil)
	m.blockRepo.EXPECT().
		InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil)
	m.repo.EXPECT().
		Update(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil)

	res, err := svc.SyncNow(context.Background(), testSyncID)

	assert.NoError(t, err)
	assert.Equal(t, 1, res.Imported)

	wantBooking := constant.CacheKeyBookingCalendar + constant.Asterix
	wantPrice := constant.CacheKeyPriceCalendar + constant.Asterix

	prefixes := map[string]bool{}
	deadline := time.After(2 * time.Second)

	for !prefixes[wantBooking] || !prefixes[wantPrice] {
		select {
		case prefix := <-cleared:
			prefixes[prefix] = true
		case <-deadline:
			t.Fatalf("calendar caches were not invalidated, saw %v", prefixes)
		}
	}
}

func TestCalendarSyncService_SyncNow_OutlivesCaller(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newCalendarSyncService(ctrl)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	m.repo.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		Return(activeSync(), nil)
	m.fetcher.EXPECT().
		Fetch(gomock.Any(), "https://airbnb.example.com/calendar.ics").
		DoAndReturn(func(fetchCtx context.Context, _ string) ([]feed.Event, error) {
			assert.NoError(t, fetchCtx.Err())

			_, hasDeadline := fetchCtx.Deadline()
			assert.True(t, hasDeadline)

			return nil, nil
		})
	m.blockRepo.EXPECT().
		FindBySync(gomock.Any(), testSyncID).
		Return(nil, nil)
	m.repo.EXPECT().
		Update(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil)

	res, err := svc.SyncNow(ctx, testSyncID)

	assert.NoError(t, err)
	assert.Zero(t, res.Imported)
}

func TestCalendarSyncService_SyncAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newCalendarSyncService(ctrl)

	t.Run("one failing feed does not stall the rest", func(t *testing.T) {
		broken := activeSync()
		broken.ID = "11111111-1111-4111-8111-111111111111"

		dormant := activeSync()
		dormant.ID = "22222222-2222-4222-8222-222222222222"
		dormant.IsActive = false

		m.repo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]model.CalendarSync{broken, dormant}, nil)
		m.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(broken, nil)
		m.fetcher.EXPECT().
			Fetch(gomock.Any(), gomock.Any()).
			Return(nil, errors.New("http 503"))
		m.repo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil)
		m.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(dormant, nil)

		err := svc.SyncAll(context.Background())

		assert.NoError(t, err)
	})

	t.Run("listing error is returned", func(t *testing.T) {
		m.repo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errors.New("database error"))

		err := svc.SyncAll(context.Background())

		assert.Error(t, err)
	})
}

func TestCalendarSyncService_ExportFeed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newCalendarSyncService(ctrl)

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
		wantCode  int
	}{
		{
			name: "renders confirmed stays",
			setupMock: func() {
				m.unitRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)
				m.bookingRepo.EXPECT().
					FindOverlapping(gomock.Any(), testUnitID, gomock.Any(), gomock.Any()).
					Return([]bookingModel.Booking{
						{
							ID:       "b1a2c3d4-0000-4000-8000-000000000001",
							UnitID:   testUnitID,
							CheckIn:  day("2026-09-01"),
							CheckOut: day("2026-09-04"),
						},
					}, nil)
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

			res, err := svc.ExportFeed(context.Background(), testUnitID)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			assert.NoError(t, err)
			assert.True(t, strings.Contains(res, "BEGIN:VCALENDAR"))
			assert.True(t, strings.Contains(res, "booking-b1a2c3d4-0000-4000-8000-000000000001"))
		})
	}
}
