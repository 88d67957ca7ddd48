package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=CalendarSync=MockCalendarSyncService

import (
	"context"
	"fmt"
	"time"
	"tourbase/config"
	"tourbase/infras/lock"
	"tourbase/infras/otel"
	"tourbase/infras/postgres"
	bookingRepo "tourbase/internal/domains/booking/repository"
	"tourbase/internal/domains/calendarsync/feed"
	"tourbase/internal/domains/calendarsync/model"
	"tourbase/internal/domains/calendarsync/model/dto"
	"tourbase/internal/domains/calendarsync/repository"
	unitModel "tourbase/internal/domains/unit/model"
	unitRepo "tourbase/internal/domains/unit/repository"
	"tourbase/shared"
	"tourbase/shared/cache"
	"tourbase/shared/constant"
	"tourbase/shared/daterange"
	gDto "tourbase/shared/dto"
	"tourbase/shared/failure"
	gModel "tourbase/shared/model"
	"tourbase/shared/timezone"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/singleflight"
)

const (
	cacheGetSync    = "calendarsync:get"
	cacheGetAllSync = "calendarsync:gets"
)

type CalendarSync interface {
	Create(ctx context.Context, req dto.CreateCalendarSyncRequest) (dto.CalendarSyncResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetCalendarSyncsResponse, error)
	Get(ctx context.Context, id string) (dto.CalendarSyncResponse, error)
	Update(ctx context.Context, req dto.UpdateCalendarSyncRequest, id string) error
	Delete(ctx context.Context, id string) error
	SyncNow(ctx context.Context, syncID string) (dto.SyncResult, error)
	SyncAll(ctx context.Context) error
	ExportFeed(ctx context.Context, unitID string) (string, error)
}

type serviceImpl struct {
	repo        repository.CalendarSync
	blockRepo   repository.ExternalBusyBlock
	bookingRepo bookingRepo.Booking
	unitRepo    unitRepo.Unit
	fetcher     feed.Fetcher
	locker      lock.Locker
	db          postgres.TxRunner
	cfg         *config.Config
	cache       cache.RedisCache
	otel        otel.Otel
	group       singleflight.Group
}

func New(
	repo repository.CalendarSync,
	blockRepo repository.ExternalBusyBlock,
	bookingRepo bookingRepo.Booking,
	unitRepo unitRepo.Unit,
	fetcher feed.Fetcher,
	locker lock.Locker,
	db postgres.TxRunner,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
) CalendarSync {
	return &serviceImpl{
		repo:        repo,
		blockRepo:   blockRepo,
		bookingRepo: bookingRepo,
		unitRepo:    unitRepo,
		fetcher:     fetcher,
		locker:      locker,
		db:          db,
		cfg:         cfg,
		cache:       cache,
		otel:        otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateCalendarSyncRequest) (res dto.CalendarSyncResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	unitExists, err := s.unitRepo.Exist(ctx, shared.FilterByID(req.UnitID, unitModel.FieldID, unitModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if unit exists")

		return res, fmt.Errorf("failed to check if unit exists: %w", err)
	}

	if !unitExists {
		return res, failure.BadRequestFromString("unit does not exist") // nolint:wrapcheck
	}

	sync := req.ToModel(user)

	if err = s.repo.Insert(ctx, sync); err != nil {
		log.Error().Err(err).Msg("failed to create calendar sync")

		return res, fmt.Errorf("failed to create calendar sync: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllSync)
	}()

	res.FromModel(sync)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetCalendarSyncsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllSync, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for calendar syncs")

		return res, nil
	}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count calendar syncs")

		return res, fmt.Errorf("failed to count calendar syncs: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get calendar syncs")

		return res, fmt.Errorf("failed to get calendar syncs: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save calendar syncs to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.CalendarSyncResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	sync, err := s.getSync(ctx, id)
	if err != nil {
		return res, err
	}

	res.FromModel(sync)

	return res, nil
}

func (s *serviceImpl) getSync(ctx context.Context, id string) (model.CalendarSync, error) {
	sync, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get calendar sync")

		return sync, fmt.Errorf("failed to get calendar sync: %w", err)
	}

	if sync.ID == constant.Empty {
		return sync, failure.NotFound("calendar sync not found") // nolint:wrapcheck
	}

	return sync, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateCalendarSyncRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	if req == (dto.UpdateCalendarSyncRequest{}) {
		return failure.BadRequestFromString("update request cannot be empty") // nolint:wrapcheck
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if calendar sync exists")

		return fmt.Errorf("failed to check if calendar sync exists: %w", err)
	}

	if !exist {
		return failure.NotFound("calendar sync not found") // nolint:wrapcheck
	}

	updatedFields := shared.TransformFields(req, user)
	if err := s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update calendar sync")

		return fmt.Errorf("failed to update calendar sync: %w", err)
	}

	s.invalidate(ctx, id)

	return nil
}

// Delete removes a sync together with the busy blocks it imported, so the
// unit's availability no longer reflects a feed nobody follows.
func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	sync, err := s.getSync(ctx, id)
	if err != nil {
		return err
	}

	unitLock, err := s.locker.AcquireUnit(ctx, sync.UnitID)
	if err != nil {
		log.Error().Err(err).Msg("failed to acquire unit lock")

		return err
	}
	defer unitLock.Release(ctx)

	blockFilter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldSyncID,
				Value:    id,
				Operator: gDto.FilterOperatorEq,
				Table:    model.BusyBlockTableName,
			},
		},
	}

	err = s.db.RunInTx(ctx, func(tx *sqlx.Tx) error {
		if err := s.blockRepo.DeleteTx(ctx, tx, blockFilter); err != nil {
			log.Error().Err(err).Msg("failed to delete busy blocks")

			return fmt.Errorf("failed to delete busy blocks: %w", err)
		}

		return nil
	})
	if err != nil {
		return err
	}

	if err = s.repo.Delete(ctx, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to delete calendar sync")

		return fmt.Errorf("failed to delete calendar sync: %w", err)
	}

	s.invalidate(ctx, id)
	s.invalidateCalendars(ctx)

	return nil
}

// SyncNow reconciles one feed. Concurrent calls for the same sync id share a
// single run.
func (s *serviceImpl) SyncNow(ctx context.Context, syncID string) (res dto.SyncResult, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".SyncNow")
	defer scope.End()
	defer scope.TraceIfError(err)

	out, err, _ := s.group.Do(syncID, func() (any, error) {
		// The run is shared by coalesced callers, so it must not die with
		// whichever one arrived first. The fetch timeout still bounds it.
		return s.syncOne(context.WithoutCancel(ctx), syncID)
	})
	if err != nil {
		return res, err
	}

	res, _ = out.(dto.SyncResult)

	return res, nil
}

func (s *serviceImpl) syncOne(ctx context.Context, syncID string) (res dto.SyncResult, err error) {
	res.SyncID = syncID

	sync, err := s.getSync(ctx, syncID)
	if err != nil {
		return res, err
	}

	if !sync.IsActive {
		log.Info().Str("syncID", syncID).Msg("calendar sync is inactive, skipping")

		return res, nil
	}

	timeout := time.Duration(s.cfg.Sync.FeedTimeoutSeconds) * time.Second
	fetchCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	events, err := s.fetcher.Fetch(fetchCtx, sync.CalendarURL)
	if err != nil {
		log.Error().Err(err).Str("syncID", syncID).Msg("failed to fetch calendar feed")

		s.recordFailure(ctx, sync.ID, err)

		return res, err
	}

	existing, err := s.blockRepo.FindBySync(ctx, syncID)
	if err != nil {
		log.Error().Err(err).Msg("failed to load existing busy blocks")

		return res, fmt.Errorf("failed to load existing busy blocks: %w", err)
	}

	res, err = s.applyDiff(ctx, sync, events, existing)
	if err != nil {
		return res, err
	}

	s.recordSuccess(ctx, sync.ID)
	s.invalidate(ctx, syncID)

	if res.Imported > 0 || res.Updated > 0 || res.Removed > 0 {
		s.invalidateCalendars(ctx)
	}

	return res, nil
}

// applyDiff mutates stored busy blocks to match the feed, keyed by external
// uid, inside one transaction under the unit lock.
func (s *serviceImpl) applyDiff(ctx context.Context, sync model.CalendarSync, events []feed.Event, existing []model.ExternalBusyBlock) (res dto.SyncResult, err error) {
	res.SyncID = sync.ID

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	if user == constant.Empty {
		user = "scheduler"
	}

	unitLock, err := s.locker.AcquireUnit(ctx, sync.UnitID)
	if err != nil {
		log.Error().Err(err).Msg("failed to acquire unit lock")

		return res, err
	}
	defer unitLock.Release(ctx)

	byUID := make(map[string]model.ExternalBusyBlock, len(existing))
	for _, block := range existing {
		byUID[block.ExternalUID] = block
	}

	err = s.db.RunInTx(ctx, func(tx *sqlx.Tx) error {
		seen := make(map[string]bool, len(events))

		for _, event := range events {
			seen[event.UID] = true

			current, ok := byUID[event.UID]
			if !ok {
				block := model.ExternalBusyBlock{
					ID:          uuid.NewString(),
					SyncID:      sync.ID,
					UnitID:      sync.UnitID,
					ExternalUID: event.UID,
					StartDate:   event.Start,
					EndDate:     event.End,
					Summary:     event.Summary,
					Metadata: gModel.Metadata{
						CreatedAt:  timezone.Now(),
						ModifiedAt: timezone.Now(),
						CreatedBy:  user,
						ModifiedBy: user,
					},
				}

				if err := s.blockRepo.InsertTx(ctx, tx, block); err != nil {
					log.Error().Err(err).Msg("failed to insert busy block")

					return fmt.Errorf("failed to insert busy block: %w", err)
				}

				res.Imported++

				continue
			}

			if current.StartDate.Equal(event.Start) && current.EndDate.Equal(event.End) && current.Summary == event.Summary {
				continue
			}

			fields := map[string]any{
				model.FieldBlockStartAt:  event.Start,
				model.FieldBlockEndAt:    event.End,
				model.FieldSummary:       event.Summary,
				constant.FieldModifiedAt: timezone.Now(),
				constant.FieldModifiedBy: user,
			}

			if err := s.blockRepo.UpdateTx(ctx, tx, fields, shared.FilterByID(current.ID, model.FieldBusyBlockID, model.BusyBlockTableName)); err != nil {
				log.Error().Err(err).Msg("failed to update busy block")

				return fmt.Errorf("failed to update busy block: %w", err)
			}

			res.Updated++
		}

		for _, block := range existing {
			if seen[block.ExternalUID] {
				continue
			}

			if err := s.blockRepo.DeleteTx(ctx, tx, shared.FilterByID(block.ID, model.FieldBusyBlockID, model.BusyBlockTableName)); err != nil {
				log.Error().Err(err).Msg("failed to delete vanished busy block")

				return fmt.Errorf("failed to delete vanished busy block: %w", err)
			}

			res.Removed++
		}

		return nil
	})
	if err != nil {
		return res, err
	}

	return res, nil
}

func (s *serviceImpl) recordSuccess(ctx context.Context, syncID string) {
	fields := map[string]any{
		model.FieldLastSyncAt:    timezone.Now(),
		model.FieldLastError:     nil,
		constant.FieldModifiedAt: timezone.Now(),
	}

	if err := s.repo.Update(ctx, fields, shared.FilterByID(syncID, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to record sync success")
	}
}

func (s *serviceImpl) recordFailure(ctx context.Context, syncID string, cause error) {
	fields := map[string]any{
		model.FieldLastError:     cause.Error(),
		constant.FieldModifiedAt: timezone.Now(),
	}

	c := context.WithoutCancel(ctx)

	if err := s.repo.Update(c, fields, shared.FilterByID(syncID, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to record sync failure")
	}
}

// SyncAll runs every active sync, absorbing individual failures so one bad
// feed cannot stall the rest.
func (s *serviceImpl) SyncAll(ctx context.Context) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelSchedulerScopeName, constant.OtelSchedulerScopeName+".SyncAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldIsActive,
				Value:    true,
				Operator: gDto.FilterOperatorEq,
				Table:    model.TableName,
			},
		},
	}

	syncs, err := s.repo.GetAll(ctx, gDto.QueryParams{}, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to list active calendar syncs")

		return fmt.Errorf("failed to list active calendar syncs: %w", err)
	}

	for _, sync := range syncs {
		result, err := s.SyncNow(ctx, sync.ID)
		if err != nil {
			log.Error().Err(err).Str("syncID", sync.ID).Msg("calendar sync run failed")

			continue
		}

		log.Info().
			Str("syncID", sync.ID).
			Int("imported", result.Imported).
			Int("updated", result.Updated).
			Int("removed", result.Removed).
			Msg("calendar sync completed")
	}

	return nil
}

// ExportFeed renders the unit's confirmed future stays as an iCal document
// for external platforms to pull.
func (s *serviceImpl) ExportFeed(ctx context.Context, unitID string) (res string, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ExportFeed")
	defer scope.End()
	defer scope.TraceIfError(err)

	unitExists, err := s.unitRepo.Exist(ctx, shared.FilterByID(unitID, unitModel.FieldID, unitModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if unit exists")

		return res, fmt.Errorf("failed to check if unit exists: %w", err)
	}

	if !unitExists {
		return res, failure.NotFound("unit not found") // nolint:wrapcheck
	}

	today := daterange.Day(timezone.Now())
	horizon := today.AddDate(2, 0, 0)

	bookings, err := s.bookingRepo.FindOverlapping(ctx, unitID, today, horizon)
	if err != nil {
		log.Error().Err(err).Msg("failed to load bookings for export")

		return res, fmt.Errorf("failed to load bookings for export: %w", err)
	}

	events := make([]feed.Event, len(bookings))
	for i, booking := range bookings {
		events[i] = feed.Event{
			UID:     fmt.Sprintf("booking-%s", booking.ID),
			Start:   booking.CheckIn,
			End:     booking.CheckOut,
			Summary: "Reserved",
		}
	}

	return feed.Serialize(s.cfg.Sync.ExportHost, unitID, events), nil
}

func (s *serviceImpl) invalidate(ctx context.Context, id string) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetSync, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete calendar sync from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllSync)
	}()
}

// invalidateCalendars drops the cached availability and price calendars after
// busy blocks change, the same way booking writes do.
func (s *serviceImpl) invalidateCalendars(ctx context.Context) {
	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, constant.CacheKeyBookingCalendar)
		shared.InvalidateCaches(c, s.cache, constant.CacheKeyPriceCalendar)
	}()
}
