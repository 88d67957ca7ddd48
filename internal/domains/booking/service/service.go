package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Booking=MockBookingService

import (
	"context"
	"fmt"
	"time"
	"tourbase/config"
	"tourbase/infras/lock"
	"tourbase/infras/otel"
	"tourbase/internal/domains/booking/model"
	"tourbase/internal/domains/booking/model/dto"
	"tourbase/internal/domains/booking/repository"
	calendarsyncModel "tourbase/internal/domains/calendarsync/model"
	busyBlockRepo "tourbase/internal/domains/calendarsync/repository"
	pendingModel "tourbase/internal/domains/pending/model"
	pendingRepo "tourbase/internal/domains/pending/repository"
	pricingService "tourbase/internal/domains/pricing/service"
	unitModel "tourbase/internal/domains/unit/model"
	unitRepo "tourbase/internal/domains/unit/repository"
	"tourbase/shared"
	"tourbase/shared/cache"
	"tourbase/shared/constant"
	"tourbase/shared/daterange"
	gDto "tourbase/shared/dto"
	"tourbase/shared/failure"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetBooking    = "booking:get"
	cacheGetAllBooking = "booking:gets"
	cacheCountBooking  = "booking:count"
	cacheCalendar      = constant.CacheKeyBookingCalendar
)

type Booking interface {
	Create(ctx context.Context, req dto.CreateBookingRequest) (dto.BookingResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetBookingsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.BookingResponse, error)
	Delete(ctx context.Context, id string) error
	GetDayStatus(ctx context.Context, unitID string, date time.Time) (dto.DayStatusResponse, error)
	GetCalendar(ctx context.Context, unitID string, from, to time.Time) (dto.CalendarResponse, error)
}

type serviceImpl struct {
	repo          repository.Booking
	unitRepo      unitRepo.Unit
	pendingRepo   pendingRepo.PendingBooking
	busyBlockRepo busyBlockRepo.ExternalBusyBlock
	pricing       pricingService.Engine
	locker        lock.Locker
	cfg           *config.Config
	cache         cache.RedisCache
	otel          otel.Otel
}

func New(
	repo repository.Booking,
	unitRepo unitRepo.Unit,
	pendingRepo pendingRepo.PendingBooking,
	busyBlockRepo busyBlockRepo.ExternalBusyBlock,
	pricing pricingService.Engine,
	locker lock.Locker,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
) Booking {
	return &serviceImpl{
		repo:          repo,
		unitRepo:      unitRepo,
		pendingRepo:   pendingRepo,
		busyBlockRepo: busyBlockRepo,
		pricing:       pricing,
		locker:        locker,
		cfg:           cfg,
		cache:         cache,
		otel:          otel,
	}
}

// Create confirms a stay. The unit's availability is re-checked under a
// per-unit lock, so two writers racing for the same nights cannot both win.
func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBookingRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	checkIn, checkOut, err := req.Range()
	if err != nil {
		return res, failure.BadRequestFromString(fmt.Sprintf("invalid date format: %v", err)) // nolint:wrapcheck
	}

	if !checkIn.Before(checkOut) {
		return res, failure.BadRequestFromString("check_out must be after check_in") // nolint:wrapcheck
	}

	unit, err := s.unitRepo.Get(ctx, shared.FilterByID(req.UnitID, unitModel.FieldID, unitModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get unit")

		return res, fmt.Errorf("failed to get unit: %w", err)
	}

	if unit.ID == constant.Empty {
		return res, failure.BadRequestFromString("unit does not exist") // nolint:wrapcheck
	}

	unitLock, err := s.locker.AcquireUnit(ctx, req.UnitID)
	if err != nil {
		log.Error().Err(err).Msg("failed to acquire unit lock")

		return res, err
	}
	defer unitLock.Release(ctx)

	if err = s.checkAvailability(ctx, req.UnitID, checkIn, checkOut); err != nil {
		return res, err
	}

	totalPrice := req.TotalPrice
	if totalPrice == 0 {
		totalPrice, err = s.pricing.QuoteStay(ctx, unit, checkIn, checkOut)
		if err != nil {
			log.Error().Err(err).Msg("failed to quote stay")

			return res, fmt.Errorf("failed to quote stay: %w", err)
		}
	}

	booking := req.ToModel(user, checkIn, checkOut, totalPrice)

	if err = s.repo.Insert(ctx, booking); err != nil {
		log.Error().Err(err).Msg("failed to create booking")

		return res, fmt.Errorf("failed to create booking: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllBooking)
		shared.InvalidateCaches(c, s.cache, cacheCountBooking)
		shared.InvalidateCaches(c, s.cache, cacheCalendar)
	}()

	res.FromModel(booking)

	return res, nil
}

// checkAvailability rejects a range colliding with a confirmed booking or an
// externally synced busy block. Pending requests do not block: they are soft
// holds resolved by the approval flow.
func (s *serviceImpl) checkAvailability(ctx context.Context, unitID string, checkIn, checkOut time.Time) error {
	overlapping, err := s.repo.FindOverlapping(ctx, unitID, checkIn, checkOut)
	if err != nil {
		log.Error().Err(err).Msg("failed to check overlapping bookings")

		return fmt.Errorf("failed to check overlapping bookings: %w", err)
	}

	if len(overlapping) > 0 {
		return failure.Conflict("dates overlap an existing booking") // nolint:wrapcheck
	}

	blocks, err := s.busyBlockRepo.FindOverlapping(ctx, unitID, checkIn, checkOut)
	if err != nil {
		log.Error().Err(err).Msg("failed to check external busy blocks")

		return fmt.Errorf("failed to check external busy blocks: %w", err)
	}

	if len(blocks) > 0 {
		return failure.Conflict("dates are blocked by an external calendar") // nolint:wrapcheck
	}

	return nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllBooking, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for bookings")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return res, fmt.Errorf("failed to get bookings: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save bookings to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountBooking, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for booking count")

		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save booking count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetBooking, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for booking")

		return res, nil
	}

	booking, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return res, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return res, failure.NotFound("booking not found") // nolint:wrapcheck
	}

	res.FromModel(booking)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save booking to cache")
		}
	}()

	return res, nil
}

// Delete cancels a booking, freeing its nights immediately.
func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	exist, err := s.repo.Exist(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if booking exists")

		return fmt.Errorf("failed to check if booking exists: %w", err)
	}

	if !exist {
		log.Error().Msg("booking not found")

		return failure.NotFound("booking not found") // nolint:wrapcheck
	}

	if err := s.repo.Delete(ctx, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to delete booking")

		return fmt.Errorf("failed to delete booking: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetBooking, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete booking from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllBooking)
		shared.InvalidateCaches(c, s.cache, cacheCountBooking)
		shared.InvalidateCaches(c, s.cache, cacheCalendar)
	}()

	return nil
}

// GetDayStatus resolves one unit-day. Confirmed bookings win over pending
// requests, which win over external busy blocks.
func (s *serviceImpl) GetDayStatus(ctx context.Context, unitID string, date time.Time) (res dto.DayStatusResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetDayStatus")
	defer scope.End()
	defer scope.TraceIfError(err)

	date = daterange.Day(date)

	status, err := s.resolveDay(ctx, unitID, date, date.AddDate(0, 0, 1))
	if err != nil {
		return res, err
	}

	return dto.DayStatusResponse{
		UnitID: unitID,
		Date:   daterange.FormatDay(date),
		Status: status,
	}, nil
}

func (s *serviceImpl) resolveDay(ctx context.Context, unitID string, from, to time.Time) (model.DayStatus, error) {
	bookings, err := s.repo.FindOverlapping(ctx, unitID, from, to)
	if err != nil {
		log.Error().Err(err).Msg("failed to check overlapping bookings")

		return model.DayStatusFree, fmt.Errorf("failed to check overlapping bookings: %w", err)
	}

	if len(bookings) > 0 {
		return model.DayStatusConfirmed, nil
	}

	pendings, err := s.pendingRepo.FindOverlapping(ctx, unitID, from, to)
	if err != nil {
		log.Error().Err(err).Msg("failed to check overlapping pending bookings")

		return model.DayStatusFree, fmt.Errorf("failed to check overlapping pending bookings: %w", err)
	}

	if len(pendings) > 0 {
		return model.DayStatusPending, nil
	}

	blocks, err := s.busyBlockRepo.FindOverlapping(ctx, unitID, from, to)
	if err != nil {
		log.Error().Err(err).Msg("failed to check external busy blocks")

		return model.DayStatusFree, fmt.Errorf("failed to check external busy blocks: %w", err)
	}

	if len(blocks) > 0 {
		return model.DayStatusExternal, nil
	}

	return model.DayStatusFree, nil
}

// GetCalendar resolves every day of [from, to) in one pass over the three
// overlap sets, so the cost does not grow with the range length.
func (s *serviceImpl) GetCalendar(ctx context.Context, unitID string, from, to time.Time) (res dto.CalendarResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetCalendar")
	defer scope.End()
	defer scope.TraceIfError(err)

	from = daterange.Day(from)
	to = daterange.Day(to)

	if !from.Before(to) {
		return res, failure.BadRequestFromString("to must be after from") // nolint:wrapcheck
	}

	cacheKey := shared.BuildCacheKey(cacheCalendar, fmt.Sprintf("%s:%s:%s", unitID, daterange.FormatDay(from), daterange.FormatDay(to)))

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for availability calendar")

		return res, nil
	}

	bookings, err := s.repo.FindOverlapping(ctx, unitID, from, to)
	if err != nil {
		log.Error().Err(err).Msg("failed to check overlapping bookings")

		return res, fmt.Errorf("failed to check overlapping bookings: %w", err)
	}

	pendings, err := s.pendingRepo.FindOverlapping(ctx, unitID, from, to)
	if err != nil {
		log.Error().Err(err).Msg("failed to check overlapping pending bookings")

		return res, fmt.Errorf("failed to check overlapping pending bookings: %w", err)
	}

	blocks, err := s.busyBlockRepo.FindOverlapping(ctx, unitID, from, to)
	if err != nil {
		log.Error().Err(err).Msg("failed to check external busy blocks")

		return res, fmt.Errorf("failed to check external busy blocks: %w", err)
	}

	res = dto.CalendarResponse{
		UnitID: unitID,
		From:   daterange.FormatDay(from),
		To:     daterange.FormatDay(to),
		Days:   []dto.CalendarDay{},
	}

	for day := from; day.Before(to); day = day.AddDate(0, 0, 1) {
		if err = ctx.Err(); err != nil {
			return res, fmt.Errorf("calendar resolution cancelled: %w", err)
		}

		status := model.DayStatusFree

		switch {
		case dayCoveredByBooking(day, bookings):
			status = model.DayStatusConfirmed
		case dayCoveredByPending(day, pendings):
			status = model.DayStatusPending
		case dayCoveredByBlock(day, blocks):
			status = model.DayStatusExternal
		}

		res.Days = append(res.Days, dto.CalendarDay{
			Date:   daterange.FormatDay(day),
			Status: status,
		})
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save availability calendar to cache")
		}
	}()

	return res, nil
}

func dayCoveredByBooking(day time.Time, bookings []model.Booking) bool {
	for _, b := range bookings {
		if daterange.Contains(b.CheckIn, b.CheckOut, day) {
			return true
		}
	}

	return false
}

func dayCoveredByPending(day time.Time, pendings []pendingModel.PendingBooking) bool {
	for _, p := range pendings {
		if daterange.Contains(p.CheckIn, p.CheckOut, day) {
			return true
		}
	}

	return false
}

func dayCoveredByBlock(day time.Time, blocks []calendarsyncModel.ExternalBusyBlock) bool {
	for _, b := range blocks {
		if daterange.Contains(b.StartDate, b.EndDate, day) {
			return true
		}
	}

	return false
}
