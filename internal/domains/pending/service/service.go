package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=PendingBooking=MockPendingBookingService

import (
	"context"
	"fmt"
	"mime/multipart"
	"tourbase/config"
	"tourbase/infras/otel"
	"tourbase/infras/s3"
	bookingDto "tourbase/internal/domains/booking/model/dto"
	bookingService "tourbase/internal/domains/booking/service"
	"tourbase/internal/domains/pending/model"
	"tourbase/internal/domains/pending/model/dto"
	"tourbase/internal/domains/pending/repository"
	unitModel "tourbase/internal/domains/unit/model"
	unitRepo "tourbase/internal/domains/unit/repository"
	"tourbase/shared"
	"tourbase/shared/cache"
	"tourbase/shared/constant"
	"tourbase/shared/daterange"
	gDto "tourbase/shared/dto"
	"tourbase/shared/failure"
	"tourbase/shared/timezone"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const (
	cacheGetPending    = "pending:get"
	cacheGetAllPending = "pending:gets"
	cacheCountPending  = "pending:count"

	screenshotDirectory = "payment-screenshots"
)

type PendingBooking interface {
	Create(ctx context.Context, req dto.CreatePendingBookingRequest) (dto.PendingBookingResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetPendingBookingsResponse, error)
	Get(ctx context.Context, id string) (dto.PendingBookingResponse, error)
	AttachScreenshot(ctx context.Context, id string, file multipart.File, fileHeader *multipart.FileHeader) (dto.PendingBookingResponse, error)
	Verify(ctx context.Context, req dto.VerifyPendingBookingRequest, id string) error
	Approve(ctx context.Context, id string) (bookingDto.BookingResponse, error)
	Reject(ctx context.Context, req dto.RejectPendingBookingRequest, id string) error
}

type serviceImpl struct {
	repo     repository.PendingBooking
	unitRepo unitRepo.Unit
	booking  bookingService.Booking
	s3       s3.S3
	cfg      *config.Config
	cache    cache.RedisCache
	otel     otel.Otel
}

func New(
	repo repository.PendingBooking,
	unitRepo unitRepo.Unit,
	booking bookingService.Booking,
	s3 s3.S3,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
) PendingBooking {
	return &serviceImpl{
		repo:     repo,
		unitRepo: unitRepo,
		booking:  booking,
		s3:       s3,
		cfg:      cfg,
		cache:    cache,
		otel:     otel,
	}
}

// Create registers a soft hold. The dates are not reserved: conflicts are
// resolved when an operator approves.
func (s *serviceImpl) Create(ctx context.Context, req dto.CreatePendingBookingRequest) (res dto.PendingBookingResponse, err error) {
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

	pending := req.ToModel(user, unit.Name, checkIn, checkOut)

	if err = s.repo.Insert(ctx, pending); err != nil {
		log.Error().Err(err).Msg("failed to create pending booking")

		return res, fmt.Errorf("failed to create pending booking: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllPending)
		shared.InvalidateCaches(c, s.cache, cacheCountPending)
	}()

	res.FromModel(pending)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetPendingBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllPending, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for pending bookings")

		return res, nil
	}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count pending bookings")

		return res, fmt.Errorf("failed to count pending bookings: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get pending bookings")

		return res, fmt.Errorf("failed to get pending bookings: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save pending bookings to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.PendingBookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetPending, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for pending booking")

		return res, nil
	}

	pending, err := s.getPending(ctx, id)
	if err != nil {
		return res, err
	}

	res.FromModel(pending)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save pending booking to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) getPending(ctx context.Context, id string) (model.PendingBooking, error) {
	pending, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get pending booking")

		return pending, fmt.Errorf("failed to get pending booking: %w", err)
	}

	if pending.ID == constant.Empty {
		return pending, failure.NotFound("pending booking not found") // nolint:wrapcheck
	}

	return pending, nil
}

// AttachScreenshot stores the guest's payment proof and moves the request to
// awaiting_verification.
func (s *serviceImpl) AttachScreenshot(ctx context.Context, id string, file multipart.File, fileHeader *multipart.FileHeader) (res dto.PendingBookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".AttachScreenshot")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	pending, err := s.getPending(ctx, id)
	if err != nil {
		return res, err
	}

	if model.IsTerminal(pending.VerificationStatus) {
		return res, failure.Conflict(fmt.Sprintf("pending booking is already %s", pending.VerificationStatus)) // nolint:wrapcheck
	}

	url, err := s.s3.UploadFile(ctx, s.cfg.External.S3.BucketName, screenshotDirectory, file, fileHeader, uuid.NewString())
	if err != nil {
		log.Error().Err(err).Msg("failed to upload payment screenshot")

		return res, fmt.Errorf("failed to upload payment screenshot: %w", err)
	}

	fields := map[string]any{
		model.FieldScreenshotURL:      url,
		model.FieldVerificationStatus: model.StatusAwaitingVerification,
		constant.FieldModifiedAt:      timezone.Now(),
		constant.FieldModifiedBy:      user,
	}

	if err = s.repo.Update(ctx, fields, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to attach payment screenshot")

		return res, fmt.Errorf("failed to attach payment screenshot: %w", err)
	}

	s.invalidate(ctx, id)

	pending.PaymentScreenshotURL = url
	pending.VerificationStatus = model.StatusAwaitingVerification
	res.FromModel(pending)

	return res, nil
}

// Verify marks the payment proof as checked by an operator.
func (s *serviceImpl) Verify(ctx context.Context, req dto.VerifyPendingBookingRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Verify")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	pending, err := s.getPending(ctx, id)
	if err != nil {
		return err
	}

	if model.IsTerminal(pending.VerificationStatus) {
		return failure.Conflict(fmt.Sprintf("pending booking is already %s", pending.VerificationStatus)) // nolint:wrapcheck
	}

	fields := map[string]any{
		model.FieldVerificationStatus: model.StatusVerified,
		model.FieldVerificationNotes:  req.Notes,
		constant.FieldModifiedAt:      timezone.Now(),
		constant.FieldModifiedBy:      user,
	}

	if err = s.repo.Update(ctx, fields, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to verify pending booking")

		return fmt.Errorf("failed to verify pending booking: %w", err)
	}

	s.invalidate(ctx, id)

	return nil
}

// Approve promotes a verified request into a confirmed booking. The booking
// path re-checks availability under the unit lock; if the dates were taken
// in the meantime the request stays verified and the conflict surfaces to
// the operator.
func (s *serviceImpl) Approve(ctx context.Context, id string) (res bookingDto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Approve")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	pending, err := s.getPending(ctx, id)
	if err != nil {
		return res, err
	}

	if model.IsTerminal(pending.VerificationStatus) {
		return res, failure.Conflict(fmt.Sprintf("pending booking is already %s", pending.VerificationStatus)) // nolint:wrapcheck
	}

	if pending.VerificationStatus != model.StatusVerified {
		return res, failure.UnprocessableEntity("payment has not been verified") // nolint:wrapcheck
	}

	res, err = s.booking.Create(ctx, bookingDto.CreateBookingRequest{
		UnitID:      pending.UnitID,
		GuestName:   pending.GuestName,
		GuestPhone:  pending.GuestPhone,
		CheckIn:     daterange.FormatDay(pending.CheckIn),
		CheckOut:    daterange.FormatDay(pending.CheckOut),
		GuestsCount: pending.GuestsCount,
		TotalPrice:  pending.Amount,
		Source:      pending.Source,
	})
	if err != nil {
		return res, err
	}

	fields := map[string]any{
		model.FieldVerificationStatus: model.StatusApproved,
		model.FieldBookingID:          res.ID,
		constant.FieldModifiedAt:      timezone.Now(),
		constant.FieldModifiedBy:      user,
	}

	if err = s.repo.Update(ctx, fields, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to mark pending booking approved")

		return res, fmt.Errorf("failed to mark pending booking approved: %w", err)
	}

	s.invalidate(ctx, id)

	return res, nil
}

// Reject closes the request without ever touching real availability.
func (s *serviceImpl) Reject(ctx context.Context, req dto.RejectPendingBookingRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Reject")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	pending, err := s.getPending(ctx, id)
	if err != nil {
		return err
	}

	if model.IsTerminal(pending.VerificationStatus) {
		return failure.Conflict(fmt.Sprintf("pending booking is already %s", pending.VerificationStatus)) // nolint:wrapcheck
	}

	fields := map[string]any{
		model.FieldVerificationStatus: model.StatusRejected,
		model.FieldVerificationNotes:  req.Notes,
		constant.FieldModifiedAt:      timezone.Now(),
		constant.FieldModifiedBy:      user,
	}

	if err = s.repo.Update(ctx, fields, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to reject pending booking")

		return fmt.Errorf("failed to reject pending booking: %w", err)
	}

	s.invalidate(ctx, id)

	return nil
}

func (s *serviceImpl) invalidate(ctx context.Context, id string) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetPending, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete pending booking from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllPending)
		shared.InvalidateCaches(c, s.cache, cacheCountPending)
	}()
}
