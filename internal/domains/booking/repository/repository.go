package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"time"
	"tourbase/infras/otel"
	"tourbase/infras/postgres"
	"tourbase/internal/domains/booking/model"
	"tourbase/shared/constant"
	gDto "tourbase/shared/dto"
	"tourbase/shared/logger"
	gRepo "tourbase/shared/repository"
)

type Booking interface {
	Insert(ctx context.Context, model model.Booking) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Booking, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Booking, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
	FindOverlapping(ctx context.Context, unitID string, checkIn, checkOut time.Time) ([]model.Booking, error)
	CountBookedNights(ctx context.Context, unitID string, from, to time.Time) (int, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Booking]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Booking {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Booking](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// FindOverlapping returns confirmed bookings whose stay intersects the
// half-open range [checkIn, checkOut). A stay ending on checkIn does not
// overlap: checkout day is free for the next guest.
func (repo *repositoryImpl) FindOverlapping(ctx context.Context, unitID string, checkIn, checkOut time.Time) ([]model.Booking, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.FindOverlapping", constant.OtelRepositoryScopeName, model.EntityName))
	defer scope.End()

	query := fmt.Sprintf(
		"SELECT * FROM %s WHERE unit_id = :unit_id AND status = :status AND check_in < :check_out AND check_out > :check_in",
		model.TableName,
	)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	args := map[string]any{
		"unit_id":   unitID,
		"status":    model.StatusConfirmed,
		"check_in":  checkIn,
		"check_out": checkOut,
	}

	var models []model.Booking

	prepare, err := repo.db.Read.PrepareNamedContext(ctx, query)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return models, fmt.Errorf("failed to prepare statement (%s): %w", model.EntityName, err)
	}
	defer prepare.Close()

	err = prepare.SelectContext(ctx, &models, args)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return models, fmt.Errorf("failed to find overlapping bookings: %w", err)
	}

	return models, nil
}

// CountBookedNights sums the confirmed nights inside [from, to), clipping
// stays that start before or end after the window. check_in and check_out
// are DATE columns, so the subtraction yields whole days.
func (repo *repositoryImpl) CountBookedNights(ctx context.Context, unitID string, from, to time.Time) (int, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.CountBookedNights", constant.OtelRepositoryScopeName, model.EntityName))
	defer scope.End()

	query := fmt.Sprintf(
		"SELECT COALESCE(SUM(LEAST(check_out, CAST(:to AS date)) - GREATEST(check_in, CAST(:from AS date))), 0) FROM %s WHERE unit_id = :unit_id AND status = :status AND check_in < :to AND check_out > :from",
		model.TableName,
	)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	args := map[string]any{
		"unit_id": unitID,
		"status":  model.StatusConfirmed,
		"from":    from,
		"to":      to,
	}

	var booked int

	prepare, err := repo.db.Read.PrepareNamedContext(ctx, query)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return 0, fmt.Errorf("failed to prepare statement (%s): %w", model.EntityName, err)
	}
	defer prepare.Close()

	err = prepare.GetContext(ctx, &booked, args)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return 0, fmt.Errorf("failed to count booked nights: %w", err)
	}

	return booked, nil
}
