package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"time"
	"tourbase/infras/otel"
	"tourbase/infras/postgres"
	"tourbase/internal/domains/pending/model"
	"tourbase/shared/constant"
	gDto "tourbase/shared/dto"
	"tourbase/shared/logger"
	gRepo "tourbase/shared/repository"
)

type PendingBooking interface {
	Insert(ctx context.Context, model model.PendingBooking) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.PendingBooking, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.PendingBooking, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
	FindOverlapping(ctx context.Context, unitID string, checkIn, checkOut time.Time) ([]model.PendingBooking, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.PendingBooking]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) PendingBooking {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.PendingBooking](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// FindOverlapping returns live pending requests intersecting the half-open
// range [checkIn, checkOut). Approved and rejected rows are history and do
// not hold dates.
func (repo *repositoryImpl) FindOverlapping(ctx context.Context, unitID string, checkIn, checkOut time.Time) ([]model.PendingBooking, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.FindOverlapping", constant.OtelRepositoryScopeName, model.EntityName))
	defer scope.End()

	query := fmt.Sprintf(
		"SELECT * FROM %s WHERE unit_id = :unit_id AND verification_status NOT IN (:approved, :rejected) AND check_in < :check_out AND check_out > :check_in",
		model.TableName,
	)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	args := map[string]any{
		"unit_id":   unitID,
		"approved":  model.StatusApproved,
		"rejected":  model.StatusRejected,
		"check_in":  checkIn,
		"check_out": checkOut,
	}

	var models []model.PendingBooking

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

		return models, fmt.Errorf("failed to find overlapping pending bookings: %w", err)
	}

	return models, nil
}
