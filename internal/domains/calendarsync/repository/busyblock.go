package repository

//go:generate go run go.uber.org/mock/mockgen -source=./busyblock.go -destination=../mocks/busyblock_mock.go -package=mocks

import (
	"context"
	"fmt"
	"time"
	"tourbase/infras/otel"
	"tourbase/infras/postgres"
	"tourbase/internal/domains/calendarsync/model"
	"tourbase/shared/constant"
	gDto "tourbase/shared/dto"
	"tourbase/shared/logger"
	gRepo "tourbase/shared/repository"

	"github.com/jmoiron/sqlx"
)

type ExternalBusyBlock interface {
	Insert(ctx context.Context, model model.ExternalBusyBlock) error
	InsertTx(ctx context.Context, sqltx *sqlx.Tx, model model.ExternalBusyBlock) error
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.ExternalBusyBlock, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	UpdateTx(ctx context.Context, sqltx *sqlx.Tx, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
	DeleteTx(ctx context.Context, sqltx *sqlx.Tx, filter gDto.FilterGroup) error
	FindBySync(ctx context.Context, syncID string) ([]model.ExternalBusyBlock, error)
	FindOverlapping(ctx context.Context, unitID string, from, to time.Time) ([]model.ExternalBusyBlock, error)
}

type busyBlockRepositoryImpl struct {
	gRepo.Repository[model.ExternalBusyBlock]
	db   *postgres.Connection
	otel otel.Otel
}

func NewBusyBlock(db *postgres.Connection, otel otel.Otel) ExternalBusyBlock {
	return &busyBlockRepositoryImpl{
		Repository: gRepo.NewRepository[model.ExternalBusyBlock](model.BusyBlockEntityName, model.BusyBlockTableName, model.FieldBusyBlockID, db, otel),
		db:         db,
		otel:       otel,
	}
}

func (repo *busyBlockRepositoryImpl) FindBySync(ctx context.Context, syncID string) ([]model.ExternalBusyBlock, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.FindBySync", constant.OtelRepositoryScopeName, model.BusyBlockEntityName))
	defer scope.End()

	query := fmt.Sprintf("SELECT * FROM %s WHERE sync_id = :sync_id", model.BusyBlockTableName)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	args := map[string]any{"sync_id": syncID}

	var models []model.ExternalBusyBlock

	prepare, err := repo.db.Read.PrepareNamedContext(ctx, query)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return models, fmt.Errorf("failed to prepare statement (%s): %w", model.BusyBlockEntityName, err)
	}
	defer prepare.Close()

	err = prepare.SelectContext(ctx, &models, args)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return models, fmt.Errorf("failed to get busy blocks by sync: %w", err)
	}

	return models, nil
}

// FindOverlapping returns external busy blocks intersecting the half-open
// range [from, to) for a unit, across all of its feeds.
func (repo *busyBlockRepositoryImpl) FindOverlapping(ctx context.Context, unitID string, from, to time.Time) ([]model.ExternalBusyBlock, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.FindOverlapping", constant.OtelRepositoryScopeName, model.BusyBlockEntityName))
	defer scope.End()

	query := fmt.Sprintf(
		"SELECT * FROM %s WHERE unit_id = :unit_id AND start_date < :to AND end_date > :from",
		model.BusyBlockTableName,
	)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	args := map[string]any{
		"unit_id": unitID,
		"from":    from,
		"to":      to,
	}

	var models []model.ExternalBusyBlock

	prepare, err := repo.db.Read.PrepareNamedContext(ctx, query)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return models, fmt.Errorf("failed to prepare statement (%s): %w", model.BusyBlockEntityName, err)
	}
	defer prepare.Close()

	err = prepare.SelectContext(ctx, &models, args)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return models, fmt.Errorf("failed to find overlapping busy blocks: %w", err)
	}

	return models, nil
}
