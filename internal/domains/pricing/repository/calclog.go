package repository

//go:generate go run go.uber.org/mock/mockgen -source=./calclog.go -destination=../mocks/calclog_mock.go -package=mocks

import (
	"context"
	"fmt"
	"time"
	"tourbase/infras/otel"
	"tourbase/infras/postgres"
	"tourbase/internal/domains/pricing/model"
	"tourbase/shared/constant"
	"tourbase/shared/logger"
)

type CalculationLog interface {
	Upsert(ctx context.Context, log model.PriceCalculationLog) error
	List(ctx context.Context, unitID string, from, to time.Time) ([]model.PriceCalculationLog, error)
}

type calcLogRepositoryImpl struct {
	db   *postgres.Connection
	otel otel.Otel
}

func NewCalculationLog(db *postgres.Connection, otel otel.Otel) CalculationLog {
	return &calcLogRepositoryImpl{
		db:   db,
		otel: otel,
	}
}

// Upsert keeps one row per (unit, date); recalculating a night overwrites
// the previous explanation.
func (repo *calcLogRepositoryImpl) Upsert(ctx context.Context, log model.PriceCalculationLog) error {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.Upsert", constant.OtelRepositoryScopeName, model.LogEntityName))
	defer scope.End()

	query := fmt.Sprintf(
		`INSERT INTO %s (id, unit_id, date, base_price, final_price, applied_rules, calculated_at)
		VALUES (:id, :unit_id, :date, :base_price, :final_price, :applied_rules, :calculated_at)
		ON CONFLICT (unit_id, date) DO UPDATE SET
			base_price = EXCLUDED.base_price,
			final_price = EXCLUDED.final_price,
			applied_rules = EXCLUDED.applied_rules,
			calculated_at = EXCLUDED.calculated_at`,
		model.LogTableName,
	)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	_, err := repo.db.Write.NamedExecContext(ctx, query, log)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return fmt.Errorf("failed to upsert price calculation log: %w", err)
	}

	return nil
}

func (repo *calcLogRepositoryImpl) List(ctx context.Context, unitID string, from, to time.Time) ([]model.PriceCalculationLog, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.List", constant.OtelRepositoryScopeName, model.LogEntityName))
	defer scope.End()

	query := fmt.Sprintf(
		"SELECT * FROM %s WHERE unit_id = :unit_id AND date >= :from AND date < :to ORDER BY date ASC",
		model.LogTableName,
	)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	args := map[string]any{
		"unit_id": unitID,
		"from":    from,
		"to":      to,
	}

	var models []model.PriceCalculationLog

	prepare, err := repo.db.Read.PrepareNamedContext(ctx, query)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return models, fmt.Errorf("failed to prepare statement (%s): %w", model.LogEntityName, err)
	}
	defer prepare.Close()

	err = prepare.SelectContext(ctx, &models, args)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return models, fmt.Errorf("failed to list price calculation logs: %w", err)
	}

	return models, nil
}
