package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"tourbase/infras/otel"
	"tourbase/infras/postgres"
	"tourbase/internal/domains/pricing/model"
	"tourbase/shared/constant"
	gDto "tourbase/shared/dto"
	"tourbase/shared/logger"
	gRepo "tourbase/shared/repository"
)

type PricingProfile interface {
	Insert(ctx context.Context, model model.PricingProfile) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.PricingProfile, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.PricingProfile, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type profileRepositoryImpl struct {
	gRepo.Repository[model.PricingProfile]
	db   *postgres.Connection
	otel otel.Otel
}

func NewProfile(db *postgres.Connection, otel otel.Otel) PricingProfile {
	return &profileRepositoryImpl{
		Repository: gRepo.NewRepository[model.PricingProfile](model.ProfileEntityName, model.ProfileTableName, model.FieldProfileID, db, otel),
		db:         db,
		otel:       otel,
	}
}

type PricingRule interface {
	Insert(ctx context.Context, model model.PricingRule) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.PricingRule, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.PricingRule, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
	ListEnabledByProfile(ctx context.Context, profileID string) ([]model.PricingRule, error)
}

type ruleRepositoryImpl struct {
	gRepo.Repository[model.PricingRule]
	db   *postgres.Connection
	otel otel.Otel
}

func NewRule(db *postgres.Connection, otel otel.Otel) PricingRule {
	return &ruleRepositoryImpl{
		Repository: gRepo.NewRepository[model.PricingRule](model.RuleEntityName, model.RuleTableName, model.FieldRuleID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// ListEnabledByProfile returns the rules in evaluation order: highest
// priority first, insertion order breaking ties.
func (repo *ruleRepositoryImpl) ListEnabledByProfile(ctx context.Context, profileID string) ([]model.PricingRule, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.ListEnabledByProfile", constant.OtelRepositoryScopeName, model.RuleEntityName))
	defer scope.End()

	query := fmt.Sprintf(
		"SELECT * FROM %s WHERE profile_id = :profile_id AND enabled = TRUE ORDER BY priority DESC, created_at ASC, id ASC",
		model.RuleTableName,
	)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	args := map[string]any{"profile_id": profileID}

	var models []model.PricingRule

	prepare, err := repo.db.Read.PrepareNamedContext(ctx, query)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return models, fmt.Errorf("failed to prepare statement (%s): %w", model.RuleEntityName, err)
	}
	defer prepare.Close()

	err = prepare.SelectContext(ctx, &models, args)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return models, fmt.Errorf("failed to list enabled pricing rules: %w", err)
	}

	return models, nil
}
