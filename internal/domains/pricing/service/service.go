package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"tourbase/config"
	"tourbase/infras/otel"
	"tourbase/internal/domains/pricing/model"
	"tourbase/internal/domains/pricing/model/dto"
	"tourbase/internal/domains/pricing/repository"
	unitModel "tourbase/internal/domains/unit/model"
	unitRepo "tourbase/internal/domains/unit/repository"
	"tourbase/shared"
	"tourbase/shared/cache"
	"tourbase/shared/constant"
	gDto "tourbase/shared/dto"
	"tourbase/shared/failure"
	"tourbase/shared/timezone"
	"tourbase/shared/validator"

	"github.com/jmoiron/sqlx/types"
	"github.com/rs/zerolog/log"
)

const (
	cacheGetProfile    = "pricing:profile:get"
	cacheGetAllProfile = "pricing:profile:gets"
	cacheCountProfile  = "pricing:profile:count"
)

type Pricing interface {
	CreateProfile(ctx context.Context, req dto.CreatePricingProfileRequest) (dto.PricingProfileResponse, error)
	GetProfile(ctx context.Context, id string) (dto.PricingProfileResponse, error)
	GetProfiles(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetPricingProfilesResponse, error)
	UpdateProfile(ctx context.Context, req dto.UpdatePricingProfileRequest, id string) error
	DeleteProfile(ctx context.Context, id string) error
	CreateRule(ctx context.Context, req dto.CreatePricingRuleRequest) (dto.PricingRuleResponse, error)
	GetRules(ctx context.Context, profileID string) (dto.GetPricingRulesResponse, error)
	UpdateRule(ctx context.Context, req dto.UpdatePricingRuleRequest, id string) error
	DeleteRule(ctx context.Context, id string) error
	ToggleDynamic(ctx context.Context, unitID string, enabled bool) error
}

type serviceImpl struct {
	profileRepo repository.PricingProfile
	ruleRepo    repository.PricingRule
	unitRepo    unitRepo.Unit
	cfg         *config.Config
	cache       cache.RedisCache
	otel        otel.Otel
}

func New(
	profileRepo repository.PricingProfile,
	ruleRepo repository.PricingRule,
	unitRepo unitRepo.Unit,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
) Pricing {
	return &serviceImpl{
		profileRepo: profileRepo,
		ruleRepo:    ruleRepo,
		unitRepo:    unitRepo,
		cfg:         cfg,
		cache:       cache,
		otel:        otel,
	}
}

func validateBounds(minPrice, maxPrice *float64) error {
	if minPrice != nil && maxPrice != nil && *minPrice > *maxPrice {
		return failure.BadRequestFromString("min_price cannot exceed max_price") // nolint:wrapcheck
	}

	return nil
}

func (s *serviceImpl) CreateProfile(ctx context.Context, req dto.CreatePricingProfileRequest) (res dto.PricingProfileResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CreateProfile")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = validateBounds(req.MinPrice, req.MaxPrice); err != nil {
		return res, err
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	profile := req.ToModel(user)

	if err = s.profileRepo.Insert(ctx, profile); err != nil {
		log.Error().Err(err).Msg("failed to create pricing profile")

		return res, fmt.Errorf("failed to create pricing profile: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllProfile)
		shared.InvalidateCaches(c, s.cache, cacheCountProfile)
	}()

	res.FromModel(profile)

	return res, nil
}

func (s *serviceImpl) GetProfile(ctx context.Context, id string) (res dto.PricingProfileResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetProfile")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetProfile, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for pricing profile")

		return res, nil
	}

	profile, err := s.profileRepo.Get(ctx, shared.FilterByID(id, model.FieldProfileID, model.ProfileTableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get pricing profile")

		return res, fmt.Errorf("failed to get pricing profile: %w", err)
	}

	if profile.ID == constant.Empty {
		return res, failure.NotFound("pricing profile not found") // nolint:wrapcheck
	}

	res.FromModel(profile)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save pricing profile to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) GetProfiles(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetPricingProfilesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetProfiles")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllProfile, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for pricing profiles")

		return res, nil
	}

	total, err := s.profileRepo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count pricing profiles")

		return res, fmt.Errorf("failed to count pricing profiles: %w", err)
	}

	models, err := s.profileRepo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get pricing profiles")

		return res, fmt.Errorf("failed to get pricing profiles: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save pricing profiles to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) UpdateProfile(ctx context.Context, req dto.UpdatePricingProfileRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateProfile")
	defer scope.End()
	defer scope.TraceIfError(err)

	if req == (dto.UpdatePricingProfileRequest{}) {
		return failure.BadRequestFromString("update request cannot be empty") // nolint:wrapcheck
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldProfileID, model.ProfileTableName)

	profile, err := s.profileRepo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get pricing profile")

		return fmt.Errorf("failed to get pricing profile: %w", err)
	}

	if profile.ID == constant.Empty {
		return failure.NotFound("pricing profile not found") // nolint:wrapcheck
	}

	// Bounds are checked against the merged state, not just the patch.
	minPrice := profile.MinPrice
	if req.MinPrice != nil {
		minPrice = req.MinPrice
	}

	maxPrice := profile.MaxPrice
	if req.MaxPrice != nil {
		maxPrice = req.MaxPrice
	}

	if err = validateBounds(minPrice, maxPrice); err != nil {
		return err
	}

	updatedFields := shared.TransformFields(req, user)
	if err := s.profileRepo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update pricing profile")

		return fmt.Errorf("failed to update pricing profile: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetProfile, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete pricing profile from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllProfile)
		shared.InvalidateCaches(c, s.cache, cachePriceCalendar)
	}()

	return nil
}

func (s *serviceImpl) DeleteProfile(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".DeleteProfile")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := shared.FilterByID(id, model.FieldProfileID, model.ProfileTableName)

	exist, err := s.profileRepo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if pricing profile exists")

		return fmt.Errorf("failed to check if pricing profile exists: %w", err)
	}

	if !exist {
		return failure.NotFound("pricing profile not found") // nolint:wrapcheck
	}

	if err := s.profileRepo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete pricing profile")

		return fmt.Errorf("failed to delete pricing profile: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetProfile, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete pricing profile from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllProfile)
		shared.InvalidateCaches(c, s.cache, cacheCountProfile)
		shared.InvalidateCaches(c, s.cache, cachePriceCalendar)
	}()

	return nil
}

// validateCondition decodes the tagged union and runs the per-type
// constraints, so malformed rules are rejected at write time.
func validateCondition(conditionType string, raw []byte) error {
	cond, err := dto.DecodeCondition(conditionType, types.JSONText(raw))
	if err != nil {
		return failure.BadRequestFromString(err.Error()) // nolint:wrapcheck
	}

	switch c := cond.(type) {
	case dto.OccupancyCondition:
		err = validator.ValidateStruct(&c)
	case dto.DaysBeforeCondition:
		err = validator.ValidateStruct(&c)
	case dto.DayOfWeekCondition:
		err = validator.ValidateStruct(&c)
	}

	if err != nil {
		return failure.BadRequestFromString(fmt.Sprintf("invalid condition_value: %v", err)) // nolint:wrapcheck
	}

	return nil
}

func (s *serviceImpl) CreateRule(ctx context.Context, req dto.CreatePricingRuleRequest) (res dto.PricingRuleResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CreateRule")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = validateCondition(req.ConditionType, req.ConditionValue); err != nil {
		return res, err
	}

	profileExists, err := s.profileRepo.Exist(ctx, shared.FilterByID(req.ProfileID, model.FieldProfileID, model.ProfileTableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if pricing profile exists")

		return res, fmt.Errorf("failed to check if pricing profile exists: %w", err)
	}

	if !profileExists {
		return res, failure.BadRequestFromString("pricing profile does not exist") // nolint:wrapcheck
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	rule := req.ToModel(user)

	if err = s.ruleRepo.Insert(ctx, rule); err != nil {
		log.Error().Err(err).Msg("failed to create pricing rule")

		return res, fmt.Errorf("failed to create pricing rule: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cachePriceCalendar)
	}()

	res.FromModel(rule)

	return res, nil
}

func (s *serviceImpl) GetRules(ctx context.Context, profileID string) (res dto.GetPricingRulesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetRules")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := shared.FilterByID(profileID, model.FieldRuleProfileID, model.RuleTableName)

	total, err := s.ruleRepo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count pricing rules")

		return res, fmt.Errorf("failed to count pricing rules: %w", err)
	}

	params := gDto.QueryParams{SortBy: model.FieldPriority, SortDir: gDto.SortDirDesc}

	models, err := s.ruleRepo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get pricing rules")

		return res, fmt.Errorf("failed to get pricing rules: %w", err)
	}

	res.FromModels(models, total, 0)

	return res, nil
}

func (s *serviceImpl) UpdateRule(ctx context.Context, req dto.UpdatePricingRuleRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateRule")
	defer scope.End()
	defer scope.TraceIfError(err)

	if req == (dto.UpdatePricingRuleRequest{}) {
		return failure.BadRequestFromString("update request cannot be empty") // nolint:wrapcheck
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldRuleID, model.RuleTableName)

	exist, err := s.ruleRepo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if pricing rule exists")

		return fmt.Errorf("failed to check if pricing rule exists: %w", err)
	}

	if !exist {
		return failure.NotFound("pricing rule not found") // nolint:wrapcheck
	}

	updatedFields := shared.TransformFields(req, user)
	if err := s.ruleRepo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update pricing rule")

		return fmt.Errorf("failed to update pricing rule: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cachePriceCalendar)
	}()

	return nil
}

func (s *serviceImpl) DeleteRule(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".DeleteRule")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := shared.FilterByID(id, model.FieldRuleID, model.RuleTableName)

	exist, err := s.ruleRepo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if pricing rule exists")

		return fmt.Errorf("failed to check if pricing rule exists: %w", err)
	}

	if !exist {
		return failure.NotFound("pricing rule not found") // nolint:wrapcheck
	}

	if err := s.ruleRepo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete pricing rule")

		return fmt.Errorf("failed to delete pricing rule: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cachePriceCalendar)
	}()

	return nil
}

// ToggleDynamic flips dynamic pricing for a single unit.
func (s *serviceImpl) ToggleDynamic(ctx context.Context, unitID string, enabled bool) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ToggleDynamic")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(unitID, unitModel.FieldID, unitModel.TableName)

	exist, err := s.unitRepo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if unit exists")

		return fmt.Errorf("failed to check if unit exists: %w", err)
	}

	if !exist {
		return failure.NotFound("unit not found") // nolint:wrapcheck
	}

	fields := map[string]any{
		unitModel.FieldDynamicPricingEnabled: enabled,
		constant.FieldModifiedAt:             timezone.Now(),
		constant.FieldModifiedBy:             user,
	}

	if err := s.unitRepo.Update(ctx, fields, filter); err != nil {
		log.Error().Err(err).Msg("failed to toggle dynamic pricing")

		return fmt.Errorf("failed to toggle dynamic pricing: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cachePriceCalendar)
	}()

	return nil
}
