package service

//go:generate go run go.uber.org/mock/mockgen -source=./engine.go -destination=../mocks/engine_mock.go -package=mocks

import (
	"context"
	"encoding/json"
	"fmt"
	"slices"
	"time"
	"tourbase/config"
	"tourbase/infras/otel"
	bookingRepo "tourbase/internal/domains/booking/repository"
	"tourbase/internal/domains/pricing/model"
	"tourbase/internal/domains/pricing/model/dto"
	"tourbase/internal/domains/pricing/repository"
	unitModel "tourbase/internal/domains/unit/model"
	unitRepo "tourbase/internal/domains/unit/repository"
	"tourbase/shared"
	"tourbase/shared/cache"
	"tourbase/shared/constant"
	"tourbase/shared/daterange"
	"tourbase/shared/failure"
	"tourbase/shared/timezone"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx/types"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

const cachePriceCalendar = constant.CacheKeyPriceCalendar

type Engine interface {
	CalculatePrice(ctx context.Context, unitID string, date time.Time) (dto.PriceResponse, error)
	PriceCalendar(ctx context.Context, unitID string, from, to time.Time) (dto.PriceCalendarResponse, error)
	QuoteStay(ctx context.Context, unit unitModel.Unit, checkIn, checkOut time.Time) (float64, error)
	Logs(ctx context.Context, unitID string, from, to time.Time) ([]dto.PriceCalculationLogResponse, error)
}

type engineImpl struct {
	unitRepo    unitRepo.Unit
	profileRepo repository.PricingProfile
	ruleRepo    repository.PricingRule
	logRepo     repository.CalculationLog
	bookingRepo bookingRepo.Booking
	cfg         *config.Config
	cache       cache.RedisCache
	otel        otel.Otel
}

func NewEngine(
	unitRepo unitRepo.Unit,
	profileRepo repository.PricingProfile,
	ruleRepo repository.PricingRule,
	logRepo repository.CalculationLog,
	bookingRepo bookingRepo.Booking,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
) Engine {
	return &engineImpl{
		unitRepo:    unitRepo,
		profileRepo: profileRepo,
		ruleRepo:    ruleRepo,
		logRepo:     logRepo,
		bookingRepo: bookingRepo,
		cfg:         cfg,
		cache:       cache,
		otel:        otel,
	}
}

func (s *engineImpl) CalculatePrice(ctx context.Context, unitID string, date time.Time) (res dto.PriceResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CalculatePrice")
	defer scope.End()
	defer scope.TraceIfError(err)

	unit, err := s.unitRepo.Get(ctx, shared.FilterByID(unitID, unitModel.FieldID, unitModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get unit")

		return res, fmt.Errorf("failed to get unit: %w", err)
	}

	if unit.ID == constant.Empty {
		return res, failure.NotFound("unit not found") // nolint:wrapcheck
	}

	return s.calculateForUnit(ctx, unit, date)
}

// calculateForUnit runs the rule pipeline for one unit-night and records the
// outcome in the calculation log.
func (s *engineImpl) calculateForUnit(ctx context.Context, unit unitModel.Unit, date time.Time) (res dto.PriceResponse, err error) {
	date = daterange.Day(date)

	res = dto.PriceResponse{
		UnitID:       unit.ID,
		Date:         daterange.FormatDay(date),
		BasePrice:    unit.BasePrice,
		FinalPrice:   round2(unit.BasePrice),
		AppliedRules: []dto.AppliedRule{},
	}

	if !unit.DynamicPricingEnabled || unit.PricingProfileID == nil {
		return res, nil
	}

	profile, err := s.profileRepo.Get(ctx, shared.FilterByID(*unit.PricingProfileID, model.FieldProfileID, model.ProfileTableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get pricing profile")

		return res, fmt.Errorf("failed to get pricing profile: %w", err)
	}

	if profile.ID == constant.Empty || !profile.Enabled || profile.Mode != model.ModeRules {
		return res, nil
	}

	rules, err := s.ruleRepo.ListEnabledByProfile(ctx, profile.ID)
	if err != nil {
		log.Error().Err(err).Msg("failed to list pricing rules")

		return res, fmt.Errorf("failed to list pricing rules: %w", err)
	}

	occupancy, err := s.occupancyRate(ctx, unit.ID, date)
	if err != nil {
		log.Error().Err(err).Msg("failed to derive occupancy rate")

		return res, fmt.Errorf("failed to derive occupancy rate: %w", err)
	}

	daysBefore := daterange.DaysBetween(timezone.Now(), date)
	dayOfWeek := int(date.Weekday())

	price := decimal.NewFromFloat(unit.BasePrice)

	for _, rule := range rules {
		matched, reason := matchRule(rule, occupancy, daysBefore, dayOfWeek)
		if reason != "" {
			res.SkippedRules = append(res.SkippedRules, dto.SkippedRule{
				RuleID:   rule.ID,
				RuleName: rule.Name,
				Reason:   reason,
			})

			continue
		}

		if !matched {
			continue
		}

		before := price
		price = applyAction(price, rule)

		res.AppliedRules = append(res.AppliedRules, dto.AppliedRule{
			RuleID:      rule.ID,
			RuleName:    rule.Name,
			PriceBefore: round2Decimal(before),
			PriceAfter:  round2Decimal(price),
			Change:      round2Decimal(price.Sub(before)),
		})
	}

	price = clamp(price, profile, unit.BasePrice)
	res.FinalPrice = round2Decimal(price)

	s.writeLog(ctx, res)

	return res, nil
}

// occupancyRate is the share of confirmed nights inside a look-around window
// centred on the date, as a 0-100 percentage.
func (s *engineImpl) occupancyRate(ctx context.Context, unitID string, date time.Time) (float64, error) {
	window := s.cfg.Pricing.OccupancyWindowDays
	if window <= 0 {
		window = 30
	}

	from := date.AddDate(0, 0, -window/2)
	to := from.AddDate(0, 0, window)

	booked, err := s.bookingRepo.CountBookedNights(ctx, unitID, from, to)
	if err != nil {
		return 0, err
	}

	rate := float64(booked) * 100 / float64(window)
	if rate > 100 {
		rate = 100
	}

	return rate, nil
}

// matchRule evaluates one rule against the signals. A non-empty reason means
// the rule could not be evaluated and must be surfaced as skipped.
func matchRule(rule model.PricingRule, occupancy float64, daysBefore, dayOfWeek int) (bool, string) {
	cond, err := dto.DecodeCondition(rule.ConditionType, rule.ConditionValue)
	if err != nil {
		return false, err.Error()
	}

	switch c := cond.(type) {
	case dto.OccupancyCondition:
		op := c.Operator
		if op == "" {
			op = ">="
		}

		return compare(occupancy, op, c.Threshold), ""
	case dto.DaysBeforeCondition:
		occupancyMax := 100.0
		if c.OccupancyMax != nil {
			occupancyMax = *c.OccupancyMax
		}

		return daysBefore <= c.Days && occupancy <= occupancyMax, ""
	case dto.DayOfWeekCondition:
		return slices.Contains(c.Days, dayOfWeek), ""
	default:
		return false, fmt.Sprintf("unsupported condition type %q", rule.ConditionType)
	}
}

func compare(actual float64, operator string, threshold float64) bool {
	switch operator {
	case ">":
		return actual > threshold
	case "<":
		return actual < threshold
	case ">=":
		return actual >= threshold
	case "<=":
		return actual <= threshold
	case "=":
		return actual == threshold
	default:
		return false
	}
}

func applyAction(price decimal.Decimal, rule model.PricingRule) decimal.Decimal {
	value := decimal.NewFromFloat(rule.ActionValue)

	switch rule.ActionType {
	case model.ActionIncrease:
		if rule.ActionUnit == model.UnitPercent {
			return price.Mul(decimal.NewFromInt(1).Add(value.Div(decimal.NewFromInt(100))))
		}

		return price.Add(value)
	case model.ActionDecrease:
		if rule.ActionUnit == model.UnitPercent {
			return price.Mul(decimal.NewFromInt(1).Sub(value.Div(decimal.NewFromInt(100))))
		}

		return price.Sub(value)
	case model.ActionSet:
		return value
	default:
		return price
	}
}

// clamp bounds the price once, after all rules have run. Unset profile
// bounds fall back to fractions of the base price.
func clamp(price decimal.Decimal, profile model.PricingProfile, basePrice float64) decimal.Decimal {
	minPrice := decimal.NewFromFloat(basePrice).Mul(decimal.NewFromFloat(model.DefaultMinFactor))
	if profile.MinPrice != nil {
		minPrice = decimal.NewFromFloat(*profile.MinPrice)
	}

	maxPrice := decimal.NewFromFloat(basePrice).Mul(decimal.NewFromFloat(model.DefaultMaxFactor))
	if profile.MaxPrice != nil {
		maxPrice = decimal.NewFromFloat(*profile.MaxPrice)
	}

	if price.LessThan(minPrice) {
		return minPrice
	}

	if price.GreaterThan(maxPrice) {
		return maxPrice
	}

	return price
}

func (s *engineImpl) writeLog(ctx context.Context, res dto.PriceResponse) {
	date, err := daterange.ParseDay(res.Date)
	if err != nil {
		return
	}

	applied, err := json.Marshal(res.AppliedRules)
	if err != nil {
		applied = []byte("[]")
	}

	entry := model.PriceCalculationLog{
		ID:           uuid.NewString(),
		UnitID:       res.UnitID,
		Date:         date,
		BasePrice:    res.BasePrice,
		FinalPrice:   res.FinalPrice,
		AppliedRules: types.JSONText(applied),
		CalculatedAt: timezone.Now(),
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.logRepo.Upsert(c, entry); err != nil {
			log.Error().Err(err).Msg("failed to record price calculation")
		}
	}()
}

func (s *engineImpl) PriceCalendar(ctx context.Context, unitID string, from, to time.Time) (res dto.PriceCalendarResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".PriceCalendar")
	defer scope.End()
	defer scope.TraceIfError(err)

	from = daterange.Day(from)
	to = daterange.Day(to)

	if !from.Before(to) {
		return res, failure.BadRequestFromString("to must be after from") // nolint:wrapcheck
	}

	cacheKey := shared.BuildCacheKey(cachePriceCalendar, fmt.Sprintf("%s:%s:%s", unitID, daterange.FormatDay(from), daterange.FormatDay(to)))

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for price calendar")

		return res, nil
	}

	unit, err := s.unitRepo.Get(ctx, shared.FilterByID(unitID, unitModel.FieldID, unitModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get unit")

		return res, fmt.Errorf("failed to get unit: %w", err)
	}

	if unit.ID == constant.Empty {
		return res, failure.NotFound("unit not found") // nolint:wrapcheck
	}

	res = dto.PriceCalendarResponse{
		UnitID: unitID,
		From:   daterange.FormatDay(from),
		To:     daterange.FormatDay(to),
		Days:   []dto.PriceCalendarDay{},
	}

	for day := from; day.Before(to); day = day.AddDate(0, 0, 1) {
		if err = ctx.Err(); err != nil {
			return res, fmt.Errorf("price calendar cancelled: %w", err)
		}

		price, err := s.calculateForUnit(ctx, unit, day)
		if err != nil {
			return res, err
		}

		res.Days = append(res.Days, dto.PriceCalendarDay{
			Date:       price.Date,
			FinalPrice: price.FinalPrice,
		})
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Pricing.CalendarCacheTTL); err != nil {
			log.Error().Err(err).Msg("failed to save price calendar to cache")
		}
	}()

	return res, nil
}

// QuoteStay prices every night of [checkIn, checkOut) for a unit that has
// already been loaded, summing the per-night results.
func (s *engineImpl) QuoteStay(ctx context.Context, unit unitModel.Unit, checkIn, checkOut time.Time) (float64, error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".QuoteStay")
	defer scope.End()

	total := decimal.Zero

	for day := daterange.Day(checkIn); day.Before(daterange.Day(checkOut)); day = day.AddDate(0, 0, 1) {
		price, err := s.calculateForUnit(ctx, unit, day)
		if err != nil {
			return 0, err
		}

		total = total.Add(decimal.NewFromFloat(price.FinalPrice))
	}

	return round2Decimal(total), nil
}

func (s *engineImpl) Logs(ctx context.Context, unitID string, from, to time.Time) (res []dto.PriceCalculationLogResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Logs")
	defer scope.End()
	defer scope.TraceIfError(err)

	logs, err := s.logRepo.List(ctx, unitID, from, to)
	if err != nil {
		log.Error().Err(err).Msg("failed to list price calculation logs")

		return res, fmt.Errorf("failed to list price calculation logs: %w", err)
	}

	res = make([]dto.PriceCalculationLogResponse, len(logs))
	for i, entry := range logs {
		res[i] = dto.PriceCalculationLogResponse{
			UnitID:       entry.UnitID,
			Date:         daterange.FormatDay(entry.Date),
			BasePrice:    entry.BasePrice,
			FinalPrice:   entry.FinalPrice,
			AppliedRules: json.RawMessage(entry.AppliedRules),
			CalculatedAt: timezone.Format(entry.CalculatedAt, constant.DateFormat),
		}
	}

	return res, nil
}

func round2(v float64) float64 {
	return round2Decimal(decimal.NewFromFloat(v))
}

func round2Decimal(d decimal.Decimal) float64 {
	return d.Round(2).InexactFloat64()
}
