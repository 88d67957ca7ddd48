package model

import (
	"time"
	"tourbase/shared/model"

	"github.com/jmoiron/sqlx/types"
)

const (
	ProfileTableName  = "pricing_profiles"
	ProfileEntityName = "pricing_profile"

	FieldProfileID = "id"
	FieldName      = "name"
	FieldMode      = "mode"
	FieldMinPrice  = "min_price"
	FieldMaxPrice  = "max_price"
	FieldEnabled   = "enabled"
)

const (
	ModeRules = "rules"
	ModeFixed = "fixed"
)

// Clamp fallbacks, applied when a profile leaves min or max unset. They are
// multipliers on the unit's base price.
const (
	DefaultMinFactor = 0.5
	DefaultMaxFactor = 2.0
)

type PricingProfile struct {
	ID       string   `db:"id"`
	Name     string   `db:"name"`
	Mode     string   `db:"mode"`
	MinPrice *float64 `db:"min_price"`
	MaxPrice *float64 `db:"max_price"`
	Enabled  bool     `db:"enabled"`
	model.Metadata
}

const (
	RuleTableName  = "pricing_rules"
	RuleEntityName = "pricing_rule"

	FieldRuleID         = "id"
	FieldRuleProfileID  = "profile_id"
	FieldRuleName       = "name"
	FieldConditionType  = "condition_type"
	FieldConditionValue = "condition_value"
	FieldActionType     = "action_type"
	FieldActionUnit     = "action_unit"
	FieldActionValue    = "action_value"
	FieldPriority       = "priority"
	FieldRuleEnabled    = "enabled"
)

const (
	ConditionOccupancy  = "occupancy"
	ConditionDaysBefore = "days_before"
	ConditionDayOfWeek  = "day_of_week"
)

const (
	ActionIncrease = "increase"
	ActionDecrease = "decrease"
	ActionSet      = "set"
)

const (
	UnitPercent = "percent"
	UnitFixed   = "fixed"
)

// PricingRule's ConditionValue is a tagged union keyed by ConditionType; it
// is validated when the rule is written, not when it is evaluated.
type PricingRule struct {
	ID             string         `db:"id"`
	ProfileID      string         `db:"profile_id"`
	Name           string         `db:"name"`
	ConditionType  string         `db:"condition_type"`
	ConditionValue types.JSONText `db:"condition_value"`
	ActionType     string         `db:"action_type"`
	ActionUnit     string         `db:"action_unit"`
	ActionValue    float64        `db:"action_value"`
	Priority       int            `db:"priority"`
	Enabled        bool           `db:"enabled"`
	model.Metadata
}

const (
	LogTableName  = "price_calculation_logs"
	LogEntityName = "price_calculation_log"

	FieldLogID     = "id"
	FieldLogUnitID = "unit_id"
	FieldLogDate   = "date"
)

// PriceCalculationLog keeps the latest calculation per (unit, date) so
// operators can see why a night is priced the way it is.
type PriceCalculationLog struct {
	ID           string         `db:"id"`
	UnitID       string         `db:"unit_id"`
	Date         time.Time      `db:"date"`
	BasePrice    float64        `db:"base_price"`
	FinalPrice   float64        `db:"final_price"`
	AppliedRules types.JSONText `db:"applied_rules"`
	CalculatedAt time.Time      `db:"calculated_at"`
}
