package dto

import (
	"encoding/json"
	"fmt"
	"tourbase/internal/domains/pricing/model"
	"tourbase/shared"
	gDto "tourbase/shared/dto"
	gModel "tourbase/shared/model"
	"tourbase/shared/timezone"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx/types"
)

type CreatePricingProfileRequest struct {
	Name     string   `json:"name"      validate:"required,max=100"`
	Mode     string   `json:"mode"      validate:"required,oneof=rules fixed"`
	MinPrice *float64 `json:"min_price" validate:"omitempty,gt=0"`
	MaxPrice *float64 `json:"max_price" validate:"omitempty,gt=0"`
}

func (c *CreatePricingProfileRequest) ToModel(user string) model.PricingProfile {
	return model.PricingProfile{
		ID:       uuid.NewString(),
		Name:     c.Name,
		Mode:     c.Mode,
		MinPrice: c.MinPrice,
		MaxPrice: c.MaxPrice,
		Enabled:  true,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdatePricingProfileRequest struct {
	Name     *string  `json:"name"      db:"name"      validate:"omitempty,max=100"`
	Mode     *string  `json:"mode"      db:"mode"      validate:"omitempty,oneof=rules fixed"`
	MinPrice *float64 `json:"min_price" db:"min_price" validate:"omitempty,gt=0"`
	MaxPrice *float64 `json:"max_price" db:"max_price" validate:"omitempty,gt=0"`
	Enabled  *bool    `json:"enabled"   db:"enabled"`
}

type PricingProfileResponse struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Mode     string   `json:"mode"`
	MinPrice *float64 `json:"min_price,omitempty"`
	MaxPrice *float64 `json:"max_price,omitempty"`
	Enabled  bool     `json:"enabled"`
	gDto.Metadata
}

func (r *PricingProfileResponse) FromModel(m model.PricingProfile) {
	r.ID = m.ID
	r.Name = m.Name
	r.Mode = m.Mode
	r.MinPrice = m.MinPrice
	r.MaxPrice = m.MaxPrice
	r.Enabled = m.Enabled
	r.Metadata.FromModel(m.Metadata)
}

type GetPricingProfilesResponse struct {
	Profiles  []PricingProfileResponse `json:"profiles"`
	TotalPage int                      `json:"total_page"`
	TotalData int                      `json:"total_data"`
}

func (r *GetPricingProfilesResponse) FromModels(models []model.PricingProfile, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Profiles = make([]PricingProfileResponse, len(models))
	for i, mod := range models {
		r.Profiles[i].FromModel(mod)
	}
}

// Condition payloads, one per condition_type. The raw condition_value column
// holds exactly one of these.

type OccupancyCondition struct {
	Threshold float64 `json:"threshold" validate:"gte=0,lte=100"`
	Operator  string  `json:"operator"  validate:"omitempty,oneof=> < >= <= ="`
}

type DaysBeforeCondition struct {
	Days         int      `json:"days"          validate:"gte=0"`
	OccupancyMax *float64 `json:"occupancy_max" validate:"omitempty,gte=0,lte=100"`
}

type DayOfWeekCondition struct {
	Days []int `json:"days" validate:"required,min=1,dive,gte=0,lte=6"`
}

// DecodeCondition parses a raw condition_value into the struct matching the
// condition type. Unknown fields are tolerated; unknown types are not.
func DecodeCondition(conditionType string, raw types.JSONText) (any, error) {
	switch conditionType {
	case model.ConditionOccupancy:
		var c OccupancyCondition
		if err := json.Unmarshal(raw, &c); err != nil {
			return nil, fmt.Errorf("invalid occupancy condition: %w", err)
		}

		return c, nil
	case model.ConditionDaysBefore:
		var c DaysBeforeCondition
		if err := json.Unmarshal(raw, &c); err != nil {
			return nil, fmt.Errorf("invalid days_before condition: %w", err)
		}

		return c, nil
	case model.ConditionDayOfWeek:
		var c DayOfWeekCondition
		if err := json.Unmarshal(raw, &c); err != nil {
			return nil, fmt.Errorf("invalid day_of_week condition: %w", err)
		}

		if len(c.Days) == 0 {
			return nil, fmt.Errorf("day_of_week condition has no days")
		}

		return c, nil
	default:
		return nil, fmt.Errorf("unknown condition type %q", conditionType)
	}
}

type CreatePricingRuleRequest struct {
	ProfileID      string          `json:"profile_id"      validate:"omitempty,uuid"`
	Name           string          `json:"name"            validate:"required,max=100"`
	ConditionType  string          `json:"condition_type"  validate:"required,oneof=occupancy days_before day_of_week"`
	ConditionValue json.RawMessage `json:"condition_value" validate:"required"`
	ActionType     string          `json:"action_type"     validate:"required,oneof=increase decrease set"`
	ActionUnit     string          `json:"action_unit"     validate:"required,oneof=percent fixed"`
	ActionValue    float64         `json:"action_value"    validate:"gte=0"`
	Priority       int             `json:"priority"        validate:"omitempty,gte=0"`
}

func (c *CreatePricingRuleRequest) ToModel(user string) model.PricingRule {
	return model.PricingRule{
		ID:             uuid.NewString(),
		ProfileID:      c.ProfileID,
		Name:           c.Name,
		ConditionType:  c.ConditionType,
		ConditionValue: types.JSONText(c.ConditionValue),
		ActionType:     c.ActionType,
		ActionUnit:     c.ActionUnit,
		ActionValue:    c.ActionValue,
		Priority:       c.Priority,
		Enabled:        true,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdatePricingRuleRequest struct {
	Name        *string  `json:"name"         db:"name"         validate:"omitempty,max=100"`
	ActionType  *string  `json:"action_type"  db:"action_type"  validate:"omitempty,oneof=increase decrease set"`
	ActionUnit  *string  `json:"action_unit"  db:"action_unit"  validate:"omitempty,oneof=percent fixed"`
	ActionValue *float64 `json:"action_value" db:"action_value" validate:"omitempty,gte=0"`
	Priority    *int     `json:"priority"     db:"priority"     validate:"omitempty,gte=0"`
	Enabled     *bool    `json:"enabled"      db:"enabled"`
}

type ToggleDynamicPricingRequest struct {
	Enabled bool `json:"enabled"`
}

type PricingRuleResponse struct {
	ID             string          `json:"id"`
	ProfileID      string          `json:"profile_id"`
	Name           string          `json:"name"`
	ConditionType  string          `json:"condition_type"`
	ConditionValue json.RawMessage `json:"condition_value"`
	ActionType     string          `json:"action_type"`
	ActionUnit     string          `json:"action_unit"`
	ActionValue    float64         `json:"action_value"`
	Priority       int             `json:"priority"`
	Enabled        bool            `json:"enabled"`
	gDto.Metadata
}

func (r *PricingRuleResponse) FromModel(m model.PricingRule) {
	r.ID = m.ID
	r.ProfileID = m.ProfileID
	r.Name = m.Name
	r.ConditionType = m.ConditionType
	r.ConditionValue = json.RawMessage(m.ConditionValue)
	r.ActionType = m.ActionType
	r.ActionUnit = m.ActionUnit
	r.ActionValue = m.ActionValue
	r.Priority = m.Priority
	r.Enabled = m.Enabled
	r.Metadata.FromModel(m.Metadata)
}

type GetPricingRulesResponse struct {
	Rules     []PricingRuleResponse `json:"rules"`
	TotalPage int                   `json:"total_page"`
	TotalData int                   `json:"total_data"`
}

func (r *GetPricingRulesResponse) FromModels(models []model.PricingRule, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Rules = make([]PricingRuleResponse, len(models))
	for i, mod := range models {
		r.Rules[i].FromModel(mod)
	}
}

// AppliedRule records one rule's effect on the running price.
type AppliedRule struct {
	RuleID      string  `json:"rule_id"`
	RuleName    string  `json:"rule_name"`
	PriceBefore float64 `json:"price_before"`
	PriceAfter  float64 `json:"price_after"`
	Change      float64 `json:"change"`
}

// SkippedRule flags a rule the engine could not evaluate.
type SkippedRule struct {
	RuleID   string `json:"rule_id"`
	RuleName string `json:"rule_name"`
	Reason   string `json:"reason"`
}

type PriceResponse struct {
	UnitID       string        `json:"unit_id"`
	Date         string        `json:"date"`
	BasePrice    float64       `json:"base_price"`
	FinalPrice   float64       `json:"final_price"`
	AppliedRules []AppliedRule `json:"applied_rules"`
	SkippedRules []SkippedRule `json:"skipped_rules,omitempty"`
}

type PriceCalendarDay struct {
	Date       string  `json:"date"`
	FinalPrice float64 `json:"final_price"`
}

type PriceCalendarResponse struct {
	UnitID string             `json:"unit_id"`
	From   string             `json:"from"`
	To     string             `json:"to"`
	Days   []PriceCalendarDay `json:"days"`
}

type PriceCalculationLogResponse struct {
	UnitID       string          `json:"unit_id"`
	Date         string          `json:"date"`
	BasePrice    float64         `json:"base_price"`
	FinalPrice   float64         `json:"final_price"`
	AppliedRules json.RawMessage `json:"applied_rules"`
	CalculatedAt string          `json:"calculated_at"`
}
