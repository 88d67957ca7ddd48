package dto

import (
	"tourbase/internal/domains/unit/model"
	"tourbase/shared"
	gDto "tourbase/shared/dto"
	gModel "tourbase/shared/model"
	"tourbase/shared/timezone"

	"github.com/google/uuid"
)

type CreateUnitRequest struct {
	Name                  string  `json:"name"                    validate:"required,max=200"`
	Type                  string  `json:"type"                    validate:"omitempty,oneof=room apartment house"`
	Description           string  `json:"description"             validate:"omitempty"`
	BasePrice             float64 `json:"base_price"              validate:"required,gt=0"`
	MaxGuests             int     `json:"max_guests"              validate:"omitempty,gte=1"`
	Amenities             string  `json:"amenities"               validate:"omitempty"`
	Photos                string  `json:"photos"                  validate:"omitempty"`
	DynamicPricingEnabled bool    `json:"dynamic_pricing_enabled" validate:"omitempty"`
	PricingProfileID      *string `json:"pricing_profile_id"      validate:"omitempty,uuid"`
}

func (c *CreateUnitRequest) ToModel(user string) model.Unit {
	unitType := c.Type
	if unitType == "" {
		unitType = model.TypeRoom
	}

	maxGuests := c.MaxGuests
	if maxGuests == 0 {
		maxGuests = 1
	}

	return model.Unit{
		ID:                    uuid.NewString(),
		Name:                  c.Name,
		Type:                  unitType,
		Description:           c.Description,
		BasePrice:             c.BasePrice,
		MaxGuests:             maxGuests,
		Amenities:             c.Amenities,
		Photos:                c.Photos,
		DynamicPricingEnabled: c.DynamicPricingEnabled,
		PricingProfileID:      c.PricingProfileID,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateUnitRequest struct {
	Name             string  `db:"name"               json:"name"               validate:"omitempty,max=200"`
	Type             string  `db:"type"               json:"type"               validate:"omitempty,oneof=room apartment house"`
	Description      string  `db:"description"        json:"description"        validate:"omitempty"`
	BasePrice        float64 `db:"base_price"         json:"base_price"         validate:"omitempty,gt=0"`
	MaxGuests        int     `db:"max_guests"         json:"max_guests"         validate:"omitempty,gte=1"`
	Amenities        string  `db:"amenities"          json:"amenities"          validate:"omitempty"`
	Photos           string  `db:"photos"             json:"photos"             validate:"omitempty"`
	PricingProfileID *string `db:"pricing_profile_id" json:"pricing_profile_id" validate:"omitempty,uuid"`
}

type UnitResponse struct {
	ID                    string  `json:"id"`
	Name                  string  `json:"name"`
	Type                  string  `json:"type"`
	Description           string  `json:"description"`
	BasePrice             float64 `json:"base_price"`
	MaxGuests             int     `json:"max_guests"`
	Amenities             string  `json:"amenities"`
	Photos                string  `json:"photos"`
	DynamicPricingEnabled bool    `json:"dynamic_pricing_enabled"`
	PricingProfileID      *string `json:"pricing_profile_id"`
	gDto.Metadata
}

func (r *UnitResponse) FromModel(m model.Unit) {
	r.ID = m.ID
	r.Name = m.Name
	r.Type = m.Type
	r.Description = m.Description
	r.BasePrice = m.BasePrice
	r.MaxGuests = m.MaxGuests
	r.Amenities = m.Amenities
	r.Photos = m.Photos
	r.DynamicPricingEnabled = m.DynamicPricingEnabled
	r.PricingProfileID = m.PricingProfileID
	r.Metadata.FromModel(m.Metadata)
}

type GetUnitsResponse struct {
	Units     []UnitResponse `json:"units"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func (r *GetUnitsResponse) FromModels(models []model.Unit, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Units = make([]UnitResponse, len(models))
	for i, mod := range models {
		r.Units[i].FromModel(mod)
	}
}
