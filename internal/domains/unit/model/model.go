package model

import (
	"tourbase/shared/model"
)

const (
	TableName  = "units"
	EntityName = "unit"

	FieldID                    = "id"
	FieldName                  = "name"
	FieldType                  = "type"
	FieldDescription           = "description"
	FieldBasePrice             = "base_price"
	FieldMaxGuests             = "max_guests"
	FieldAmenities             = "amenities"
	FieldPhotos                = "photos"
	FieldDynamicPricingEnabled = "dynamic_pricing_enabled"
	FieldPricingProfileID      = "pricing_profile_id"
)

const (
	TypeRoom      = "room"
	TypeApartment = "apartment"
	TypeHouse     = "house"
)

type Unit struct {
	ID                    string  `db:"id"`
	Name                  string  `db:"name"`
	Type                  string  `db:"type"`
	Description           string  `db:"description"`
	BasePrice             float64 `db:"base_price"`
	MaxGuests             int     `db:"max_guests"`
	Amenities             string  `db:"amenities"`
	Photos                string  `db:"photos"`
	DynamicPricingEnabled bool    `db:"dynamic_pricing_enabled"`
	PricingProfileID      *string `db:"pricing_profile_id"`
	model.Metadata
}
