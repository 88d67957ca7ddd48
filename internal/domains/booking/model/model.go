package model

import (
	"time"
	"tourbase/shared/model"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID            = "id"
	FieldUnitID        = "unit_id"
	FieldGuestName     = "guest_name"
	FieldGuestPhone    = "guest_phone"
	FieldCheckIn       = "check_in"
	FieldCheckOut      = "check_out"
	FieldGuestsCount   = "guests_count"
	FieldTotalPrice    = "total_price"
	FieldStatus        = "status"
	FieldPaymentStatus = "payment_status"
	FieldSource        = "source"
)

const (
	StatusConfirmed = "confirmed"
	StatusCancelled = "cancelled"
)

const (
	PaymentStatusPending = "pending"
	PaymentStatusPaid    = "paid"
)

const (
	SourceManual       = "manual"
	SourceBot          = "bot"
	SourceExternalSync = "external_sync"
)

// DayStatus is the resolved availability of a unit on a single calendar day.
// Confirmed bookings shadow pending requests, which shadow externally synced
// busy blocks.
type DayStatus string

const (
	DayStatusFree      DayStatus = "free"
	DayStatusConfirmed DayStatus = "confirmed"
	DayStatusPending   DayStatus = "pending"
	DayStatusExternal  DayStatus = "external"
)

type Booking struct {
	ID            string    `db:"id"`
	UnitID        string    `db:"unit_id"`
	GuestName     string    `db:"guest_name"`
	GuestPhone    string    `db:"guest_phone"`
	CheckIn       time.Time `db:"check_in"`
	CheckOut      time.Time `db:"check_out"`
	GuestsCount   int       `db:"guests_count"`
	TotalPrice    float64   `db:"total_price"`
	Status        string    `db:"status"`
	PaymentStatus string    `db:"payment_status"`
	Source        string    `db:"source"`
	model.Metadata
}
