package model

import (
	"time"
	"tourbase/shared/model"
)

const (
	TableName  = "pending_bookings"
	EntityName = "pending_booking"

	FieldID                 = "id"
	FieldUnitID             = "unit_id"
	FieldUnitName           = "unit_name"
	FieldGuestName          = "guest_name"
	FieldGuestPhone         = "guest_phone"
	FieldCheckIn            = "check_in"
	FieldCheckOut           = "check_out"
	FieldGuestsCount        = "guests_count"
	FieldAmount             = "amount"
	FieldScreenshotURL      = "payment_screenshot_url"
	FieldVerificationStatus = "verification_status"
	FieldVerificationNotes  = "verification_notes"
	FieldBookingID          = "booking_id"
	FieldSource             = "source"
)

// Verification lifecycle. A request starts as pending, moves to
// awaiting_verification once a payment screenshot lands, then to verified
// after an operator checks it. Approved and rejected are terminal.
const (
	StatusPending              = "pending"
	StatusAwaitingVerification = "awaiting_verification"
	StatusVerified             = "verified"
	StatusApproved             = "approved"
	StatusRejected             = "rejected"
)

func IsTerminal(status string) bool {
	return status == StatusApproved || status == StatusRejected
}

type PendingBooking struct {
	ID                   string    `db:"id"`
	UnitID               string    `db:"unit_id"`
	UnitName             string    `db:"unit_name"`
	GuestName            string    `db:"guest_name"`
	GuestPhone           string    `db:"guest_phone"`
	CheckIn              time.Time `db:"check_in"`
	CheckOut             time.Time `db:"check_out"`
	GuestsCount          int       `db:"guests_count"`
	Amount               float64   `db:"amount"`
	PaymentScreenshotURL string    `db:"payment_screenshot_url"`
	VerificationStatus   string    `db:"verification_status"`
	VerificationNotes    string    `db:"verification_notes"`
	BookingID            *string   `db:"booking_id"`
	Source               string    `db:"source"`
	model.Metadata
}
