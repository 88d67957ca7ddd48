package model

import (
	"time"
	"tourbase/shared/model"
)

const (
	TableName  = "calendar_syncs"
	EntityName = "calendar_sync"

	FieldID          = "id"
	FieldUnitID      = "unit_id"
	FieldPlatform    = "platform"
	FieldCalendarURL = "calendar_url"
	FieldIsActive    = "is_active"
	FieldLastSyncAt  = "last_sync_at"
	FieldLastError   = "last_error"
)

const (
	PlatformAirbnb  = "airbnb"
	PlatformBooking = "booking"
	PlatformOther   = "other"
)

// CalendarSync binds a unit to one external iCal feed. A unit may have
// several, one per platform.
type CalendarSync struct {
	ID          string     `db:"id"`
	UnitID      string     `db:"unit_id"`
	Platform    string     `db:"platform"`
	CalendarURL string     `db:"calendar_url"`
	IsActive    bool       `db:"is_active"`
	LastSyncAt  *time.Time `db:"last_sync_at"`
	LastError   *string    `db:"last_error"`
	model.Metadata
}
