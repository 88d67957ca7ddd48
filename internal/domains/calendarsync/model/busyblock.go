package model

import (
	"time"
	"tourbase/shared/model"
)

const (
	BusyBlockTableName  = "external_busy_blocks"
	BusyBlockEntityName = "external_busy_block"

	FieldBusyBlockID  = "id"
	FieldSyncID       = "sync_id"
	FieldExternalUID  = "external_uid"
	FieldBlockUnitID  = "unit_id"
	FieldBlockStartAt = "start_date"
	FieldBlockEndAt   = "end_date"
	FieldSummary      = "summary"
)

// ExternalBusyBlock mirrors one event from an external feed. The
// (sync_id, external_uid) pair is the identity used to diff feeds between
// runs, so re-importing an unchanged feed is a no-op.
type ExternalBusyBlock struct {
	ID          string    `db:"id"`
	SyncID      string    `db:"sync_id"`
	UnitID      string    `db:"unit_id"`
	ExternalUID string    `db:"external_uid"`
	StartDate   time.Time `db:"start_date"`
	EndDate     time.Time `db:"end_date"`
	Summary     string    `db:"summary"`
	model.Metadata
}
