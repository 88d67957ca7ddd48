package dto

import (
	"tourbase/internal/domains/calendarsync/model"
	"tourbase/shared"
	"tourbase/shared/constant"
	gDto "tourbase/shared/dto"
	gModel "tourbase/shared/model"
	"tourbase/shared/timezone"

	"github.com/google/uuid"
)

type CreateCalendarSyncRequest struct {
	UnitID      string `json:"unit_id"      validate:"required,uuid"`
	Platform    string `json:"platform"     validate:"required,oneof=airbnb booking other"`
	CalendarURL string `json:"calendar_url" validate:"required,url"`
}

func (c *CreateCalendarSyncRequest) ToModel(user string) model.CalendarSync {
	return model.CalendarSync{
		ID:          uuid.NewString(),
		UnitID:      c.UnitID,
		Platform:    c.Platform,
		CalendarURL: c.CalendarURL,
		IsActive:    true,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateCalendarSyncRequest struct {
	CalendarURL *string `json:"calendar_url" db:"calendar_url" validate:"omitempty,url"`
	IsActive    *bool   `json:"is_active"    db:"is_active"`
}

type CalendarSyncResponse struct {
	ID          string  `json:"id"`
	UnitID      string  `json:"unit_id"`
	Platform    string  `json:"platform"`
	CalendarURL string  `json:"calendar_url"`
	IsActive    bool    `json:"is_active"`
	LastSyncAt  *string `json:"last_sync_at,omitempty"`
	LastError   *string `json:"last_error,omitempty"`
	gDto.Metadata
}

func (r *CalendarSyncResponse) FromModel(m model.CalendarSync) {
	r.ID = m.ID
	r.UnitID = m.UnitID
	r.Platform = m.Platform
	r.CalendarURL = m.CalendarURL
	r.IsActive = m.IsActive
	r.LastError = m.LastError

	if m.LastSyncAt != nil {
		formatted := timezone.Format(*m.LastSyncAt, constant.DateFormat)
		r.LastSyncAt = &formatted
	}

	r.Metadata.FromModel(m.Metadata)
}

type GetCalendarSyncsResponse struct {
	CalendarSyncs []CalendarSyncResponse `json:"calendar_syncs"`
	TotalPage     int                    `json:"total_page"`
	TotalData     int                    `json:"total_data"`
}

func (r *GetCalendarSyncsResponse) FromModels(models []model.CalendarSync, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.CalendarSyncs = make([]CalendarSyncResponse, len(models))
	for i, mod := range models {
		r.CalendarSyncs[i].FromModel(mod)
	}
}

// SyncResult reports what one reconciliation pass changed.
type SyncResult struct {
	SyncID   string `json:"sync_id"`
	Imported int    `json:"imported"`
	Updated  int    `json:"updated"`
	Removed  int    `json:"removed"`
}
