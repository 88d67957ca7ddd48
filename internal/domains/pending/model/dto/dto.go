package dto

import (
	"time"
	"tourbase/internal/domains/pending/model"
	"tourbase/shared"
	"tourbase/shared/daterange"
	gDto "tourbase/shared/dto"
	gModel "tourbase/shared/model"
	"tourbase/shared/timezone"

	"github.com/google/uuid"
)

type CreatePendingBookingRequest struct {
	UnitID      string  `json:"unit_id"      validate:"required,uuid"`
	GuestName   string  `json:"guest_name"   validate:"required,max=100"`
	GuestPhone  string  `json:"guest_phone"  validate:"omitempty,max=20"`
	CheckIn     string  `json:"check_in"     validate:"required,day"`
	CheckOut    string  `json:"check_out"    validate:"required,day"`
	GuestsCount int     `json:"guests_count" validate:"omitempty,gte=1"`
	Amount      float64 `json:"amount"       validate:"omitempty,gte=0"`
	Source      string  `json:"source"       validate:"omitempty,oneof=manual bot"`
}

func (c *CreatePendingBookingRequest) Range() (checkIn, checkOut time.Time, err error) {
	checkIn, err = daterange.ParseDay(c.CheckIn)
	if err != nil {
		return checkIn, checkOut, err
	}

	checkOut, err = daterange.ParseDay(c.CheckOut)

	return checkIn, checkOut, err
}

func (c *CreatePendingBookingRequest) ToModel(user, unitName string, checkIn, checkOut time.Time) model.PendingBooking {
	source := c.Source
	if source == "" {
		source = "bot"
	}

	guests := c.GuestsCount
	if guests == 0 {
		guests = 1
	}

	return model.PendingBooking{
		ID:                 uuid.NewString(),
		UnitID:             c.UnitID,
		UnitName:           unitName,
		GuestName:          c.GuestName,
		GuestPhone:         c.GuestPhone,
		CheckIn:            checkIn,
		CheckOut:           checkOut,
		GuestsCount:        guests,
		Amount:             c.Amount,
		VerificationStatus: model.StatusPending,
		Source:             source,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type VerifyPendingBookingRequest struct {
	Notes string `json:"notes" validate:"omitempty,max=500"`
}

type RejectPendingBookingRequest struct {
	Notes string `json:"notes" validate:"omitempty,max=500"`
}

type PendingBookingResponse struct {
	ID                   string  `json:"id"`
	UnitID               string  `json:"unit_id"`
	UnitName             string  `json:"unit_name"`
	GuestName            string  `json:"guest_name"`
	GuestPhone           string  `json:"guest_phone"`
	CheckIn              string  `json:"check_in"`
	CheckOut             string  `json:"check_out"`
	GuestsCount          int     `json:"guests_count"`
	Amount               float64 `json:"amount"`
	PaymentScreenshotURL string  `json:"payment_screenshot_url"`
	VerificationStatus   string  `json:"verification_status"`
	VerificationNotes    string  `json:"verification_notes"`
	BookingID            *string `json:"booking_id,omitempty"`
	Source               string  `json:"source"`
	gDto.Metadata
}

func (r *PendingBookingResponse) FromModel(m model.PendingBooking) {
	r.ID = m.ID
	r.UnitID = m.UnitID
	r.UnitName = m.UnitName
	r.GuestName = m.GuestName
	r.GuestPhone = m.GuestPhone
	r.CheckIn = daterange.FormatDay(m.CheckIn)
	r.CheckOut = daterange.FormatDay(m.CheckOut)
	r.GuestsCount = m.GuestsCount
	r.Amount = m.Amount
	r.PaymentScreenshotURL = m.PaymentScreenshotURL
	r.VerificationStatus = m.VerificationStatus
	r.VerificationNotes = m.VerificationNotes
	r.BookingID = m.BookingID
	r.Source = m.Source
	r.Metadata.FromModel(m.Metadata)
}

type GetPendingBookingsResponse struct {
	PendingBookings []PendingBookingResponse `json:"pending_bookings"`
	TotalPage       int                      `json:"total_page"`
	TotalData       int                      `json:"total_data"`
}

func (r *GetPendingBookingsResponse) FromModels(models []model.PendingBooking, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.PendingBookings = make([]PendingBookingResponse, len(models))
	for i, mod := range models {
		r.PendingBookings[i].FromModel(mod)
	}
}
