package dto

import (
	"time"
	"tourbase/internal/domains/booking/model"
	"tourbase/shared"
	"tourbase/shared/daterange"
	gDto "tourbase/shared/dto"
	gModel "tourbase/shared/model"
	"tourbase/shared/timezone"

	"github.com/google/uuid"
)

type CreateBookingRequest struct {
	UnitID      string  `json:"unit_id"      validate:"required,uuid"`
	GuestName   string  `json:"guest_name"   validate:"required,max=100"`
	GuestPhone  string  `json:"guest_phone"  validate:"omitempty,max=20"`
	CheckIn     string  `json:"check_in"     validate:"required,day"`
	CheckOut    string  `json:"check_out"    validate:"required,day"`
	GuestsCount int     `json:"guests_count" validate:"omitempty,gte=1"`
	TotalPrice  float64 `json:"total_price"  validate:"omitempty,gte=0"`
	Source      string  `json:"source"       validate:"omitempty,oneof=manual bot external_sync"`
}

func (c *CreateBookingRequest) Range() (checkIn, checkOut time.Time, err error) {
	checkIn, err = daterange.ParseDay(c.CheckIn)
	if err != nil {
		return checkIn, checkOut, err
	}

	checkOut, err = daterange.ParseDay(c.CheckOut)

	return checkIn, checkOut, err
}

func (c *CreateBookingRequest) ToModel(user string, checkIn, checkOut time.Time, totalPrice float64) model.Booking {
	source := c.Source
	if source == "" {
		source = model.SourceManual
	}

	guests := c.GuestsCount
	if guests == 0 {
		guests = 1
	}

	return model.Booking{
		ID:            uuid.NewString(),
		UnitID:        c.UnitID,
		GuestName:     c.GuestName,
		GuestPhone:    c.GuestPhone,
		CheckIn:       checkIn,
		CheckOut:      checkOut,
		GuestsCount:   guests,
		TotalPrice:    totalPrice,
		Status:        model.StatusConfirmed,
		PaymentStatus: model.PaymentStatusPending,
		Source:        source,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type BookingResponse struct {
	ID            string  `json:"id"`
	UnitID        string  `json:"unit_id"`
	GuestName     string  `json:"guest_name"`
	GuestPhone    string  `json:"guest_phone"`
	CheckIn       string  `json:"check_in"`
	CheckOut      string  `json:"check_out"`
	GuestsCount   int     `json:"guests_count"`
	TotalPrice    float64 `json:"total_price"`
	Status        string  `json:"status"`
	PaymentStatus string  `json:"payment_status"`
	Source        string  `json:"source"`
	gDto.Metadata
}

func (r *BookingResponse) FromModel(m model.Booking) {
	r.ID = m.ID
	r.UnitID = m.UnitID
	r.GuestName = m.GuestName
	r.GuestPhone = m.GuestPhone
	r.CheckIn = daterange.FormatDay(m.CheckIn)
	r.CheckOut = daterange.FormatDay(m.CheckOut)
	r.GuestsCount = m.GuestsCount
	r.TotalPrice = m.TotalPrice
	r.Status = m.Status
	r.PaymentStatus = m.PaymentStatus
	r.Source = m.Source
	r.Metadata.FromModel(m.Metadata)
}

type GetBookingsResponse struct {
	Bookings  []BookingResponse `json:"bookings"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetBookingsResponse) FromModels(models []model.Booking, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Bookings = make([]BookingResponse, len(models))
	for i, mod := range models {
		r.Bookings[i].FromModel(mod)
	}
}

// DayStatusResponse answers "what is this unit's calendar showing for a day".
type DayStatusResponse struct {
	UnitID string          `json:"unit_id"`
	Date   string          `json:"date"`
	Status model.DayStatus `json:"status"`
}

type CalendarDay struct {
	Date   string          `json:"date"`
	Status model.DayStatus `json:"status"`
}

type CalendarResponse struct {
	UnitID string        `json:"unit_id"`
	From   string        `json:"from"`
	To     string        `json:"to"`
	Days   []CalendarDay `json:"days"`
}
