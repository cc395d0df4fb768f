package dto

import (
	"github.com/savioruz/bookease/internal/domains/bookings/repository"
	"github.com/savioruz/bookease/pkg/constant"
)

type BookingResponse struct {
	ID              string `json:"id"`
	UserID          string `json:"user_id"`
	Username        string `json:"username,omitempty"`
	Email           string `json:"email,omitempty"`
	Date            string `json:"date"`
	Time            string `json:"time"`
	DurationMinutes int    `json:"duration_minutes"`
	ServiceID       string `json:"service_id"`
	PaymentID       string `json:"payment_id,omitempty"`
	CreatedAt       string `json:"created_at,omitempty"`
}

func (b BookingResponse) FromModel(model repository.Booking) BookingResponse {
	res := BookingResponse{
		ID:              model.ID.String(),
		UserID:          model.UserID.String(),
		Date:            model.BookingDate.Time.Format(constant.DateFormat),
		Time:            model.TimeSlot,
		DurationMinutes: int(model.DurationMinutes),
		ServiceID:       model.ServiceID,
	}

	if model.PaymentID.Valid {
		res.PaymentID = model.PaymentID.String
	}

	if model.CreatedAt.Valid {
		res.CreatedAt = model.CreatedAt.Time.Format(constant.FullDateFormat)
	}

	return res
}

func (b BookingResponse) FromRow(row repository.ListBookingsWithUsersRow) BookingResponse {
	res := BookingResponse{}.FromModel(repository.Booking{
		ID:              row.ID,
		UserID:          row.UserID,
		ServiceID:       row.ServiceID,
		BookingDate:     row.BookingDate,
		TimeSlot:        row.TimeSlot,
		DurationMinutes: row.DurationMinutes,
		PaymentID:       row.PaymentID,
		CreatedAt:       row.CreatedAt,
	})
	res.Username = row.Username
	res.Email = row.Email

	return res
}

type BookedSlotsResponse struct {
	Booked []string `json:"booked"`
}
