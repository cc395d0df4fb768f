package dto

type CreateBookingRequest struct {
	Date string `json:"date" validate:"required,datetime=2006-01-02" example:"2030-01-02"`
	Time string `json:"time" validate:"required" example:"10:00 AM"`
}

type GetBookedSlotsRequest struct {
	Date string `validate:"required,datetime=2006-01-02" example:"2030-01-02"`
}
