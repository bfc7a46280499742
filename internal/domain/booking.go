package domain

import "context"

// BookingForm represents a service booking request.
// Date is a free-form string chosen in the booking UI; it is deliberately not
// parsed as a calendar date.
type BookingForm struct {
	Name    string `json:"name" form:"name" validate:"required,min=2"`
	Phone   string `json:"phone" form:"phone" validate:"required,min=10"`
	Email   string `json:"email" form:"email" validate:"required,email"`
	Service string `json:"service" form:"service" validate:"required"`
	Date    string `json:"date" form:"date" validate:"required"`
	Message string `json:"message,omitempty" form:"message"`
}

// BookingUsecase defines the interface for booking form operations
type BookingUsecase interface {
	SubmitBooking(ctx context.Context, form *BookingForm) error
}
