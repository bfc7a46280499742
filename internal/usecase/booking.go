package usecase

import (
	"context"
	"fmt"

	"go-detailing-backend/internal/domain"
	"go-detailing-backend/pkg/apperror"
	"go-detailing-backend/pkg/email"
	"go-detailing-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
)

type bookingUsecase struct {
	mailer    email.Mailer
	validate  *validator.Validate
	recipient string
}

// NewBookingUsecase creates a new booking usecase
func NewBookingUsecase(mailer email.Mailer, validate *validator.Validate, recipient string) domain.BookingUsecase {
	return &bookingUsecase{
		mailer:    mailer,
		validate:  validate,
		recipient: recipient,
	}
}

// SubmitBooking validates the booking request, formats the email and relays it.
func (uc *bookingUsecase) SubmitBooking(ctx context.Context, form *domain.BookingForm) error {
	if err := uc.validate.Struct(form); err != nil {
		return apperror.ValidationFailed("Invalid form data", validation.FieldErrors(err))
	}

	html, err := email.FormatBookingEmail(email.BookingEmailData{
		Name:    form.Name,
		Phone:   form.Phone,
		Email:   form.Email,
		Service: form.Service,
		Date:    form.Date,
		Message: form.Message,
	})
	if err != nil {
		return apperror.Internal("An error occurred. Please try again.", err)
	}

	msg := email.Message{
		To:      uc.recipient,
		Subject: fmt.Sprintf("New Booking Request - %s from %s", form.Service, form.Name),
		HTML:    html,
	}
	if err := uc.mailer.Send(ctx, msg); err != nil {
		return apperror.Internal("Failed to submit booking. Please try again.", err)
	}

	return nil
}
