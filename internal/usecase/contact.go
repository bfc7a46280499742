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

type contactUsecase struct {
	mailer    email.Mailer
	validate  *validator.Validate
	recipient string
}

// NewContactUsecase creates a new contact usecase
func NewContactUsecase(mailer email.Mailer, validate *validator.Validate, recipient string) domain.ContactUsecase {
	return &contactUsecase{
		mailer:    mailer,
		validate:  validate,
		recipient: recipient,
	}
}

// SubmitContact validates the contact submission, formats the email and relays it.
// Invalid payloads never reach the formatter or the mailer.
func (uc *contactUsecase) SubmitContact(ctx context.Context, form *domain.ContactForm) error {
	if err := uc.validate.Struct(form); err != nil {
		return apperror.ValidationFailed("Invalid form data", validation.FieldErrors(err))
	}

	html, err := email.FormatContactEmail(email.ContactEmailData{
		Name:    form.Name,
		Phone:   form.Phone,
		Email:   form.Email,
		Message: form.Message,
	})
	if err != nil {
		return apperror.Internal("An error occurred. Please try again.", err)
	}

	msg := email.Message{
		To:      uc.recipient,
		Subject: fmt.Sprintf("New Contact Inquiry from %s", form.Name),
		HTML:    html,
	}
	if err := uc.mailer.Send(ctx, msg); err != nil {
		return apperror.Internal("Failed to send message. Please try again.", err)
	}

	return nil
}
