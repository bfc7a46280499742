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

type warrantyUsecase struct {
	mailer    email.Mailer
	validate  *validator.Validate
	recipient string
}

// NewWarrantyUsecase creates a new warranty usecase
func NewWarrantyUsecase(mailer email.Mailer, validate *validator.Validate, recipient string) domain.WarrantyUsecase {
	return &warrantyUsecase{
		mailer:    mailer,
		validate:  validate,
		recipient: recipient,
	}
}

// RegisterWarranty validates the registration, formats the email and relays it
// with the uploaded invoice attached when one was provided.
func (uc *warrantyUsecase) RegisterWarranty(ctx context.Context, form *domain.WarrantyForm, invoice *domain.InvoiceAttachment) error {
	if err := uc.validate.Struct(form); err != nil {
		return apperror.ValidationFailed("Invalid form data", validation.FieldErrors(err))
	}

	html, err := email.FormatWarrantyEmail(email.WarrantyEmailData{
		Name:           form.Name,
		Phone:          form.Phone,
		Email:          form.Email,
		City:           form.City,
		State:          form.State,
		Service:        form.Service,
		RegistrationNo: form.RegistrationNo,
		VehicleBrand:   form.VehicleBrand,
		VehicleModel:   form.VehicleModel,
	})
	if err != nil {
		return apperror.Internal("An error occurred. Please try again.", err)
	}

	msg := email.Message{
		To:      uc.recipient,
		Subject: fmt.Sprintf("Warranty Registration - %s %s (%s)", form.VehicleBrand, form.VehicleModel, form.RegistrationNo),
		HTML:    html,
	}
	if invoice != nil {
		msg.Attachments = []email.Attachment{{
			Filename:    invoice.Filename,
			Content:     invoice.Content,
			ContentType: invoice.ContentType,
		}}
	}

	if err := uc.mailer.Send(ctx, msg); err != nil {
		return apperror.Internal("Failed to register warranty. Please try again.", err)
	}

	return nil
}
