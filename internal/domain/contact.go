package domain

import "context"

// ContactForm represents a contact form submission.
// Validation tags are the single source of truth for the form's constraints;
// the client-side form mirrors these exact rules.
type ContactForm struct {
	Name    string `json:"name" form:"name" validate:"required,min=2"`
	Phone   string `json:"phone" form:"phone" validate:"required,min=10"`
	Email   string `json:"email" form:"email" validate:"required,email"`
	Message string `json:"message" form:"message" validate:"required,min=10"`
}

// ContactUsecase defines the interface for contact form operations
type ContactUsecase interface {
	// SubmitContact validates the submission, formats it and relays it by email
	SubmitContact(ctx context.Context, form *ContactForm) error
}
