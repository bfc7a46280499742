package domain

import "context"

// WarrantyForm represents a warranty registration submission.
type WarrantyForm struct {
	Name           string `json:"name" form:"name" validate:"required,min=2"`
	Phone          string `json:"phone" form:"phone" validate:"required,min=10"`
	Email          string `json:"email" form:"email" validate:"required,email"`
	City           string `json:"city" form:"city" validate:"required,min=2"`
	State          string `json:"state" form:"state" validate:"required,min=2"`
	Service        string `json:"service" form:"service" validate:"required"`
	RegistrationNo string `json:"registrationNo" form:"registrationNo" validate:"required,min=4"`
	VehicleBrand   string `json:"vehicleBrand" form:"vehicleBrand" validate:"required,min=2"`
	VehicleModel   string `json:"vehicleModel" form:"vehicleModel" validate:"required,min=1"`
}

// InvoiceAttachment is the customer's uploaded invoice, buffered in memory.
// The content is forwarded to the mail transport unmodified.
type InvoiceAttachment struct {
	Filename    string
	Content     []byte
	ContentType string
}

// WarrantyUsecase defines the interface for warranty registration operations
type WarrantyUsecase interface {
	// RegisterWarranty relays a validated registration by email; invoice may be nil
	RegisterWarranty(ctx context.Context, form *WarrantyForm, invoice *InvoiceAttachment) error
}
