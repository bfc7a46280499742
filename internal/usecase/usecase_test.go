package usecase_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"go-detailing-backend/internal/domain"
	"go-detailing-backend/internal/usecase"
	"go-detailing-backend/pkg/apperror"
	"go-detailing-backend/pkg/email"
	"go-detailing-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

const testRecipient = "info@autogamma.in"

// MockMailer substitutes the SMTP transport
type MockMailer struct {
	mock.Mock
}

func (m *MockMailer) Send(ctx context.Context, msg email.Message) error {
	return m.Called(ctx, msg).Error(0)
}

func newValidator() *validator.Validate {
	v := validator.New()
	validation.RegisterTagName(v)
	return v
}

func validContact() *domain.ContactForm {
	return &domain.ContactForm{
		Name:    "Jo Doe",
		Phone:   "9876543210",
		Email:   "jo@example.com",
		Message: "Need a quote for ceramic coating",
	}
}

func TestSubmitContact(t *testing.T) {
	t.Run("Should relay a valid submission to the configured recipient", func(t *testing.T) {
		mailer := new(MockMailer)
		uc := usecase.NewContactUsecase(mailer, newValidator(), testRecipient)

		var sent email.Message
		mailer.On("Send", mock.Anything, mock.AnythingOfType("email.Message")).Return(nil).Run(func(args mock.Arguments) {
			sent = args.Get(1).(email.Message)
		})

		err := uc.SubmitContact(context.Background(), validContact())
		assert.NoError(t, err)
		mailer.AssertNumberOfCalls(t, "Send", 1)
		assert.Equal(t, testRecipient, sent.To)
		assert.Equal(t, "New Contact Inquiry from Jo Doe", sent.Subject)
		assert.Contains(t, sent.HTML, "Need a quote for ceramic coating")
	})

	t.Run("Should reject invalid payload before the mailer is touched", func(t *testing.T) {
		mailer := new(MockMailer)
		uc := usecase.NewContactUsecase(mailer, newValidator(), testRecipient)

		form := validContact()
		form.Phone = "12345"
		err := uc.SubmitContact(context.Background(), form)

		var appErr *apperror.AppError
		assert.ErrorAs(t, err, &appErr)
		assert.Equal(t, 400, appErr.Code)
		assert.Contains(t, appErr.Details["phone"], "Phone number must be at least 10 digits")
		mailer.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
	})

	t.Run("Should surface send failure as a generic internal error", func(t *testing.T) {
		mailer := new(MockMailer)
		uc := usecase.NewContactUsecase(mailer, newValidator(), testRecipient)

		mailer.On("Send", mock.Anything, mock.Anything).Return(errors.New("smtp auth: 535 bad credentials"))

		err := uc.SubmitContact(context.Background(), validContact())
		var appErr *apperror.AppError
		assert.ErrorAs(t, err, &appErr)
		assert.Equal(t, 500, appErr.Code)
		assert.Equal(t, "Failed to send message. Please try again.", appErr.Message)
		// Transport detail stays server-side
		assert.NotContains(t, appErr.Message, "535")
	})
}

func TestSubmitBooking(t *testing.T) {
	valid := func() *domain.BookingForm {
		return &domain.BookingForm{
			Name:    "Jo Doe",
			Phone:   "9876543210",
			Email:   "jo@example.com",
			Service: "Ceramic Coating",
			Date:    "2026-09-15",
		}
	}

	t.Run("Should flag an empty service selection", func(t *testing.T) {
		mailer := new(MockMailer)
		uc := usecase.NewBookingUsecase(mailer, newValidator(), testRecipient)

		form := valid()
		form.Service = ""
		err := uc.SubmitBooking(context.Background(), form)

		var appErr *apperror.AppError
		assert.ErrorAs(t, err, &appErr)
		assert.Equal(t, 400, appErr.Code)
		assert.Contains(t, appErr.Details["service"], "Please select a service")
		mailer.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
	})

	t.Run("Should omit the notes block when no message is given", func(t *testing.T) {
		mailer := new(MockMailer)
		uc := usecase.NewBookingUsecase(mailer, newValidator(), testRecipient)

		var sent email.Message
		mailer.On("Send", mock.Anything, mock.Anything).Return(nil).Run(func(args mock.Arguments) {
			sent = args.Get(1).(email.Message)
		})

		assert.NoError(t, uc.SubmitBooking(context.Background(), valid()))
		assert.NotContains(t, sent.HTML, "Additional Notes")
		assert.Equal(t, "New Booking Request - Ceramic Coating from Jo Doe", sent.Subject)
	})

	t.Run("Should include the notes block when a message is given", func(t *testing.T) {
		mailer := new(MockMailer)
		uc := usecase.NewBookingUsecase(mailer, newValidator(), testRecipient)

		var sent email.Message
		mailer.On("Send", mock.Anything, mock.Anything).Return(nil).Run(func(args mock.Arguments) {
			sent = args.Get(1).(email.Message)
		})

		form := valid()
		form.Message = "Please call before noon"
		assert.NoError(t, uc.SubmitBooking(context.Background(), form))
		assert.Contains(t, sent.HTML, "Additional Notes")
		assert.Contains(t, sent.HTML, "Please call before noon")
	})
}

func TestRegisterWarranty(t *testing.T) {
	valid := func() *domain.WarrantyForm {
		return &domain.WarrantyForm{
			Name:           "Jo Doe",
			Phone:          "9876543210",
			Email:          "jo@example.com",
			City:           "Pune",
			State:          "Maharashtra",
			Service:        "Paint Protection Film",
			RegistrationNo: "MH12AB1234",
			VehicleBrand:   "Tata",
			VehicleModel:   "Nexon",
		}
	}

	t.Run("Should pass the invoice through to the transport unmodified", func(t *testing.T) {
		mailer := new(MockMailer)
		uc := usecase.NewWarrantyUsecase(mailer, newValidator(), testRecipient)

		var sent email.Message
		mailer.On("Send", mock.Anything, mock.Anything).Return(nil).Run(func(args mock.Arguments) {
			sent = args.Get(1).(email.Message)
		})

		invoice := &domain.InvoiceAttachment{
			Filename:    "invoice.pdf",
			Content:     []byte("%PDF-1.4 fake"),
			ContentType: "application/pdf",
		}
		assert.NoError(t, uc.RegisterWarranty(context.Background(), valid(), invoice))

		assert.Equal(t, "Warranty Registration - Tata Nexon (MH12AB1234)", sent.Subject)
		if assert.Len(t, sent.Attachments, 1) {
			assert.Equal(t, "invoice.pdf", sent.Attachments[0].Filename)
			assert.Equal(t, []byte("%PDF-1.4 fake"), sent.Attachments[0].Content)
			assert.Equal(t, "application/pdf", sent.Attachments[0].ContentType)
		}
	})

	t.Run("Should send without attachments when no invoice was uploaded", func(t *testing.T) {
		mailer := new(MockMailer)
		uc := usecase.NewWarrantyUsecase(mailer, newValidator(), testRecipient)

		var sent email.Message
		mailer.On("Send", mock.Anything, mock.Anything).Return(nil).Run(func(args mock.Arguments) {
			sent = args.Get(1).(email.Message)
		})

		assert.NoError(t, uc.RegisterWarranty(context.Background(), valid(), nil))
		assert.Empty(t, sent.Attachments)
	})

	t.Run("Should collect every failing field in the details", func(t *testing.T) {
		mailer := new(MockMailer)
		uc := usecase.NewWarrantyUsecase(mailer, newValidator(), testRecipient)

		err := uc.RegisterWarranty(context.Background(), &domain.WarrantyForm{Name: "J"}, nil)
		var appErr *apperror.AppError
		assert.ErrorAs(t, err, &appErr)
		for _, field := range []string{"name", "phone", "email", "city", "state", "service", "registrationNo", "vehicleBrand", "vehicleModel"} {
			assert.Contains(t, appErr.Details, field, "expected details for %s", field)
		}
		mailer.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
	})
}

func TestUserInputIsEscaped(t *testing.T) {
	mailer := new(MockMailer)
	uc := usecase.NewContactUsecase(mailer, newValidator(), testRecipient)

	var sent email.Message
	mailer.On("Send", mock.Anything, mock.Anything).Return(nil).Run(func(args mock.Arguments) {
		sent = args.Get(1).(email.Message)
	})

	form := validContact()
	form.Message = `<script>alert("xss")</script> and some text`
	assert.NoError(t, uc.SubmitContact(context.Background(), form))
	assert.False(t, strings.Contains(sent.HTML, "<script>"), "raw markup must not survive formatting")
	assert.Contains(t, sent.HTML, "&lt;script&gt;")
}
