package email

import (
	"bytes"
	"html/template"
)

// ContactEmailData holds the fields rendered into a contact inquiry email.
type ContactEmailData struct {
	Name    string
	Phone   string
	Email   string
	Message string
}

// BookingEmailData holds the fields rendered into a booking request email.
// Message is optional; the notes block is omitted when it is empty.
type BookingEmailData struct {
	Name    string
	Phone   string
	Email   string
	Service string
	Date    string
	Message string
}

// WarrantyEmailData holds the fields rendered into a warranty registration email.
type WarrantyEmailData struct {
	Name           string
	Phone          string
	Email          string
	City           string
	State          string
	Service        string
	RegistrationNo string
	VehicleBrand   string
	VehicleModel   string
}

// The templates render fixed inline-styled layouts. html/template escapes
// every injected field, so user input cannot smuggle markup into the email.

const contactEmailTemplate = `<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <h2 style="color: #dc2626; border-bottom: 2px solid #dc2626; padding-bottom: 10px;">New Contact Inquiry</h2>
  <table style="width: 100%; border-collapse: collapse;">
    <tr><td style="padding: 10px; font-weight: bold;">Name:</td><td style="padding: 10px;">{{.Name}}</td></tr>
    <tr><td style="padding: 10px; font-weight: bold;">Phone:</td><td style="padding: 10px;">{{.Phone}}</td></tr>
    <tr><td style="padding: 10px; font-weight: bold;">Email:</td><td style="padding: 10px;">{{.Email}}</td></tr>
  </table>
  <div style="margin-top: 20px; padding: 15px; background: #f3f4f6; border-radius: 8px;">
    <h3 style="margin-top: 0;">Message:</h3>
    <p>{{.Message}}</p>
  </div>
</div>`

const bookingEmailTemplate = `<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <h2 style="color: #dc2626; border-bottom: 2px solid #dc2626; padding-bottom: 10px;">New Booking Request</h2>
  <table style="width: 100%; border-collapse: collapse;">
    <tr><td style="padding: 10px; font-weight: bold;">Name:</td><td style="padding: 10px;">{{.Name}}</td></tr>
    <tr><td style="padding: 10px; font-weight: bold;">Phone:</td><td style="padding: 10px;">{{.Phone}}</td></tr>
    <tr><td style="padding: 10px; font-weight: bold;">Email:</td><td style="padding: 10px;">{{.Email}}</td></tr>
    <tr><td style="padding: 10px; font-weight: bold;">Service:</td><td style="padding: 10px; color: #dc2626; font-weight: bold;">{{.Service}}</td></tr>
    <tr><td style="padding: 10px; font-weight: bold;">Preferred Date:</td><td style="padding: 10px;">{{.Date}}</td></tr>
  </table>
  {{if .Message}}<div style="margin-top: 20px; padding: 15px; background: #f3f4f6; border-radius: 8px;">
    <h3 style="margin-top: 0;">Additional Notes:</h3>
    <p>{{.Message}}</p>
  </div>{{end}}
</div>`

const warrantyEmailTemplate = `<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <h2 style="color: #dc2626; border-bottom: 2px solid #dc2626; padding-bottom: 10px;">New Warranty Registration</h2>
  <h3 style="color: #374151; margin-top: 20px;">Customer Details</h3>
  <table style="width: 100%; border-collapse: collapse; background: #f9fafb; border-radius: 8px;">
    <tr><td style="padding: 10px; font-weight: bold;">Name:</td><td style="padding: 10px;">{{.Name}}</td></tr>
    <tr><td style="padding: 10px; font-weight: bold;">Phone:</td><td style="padding: 10px;">{{.Phone}}</td></tr>
    <tr><td style="padding: 10px; font-weight: bold;">Email:</td><td style="padding: 10px;">{{.Email}}</td></tr>
    <tr><td style="padding: 10px; font-weight: bold;">Location:</td><td style="padding: 10px;">{{.City}}, {{.State}}</td></tr>
  </table>
  <h3 style="color: #374151; margin-top: 20px;">Vehicle Information</h3>
  <table style="width: 100%; border-collapse: collapse; background: #f9fafb; border-radius: 8px;">
    <tr><td style="padding: 10px; font-weight: bold;">Service Availed:</td><td style="padding: 10px; color: #dc2626; font-weight: bold;">{{.Service}}</td></tr>
    <tr><td style="padding: 10px; font-weight: bold;">Registration No:</td><td style="padding: 10px;">{{.RegistrationNo}}</td></tr>
    <tr><td style="padding: 10px; font-weight: bold;">Vehicle:</td><td style="padding: 10px;">{{.VehicleBrand}} {{.VehicleModel}}</td></tr>
  </table>
  <p style="margin-top: 20px; padding: 15px; background: #fef2f2; border-radius: 8px; color: #991b1b;">
    <strong>Note:</strong> Invoice document is attached to this email.
  </p>
</div>`

var (
	contactTmpl  = template.Must(template.New("contact").Parse(contactEmailTemplate))
	bookingTmpl  = template.Must(template.New("booking").Parse(bookingEmailTemplate))
	warrantyTmpl = template.Must(template.New("warranty").Parse(warrantyEmailTemplate))
)

func render(tmpl *template.Template, data interface{}) (string, error) {
	var body bytes.Buffer
	if err := tmpl.Execute(&body, data); err != nil {
		return "", err
	}
	return body.String(), nil
}

// FormatContactEmail renders the HTML body for a contact inquiry.
func FormatContactEmail(data ContactEmailData) (string, error) {
	return render(contactTmpl, data)
}

// FormatBookingEmail renders the HTML body for a booking request.
func FormatBookingEmail(data BookingEmailData) (string, error) {
	return render(bookingTmpl, data)
}

// FormatWarrantyEmail renders the HTML body for a warranty registration.
func FormatWarrantyEmail(data WarrantyEmailData) (string, error) {
	return render(warrantyTmpl, data)
}
