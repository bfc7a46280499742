package security_test

import (
	"testing"

	"go-detailing-backend/pkg/security"

	"github.com/stretchr/testify/assert"
)

var (
	pngHeader  = []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A, 0x00, 0x00, 0x00, 0x0D, 0x49, 0x48, 0x44, 0x52}
	jpegHeader = []byte{0xFF, 0xD8, 0xFF, 0xE0, 0x00, 0x10, 0x4A, 0x46, 0x49, 0x46}
	pdfHeader  = []byte("%PDF-1.4\n%some pdf content")
)

func TestValidateInvoiceAcceptsAllowedTypes(t *testing.T) {
	cases := []struct {
		name     string
		filename string
		data     []byte
		mime     string
	}{
		{"png", "invoice.png", pngHeader, "image/png"},
		{"jpg", "invoice.jpg", jpegHeader, "image/jpeg"},
		{"jpeg", "invoice.jpeg", jpegHeader, "image/jpeg"},
		{"pdf", "invoice.pdf", pdfHeader, "application/pdf"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			result := security.ValidateInvoice(tc.filename, tc.data)
			assert.True(t, result.Valid, result.Error)
			assert.Equal(t, tc.mime, result.DetectedMIME)
		})
	}
}

func TestValidateInvoiceRejectsDisallowedExtension(t *testing.T) {
	result := security.ValidateInvoice("notes.txt", []byte("just some text"))
	assert.False(t, result.Valid)
	assert.Equal(t, "Only JPG, PNG and PDF files are allowed", result.Error)
}

func TestValidateInvoiceRejectsMissingExtension(t *testing.T) {
	result := security.ValidateInvoice("invoice", pdfHeader)
	assert.False(t, result.Valid)
}

func TestValidateInvoiceRejectsSpoofedContent(t *testing.T) {
	// A .pdf name wrapping PNG bytes must not pass the magic byte check
	result := security.ValidateInvoice("invoice.pdf", pngHeader)
	assert.False(t, result.Valid)
	assert.Contains(t, result.Error, "does not match extension")
}

func TestValidateInvoiceRejectsTinyFile(t *testing.T) {
	result := security.ValidateInvoice("invoice.png", []byte{0x89})
	assert.False(t, result.Valid)
}
