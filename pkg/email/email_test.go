package email

import (
	"context"
	"encoding/base64"
	"strings"
	"testing"
	"time"

	"go-detailing-backend/config"
	"go-detailing-backend/pkg/logger"

	"github.com/stretchr/testify/assert"
)

func init() {
	logger.Init()
}

func TestSendDryRunWithoutCredentials(t *testing.T) {
	svc := NewEmailService(&config.Config{
		EmailHost: "smtp.example.com",
		EmailPort: "587",
		// no user/password: dry-run mode
	})

	assert.False(t, svc.IsConfigured())

	// Must report success without any network activity
	err := svc.Send(context.Background(), Message{
		To:      "info@autogamma.in",
		Subject: "New Contact Inquiry from Jo Doe",
		HTML:    "<p>hi</p>",
	})
	assert.NoError(t, err)
}

func TestIsConfigured(t *testing.T) {
	svc := NewEmailService(&config.Config{
		EmailHost:        "smtp.example.com",
		EmailPort:        "587",
		EmailUser:        "mailer@autogamma.in",
		EmailPassword:    "secret",
		EmailSendTimeout: 10 * time.Second,
	})
	assert.True(t, svc.IsConfigured())
}

func TestBuildMessageWithoutAttachments(t *testing.T) {
	raw, err := buildMessage("mailer@autogamma.in", Message{
		To:      "info@autogamma.in",
		Subject: "New Booking Request - Wash from Jo",
		HTML:    "<p>body</p>",
	})
	assert.NoError(t, err)

	s := string(raw)
	assert.Contains(t, s, "From: mailer@autogamma.in\r\n")
	assert.Contains(t, s, "To: info@autogamma.in\r\n")
	assert.Contains(t, s, "Subject: New Booking Request - Wash from Jo\r\n")
	assert.Contains(t, s, "Content-Type: text/html; charset=UTF-8\r\n")
	assert.Contains(t, s, "<p>body</p>")
	assert.NotContains(t, s, "multipart/mixed")
}

func TestBuildMessageWithAttachment(t *testing.T) {
	content := []byte("%PDF-1.4 pretend invoice bytes")
	raw, err := buildMessage("mailer@autogamma.in", Message{
		To:      "info@autogamma.in",
		Subject: "Warranty Registration - Tata Nexon (MH12AB1234)",
		HTML:    "<p>body</p>",
		Attachments: []Attachment{{
			Filename:    "invoice.pdf",
			Content:     content,
			ContentType: "application/pdf",
		}},
	})
	assert.NoError(t, err)

	s := string(raw)
	assert.Contains(t, s, "multipart/mixed")
	assert.Contains(t, s, `attachment; filename="invoice.pdf"`)
	assert.Contains(t, s, "Content-Type: application/pdf")
	assert.Contains(t, s, "Content-Transfer-Encoding: base64")

	encoded := base64.StdEncoding.EncodeToString(content)
	// Short payload fits on a single base64 line
	assert.Contains(t, strings.ReplaceAll(s, "\r\n", ""), encoded)
}

func TestBuildMessageStripsNewlinesFromSubject(t *testing.T) {
	raw, err := buildMessage("mailer@autogamma.in", Message{
		To:      "info@autogamma.in",
		Subject: "New Contact Inquiry from Jo\r\nBcc: attacker@example.com",
		HTML:    "<p>b</p>",
	})
	assert.NoError(t, err)
	// The Bcc must not land on its own header line
	assert.NotContains(t, string(raw), "\r\nBcc:")
	assert.Contains(t, string(raw), "Subject: New Contact Inquiry from Jo  Bcc: attacker@example.com\r\n")
}

func TestBuildMessageDefaultsAttachmentContentType(t *testing.T) {
	raw, err := buildMessage("mailer@autogamma.in", Message{
		To:          "info@autogamma.in",
		Subject:     "s",
		HTML:        "<p>b</p>",
		Attachments: []Attachment{{Filename: "blob", Content: []byte{1, 2, 3}}},
	})
	assert.NoError(t, err)
	assert.Contains(t, string(raw), "Content-Type: application/octet-stream")
}
