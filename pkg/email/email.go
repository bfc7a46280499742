package email

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/base64"
	"fmt"
	"mime/multipart"
	"net"
	"net/smtp"
	"net/textproto"
	"strings"
	"time"

	"go-detailing-backend/config"
	"go-detailing-backend/pkg/logger"
)

// Attachment is a file carried with a message, passed to the transport unmodified.
type Attachment struct {
	Filename    string
	Content     []byte
	ContentType string
}

// Message is a single outbound email.
type Message struct {
	To          string
	Subject     string
	HTML        string
	Attachments []Attachment
}

// Mailer abstracts outbound email delivery so tests can substitute a fake
// transport without touching the process environment.
type Mailer interface {
	Send(ctx context.Context, msg Message) error
}

// EmailService delivers messages over SMTP. When credentials are absent it
// degrades to a dry-run mode that logs the intended delivery and reports
// success, so environments without mail configured keep working.
type EmailService struct {
	host     string
	port     string
	username string
	password string
	from     string
	timeout  time.Duration
}

// NewEmailService creates a mail sender from the loaded configuration.
func NewEmailService(cfg *config.Config) *EmailService {
	timeout := cfg.EmailSendTimeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &EmailService{
		host:     cfg.EmailHost,
		port:     cfg.EmailPort,
		username: cfg.EmailUser,
		password: cfg.EmailPassword,
		from:     cfg.EmailUser,
		timeout:  timeout,
	}
}

// IsConfigured reports whether SMTP credentials are present.
func (s *EmailService) IsConfigured() bool {
	return s.username != "" && s.password != ""
}

// Send delivers the message, or logs it in dry-run mode. Transport failures
// are logged with full detail and returned wrapped; callers must surface only
// a generic failure to clients.
func (s *EmailService) Send(ctx context.Context, msg Message) error {
	if !s.IsConfigured() {
		logger.Log.Info("Email credentials not configured, logging instead of delivering",
			"to", msg.To, "subject", msg.Subject)
		return nil
	}

	raw, err := buildMessage(s.from, msg)
	if err != nil {
		return fmt.Errorf("build email message: %w", err)
	}

	if err := s.deliver(ctx, msg.To, raw); err != nil {
		logger.Log.Error("Failed to send email", "to", msg.To, "subject", msg.Subject, "error", err)
		return fmt.Errorf("send email: %w", err)
	}

	logger.Log.Info("Email sent successfully", "to", msg.To, "subject", msg.Subject)
	return nil
}

// deliver runs one SMTP session under a bounded deadline so a stalled
// connection cannot hang the request.
func (s *EmailService) deliver(ctx context.Context, to string, raw []byte) error {
	addr := net.JoinHostPort(s.host, s.port)

	dialer := net.Dialer{Timeout: s.timeout}
	conn, err := dialer.DialContext(ctx, "tcp", addr)
	if err != nil {
		return fmt.Errorf("dial %s: %w", addr, err)
	}

	deadline := time.Now().Add(s.timeout)
	if d, ok := ctx.Deadline(); ok && d.Before(deadline) {
		deadline = d
	}
	if err := conn.SetDeadline(deadline); err != nil {
		conn.Close()
		return err
	}

	client, err := smtp.NewClient(conn, s.host)
	if err != nil {
		conn.Close()
		return fmt.Errorf("smtp handshake: %w", err)
	}
	defer client.Close()

	if ok, _ := client.Extension("STARTTLS"); ok {
		if err := client.StartTLS(&tls.Config{ServerName: s.host}); err != nil {
			return fmt.Errorf("starttls: %w", err)
		}
	}

	auth := smtp.PlainAuth("", s.username, s.password, s.host)
	if err := client.Auth(auth); err != nil {
		return fmt.Errorf("smtp auth: %w", err)
	}

	if err := client.Mail(s.from); err != nil {
		return err
	}
	if err := client.Rcpt(to); err != nil {
		return err
	}

	w, err := client.Data()
	if err != nil {
		return err
	}
	if _, err := w.Write(raw); err != nil {
		return err
	}
	if err := w.Close(); err != nil {
		return err
	}

	return client.Quit()
}

// buildMessage constructs the full MIME message. Messages without attachments
// are a single HTML part; with attachments a multipart/mixed document is built
// with each attachment base64-encoded.
func buildMessage(from string, msg Message) ([]byte, error) {
	var buf bytes.Buffer

	// The subject carries user input; strip CR/LF so it cannot inject headers
	subject := strings.NewReplacer("\r", " ", "\n", " ").Replace(msg.Subject)

	fmt.Fprintf(&buf, "From: %s\r\n", from)
	fmt.Fprintf(&buf, "To: %s\r\n", msg.To)
	fmt.Fprintf(&buf, "Subject: %s\r\n", subject)
	buf.WriteString("MIME-Version: 1.0\r\n")

	if len(msg.Attachments) == 0 {
		buf.WriteString("Content-Type: text/html; charset=UTF-8\r\n")
		buf.WriteString("\r\n")
		buf.WriteString(msg.HTML)
		return buf.Bytes(), nil
	}

	writer := multipart.NewWriter(&buf)
	fmt.Fprintf(&buf, "Content-Type: multipart/mixed; boundary=%s\r\n\r\n", writer.Boundary())

	htmlHeader := textproto.MIMEHeader{}
	htmlHeader.Set("Content-Type", "text/html; charset=UTF-8")
	htmlPart, err := writer.CreatePart(htmlHeader)
	if err != nil {
		return nil, err
	}
	if _, err := htmlPart.Write([]byte(msg.HTML)); err != nil {
		return nil, err
	}

	for _, att := range msg.Attachments {
		contentType := att.ContentType
		if contentType == "" {
			contentType = "application/octet-stream"
		}
		header := textproto.MIMEHeader{}
		header.Set("Content-Type", contentType)
		header.Set("Content-Transfer-Encoding", "base64")
		header.Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", att.Filename))

		part, err := writer.CreatePart(header)
		if err != nil {
			return nil, err
		}

		encoded := make([]byte, base64.StdEncoding.EncodedLen(len(att.Content)))
		base64.StdEncoding.Encode(encoded, att.Content)
		// RFC 2045 line length limit
		for len(encoded) > 0 {
			n := 76
			if len(encoded) < n {
				n = len(encoded)
			}
			if _, err := part.Write(encoded[:n]); err != nil {
				return nil, err
			}
			if _, err := part.Write([]byte("\r\n")); err != nil {
				return nil, err
			}
			encoded = encoded[n:]
		}
	}

	if err := writer.Close(); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}
