package provider

import (
	"bytes"
	"fmt"

	"github.com/wneessen/go-mail"

	"github.com/mailfleet/mailfleet/internal/domain"
)

// buildMessage assembles the MIME message shared by every provider: HTML body
// with a plain-text alternative, optional CC/BCC and attachments.
func buildMessage(fromEmail, fromName string, msg *domain.Message) (*mail.Msg, error) {
	m := mail.NewMsg()
	if err := m.FromFormat(fromName, fromEmail); err != nil {
		return nil, fmt.Errorf("invalid sender: %w", err)
	}
	if err := m.To(msg.To); err != nil {
		return nil, fmt.Errorf("invalid recipient email: %w", err)
	}
	if len(msg.CC) > 0 {
		if err := m.Cc(msg.CC...); err != nil {
			return nil, fmt.Errorf("invalid cc address: %w", err)
		}
	}
	if len(msg.BCC) > 0 {
		if err := m.Bcc(msg.BCC...); err != nil {
			return nil, fmt.Errorf("invalid bcc address: %w", err)
		}
	}
	m.Subject(msg.Subject)

	if msg.Text != "" {
		m.SetBodyString(mail.TypeTextPlain, msg.Text)
		m.AddAlternativeString(mail.TypeTextHTML, msg.HTML)
	} else {
		m.SetBodyString(mail.TypeTextHTML, msg.HTML)
	}

	for _, att := range msg.Attachments {
		opts := []mail.FileOption{mail.WithFileName(att.Filename)}
		if att.ContentType != "" {
			opts = append(opts, mail.WithFileContentType(mail.ContentType(att.ContentType)))
		}
		m.AttachReader(att.Filename, bytes.NewReader(att.Content), opts...)
	}

	return m, nil
}

// rawMessage renders the message to its RFC 5322 wire form, used by the API
// providers that submit raw MIME instead of speaking SMTP.
func rawMessage(fromEmail, fromName string, msg *domain.Message) ([]byte, error) {
	m, err := buildMessage(fromEmail, fromName, msg)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if _, err := m.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("failed to render message: %w", err)
	}
	return buf.Bytes(), nil
}
