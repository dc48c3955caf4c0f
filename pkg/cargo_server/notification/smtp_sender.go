package notification

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"mime"
	"net/smtp"
	"strings"

	"github.com/amvarmar/cargotrack/pkg/cargo_server/model"
)

type SMTPConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	From     string `yaml:"from"`
}

type _SMTPSender struct {
	config SMTPConfig

	// send is swappable for tests.
	send func(addr string, a smtp.Auth, from string, to []string, msg []byte) error
}

func NewSMTPSender(config SMTPConfig) Notifier {
	return &_SMTPSender{
		config: config,
		send:   smtp.SendMail,
	}
}

func (s *_SMTPSender) Notify(ctx context.Context, n model.Notification) error {
	if n.Recipient == "" {
		return fmt.Errorf("notification %q has no recipient%w", n.Template, model.ErrNotification)
	}

	subject, body, err := RenderTemplate(n)
	if err != nil {
		return err
	}

	msg, err := buildMessage(s.config.From, n.Recipient, subject, body, n.Attachment)
	if err != nil {
		return err
	}

	var auth smtp.Auth
	if s.config.User != "" {
		auth = smtp.PlainAuth("", s.config.User, s.config.Password, s.config.Host)
	}

	addr := fmt.Sprintf("%s:%d", s.config.Host, s.config.Port)
	if err := s.send(addr, auth, s.config.From, []string{n.Recipient}, msg); err != nil {
		return fmt.Errorf("smtp send to %s: %s%w", n.Recipient, err.Error(), model.ErrNotificationFailed)
	}

	return nil
}

const attachmentBoundary = "cargotrack-mail-boundary"

func buildMessage(from, to, subject, body string, attachment *model.File) ([]byte, error) {
	buf := bytes.NewBuffer(nil)
	fmt.Fprintf(buf, "From: %s\r\n", from)
	fmt.Fprintf(buf, "To: %s\r\n", to)
	fmt.Fprintf(buf, "Subject: %s\r\n", mime.QEncoding.Encode("utf-8", subject))
	fmt.Fprintf(buf, "MIME-Version: 1.0\r\n")

	if attachment == nil {
		fmt.Fprintf(buf, "Content-Type: text/plain; charset=utf-8\r\n\r\n")
		buf.WriteString(body)
		return buf.Bytes(), nil
	}

	fmt.Fprintf(buf, "Content-Type: multipart/mixed; boundary=%s\r\n\r\n", attachmentBoundary)

	fmt.Fprintf(buf, "--%s\r\n", attachmentBoundary)
	fmt.Fprintf(buf, "Content-Type: text/plain; charset=utf-8\r\n\r\n")
	buf.WriteString(body)
	buf.WriteString("\r\n")

	fmt.Fprintf(buf, "--%s\r\n", attachmentBoundary)
	contentType := attachment.FileType
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	fmt.Fprintf(buf, "Content-Type: %s\r\n", contentType)
	fmt.Fprintf(buf, "Content-Transfer-Encoding: base64\r\n")
	fmt.Fprintf(buf, "Content-Disposition: attachment; filename=%q\r\n\r\n", attachment.Name)

	encoded := base64.StdEncoding.EncodeToString(attachment.Content)
	for len(encoded) > 0 {
		lineLen := min(76, len(encoded))
		buf.WriteString(encoded[:lineLen])
		buf.WriteString("\r\n")
		encoded = encoded[lineLen:]
	}
	fmt.Fprintf(buf, "--%s--\r\n", attachmentBoundary)

	return buf.Bytes(), nil
}

// RenderTemplate produces the subject and plain-text body for a notification.
func RenderTemplate(n model.Notification) (subject string, body string, err error) {
	field := func(key string) string { return n.Fields[key] }

	switch n.Template {
	case model.TemplateReceiptCreated:
		subject = fmt.Sprintf("Cargo received - warehouse receipt %s", field("wr_number"))
		body = fmt.Sprintf(
			"Dear %s,\n\nYour cargo has arrived at our warehouse and was registered under receipt %s.\nYou can review it in your account at any time.\n",
			field("name"), field("wr_number"))
	case model.TemplateDispatchRequestedOps:
		subject = fmt.Sprintf("Dispatch requested - warehouse receipt %s", field("wr_number"))
		body = fmt.Sprintf(
			"Client %s requested a %s dispatch of warehouse receipt %s.\nThe commercial invoice is attached. Dispatch request: %s\n",
			field("client"), strings.ToLower(field("method")), field("wr_number"), field("dispatch_id"))
	case model.TemplateDispatchReceivedClient:
		subject = "We received your dispatch request"
		body = fmt.Sprintf(
			"Dear %s,\n\nWe received your dispatch request for warehouse receipt(s) %s.\nOur operations team will review it and send you the bill of lading once approved.\n",
			field("name"), field("wr_numbers"))
	case model.TemplateBOLApproved:
		subject = fmt.Sprintf("Dispatch approved - warehouse receipt %s", field("wr_number"))
		body = fmt.Sprintf(
			"Dear %s,\n\nYour dispatch request was approved. The bill of lading is attached.\n",
			field("name"))
	case model.TemplateBOLDelivery:
		subject = fmt.Sprintf("Bill of lading - dispatch %s", field("dispatch_id"))
		body = fmt.Sprintf(
			"Dear %s,\n\nYour cargo has been dispatched. The bill of lading is attached for your records.\n",
			field("name"))
	case model.TemplateClientCredentials:
		subject = "Your account credentials"
		body = fmt.Sprintf(
			"Dear %s,\n\nAn account has been created for you.\n\nUsername: %s\nTemporary password: %s\n\nPlease change the password after your first login.\n",
			field("name"), field("username"), field("password"))
	default:
		return "", "", fmt.Errorf("unknown notification template %q%w", n.Template, model.ErrInvalidParameter)
	}

	return subject, body, nil
}
