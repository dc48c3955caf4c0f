package notification

import (
	"context"
	"errors"
	"net/smtp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amvarmar/cargotrack/pkg/cargo_server/model"
)

func TestRenderTemplate(t *testing.T) {
	subject, body, err := RenderTemplate(model.Notification{
		Template:  model.TemplateReceiptCreated,
		Recipient: "ops@acme.test",
		Fields:    map[string]string{"name": "Acme Imports", "wr_number": "WR-1001"},
	})
	require.NoError(t, err)
	assert.Equal(t, "Cargo received - warehouse receipt WR-1001", subject)
	assert.Contains(t, body, "Dear Acme Imports,")
	assert.Contains(t, body, "WR-1001")

	subject, body, err = RenderTemplate(model.Notification{
		Template: model.TemplateDispatchRequestedOps,
		Fields: map[string]string{
			"client":      "Acme Imports",
			"method":      "MARITIME",
			"wr_number":   "WR-1001",
			"dispatch_id": "dispatch-1",
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "Dispatch requested - warehouse receipt WR-1001", subject)
	assert.Contains(t, body, "maritime dispatch")

	subject, _, err = RenderTemplate(model.Notification{
		Template: model.TemplateClientCredentials,
		Fields:   map[string]string{"name": "Jane Doe", "username": "jdoe7", "password": "secret"},
	})
	require.NoError(t, err)
	assert.Equal(t, "Your account credentials", subject)

	_, _, err = RenderTemplate(model.Notification{Template: "no.such.template"})
	require.ErrorIs(t, err, model.ErrInvalidParameter)
}

func TestSMTPSenderNotify(t *testing.T) {
	var gotAddr, gotFrom string
	var gotTo []string
	var gotMsg []byte
	sender := &_SMTPSender{
		config: SMTPConfig{Host: "mail.test", Port: 2525, From: "noreply@warehouse.test"},
		send: func(addr string, a smtp.Auth, from string, to []string, msg []byte) error {
			gotAddr = addr
			gotFrom = from
			gotTo = to
			gotMsg = msg
			return nil
		},
	}

	err := sender.Notify(context.Background(), model.Notification{
		Template:  model.TemplateBOLDelivery,
		Recipient: "ops@acme.test",
		Fields:    map[string]string{"name": "Acme Imports", "dispatch_id": "dispatch-1"},
		Attachment: &model.File{
			Name:     "bol.pdf",
			FileType: "application/pdf",
			Content:  []byte("%PDF-1.4 fake"),
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "mail.test:2525", gotAddr)
	assert.Equal(t, "noreply@warehouse.test", gotFrom)
	assert.Equal(t, []string{"ops@acme.test"}, gotTo)
	assert.Contains(t, string(gotMsg), "Subject: Bill of lading - dispatch dispatch-1")
	assert.Contains(t, string(gotMsg), "multipart/mixed; boundary="+attachmentBoundary)
	assert.Contains(t, string(gotMsg), `Content-Disposition: attachment; filename="bol.pdf"`)
	assert.Contains(t, string(gotMsg), "Content-Transfer-Encoding: base64")
}

func TestSMTPSenderNotifyWithoutRecipient(t *testing.T) {
	sender := &_SMTPSender{
		config: SMTPConfig{Host: "mail.test", Port: 2525},
		send: func(addr string, a smtp.Auth, from string, to []string, msg []byte) error {
			t.Fatal("send must not be called")
			return nil
		},
	}

	err := sender.Notify(context.Background(), model.Notification{Template: model.TemplateReceiptCreated})
	require.ErrorIs(t, err, model.ErrNotification)
}

func TestSMTPSenderNotifySendFailure(t *testing.T) {
	sender := &_SMTPSender{
		config: SMTPConfig{Host: "mail.test", Port: 2525},
		send: func(addr string, a smtp.Auth, from string, to []string, msg []byte) error {
			return errors.New("connection refused")
		},
	}

	err := sender.Notify(context.Background(), model.Notification{
		Template:  model.TemplateReceiptCreated,
		Recipient: "ops@acme.test",
		Fields:    map[string]string{"name": "Acme Imports", "wr_number": "WR-1001"},
	})
	require.ErrorIs(t, err, model.ErrNotificationFailed)
}
