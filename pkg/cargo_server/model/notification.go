package model

type NotificationTemplate string

const (
	TemplateReceiptCreated         = NotificationTemplate("receipt.created")
	TemplateDispatchRequestedOps   = NotificationTemplate("dispatch.requested_ops")
	TemplateDispatchReceivedClient = NotificationTemplate("dispatch.received_client")
	TemplateBOLApproved            = NotificationTemplate("dispatch.bol_approved")
	TemplateBOLDelivery            = NotificationTemplate("dispatch.bol_delivery")
	TemplateClientCredentials      = NotificationTemplate("user.client_credentials")
)

// Notification is one outbound message to a recipient address. Fields carry
// the template context; Attachment is optional.
type Notification struct {
	ID         string               `json:"id"`
	Template   NotificationTemplate `json:"template"`
	Recipient  string               `json:"recipient"`
	Fields     map[string]string    `json:"fields,omitempty"`
	Attachment *File                `json:"attachment,omitempty"`
	CreatedAt  int64                `json:"created_at"`
}
