package service

import (
	"context"
)

// PushSender delivers FCM push notifications.
type PushSender interface {
	// SendBatchNotification sends one message to many tokens.
	// Returns success count, failure count and the tokens FCM reported as dead.
	SendBatchNotification(ctx context.Context, tokens []string, title, body string, data map[string]string) (successCount, failureCount int, invalidTokens []string, err error)
}

// EmailMessage is one rendered email.
type EmailMessage struct {
	To       string
	Subject  string
	HTMLBody string
	TextBody string
}

// EmailBatchResult reports a permissive batch send.
type EmailBatchResult struct {
	Sent   int
	Failed []string
}

// EmailSender sends transactional email. A failed recipient never aborts the rest of the batch;
// err is reserved for transport failures that prevented the batch from being attempted.
type EmailSender interface {
	SendBatch(ctx context.Context, messages []*EmailMessage) (*EmailBatchResult, error)
}

// Email template names understood by EmailTemplates.
const (
	TemplateProductClaimed   = "product_claimed"
	TemplateProductAvailable = "product_available"
	TemplateApprovalDecision = "approval_decision"
)

// ProductEmailData describes one product in a notification email.
type ProductEmailData struct {
	ProductID      string
	ProductName    string
	Quantity       int
	Unit           string
	Categories     []string
	PickupDate     string
	PickupLocation string
}

// ProductClaimedData fills the product_claimed template.
type ProductClaimedData struct {
	RecipientName string
	NonprofitName string
	Product       ProductEmailData
	// ForSupplier selects the supplier wording over the claimer's confirmation wording.
	ForSupplier bool
}

// ProductAvailableData fills the product_available template.
type ProductAvailableData struct {
	RecipientName string
	Product       ProductEmailData
}

// ApprovalDecisionData fills the approval_decision template.
type ApprovalDecisionData struct {
	RecipientName string
	NonprofitName string
	Approved      bool
}

// EmailTemplates renders a named template into a message for one recipient.
type EmailTemplates interface {
	Render(name, to string, data any) (*EmailMessage, error)
}
