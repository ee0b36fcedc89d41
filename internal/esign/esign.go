package esign

import (
	"errors"
	"fmt"
	"time"
)

// Status is the provider's view of a document's readiness. The provider owns
// the lifecycle; callers only ever observe it.
type Status string

const (
	StatusProcessing Status = "processing"
	StatusDraft      Status = "draft"
	StatusSent       Status = "sent"
	StatusUnknown    Status = "unknown"
)

// Channel selects how a signing request reaches the recipient.
type Channel string

const (
	ChannelEmail    Channel = "email"
	ChannelEmbedded Channel = "embedded"
)

// Recipient is one signatory on a document. SigningOrder sequences whose
// turn it is; the provider enforces the order.
type Recipient struct {
	Email        string `json:"email"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	Role         string `json:"role"`
	SigningOrder int    `json:"signing_order"`
}

// CreateDocumentParams is the payload for creating a document from a template.
type CreateDocumentParams struct {
	TemplateID string            `json:"template_id"`
	Recipients []Recipient       `json:"recipients"`
	Fields     map[string]string `json:"fields"`
	Metadata   map[string]string `json:"metadata"`
}

// SendParams dispatches a document for signing over the given channel.
type SendParams struct {
	Channel Channel `json:"channel"`
	Subject string  `json:"subject,omitempty"`
	Message string  `json:"message,omitempty"`
}

// SendResult reports a successful dispatch. SigningURL is empty when the
// provider emailed the signing link to the recipient itself.
type SendResult struct {
	SigningURL string
}

// CreationError is a rejection of document creation (bad template reference,
// malformed payload). It is fatal; the pipeline never retries it.
type CreationError struct {
	StatusCode int
	Message    string
}

func (e *CreationError) Error() string {
	return fmt.Sprintf("esign: document creation rejected (status %d): %s", e.StatusCode, e.Message)
}

// NotReadyError means the document has not finished the provider's internal
// processing. RetryAfter carries the provider-suggested cooldown, zero when
// it suggested none.
type NotReadyError struct {
	RetryAfter time.Duration
}

func (e *NotReadyError) Error() string {
	return "esign: document not ready to send"
}

// ErrChannelDenied means the chosen channel is disallowed for this document
// or account.
var ErrChannelDenied = errors.New("esign: channel not allowed for this document")
