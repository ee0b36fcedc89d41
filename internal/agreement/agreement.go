package agreement

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/hiramlend/hiram/internal/esign"
	"github.com/hiramlend/hiram/internal/loan"
)

var ErrNotFound = errors.New("agreement not found")

// Status is the stored delivery state of an agreement request.
type Status string

const (
	StatusPending   Status = "pending"
	StatusDelivered Status = "delivered"
	StatusFailed    Status = "failed"
)

// DeliveryMethod records which channel ultimately carried the signing request.
type DeliveryMethod string

const (
	DeliveryEmail    DeliveryMethod = "email"
	DeliveryEmbedded DeliveryMethod = "embedded"
)

// Flow selects the readiness-wait configuration for a pipeline run. Approved
// loans poll the document until it turns draft; direct lend requests take a
// single fixed wait before the first send attempt.
type Flow string

const (
	FlowApproval   Flow = "approval"
	FlowDirectLend Flow = "direct_lend"
)

// Agreement is one stored agreement request together with its document
// correlation and terminal delivery state.
type Agreement struct {
	ID            uuid.UUID
	Request       loan.AgreementRequest
	DocumentID    string
	DocumentState esign.Status
	Status        Status
	Method        DeliveryMethod
	FailureReason string
	CreatedAt     time.Time
	UpdatedAt     *time.Time
}

// Delivery is the successful terminal outcome of one pipeline run.
// SigningURL is set only for embedded delivery.
type Delivery struct {
	DocumentID string
	Method     DeliveryMethod
	SigningURL string
}

type ListFilter struct {
	Status *Status
}

//go:generate mockgen -source=agreement.go -destination=agreement_mock.go -package=agreement

// DocumentClient is the narrow surface of the e-sign provider the pipeline
// needs. Implementations perform one round trip per call and never retry.
type DocumentClient interface {
	CreateDocument(ctx context.Context, params esign.CreateDocumentParams) (string, error)
	GetStatus(ctx context.Context, documentID string) (esign.Status, error)
	CreateSigningLink(ctx context.Context, documentID, recipientEmail string, lifetime time.Duration) (string, error)
	Send(ctx context.Context, documentID string, params esign.SendParams) (*esign.SendResult, error)
}

// Deliverer runs the generate-and-deliver pipeline for one request.
type Deliverer interface {
	GenerateAndDeliver(ctx context.Context, req loan.AgreementRequest, poll PollPolicy) (*Delivery, error)
}

type Repository interface {
	CreateAgreement(ctx context.Context, a *Agreement) error
	GetAgreement(ctx context.Context, id uuid.UUID) (*Agreement, error)
	ListAgreements(ctx context.Context, filter ListFilter) ([]*Agreement, error)
	UpdateDocument(ctx context.Context, id uuid.UUID, documentID string, state esign.Status) error
	UpdateDelivery(ctx context.Context, id uuid.UUID, status Status, method DeliveryMethod, failureReason string) error
}

// ErrReadinessTimeout means the poll budget ran out before the document
// reached the draft state. The run fails without a single send attempt.
var ErrReadinessTimeout = errors.New("agreement: document never reached draft state")

// ExhaustionError means the outer send budget ran out without a terminal
// success. Last carries the failure of the final attempt.
type ExhaustionError struct {
	Attempts int
	Last     error
}

func (e *ExhaustionError) Error() string {
	return fmt.Sprintf("agreement: send budget exhausted after %d attempts: %v", e.Attempts, e.Last)
}

func (e *ExhaustionError) Unwrap() error { return e.Last }

// FailureReason classifies a pipeline error for callers and metrics.
func FailureReason(err error) string {
	var (
		verr *loan.ValidationError
		cerr *esign.CreationError
		xerr *ExhaustionError
	)

	switch {
	case errors.As(err, &verr):
		return "validation"
	case errors.As(err, &cerr):
		return "creation_failed"
	case errors.Is(err, ErrReadinessTimeout):
		return "readiness_timeout"
	case errors.As(err, &xerr):
		return "exhaustion"
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return "canceled"
	default:
		return "internal"
	}
}

// sleepCtx waits for d or until ctx is done, whichever comes first.
func sleepCtx(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
