package agreement

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/hiramlend/hiram/internal/esign"
	"github.com/hiramlend/hiram/internal/loan"
)

const signingLinkLifetime = time.Hour

const (
	sendSubject = "Your loan agreement is ready for signing"
	sendMessage = "Please review and sign your loan agreement. The document lays out the " +
		"agreed principal, interest, and repayment schedule."
)

// RetryPolicy bounds the orchestrator's own send-retry behavior. The outer
// attempt budget covers transient failures and failed channel fallbacks;
// not-ready conflicts wait out the provider's cooldown without consuming
// attempts.
type RetryPolicy struct {
	MaxAttempts      int
	Backoff          time.Duration
	ConflictCooldown time.Duration
	SettleDelay      time.Duration
}

var DefaultRetryPolicy = RetryPolicy{
	MaxAttempts:      3,
	Backoff:          5 * time.Second,
	ConflictCooldown: 5 * time.Second,
	SettleDelay:      3 * time.Second,
}

// Orchestrator sequences one agreement request through build, create, poll,
// and send, and yields exactly one terminal outcome per run. It keeps no
// state of its own; the document lifecycle lives entirely at the provider.
//
// Runs for distinct requests may proceed concurrently. Callers must not
// start a second run for the same request while one is in flight.
type Orchestrator struct {
	client  DocumentClient
	builder *Builder
	retry   RetryPolicy
	now     func() time.Time
}

func NewOrchestrator(client DocumentClient, builder *Builder, retry RetryPolicy) *Orchestrator {
	return &Orchestrator{
		client:  client,
		builder: builder,
		retry:   retry,
		now:     time.Now,
	}
}

// GenerateAndDeliver computes the financial terms, creates the agreement
// document, waits for it to become sendable under poll, and dispatches it
// for signing. On success the returned Delivery says which channel carried
// the signing request; on failure the error classifies the terminal state
// (see FailureReason). Cancelling ctx abandons the run at the next wait or
// round trip; a document already created is left as-is.
func (o *Orchestrator) GenerateAndDeliver(ctx context.Context, req loan.AgreementRequest, poll PollPolicy) (*Delivery, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	fin, err := loan.ComputeFinancials(req, o.now())
	if err != nil {
		return nil, err
	}

	params, err := o.builder.Build(req, fin)
	if err != nil {
		return nil, err
	}

	documentID, err := o.client.CreateDocument(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("creating agreement document: %w", err)
	}

	slog.Info("agreement document created", "agreement_id", req.ID, "document_id", documentID)

	if err := NewPoller(o.client, poll).WaitForDraft(ctx, documentID); err != nil {
		return nil, err
	}

	var lastErr error

	for attempt := 1; attempt <= o.retry.MaxAttempts; attempt++ {
		delivery, err := o.sendOnce(ctx, documentID, req)
		if err == nil {
			return delivery, nil
		}

		if ctx.Err() != nil {
			return nil, ctx.Err()
		}

		slog.Warn("agreement send attempt failed",
			"agreement_id", req.ID, "document_id", documentID, "attempt", attempt, "error", err)

		lastErr = err

		if attempt < o.retry.MaxAttempts {
			if err := sleepCtx(ctx, o.retry.Backoff); err != nil {
				return nil, err
			}
		}
	}

	return nil, &ExhaustionError{Attempts: o.retry.MaxAttempts, Last: lastErr}
}

// sendOnce performs one outer send attempt: dispatch over email, waiting out
// any number of provider not-ready conflicts, and falling back to the
// embedded channel once if email is denied. Any error it returns consumes
// one outer attempt.
func (o *Orchestrator) sendOnce(ctx context.Context, documentID string, req loan.AgreementRequest) (*Delivery, error) {
	for {
		res, err := o.client.Send(ctx, documentID, esign.SendParams{
			Channel: esign.ChannelEmail,
			Subject: sendSubject,
			Message: sendMessage,
		})

		var notReady *esign.NotReadyError

		switch {
		case errors.As(err, &notReady):
			cooldown := notReady.RetryAfter
			if cooldown <= 0 {
				cooldown = o.retry.ConflictCooldown
			}

			if err := sleepCtx(ctx, cooldown); err != nil {
				return nil, err
			}

			continue
		case errors.Is(err, esign.ErrChannelDenied):
			return o.sendEmbedded(ctx, documentID, req)
		case err != nil:
			return nil, fmt.Errorf("sending agreement: %w", err)
		}

		if res.SigningURL == "" {
			return &Delivery{DocumentID: documentID, Method: DeliveryEmail}, nil
		}

		// Give the provider's parallel email notification a moment to land
		// before handing the embedded link back.
		if err := sleepCtx(ctx, o.retry.SettleDelay); err != nil {
			return nil, err
		}

		return &Delivery{DocumentID: documentID, Method: DeliveryEmbedded, SigningURL: res.SigningURL}, nil
	}
}

// sendEmbedded is the one-shot fallback when the email channel is denied.
// Its failure propagates and consumes the current outer attempt.
func (o *Orchestrator) sendEmbedded(ctx context.Context, documentID string, req loan.AgreementRequest) (*Delivery, error) {
	res, err := o.client.Send(ctx, documentID, esign.SendParams{Channel: esign.ChannelEmbedded})
	if err != nil {
		return nil, fmt.Errorf("embedded fallback: %w", err)
	}

	url := res.SigningURL
	if url == "" {
		url, err = o.client.CreateSigningLink(ctx, documentID, req.Borrower.Email, signingLinkLifetime)
		if err != nil {
			return nil, fmt.Errorf("minting signing link: %w", err)
		}
	}

	return &Delivery{DocumentID: documentID, Method: DeliveryEmbedded, SigningURL: url}, nil
}
