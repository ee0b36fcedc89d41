package agreement

import (
	"context"
	"time"

	"github.com/hiramlend/hiram/internal/esign"
)

// PollPolicy bounds how long the pipeline waits for a freshly created
// document to become sendable.
type PollPolicy struct {
	MaxAttempts int
	Interval    time.Duration
}

// The two shipped configurations: approved loans poll the provider until the
// document turns draft; direct lend requests take one fixed wait before the
// first send attempt.
var (
	ApprovalPollPolicy   = PollPolicy{MaxAttempts: 30, Interval: time.Second}
	DirectLendPollPolicy = PollPolicy{MaxAttempts: 1, Interval: 8 * time.Second}
)

// Poller waits for a document to reach the draft state, bounded by its
// policy. It only ever queries status; it never sends.
type Poller struct {
	client DocumentClient
	policy PollPolicy
}

func NewPoller(client DocumentClient, policy PollPolicy) *Poller {
	return &Poller{client: client, policy: policy}
}

// WaitForDraft blocks until the document is observed in the draft (or a
// later) state, the policy budget runs out, or ctx is done. A status query
// error consumes the attempt.
func (p *Poller) WaitForDraft(ctx context.Context, documentID string) error {
	for attempt := 0; attempt < p.policy.MaxAttempts; attempt++ {
		if err := sleepCtx(ctx, p.policy.Interval); err != nil {
			return err
		}

		status, err := p.client.GetStatus(ctx, documentID)
		if err != nil {
			continue
		}

		switch status {
		case esign.StatusDraft, esign.StatusSent:
			return nil
		}
	}

	return ErrReadinessTimeout
}
