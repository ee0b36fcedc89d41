package agreement

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/hiramlend/hiram/internal/esign"
	"github.com/hiramlend/hiram/internal/loan"
	"github.com/hiramlend/hiram/internal/metrics"
)

// Service wraps the delivery pipeline with persistence: it records the
// agreement request, runs the orchestrator, and stores the document
// correlation and terminal delivery state on the row. The orchestrator
// itself stays stateless.
type Service struct {
	repo         Repository
	deliverer    Deliverer
	approvalPoll PollPolicy
	directPoll   PollPolicy
}

func NewService(repo Repository, deliverer Deliverer, approvalPoll, directPoll PollPolicy) *Service {
	return &Service{
		repo:         repo,
		deliverer:    deliverer,
		approvalPoll: approvalPoll,
		directPoll:   directPoll,
	}
}

// Generate runs the pipeline for one request and returns the stored
// agreement together with the delivery outcome. On pipeline failure the
// agreement row records the failure classification and the error is
// returned; the caller restarts from scratch by issuing a new request.
func (s *Service) Generate(ctx context.Context, req loan.AgreementRequest, flow Flow) (*Agreement, *Delivery, error) {
	if err := req.Validate(); err != nil {
		metrics.RecordDelivery(string(StatusFailed), FailureReason(err))
		return nil, nil, err
	}

	if req.ID == uuid.Nil {
		req.ID = uuid.New()
	}

	a := &Agreement{
		ID:      req.ID,
		Request: req,
		Status:  StatusPending,
	}

	if err := s.repo.CreateAgreement(ctx, a); err != nil {
		return nil, nil, fmt.Errorf("recording agreement request: %w", err)
	}

	delivery, err := s.deliverer.GenerateAndDeliver(ctx, req, s.pollFor(flow))
	if err != nil {
		reason := FailureReason(err)

		a.Status = StatusFailed
		a.FailureReason = reason

		if uerr := s.repo.UpdateDelivery(ctx, a.ID, StatusFailed, "", reason); uerr != nil {
			slog.Error("failed to record delivery failure", "agreement_id", a.ID, "error", uerr)
		}

		metrics.RecordDelivery(string(StatusFailed), reason)

		return a, nil, err
	}

	a.DocumentID = delivery.DocumentID
	a.DocumentState = esign.StatusSent
	a.Status = StatusDelivered
	a.Method = delivery.Method

	if err := s.repo.UpdateDocument(ctx, a.ID, delivery.DocumentID, esign.StatusSent); err != nil {
		slog.Error("failed to record document reference", "agreement_id", a.ID, "error", err)
	}

	if err := s.repo.UpdateDelivery(ctx, a.ID, StatusDelivered, delivery.Method, ""); err != nil {
		slog.Error("failed to record delivery outcome", "agreement_id", a.ID, "error", err)
	}

	metrics.RecordDelivery(string(StatusDelivered), string(delivery.Method))

	return a, delivery, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Agreement, error) {
	return s.repo.GetAgreement(ctx, id)
}

func (s *Service) List(ctx context.Context, filter ListFilter) ([]*Agreement, error) {
	return s.repo.ListAgreements(ctx, filter)
}

func (s *Service) pollFor(flow Flow) PollPolicy {
	if flow == FlowDirectLend {
		return s.directPoll
	}

	return s.approvalPoll
}
