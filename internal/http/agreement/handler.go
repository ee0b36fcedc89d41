package agreement

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/hiramlend/hiram/internal/agreement"
	"github.com/hiramlend/hiram/internal/loan"
)

type Handler struct {
	svc *agreement.Service
}

func NewHandler(svc *agreement.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.create)
	r.Get("/", h.list)
	r.Get("/{id}", h.get)
}

type partyRequest struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
}

func (p partyRequest) toParty() loan.Party {
	id := p.ID
	if id == uuid.Nil {
		id = uuid.New()
	}

	return loan.Party{
		ID:        id,
		Email:     p.Email,
		FirstName: p.FirstName,
		LastName:  p.LastName,
	}
}

type createAgreementRequest struct {
	Borrower     partyRequest      `json:"borrower"`
	Lender       partyRequest      `json:"lender"`
	Principal    decimal.Decimal   `json:"principal"`
	InterestRate decimal.Decimal   `json:"interest_rate"`
	TermMonths   int               `json:"term_months"`
	Purpose      loan.Purpose      `json:"purpose"`
	BusinessType loan.BusinessType `json:"business_type"`
	PaymentType  loan.PaymentType  `json:"payment_type"`
	Flow         agreement.Flow    `json:"flow"`
}

// create runs the whole generate-and-deliver pipeline synchronously and
// reports its terminal outcome. Callers must not re-submit the same request
// while a run is in flight; on failure a retry starts the pipeline from a
// fresh document.
func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req createAgreementRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	flow := req.Flow
	if flow == "" {
		flow = agreement.FlowApproval
	}

	a, delivery, err := h.svc.Generate(r.Context(), loan.AgreementRequest{
		ID:           uuid.New(),
		Borrower:     req.Borrower.toParty(),
		Lender:       req.Lender.toParty(),
		Principal:    req.Principal,
		RatePercent:  req.InterestRate,
		TermMonths:   req.TermMonths,
		Purpose:      req.Purpose,
		BusinessType: req.BusinessType,
		PaymentType:  req.PaymentType,
	}, flow)
	if err != nil {
		var verr *loan.ValidationError
		if errors.As(err, &verr) {
			http.Error(w, verr.Error(), http.StatusBadRequest)
			return
		}

		if a == nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		// The pipeline failed after the request was accepted; report the
		// recorded terminal state so the caller can offer a manual retry.
		writeJSON(w, http.StatusBadGateway, toResponse(a, nil))

		return
	}

	writeJSON(w, http.StatusCreated, toResponse(a, delivery))
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	filter := agreement.ListFilter{}

	if s := r.URL.Query().Get("status"); s != "" {
		st := agreement.Status(s)
		filter.Status = &st
	}

	agreements, err := h.svc.List(r.Context(), filter)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, toResponseList(agreements))
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	a, err := h.svc.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, agreement.ErrNotFound) {
			http.Error(w, "agreement not found", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	writeJSON(w, http.StatusOK, toResponse(a, nil))
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
