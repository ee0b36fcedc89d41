package agreement

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/hiramlend/hiram/internal/agreement"
	"github.com/hiramlend/hiram/internal/loan"
)

type partyResponse struct {
	ID    uuid.UUID `json:"id"`
	Email string    `json:"email"`
	Name  string    `json:"name"`
}

type agreementResponse struct {
	ID             uuid.UUID        `json:"id"`
	Borrower       partyResponse    `json:"borrower"`
	Lender         partyResponse    `json:"lender"`
	Principal      decimal.Decimal  `json:"principal"`
	InterestRate   decimal.Decimal  `json:"interest_rate"`
	TermMonths     int              `json:"term_months"`
	Purpose        loan.Purpose     `json:"purpose"`
	Status         agreement.Status `json:"status"`
	DocumentID     string           `json:"document_id,omitempty"`
	DeliveryMethod string           `json:"delivery_method,omitempty"`
	SigningURL     string           `json:"signing_url,omitempty"`
	FailureReason  string           `json:"failure_reason,omitempty"`
	CreatedAt      time.Time        `json:"created_at"`
	UpdatedAt      *time.Time       `json:"updated_at,omitempty"`
}

func toResponse(a *agreement.Agreement, d *agreement.Delivery) agreementResponse {
	resp := agreementResponse{
		ID: a.ID,
		Borrower: partyResponse{
			ID:    a.Request.Borrower.ID,
			Email: a.Request.Borrower.Email,
			Name:  a.Request.Borrower.FullName(),
		},
		Lender: partyResponse{
			ID:    a.Request.Lender.ID,
			Email: a.Request.Lender.Email,
			Name:  a.Request.Lender.FullName(),
		},
		Principal:      a.Request.Principal,
		InterestRate:   a.Request.RatePercent,
		TermMonths:     a.Request.TermMonths,
		Purpose:        a.Request.Purpose,
		Status:         a.Status,
		DocumentID:     a.DocumentID,
		DeliveryMethod: string(a.Method),
		FailureReason:  a.FailureReason,
		CreatedAt:      a.CreatedAt,
		UpdatedAt:      a.UpdatedAt,
	}

	if d != nil {
		resp.SigningURL = d.SigningURL
	}

	return resp
}

func toResponseList(agreements []*agreement.Agreement) []agreementResponse {
	resp := make([]agreementResponse, len(agreements))
	for i, a := range agreements {
		resp[i] = toResponse(a, nil)
	}

	return resp
}
