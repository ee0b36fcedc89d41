package loan_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hiramlend/hiram/internal/loan"
)

func validRequest() loan.AgreementRequest {
	return loan.AgreementRequest{
		ID: uuid.New(),
		Borrower: loan.Party{
			ID:        uuid.New(),
			Email:     "maria@example.com",
			FirstName: "Maria",
			LastName:  "Santos",
		},
		Lender: loan.Party{
			ID:        uuid.New(),
			Email:     "juan@example.com",
			FirstName: "Juan",
			LastName:  "Dela Cruz",
		},
		Principal:    decimal.NewFromInt(10000),
		RatePercent:  decimal.NewFromInt(5),
		TermMonths:   4,
		Purpose:      loan.PurposeBusiness,
		BusinessType: loan.BusinessSoleProprietorship,
		PaymentType:  loan.PaymentMonthly,
	}
}

func TestComputeFinancials(t *testing.T) {
	today := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

	t.Run("FlatInterest", func(t *testing.T) {
		req := validRequest()

		fin, err := loan.ComputeFinancials(req, today)
		require.NoError(t, err)

		assert.True(t, fin.Interest.Equal(decimal.NewFromInt(500)), "interest = %s", fin.Interest)
		assert.True(t, fin.TotalPayable.Equal(decimal.NewFromInt(10500)), "total = %s", fin.TotalPayable)
		assert.Equal(t, "2625.00", fin.MonthlyPayment.StringFixed(2))
		assert.Equal(t, "131.25", fin.Penalty.StringFixed(2))
		assert.Equal(t, time.Date(2026, 4, 10, 0, 0, 0, 0, time.UTC), fin.FirstDueDate)
		assert.Equal(t, time.Date(2026, 7, 10, 0, 0, 0, 0, time.UTC), fin.LastDueDate)
		assert.Equal(t, "Ten Thousand Five Hundred Pesos", fin.TotalInWords)
	})

	t.Run("ZeroRate", func(t *testing.T) {
		req := validRequest()
		req.Principal = decimal.NewFromInt(9000)
		req.RatePercent = decimal.Zero
		req.TermMonths = 3

		fin, err := loan.ComputeFinancials(req, today)
		require.NoError(t, err)

		assert.True(t, fin.Interest.IsZero())
		assert.True(t, fin.TotalPayable.Equal(req.Principal))
		assert.Equal(t, "3000.00", fin.MonthlyPayment.StringFixed(2))
	})

	t.Run("NoRemainderRedistribution", func(t *testing.T) {
		req := validRequest()
		req.Principal = decimal.NewFromInt(10000)
		req.RatePercent = decimal.Zero
		req.TermMonths = 3

		fin, err := loan.ComputeFinancials(req, today)
		require.NoError(t, err)

		// Each installment carries the same rounded figure; the last one is
		// not adjusted to absorb the rounding error.
		assert.Equal(t, "3333.33", fin.MonthlyPayment.StringFixed(2))
	})
}

func TestComputeFinancials_Validation(t *testing.T) {
	today := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name   string
		mutate func(r *loan.AgreementRequest)
	}{
		{"MissingBorrowerEmail", func(r *loan.AgreementRequest) { r.Borrower.Email = "" }},
		{"MissingBorrowerName", func(r *loan.AgreementRequest) {
			r.Borrower.FirstName = ""
			r.Borrower.LastName = ""
		}},
		{"MissingLenderEmail", func(r *loan.AgreementRequest) { r.Lender.Email = "" }},
		{"NegativePrincipal", func(r *loan.AgreementRequest) { r.Principal = decimal.NewFromInt(-1) }},
		{"NegativeRate", func(r *loan.AgreementRequest) { r.RatePercent = decimal.NewFromInt(-5) }},
		{"ZeroTerm", func(r *loan.AgreementRequest) { r.TermMonths = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(&req)

			_, err := loan.ComputeFinancials(req, today)

			var verr *loan.ValidationError
			require.ErrorAs(t, err, &verr)
		})
	}
}

func TestAmountInWords(t *testing.T) {
	tests := []struct {
		amount int64
		want   string
	}{
		{0, "Zero"},
		{1, "One Pesos"},
		{15, "Fifteen"},
		{20, "Twenty Pesos"},
		{99, "Ninety Nine Pesos"},
		{100, "One Hundred Pesos"},
		{215, "Two Hundred Fifteen"},
		{500, "Five Hundred Pesos"},
		{10500, "Ten Thousand Five Hundred Pesos"},
		{121350, "One Hundred Twenty One Thousand Three Hundred Fifty Pesos"},
		{1000000, "One Million Pesos"},
		{2500000, "Two Million Five Hundred Thousand Pesos"},
		{1000000000, ""},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, loan.AmountInWords(tt.amount))
		})
	}
}
