package agreement_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hiramlend/hiram/internal/agreement"
	"github.com/hiramlend/hiram/internal/esign"
	"github.com/hiramlend/hiram/internal/loan"
)

func TestBuilder_Build(t *testing.T) {
	req := testRequest()
	today := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

	fin, err := loan.ComputeFinancials(req, today)
	require.NoError(t, err)

	b := agreement.NewBuilder("tpl-loan", testWitness)

	params, err := b.Build(req, fin)
	require.NoError(t, err)

	assert.Equal(t, "tpl-loan", params.TemplateID)

	require.Len(t, params.Recipients, 3)
	assert.Equal(t, esign.Recipient{
		Email:        req.Borrower.Email,
		FirstName:    "Maria",
		LastName:     "Santos",
		Role:         "Borrower",
		SigningOrder: 1,
	}, params.Recipients[0])
	assert.Equal(t, "Lender", params.Recipients[1].Role)
	assert.Equal(t, 2, params.Recipients[1].SigningOrder)
	assert.Equal(t, "Witness", params.Recipients[2].Role)
	assert.Equal(t, 3, params.Recipients[2].SigningOrder)
	assert.Equal(t, testWitness.Email, params.Recipients[2].Email)

	wantFields := map[string]string{
		"borrower_name":          "Maria Santos",
		"lender_name":            "Juan Dela Cruz",
		"principal_amount":       "10,000.00",
		"interest_rate":          "5%",
		"interest_amount":        "500.00",
		"total_payable":          "10,500.00",
		"total_in_words":         "Ten Thousand Five Hundred Pesos",
		"monthly_payment":        "2,625.00",
		"term_months":            "4",
		"first_due_date":         "April 10, 2026",
		"last_due_date":          "July 10, 2026",
		"penalty_amount":         "131.25",
		"late_interest_increase": "1%",
		"loan_purpose":           "Business Capital",
		"business_type":          "Sole Proprietorship",
		"payment_type":           "Monthly Installments",
	}
	for k, want := range wantFields {
		assert.Equal(t, want, params.Fields[k], "field %s", k)
	}

	assert.Equal(t, req.ID.String(), params.Metadata["agreement_id"])
	assert.Equal(t, req.Borrower.ID.String(), params.Metadata["borrower_id"])
	assert.Equal(t, req.Lender.ID.String(), params.Metadata["lender_id"])
}

func TestBuilder_Build_MissingFields(t *testing.T) {
	today := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

	base := testRequest()

	fin, err := loan.ComputeFinancials(base, today)
	require.NoError(t, err)

	b := agreement.NewBuilder("tpl-loan", testWitness)

	req := base
	req.Lender.FirstName = ""
	req.Lender.LastName = ""

	_, err = b.Build(req, fin)

	var verr *loan.ValidationError
	require.ErrorAs(t, err, &verr)
}
