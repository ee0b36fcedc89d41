package agreement

import (
	"strconv"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/hiramlend/hiram/internal/esign"
	"github.com/hiramlend/hiram/internal/loan"
)

const dateLayout = "January 2, 2006"

// Builder assembles document-creation payloads from a request and its
// computed financials. Pure transformation; no network I/O.
type Builder struct {
	templateID string
	witness    esign.Recipient
	printer    *message.Printer
}

// NewBuilder returns a builder bound to one document template and the fixed
// internal witness who countersigns every agreement.
func NewBuilder(templateID string, witness esign.Recipient) *Builder {
	witness.Role = "Witness"
	witness.SigningOrder = 3

	return &Builder{
		templateID: templateID,
		witness:    witness,
		printer:    message.NewPrinter(language.English),
	}
}

// Build produces the creation payload: the ordered recipient list, the
// template reference, the flat variable map rendered for display, and
// correlation metadata.
func (b *Builder) Build(req loan.AgreementRequest, fin loan.Financials) (esign.CreateDocumentParams, error) {
	if err := req.Validate(); err != nil {
		return esign.CreateDocumentParams{}, err
	}

	recipients := []esign.Recipient{
		{
			Email:        req.Borrower.Email,
			FirstName:    req.Borrower.FirstName,
			LastName:     req.Borrower.LastName,
			Role:         "Borrower",
			SigningOrder: 1,
		},
		{
			Email:        req.Lender.Email,
			FirstName:    req.Lender.FirstName,
			LastName:     req.Lender.LastName,
			Role:         "Lender",
			SigningOrder: 2,
		},
		b.witness,
	}

	fields := map[string]string{
		"borrower_name":          req.Borrower.FullName(),
		"borrower_email":         req.Borrower.Email,
		"lender_name":            req.Lender.FullName(),
		"lender_email":           req.Lender.Email,
		"principal_amount":       b.amount(req.Principal),
		"interest_rate":          req.RatePercent.String() + "%",
		"interest_amount":        b.amount(fin.Interest),
		"total_payable":          b.amount(fin.TotalPayable),
		"total_in_words":         fin.TotalInWords,
		"monthly_payment":        b.amount(fin.MonthlyPayment),
		"term_months":            strconv.Itoa(req.TermMonths),
		"first_due_date":         fin.FirstDueDate.Format(dateLayout),
		"last_due_date":          fin.LastDueDate.Format(dateLayout),
		"penalty_amount":         b.amount(fin.Penalty),
		"late_interest_increase": strconv.Itoa(loan.LateInterestIncreasePercent) + "%",
		"loan_purpose":           req.Purpose.Label(),
		"business_type":          req.BusinessType.Label(),
		"payment_type":           req.PaymentType.Label(),
	}

	metadata := map[string]string{
		"agreement_id": req.ID.String(),
		"borrower_id":  req.Borrower.ID.String(),
		"lender_id":    req.Lender.ID.String(),
		"principal":    req.Principal.String(),
		"term_months":  strconv.Itoa(req.TermMonths),
	}

	return esign.CreateDocumentParams{
		TemplateID: b.templateID,
		Recipients: recipients,
		Fields:     fields,
		Metadata:   metadata,
	}, nil
}

// amount renders a monetary figure with thousands separators, e.g. "10,500.00".
func (b *Builder) amount(d decimal.Decimal) string {
	return b.printer.Sprintf("%.2f", d.InexactFloat64())
}
