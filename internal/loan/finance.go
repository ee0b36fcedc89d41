package loan

import (
	"time"

	"github.com/shopspring/decimal"
)

// Flat simple interest over the whole term; installments are not amortized
// and rounding remainder is not redistributed to the last installment.
var (
	hundred     = decimal.NewFromInt(100)
	penaltyRate = decimal.RequireFromString("0.05")
)

// LateInterestIncreasePercent is the flat rate-percent bump applied to
// overdue installments. Fixed, not configurable per lender.
const LateInterestIncreasePercent = 1

// Financials holds the monetary figures and schedule dates rendered into an
// agreement document. They are a pure function of the request terms and a
// reference date, recomputed whenever a document must be (re)built.
type Financials struct {
	Interest       decimal.Decimal
	TotalPayable   decimal.Decimal
	MonthlyPayment decimal.Decimal
	Penalty        decimal.Decimal
	FirstDueDate   time.Time
	LastDueDate    time.Time
	TotalInWords   string
}

// ComputeFinancials derives the agreement figures from the request terms.
// today is the reference date the repayment schedule starts from.
func ComputeFinancials(r AgreementRequest, today time.Time) (Financials, error) {
	if err := r.Validate(); err != nil {
		return Financials{}, err
	}

	interest := r.Principal.Mul(r.RatePercent).Div(hundred)
	total := r.Principal.Add(interest)
	monthly := total.Div(decimal.NewFromInt(int64(r.TermMonths))).Round(2)

	return Financials{
		Interest:       interest,
		TotalPayable:   total,
		MonthlyPayment: monthly,
		Penalty:        monthly.Mul(penaltyRate).Round(2),
		FirstDueDate:   today.AddDate(0, 1, 0),
		LastDueDate:    today.AddDate(0, r.TermMonths, 0),
		TotalInWords:   AmountInWords(total.IntPart()),
	}, nil
}
