package budget

import (
	"time"

	"github.com/paycycle/backend/internal/period"
	"github.com/shopspring/decimal"
)

var decimalTwelve = decimal.NewFromInt(12)

// span is a day-of-month range inside a pay period. start may be
// larger than end when the period wraps around a month boundary.
type span struct {
	start, end  int
	daysInMonth int
	month       time.Month
}

// contains reports whether a day of month falls into the span,
// accounting for wraparound.
func (s span) contains(day int) bool {
	return period.DayInRange(day, s.start, s.end, s.daysInMonth)
}

// dueIn reports whether the bill is due inside the span. The due day
// is clamped to the last day of the month first, so a bill due on the
// 31st is still due in February.
func (b Bill) dueIn(s span) bool {
	return s.contains(period.ClampDay(b.DueDay, s.daysInMonth))
}

// dueIn reports whether the expense is due inside the span. Expense
// due days are taken literally and not clamped.
func (e Expense) dueIn(s span) bool {
	switch e.PlanType {
	case PlanSpecificMonths:
		return e.SpecificMonths.Contains(s.month) && s.contains(e.DueDay)

	default:
		return s.contains(e.DueDay)
	}
}

// periodCost is the cost the expense contributes to a single pay
// period when it is due in it. Occurrence expenses are amortized over
// the expected number of pay periods per year.
func (e Expense) periodCost(periodsPerYear int) decimal.Decimal {
	if e.PlanType == PlanOccurrence {
		return e.Amount.
			Mul(decimal.NewFromInt(int64(e.Occurrences))).
			Div(decimal.NewFromInt(int64(periodsPerYear)))
	}

	return e.Amount
}

// monthlyCost is the cost the expense contributes to the month of the
// cycle date, independent of the pay period.
func (e Expense) monthlyCost(month time.Month) decimal.Decimal {
	switch e.PlanType {
	case PlanOccurrence:
		return e.Amount.
			Mul(decimal.NewFromInt(int64(e.Occurrences))).
			Div(decimalTwelve)

	case PlanSpecificMonths:
		if e.SpecificMonths.Contains(month) {
			return e.Amount
		}

		return decimal.Zero

	default:
		// One-time expenses are not part of the recurring monthly
		// picture.
		return decimal.Zero
	}
}
