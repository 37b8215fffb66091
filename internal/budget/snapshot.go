// Package budget implements the calculation core of the pay-cycle
// backend: matching bills and expenses against a pay period,
// distributing a paycheck across accounts and aggregating the
// per-account and combined figures for a cycle date.
//
// The package operates on snapshots of the stored collections. All
// state is passed in explicitly and nothing is mutated, so a
// calculation is re-entrant and safe to run concurrently with others.
package budget

import (
	"github.com/google/uuid"
	"github.com/paycycle/backend/internal/period"
	"github.com/paycycle/backend/internal/types"
	"github.com/shopspring/decimal"
)

// Account is the calculation view of a bank account. A nil balance
// means balance tracking is disabled for the account, which is not
// the same as a balance of zero.
type Account struct {
	ID      uuid.UUID
	Name    string
	Balance *decimal.Decimal
}

// Bill is the calculation view of a recurring bill. Bills recur every
// month unconditionally.
type Bill struct {
	ID        uuid.UUID
	Name      string
	Amount    decimal.Decimal
	DueDay    int
	AccountID uuid.UUID
}

// PlanType is the recurrence plan of an expense.
type PlanType string

const (
	// PlanOneTime expenses are due in every period their due day
	// overlaps with.
	PlanOneTime PlanType = "ONE_TIME"

	// PlanOccurrence expenses happen a number of times per year and
	// are amortized over the expected pay periods of a year.
	PlanOccurrence PlanType = "OCCURRENCE"

	// PlanSpecificMonths expenses are only due when the cycle date
	// falls into one of the configured months.
	PlanSpecificMonths PlanType = "SPECIFIC_MONTHS"
)

// Valid reports whether the plan type is one of the supported variants.
func (t PlanType) Valid() bool {
	switch t {
	case PlanOneTime, PlanOccurrence, PlanSpecificMonths:
		return true
	}

	return false
}

// Expense is the calculation view of a periodic or one-time expense.
// Occurrences is only meaningful for PlanOccurrence, SpecificMonths
// only for PlanSpecificMonths.
type Expense struct {
	ID             uuid.UUID
	Name           string
	Amount         decimal.Decimal
	DueDay         int
	AccountID      uuid.UUID
	PlanType       PlanType
	Occurrences    int
	SpecificMonths types.Months
}

// Snapshot is the full input for one calculation pass. It is read, not
// mutated.
type Snapshot struct {
	Accounts []Account
	Bills    []Bill
	Expenses []Expense

	// Payday is the active payday schedule. Use period.Default when
	// none is configured.
	Payday period.Policy

	// Paycheck is the expected paycheck amount per pay period.
	Paycheck decimal.Decimal

	// Strategy selects how the paycheck is distributed. An empty
	// strategy defaults to StrategyEqual.
	Strategy Strategy

	// Locked holds the locked custom distribution. Only used by
	// StrategyCustom.
	Locked map[uuid.UUID]decimal.Decimal

	// SingleAccountID is the account receiving the full paycheck.
	// Only used by StrategySingle.
	SingleAccountID uuid.UUID
}
