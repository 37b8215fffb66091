package budget

import (
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Strategy selects how a paycheck is distributed across accounts.
type Strategy string

const (
	// StrategyEqual splits the paycheck evenly across all accounts.
	StrategyEqual Strategy = "EQUAL"

	// StrategyCustom uses the locked distribution where one exists
	// and falls back to an equal share for accounts without a lock.
	StrategyCustom Strategy = "CUSTOM"

	// StrategySingle deposits the full paycheck into one account.
	StrategySingle Strategy = "SINGLE"

	// StrategyProportional splits the paycheck proportionally to each
	// account's required amount for the period.
	StrategyProportional Strategy = "PROPORTIONAL"
)

// Valid reports whether the strategy is one of the supported variants.
func (s Strategy) Valid() bool {
	switch s {
	case StrategyEqual, StrategyCustom, StrategySingle, StrategyProportional:
		return true
	}

	return false
}

// LockTolerance is the maximum absolute difference between a locked
// distribution's sum and the paycheck it was locked against.
var LockTolerance = decimal.RequireFromString("0.01")

// ErrLockedSumMismatch is returned when a custom distribution does not
// add up to the paycheck amount within LockTolerance.
var ErrLockedSumMismatch = errors.New("the distribution does not add up to the paycheck amount")

// ValidateLock verifies that the amounts of a custom distribution sum
// to the target paycheck within LockTolerance.
func ValidateLock(target decimal.Decimal, amounts []decimal.Decimal) error {
	sum := decimal.Zero
	for _, amount := range amounts {
		sum = sum.Add(amount)
	}

	if sum.Sub(target).Abs().GreaterThan(LockTolerance) {
		return ErrLockedSumMismatch
	}

	return nil
}

// Allocate distributes the paycheck across the accounts according to
// the strategy. required holds the per-account required amount for the
// period and is only consulted by StrategyProportional.
//
// The returned map has an entry for every account.
func Allocate(paycheck decimal.Decimal, accounts []Account, strategy Strategy, required map[uuid.UUID]decimal.Decimal, locked map[uuid.UUID]decimal.Decimal, single uuid.UUID) map[uuid.UUID]decimal.Decimal {
	allocated := make(map[uuid.UUID]decimal.Decimal, len(accounts))
	if len(accounts) == 0 {
		return allocated
	}

	count := decimal.NewFromInt(int64(len(accounts)))
	equalShare := paycheck.Div(count)

	switch strategy {
	case StrategySingle:
		for _, account := range accounts {
			if account.ID == single {
				allocated[account.ID] = paycheck
			} else {
				allocated[account.ID] = decimal.Zero
			}
		}

	case StrategyCustom:
		for _, account := range accounts {
			if amount, ok := locked[account.ID]; ok {
				allocated[account.ID] = amount
			} else {
				allocated[account.ID] = equalShare
			}
		}

	case StrategyProportional:
		total := decimal.Zero
		for _, account := range accounts {
			total = total.Add(required[account.ID])
		}

		// With nothing required, proportional shares are undefined.
		// Fall back to an even split.
		if total.IsZero() {
			for _, account := range accounts {
				allocated[account.ID] = equalShare
			}
			break
		}

		for _, account := range accounts {
			allocated[account.ID] = paycheck.Mul(required[account.ID]).Div(total)
		}

	default:
		for _, account := range accounts {
			allocated[account.ID] = equalShare
		}
	}

	return allocated
}
