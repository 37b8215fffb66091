package models

import (
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/paycycle/backend/internal/budget"
	"github.com/paycycle/backend/internal/types"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Expense is an obligation that does not recur every month: a one-time
// purchase, something that happens a number of times per year, or
// something only due in specific months.
type Expense struct {
	DefaultModel
	Name           string
	Amount         decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	DueDay         int
	Account        Account `json:"-"`
	AccountID      uuid.UUID
	PlanType       budget.PlanType
	Occurrences    int          // Times per year. Only set for OCCURRENCE expenses.
	SpecificMonths types.Months // Months the expense is due in. Only set for SPECIFIC_MONTHS expenses.
}

var (
	ErrExpenseNameEmpty           = errors.New("the expense name must not be empty")
	ErrExpenseAmountNotPositive   = errors.New("expense amounts must be larger than zero")
	ErrExpensePlanInvalid         = errors.New("the expense plan type is not supported")
	ErrExpenseOccurrencesNegative = errors.New("the number of occurrences per year must not be negative")
	ErrExpenseMonthsEmpty         = errors.New("specific month expenses must name at least one month")
)

func (e *Expense) BeforeCreate(tx *gorm.DB) error {
	_ = e.DefaultModel.BeforeCreate(tx)

	toSave := tx.Statement.Dest.(*Expense)
	return e.checkIntegrity(tx, *toSave)
}

// BeforeUpdate verifies the state of the expense before
// committing an update to the database.
func (e *Expense) BeforeUpdate(tx *gorm.DB) error {
	toSave := tx.Statement.Dest.(Expense)
	if tx.Statement.Changed("AccountID") {
		return e.checkIntegrity(tx, toSave)
	}

	return nil
}

// BeforeSave normalizes the expense so that plan settings that do not
// apply to its plan type are never stored.
func (e *Expense) BeforeSave(_ *gorm.DB) error {
	e.Name = strings.TrimSpace(e.Name)
	if e.Name == "" {
		return ErrExpenseNameEmpty
	}

	if e.PlanType == "" {
		e.PlanType = budget.PlanOneTime
	}
	if !e.PlanType.Valid() {
		return ErrExpensePlanInvalid
	}

	if e.PlanType != budget.PlanOccurrence {
		e.Occurrences = 0
	}

	if e.PlanType != budget.PlanSpecificMonths {
		e.SpecificMonths = nil
	} else if err := e.SpecificMonths.Validate(); err != nil {
		return err
	}

	return nil
}

func (e *Expense) AfterSave(_ *gorm.DB) error {
	if !e.Amount.IsPositive() {
		return ErrExpenseAmountNotPositive
	}

	if e.DueDay < 1 || e.DueDay > 31 {
		return ErrObligationDayOutOfRange
	}

	// Zero occurrences is allowed, the amortized cost is simply zero.
	if e.PlanType == budget.PlanOccurrence && e.Occurrences < 0 {
		return ErrExpenseOccurrencesNegative
	}

	if e.PlanType == budget.PlanSpecificMonths && len(e.SpecificMonths) == 0 {
		return ErrExpenseMonthsEmpty
	}

	return nil
}

// checkIntegrity verifies references to other resources
func (e *Expense) checkIntegrity(tx *gorm.DB, toSave Expense) error {
	return tx.First(&Account{}, toSave.AccountID).Error
}
