package models_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/paycycle/backend/internal/budget"
	"github.com/paycycle/backend/internal/models"
	"github.com/paycycle/backend/internal/types"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestExpensePlanDefaultsToOneTime() {
	account := suite.createTestAccount(models.Account{})

	expense := suite.createTestExpense(models.Expense{AccountID: account.ID})

	assert.Equal(suite.T(), budget.PlanOneTime, expense.PlanType)
}

func (suite *TestSuiteStandard) TestExpenseNormalization() {
	account := suite.createTestAccount(models.Account{})

	// Plan settings that do not apply to the plan type are dropped on
	// save.
	expense := suite.createTestExpense(models.Expense{
		AccountID:      account.ID,
		PlanType:       budget.PlanOneTime,
		Occurrences:    5,
		SpecificMonths: types.Months{3, 9},
	})

	assert.Equal(suite.T(), 0, expense.Occurrences)
	assert.Nil(suite.T(), expense.SpecificMonths)

	expense = suite.createTestExpense(models.Expense{
		AccountID:      account.ID,
		PlanType:       budget.PlanOccurrence,
		Occurrences:    5,
		SpecificMonths: types.Months{3, 9},
	})

	assert.Equal(suite.T(), 5, expense.Occurrences)
	assert.Nil(suite.T(), expense.SpecificMonths)
}

func (suite *TestSuiteStandard) TestExpenseValidation() {
	account := suite.createTestAccount(models.Account{})

	tests := []struct {
		name    string
		expense models.Expense
		err     error
	}{
		{
			"unknown plan type",
			models.Expense{Name: "a", Amount: decimal.NewFromInt(10), DueDay: 1, AccountID: account.ID, PlanType: "WEEKLY"},
			models.ErrExpensePlanInvalid,
		},
		{
			"negative occurrences",
			models.Expense{Name: "b", Amount: decimal.NewFromInt(10), DueDay: 1, AccountID: account.ID, PlanType: budget.PlanOccurrence, Occurrences: -1},
			models.ErrExpenseOccurrencesNegative,
		},
		{
			"specific months without months",
			models.Expense{Name: "c", Amount: decimal.NewFromInt(10), DueDay: 1, AccountID: account.ID, PlanType: budget.PlanSpecificMonths},
			models.ErrExpenseMonthsEmpty,
		},
		{
			"month out of range",
			models.Expense{Name: "d", Amount: decimal.NewFromInt(10), DueDay: 1, AccountID: account.ID, PlanType: budget.PlanSpecificMonths, SpecificMonths: types.Months{13}},
			types.ErrMonthOutOfRange,
		},
		{
			"negative amount",
			models.Expense{Name: "e", Amount: decimal.NewFromInt(-10), DueDay: 1, AccountID: account.ID},
			models.ErrExpenseAmountNotPositive,
		},
		{
			"due day out of range",
			models.Expense{Name: "f", Amount: decimal.NewFromInt(10), DueDay: 42, AccountID: account.ID},
			models.ErrObligationDayOutOfRange,
		},
		{
			"empty name",
			models.Expense{Amount: decimal.NewFromInt(10), DueDay: 1, AccountID: account.ID},
			models.ErrExpenseNameEmpty,
		},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			err := models.DB.Create(&tt.expense).Error
			assert.ErrorIs(t, err, tt.err, "Error is: %s", err)
		})
	}
}

func (suite *TestSuiteStandard) TestExpenseZeroOccurrences() {
	// An occurrence expense that never happens is valid, its amortized
	// cost is zero.
	account := suite.createTestAccount(models.Account{})

	err := models.DB.Create(&models.Expense{
		Name:      "Paused subscription",
		Amount:    decimal.NewFromInt(10),
		DueDay:    1,
		AccountID: account.ID,
		PlanType:  budget.PlanOccurrence,
	}).Error
	assert.Nil(suite.T(), err)
}

func (suite *TestSuiteStandard) TestExpenseIntegrity() {
	err := models.DB.Create(&models.Expense{Name: "Orphan", Amount: decimal.NewFromInt(10), DueDay: 1, AccountID: uuid.New()}).Error
	assert.ErrorIs(suite.T(), err, models.ErrResourceNotFound)
}

func (suite *TestSuiteStandard) TestExpenseUpdateAccount() {
	account := suite.createTestAccount(models.Account{})
	expense := suite.createTestExpense(models.Expense{AccountID: account.ID})

	err := models.DB.Model(&expense).Updates(models.Expense{AccountID: uuid.New()}).Error
	assert.ErrorIs(suite.T(), err, models.ErrResourceNotFound)
}

func (suite *TestSuiteStandard) TestExpenseMonthsRoundTrip() {
	account := suite.createTestAccount(models.Account{})

	expense := suite.createTestExpense(models.Expense{
		AccountID:      account.ID,
		PlanType:       budget.PlanSpecificMonths,
		SpecificMonths: types.Months{3, 9, 12},
	})

	var reloaded models.Expense
	err := models.DB.First(&reloaded, expense.ID).Error
	assert.Nil(suite.T(), err)
	assert.Equal(suite.T(), types.Months{3, 9, 12}, reloaded.SpecificMonths)
}
