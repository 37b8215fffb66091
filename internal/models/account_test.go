package models_test

import (
	"strings"
	"testing"

	"github.com/paycycle/backend/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestAccountTrimWhitespace() {
	name := "  There is whitespace here  \t"

	account := suite.createTestAccount(models.Account{Name: name})

	assert.Equal(suite.T(), strings.TrimSpace(name), account.Name)
}

func (suite *TestSuiteStandard) TestAccountNameEmpty() {
	tests := []struct {
		name        string
		accountName string
	}{
		{"empty", ""},
		{"only whitespace", "  \t "},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			err := models.DB.Create(&models.Account{Name: tt.accountName}).Error
			assert.ErrorIs(t, err, models.ErrAccountNameEmpty)
		})
	}
}

func (suite *TestSuiteStandard) TestAccountNameUnique() {
	_ = suite.createTestAccount(models.Account{Name: "Checking"})

	err := models.DB.Create(&models.Account{Name: "Checking"}).Error
	assert.ErrorIs(suite.T(), err, models.ErrAccountNameNotUnique)
}

func (suite *TestSuiteStandard) TestAccountNilBalance() {
	account := suite.createTestAccount(models.Account{Name: "Untracked"})

	var reloaded models.Account
	err := models.DB.First(&reloaded, account.ID).Error
	assert.Nil(suite.T(), err)
	assert.Nil(suite.T(), reloaded.Balance, "Balance is %v, want nil", reloaded.Balance)
}

func (suite *TestSuiteStandard) TestAccountBills() {
	balance := decimal.NewFromInt(1000)
	account := suite.createTestAccount(models.Account{Balance: &balance})
	other := suite.createTestAccount(models.Account{})

	_ = suite.createTestBill(models.Bill{AccountID: account.ID})
	_ = suite.createTestBill(models.Bill{AccountID: account.ID})
	_ = suite.createTestBill(models.Bill{AccountID: other.ID})

	assert.Len(suite.T(), account.Bills(models.DB), 2)
	assert.Len(suite.T(), other.Bills(models.DB), 1)
}

func (suite *TestSuiteStandard) TestAccountExpenses() {
	account := suite.createTestAccount(models.Account{})

	_ = suite.createTestExpense(models.Expense{AccountID: account.ID})

	assert.Len(suite.T(), account.Expenses(models.DB), 1)
}
