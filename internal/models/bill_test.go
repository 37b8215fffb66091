package models_test

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/paycycle/backend/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func (suite *TestSuiteStandard) TestBillAfterSave() {
	tests := []struct {
		name   string
		amount decimal.Decimal
		dueDay int
		err    error
	}{
		{"valid", decimal.NewFromFloat(750), 15, nil},
		{"negative amount", decimal.NewFromFloat(-10), 15, models.ErrBillAmountNotPositive},
		{"zero amount", decimal.Zero, 15, models.ErrBillAmountNotPositive},
		{"due day zero", decimal.NewFromFloat(750), 0, models.ErrObligationDayOutOfRange},
		{"due day too large", decimal.NewFromFloat(750), 32, models.ErrObligationDayOutOfRange},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			b := models.Bill{
				Amount: tt.amount,
				DueDay: tt.dueDay,
			}

			err := b.AfterSave(&gorm.DB{})
			assert.Equal(t, tt.err, err)
		})
	}
}

func (suite *TestSuiteStandard) TestBillTrimWhitespace() {
	account := suite.createTestAccount(models.Account{})

	name := "  Rent \t"
	bill := suite.createTestBill(models.Bill{Name: name, AccountID: account.ID})

	assert.Equal(suite.T(), strings.TrimSpace(name), bill.Name)
}

func (suite *TestSuiteStandard) TestBillNameEmpty() {
	account := suite.createTestAccount(models.Account{})

	err := models.DB.Create(&models.Bill{Amount: decimal.NewFromInt(100), DueDay: 1, AccountID: account.ID}).Error
	assert.ErrorIs(suite.T(), err, models.ErrBillNameEmpty)
}

func (suite *TestSuiteStandard) TestBillIntegrity() {
	err := models.DB.Create(&models.Bill{Name: "Orphan", Amount: decimal.NewFromInt(100), DueDay: 1, AccountID: uuid.New()}).Error
	assert.ErrorIs(suite.T(), err, models.ErrResourceNotFound)
}

func (suite *TestSuiteStandard) TestBillUpdateAccount() {
	account := suite.createTestAccount(models.Account{})
	bill := suite.createTestBill(models.Bill{AccountID: account.ID})

	tests := []struct {
		name      string
		accountID uuid.UUID
		err       error
	}{
		{
			"Valid account ID",
			suite.createTestAccount(models.Account{}).ID,
			nil,
		},
		{
			"Invalid account ID",
			uuid.New(),
			models.ErrResourceNotFound,
		},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			update := models.Bill{
				AccountID: tt.accountID,
			}
			err := models.DB.Model(&bill).Updates(update).Error
			assert.ErrorIs(t, err, tt.err, "Error is: %s", err)
		})
	}
}
