package models_test

import (
	"github.com/google/uuid"
	"github.com/paycycle/backend/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestLockedAllocationIntegrity() {
	err := models.DB.Create(&models.LockedAllocation{AccountID: uuid.New(), Amount: decimal.NewFromInt(100)}).Error
	assert.ErrorIs(suite.T(), err, models.ErrResourceNotFound)
}

func (suite *TestSuiteStandard) TestLockedAllocationNegative() {
	account := suite.createTestAccount(models.Account{})

	err := models.DB.Create(&models.LockedAllocation{AccountID: account.ID, Amount: decimal.NewFromInt(-1)}).Error
	assert.ErrorIs(suite.T(), err, models.ErrLockedAllocationNegative)
}

func (suite *TestSuiteStandard) TestLockedAllocationUnique() {
	account := suite.createTestAccount(models.Account{})

	_ = suite.createTestLockedAllocation(models.LockedAllocation{AccountID: account.ID, Amount: decimal.NewFromInt(100)})

	err := models.DB.Create(&models.LockedAllocation{AccountID: account.ID, Amount: decimal.NewFromInt(200)}).Error
	assert.ErrorIs(suite.T(), err, models.ErrLockedAllocationExists)
}

func (suite *TestSuiteStandard) TestLockedAllocationZeroAllowed() {
	account := suite.createTestAccount(models.Account{})

	allocation := suite.createTestLockedAllocation(models.LockedAllocation{AccountID: account.ID})
	assert.True(suite.T(), allocation.Amount.IsZero())
}
