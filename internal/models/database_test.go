package models_test

import (
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/paycycle/backend/internal/models"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestConnectInvalidPath() {
	// sqlite does not create missing directories.
	err := models.Connect(filepath.Join(suite.T().TempDir(), "missing", "db.sqlite"))
	assert.NotNil(suite.T(), err)
}

func (suite *TestSuiteStandard) TestResourceNotFoundNaming() {
	tests := []struct {
		name    string
		message string
		err     error
	}{
		{
			"account",
			"there is no account matching your query",
			models.DB.First(&models.Account{}, uuid.New()).Error,
		},
		{
			"locked allocation",
			"there is no locked allocation matching your query",
			models.DB.First(&models.LockedAllocation{}, "account_id = ?", uuid.New()).Error,
		},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, tt.err, models.ErrResourceNotFound)
			assert.Equal(t, tt.message, tt.err.Error())
		})
	}
}

func (suite *TestSuiteStandard) TestDatabaseClosedGeneralError() {
	suite.CloseDB()

	err := models.DB.Create(&models.Account{Name: "Checking"}).Error
	assert.ErrorIs(suite.T(), err, models.ErrGeneral)
}
