package v1_test

import (
	"net/http"
	"testing"

	v1 "github.com/paycycle/backend/internal/controllers/v1"
	"github.com/paycycle/backend/internal/period"
	"github.com/paycycle/backend/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestCleanup() {
	account := createTestAccount(suite.T(), v1.AccountEditable{})
	_ = createTestBill(suite.T(), v1.BillEditable{AccountID: account.Data.ID})
	_ = createTestExpense(suite.T(), v1.ExpenseEditable{AccountID: account.Data.ID})
	_ = createTestPayday(suite.T(), v1.PaydayEditable{Type: period.TypeMonthly, PaycheckAmount: decimal.NewFromInt(1000)})
	_ = lockTestDistribution(suite.T(), v1.DistributionEditable{
		Amounts: []v1.LockedAllocationEditable{
			{AccountID: account.Data.ID, Amount: decimal.NewFromInt(1000)},
		},
	})

	tests := []string{
		"http://example.com/v1/accounts",
		"http://example.com/v1/bills",
		"http://example.com/v1/expenses",
	}

	// Delete
	recorder := test.Request(suite.T(), http.MethodDelete, "http://example.com/v1?confirm=yes-please-delete-everything", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)

	// Verify
	for _, tt := range tests {
		suite.T().Run(tt, func(t *testing.T) {
			recorder := test.Request(t, http.MethodGet, tt, "")
			test.AssertHTTPStatus(t, &recorder, http.StatusOK)

			var response struct {
				Data []any `json:"data"`
			}

			test.DecodeResponse(t, &recorder, &response)
			assert.Len(t, response.Data, 0, "There are resources left for type %s", tt)
		})
	}

	// The payday schedule is gone, too.
	recorder = test.Request(suite.T(), http.MethodGet, "http://example.com/v1/payday", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var payday v1.PaydayResponse
	test.DecodeResponse(suite.T(), &recorder, &payday)
	assert.Nil(suite.T(), payday.Data)

	recorder = test.Request(suite.T(), http.MethodGet, "http://example.com/v1/distribution", "")
	var distribution v1.DistributionListResponse
	test.DecodeResponse(suite.T(), &recorder, &distribution)
	assert.Len(suite.T(), distribution.Data, 0)
}

func (suite *TestSuiteStandard) TestCleanupFails() {
	tests := []struct {
		name string
		path string
	}{
		{"Wrong confirmation", "http://example.com/v1?confirm=on-second-thought-no"},
		{"No confirmation", "http://example.com/v1"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			recorder := test.Request(t, http.MethodDelete, tt.path, "")
			test.AssertHTTPStatus(t, &recorder, http.StatusBadRequest)
		})
	}
}

func (suite *TestSuiteStandard) TestCleanupDBError() {
	suite.CloseDB()

	recorder := test.Request(suite.T(), http.MethodDelete, "http://example.com/v1?confirm=yes-please-delete-everything", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusInternalServerError)
}
