package v1_test

import (
	"net/http"
	"testing"

	v1 "github.com/paycycle/backend/internal/controllers/v1"
	"github.com/paycycle/backend/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestImportGet() {
	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/import", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.ImportResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Equal(suite.T(), "http://example.com/v1/import/bills", response.Links.Bills)
}

func (suite *TestSuiteStandard) TestImportBills() {
	body, headers := test.LoadTestFile(suite.T(), "importer/bills/bills.csv")

	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/import/bills", body, headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)

	var response v1.BillListResponse
	test.DecodeResponse(suite.T(), &r, &response)
	require.Len(suite.T(), response.Data, 3)
	assert.Equal(suite.T(), "Rent", response.Data[0].Name)
	assert.True(suite.T(), response.Data[1].Amount.Equal(decimal.RequireFromString("78.50")))

	// Rent and Electricity share the Checking account created by the
	// import.
	assert.Equal(suite.T(), response.Data[0].AccountID, response.Data[1].AccountID)
	assert.NotEqual(suite.T(), response.Data[0].AccountID, response.Data[2].AccountID)

	list := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/accounts", "")
	var accounts v1.AccountListResponse
	test.DecodeResponse(suite.T(), &list, &accounts)
	assert.Len(suite.T(), accounts.Data, 2)
}

// TestImportBillsMatchesExistingAccounts verifies that existing accounts
// are matched, including wildcard patterns.
func (suite *TestSuiteStandard) TestImportBillsMatchesExistingAccounts() {
	checking := createTestAccount(suite.T(), v1.AccountEditable{Name: "Checking"})
	savings := createTestAccount(suite.T(), v1.AccountEditable{Name: "New Savings Account"})

	body, headers := test.LoadTestFile(suite.T(), "importer/bills/wildcard-accounts.csv")

	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/import/bills", body, headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)

	var response v1.BillListResponse
	test.DecodeResponse(suite.T(), &r, &response)
	require.Len(suite.T(), response.Data, 2)
	assert.Equal(suite.T(), checking.Data.ID, response.Data[0].AccountID)
	assert.Equal(suite.T(), savings.Data.ID, response.Data[1].AccountID)
}

// TestImportBillsErrors verifies that files with errors are rejected
// completely.
func (suite *TestSuiteStandard) TestImportBillsErrors() {
	tests := []struct {
		name    string
		file    string
		message string
	}{
		{"multiple errors", "importer/bills/error-multiple.csv", "error in line 2 of the CSV"},
		{"wrong header", "importer/bills/error-header.csv", "the first line must be the header"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			body, headers := test.LoadTestFile(t, tt.file)

			r := test.Request(t, http.MethodPost, "http://example.com/v1/import/bills", body, headers)
			test.AssertHTTPStatus(t, &r, http.StatusBadRequest)

			var response v1.BillListResponse
			test.DecodeResponse(t, &r, &response)
			require.NotNil(t, response.Error)
			assert.Contains(t, *response.Error, tt.message)

			// Nothing may be stored.
			list := test.Request(t, http.MethodGet, "http://example.com/v1/bills", "")
			var bills v1.BillListResponse
			test.DecodeResponse(t, &list, &bills)
			assert.Len(t, bills.Data, 0)
		})
	}
}

func (suite *TestSuiteStandard) TestImportBillsNoFile() {
	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/import/bills", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	var response v1.BillListResponse
	test.DecodeResponse(suite.T(), &r, &response)
	require.NotNil(suite.T(), response.Error)
	assert.Equal(suite.T(), "you must send a file to this endpoint", *response.Error)
}

func (suite *TestSuiteStandard) TestImportBillsWrongSuffix() {
	body, headers := test.LoadTestFile(suite.T(), "importer/bills/bills.txt")

	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/import/bills", body, headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	var response v1.BillListResponse
	test.DecodeResponse(suite.T(), &r, &response)
	require.NotNil(suite.T(), response.Error)
	assert.Contains(suite.T(), *response.Error, "this endpoint only supports files of the following types")
}
