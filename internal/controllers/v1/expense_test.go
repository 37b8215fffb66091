package v1_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/paycycle/backend/internal/budget"
	v1 "github.com/paycycle/backend/internal/controllers/v1"
	"github.com/paycycle/backend/internal/models"
	"github.com/paycycle/backend/internal/types"
	"github.com/paycycle/backend/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestExpense(t *testing.T, e v1.ExpenseEditable, expectedStatus ...int) v1.ExpenseResponse {
	if e.AccountID == uuid.Nil {
		e.AccountID = createTestAccount(t, v1.AccountEditable{}).Data.ID
	}

	if e.Name == "" {
		e.Name = uuid.NewString()
	}
	if e.Amount.IsZero() {
		e.Amount = decimal.NewFromInt(50)
	}
	if e.DueDay == 0 {
		e.DueDay = 1
	}

	if len(expectedStatus) == 0 {
		expectedStatus = append(expectedStatus, http.StatusCreated)
	}

	body := []v1.ExpenseEditable{e}

	r := test.Request(t, http.MethodPost, "http://example.com/v1/expenses", body)
	test.AssertHTTPStatus(t, &r, expectedStatus...)

	var expense v1.ExpenseCreateResponse
	test.DecodeResponse(t, &r, &expense)

	if r.Code == http.StatusCreated {
		return expense.Data[0]
	}

	return v1.ExpenseResponse{}
}

// TestExpensesOptions verifies that OPTIONS requests are handled correctly.
func (suite *TestSuiteStandard) TestExpensesOptions() {
	tests := []struct {
		name   string
		id     string
		status int
	}{
		{"No Expense with this ID", uuid.New().String(), http.StatusNotFound},
		{"Not a valid UUID", "NotParseableAsUUID", http.StatusBadRequest},
		{"Expense exists", createTestExpense(suite.T(), v1.ExpenseEditable{}).Data.ID.String(), http.StatusNoContent},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			path := fmt.Sprintf("%s/%s", "http://example.com/v1/expenses", tt.id)
			r := test.Request(t, http.MethodOptions, path, "")
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}
}

func (suite *TestSuiteStandard) TestExpensesCreate() {
	e := createTestExpense(suite.T(), v1.ExpenseEditable{
		Name:        "Oil change",
		Amount:      decimal.NewFromInt(120),
		DueDay:      15,
		PlanType:    budget.PlanOccurrence,
		Occurrences: 4,
	})

	assert.Equal(suite.T(), "Oil change", e.Data.Name)
	assert.Equal(suite.T(), budget.PlanOccurrence, e.Data.PlanType)
	assert.Equal(suite.T(), 4, e.Data.Occurrences)
}

// TestExpensesCreateDefaultsPlan verifies that an expense without a plan
// type is stored as a one-time expense.
func (suite *TestSuiteStandard) TestExpensesCreateDefaultsPlan() {
	e := createTestExpense(suite.T(), v1.ExpenseEditable{})

	assert.Equal(suite.T(), budget.PlanOneTime, e.Data.PlanType)
}

func (suite *TestSuiteStandard) TestExpensesCreateErrors() {
	account := createTestAccount(suite.T(), v1.AccountEditable{})

	tests := []struct {
		name    string
		expense v1.ExpenseEditable
		status  int
		err     error
	}{
		{
			"missing account",
			v1.ExpenseEditable{Name: "a", Amount: decimal.NewFromInt(10), DueDay: 1, AccountID: uuid.New()},
			http.StatusNotFound,
			models.ErrResourceNotFound,
		},
		{
			"unknown plan type",
			v1.ExpenseEditable{Name: "b", Amount: decimal.NewFromInt(10), DueDay: 1, AccountID: account.Data.ID, PlanType: "WEEKLY"},
			http.StatusBadRequest,
			models.ErrExpensePlanInvalid,
		},
		{
			"negative occurrences",
			v1.ExpenseEditable{Name: "c", Amount: decimal.NewFromInt(10), DueDay: 1, AccountID: account.Data.ID, PlanType: budget.PlanOccurrence, Occurrences: -1},
			http.StatusBadRequest,
			models.ErrExpenseOccurrencesNegative,
		},
		{
			"specific months without months",
			v1.ExpenseEditable{Name: "d", Amount: decimal.NewFromInt(10), DueDay: 1, AccountID: account.Data.ID, PlanType: budget.PlanSpecificMonths},
			http.StatusBadRequest,
			models.ErrExpenseMonthsEmpty,
		},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPost, "http://example.com/v1/expenses", []v1.ExpenseEditable{tt.expense})
			test.AssertHTTPStatus(t, &r, tt.status)

			var response v1.ExpenseCreateResponse
			test.DecodeResponse(t, &r, &response)
			require.Len(t, response.Data, 1)
			require.NotNil(t, response.Data[0].Error)
			assert.Contains(t, *response.Data[0].Error, tt.err.Error())
		})
	}
}

func (suite *TestSuiteStandard) TestExpensesGetFilter() {
	a1 := createTestAccount(suite.T(), v1.AccountEditable{})
	a2 := createTestAccount(suite.T(), v1.AccountEditable{})

	_ = createTestExpense(suite.T(), v1.ExpenseEditable{Name: "Concert", AccountID: a1.Data.ID})
	_ = createTestExpense(suite.T(), v1.ExpenseEditable{Name: "Oil change", AccountID: a1.Data.ID, PlanType: budget.PlanOccurrence, Occurrences: 4})
	_ = createTestExpense(suite.T(), v1.ExpenseEditable{Name: "Insurance", AccountID: a2.Data.ID, PlanType: budget.PlanSpecificMonths, SpecificMonths: types.Months{6}})

	tests := []struct {
		name  string
		query string
		len   int
	}{
		{"all expenses", "", 3},
		{"by name", "name=Concert", 1},
		{"by account", fmt.Sprintf("account=%s", a1.Data.ID), 2},
		{"by plan type", "planType=OCCURRENCE", 1},
		{"no match", "planType=SPECIFIC_MONTHS&name=Concert", 0},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/expenses?%s", tt.query), "")
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var response v1.ExpenseListResponse
			test.DecodeResponse(t, &r, &response)
			assert.Len(t, response.Data, tt.len)
		})
	}
}

func (suite *TestSuiteStandard) TestExpensesUpdatePlanType() {
	e := createTestExpense(suite.T(), v1.ExpenseEditable{
		PlanType:    budget.PlanOccurrence,
		Occurrences: 4,
	})

	r := test.Request(suite.T(), http.MethodPatch, e.Data.Links.Self, map[string]any{
		"planType":       "SPECIFIC_MONTHS",
		"specificMonths": []int{3, 9},
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var updated v1.ExpenseResponse
	test.DecodeResponse(suite.T(), &r, &updated)

	assert.Equal(suite.T(), budget.PlanSpecificMonths, updated.Data.PlanType)
	assert.Equal(suite.T(), types.Months{3, 9}, updated.Data.SpecificMonths)
}

func (suite *TestSuiteStandard) TestExpensesDelete() {
	e := createTestExpense(suite.T(), v1.ExpenseEditable{})

	r := test.Request(suite.T(), http.MethodDelete, e.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = test.Request(suite.T(), http.MethodGet, e.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}
