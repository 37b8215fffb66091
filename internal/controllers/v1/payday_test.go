package v1_test

import (
	"net/http"
	"testing"

	v1 "github.com/paycycle/backend/internal/controllers/v1"
	"github.com/paycycle/backend/internal/models"
	"github.com/paycycle/backend/internal/period"
	"github.com/paycycle/backend/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestPayday(t *testing.T, p v1.PaydayEditable, expectedStatus ...int) v1.PaydayResponse {
	if len(expectedStatus) == 0 {
		expectedStatus = append(expectedStatus, http.StatusCreated)
	}

	r := test.Request(t, http.MethodPost, "http://example.com/v1/payday", p)
	test.AssertHTTPStatus(t, &r, expectedStatus...)

	var payday v1.PaydayResponse
	test.DecodeResponse(t, &r, &payday)

	return payday
}

func (suite *TestSuiteStandard) TestPaydayOptions() {
	r := test.Request(suite.T(), http.MethodOptions, "http://example.com/v1/payday", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	assert.Equal(suite.T(), "OPTIONS, GET, POST, PATCH, DELETE", r.Header().Get("allow"))
}

// TestPaydayGetUnconfigured verifies that an unconfigured schedule is
// not an error.
func (suite *TestSuiteStandard) TestPaydayGetUnconfigured() {
	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/payday", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.PaydayResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Nil(suite.T(), response.Error)
	assert.Nil(suite.T(), response.Data)
}

func (suite *TestSuiteStandard) TestPaydayCreate() {
	p := createTestPayday(suite.T(), v1.PaydayEditable{
		Type:           period.TypeSpecificDay,
		Day:            25,
		PaycheckAmount: decimal.NewFromInt(2400),
	})

	require.NotNil(suite.T(), p.Data)
	assert.Equal(suite.T(), period.TypeSpecificDay, p.Data.Type)
	assert.Equal(suite.T(), 25, p.Data.Day)
	assert.Equal(suite.T(), "http://example.com/v1/payday", p.Data.Links.Self)

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/payday", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.PaydayResponse
	test.DecodeResponse(suite.T(), &r, &response)
	require.NotNil(suite.T(), response.Data)
	assert.Equal(suite.T(), p.Data.ID, response.Data.ID)
}

// TestPaydayCreateTwice verifies that only one schedule can exist.
func (suite *TestSuiteStandard) TestPaydayCreateTwice() {
	_ = createTestPayday(suite.T(), v1.PaydayEditable{Type: period.TypeMonthly})

	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/payday", v1.PaydayEditable{Type: period.TypeWeekly})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	var response v1.PaydayResponse
	test.DecodeResponse(suite.T(), &r, &response)
	require.NotNil(suite.T(), response.Error)
	assert.Equal(suite.T(), models.ErrPaydayExists.Error(), *response.Error)
}

func (suite *TestSuiteStandard) TestPaydayCreateErrors() {
	tests := []struct {
		name   string
		payday v1.PaydayEditable
		err    error
	}{
		{"unknown type", v1.PaydayEditable{Type: "FORTNIGHTLY"}, period.ErrTypeInvalid},
		{"specific day without day", v1.PaydayEditable{Type: period.TypeSpecificDay}, models.ErrPaydayDayOutOfRange},
		{"negative paycheck", v1.PaydayEditable{Type: period.TypeMonthly, PaycheckAmount: decimal.NewFromInt(-1)}, models.ErrPaycheckAmountNegative},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPost, "http://example.com/v1/payday", tt.payday)
			test.AssertHTTPStatus(t, &r, http.StatusBadRequest)

			var response v1.PaydayResponse
			test.DecodeResponse(t, &r, &response)
			require.NotNil(t, response.Error)
			assert.Equal(t, tt.err.Error(), *response.Error)
		})
	}
}

func (suite *TestSuiteStandard) TestPaydayUpdate() {
	_ = createTestPayday(suite.T(), v1.PaydayEditable{Type: period.TypeMonthly, PaycheckAmount: decimal.NewFromInt(2000)})

	r := test.Request(suite.T(), http.MethodPatch, "http://example.com/v1/payday", map[string]any{
		"paycheckAmount": "2400",
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.PaydayResponse
	test.DecodeResponse(suite.T(), &r, &response)
	require.NotNil(suite.T(), response.Data)
	assert.True(suite.T(), response.Data.PaycheckAmount.Equal(decimal.NewFromInt(2400)))
	assert.Equal(suite.T(), period.TypeMonthly, response.Data.Type)
}

// TestPaydayUpdateUnconfigured verifies that a schedule needs to exist
// before it can be updated.
func (suite *TestSuiteStandard) TestPaydayUpdateUnconfigured() {
	r := test.Request(suite.T(), http.MethodPatch, "http://example.com/v1/payday", map[string]any{
		"day": 25,
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestPaydayDelete() {
	_ = createTestPayday(suite.T(), v1.PaydayEditable{Type: period.TypeMonthly})

	r := test.Request(suite.T(), http.MethodDelete, "http://example.com/v1/payday", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = test.Request(suite.T(), http.MethodGet, "http://example.com/v1/payday", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.PaydayResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Nil(suite.T(), response.Data)

	r = test.Request(suite.T(), http.MethodDelete, "http://example.com/v1/payday", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}
