package v1

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/paycycle/backend/internal/models"
	"github.com/shopspring/decimal"
)

type AccountEditable struct {
	Name    string           `json:"name" example:"Checking" default:""`                // Name of the account
	Balance *decimal.Decimal `json:"balance" example:"2735.17" extensions:"x-nullable"` // Current balance. Set to null to disable balance tracking.
}

// model returns the database resource for the API representation of the editable fields
func (editable AccountEditable) model() models.Account {
	return models.Account{
		Name:    editable.Name,
		Balance: editable.Balance,
	}
}

type AccountLinks struct {
	Self     string `json:"self" example:"https://example.com/api/v1/accounts/af892e10-7e0a-4fb8-b1bc-4b6d88401ed2"`             // The Account itself
	Bills    string `json:"bills" example:"https://example.com/api/v1/bills?account=af892e10-7e0a-4fb8-b1bc-4b6d88401ed2"`       // Bills paid from this account
	Expenses string `json:"expenses" example:"https://example.com/api/v1/expenses?account=af892e10-7e0a-4fb8-b1bc-4b6d88401ed2"` // Expenses paid from this account
}

type Account struct {
	models.DefaultModel
	AccountEditable
	Links AccountLinks `json:"links"`
}

// newAccount returns the API v1 representation of the resource
func newAccount(c *gin.Context, model models.Account) Account {
	url := c.GetString(string(models.DBContextURL))

	return Account{
		DefaultModel: model.DefaultModel,
		AccountEditable: AccountEditable{
			Name:    model.Name,
			Balance: model.Balance,
		},
		Links: AccountLinks{
			Self:     fmt.Sprintf("%s/v1/accounts/%s", url, model.ID),
			Bills:    fmt.Sprintf("%s/v1/bills?account=%s", url, model.ID),
			Expenses: fmt.Sprintf("%s/v1/expenses?account=%s", url, model.ID),
		},
	}
}

type AccountListResponse struct {
	Data       []Account   `json:"data"`                                                          // List of resources
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type AccountCreateResponse struct {
	Error *string           `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []AccountResponse `json:"data"`                                                          // List of created resources
}

func (a *AccountCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	a.Data = append(a.Data, AccountResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type AccountResponse struct {
	Error *string  `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  *Account `json:"data"`                                                          // The resource
}

type AccountQueryFilter struct {
	Name   string `form:"name"`                       // By name
	Offset uint   `form:"offset" filterField:"false"` // The offset of the first account returned. Defaults to 0.
	Limit  int    `form:"limit" filterField:"false"`  // Maximum number of accounts to return. Defaults to 50.
}

func (f AccountQueryFilter) model() models.Account {
	return models.Account{
		Name: f.Name,
	}
}
