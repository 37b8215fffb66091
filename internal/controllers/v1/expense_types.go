package v1

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/paycycle/backend/internal/budget"
	"github.com/paycycle/backend/internal/models"
	"github.com/paycycle/backend/internal/types"
	pc_uuid "github.com/paycycle/backend/internal/uuid"
	"github.com/shopspring/decimal"
)

type ExpenseEditable struct {
	Name           string          `json:"name" example:"Car insurance" default:""`                                                                       // Name of the expense
	Amount         decimal.Decimal `json:"amount" example:"120" minimum:"0.00000001" maximum:"999999999999.99999999" multipleOf:"0.00000001" default:"0"` // What the expense costs when it is due
	DueDay         int             `json:"dueDay" example:"15" minimum:"1" maximum:"31"`                                                                  // Day of month the expense is due
	AccountID      uuid.UUID       `json:"accountId" example:"af892e10-7e0a-4fb8-b1bc-4b6d88401ed2"`                                                      // The account the expense is paid from
	PlanType       budget.PlanType `json:"planType" example:"OCCURRENCE" enums:"ONE_TIME,OCCURRENCE,SPECIFIC_MONTHS" default:"ONE_TIME"`                  // How the expense recurs
	Occurrences    int             `json:"occurrences" example:"4" default:"0"`                                                                           // Times per year, for OCCURRENCE expenses
	SpecificMonths types.Months    `json:"specificMonths" example:"3,6,9,12" swaggertype:"array,integer"`                                                 // Months the expense is due in, for SPECIFIC_MONTHS expenses
}

// model returns the database resource for the API representation of the editable fields
func (editable ExpenseEditable) model() models.Expense {
	return models.Expense{
		Name:           editable.Name,
		Amount:         editable.Amount,
		DueDay:         editable.DueDay,
		AccountID:      editable.AccountID,
		PlanType:       editable.PlanType,
		Occurrences:    editable.Occurrences,
		SpecificMonths: editable.SpecificMonths,
	}
}

type ExpenseLinks struct {
	Self    string `json:"self" example:"https://example.com/api/v1/expenses/438cc6c0-9baf-49fd-a75a-d76bd5cab19c"`    // The Expense itself
	Account string `json:"account" example:"https://example.com/api/v1/accounts/af892e10-7e0a-4fb8-b1bc-4b6d88401ed2"` // The account the expense is paid from
}

type Expense struct {
	models.DefaultModel
	ExpenseEditable
	Links ExpenseLinks `json:"links"`
}

// newExpense returns the API v1 representation of the resource
func newExpense(c *gin.Context, model models.Expense) Expense {
	url := c.GetString(string(models.DBContextURL))

	return Expense{
		DefaultModel: model.DefaultModel,
		ExpenseEditable: ExpenseEditable{
			Name:           model.Name,
			Amount:         model.Amount,
			DueDay:         model.DueDay,
			AccountID:      model.AccountID,
			PlanType:       model.PlanType,
			Occurrences:    model.Occurrences,
			SpecificMonths: model.SpecificMonths,
		},
		Links: ExpenseLinks{
			Self:    fmt.Sprintf("%s/v1/expenses/%s", url, model.ID),
			Account: fmt.Sprintf("%s/v1/accounts/%s", url, model.AccountID),
		},
	}
}

type ExpenseListResponse struct {
	Data       []Expense   `json:"data"`                                                          // List of resources
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type ExpenseCreateResponse struct {
	Error *string           `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []ExpenseResponse `json:"data"`                                                          // List of created resources
}

func (e *ExpenseCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	e.Data = append(e.Data, ExpenseResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type ExpenseResponse struct {
	Error *string  `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  *Expense `json:"data"`                                                          // The resource
}

type ExpenseQueryFilter struct {
	Name      string          `form:"name"`                       // By name
	AccountID pc_uuid.UUID    `form:"account"`                    // By account ID
	PlanType  budget.PlanType `form:"planType"`                   // By plan type
	Offset    uint            `form:"offset" filterField:"false"` // The offset of the first expense returned. Defaults to 0.
	Limit     int             `form:"limit" filterField:"false"`  // Maximum number of expenses to return. Defaults to 50.
}

func (f ExpenseQueryFilter) model() models.Expense {
	return models.Expense{
		Name:      f.Name,
		AccountID: f.AccountID.UUID,
		PlanType:  f.PlanType,
	}
}
