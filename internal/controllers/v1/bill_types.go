package v1

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/paycycle/backend/internal/models"
	pc_uuid "github.com/paycycle/backend/internal/uuid"
	"github.com/shopspring/decimal"
)

type BillEditable struct {
	Name      string          `json:"name" example:"Rent" default:""`                                                                                // Name of the bill
	Amount    decimal.Decimal `json:"amount" example:"850" minimum:"0.00000001" maximum:"999999999999.99999999" multipleOf:"0.00000001" default:"0"` // What the bill costs every month
	DueDay    int             `json:"dueDay" example:"1" minimum:"1" maximum:"31"`                                                                   // Day of month the bill is due
	AccountID uuid.UUID       `json:"accountId" example:"af892e10-7e0a-4fb8-b1bc-4b6d88401ed2"`                                                      // The account the bill is paid from
}

// model returns the database resource for the API representation of the editable fields
func (editable BillEditable) model() models.Bill {
	return models.Bill{
		Name:      editable.Name,
		Amount:    editable.Amount,
		DueDay:    editable.DueDay,
		AccountID: editable.AccountID,
	}
}

type BillLinks struct {
	Self    string `json:"self" example:"https://example.com/api/v1/bills/438cc6c0-9baf-49fd-a75a-d76bd5cab19c"`       // The Bill itself
	Account string `json:"account" example:"https://example.com/api/v1/accounts/af892e10-7e0a-4fb8-b1bc-4b6d88401ed2"` // The account the bill is paid from
}

type Bill struct {
	models.DefaultModel
	BillEditable
	Links BillLinks `json:"links"`
}

// newBill returns the API v1 representation of the resource
func newBill(c *gin.Context, model models.Bill) Bill {
	url := c.GetString(string(models.DBContextURL))

	return Bill{
		DefaultModel: model.DefaultModel,
		BillEditable: BillEditable{
			Name:      model.Name,
			Amount:    model.Amount,
			DueDay:    model.DueDay,
			AccountID: model.AccountID,
		},
		Links: BillLinks{
			Self:    fmt.Sprintf("%s/v1/bills/%s", url, model.ID),
			Account: fmt.Sprintf("%s/v1/accounts/%s", url, model.AccountID),
		},
	}
}

type BillListResponse struct {
	Data       []Bill      `json:"data"`                                                          // List of resources
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type BillCreateResponse struct {
	Error *string        `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []BillResponse `json:"data"`                                                          // List of created resources
}

func (b *BillCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	b.Data = append(b.Data, BillResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type BillResponse struct {
	Error *string `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  *Bill   `json:"data"`                                                          // The resource
}

type BillQueryFilter struct {
	Name      string       `form:"name"`                       // By name
	AccountID pc_uuid.UUID `form:"account"`                    // By account ID
	DueDay    int          `form:"dueDay"`                     // By due day
	Offset    uint         `form:"offset" filterField:"false"` // The offset of the first bill returned. Defaults to 0.
	Limit     int          `form:"limit" filterField:"false"`  // Maximum number of bills to return. Defaults to 50.
}

func (f BillQueryFilter) model() models.Bill {
	return models.Bill{
		Name:      f.Name,
		AccountID: f.AccountID.UUID,
		DueDay:    f.DueDay,
	}
}
