package v1

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/paycycle/backend/internal/models"
	pc_uuid "github.com/paycycle/backend/internal/uuid"
	"github.com/shopspring/decimal"
)

type URIAccountID struct {
	AccountID pc_uuid.UUID `uri:"accountId" binding:"required" format:"UUID"` // ID of the account
}

type LockedAllocationEditable struct {
	AccountID uuid.UUID       `json:"accountId" example:"af892e10-7e0a-4fb8-b1bc-4b6d88401ed2"`                                              // The account the amount is locked for
	Amount    decimal.Decimal `json:"amount" example:"1200" minimum:"0" maximum:"999999999999.99999999" multipleOf:"0.00000001" default:"0"` // The locked amount
}

// model returns the database resource for the API representation of the editable fields
func (editable LockedAllocationEditable) model() models.LockedAllocation {
	return models.LockedAllocation{
		AccountID: editable.AccountID,
		Amount:    editable.Amount,
	}
}

type LockedAllocationLinks struct {
	Self    string `json:"self" example:"https://example.com/api/v1/distribution/af892e10-7e0a-4fb8-b1bc-4b6d88401ed2"` // The locked amount itself
	Account string `json:"account" example:"https://example.com/api/v1/accounts/af892e10-7e0a-4fb8-b1bc-4b6d88401ed2"`  // The account the amount is locked for
}

type LockedAllocation struct {
	LockedAllocationEditable
	Timestamps models.Timestamps     `json:"timestamps"`
	Links      LockedAllocationLinks `json:"links"`
}

// newLockedAllocation returns the API v1 representation of the resource
func newLockedAllocation(c *gin.Context, model models.LockedAllocation) LockedAllocation {
	url := c.GetString(string(models.DBContextURL))

	return LockedAllocation{
		LockedAllocationEditable: LockedAllocationEditable{
			AccountID: model.AccountID,
			Amount:    model.Amount,
		},
		Timestamps: model.Timestamps,
		Links: LockedAllocationLinks{
			Self:    fmt.Sprintf("%s/v1/distribution/%s", url, model.AccountID),
			Account: fmt.Sprintf("%s/v1/accounts/%s", url, model.AccountID),
		},
	}
}

// DistributionEditable is a complete custom distribution to lock.
type DistributionEditable struct {
	// The paycheck the distribution is locked against. When unset, the
	// paycheck amount of the payday schedule is used.
	Paycheck *decimal.Decimal `json:"paycheck" example:"2400" extensions:"x-nullable"`

	// The per-account amounts. They must sum to the paycheck.
	Amounts []LockedAllocationEditable `json:"amounts"`
}

type DistributionListResponse struct {
	Data  []LockedAllocation `json:"data"`                                                                    // List of locked amounts
	Error *string            `json:"error" example:"the distribution does not add up to the paycheck amount"` // The error, if any occurred
}
