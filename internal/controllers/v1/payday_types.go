package v1

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/paycycle/backend/internal/models"
	"github.com/paycycle/backend/internal/period"
	"github.com/shopspring/decimal"
)

type PaydayEditable struct {
	Type           period.Type     `json:"type" example:"TWICE_MONTHLY" enums:"DAILY,WEEKLY,MONTHLY,TWICE_MONTHLY,SPECIFIC_DAY" default:"MONTHLY"`        // How often paychecks arrive
	Day            int             `json:"day" example:"25" minimum:"1" maximum:"31" default:"0"`                                                         // Day of month for SPECIFIC_DAY schedules
	PaycheckAmount decimal.Decimal `json:"paycheckAmount" example:"2400" minimum:"0" maximum:"999999999999.99999999" multipleOf:"0.00000001" default:"0"` // Expected paycheck per pay period
}

// model returns the database resource for the API representation of the editable fields
func (editable PaydayEditable) model() models.Payday {
	return models.Payday{
		Type:           editable.Type,
		Day:            editable.Day,
		PaycheckAmount: editable.PaycheckAmount,
	}
}

type PaydayLinks struct {
	Self string `json:"self" example:"https://example.com/api/v1/payday"` // The payday schedule
}

type Payday struct {
	models.DefaultModel
	PaydayEditable
	Links PaydayLinks `json:"links"`
}

// newPayday returns the API v1 representation of the resource
func newPayday(c *gin.Context, model models.Payday) Payday {
	url := c.GetString(string(models.DBContextURL))

	return Payday{
		DefaultModel: model.DefaultModel,
		PaydayEditable: PaydayEditable{
			Type:           model.Type,
			Day:            model.Day,
			PaycheckAmount: model.PaycheckAmount,
		},
		Links: PaydayLinks{
			Self: fmt.Sprintf("%s/v1/payday", url),
		},
	}
}

type PaydayResponse struct {
	Error *string `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  *Payday `json:"data"`                                                          // The payday schedule. Null when none is configured.
}
