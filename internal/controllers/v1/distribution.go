package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/paycycle/backend/internal/budget"
	"github.com/paycycle/backend/internal/httputil"
	"github.com/paycycle/backend/internal/models"
	"github.com/shopspring/decimal"
)

func RegisterDistributionRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", OptionsDistribution)
		r.GET("", GetDistribution)
		r.POST("", LockDistribution)
	}
	{
		r.OPTIONS("/:accountId", OptionsDistributionDetail)
		r.DELETE("/:accountId", UnlockDistribution)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Distribution
// @Success		204
// @Router			/v1/distribution [options]
func OptionsDistribution(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Distribution
// @Success		204
// @Failure		400			{object}	httpError
// @Failure		404			{object}	httpError
// @Failure		500			{object}	httpError
// @Param			accountId	path		URIAccountID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/distribution/{accountId} [options]
func OptionsDistributionDetail(c *gin.Context) {
	var uri URIAccountID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.First(&models.LockedAllocation{}, uri.AccountID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsDelete(c)
}

// @Summary		Get locked distribution
// @Description	Returns the locked custom distribution
// @Tags			Distribution
// @Produce		json
// @Success		200	{object}	DistributionListResponse
// @Failure		500	{object}	DistributionListResponse
// @Router			/v1/distribution [get]
func GetDistribution(c *gin.Context) {
	var allocations []models.LockedAllocation
	err := models.DB.Order("locked_allocations.account_id ASC").Find(&allocations).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), DistributionListResponse{
			Error: &s,
		})
		return
	}

	data := make([]LockedAllocation, 0, len(allocations))
	for _, allocation := range allocations {
		data = append(data, newLockedAllocation(c, allocation))
	}

	c.JSON(http.StatusOK, DistributionListResponse{Data: data})
}

// @Summary		Lock distribution
// @Description	Replaces the locked custom distribution. The amounts must sum to the paycheck within a tolerance of 0.01.
// @Tags			Distribution
// @Accept			json
// @Produce		json
// @Success		201				{object}	DistributionListResponse
// @Failure		400				{object}	DistributionListResponse
// @Failure		404				{object}	DistributionListResponse
// @Failure		500				{object}	DistributionListResponse
// @Param			distribution	body		DistributionEditable	true	"Distribution"
// @Router			/v1/distribution [post]
func LockDistribution(c *gin.Context) {
	var editable DistributionEditable

	err := httputil.BindData(c, &editable)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), DistributionListResponse{
			Error: &e,
		})
		return
	}

	if len(editable.Amounts) == 0 {
		e := errDistributionEmpty.Error()
		c.JSON(http.StatusBadRequest, DistributionListResponse{
			Error: &e,
		})
		return
	}

	// The lock target is the paycheck from the request. Without one,
	// fall back to the configured paycheck amount.
	var target decimal.Decimal
	if editable.Paycheck != nil {
		target = *editable.Paycheck
	} else {
		payday, err := models.ActivePayday(models.DB)
		if err != nil {
			e := err.Error()
			c.JSON(status(err), DistributionListResponse{
				Error: &e,
			})
			return
		}
		target = payday.PaycheckAmount
	}

	amounts := make([]decimal.Decimal, 0, len(editable.Amounts))
	for _, amount := range editable.Amounts {
		amounts = append(amounts, amount.Amount)
	}

	if err := budget.ValidateLock(target, amounts); err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, DistributionListResponse{
			Error: &e,
		})
		return
	}

	// The lock replaces any previous distribution
	tx := models.DB.Begin()

	err = tx.Unscoped().Where("true").Delete(&models.LockedAllocation{}).Error
	if err != nil {
		tx.Rollback()
		e := err.Error()
		c.JSON(status(err), DistributionListResponse{
			Error: &e,
		})
		return
	}

	data := make([]LockedAllocation, 0, len(editable.Amounts))
	for _, create := range editable.Amounts {
		allocation := create.model()
		err = tx.Create(&allocation).Error
		if err != nil {
			tx.Rollback()
			e := err.Error()
			c.JSON(status(err), DistributionListResponse{
				Error: &e,
			})
			return
		}

		data = append(data, newLockedAllocation(c, allocation))
	}

	tx.Commit()
	c.JSON(http.StatusCreated, DistributionListResponse{Data: data})
}

// @Summary		Unlock distribution amount
// @Description	Removes the locked amount for one account
// @Tags			Distribution
// @Success		204
// @Failure		400			{object}	httpError
// @Failure		404			{object}	httpError
// @Failure		500			{object}	httpError
// @Param			accountId	path		URIAccountID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/distribution/{accountId} [delete]
func UnlockDistribution(c *gin.Context) {
	var uri URIAccountID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	var allocation models.LockedAllocation
	err = models.DB.First(&allocation, uri.AccountID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.Delete(&allocation).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
