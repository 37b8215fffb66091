package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/paycycle/backend/internal/httputil"
	"github.com/paycycle/backend/internal/models"
)

func RegisterPaydayRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", OptionsPayday)
		r.GET("", GetPayday)
		r.POST("", CreatePayday)
		r.PATCH("", UpdatePayday)
		r.DELETE("", DeletePayday)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Payday
// @Success		204
// @Router			/v1/payday [options]
func OptionsPayday(c *gin.Context) {
	httputil.OptionsGetPostPatchDelete(c)
}

// @Summary		Get payday schedule
// @Description	Returns the payday schedule. The data field is null when no schedule is configured.
// @Tags			Payday
// @Produce		json
// @Success		200	{object}	PaydayResponse
// @Failure		500	{object}	PaydayResponse
// @Router			/v1/payday [get]
func GetPayday(c *gin.Context) {
	var payday models.Payday
	err := models.DB.First(&payday).Error
	if err != nil {
		// An unconfigured schedule is not an error
		if errors.Is(err, models.ErrResourceNotFound) {
			c.JSON(http.StatusOK, PaydayResponse{})
			return
		}

		e := err.Error()
		c.JSON(status(err), PaydayResponse{
			Error: &e,
		})
		return
	}

	apiResource := newPayday(c, payday)
	c.JSON(http.StatusOK, PaydayResponse{Data: &apiResource})
}

// @Summary		Create payday schedule
// @Description	Configures the payday schedule. Only one schedule can exist.
// @Tags			Payday
// @Accept			json
// @Produce		json
// @Success		201		{object}	PaydayResponse
// @Failure		400		{object}	PaydayResponse
// @Failure		500		{object}	PaydayResponse
// @Param			payday	body		PaydayEditable	true	"Payday schedule"
// @Router			/v1/payday [post]
func CreatePayday(c *gin.Context) {
	var editable PaydayEditable

	err := httputil.BindData(c, &editable)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), PaydayResponse{
			Error: &e,
		})
		return
	}

	payday := editable.model()
	err = models.DB.Create(&payday).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), PaydayResponse{
			Error: &e,
		})
		return
	}

	apiResource := newPayday(c, payday)
	c.JSON(http.StatusCreated, PaydayResponse{Data: &apiResource})
}

// @Summary		Update payday schedule
// @Description	Updates the payday schedule. Only values to be updated need to be specified.
// @Tags			Payday
// @Accept			json
// @Produce		json
// @Success		200		{object}	PaydayResponse
// @Failure		400		{object}	PaydayResponse
// @Failure		404		{object}	PaydayResponse
// @Failure		500		{object}	PaydayResponse
// @Param			payday	body		PaydayEditable	true	"Payday schedule"
// @Router			/v1/payday [patch]
func UpdatePayday(c *gin.Context) {
	var payday models.Payday
	err := models.DB.First(&payday).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), PaydayResponse{
			Error: &e,
		})
		return
	}

	// Get the fields that are set to be updated
	updateFields, err := httputil.GetBodyFields(c, PaydayEditable{})
	if err != nil {
		e := err.Error()
		c.JSON(status(err), PaydayResponse{
			Error: &e,
		})
		return
	}

	// Bind the data for the patch
	var data PaydayEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), PaydayResponse{
			Error: &e,
		})
		return
	}

	err = models.DB.Model(&payday).Select("", updateFields...).Updates(data.model()).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), PaydayResponse{
			Error: &e,
		})
		return
	}

	apiResource := newPayday(c, payday)
	c.JSON(http.StatusOK, PaydayResponse{Data: &apiResource})
}

// @Summary		Delete payday schedule
// @Description	Removes the payday schedule. The monthly default is used afterwards.
// @Tags			Payday
// @Success		204
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Router			/v1/payday [delete]
func DeletePayday(c *gin.Context) {
	var payday models.Payday
	err := models.DB.First(&payday).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.Delete(&payday).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
