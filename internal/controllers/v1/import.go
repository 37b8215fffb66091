package v1

import (
	"fmt"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/paycycle/backend/internal/httputil"
	"github.com/paycycle/backend/internal/importer"
	"github.com/paycycle/backend/internal/importer/parser/billcsv"
	"github.com/paycycle/backend/internal/models"
)

// RegisterImportRoutes registers the routes for imports.
func RegisterImportRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", OptionsImport)
		r.GET("", GetImport)

		r.OPTIONS("/bills", OptionsImportBills)
		r.POST("/bills", ImportBills)
	}
}

// getUploadedFile returns the form file and handles potential errors.
func getUploadedFile(c *gin.Context, suffix string) (multipart.File, error) {
	formFile, err := c.FormFile("file")
	if formFile == nil {
		return nil, errNoFilePost
	}

	if err != nil {
		return nil, err
	}

	if !strings.HasSuffix(formFile.Filename, suffix) {
		return nil, fmt.Errorf("%w: %s", errWrongFileSuffix, suffix)
	}

	f, err := formFile.Open()
	if err != nil {
		return nil, err
	}

	return f, nil
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs.
// @Tags			Import
// @Success		204
// @Router			/v1/import [options]
func OptionsImport(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Import
// @Success		204
// @Router			/v1/import/bills [options]
func OptionsImportBills(c *gin.Context) {
	httputil.OptionsPost(c)
}

type ImportResponse struct {
	Links ImportLinks `json:"links"` // Links for the import API
}

type ImportLinks struct {
	Bills string `json:"bills" example:"https://example.com/api/v1/import/bills"` // URL of the bill import endpoint
}

// @Summary		Import API overview
// @Description	Returns general information about the import API
// @Tags			Import
// @Success		200	{object}	ImportResponse
// @Router			/v1/import [get]
func GetImport(c *gin.Context) {
	c.JSON(http.StatusOK, ImportResponse{
		Links: ImportLinks{
			Bills: c.GetString(string(models.DBContextURL)) + "/v1/import/bills",
		},
	})
}

// @Summary		Import bills
// @Description	Imports bills from a CSV file. Accounts named in the file are created when they do not exist. If any line contains an error, nothing is imported.
// @Tags			Import
// @Accept			multipart/form-data
// @Produce		json
// @Success		201		{object}	BillListResponse
// @Failure		400		{object}	BillListResponse
// @Failure		500		{object}	BillListResponse
// @Param			file	formData	file	true	"File to import"
// @Router			/v1/import/bills [post]
func ImportBills(c *gin.Context) {
	f, err := getUploadedFile(c, ".csv")
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BillListResponse{
			Error: &s,
		})
		return
	}

	// billcsv.Parse returns a usable error already, no parsing necessary
	previews, err := billcsv.Parse(f)
	if err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, BillListResponse{
			Error: &s,
		})
		return
	}

	bills, err := importer.Create(models.DB, previews)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BillListResponse{
			Error: &s,
		})
		return
	}

	// Transform resources to their API representation
	data := make([]Bill, 0, len(bills))
	for _, bill := range bills {
		data = append(data, newBill(c, bill))
	}

	c.JSON(http.StatusCreated, BillListResponse{Data: data})
}
