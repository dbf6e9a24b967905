package controllers

import (
	"net/http"

	"github.com/bankwatch/backend/internal/httputil"
	"github.com/bankwatch/backend/internal/models"
	"github.com/gin-gonic/gin"
)

// RegisterLookupRoutes registers the routes for the classification
// lookup tables.
func RegisterLookupRoutes(r *gin.RouterGroup) {
	r.OPTIONS("/categories", httputil.OptionsGet)
	r.GET("/categories", GetCategories)

	r.OPTIONS("/operation-types", httputil.OptionsGet)
	r.GET("/operation-types", GetOperationTypes)
}

// @Summary		List categories
// @Description	Returns the category lookup table
// @Tags			Lookups
// @Produce		json
// @Success		200	{array}		models.Category
// @Failure		500	{object}	httputil.HTTPError
// @Router			/v1/categories [get]
func GetCategories(c *gin.Context) {
	categories, err := models.Categories(models.DB)
	if err != nil {
		httputil.ErrorHandler(c, err)
		return
	}

	c.JSON(http.StatusOK, categories)
}

// @Summary		List operation types
// @Description	Returns the operation type lookup table
// @Tags			Lookups
// @Produce		json
// @Success		200	{array}		models.OperationType
// @Failure		500	{object}	httputil.HTTPError
// @Router			/v1/operation-types [get]
func GetOperationTypes(c *gin.Context) {
	operationTypes, err := models.OperationTypes(models.DB)
	if err != nil {
		httputil.ErrorHandler(c, err)
		return
	}

	c.JSON(http.StatusOK, operationTypes)
}
