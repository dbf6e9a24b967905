// Package controllers implements the HTTP handlers of the backend.
package controllers

import (
	"net/http"

	"github.com/bankwatch/backend/internal/httputil"
	"github.com/bankwatch/backend/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// URIID is the id parameter of detail routes.
type URIID struct {
	ID uuid.UUID `uri:"id" binding:"required"`
}

// AccessEditable are the fields of an access a client may set.
type AccessEditable struct {
	Bank     string `json:"bank" binding:"required"`
	Login    string `json:"login" binding:"required"`
	Password string `json:"password" binding:"required"`
	Website  string `json:"website"`
}

// RegisterAccessRoutes registers the routes for accesses with the
// RouterGroup that is passed.
func RegisterAccessRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", httputil.OptionsGetPost)
	r.GET("", GetAccesses)
	r.POST("", CreateAccess)

	r.OPTIONS("/:id", httputil.OptionsGetDelete)
	r.GET("/:id", GetAccess)
	r.DELETE("/:id", DeleteAccess)
}

// @Summary		List accesses
// @Description	Returns all bank accesses. Passwords are never included.
// @Tags			Accesses
// @Produce		json
// @Success		200	{array}		models.Access
// @Failure		500	{object}	httputil.HTTPError
// @Router			/v1/accesses [get]
func GetAccesses(c *gin.Context) {
	accesses, err := models.Accesses(models.DB)
	if err != nil {
		httputil.ErrorHandler(c, err)
		return
	}

	c.JSON(http.StatusOK, accesses)
}

// @Summary		Create access
// @Description	Registers a new bank access
// @Tags			Accesses
// @Produce		json
// @Success		201	{object}	models.Access
// @Failure		400	{object}	httputil.HTTPError
// @Failure		500	{object}	httputil.HTTPError
// @Param			access	body	AccessEditable	true	"Access"
// @Router			/v1/accesses [post]
func CreateAccess(c *gin.Context) {
	var editable AccessEditable
	if err := c.ShouldBindJSON(&editable); err != nil {
		httputil.BadRequest(c, err)
		return
	}

	access := models.Access{
		Bank:     editable.Bank,
		Login:    editable.Login,
		Password: editable.Password,
		Website:  editable.Website,
	}

	if err := models.DB.Create(&access).Error; err != nil {
		httputil.ErrorHandler(c, err)
		return
	}

	c.JSON(http.StatusCreated, access)
}

// @Summary		Get access
// @Description	Returns one bank access
// @Tags			Accesses
// @Produce		json
// @Success		200	{object}	models.Access
// @Failure		400	{object}	httputil.HTTPError
// @Failure		404	{object}	httputil.HTTPError
// @Param			id	path	string	true	"ID of the access"
// @Router			/v1/accesses/{id} [get]
func GetAccess(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		httputil.BadRequest(c, err)
		return
	}

	var access models.Access
	if err := models.DB.First(&access, uri.ID).Error; err != nil {
		httputil.ErrorHandler(c, err)
		return
	}

	c.JSON(http.StatusOK, access)
}

// @Summary		Delete access
// @Description	Deletes a bank access with all its accounts, operations and alerts
// @Tags			Accesses
// @Success		204
// @Failure		400	{object}	httputil.HTTPError
// @Failure		404	{object}	httputil.HTTPError
// @Param			id	path	string	true	"ID of the access"
// @Router			/v1/accesses/{id} [delete]
func DeleteAccess(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		httputil.BadRequest(c, err)
		return
	}

	var access models.Access
	if err := models.DB.First(&access, uri.ID).Error; err != nil {
		httputil.ErrorHandler(c, err)
		return
	}

	accounts, err := access.Accounts(models.DB)
	if err != nil {
		httputil.ErrorHandler(c, err)
		return
	}

	// Destroying the last account cascades to the access itself.
	for _, account := range accounts {
		if err := account.DestroyCascade(models.DB); err != nil {
			httputil.ErrorHandler(c, err)
			return
		}
	}

	if len(accounts) == 0 {
		if err := models.DB.Delete(&access).Error; err != nil {
			httputil.ErrorHandler(c, err)
			return
		}
	}

	c.Status(http.StatusNoContent)
}
