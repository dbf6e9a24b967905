package controllers

import (
	"net/http"

	"github.com/bankwatch/backend/internal/httputil"
	"github.com/bankwatch/backend/internal/models"
	"github.com/bankwatch/backend/internal/types"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AlertEditable are the fields of an alert a client may set.
type AlertEditable struct {
	AccountID uuid.UUID         `json:"accountId" binding:"required"`
	Type      models.AlertType  `json:"type" binding:"required,oneof=report balance transaction"`
	Frequency string            `json:"frequency"`
	Limit     decimal.Decimal   `json:"limit"`
	Order     models.AlertOrder `json:"order" binding:"omitempty,oneof=gt lt"`
}

// RegisterAlertRoutes registers the routes for alerts with the
// RouterGroup that is passed.
func RegisterAlertRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", httputil.OptionsGetPost)
	r.GET("", GetAlerts)
	r.POST("", CreateAlert)

	r.OPTIONS("/:id", httputil.OptionsGetDelete)
	r.GET("/:id", GetAlert)
	r.DELETE("/:id", DeleteAlert)
}

// @Summary		List alerts
// @Description	Returns all alerts
// @Tags			Alerts
// @Produce		json
// @Success		200	{array}		models.Alert
// @Failure		500	{object}	httputil.HTTPError
// @Router			/v1/alerts [get]
func GetAlerts(c *gin.Context) {
	var alerts []models.Alert
	if err := models.DB.Find(&alerts).Error; err != nil {
		httputil.ErrorHandler(c, err)
		return
	}

	c.JSON(http.StatusOK, alerts)
}

// @Summary		Create alert
// @Description	Creates a new alert for an account
// @Tags			Alerts
// @Produce		json
// @Success		201	{object}	models.Alert
// @Failure		400	{object}	httputil.HTTPError
// @Failure		404	{object}	httputil.HTTPError
// @Param			alert	body	AlertEditable	true	"Alert"
// @Router			/v1/alerts [post]
func CreateAlert(c *gin.Context) {
	var editable AlertEditable
	if err := c.ShouldBindJSON(&editable); err != nil {
		httputil.BadRequest(c, err)
		return
	}

	var frequency types.Frequency
	if editable.Type == models.AlertReport {
		var err error
		frequency, err = types.ParseFrequency(editable.Frequency)
		if err != nil {
			httputil.BadRequest(c, err)
			return
		}
	}

	// The account has to exist
	var account models.Account
	if err := models.DB.First(&account, editable.AccountID).Error; err != nil {
		httputil.ErrorHandler(c, err)
		return
	}

	alert := models.Alert{
		AccountID: editable.AccountID,
		Type:      editable.Type,
		Frequency: frequency,
		Limit:     editable.Limit,
		Order:     editable.Order,
	}

	if err := models.DB.Create(&alert).Error; err != nil {
		httputil.ErrorHandler(c, err)
		return
	}

	c.JSON(http.StatusCreated, alert)
}

// @Summary		Get alert
// @Description	Returns one alert
// @Tags			Alerts
// @Produce		json
// @Success		200	{object}	models.Alert
// @Failure		400	{object}	httputil.HTTPError
// @Failure		404	{object}	httputil.HTTPError
// @Param			id	path	string	true	"ID of the alert"
// @Router			/v1/alerts/{id} [get]
func GetAlert(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		httputil.BadRequest(c, err)
		return
	}

	var alert models.Alert
	if err := models.DB.First(&alert, uri.ID).Error; err != nil {
		httputil.ErrorHandler(c, err)
		return
	}

	c.JSON(http.StatusOK, alert)
}

// @Summary		Delete alert
// @Description	Deletes an alert
// @Tags			Alerts
// @Success		204
// @Failure		400	{object}	httputil.HTTPError
// @Failure		404	{object}	httputil.HTTPError
// @Param			id	path	string	true	"ID of the alert"
// @Router			/v1/alerts/{id} [delete]
func DeleteAlert(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		httputil.BadRequest(c, err)
		return
	}

	var alert models.Alert
	if err := models.DB.First(&alert, uri.ID).Error; err != nil {
		httputil.ErrorHandler(c, err)
		return
	}

	if err := models.DB.Delete(&alert).Error; err != nil {
		httputil.ErrorHandler(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
