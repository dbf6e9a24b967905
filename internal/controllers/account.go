package controllers

import (
	"net/http"

	"github.com/bankwatch/backend/internal/httputil"
	"github.com/bankwatch/backend/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// RegisterAccountRoutes registers the routes for accounts with the
// RouterGroup that is passed.
func RegisterAccountRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", httputil.OptionsGet)
	r.GET("", GetAccounts)

	r.OPTIONS("/:id", httputil.OptionsGetDelete)
	r.GET("/:id", GetAccount)
	r.DELETE("/:id", DeleteAccount)
	r.GET("/:id/operations", GetAccountOperations)
	r.GET("/:id/balance", GetAccountBalance)
}

// BalanceResponse is the response of the balance endpoint.
type BalanceResponse struct {
	Balance decimal.Decimal `json:"balance" example:"1234.56"`
}

// @Summary		List accounts
// @Description	Returns all bank accounts
// @Tags			Accounts
// @Produce		json
// @Success		200	{array}		models.Account
// @Failure		500	{object}	httputil.HTTPError
// @Router			/v1/accounts [get]
func GetAccounts(c *gin.Context) {
	var accounts []models.Account
	if err := models.DB.Find(&accounts).Error; err != nil {
		httputil.ErrorHandler(c, err)
		return
	}

	c.JSON(http.StatusOK, accounts)
}

// @Summary		Get account
// @Description	Returns one bank account
// @Tags			Accounts
// @Produce		json
// @Success		200	{object}	models.Account
// @Failure		400	{object}	httputil.HTTPError
// @Failure		404	{object}	httputil.HTTPError
// @Param			id	path	string	true	"ID of the account"
// @Router			/v1/accounts/{id} [get]
func GetAccount(c *gin.Context) {
	account, ok := accountFromURI(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, account)
}

// @Summary		Delete account
// @Description	Deletes an account with its operations and alerts. When it was the last account of its access, the access is deleted too.
// @Tags			Accounts
// @Success		204
// @Failure		400	{object}	httputil.HTTPError
// @Failure		404	{object}	httputil.HTTPError
// @Param			id	path	string	true	"ID of the account"
// @Router			/v1/accounts/{id} [delete]
func DeleteAccount(c *gin.Context) {
	account, ok := accountFromURI(c)
	if !ok {
		return
	}

	if err := account.DestroyCascade(models.DB); err != nil {
		httputil.ErrorHandler(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary		List operations
// @Description	Returns the operations of an account, newest first
// @Tags			Accounts
// @Produce		json
// @Success		200	{array}		models.Operation
// @Failure		400	{object}	httputil.HTTPError
// @Failure		404	{object}	httputil.HTTPError
// @Param			id	path	string	true	"ID of the account"
// @Router			/v1/accounts/{id}/operations [get]
func GetAccountOperations(c *gin.Context) {
	account, ok := accountFromURI(c)
	if !ok {
		return
	}

	operations, err := account.Operations(models.DB)
	if err != nil {
		httputil.ErrorHandler(c, err)
		return
	}

	c.JSON(http.StatusOK, operations)
}

// @Summary		Account balance
// @Description	Returns the derived balance of an account
// @Tags			Accounts
// @Produce		json
// @Success		200	{object}	BalanceResponse
// @Failure		400	{object}	httputil.HTTPError
// @Failure		404	{object}	httputil.HTTPError
// @Param			id	path	string	true	"ID of the account"
// @Router			/v1/accounts/{id}/balance [get]
func GetAccountBalance(c *gin.Context) {
	account, ok := accountFromURI(c)
	if !ok {
		return
	}

	balance, err := account.Balance(models.DB)
	if err != nil {
		httputil.ErrorHandler(c, err)
		return
	}

	c.JSON(http.StatusOK, BalanceResponse{Balance: balance})
}

// accountFromURI loads the account referenced by the :id parameter and
// writes the error response when that fails.
func accountFromURI(c *gin.Context) (models.Account, bool) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		httputil.BadRequest(c, err)
		return models.Account{}, false
	}

	var account models.Account
	if err := models.DB.First(&account, uri.ID).Error; err != nil {
		httputil.ErrorHandler(c, err)
		return models.Account{}, false
	}

	return account, true
}
