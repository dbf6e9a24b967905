package httputil

import (
	"errors"
	"net/http"

	"github.com/bankwatch/backend/internal/models"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// HTTPError is used for error responses that contain a body.
type HTTPError struct {
	Error string `json:"error" example:"there is no account matching your query"`
}

// ErrorHandler writes an error response with a status matching the
// error. Unknown errors are logged with the request id and masked with
// a general message.
func ErrorHandler(c *gin.Context, err error) {
	status := http.StatusInternalServerError

	switch {
	case errors.Is(err, models.ErrResourceNotFound) || errors.Is(err, gorm.ErrRecordNotFound):
		status = http.StatusNotFound
	case errors.Is(err, models.ErrAccountNumberNotUnique) || errors.Is(err, models.ErrSettingNameNotUnique):
		status = http.StatusBadRequest
	case errors.Is(err, models.ErrGeneral):
		// already logged by the database callback
	default:
		log.Error().Str("request-id", requestid.Get(c)).Msgf("%T: %v", err, err.Error())
		err = models.ErrGeneral
	}

	c.JSON(status, HTTPError{Error: err.Error()})
}

// BadRequest writes a 400 response with the error message.
func BadRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, HTTPError{Error: err.Error()})
}
