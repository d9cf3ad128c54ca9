package api

import (
	"errors"
	"fmt"
	"net/http"
	"reflect"

	"backend_tigo/config"
	"backend_tigo/models"
	"backend_tigo/services"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
)

func respondSuccess(c *gin.Context, status int, data any) {
	c.JSON(status, gin.H{"status": "success", "data": data})
}

func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"status": "error", "error": message})
}

// fieldFailure reports the first failed binding rule as a ValidationError
func fieldFailure(errs validator.ValidationErrors) *models.ValidationError {
	fe := errs[0]
	var message string
	switch fe.Tag() {
	case "required", "notblank":
		message = "es obligatorio"
	case "oneof":
		message = fmt.Sprintf("valor no permitido: %v", fe.Value())
	case "min", "gte":
		if fe.Kind() == reflect.String {
			message = fmt.Sprintf("debe tener al menos %s caracteres", fe.Param())
		} else {
			message = "debe ser al menos " + fe.Param()
		}
	case "max", "lte":
		if fe.Kind() == reflect.String {
			message = fmt.Sprintf("no puede exceder %s caracteres", fe.Param())
		} else {
			message = "no puede exceder " + fe.Param()
		}
	default:
		message = "no es válido"
	}
	return models.NewValidationError(fe.Field(), message)
}

// respondBindFailure answers a request body that could not be bound
func respondBindFailure(c *gin.Context, err error) {
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		respondValidation(c, fieldFailure(fieldErrs))
		return
	}
	respondError(c, http.StatusBadRequest, "Invalid request body")
}

func respondValidation(c *gin.Context, validation *models.ValidationError) {
	c.JSON(http.StatusBadRequest, gin.H{
		"status": "error",
		"error":  validation.Error(),
		"field":  validation.Field,
	})
}

// respondFailure maps a service error onto a status code and envelope.
// Store failures are logged with their cause and reported generically.
func respondFailure(c *gin.Context, logger *logrus.Logger, fn string, err error) {
	var validation *models.ValidationError
	switch {
	case errors.As(err, &validation):
		respondValidation(c, validation)
	case errors.Is(err, services.ErrConfirmationRequired):
		respondError(c, http.StatusPreconditionRequired, "Delete must be confirmed")
	case errors.Is(err, services.ErrNotFound):
		respondError(c, http.StatusNotFound, "Record not found")
	case errors.Is(err, services.ErrInvalidCredentials):
		respondError(c, http.StatusUnauthorized, "Invalid username or password")
	case errors.Is(err, services.ErrUserInactive):
		respondError(c, http.StatusForbidden, "User account is disabled")
	case errors.Is(err, services.ErrSessionNotFound):
		respondError(c, http.StatusUnauthorized, "No active session")
	default:
		config.LogError(logger, "api", fn, c.Request.URL.Path, c.Param("id"), err)
		respondError(c, http.StatusInternalServerError, "Operation failed")
	}
}
