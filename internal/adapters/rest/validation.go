package rest

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"property-search-service/internal/core/port"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// validate общий для всех обработчиков, в ошибках используются имена полей из json-тегов
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// formatValidationErrors переводит ошибки validator в понятный клиенту вид
func formatValidationErrors(errs validator.ValidationErrors) []ValidationErrorDetail {
	details := make([]ValidationErrorDetail, 0, len(errs))
	for _, err := range errs {
		var message string
		switch err.Tag() {
		case "required":
			message = fmt.Sprintf("Field '%s' is required", err.Field())
		case "gte":
			message = fmt.Sprintf("Field '%s' must be greater than or equal to %s", err.Field(), err.Param())
		case "lte":
			message = fmt.Sprintf("Field '%s' must be less than or equal to %s", err.Field(), err.Param())
		case "max":
			message = fmt.Sprintf("Field '%s' must not exceed %s characters", err.Field(), err.Param())
		default:
			message = fmt.Sprintf("Field validation for '%s' failed on the '%s' tag", err.Field(), err.Tag())
		}
		details = append(details, ValidationErrorDetail{
			Field:   err.Field(),
			Message: message,
			Code:    "validation_" + err.Tag(),
		})
	}
	return details
}

// decodeAndValidate читает тело запроса в dst и проверяет его. При ошибке ответ
// уже отправлен и возвращается false.
func decodeAndValidate(w http.ResponseWriter, r *http.Request, logger port.LoggerPort, dst interface{}) bool {
	body := http.MaxBytesReader(w, r.Body, maxRequestBodyBytes)
	decoder := json.NewDecoder(body)

	if err := decoder.Decode(dst); err != nil {
		var typeErr *json.UnmarshalTypeError
		switch {
		case errors.As(err, &typeErr):
			logger.Warn("Request body has a field of the wrong type", port.Fields{"field": typeErr.Field})
			RespondWithJSON(w, http.StatusUnprocessableEntity, ValidationErrorResponse{
				Error: "Validation failed",
				Details: []ValidationErrorDetail{{
					Field:   typeErr.Field,
					Message: fmt.Sprintf("Field '%s' must be of type %s", typeErr.Field, typeErr.Type.String()),
					Code:    "validation_type",
				}},
			})
		case errors.Is(err, io.EOF):
			logger.Warn("Empty request body", nil)
			WriteJSONError(w, http.StatusBadRequest, "Request body is empty")
		default:
			logger.Warn("Invalid JSON body", port.Fields{"reason": err.Error()})
			WriteJSONError(w, http.StatusBadRequest, "Invalid JSON body")
		}
		return false
	}
	if decoder.More() {
		logger.Warn("Request body contains more than one JSON value", nil)
		WriteJSONError(w, http.StatusBadRequest, "Invalid JSON body")
		return false
	}

	if err := validate.Struct(dst); err != nil {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			details := formatValidationErrors(validationErrs)
			logger.Warn("Request validation failed", port.Fields{"violations": len(details)})
			RespondWithJSON(w, http.StatusUnprocessableEntity, ValidationErrorResponse{
				Error:   "Validation failed",
				Details: details,
			})
			return false
		}
		logger.Error("Validator failed unexpectedly", err, nil)
		WriteJSONError(w, http.StatusInternalServerError, "Internal server error")
		return false
	}
	return true
}
