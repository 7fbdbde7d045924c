package rest

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"property-search-service/internal/core/domain"
	"property-search-service/internal/core/port"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
)

const maxRequestBodyBytes = 1 << 20

// WriteJSONError отправляет ошибку в формате {"error": "..."}
func WriteJSONError(w http.ResponseWriter, statusCode int, message string) {
	RespondWithJSON(w, statusCode, ErrorResponse{Error: message})
}

// RespondWithJSON отправляет JSON-ответ
func RespondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		http.Error(w, "Failed to marshal JSON response", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	_, _ = w.Write(response)
}

// writeUseCaseError переводит ошибку ядра в HTTP-ответ
func writeUseCaseError(w http.ResponseWriter, logger port.LoggerPort, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		logger.Warn("Entity not found", port.Fields{"reason": err.Error()})
		WriteJSONError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrConflict):
		logger.Warn("Conflict", port.Fields{"reason": err.Error()})
		WriteJSONError(w, http.StatusConflict, err.Error())
	default:
		logger.Error("Use case failed", err, nil)
		WriteJSONError(w, http.StatusInternalServerError, "Internal server error")
	}
}

// parseIDParam читает целочисленный параметр пути
func parseIDParam(r *http.Request, name string) (int64, error) {
	raw := chi.URLParam(r, name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %q is not an integer", name, raw)
	}
	return id, nil
}

// parseString возвращает nil для отсутствующего или пустого параметра
func parseString(query url.Values, key string) *string {
	value := strings.TrimSpace(query.Get(key))
	if value == "" {
		return nil
	}
	return &value
}

func parseInt(query url.Values, key string) (*int, error) {
	value := strings.TrimSpace(query.Get(key))
	if value == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return nil, fmt.Errorf("query parameter %s must be an integer", key)
	}
	return &n, nil
}

// parseNonNegativeInt читает параметр пагинации, отрицательные значения запрещены
func parseNonNegativeInt(query url.Values, key string, defaultValue int) (int, error) {
	n, err := parseInt(query, key)
	if err != nil {
		return 0, err
	}
	if n == nil {
		return defaultValue, nil
	}
	if *n < 0 {
		return 0, fmt.Errorf("query parameter %s must be greater than or equal to 0", key)
	}
	return *n, nil
}
