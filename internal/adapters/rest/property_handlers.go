package rest

import (
	"net/http"
	"property-search-service/internal/contextkeys"
	"property-search-service/internal/core/domain"
	"property-search-service/internal/core/port"
	"property-search-service/internal/core/port/usecases_port"
)

type PropertyHandler struct {
	listUC   usecases_port.ListPropertiesUseCasePort
	getUC    usecases_port.GetPropertyUseCasePort
	createUC usecases_port.CreatePropertyUseCasePort
	updateUC usecases_port.UpdatePropertyUseCasePort
	deleteUC usecases_port.DeletePropertyUseCasePort
}

func NewPropertyHandler(
	listUC usecases_port.ListPropertiesUseCasePort,
	getUC usecases_port.GetPropertyUseCasePort,
	createUC usecases_port.CreatePropertyUseCasePort,
	updateUC usecases_port.UpdatePropertyUseCasePort,
	deleteUC usecases_port.DeletePropertyUseCasePort,
) *PropertyHandler {
	return &PropertyHandler{
		listUC:   listUC,
		getUC:    getUC,
		createUC: createUC,
		updateUC: updateUC,
		deleteUC: deleteUC,
	}
}

// ListProperties обрабатывает GET /properties/
func (h *PropertyHandler) ListProperties(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "ListProperties"})
	query := r.URL.Query()

	filter := domain.PropertyFilter{
		Station:       parseString(query, "station"),
		FloorPlan:     parseString(query, "floor_plan"),
		GeohashPrefix: parseString(query, "geohash"),
	}

	var err error
	if filter.MinRent, err = parseInt(query, "min_rent"); err != nil {
		logger.Warn("Invalid query parameter", port.Fields{"reason": err.Error()})
		WriteJSONError(w, http.StatusBadRequest, err.Error())
		return
	}
	if filter.MaxRent, err = parseInt(query, "max_rent"); err != nil {
		logger.Warn("Invalid query parameter", port.Fields{"reason": err.Error()})
		WriteJSONError(w, http.StatusBadRequest, err.Error())
		return
	}
	if filter.Skip, err = parseNonNegativeInt(query, "skip", domain.DefaultListSkip); err != nil {
		logger.Warn("Invalid pagination parameter", port.Fields{"reason": err.Error()})
		WriteJSONError(w, http.StatusBadRequest, err.Error())
		return
	}
	if filter.Limit, err = parseNonNegativeInt(query, "limit", domain.DefaultListLimit); err != nil {
		logger.Warn("Invalid pagination parameter", port.Fields{"reason": err.Error()})
		WriteJSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	properties, err := h.listUC.Execute(r.Context(), filter)
	if err != nil {
		writeUseCaseError(w, logger, err)
		return
	}

	logger.Debug("Properties listed", port.Fields{"count": len(properties)})
	RespondWithJSON(w, http.StatusOK, toPropertyResponses(properties))
}

// GetProperty обрабатывает GET /properties/{id}
func (h *PropertyHandler) GetProperty(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "GetProperty"})

	id, err := parseIDParam(r, "id")
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	property, err := h.getUC.Execute(r.Context(), id)
	if err != nil {
		writeUseCaseError(w, logger, err)
		return
	}

	RespondWithJSON(w, http.StatusOK, toPropertyResponse(*property))
}

// CreateProperty обрабатывает POST /properties/
func (h *PropertyHandler) CreateProperty(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "CreateProperty"})

	var req PropertyRequest
	if !decodeAndValidate(w, r, logger, &req) {
		return
	}

	property, err := h.createUC.Execute(r.Context(), req.toInput())
	if err != nil {
		writeUseCaseError(w, logger, err)
		return
	}

	logger.Info("Property created", port.Fields{"property_id": property.ID})
	RespondWithJSON(w, http.StatusCreated, toPropertyResponse(*property))
}

// UpdateProperty обрабатывает PUT /properties/{id}
func (h *PropertyHandler) UpdateProperty(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "UpdateProperty"})

	id, err := parseIDParam(r, "id")
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	var req PropertyRequest
	if !decodeAndValidate(w, r, logger, &req) {
		return
	}

	property, err := h.updateUC.Execute(r.Context(), id, req.toInput())
	if err != nil {
		writeUseCaseError(w, logger, err)
		return
	}

	RespondWithJSON(w, http.StatusOK, toPropertyResponse(*property))
}

// DeleteProperty обрабатывает DELETE /properties/{id}
func (h *PropertyHandler) DeleteProperty(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "DeleteProperty"})

	id, err := parseIDParam(r, "id")
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.deleteUC.Execute(r.Context(), id); err != nil {
		writeUseCaseError(w, logger, err)
		return
	}

	RespondWithJSON(w, http.StatusOK, MessageResponse{Message: "Property deleted successfully"})
}
