package rest

import (
	"net/http"
	"property-search-service/internal/contextkeys"
	"property-search-service/internal/core/port"
	"property-search-service/internal/core/port/usecases_port"
)

type InternetProviderHandler struct {
	getUC    usecases_port.GetInternetProviderUseCasePort
	upsertUC usecases_port.UpsertInternetProviderUseCasePort
	updateUC usecases_port.UpdateInternetProviderUseCasePort
	deleteUC usecases_port.DeleteInternetProviderUseCasePort
}

func NewInternetProviderHandler(
	getUC usecases_port.GetInternetProviderUseCasePort,
	upsertUC usecases_port.UpsertInternetProviderUseCasePort,
	updateUC usecases_port.UpdateInternetProviderUseCasePort,
	deleteUC usecases_port.DeleteInternetProviderUseCasePort,
) *InternetProviderHandler {
	return &InternetProviderHandler{getUC: getUC, upsertUC: upsertUC, updateUC: updateUC, deleteUC: deleteUC}
}

// GetInternetProvider обрабатывает GET /internet-providers/{property_id}
func (h *InternetProviderHandler) GetInternetProvider(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "GetInternetProvider"})

	propertyID, err := parseIDParam(r, "property_id")
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	provider, err := h.getUC.Execute(r.Context(), propertyID)
	if err != nil {
		writeUseCaseError(w, logger, err)
		return
	}

	RespondWithJSON(w, http.StatusOK, toInternetProviderResponse(*provider))
}

// UpsertInternetProvider обрабатывает POST /internet-providers/.
// Если запись для объекта уже есть, она перезаписывается.
func (h *InternetProviderHandler) UpsertInternetProvider(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "UpsertInternetProvider"})

	var req InternetProviderRequest
	if !decodeAndValidate(w, r, logger, &req) {
		return
	}

	provider, err := h.upsertUC.Execute(r.Context(), req.toInput())
	if err != nil {
		writeUseCaseError(w, logger, err)
		return
	}

	RespondWithJSON(w, http.StatusCreated, toInternetProviderResponse(*provider))
}

// UpdateInternetProvider обрабатывает PUT /internet-providers/{id}
func (h *InternetProviderHandler) UpdateInternetProvider(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "UpdateInternetProvider"})

	id, err := parseIDParam(r, "id")
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	var req InternetProviderRequest
	if !decodeAndValidate(w, r, logger, &req) {
		return
	}

	provider, err := h.updateUC.Execute(r.Context(), id, req.toInput())
	if err != nil {
		writeUseCaseError(w, logger, err)
		return
	}

	RespondWithJSON(w, http.StatusOK, toInternetProviderResponse(*provider))
}

// DeleteInternetProvider обрабатывает DELETE /internet-providers/{id}
func (h *InternetProviderHandler) DeleteInternetProvider(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "DeleteInternetProvider"})

	id, err := parseIDParam(r, "id")
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.deleteUC.Execute(r.Context(), id); err != nil {
		writeUseCaseError(w, logger, err)
		return
	}

	RespondWithJSON(w, http.StatusOK, MessageResponse{Message: "Internet provider information deleted successfully"})
}
