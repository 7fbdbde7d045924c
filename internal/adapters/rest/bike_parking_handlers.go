package rest

import (
	"net/http"
	"property-search-service/internal/contextkeys"
	"property-search-service/internal/core/port"
	"property-search-service/internal/core/port/usecases_port"
)

type BikeParkingHandler struct {
	listUC   usecases_port.ListBikeParkingsUseCasePort
	createUC usecases_port.CreateBikeParkingUseCasePort
	updateUC usecases_port.UpdateBikeParkingUseCasePort
	deleteUC usecases_port.DeleteBikeParkingUseCasePort
}

func NewBikeParkingHandler(
	listUC usecases_port.ListBikeParkingsUseCasePort,
	createUC usecases_port.CreateBikeParkingUseCasePort,
	updateUC usecases_port.UpdateBikeParkingUseCasePort,
	deleteUC usecases_port.DeleteBikeParkingUseCasePort,
) *BikeParkingHandler {
	return &BikeParkingHandler{listUC: listUC, createUC: createUC, updateUC: updateUC, deleteUC: deleteUC}
}

// ListByProperty обрабатывает GET /bike-parkings/property/{property_id}.
// Для несуществующего объекта возвращается пустой список.
func (h *BikeParkingHandler) ListByProperty(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "ListBikeParkings"})

	propertyID, err := parseIDParam(r, "property_id")
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	parkings, err := h.listUC.Execute(r.Context(), propertyID)
	if err != nil {
		writeUseCaseError(w, logger, err)
		return
	}

	RespondWithJSON(w, http.StatusOK, toBikeParkingResponses(parkings))
}

// CreateBikeParking обрабатывает POST /bike-parkings/
func (h *BikeParkingHandler) CreateBikeParking(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "CreateBikeParking"})

	var req BikeParkingRequest
	if !decodeAndValidate(w, r, logger, &req) {
		return
	}

	parking, err := h.createUC.Execute(r.Context(), req.toInput())
	if err != nil {
		writeUseCaseError(w, logger, err)
		return
	}

	RespondWithJSON(w, http.StatusCreated, toBikeParkingResponse(*parking))
}

// UpdateBikeParking обрабатывает PUT /bike-parkings/{id}
func (h *BikeParkingHandler) UpdateBikeParking(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "UpdateBikeParking"})

	id, err := parseIDParam(r, "id")
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	var req BikeParkingRequest
	if !decodeAndValidate(w, r, logger, &req) {
		return
	}

	parking, err := h.updateUC.Execute(r.Context(), id, req.toInput())
	if err != nil {
		writeUseCaseError(w, logger, err)
		return
	}

	RespondWithJSON(w, http.StatusOK, toBikeParkingResponse(*parking))
}

// DeleteBikeParking обрабатывает DELETE /bike-parkings/{id}
func (h *BikeParkingHandler) DeleteBikeParking(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "DeleteBikeParking"})

	id, err := parseIDParam(r, "id")
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.deleteUC.Execute(r.Context(), id); err != nil {
		writeUseCaseError(w, logger, err)
		return
	}

	RespondWithJSON(w, http.StatusOK, MessageResponse{Message: "Bike parking deleted successfully"})
}
