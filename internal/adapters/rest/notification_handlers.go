package rest

import (
	"net/http"
	"property-search-service/internal/contextkeys"
	"property-search-service/internal/core/port"
	"property-search-service/internal/core/port/usecases_port"
)

type NotificationHandler struct {
	listUC   usecases_port.ListNotificationsUseCasePort
	createUC usecases_port.CreateNotificationUseCasePort
	deleteUC usecases_port.DeleteNotificationUseCasePort
}

func NewNotificationHandler(
	listUC usecases_port.ListNotificationsUseCasePort,
	createUC usecases_port.CreateNotificationUseCasePort,
	deleteUC usecases_port.DeleteNotificationUseCasePort,
) *NotificationHandler {
	return &NotificationHandler{listUC: listUC, createUC: createUC, deleteUC: deleteUC}
}

// ListByProperty обрабатывает GET /notifications/property/{property_id}
func (h *NotificationHandler) ListByProperty(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "ListNotifications"})

	propertyID, err := parseIDParam(r, "property_id")
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	notifications, err := h.listUC.Execute(r.Context(), propertyID)
	if err != nil {
		writeUseCaseError(w, logger, err)
		return
	}

	RespondWithJSON(w, http.StatusOK, toNotificationResponses(notifications))
}

// CreateNotification обрабатывает POST /notifications/. Объект переводится в статус NOTIFIED.
func (h *NotificationHandler) CreateNotification(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "CreateNotification"})

	var req NotificationRequest
	if !decodeAndValidate(w, r, logger, &req) {
		return
	}

	notification, err := h.createUC.Execute(r.Context(), req.toInput())
	if err != nil {
		writeUseCaseError(w, logger, err)
		return
	}

	RespondWithJSON(w, http.StatusCreated, toNotificationResponse(*notification))
}

// DeleteNotification обрабатывает DELETE /notifications/{id}. Статус объекта не меняется.
func (h *NotificationHandler) DeleteNotification(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "DeleteNotification"})

	id, err := parseIDParam(r, "id")
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.deleteUC.Execute(r.Context(), id); err != nil {
		writeUseCaseError(w, logger, err)
		return
	}

	RespondWithJSON(w, http.StatusOK, MessageResponse{Message: "Notification deleted successfully"})
}
