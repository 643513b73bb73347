package update_booking_form

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-InteriorStudio/internal/api/handlers"
	"github.com/m04kA/SMC-InteriorStudio/internal/service/bookingsession/models"
)

const msgInvalidRequestBody = "invalid request body"

type Handler struct {
	service SessionService
	logger  Logger
}

func NewHandler(service SessionService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/booking-sessions/{sessionId}/form
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	var req models.UpdateFormRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /booking-sessions/{id}/form - Invalid request body: id=%s, error=%v", sessionID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	session, err := h.service.UpdateForm(r.Context(), sessionID, &req)
	if err != nil {
		if !handlers.RespondSessionError(w, err) {
			h.logger.Error("PATCH /booking-sessions/{id}/form - Failed to update form: id=%s, error=%v", sessionID, err)
			return
		}
		h.logger.Warn("PATCH /booking-sessions/{id}/form - Rejected: id=%s, error=%v", sessionID, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, session)
}
