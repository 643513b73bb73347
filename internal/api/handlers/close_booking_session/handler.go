package close_booking_session

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-InteriorStudio/internal/api/handlers"
)

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

// Handle DELETE /api/v1/booking-sessions/{sessionId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	if err := h.service.Close(r.Context(), sessionID); err != nil {
		if !handlers.RespondSessionError(w, err) {
			h.logger.Error("DELETE /booking-sessions/{id} - Failed to close session: id=%s, error=%v", sessionID, err)
			return
		}
		h.logger.Warn("DELETE /booking-sessions/{id} - Rejected: id=%s, error=%v", sessionID, err)
		return
	}

	h.logger.Info("DELETE /booking-sessions/{id} - Session closed: id=%s", sessionID)
	w.WriteHeader(http.StatusNoContent)
}
