package next_step

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

// Handle POST /api/v1/booking-sessions/{sessionId}/next
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	session, err := h.service.Next(r.Context(), sessionID)
	if err != nil {
		if !handlers.RespondSessionError(w, err) {
			h.logger.Error("POST /booking-sessions/{sessionId}/next - Failed to continue: id=%s, error=%v", sessionID, err)
			return
		}
		h.logger.Warn("POST /booking-sessions/{sessionId}/next - Rejected: id=%s, error=%v", sessionID, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, session)
}
