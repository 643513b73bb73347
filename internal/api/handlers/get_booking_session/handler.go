package get_booking_session

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

// Handle GET /api/v1/booking-sessions/{sessionId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	session, err := h.service.Get(r.Context(), sessionID)
	if err != nil {
		if !handlers.RespondSessionError(w, err) {
			h.logger.Error("GET /booking-sessions/{sessionId} - Failed to get session: id=%s, error=%v", sessionID, err)
			return
		}
		h.logger.Warn("GET /booking-sessions/{sessionId} - Rejected: id=%s, error=%v", sessionID, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, session)
}
