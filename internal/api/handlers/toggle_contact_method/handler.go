package toggle_contact_method

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

// Handle POST /api/v1/booking-sessions/{sessionId}/contact-methods/{method}/toggle
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	sessionID := vars["sessionId"]
	method := vars["method"]

	session, err := h.service.ToggleContactMethod(r.Context(), sessionID, method)
	if err != nil {
		if !handlers.RespondSessionError(w, err) {
			h.logger.Error("POST /booking-sessions/{id}/contact-methods/{method}/toggle - Failed: id=%s, method=%s, error=%v", sessionID, method, err)
			return
		}
		h.logger.Warn("POST /booking-sessions/{id}/contact-methods/{method}/toggle - Rejected: id=%s, method=%s, error=%v", sessionID, method, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, session)
}
