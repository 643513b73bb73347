package submit_booking

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-InteriorStudio/internal/api/handlers"
)

const msgInvalidWait = "wait must be true or false"

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

// Handle POST /api/v1/booking-sessions/{sessionId}/submit[?wait=true]
// Без wait отвечает 202 сразу после старта отправки, с wait дожидается результата и отвечает 200.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	wait := false
	if raw := r.URL.Query().Get("wait"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			handlers.RespondBadRequest(w, msgInvalidWait)
			return
		}
		wait = v
	}

	session, err := h.service.Submit(r.Context(), sessionID, wait)
	if err != nil {
		if !handlers.RespondSessionError(w, err) {
			h.logger.Error("POST /booking-sessions/{id}/submit - Failed to submit: id=%s, error=%v", sessionID, err)
			return
		}
		h.logger.Warn("POST /booking-sessions/{id}/submit - Rejected: id=%s, error=%v", sessionID, err)
		return
	}

	if !wait {
		handlers.RespondJSON(w, http.StatusAccepted, session)
		return
	}

	h.logger.Info("POST /booking-sessions/{id}/submit - Settled: id=%s, success=%t", sessionID, session.Success)
	handlers.RespondJSON(w, http.StatusOK, session)
}
