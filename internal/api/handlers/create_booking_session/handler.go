package create_booking_session

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-InteriorStudio/internal/api/handlers"
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

// Handle POST /api/v1/booking-sessions
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingSessionRequest
	if err := handlers.DecodeJSON(r, &req); err != nil && !errors.Is(err, handlers.ErrEmptyBody) {
		h.logger.Warn("POST /booking-sessions - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	session, err := h.service.Create(r.Context(), req.ToServiceRequest(r.URL.Query()))
	if err != nil {
		if !handlers.RespondSessionError(w, err) {
			h.logger.Error("POST /booking-sessions - Failed to create session: %v", err)
			return
		}
		h.logger.Warn("POST /booking-sessions - Rejected: %v", err)
		return
	}

	h.logger.Info("POST /booking-sessions - Session created: id=%s", session.ID)
	handlers.RespondJSON(w, http.StatusCreated, session)
}
