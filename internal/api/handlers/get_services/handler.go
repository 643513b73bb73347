package get_services

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-InteriorStudio/internal/api/handlers"
	"github.com/m04kA/SMC-InteriorStudio/internal/service/catalog"
)

const msgUnknownCategory = "unknown service category"

type Handler struct {
	service ListingService
	logger  Logger
}

func NewHandler(service ListingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/services?category=tv
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	services, err := h.service.Services(r.Context(), r.URL.Query().Get("category"))
	if err != nil {
		if errors.Is(err, catalog.ErrUnknownCategory) {
			handlers.RespondBadRequest(w, msgUnknownCategory)
			return
		}
		h.logger.Error("GET /services - Failed to list services: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, services)
}
