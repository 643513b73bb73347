package get_gallery

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-InteriorStudio/internal/api/handlers"
	"github.com/m04kA/SMC-InteriorStudio/internal/service/catalog"
)

const msgUnknownCategory = "unknown gallery category"

type Handler struct {
	service GalleryService
	logger  Logger
}

func NewHandler(service GalleryService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/gallery?category=pop&q=led
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	gallery, err := h.service.Gallery(r.Context(), query.Get("category"), query.Get("q"))
	if err != nil {
		if errors.Is(err, catalog.ErrUnknownCategory) {
			handlers.RespondBadRequest(w, msgUnknownCategory)
			return
		}
		h.logger.Error("GET /gallery - Failed to filter gallery: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, gallery)
}
