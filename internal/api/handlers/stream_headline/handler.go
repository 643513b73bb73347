package stream_headline

import (
	"context"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-InteriorStudio/internal/api/handlers"
	"github.com/m04kA/SMC-InteriorStudio/internal/domain"
	"github.com/m04kA/SMC-InteriorStudio/internal/service/catalog"
	"github.com/m04kA/SMC-InteriorStudio/pkg/typewriter"
)

const msgHeadlineNotFound = "headline not found"

type Handler struct {
	service HeadlineService
	logger  Logger
}

func NewHandler(service HeadlineService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/headlines/{headlineId}/stream
// Отдаёт кадры печатной машинки как Server-Sent Events до конца анимации или отключения клиента.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	headlineID := mux.Vars(r)["headlineId"]

	headline, err := h.service.GetHeadline(r.Context(), headlineID)
	if err != nil {
		if errors.Is(err, catalog.ErrHeadlineNotFound) {
			handlers.RespondNotFound(w, msgHeadlineNotFound)
			return
		}
		h.logger.Error("GET /headlines/{id}/stream - Failed to get headline: id=%s, error=%v", headlineID, err)
		handlers.RespondInternalError(w)
		return
	}

	script, err := buildScript(headline)
	if err != nil {
		h.logger.Error("GET /headlines/{id}/stream - Invalid headline: id=%s, error=%v", headlineID, err)
		handlers.RespondInternalError(w)
		return
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		h.logger.Error("GET /headlines/{id}/stream - ResponseWriter does not support flushing")
		handlers.RespondInternalError(w)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	err = typewriter.Play(r.Context(), script, func(f typewriter.Frame) error {
		if err := writeEvent(w, eventFrame, fromFrame(f)); err != nil {
			return err
		}
		flusher.Flush()
		return nil
	})

	switch {
	case err == nil:
		_ = writeEvent(w, eventDone, struct{}{})
		flusher.Flush()
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		h.logger.Info("GET /headlines/{id}/stream - Client disconnected: id=%s", headlineID)
	default:
		h.logger.Warn("GET /headlines/{id}/stream - Stream aborted: id=%s, error=%v", headlineID, err)
	}
}

func buildScript(h domain.Headline) (typewriter.Script, error) {
	if h.Loop {
		return typewriter.Loop(h.Text, h.Speed, h.Delay)
	}
	return typewriter.Once(h.Text, h.Speed, h.Delay)
}
