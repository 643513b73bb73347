package estimate_price

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/m04kA/SMC-InteriorStudio/internal/api/handlers"
	"github.com/m04kA/SMC-InteriorStudio/internal/domain"
	estimatePrice "github.com/m04kA/SMC-InteriorStudio/internal/usecase/estimate_price"
)

const (
	msgInvalidQuery = "invalid query parameters: area must be an integer and lighting a boolean"
	msgInvalidInput = "unknown complexity or material"
)

var msgAreaOutOfRange = fmt.Sprintf("area must be between %d and %d sq ft", domain.MinArea, domain.MaxArea)

type Handler struct {
	useCase EstimatePriceUseCase
	logger  Logger
}

func NewHandler(useCase EstimatePriceUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/estimate
// Query params (все необязательные): area, complexity, material, lighting
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	req, err := ToUseCaseRequest(r.URL.Query())
	if err != nil {
		h.logger.Warn("GET /estimate - Invalid query: %v", err)
		handlers.RespondBadRequest(w, msgInvalidQuery)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, estimatePrice.ErrAreaOutOfRange):
			h.logger.Warn("GET /estimate - Area out of range: %v", err)
			handlers.RespondBadRequest(w, msgAreaOutOfRange)

		case errors.Is(err, estimatePrice.ErrInvalidInput):
			h.logger.Warn("GET /estimate - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("GET /estimate - Failed to estimate: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
