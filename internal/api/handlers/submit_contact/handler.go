package submit_contact

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-InteriorStudio/internal/api/handlers"
	submitContact "github.com/m04kA/SMC-InteriorStudio/internal/usecase/submit_contact"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgValidationFailed   = "please correct the highlighted fields"
	msgSuccess            = "Thank you! Your message has been sent successfully. We'll get back to you soon."
)

type Handler struct {
	useCase SubmitContactUseCase
	logger  Logger
}

func NewHandler(useCase SubmitContactUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/contact-messages
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req ContactMessageRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /contact-messages - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		var verr *submitContact.ValidationError
		switch {
		case errors.As(err, &verr):
			h.logger.Warn("POST /contact-messages - Validation failed: %v", err)
			handlers.RespondValidationError(w, handlers.ErrorResponse{Error: msgValidationFailed, Fields: verr.Fields})

		case errors.Is(err, submitContact.ErrSubmissionFailed):
			h.logger.Error("POST /contact-messages - Submission failed: %v", err)
			handlers.RespondError(w, http.StatusBadGateway, submitContact.MsgSubmitFailed)

		default:
			h.logger.Error("POST /contact-messages - Failed to submit: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /contact-messages - Message accepted")
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
