package handlers

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-InteriorStudio/internal/service/bookingsession"
	"github.com/m04kA/SMC-InteriorStudio/internal/wizard"
)

const (
	msgSessionNotFound   = "booking session not found"
	msgSessionLimit      = "too many active booking sessions, try again later"
	msgInvalidFormInput  = "invalid form input"
	msgStepIncomplete    = "please fill in the required fields"
	msgTermsNotAccepted  = "please accept the terms and conditions"
	msgNoNextStep        = "already at the last step"
	msgNoPreviousStep    = "already at the first step"
	msgNotFinalStep      = "booking can only be submitted from the last step"
	msgSubmissionPending = "submission in progress"
	msgAlreadySubmitted  = "booking already submitted"
)

// RespondSessionError отвечает на ошибку сервиса сессий.
// Возвращает false, если ошибка не распознана и клиент получил 500.
func RespondSessionError(w http.ResponseWriter, err error) bool {
	var incomplete *wizard.StepIncompleteError

	switch {
	case errors.Is(err, bookingsession.ErrSessionNotFound):
		RespondNotFound(w, msgSessionNotFound)
	case errors.Is(err, bookingsession.ErrSessionLimit):
		RespondServiceUnavailable(w, msgSessionLimit)
	case errors.Is(err, bookingsession.ErrInvalidInput):
		RespondBadRequest(w, msgInvalidFormInput)
	case errors.As(err, &incomplete):
		RespondValidationError(w, ErrorResponse{Error: msgStepIncomplete, MissingFields: incomplete.Missing})
	case errors.Is(err, bookingsession.ErrTermsNotAccepted):
		RespondValidationError(w, ErrorResponse{Error: msgTermsNotAccepted, MissingFields: []string{"termsAccepted"}})
	case errors.Is(err, bookingsession.ErrNoNextStep):
		RespondConflict(w, msgNoNextStep)
	case errors.Is(err, bookingsession.ErrNoPreviousStep):
		RespondConflict(w, msgNoPreviousStep)
	case errors.Is(err, bookingsession.ErrNotFinalStep):
		RespondConflict(w, msgNotFinalStep)
	case errors.Is(err, bookingsession.ErrBusy):
		RespondConflict(w, msgSubmissionPending)
	case errors.Is(err, bookingsession.ErrAlreadySubmitted):
		RespondConflict(w, msgAlreadySubmitted)
	default:
		RespondInternalError(w)
		return false
	}
	return true
}
