package wizard

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrStepIncomplete возвращается, когда обязательные поля текущего шага не заполнены
	ErrStepIncomplete = errors.New("wizard: required fields of the current step are missing")

	// ErrNoNextStep возвращается при попытке перейти дальше последнего шага
	ErrNoNextStep = errors.New("wizard: already at the last step")

	// ErrNoPreviousStep возвращается при попытке вернуться с первого шага
	ErrNoPreviousStep = errors.New("wizard: already at the first step")

	// ErrNotFinalStep возвращается при попытке отправки не с последнего шага
	ErrNotFinalStep = errors.New("wizard: booking can only be submitted from the last step")

	// ErrTermsNotAccepted возвращается при отправке без согласия с условиями
	ErrTermsNotAccepted = errors.New("wizard: terms must be accepted before submitting")

	// ErrBusy возвращается, пока идёт отправка
	ErrBusy = errors.New("wizard: submission in progress")

	// ErrAlreadySubmitted возвращается после успешной отправки до автосброса
	ErrAlreadySubmitted = errors.New("wizard: booking already submitted")

	// ErrClosed возвращается после закрытия мастера
	ErrClosed = errors.New("wizard: closed")
)

// StepIncompleteError описывает, каких полей не хватает для перехода
type StepIncompleteError struct {
	Step    Step
	Missing []string
}

func (e *StepIncompleteError) Error() string {
	return fmt.Sprintf("wizard: step %d is missing %s", e.Step, strings.Join(e.Missing, ", "))
}

// Is позволяет сравнивать через errors.Is(err, ErrStepIncomplete)
func (e *StepIncompleteError) Is(target error) bool {
	return target == ErrStepIncomplete
}
