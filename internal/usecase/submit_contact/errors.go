package submit_contact

import (
	"errors"
	"sort"
	"strings"
)

var (
	// ErrInvalidInput возвращается при ошибках валидации формы
	ErrInvalidInput = errors.New("submit_contact: invalid input data")

	// ErrSubmissionFailed возвращается, когда приёмник не принял обращение
	ErrSubmissionFailed = errors.New("submit_contact: submission failed")
)

// ValidationError ошибки валидации по полям (поле -> сообщение для пользователя)
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)
	return "submit_contact: invalid fields: " + strings.Join(names, ", ")
}

// Is позволяет сравнивать через errors.Is(err, ErrInvalidInput)
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}
