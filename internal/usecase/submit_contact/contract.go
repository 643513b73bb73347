package submit_contact

import (
	"context"

	"github.com/m04kA/SMC-InteriorStudio/internal/domain"
)

// ContactSubmitter приёмник обращений
type ContactSubmitter interface {
	SubmitContact(ctx context.Context, msg domain.ContactMessage) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
