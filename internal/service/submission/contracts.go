package submission

import (
	"context"

	"github.com/m04kA/SMC-InteriorStudio/internal/domain"
)

// Submitter приёмник заявок
type Submitter interface {
	SubmitBooking(ctx context.Context, form domain.BookingForm) error
	SubmitContact(ctx context.Context, msg domain.ContactMessage) error
}

// BookingRepository интерфейс репозитория заявок на консультацию
type BookingRepository interface {
	Create(ctx context.Context, req *domain.BookingRequest) (*domain.BookingRequest, error)
}

// ContactRepository интерфейс репозитория обращений
type ContactRepository interface {
	Create(ctx context.Context, req *domain.ContactRequest) (*domain.ContactRequest, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// MetricsRecorder учёт отправок
type MetricsRecorder interface {
	ObserveSubmission(form, backend, result string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
