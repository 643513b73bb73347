package wizard

import (
	"context"
	"time"

	"github.com/m04kA/SMC-InteriorStudio/internal/domain"
)

// Submitter отправляет заполненную форму записи. Ошибка означает, что заявка не принята.
type Submitter interface {
	SubmitBooking(ctx context.Context, form domain.BookingForm) error
}

// Timer отменяемый таймер
type Timer interface {
	Stop() bool
}

// Clock источник времени и таймеров (подменяется в тестах)
type Clock interface {
	Now() time.Time
	AfterFunc(d time.Duration, f func()) Timer
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealClock реальные часы для production
type RealClock struct{}

// Now возвращает текущее время
func (RealClock) Now() time.Time {
	return time.Now()
}

// AfterFunc запускает f через d в отдельной горутине
func (RealClock) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}
