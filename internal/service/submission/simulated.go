package submission

import (
	"context"
	"time"

	"github.com/m04kA/SMC-InteriorStudio/internal/domain"
)

// Simulated имитирует отправку фиксированной задержкой и всегда принимает заявку
type Simulated struct {
	latency time.Duration
	logger  Logger
}

// NewSimulated создает имитацию с задержкой latency
func NewSimulated(latency time.Duration, logger Logger) *Simulated {
	return &Simulated{latency: latency, logger: logger}
}

// SubmitBooking ждёт latency; отмена ctx прерывает ожидание
func (s *Simulated) SubmitBooking(ctx context.Context, form domain.BookingForm) error {
	if err := s.wait(ctx); err != nil {
		return err
	}
	s.logger.Info("Simulated: booking accepted service=%q", form.ServiceType)
	return nil
}

// SubmitContact ждёт latency; отмена ctx прерывает ожидание
func (s *Simulated) SubmitContact(ctx context.Context, msg domain.ContactMessage) error {
	if err := s.wait(ctx); err != nil {
		return err
	}
	s.logger.Info("Simulated: contact message accepted subject=%q", msg.Subject)
	return nil
}

func (s *Simulated) wait(ctx context.Context) error {
	if s.latency <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(s.latency)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
