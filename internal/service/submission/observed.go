package submission

import (
	"context"

	"github.com/m04kA/SMC-InteriorStudio/internal/domain"
)

// Метки метрик отправки
const (
	FormBooking = "booking"
	FormContact = "contact"

	ResultSuccess   = "success"
	ResultFailure   = "failure"
	ResultCancelled = "cancelled"
)

// Observed учитывает результат каждой отправки в метриках
type Observed struct {
	next    Submitter
	backend string
	metrics MetricsRecorder
}

// NewObserved оборачивает backend учётом метрик
func NewObserved(next Submitter, backend string, metrics MetricsRecorder) *Observed {
	return &Observed{next: next, backend: backend, metrics: metrics}
}

func (o *Observed) SubmitBooking(ctx context.Context, form domain.BookingForm) error {
	err := o.next.SubmitBooking(ctx, form)
	o.metrics.ObserveSubmission(FormBooking, o.backend, result(ctx, err))
	return err
}

func (o *Observed) SubmitContact(ctx context.Context, msg domain.ContactMessage) error {
	err := o.next.SubmitContact(ctx, msg)
	o.metrics.ObserveSubmission(FormContact, o.backend, result(ctx, err))
	return err
}

func result(ctx context.Context, err error) string {
	switch {
	case err == nil:
		return ResultSuccess
	case ctx.Err() != nil:
		return ResultCancelled
	default:
		return ResultFailure
	}
}
