package wizard

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/m04kA/SMC-InteriorStudio/internal/domain"
)

// MsgSubmissionFailed сообщение для пользователя при неудачной отправке
const MsgSubmissionFailed = "We couldn't submit your booking. Please try again."

// Phase фаза жизненного цикла мастера
type Phase string

const (
	PhaseEditing    Phase = "editing"
	PhaseSubmitting Phase = "submitting"
	PhaseSubmitted  Phase = "submitted"
)

// Config параметры мастера
type Config struct {
	ID         string        // используется только в логах
	ResetDelay time.Duration // задержка автосброса после успешной отправки
}

// State снимок состояния мастера
type State struct {
	Step          Step
	Phase         Phase
	Loading       bool
	Success       bool
	Error         string
	Form          domain.BookingForm
	MissingFields []string
	CanContinue   bool
	CanSubmit     bool
	SubmittedAt   time.Time
	ResetAt       time.Time
	Closed        bool
}

// Wizard пошаговая форма записи.
// Переход вперёд закрыт, пока не заполнены обязательные поля шага;
// назад можно всегда, кроме первого шага.
type Wizard struct {
	mu         sync.Mutex
	id         string
	submitter  Submitter
	clock      Clock
	logger     Logger
	resetDelay time.Duration
	onSettled  func(err error)

	step        Step
	form        domain.BookingForm
	loading     bool
	success     bool
	errMsg      string
	submittedAt time.Time

	// generation растёт с каждой отправкой, чтобы устаревший таймер сброса ничего не трогал
	generation uint64
	settled    chan struct{}
	cancel     context.CancelFunc
	resetTimer Timer
	closed     bool
}

// New создает мастер на первом шаге с пустой формой
func New(submitter Submitter, clock Clock, cfg Config, logger Logger) *Wizard {
	if cfg.ResetDelay <= 0 {
		cfg.ResetDelay = domain.DefaultResetDelay
	}

	settled := make(chan struct{})
	close(settled)

	return &Wizard{
		id:         cfg.ID,
		submitter:  submitter,
		clock:      clock,
		logger:     logger,
		resetDelay: cfg.ResetDelay,
		step:       FirstStep,
		form:       domain.NewBookingForm(),
		settled:    settled,
	}
}

// OnSettled регистрирует обработчик завершения отправки (успех, ошибка или отмена).
// Вызывается вне блокировки мастера.
func (w *Wizard) OnSettled(fn func(err error)) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.onSettled = fn
}

// State возвращает снимок текущего состояния
func (w *Wizard) State() State {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.snapshot()
}

// Update частично обновляет поля формы
func (w *Wizard) Update(patch domain.FormPatch) (State, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if err := w.checkEditable(); err != nil {
		return w.snapshot(), err
	}

	next, err := w.form.Apply(patch)
	if err != nil {
		return w.snapshot(), err
	}

	w.form = next
	return w.snapshot(), nil
}

// ToggleContactMethod добавляет или убирает способ связи
func (w *Wizard) ToggleContactMethod(method domain.ContactMethod) (State, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if err := w.checkEditable(); err != nil {
		return w.snapshot(), err
	}

	methods, err := w.form.ContactMethods.Toggle(method)
	if err != nil {
		return w.snapshot(), err
	}

	w.form.ContactMethods = methods
	return w.snapshot(), nil
}

// Next переходит на следующий шаг, если заполнены обязательные поля текущего
func (w *Wizard) Next() (State, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if err := w.checkEditable(); err != nil {
		return w.snapshot(), err
	}

	if w.step >= LastStep {
		return w.snapshot(), ErrNoNextStep
	}

	if missing := MissingFields(w.step, &w.form); len(missing) > 0 {
		return w.snapshot(), &StepIncompleteError{Step: w.step, Missing: missing}
	}

	w.step++
	w.errMsg = ""
	return w.snapshot(), nil
}

// Back возвращает на предыдущий шаг без проверок
func (w *Wizard) Back() (State, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if err := w.checkEditable(); err != nil {
		return w.snapshot(), err
	}

	if w.step <= FirstStep {
		return w.snapshot(), ErrNoPreviousStep
	}

	w.step--
	w.errMsg = ""
	return w.snapshot(), nil
}

// Submit запускает асинхронную отправку формы.
// Возвращается сразу, состояние переходит в loading. Дождаться результата можно через Settled.
func (w *Wizard) Submit() (State, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if err := w.checkEditable(); err != nil {
		return w.snapshot(), err
	}

	if w.step != LastStep {
		return w.snapshot(), ErrNotFinalStep
	}

	if !w.form.TermsAccepted {
		return w.snapshot(), ErrTermsNotAccepted
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	w.generation++
	w.loading = true
	w.errMsg = ""
	w.cancel = cancel
	w.settled = done

	go w.run(ctx, w.generation, w.form, done)

	return w.snapshot(), nil
}

// Settled возвращает канал, закрывающийся после завершения текущей отправки.
// Если отправки нет, канал уже закрыт.
func (w *Wizard) Settled() <-chan struct{} {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.settled
}

// Close освобождает мастер: отменяет отправку и таймер автосброса.
// После закрытия состояние больше не меняется.
func (w *Wizard) Close() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return
	}
	w.closed = true

	if w.cancel != nil {
		w.cancel()
		w.cancel = nil
	}
	if w.resetTimer != nil {
		w.resetTimer.Stop()
		w.resetTimer = nil
	}
}

func (w *Wizard) run(ctx context.Context, generation uint64, form domain.BookingForm, done chan struct{}) {
	err := w.submitter.SubmitBooking(ctx, form)

	w.mu.Lock()
	hook := w.onSettled
	w.settle(generation, err)
	close(done)
	w.mu.Unlock()

	if hook != nil {
		hook(err)
	}
}

// settle фиксирует результат отправки, вызывается под блокировкой
func (w *Wizard) settle(generation uint64, err error) {
	if w.closed || generation != w.generation {
		return
	}

	w.loading = false
	if w.cancel != nil {
		w.cancel()
		w.cancel = nil
	}

	if err != nil {
		w.errMsg = MsgSubmissionFailed
		w.logger.Warn("Wizard %s: submission failed, staying on step %d: %v", w.id, w.step, err)
		return
	}

	w.success = true
	w.submittedAt = w.clock.Now()
	w.resetTimer = w.clock.AfterFunc(w.resetDelay, func() { w.reset(generation) })
	w.logger.Info("Wizard %s: booking submitted, reset in %s", w.id, w.resetDelay)
}

// reset возвращает мастер к первому шагу с новой формой
func (w *Wizard) reset(generation uint64) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed || generation != w.generation || !w.success {
		return
	}

	w.step = FirstStep
	w.form = domain.NewBookingForm()
	w.success = false
	w.errMsg = ""
	w.submittedAt = time.Time{}
	w.resetTimer = nil
	w.logger.Info("Wizard %s: reset after successful submission", w.id)
}

// checkEditable проверяет, что форму можно менять, вызывается под блокировкой
func (w *Wizard) checkEditable() error {
	switch {
	case w.closed:
		return ErrClosed
	case w.loading:
		return ErrBusy
	case w.success:
		return ErrAlreadySubmitted
	default:
		return nil
	}
}

func (w *Wizard) phase() Phase {
	switch {
	case w.loading:
		return PhaseSubmitting
	case w.success:
		return PhaseSubmitted
	default:
		return PhaseEditing
	}
}

// snapshot собирает State, вызывается под блокировкой
func (w *Wizard) snapshot() State {
	missing := MissingFields(w.step, &w.form)
	editable := w.checkEditable() == nil

	state := State{
		Step:          w.step,
		Phase:         w.phase(),
		Loading:       w.loading,
		Success:       w.success,
		Error:         w.errMsg,
		Form:          w.form,
		MissingFields: missing,
		CanContinue:   editable && w.step < LastStep && len(missing) == 0,
		CanSubmit:     editable && w.step == LastStep && len(missing) == 0,
		SubmittedAt:   w.submittedAt,
		Closed:        w.closed,
	}
	if w.success {
		state.ResetAt = w.submittedAt.Add(w.resetDelay)
	}
	return state
}

// String нужен для логов
func (s State) String() string {
	return fmt.Sprintf("step=%d phase=%s", s.Step, s.Phase)
}
