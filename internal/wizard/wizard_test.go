package wizard

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-InteriorStudio/internal/domain"
)

// --- test doubles ---

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeClock struct {
	mu     sync.Mutex
	now    time.Time
	timers []*fakeTimer
}

type fakeTimer struct {
	clock   *fakeClock
	at      time.Time
	fn      func()
	done    bool
	stopped bool
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2026, 10, 18, 10, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) AfterFunc(d time.Duration, f func()) Timer {
	c.mu.Lock()
	defer c.mu.Unlock()
	t := &fakeTimer{clock: c, at: c.now.Add(d), fn: f}
	c.timers = append(c.timers, t)
	return t
}

func (t *fakeTimer) Stop() bool {
	t.clock.mu.Lock()
	defer t.clock.mu.Unlock()
	if t.done {
		return false
	}
	t.done = true
	t.stopped = true
	return true
}

// Advance сдвигает время и синхронно вызывает наступившие таймеры
func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	var due []*fakeTimer
	for _, t := range c.timers {
		if !t.done && !t.at.After(c.now) {
			t.done = true
			due = append(due, t)
		}
	}
	c.mu.Unlock()

	for _, t := range due {
		t.fn()
	}
}

type submitterFunc func(ctx context.Context, form domain.BookingForm) error

func (f submitterFunc) SubmitBooking(ctx context.Context, form domain.BookingForm) error {
	return f(ctx, form)
}

// gatedSubmitter блокирует отправку до release или отмены контекста
type gatedSubmitter struct {
	release chan error
	mu      sync.Mutex
	got     []domain.BookingForm
}

func newGatedSubmitter() *gatedSubmitter {
	return &gatedSubmitter{release: make(chan error, 1)}
}

func (g *gatedSubmitter) SubmitBooking(ctx context.Context, form domain.BookingForm) error {
	g.mu.Lock()
	g.got = append(g.got, form)
	g.mu.Unlock()

	select {
	case err := <-g.release:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// --- helpers ---

const testResetDelay = 5 * time.Second

func newTestWizard(submitter Submitter, clock Clock) *Wizard {
	return New(submitter, clock, Config{ID: "test", ResetDelay: testResetDelay}, nopLogger{})
}

func s(v string) *string { return &v }

var stepPatches = map[Step]domain.FormPatch{
	StepService: {ServiceType: s("POP Ceiling Installation")},
	StepPersonal: {
		FullName: s("Taofeek K."),
		Email:    s("client@example.com"),
		Phone:    s("+2348000000000"),
		Address:  s("Mokola Street"),
		City:     s("Ibadan"),
	},
	StepAppointment: {PreferredDate: s("2026-10-20"), PreferredTime: s("10:00")},
	StepProject:     {Area: s("120"), AdditionalNotes: s("living room ceiling")},
}

// advanceTo заполняет шаги до target и переходит на него
func advanceTo(t *testing.T, w *Wizard, target Step) {
	t.Helper()
	for step := FirstStep; step < target; step++ {
		_, err := w.Update(stepPatches[step])
		require.NoError(t, err)
		state, err := w.Next()
		require.NoError(t, err)
		require.Equal(t, step+1, state.Step)
	}
}

func acceptTerms(t *testing.T, w *Wizard) {
	t.Helper()
	yes := true
	_, err := w.Update(domain.FormPatch{TermsAccepted: &yes})
	require.NoError(t, err)
}

func waitSettled(t *testing.T, w *Wizard) {
	t.Helper()
	select {
	case <-w.Settled():
	case <-time.After(2 * time.Second):
		t.Fatal("submission did not settle")
	}
}

// --- tests ---

func TestNew_StartsAtFirstStepWithDefaults(t *testing.T) {
	w := newTestWizard(newGatedSubmitter(), newFakeClock())

	state := w.State()
	assert.Equal(t, StepService, state.Step)
	assert.Equal(t, PhaseEditing, state.Phase)
	assert.Equal(t, domain.NewBookingForm(), state.Form)
	assert.False(t, state.CanContinue)
	assert.Equal(t, []string{"serviceType"}, state.MissingFields)
}

func TestNext_BlockedWhileStepFieldsMissing(t *testing.T) {
	for step := StepService; step <= StepAppointment; step++ {
		for _, field := range RequiredFields(step) {
			t.Run(step.Title()+"/"+field, func(t *testing.T) {
				w := newTestWizard(newGatedSubmitter(), newFakeClock())
				advanceTo(t, w, step)

				_, err := w.Update(stepPatches[step])
				require.NoError(t, err)
				_, err = w.Update(clearField(field))
				require.NoError(t, err)

				state, err := w.Next()
				require.ErrorIs(t, err, ErrStepIncomplete)

				var incomplete *StepIncompleteError
				require.True(t, errors.As(err, &incomplete))
				assert.Equal(t, []string{field}, incomplete.Missing)
				assert.Equal(t, step, state.Step)
				assert.False(t, state.CanContinue)
			})
		}
	}
}

func TestNext_WhitespaceDoesNotCount(t *testing.T) {
	w := newTestWizard(newGatedSubmitter(), newFakeClock())

	_, err := w.Update(domain.FormPatch{ServiceType: s("   ")})
	require.NoError(t, err)

	state, err := w.Next()
	require.ErrorIs(t, err, ErrStepIncomplete)
	assert.Equal(t, StepService, state.Step)
}

func TestNext_ProjectStepHasNoRequiredFields(t *testing.T) {
	w := newTestWizard(newGatedSubmitter(), newFakeClock())
	advanceTo(t, w, StepProject)

	state, err := w.Next()
	require.NoError(t, err)
	assert.Equal(t, StepConfirmation, state.Step)
}

func TestNext_PincodeIsOptional(t *testing.T) {
	w := newTestWizard(newGatedSubmitter(), newFakeClock())
	advanceTo(t, w, StepPersonal)

	_, err := w.Update(stepPatches[StepPersonal])
	require.NoError(t, err)

	state, err := w.Next()
	require.NoError(t, err)
	assert.Equal(t, StepAppointment, state.Step)
	assert.Empty(t, state.Form.Pincode)
}

func TestNext_AtLastStep(t *testing.T) {
	w := newTestWizard(newGatedSubmitter(), newFakeClock())
	advanceTo(t, w, StepConfirmation)
	acceptTerms(t, w)

	state, err := w.Next()
	require.ErrorIs(t, err, ErrNoNextStep)
	assert.Equal(t, StepConfirmation, state.Step)
}

func TestBack_IsUnconditional(t *testing.T) {
	for step := StepPersonal; step <= StepConfirmation; step++ {
		t.Run(step.Title(), func(t *testing.T) {
			w := newTestWizard(newGatedSubmitter(), newFakeClock())
			advanceTo(t, w, step)

			// обнуляем всё, что было заполнено: назад всё равно можно
			for _, field := range []string{"serviceType", "fullName", "email", "preferredDate"} {
				_, err := w.Update(clearField(field))
				require.NoError(t, err)
			}

			state, err := w.Back()
			require.NoError(t, err)
			assert.Equal(t, step-1, state.Step)
		})
	}
}

func TestBack_AtFirstStep(t *testing.T) {
	w := newTestWizard(newGatedSubmitter(), newFakeClock())

	state, err := w.Back()
	require.ErrorIs(t, err, ErrNoPreviousStep)
	assert.Equal(t, StepService, state.Step)
}

func TestToggleContactMethod_TwiceRestores(t *testing.T) {
	w := newTestWizard(newGatedSubmitter(), newFakeClock())
	before := w.State().Form.ContactMethods

	for _, m := range domain.ContactMethods {
		_, err := w.ToggleContactMethod(m)
		require.NoError(t, err)
		state, err := w.ToggleContactMethod(m)
		require.NoError(t, err)
		assert.Equal(t, before, state.Form.ContactMethods, "method %s", m)
	}
}

func TestToggleContactMethod_AllowsEmptySet(t *testing.T) {
	w := newTestWizard(newGatedSubmitter(), newFakeClock())

	state, err := w.ToggleContactMethod(domain.ContactPhone)
	require.NoError(t, err)
	assert.Empty(t, state.Form.ContactMethods.List())
}

func TestUpdate_InvalidFieldKeepsForm(t *testing.T) {
	w := newTestWizard(newGatedSubmitter(), newFakeClock())
	bad := domain.Urgency("asap")

	state, err := w.Update(domain.FormPatch{Urgency: &bad, City: s("Lagos")})
	require.ErrorIs(t, err, domain.ErrInvalidField)
	assert.Equal(t, domain.UrgencyNormal, state.Form.Urgency)
	assert.Empty(t, state.Form.City)
}

func TestSubmit_Guards(t *testing.T) {
	t.Run("not final step", func(t *testing.T) {
		w := newTestWizard(newGatedSubmitter(), newFakeClock())
		advanceTo(t, w, StepProject)
		acceptTerms(t, w)

		_, err := w.Submit()
		require.ErrorIs(t, err, ErrNotFinalStep)
	})

	t.Run("terms not accepted", func(t *testing.T) {
		w := newTestWizard(newGatedSubmitter(), newFakeClock())
		advanceTo(t, w, StepConfirmation)

		state, err := w.Submit()
		require.ErrorIs(t, err, ErrTermsNotAccepted)
		assert.False(t, state.Loading)
		assert.False(t, state.CanSubmit)
		assert.Equal(t, []string{"termsAccepted"}, state.MissingFields)
	})
}

func TestSubmit_SuccessThenAutoReset(t *testing.T) {
	clock := newFakeClock()
	submitter := newGatedSubmitter()
	w := newTestWizard(submitter, clock)
	advanceTo(t, w, StepConfirmation)
	acceptTerms(t, w)

	state, err := w.Submit()
	require.NoError(t, err)
	assert.True(t, state.Loading)
	assert.Equal(t, PhaseSubmitting, state.Phase)

	// пока идёт отправка, любые действия заблокированы
	_, err = w.Back()
	require.ErrorIs(t, err, ErrBusy)
	_, err = w.Submit()
	require.ErrorIs(t, err, ErrBusy)

	submitter.release <- nil
	waitSettled(t, w)

	state = w.State()
	assert.False(t, state.Loading)
	assert.True(t, state.Success)
	assert.Equal(t, PhaseSubmitted, state.Phase)
	assert.Equal(t, clock.Now().Add(testResetDelay), state.ResetAt)
	require.Len(t, submitter.got, 1)
	assert.Equal(t, "Taofeek K.", submitter.got[0].FullName)

	_, err = w.Next()
	require.ErrorIs(t, err, ErrAlreadySubmitted)

	// не раньше таймаута
	clock.Advance(testResetDelay - time.Millisecond)
	state = w.State()
	assert.True(t, state.Success)
	assert.Equal(t, StepConfirmation, state.Step)

	clock.Advance(time.Millisecond)
	state = w.State()
	assert.False(t, state.Success)
	assert.Equal(t, StepService, state.Step)
	assert.Equal(t, domain.NewBookingForm(), state.Form)
	assert.Equal(t, PhaseEditing, state.Phase)
}

func TestSubmit_FailureKeepsStepAndForm(t *testing.T) {
	clock := newFakeClock()
	submitter := newGatedSubmitter()
	w := newTestWizard(submitter, clock)
	advanceTo(t, w, StepConfirmation)
	acceptTerms(t, w)
	before := w.State().Form

	_, err := w.Submit()
	require.NoError(t, err)
	submitter.release <- errors.New("upstream unavailable")
	waitSettled(t, w)

	state := w.State()
	assert.Equal(t, StepConfirmation, state.Step)
	assert.False(t, state.Loading)
	assert.False(t, state.Success)
	assert.Equal(t, MsgSubmissionFailed, state.Error)
	assert.Equal(t, before, state.Form)

	// нет таймера сброса после ошибки
	clock.Advance(time.Hour)
	assert.Equal(t, StepConfirmation, w.State().Step)

	// повторная отправка сбрасывает ошибку
	state, err = w.Submit()
	require.NoError(t, err)
	assert.Empty(t, state.Error)
	submitter.release <- nil
	waitSettled(t, w)
	assert.True(t, w.State().Success)
}

func TestSubmit_OnSettledHook(t *testing.T) {
	failure := errors.New("boom")
	w := newTestWizard(submitterFunc(func(context.Context, domain.BookingForm) error {
		return failure
	}), newFakeClock())

	got := make(chan error, 1)
	w.OnSettled(func(err error) { got <- err })

	advanceTo(t, w, StepConfirmation)
	acceptTerms(t, w)
	_, err := w.Submit()
	require.NoError(t, err)

	select {
	case err := <-got:
		assert.ErrorIs(t, err, failure)
	case <-time.After(2 * time.Second):
		t.Fatal("hook was not called")
	}
}

func TestClose_CancelsInFlightSubmission(t *testing.T) {
	submitter := newGatedSubmitter()
	w := newTestWizard(submitter, newFakeClock())
	advanceTo(t, w, StepConfirmation)
	acceptTerms(t, w)

	_, err := w.Submit()
	require.NoError(t, err)

	w.Close()
	waitSettled(t, w)

	state := w.State()
	assert.True(t, state.Closed)
	assert.False(t, state.Success)

	_, err = w.Update(domain.FormPatch{City: s("Abuja")})
	require.ErrorIs(t, err, ErrClosed)
	_, err = w.Back()
	require.ErrorIs(t, err, ErrClosed)
}

func TestClose_StopsPendingReset(t *testing.T) {
	clock := newFakeClock()
	w := newTestWizard(submitterFunc(func(context.Context, domain.BookingForm) error { return nil }), clock)
	advanceTo(t, w, StepConfirmation)
	acceptTerms(t, w)

	_, err := w.Submit()
	require.NoError(t, err)
	waitSettled(t, w)
	require.True(t, w.State().Success)

	w.Close()
	clock.Advance(testResetDelay)

	state := w.State()
	assert.Equal(t, StepConfirmation, state.Step)
	assert.True(t, state.Success)
	assert.True(t, state.Closed)
}

func TestSettled_ClosedWhenIdle(t *testing.T) {
	w := newTestWizard(newGatedSubmitter(), newFakeClock())

	select {
	case <-w.Settled():
	default:
		t.Fatal("idle wizard must report settled")
	}
}

func clearField(field string) domain.FormPatch {
	empty := ""
	switch field {
	case "serviceType":
		return domain.FormPatch{ServiceType: &empty}
	case "fullName":
		return domain.FormPatch{FullName: &empty}
	case "email":
		return domain.FormPatch{Email: &empty}
	case "phone":
		return domain.FormPatch{Phone: &empty}
	case "address":
		return domain.FormPatch{Address: &empty}
	case "city":
		return domain.FormPatch{City: &empty}
	case "preferredDate":
		return domain.FormPatch{PreferredDate: &empty}
	case "preferredTime":
		return domain.FormPatch{PreferredTime: &empty}
	default:
		return domain.FormPatch{}
	}
}
