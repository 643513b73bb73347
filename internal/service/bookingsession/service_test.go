package bookingsession

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-InteriorStudio/internal/domain"
	sessionRepo "github.com/m04kA/SMC-InteriorStudio/internal/infra/storage/wizardsession"
	"github.com/m04kA/SMC-InteriorStudio/internal/service/bookingsession/models"
	"github.com/m04kA/SMC-InteriorStudio/internal/wizard"
	"github.com/m04kA/SMC-InteriorStudio/pkg/logger"
)

type submitterFunc func(ctx context.Context, form domain.BookingForm) error

func (f submitterFunc) SubmitBooking(ctx context.Context, form domain.BookingForm) error {
	return f(ctx, form)
}

type stoppedTimer struct{}

func (stoppedTimer) Stop() bool { return true }

// idleClock не запускает таймеры: автосброс в этих тестах не нужен
type idleClock struct{}

func (idleClock) Now() time.Time { return time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC) }

func (idleClock) AfterFunc(time.Duration, func()) wizard.Timer { return stoppedTimer{} }

type fakeMetrics struct {
	mu          sync.Mutex
	transitions map[string]int
	active      int
}

func (m *fakeMetrics) ObserveTransition(action, result string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.transitions == nil {
		m.transitions = make(map[string]int)
	}
	m.transitions[action+"/"+result]++
}

func (m *fakeMetrics) SetActiveSessions(n int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.active = n
}

func (m *fakeMetrics) count(key string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.transitions[key]
}

func newTestService(t *testing.T, submitter wizard.Submitter, maxSessions int) (*Service, *fakeMetrics) {
	t.Helper()
	metrics := &fakeMetrics{}
	repo := sessionRepo.NewRepository[*wizard.Wizard](time.Hour, maxSessions)
	svc := NewService(repo, submitter, idleClock{}, Config{ResetDelay: 5 * time.Second}, metrics, logger.Nop())

	var n int
	svc.newID = func() string {
		n++
		return fmt.Sprintf("session-%d", n)
	}
	t.Cleanup(svc.Shutdown)
	return svc, metrics
}

func okSubmitter() wizard.Submitter {
	return submitterFunc(func(context.Context, domain.BookingForm) error { return nil })
}

func ptr[T any](v T) *T { return &v }

func fillToConfirmation(t *testing.T, svc *Service, id string) {
	t.Helper()
	ctx := context.Background()

	_, err := svc.UpdateForm(ctx, id, &models.UpdateFormRequest{
		ServiceType:   ptr("Residential Design"),
		FullName:      ptr("Ada Lovelace"),
		Email:         ptr("ada@example.com"),
		Phone:         ptr("+2348000000000"),
		Address:       ptr("1 Marina Rd"),
		City:          ptr("Lagos"),
		PreferredDate: ptr("2026-10-20"),
		PreferredTime: ptr("10:00"),
	})
	require.NoError(t, err)

	for i := 0; i < 4; i++ {
		_, err := svc.Next(ctx, id)
		require.NoError(t, err)
	}
}

func TestService_CreateWithPrefill(t *testing.T) {
	svc, metrics := newTestService(t, okSubmitter(), 0)

	resp, err := svc.Create(context.Background(), &models.CreateSessionRequest{
		ServiceType:     ptr("Kitchen Design"),
		ServiceCategory: ptr("residential"),
	})
	require.NoError(t, err)

	assert.Equal(t, "session-1", resp.ID)
	assert.Equal(t, 1, resp.Step)
	assert.Equal(t, 5, resp.TotalSteps)
	assert.Equal(t, "Kitchen Design", resp.Form.ServiceType)
	assert.Equal(t, "residential", resp.Form.ServiceCategory)
	assert.Equal(t, []string{"phone"}, resp.Form.ContactMethods)
	assert.True(t, resp.CanContinue)
	assert.Equal(t, 1, metrics.active)
}

func TestService_CreateInvalidPrefill(t *testing.T) {
	svc, _ := newTestService(t, okSubmitter(), 0)

	long := make([]byte, domain.MaxFieldLength+1)
	for i := range long {
		long[i] = 'x'
	}
	_, err := svc.Create(context.Background(), &models.CreateSessionRequest{ServiceType: ptr(string(long))})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestService_SessionLimit(t *testing.T) {
	svc, _ := newTestService(t, okSubmitter(), 1)

	_, err := svc.Create(context.Background(), nil)
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), nil)
	assert.ErrorIs(t, err, ErrSessionLimit)
}

func TestService_NotFound(t *testing.T) {
	svc, _ := newTestService(t, okSubmitter(), 0)
	ctx := context.Background()

	_, err := svc.Get(ctx, "missing")
	assert.ErrorIs(t, err, ErrSessionNotFound)

	_, err = svc.Next(ctx, "missing")
	assert.ErrorIs(t, err, ErrSessionNotFound)

	assert.ErrorIs(t, svc.Close(ctx, "missing"), ErrSessionNotFound)
}

func TestService_NextIncomplete(t *testing.T) {
	svc, metrics := newTestService(t, okSubmitter(), 0)
	ctx := context.Background()

	created, err := svc.Create(ctx, nil)
	require.NoError(t, err)

	resp, err := svc.Next(ctx, created.ID)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrStepIncomplete)

	var incomplete *wizard.StepIncompleteError
	require.True(t, errors.As(err, &incomplete))
	assert.Equal(t, []string{"serviceType"}, incomplete.Missing)

	require.NotNil(t, resp)
	assert.Equal(t, 1, resp.Step)
	assert.Equal(t, 1, metrics.count("next/rejected"))
}

func TestService_BackAtFirstStep(t *testing.T) {
	svc, _ := newTestService(t, okSubmitter(), 0)
	ctx := context.Background()

	created, err := svc.Create(ctx, nil)
	require.NoError(t, err)

	_, err = svc.Back(ctx, created.ID)
	assert.ErrorIs(t, err, ErrNoPreviousStep)
}

func TestService_InvalidField(t *testing.T) {
	svc, _ := newTestService(t, okSubmitter(), 0)
	ctx := context.Background()

	created, err := svc.Create(ctx, nil)
	require.NoError(t, err)

	_, err = svc.UpdateForm(ctx, created.ID, &models.UpdateFormRequest{Urgency: ptr("yesterday")})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.ToggleContactMethod(ctx, created.ID, "pigeon")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestService_ToggleTwice(t *testing.T) {
	svc, _ := newTestService(t, okSubmitter(), 0)
	ctx := context.Background()

	created, err := svc.Create(ctx, nil)
	require.NoError(t, err)

	resp, err := svc.ToggleContactMethod(ctx, created.ID, "whatsapp")
	require.NoError(t, err)
	assert.Equal(t, []string{"phone", "whatsapp"}, resp.Form.ContactMethods)

	resp, err = svc.ToggleContactMethod(ctx, created.ID, "whatsapp")
	require.NoError(t, err)
	assert.Equal(t, created.Form.ContactMethods, resp.Form.ContactMethods)
}

func TestService_SubmitFlow(t *testing.T) {
	var got domain.BookingForm
	svc, metrics := newTestService(t, submitterFunc(func(_ context.Context, form domain.BookingForm) error {
		got = form
		return nil
	}), 0)
	ctx := context.Background()

	created, err := svc.Create(ctx, nil)
	require.NoError(t, err)
	fillToConfirmation(t, svc, created.ID)

	_, err = svc.Submit(ctx, created.ID, true)
	assert.ErrorIs(t, err, ErrTermsNotAccepted)

	_, err = svc.UpdateForm(ctx, created.ID, &models.UpdateFormRequest{TermsAccepted: ptr(true)})
	require.NoError(t, err)

	resp, err := svc.Submit(ctx, created.ID, true)
	require.NoError(t, err)

	assert.True(t, resp.Success)
	assert.False(t, resp.Loading)
	assert.Equal(t, "submitted", resp.Phase)
	require.NotNil(t, resp.ResetAt)
	assert.Equal(t, resp.SubmittedAt.Add(5*time.Second), *resp.ResetAt)
	assert.Equal(t, "Ada Lovelace", got.FullName)

	_, err = svc.Back(ctx, created.ID)
	assert.ErrorIs(t, err, ErrAlreadySubmitted)

	assert.Eventually(t, func() bool { return metrics.count("settle/success") == 1 }, time.Second, 5*time.Millisecond)
}

func TestService_SubmitFailure(t *testing.T) {
	svc, metrics := newTestService(t, submitterFunc(func(context.Context, domain.BookingForm) error {
		return errors.New("crm unavailable")
	}), 0)
	ctx := context.Background()

	created, err := svc.Create(ctx, nil)
	require.NoError(t, err)
	fillToConfirmation(t, svc, created.ID)
	_, err = svc.UpdateForm(ctx, created.ID, &models.UpdateFormRequest{TermsAccepted: ptr(true)})
	require.NoError(t, err)

	resp, err := svc.Submit(ctx, created.ID, true)
	require.NoError(t, err)

	assert.False(t, resp.Success)
	assert.False(t, resp.Loading)
	assert.Equal(t, 5, resp.Step)
	assert.Equal(t, wizard.MsgSubmissionFailed, resp.Error)
	assert.Equal(t, "Ada Lovelace", resp.Form.FullName)
	assert.Eventually(t, func() bool { return metrics.count("settle/failure") == 1 }, time.Second, 5*time.Millisecond)
}

func TestService_SubmitWithoutWait(t *testing.T) {
	release := make(chan struct{})
	svc, _ := newTestService(t, submitterFunc(func(ctx context.Context, _ domain.BookingForm) error {
		select {
		case <-release:
			return nil
		case <-ctx.Done():
			return ctx.Err()
		}
	}), 0)
	ctx := context.Background()

	created, err := svc.Create(ctx, nil)
	require.NoError(t, err)
	fillToConfirmation(t, svc, created.ID)
	_, err = svc.UpdateForm(ctx, created.ID, &models.UpdateFormRequest{TermsAccepted: ptr(true)})
	require.NoError(t, err)

	resp, err := svc.Submit(ctx, created.ID, false)
	require.NoError(t, err)
	assert.True(t, resp.Loading)
	assert.Equal(t, "submitting", resp.Phase)

	_, err = svc.Next(ctx, created.ID)
	assert.ErrorIs(t, err, ErrBusy)

	close(release)
	require.Eventually(t, func() bool {
		r, err := svc.Get(ctx, created.ID)
		return err == nil && r.Success
	}, time.Second, 5*time.Millisecond)
}

func TestService_SubmitWaitCancelled(t *testing.T) {
	svc, _ := newTestService(t, submitterFunc(func(ctx context.Context, _ domain.BookingForm) error {
		<-ctx.Done()
		return ctx.Err()
	}), 0)

	created, err := svc.Create(context.Background(), nil)
	require.NoError(t, err)
	fillToConfirmation(t, svc, created.ID)
	_, err = svc.UpdateForm(context.Background(), created.ID, &models.UpdateFormRequest{TermsAccepted: ptr(true)})
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	resp, err := svc.Submit(ctx, created.ID, true)
	require.NoError(t, err)
	assert.True(t, resp.Loading)
}

func TestService_Close(t *testing.T) {
	svc, metrics := newTestService(t, okSubmitter(), 0)
	ctx := context.Background()

	created, err := svc.Create(ctx, nil)
	require.NoError(t, err)

	require.NoError(t, svc.Close(ctx, created.ID))
	assert.Equal(t, 0, metrics.active)

	_, err = svc.Get(ctx, created.ID)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestService_CloseDuringSubmission(t *testing.T) {
	started := make(chan struct{})
	svc, metrics := newTestService(t, submitterFunc(func(ctx context.Context, _ domain.BookingForm) error {
		close(started)
		<-ctx.Done()
		// HTTP клиент теряет context.Canceled при оборачивании ошибки
		return fmt.Errorf("lead service unavailable: %v", ctx.Err())
	}), 0)
	ctx := context.Background()

	created, err := svc.Create(ctx, nil)
	require.NoError(t, err)
	fillToConfirmation(t, svc, created.ID)
	_, err = svc.UpdateForm(ctx, created.ID, &models.UpdateFormRequest{TermsAccepted: ptr(true)})
	require.NoError(t, err)

	_, err = svc.Submit(ctx, created.ID, false)
	require.NoError(t, err)
	<-started

	require.NoError(t, svc.Close(ctx, created.ID))

	assert.Eventually(t, func() bool { return metrics.count("settle/cancelled") == 1 }, time.Second, 5*time.Millisecond)
	assert.Equal(t, 0, metrics.count("settle/failure"))
}

func TestSettleResult(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		closed bool
		want   string
	}{
		{name: "success", want: resultSuccess},
		{name: "backend failure", err: errors.New("crm unavailable"), want: resultFailure},
		{name: "context cancelled", err: fmt.Errorf("submit: %w", context.Canceled), want: resultCancelled},
		{name: "closed wizard", err: errors.New("request aborted"), closed: true, want: resultCancelled},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, settleResult(tt.err, tt.closed))
		})
	}
}

func TestService_RunJanitor(t *testing.T) {
	metrics := &fakeMetrics{}
	repo := sessionRepo.NewRepository[*wizard.Wizard](time.Millisecond, 0)
	svc := NewService(repo, okSubmitter(), idleClock{}, Config{}, metrics, logger.Nop())

	_, err := svc.Create(context.Background(), nil)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		svc.RunJanitor(ctx, 2*time.Millisecond)
		close(done)
	}()

	require.Eventually(t, func() bool { return repo.Len() == 0 }, time.Second, 2*time.Millisecond)
	cancel()
	<-done
}
