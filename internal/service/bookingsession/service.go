package bookingsession

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-InteriorStudio/internal/domain"
	sessionRepo "github.com/m04kA/SMC-InteriorStudio/internal/infra/storage/wizardsession"
	"github.com/m04kA/SMC-InteriorStudio/internal/service/bookingsession/models"
	"github.com/m04kA/SMC-InteriorStudio/internal/wizard"
)

// Действия мастера (метка метрик)
const (
	actionCreate = "create"
	actionUpdate = "update"
	actionToggle = "toggle"
	actionNext   = "next"
	actionBack   = "back"
	actionSubmit = "submit"
	actionSettle = "settle"
	actionClose  = "close"

	resultOK        = "ok"
	resultRejected  = "rejected"
	resultSuccess   = "success"
	resultFailure   = "failure"
	resultCancelled = "cancelled"
)

// Config параметры сервиса
type Config struct {
	ResetDelay time.Duration
}

// Service управляет сессиями мастера записи
type Service struct {
	repo      SessionRepository
	submitter wizard.Submitter
	clock     wizard.Clock
	cfg       Config
	metrics   MetricsRecorder
	logger    Logger
	newID     func() string
}

// NewService создает новый экземпляр сервиса сессий
func NewService(
	repo SessionRepository,
	submitter wizard.Submitter,
	clock wizard.Clock,
	cfg Config,
	metrics MetricsRecorder,
	logger Logger,
) *Service {
	return &Service{
		repo:      repo,
		submitter: submitter,
		clock:     clock,
		cfg:       cfg,
		metrics:   metrics,
		logger:    logger,
		newID:     uuid.NewString,
	}
}

// Create открывает новый мастер, при необходимости предзаполняя услугу
func (s *Service) Create(ctx context.Context, req *models.CreateSessionRequest) (*models.SessionResponse, error) {
	id := s.newID()
	w := wizard.New(s.submitter, s.clock, wizard.Config{ID: id, ResetDelay: s.cfg.ResetDelay}, s.logger)

	if req != nil && (req.ServiceType != nil || req.ServiceCategory != nil) {
		_, err := w.Update(domain.FormPatch{ServiceType: req.ServiceType, ServiceCategory: req.ServiceCategory})
		if err != nil {
			w.Close()
			s.logger.Warn("Create: invalid prefill: %v", err)
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
	}

	w.OnSettled(func(err error) {
		s.metrics.ObserveTransition(actionSettle, settleResult(err, w.State().Closed))
	})

	if err := s.repo.Save(id, w); err != nil {
		w.Close()
		if errors.Is(err, sessionRepo.ErrTooManySessions) {
			s.logger.Warn("Create: session limit reached (active=%d)", s.repo.Len())
			return nil, ErrSessionLimit
		}
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.metrics.ObserveTransition(actionCreate, resultOK)
	s.metrics.SetActiveSessions(s.repo.Len())
	s.logger.Info("Create: session id=%s opened", id)

	return models.FromWizardState(id, w.State()), nil
}

// Get возвращает снимок мастера
func (s *Service) Get(ctx context.Context, id string) (*models.SessionResponse, error) {
	w, err := s.get(id)
	if err != nil {
		return nil, err
	}
	return models.FromWizardState(id, w.State()), nil
}

// UpdateForm частично обновляет форму
func (s *Service) UpdateForm(ctx context.Context, id string, req *models.UpdateFormRequest) (*models.SessionResponse, error) {
	return s.apply(id, actionUpdate, func(w *wizard.Wizard) (wizard.State, error) {
		return w.Update(req.ToDomainPatch())
	})
}

// ToggleContactMethod добавляет или убирает способ связи
func (s *Service) ToggleContactMethod(ctx context.Context, id string, method string) (*models.SessionResponse, error) {
	return s.apply(id, actionToggle, func(w *wizard.Wizard) (wizard.State, error) {
		return w.ToggleContactMethod(domain.ContactMethod(method))
	})
}

// Next переходит на следующий шаг
func (s *Service) Next(ctx context.Context, id string) (*models.SessionResponse, error) {
	return s.apply(id, actionNext, (*wizard.Wizard).Next)
}

// Back возвращает на предыдущий шаг
func (s *Service) Back(ctx context.Context, id string) (*models.SessionResponse, error) {
	return s.apply(id, actionBack, (*wizard.Wizard).Back)
}

// Submit запускает отправку. При wait дожидается результата или отмены ctx,
// сама отправка при отмене ctx не прерывается.
func (s *Service) Submit(ctx context.Context, id string, wait bool) (*models.SessionResponse, error) {
	w, err := s.get(id)
	if err != nil {
		return nil, err
	}

	state, err := w.Submit()
	if err != nil {
		s.metrics.ObserveTransition(actionSubmit, resultRejected)
		s.logger.Warn("Submit: session id=%s rejected at %s: %v", id, state, err)
		return models.FromWizardState(id, state), s.mapError(err)
	}
	s.metrics.ObserveTransition(actionSubmit, resultOK)
	s.logger.Info("Submit: session id=%s submission started", id)

	if !wait {
		return models.FromWizardState(id, state), nil
	}

	select {
	case <-w.Settled():
	case <-ctx.Done():
		s.logger.Warn("Submit: session id=%s stopped waiting: %v", id, ctx.Err())
	}

	return models.FromWizardState(id, w.State()), nil
}

// Close закрывает мастер и отменяет его таймеры
func (s *Service) Close(ctx context.Context, id string) error {
	if err := s.repo.Delete(id); err != nil {
		if errors.Is(err, sessionRepo.ErrSessionNotFound) {
			return ErrSessionNotFound
		}
		return fmt.Errorf("%w: Close - repository error: %v", ErrInternal, err)
	}

	s.metrics.ObserveTransition(actionClose, resultOK)
	s.metrics.SetActiveSessions(s.repo.Len())
	s.logger.Info("Close: session id=%s closed", id)
	return nil
}

// RunJanitor периодически удаляет истекшие сессии до отмены ctx
func (s *Service) RunJanitor(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := s.repo.EvictExpired(); n > 0 {
				s.logger.Info("RunJanitor: evicted %d expired sessions", n)
			}
			s.metrics.SetActiveSessions(s.repo.Len())
		}
	}
}

// Shutdown закрывает все сессии
func (s *Service) Shutdown() {
	n := s.repo.CloseAll()
	s.metrics.SetActiveSessions(0)
	s.logger.Info("Shutdown: closed %d sessions", n)
}

func (s *Service) get(id string) (*wizard.Wizard, error) {
	w, err := s.repo.Get(id)
	if err != nil {
		if errors.Is(err, sessionRepo.ErrSessionNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("%w: repository error: %v", ErrInternal, err)
	}
	return w, nil
}

func (s *Service) apply(id, action string, fn func(w *wizard.Wizard) (wizard.State, error)) (*models.SessionResponse, error) {
	w, err := s.get(id)
	if err != nil {
		return nil, err
	}

	state, err := fn(w)
	if err != nil {
		s.metrics.ObserveTransition(action, resultRejected)
		s.logger.Info("%s: session id=%s rejected at %s: %v", action, id, state, err)
		return models.FromWizardState(id, state), s.mapError(err)
	}

	s.metrics.ObserveTransition(action, resultOK)
	return models.FromWizardState(id, state), nil
}

// mapError сохраняет исходную ошибку мастера в цепочке, чтобы errors.As находил StepIncompleteError
func (s *Service) mapError(err error) error {
	var target error
	switch {
	case errors.Is(err, wizard.ErrStepIncomplete):
		target = ErrStepIncomplete
	case errors.Is(err, wizard.ErrTermsNotAccepted):
		target = ErrTermsNotAccepted
	case errors.Is(err, domain.ErrInvalidField):
		target = ErrInvalidInput
	case errors.Is(err, wizard.ErrNoNextStep):
		target = ErrNoNextStep
	case errors.Is(err, wizard.ErrNoPreviousStep):
		target = ErrNoPreviousStep
	case errors.Is(err, wizard.ErrNotFinalStep):
		target = ErrNotFinalStep
	case errors.Is(err, wizard.ErrBusy):
		target = ErrBusy
	case errors.Is(err, wizard.ErrAlreadySubmitted):
		target = ErrAlreadySubmitted
	case errors.Is(err, wizard.ErrClosed):
		target = ErrSessionNotFound
	default:
		target = ErrInternal
	}
	return fmt.Errorf("%w: %w", target, err)
}

// settleResult метка завершения отправки. Отправка, прерванная закрытием мастера
// (удаление сессии, истечение TTL, остановка сервера), ошибкой не считается.
func settleResult(err error, closed bool) string {
	switch {
	case err == nil:
		return resultSuccess
	case closed || errors.Is(err, context.Canceled):
		return resultCancelled
	default:
		return resultFailure
	}
}
