package submit_contact

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/SMC-InteriorStudio/internal/domain"
)

// UseCase use case отправки формы обратной связи
type UseCase struct {
	submitter ContactSubmitter
	logger    Logger
	now       func() time.Time
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(submitter ContactSubmitter, logger Logger) *UseCase {
	return &UseCase{
		submitter: submitter,
		logger:    logger,
		now:       time.Now,
	}
}

// Execute валидирует форму и передаёт обращение приёмнику
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("SubmitContact: validation failed: %v", err)
		return nil, err
	}

	subscribe := true
	if req.Subscribe != nil {
		subscribe = *req.Subscribe
	}

	msg := domain.ContactMessage{
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		Subject:   req.Subject,
		Message:   req.Message,
		Subscribe: subscribe,
	}

	if err := uc.submitter.SubmitContact(ctx, msg); err != nil {
		uc.logger.Error("SubmitContact: submitter error for subject=%q: %v", msg.Subject, err)
		return nil, fmt.Errorf("%w: %v", ErrSubmissionFailed, err)
	}

	uc.logger.Info("SubmitContact: message accepted subject=%q subscribe=%t", msg.Subject, msg.Subscribe)

	return &Response{
		Success:     true,
		SubmittedAt: uc.now(),
	}, nil
}
