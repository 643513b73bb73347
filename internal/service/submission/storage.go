package submission

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-InteriorStudio/internal/domain"
)

// Storage сохраняет заявки в PostgreSQL
type Storage struct {
	bookings     BookingRepository
	contacts     ContactRepository
	txManager    TransactionManager
	logger       Logger
	newReference func() string
}

// NewStorage создает backend хранения
func NewStorage(bookings BookingRepository, contacts ContactRepository, txManager TransactionManager, logger Logger) *Storage {
	return &Storage{
		bookings:     bookings,
		contacts:     contacts,
		txManager:    txManager,
		logger:       logger,
		newReference: uuid.NewString,
	}
}

// SubmitBooking сохраняет заявку вместе со способами связи в одной транзакции
func (s *Storage) SubmitBooking(ctx context.Context, form domain.BookingForm) error {
	req := &domain.BookingRequest{
		Reference: s.newReference(),
		Form:      form,
	}

	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		_, err := s.bookings.Create(ctx, req)
		return err
	})
	if err != nil {
		s.logger.Error("Storage: failed to store booking reference=%s: %v", req.Reference, err)
		return fmt.Errorf("%w: %v", ErrStoreBooking, err)
	}

	s.logger.Info("Storage: booking stored id=%d reference=%s", req.ID, req.Reference)
	return nil
}

// SubmitContact сохраняет обращение
func (s *Storage) SubmitContact(ctx context.Context, msg domain.ContactMessage) error {
	req := &domain.ContactRequest{
		Reference: s.newReference(),
		Message:   msg,
	}

	if _, err := s.contacts.Create(ctx, req); err != nil {
		s.logger.Error("Storage: failed to store contact reference=%s: %v", req.Reference, err)
		return fmt.Errorf("%w: %v", ErrStoreContact, err)
	}

	s.logger.Info("Storage: contact stored id=%d reference=%s", req.ID, req.Reference)
	return nil
}
