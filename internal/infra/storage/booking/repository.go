package booking

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/m04kA/SMC-InteriorStudio/internal/domain"
	"github.com/m04kA/SMC-InteriorStudio/pkg/dbmetrics"
	"github.com/m04kA/SMC-InteriorStudio/pkg/psqlbuilder"
)

const (
	tableRequests       = "booking_requests"
	tableContactMethods = "booking_contact_methods"
)

var requestColumns = []string{
	"reference",
	"service_type",
	"service_category",
	"full_name",
	"email",
	"phone",
	"address",
	"city",
	"pincode",
	"preferred_date",
	"preferred_time",
	"urgency",
	"project_type",
	"area",
	"budget",
	"additional_notes",
	"newsletter",
	"terms_accepted",
}

// Repository репозиторий заявок на консультацию
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория заявок
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create сохраняет заявку и выбранные способы связи.
// Вызывать внутри транзакции (txmanager), иначе заявка может сохраниться без способов связи.
func (r *Repository) Create(ctx context.Context, req *domain.BookingRequest) (*domain.BookingRequest, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := buildInsertRequest(req)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&req.ID, &createdAt); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}
	req.CreatedAt = createdAt.Time

	methods := req.Form.ContactMethods.List()
	if len(methods) == 0 {
		return req, nil
	}

	query, args, err = buildInsertContactMethods(req.ID, methods)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build contact methods query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return nil, fmt.Errorf("%w: Create - insert contact methods: %v", ErrExecQuery, err)
	}

	return req, nil
}

func buildInsertRequest(req *domain.BookingRequest) (string, []interface{}, error) {
	f := req.Form

	// пустые дата и время сохраняем как NULL
	var preferredDate, preferredTime interface{}
	if f.PreferredDate != "" {
		preferredDate = f.PreferredDate
	}
	if f.PreferredTime != "" {
		preferredTime = f.PreferredTime
	}

	return psqlbuilder.Insert(tableRequests).
		Columns(requestColumns...).
		Values(
			req.Reference,
			f.ServiceType,
			f.ServiceCategory,
			f.FullName,
			f.Email,
			f.Phone,
			f.Address,
			f.City,
			f.Pincode,
			preferredDate,
			preferredTime,
			string(f.Urgency),
			string(f.ProjectType),
			f.Area,
			f.Budget,
			f.AdditionalNotes,
			f.Newsletter,
			f.TermsAccepted,
		).
		Suffix("RETURNING id, created_at").
		ToSql()
}

func buildInsertContactMethods(bookingID int64, methods []domain.ContactMethod) (string, []interface{}, error) {
	q := psqlbuilder.Insert(tableContactMethods).Columns("booking_id", "method")
	for _, m := range methods {
		q = q.Values(bookingID, string(m))
	}
	return q.ToSql()
}
