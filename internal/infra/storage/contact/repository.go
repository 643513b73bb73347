package contact

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/m04kA/SMC-InteriorStudio/internal/domain"
	"github.com/m04kA/SMC-InteriorStudio/pkg/dbmetrics"
	"github.com/m04kA/SMC-InteriorStudio/pkg/psqlbuilder"
)

const tableRequests = "contact_requests"

// Repository репозиторий обращений из формы обратной связи
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория обращений
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create сохраняет обращение
func (r *Repository) Create(ctx context.Context, req *domain.ContactRequest) (*domain.ContactRequest, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := buildInsert(req)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&req.ID, &createdAt); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}
	req.CreatedAt = createdAt.Time

	return req, nil
}

func buildInsert(req *domain.ContactRequest) (string, []interface{}, error) {
	m := req.Message
	return psqlbuilder.Insert(tableRequests).
		Columns("reference", "name", "email", "phone", "subject", "message", "subscribe").
		Values(req.Reference, m.Name, m.Email, m.Phone, m.Subject, m.Message, m.Subscribe).
		Suffix("RETURNING id, created_at").
		ToSql()
}
