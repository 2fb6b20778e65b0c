package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ademhatay/employee-qr-track/internal/domain"
)

// ShiftRepository handles persistence for scheduled shifts.
type ShiftRepository interface {
	Create(ctx context.Context, shift *domain.Shift) error
	Update(ctx context.Context, shift *domain.Shift) error
	GetByID(ctx context.Context, id string) (*domain.Shift, error)
	List(ctx context.Context, filter ShiftFilter) ([]domain.Shift, error)
}

// ShiftFilter defines query params for shift listing. PublishedOnly hides
// draft shifts from employees.
type ShiftFilter struct {
	CompanyID     string
	EmployeeID    *string
	PublishedOnly bool
	From          *time.Time
	To            *time.Time
	Limit         int
	Offset        int
}

type shiftRepository struct {
	pool *pgxpool.Pool
}

// NewShiftRepository instantiates the repository.
func NewShiftRepository(pool *pgxpool.Pool) ShiftRepository {
	return &shiftRepository{pool: pool}
}

func (r *shiftRepository) Create(ctx context.Context, shift *domain.Shift) error {
	const query = `
        INSERT INTO shifts (employee_id, company_id, start_time, end_time, published_flag)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id, created_at, updated_at`

	return r.pool.QueryRow(ctx, query,
		shift.EmployeeID,
		shift.CompanyID,
		shift.StartTime,
		shift.EndTime,
		shift.IsPublished,
	).Scan(&shift.ID, &shift.CreatedAt, &shift.UpdatedAt)
}

func (r *shiftRepository) Update(ctx context.Context, shift *domain.Shift) error {
	const query = `
        UPDATE shifts
        SET employee_id=$1, start_time=$2, end_time=$3, published_flag=$4, updated_at=NOW()
        WHERE id=$5`

	cmd, err := r.pool.Exec(ctx, query,
		shift.EmployeeID,
		shift.StartTime,
		shift.EndTime,
		shift.IsPublished,
		shift.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *shiftRepository) GetByID(ctx context.Context, id string) (*domain.Shift, error) {
	const query = `
        SELECT id, employee_id, company_id, start_time, end_time, published_flag, created_at, updated_at
        FROM shifts WHERE id=$1`

	var shift domain.Shift
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&shift.ID,
		&shift.EmployeeID,
		&shift.CompanyID,
		&shift.StartTime,
		&shift.EndTime,
		&shift.IsPublished,
		&shift.CreatedAt,
		&shift.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &shift, nil
}

func (r *shiftRepository) List(ctx context.Context, filter ShiftFilter) ([]domain.Shift, error) {
	query := `
        SELECT id, employee_id, company_id, start_time, end_time, published_flag, created_at, updated_at
        FROM shifts`
	args := []any{}
	clauses := []string{}

	if filter.CompanyID != "" {
		args = append(args, filter.CompanyID)
		clauses = append(clauses, fmt.Sprintf("company_id=$%d", len(args)))
	}
	if filter.EmployeeID != nil {
		args = append(args, *filter.EmployeeID)
		clauses = append(clauses, fmt.Sprintf("employee_id=$%d", len(args)))
	}
	if filter.PublishedOnly {
		clauses = append(clauses, "published_flag=TRUE")
	}
	if filter.From != nil {
		args = append(args, *filter.From)
		clauses = append(clauses, fmt.Sprintf("start_time >= $%d", len(args)))
	}
	if filter.To != nil {
		args = append(args, *filter.To)
		clauses = append(clauses, fmt.Sprintf("start_time < $%d", len(args)))
	}
	if len(clauses) > 0 {
		query += " WHERE " + strings.Join(clauses, " AND ")
	}

	query += " ORDER BY start_time ASC"
	limit := filter.Limit
	if limit <= 0 {
		limit = 100
	}
	offset := filter.Offset
	if offset < 0 {
		offset = 0
	}
	query += fmt.Sprintf(" LIMIT %d OFFSET %d", limit, offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Shift
	for rows.Next() {
		var shift domain.Shift
		if err := rows.Scan(
			&shift.ID,
			&shift.EmployeeID,
			&shift.CompanyID,
			&shift.StartTime,
			&shift.EndTime,
			&shift.IsPublished,
			&shift.CreatedAt,
			&shift.UpdatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, shift)
	}
	return result, rows.Err()
}
