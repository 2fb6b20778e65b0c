package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ademhatay/employee-qr-track/internal/domain"
)

// EmployeeRepository handles persistence for employee records, joining the
// base user row with its employment details.
type EmployeeRepository interface {
	Upsert(ctx context.Context, emp *domain.Employee) error
	GetByUserID(ctx context.Context, userID string) (*domain.Employee, error)
	List(ctx context.Context, filter EmployeeFilter) ([]domain.Employee, error)
}

// EmployeeFilter defines query params for employee listing.
type EmployeeFilter struct {
	CompanyID string
	Active    *bool
	Limit     int
	Offset    int
}

type employeeRepository struct {
	pool *pgxpool.Pool
}

// NewEmployeeRepository instantiates the repository.
func NewEmployeeRepository(pool *pgxpool.Pool) EmployeeRepository {
	return &employeeRepository{pool: pool}
}

func (r *employeeRepository) Upsert(ctx context.Context, emp *domain.Employee) error {
	const query = `
        INSERT INTO employees (user_id, position, hourly_rate, active_flag)
        VALUES ($1, $2, $3, $4)
        ON CONFLICT (user_id) DO UPDATE
        SET position=EXCLUDED.position, hourly_rate=EXCLUDED.hourly_rate, active_flag=EXCLUDED.active_flag`

	_, err := r.pool.Exec(ctx, query,
		emp.ID,
		emp.Position,
		emp.HourlyRate,
		emp.IsActive,
	)
	return err
}

func (r *employeeRepository) GetByUserID(ctx context.Context, userID string) (*domain.Employee, error) {
	const query = `
        SELECT u.id, u.name, u.email, u.password_hash, u.role, u.company_id, u.avatar_url, u.created_at, u.updated_at,
               e.position, e.hourly_rate, e.active_flag
        FROM users u
        JOIN employees e ON e.user_id = u.id
        WHERE u.id=$1`

	var emp domain.Employee
	if err := r.pool.QueryRow(ctx, query, userID).Scan(
		&emp.ID,
		&emp.Name,
		&emp.Email,
		&emp.PasswordHash,
		&emp.Role,
		&emp.CompanyID,
		&emp.AvatarURL,
		&emp.CreatedAt,
		&emp.UpdatedAt,
		&emp.Position,
		&emp.HourlyRate,
		&emp.IsActive,
	); err != nil {
		return nil, err
	}
	return &emp, nil
}

func (r *employeeRepository) List(ctx context.Context, filter EmployeeFilter) ([]domain.Employee, error) {
	query := `
        SELECT u.id, u.name, u.email, u.password_hash, u.role, u.company_id, u.avatar_url, u.created_at, u.updated_at,
               e.position, e.hourly_rate, e.active_flag
        FROM users u
        JOIN employees e ON e.user_id = u.id`
	args := []any{}
	clauses := []string{}

	if filter.CompanyID != "" {
		args = append(args, filter.CompanyID)
		clauses = append(clauses, fmt.Sprintf("u.company_id=$%d", len(args)))
	}
	if filter.Active != nil {
		args = append(args, *filter.Active)
		clauses = append(clauses, fmt.Sprintf("e.active_flag=$%d", len(args)))
	}
	if len(clauses) > 0 {
		query += " WHERE " + strings.Join(clauses, " AND ")
	}

	query += " ORDER BY u.created_at DESC"
	limit := filter.Limit
	if limit <= 0 {
		limit = 50
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

	var result []domain.Employee
	for rows.Next() {
		var emp domain.Employee
		if err := rows.Scan(
			&emp.ID,
			&emp.Name,
			&emp.Email,
			&emp.PasswordHash,
			&emp.Role,
			&emp.CompanyID,
			&emp.AvatarURL,
			&emp.CreatedAt,
			&emp.UpdatedAt,
			&emp.Position,
			&emp.HourlyRate,
			&emp.IsActive,
		); err != nil {
			return nil, err
		}
		result = append(result, emp)
	}
	return result, rows.Err()
}
