package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ademhatay/employee-qr-track/internal/domain"
)

// AttendanceRepository handles persistence for check events.
type AttendanceRepository interface {
	Create(ctx context.Context, att *domain.Attendance) error
	LatestForEmployeeOnDay(ctx context.Context, employeeID string, day time.Time) (*domain.Attendance, error)
	List(ctx context.Context, filter AttendanceFilter) ([]domain.Attendance, error)
}

// AttendanceFilter defines query params for attendance listing.
type AttendanceFilter struct {
	CompanyID  string
	EmployeeID *string
	From       *time.Time
	To         *time.Time
	Limit      int
	Offset     int
}

type attendanceRepository struct {
	pool *pgxpool.Pool
}

// NewAttendanceRepository instantiates the repository.
func NewAttendanceRepository(pool *pgxpool.Pool) AttendanceRepository {
	return &attendanceRepository{pool: pool}
}

func (r *attendanceRepository) Create(ctx context.Context, att *domain.Attendance) error {
	const query = `
        INSERT INTO attendance (employee_id, company_id, type, occurred_at, device)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id`

	return r.pool.QueryRow(ctx, query,
		att.EmployeeID,
		att.CompanyID,
		att.Type,
		att.Timestamp,
		att.Device,
	).Scan(&att.ID)
}

// LatestForEmployeeOnDay returns the most recent check event for the
// employee within the calendar day containing the given instant, or
// pgx.ErrNoRows when the day has no events yet.
func (r *attendanceRepository) LatestForEmployeeOnDay(ctx context.Context, employeeID string, day time.Time) (*domain.Attendance, error) {
	dayStart := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	dayEnd := dayStart.Add(24 * time.Hour)

	const query = `
        SELECT id, employee_id, company_id, type, occurred_at, device
        FROM attendance
        WHERE employee_id=$1 AND occurred_at >= $2 AND occurred_at < $3
        ORDER BY occurred_at DESC
        LIMIT 1`

	var att domain.Attendance
	if err := r.pool.QueryRow(ctx, query, employeeID, dayStart, dayEnd).Scan(
		&att.ID,
		&att.EmployeeID,
		&att.CompanyID,
		&att.Type,
		&att.Timestamp,
		&att.Device,
	); err != nil {
		return nil, err
	}
	return &att, nil
}

func (r *attendanceRepository) List(ctx context.Context, filter AttendanceFilter) ([]domain.Attendance, error) {
	query := `
        SELECT id, employee_id, company_id, type, occurred_at, device
        FROM attendance`
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
	if filter.From != nil {
		args = append(args, *filter.From)
		clauses = append(clauses, fmt.Sprintf("occurred_at >= $%d", len(args)))
	}
	if filter.To != nil {
		args = append(args, *filter.To)
		clauses = append(clauses, fmt.Sprintf("occurred_at < $%d", len(args)))
	}
	if len(clauses) > 0 {
		query += " WHERE " + strings.Join(clauses, " AND ")
	}

	query += " ORDER BY occurred_at DESC"
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

	var result []domain.Attendance
	for rows.Next() {
		var att domain.Attendance
		if err := rows.Scan(
			&att.ID,
			&att.EmployeeID,
			&att.CompanyID,
			&att.Type,
			&att.Timestamp,
			&att.Device,
		); err != nil {
			return nil, err
		}
		result = append(result, att)
	}
	return result, rows.Err()
}
