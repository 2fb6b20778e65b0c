package service

import (
	"context"
	"strconv"
	"sync"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/ademhatay/employee-qr-track/internal/domain"
	"github.com/ademhatay/employee-qr-track/internal/repository"
)

type fakeUserRepo struct {
	mu    sync.Mutex
	seq   int
	users map[string]*domain.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*domain.User)}
}

func (r *fakeUserRepo) Create(_ context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	user.ID = "user-" + strconv.Itoa(r.seq)
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	clone := *user
	r.users[user.ID] = &clone
	return nil
}

func (r *fakeUserRepo) Update(_ context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[user.ID]; !ok {
		return pgx.ErrNoRows
	}
	clone := *user
	r.users[user.ID] = &clone
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.users[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	clone := *user
	return &clone, nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, user := range r.users {
		if user.Email == email {
			clone := *user
			return &clone, nil
		}
	}
	return nil, pgx.ErrNoRows
}

type fakeCompanyRepo struct {
	mu        sync.Mutex
	seq       int
	companies map[string]*domain.Company
}

func newFakeCompanyRepo() *fakeCompanyRepo {
	return &fakeCompanyRepo{companies: make(map[string]*domain.Company)}
}

func (r *fakeCompanyRepo) Create(_ context.Context, company *domain.Company) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	company.ID = "company-" + strconv.Itoa(r.seq)
	company.CreatedAt = time.Now()
	clone := *company
	r.companies[company.ID] = &clone
	return nil
}

func (r *fakeCompanyRepo) Update(_ context.Context, company *domain.Company) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.companies[company.ID]; !ok {
		return pgx.ErrNoRows
	}
	clone := *company
	r.companies[company.ID] = &clone
	return nil
}

func (r *fakeCompanyRepo) GetByID(_ context.Context, id string) (*domain.Company, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	company, ok := r.companies[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	clone := *company
	return &clone, nil
}

func (r *fakeCompanyRepo) GetByKioskCode(_ context.Context, code string) (*domain.Company, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, company := range r.companies {
		if company.KioskCode == code {
			clone := *company
			return &clone, nil
		}
	}
	return nil, pgx.ErrNoRows
}

type fakeEmployeeRepo struct {
	mu        sync.Mutex
	employees map[string]*domain.Employee
}

func newFakeEmployeeRepo() *fakeEmployeeRepo {
	return &fakeEmployeeRepo{employees: make(map[string]*domain.Employee)}
}

func (r *fakeEmployeeRepo) Upsert(_ context.Context, emp *domain.Employee) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	clone := *emp
	r.employees[emp.ID] = &clone
	return nil
}

func (r *fakeEmployeeRepo) GetByUserID(_ context.Context, userID string) (*domain.Employee, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	emp, ok := r.employees[userID]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	clone := *emp
	return &clone, nil
}

func (r *fakeEmployeeRepo) List(_ context.Context, filter repository.EmployeeFilter) ([]domain.Employee, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var result []domain.Employee
	for _, emp := range r.employees {
		if filter.CompanyID != "" && (emp.CompanyID == nil || *emp.CompanyID != filter.CompanyID) {
			continue
		}
		if filter.Active != nil && emp.IsActive != *filter.Active {
			continue
		}
		result = append(result, *emp)
	}
	return result, nil
}

type fakeAttendanceRepo struct {
	mu      sync.Mutex
	seq     int
	records []domain.Attendance
}

func newFakeAttendanceRepo() *fakeAttendanceRepo {
	return &fakeAttendanceRepo{}
}

func (r *fakeAttendanceRepo) Create(_ context.Context, att *domain.Attendance) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	att.ID = "att-" + strconv.Itoa(r.seq)
	r.records = append(r.records, *att)
	return nil
}

func (r *fakeAttendanceRepo) LatestForEmployeeOnDay(_ context.Context, employeeID string, day time.Time) (*domain.Attendance, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	dayStart := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	dayEnd := dayStart.Add(24 * time.Hour)

	var latest *domain.Attendance
	for i := range r.records {
		rec := r.records[i]
		if rec.EmployeeID != employeeID {
			continue
		}
		if rec.Timestamp.Before(dayStart) || !rec.Timestamp.Before(dayEnd) {
			continue
		}
		if latest == nil || rec.Timestamp.After(latest.Timestamp) {
			latest = &r.records[i]
		}
	}
	if latest == nil {
		return nil, pgx.ErrNoRows
	}
	clone := *latest
	return &clone, nil
}

func (r *fakeAttendanceRepo) List(_ context.Context, filter repository.AttendanceFilter) ([]domain.Attendance, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var result []domain.Attendance
	for _, rec := range r.records {
		if filter.CompanyID != "" && rec.CompanyID != filter.CompanyID {
			continue
		}
		if filter.EmployeeID != nil && rec.EmployeeID != *filter.EmployeeID {
			continue
		}
		if filter.From != nil && rec.Timestamp.Before(*filter.From) {
			continue
		}
		if filter.To != nil && !rec.Timestamp.Before(*filter.To) {
			continue
		}
		result = append(result, rec)
	}
	if filter.Offset > 0 {
		if filter.Offset >= len(result) {
			return nil, nil
		}
		result = result[filter.Offset:]
	}
	if filter.Limit > 0 && len(result) > filter.Limit {
		result = result[:filter.Limit]
	}
	return result, nil
}

type fakeShiftRepo struct {
	mu     sync.Mutex
	seq    int
	shifts map[string]*domain.Shift
}

func newFakeShiftRepo() *fakeShiftRepo {
	return &fakeShiftRepo{shifts: make(map[string]*domain.Shift)}
}

func (r *fakeShiftRepo) Create(_ context.Context, shift *domain.Shift) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	shift.ID = "shift-" + strconv.Itoa(r.seq)
	shift.CreatedAt = time.Now()
	shift.UpdatedAt = shift.CreatedAt
	clone := *shift
	r.shifts[shift.ID] = &clone
	return nil
}

func (r *fakeShiftRepo) Update(_ context.Context, shift *domain.Shift) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.shifts[shift.ID]; !ok {
		return pgx.ErrNoRows
	}
	clone := *shift
	r.shifts[shift.ID] = &clone
	return nil
}

func (r *fakeShiftRepo) GetByID(_ context.Context, id string) (*domain.Shift, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	shift, ok := r.shifts[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	clone := *shift
	return &clone, nil
}

func (r *fakeShiftRepo) List(_ context.Context, filter repository.ShiftFilter) ([]domain.Shift, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var result []domain.Shift
	for _, shift := range r.shifts {
		if filter.CompanyID != "" && shift.CompanyID != filter.CompanyID {
			continue
		}
		if filter.EmployeeID != nil && shift.EmployeeID != *filter.EmployeeID {
			continue
		}
		if filter.PublishedOnly && !shift.IsPublished {
			continue
		}
		result = append(result, *shift)
	}
	return result, nil
}
