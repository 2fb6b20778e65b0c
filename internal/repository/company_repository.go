package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ademhatay/employee-qr-track/internal/domain"
)

// CompanyRepository handles persistence for companies.
type CompanyRepository interface {
	Create(ctx context.Context, company *domain.Company) error
	Update(ctx context.Context, company *domain.Company) error
	GetByID(ctx context.Context, id string) (*domain.Company, error)
	GetByKioskCode(ctx context.Context, code string) (*domain.Company, error)
}

type companyRepository struct {
	pool *pgxpool.Pool
}

// NewCompanyRepository instantiates the repository.
func NewCompanyRepository(pool *pgxpool.Pool) CompanyRepository {
	return &companyRepository{pool: pool}
}

func (r *companyRepository) Create(ctx context.Context, company *domain.Company) error {
	const query = `
        INSERT INTO companies (name, plan, kiosk_code, owner_id)
        VALUES ($1, $2, $3, $4)
        RETURNING id, created_at`

	return r.pool.QueryRow(ctx, query,
		company.Name,
		company.Plan,
		company.KioskCode,
		company.OwnerID,
	).Scan(&company.ID, &company.CreatedAt)
}

func (r *companyRepository) Update(ctx context.Context, company *domain.Company) error {
	const query = `
        UPDATE companies SET name=$1, plan=$2, kiosk_code=$3, owner_id=$4
        WHERE id=$5`

	cmd, err := r.pool.Exec(ctx, query,
		company.Name,
		company.Plan,
		company.KioskCode,
		company.OwnerID,
		company.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *companyRepository) GetByID(ctx context.Context, id string) (*domain.Company, error) {
	const query = `
        SELECT id, name, plan, kiosk_code, owner_id, created_at
        FROM companies WHERE id=$1`

	var company domain.Company
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&company.ID,
		&company.Name,
		&company.Plan,
		&company.KioskCode,
		&company.OwnerID,
		&company.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &company, nil
}

func (r *companyRepository) GetByKioskCode(ctx context.Context, code string) (*domain.Company, error) {
	const query = `
        SELECT id, name, plan, kiosk_code, owner_id, created_at
        FROM companies WHERE kiosk_code=$1`

	var company domain.Company
	if err := r.pool.QueryRow(ctx, query, code).Scan(
		&company.ID,
		&company.Name,
		&company.Plan,
		&company.KioskCode,
		&company.OwnerID,
		&company.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &company, nil
}
