package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/EzequielRindello/StockCore/internal/domain/entity"
	"github.com/EzequielRindello/StockCore/internal/domain/repository"
)

var _ repository.CompanyRepository = (*CompanyRepo)(nil)

// CompanyRepo persistencia de la empresa (fila única, sembrada).
type CompanyRepo struct {
	q Querier
}

// NewCompanyRepository construye el adaptador de persistencia de la empresa.
func NewCompanyRepository(q Querier) *CompanyRepo {
	return &CompanyRepo{q: q}
}

// Create persiste la empresa y completa su ID.
func (r *CompanyRepo) Create(company *entity.Company) error {
	query := `
		INSERT INTO company (name, address, email, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		company.Name, company.Address, company.Email, company.CreatedAt,
	).Scan(&company.ID)
	if err != nil {
		return fmt.Errorf("insert company: %w", err)
	}
	return nil
}

// Get devuelve la empresa sembrada, o (nil, nil) si aún no existe.
func (r *CompanyRepo) Get() (*entity.Company, error) {
	query := `
		SELECT id, name, address, email, created_at
		FROM company ORDER BY id LIMIT 1`
	var c entity.Company
	err := r.q.QueryRow(context.Background(), query).Scan(
		&c.ID, &c.Name, &c.Address, &c.Email, &c.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get company: %w", err)
	}
	return &c, nil
}
