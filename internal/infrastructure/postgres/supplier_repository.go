package postgres

import (
	"context"
	"fmt"

	"github.com/EzequielRindello/StockCore/internal/domain/entity"
	"github.com/EzequielRindello/StockCore/internal/domain/repository"
)

var _ repository.SupplierRepository = (*SupplierRepo)(nil)

// SupplierRepo persistencia de proveedores (seed y listado).
type SupplierRepo struct {
	q Querier
}

// NewSupplierRepository construye el adaptador de persistencia de proveedores.
func NewSupplierRepository(q Querier) *SupplierRepo {
	return &SupplierRepo{q: q}
}

// Create persiste un proveedor y completa su ID.
func (r *SupplierRepo) Create(supplier *entity.Supplier) error {
	query := `
		INSERT INTO suppliers (name, contact_email, phone, is_active, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		supplier.Name, supplier.ContactEmail, supplier.Phone, supplier.IsActive, supplier.CreatedAt,
	).Scan(&supplier.ID)
	if err != nil {
		return fmt.Errorf("insert supplier: %w", err)
	}
	return nil
}

// List devuelve todos los proveedores.
func (r *SupplierRepo) List() ([]*entity.Supplier, error) {
	query := `
		SELECT id, name, contact_email, phone, is_active, created_at
		FROM suppliers ORDER BY name`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list suppliers: %w", err)
	}
	defer rows.Close()

	out := []*entity.Supplier{}
	for rows.Next() {
		var s entity.Supplier
		if err := rows.Scan(&s.ID, &s.Name, &s.ContactEmail, &s.Phone, &s.IsActive, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan supplier: %w", err)
		}
		out = append(out, &s)
	}
	return out, rows.Err()
}
