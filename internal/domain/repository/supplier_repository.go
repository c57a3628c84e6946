package repository

import "github.com/EzequielRindello/StockCore/internal/domain/entity"

// SupplierRepository puerto de persistencia para proveedores (seed y listado).
type SupplierRepository interface {
	Create(supplier *entity.Supplier) error
	List() ([]*entity.Supplier, error)
}
