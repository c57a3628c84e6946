package repository

import "github.com/EzequielRindello/StockCore/internal/domain/entity"

// ProductFilter criterios del listado de productos. Search es substring
// sensible a mayúsculas sobre nombre y SKU.
type ProductFilter struct {
	Search     string
	CategoryID *int64
	IsActive   *bool
}

// ProductListRow fila de listado: el producto más el nombre de su categoría.
type ProductListRow struct {
	Product      entity.Product
	CategoryName string
}

// ProductRepository define el puerto de persistencia para Product (DIP).
// Los Get devuelven (nil, nil) cuando la fila no existe.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id int64) (*entity.Product, error)
	// GetDetail trae el producto con el nombre de categoría resuelto.
	GetDetail(id int64) (*ProductListRow, error)
	List(filter ProductFilter) ([]ProductListRow, error)
	ListActive() ([]*entity.Product, error)
	// AnyWithMovements indica si algún producto tiene movimientos asociados
	// (guarda de borrado en lote: todo o nada).
	AnyWithMovements(ids []int64) (bool, error)
	Update(product *entity.Product) error
	DeleteMany(ids []int64) error
}
