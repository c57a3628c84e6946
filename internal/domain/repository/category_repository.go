package repository

import "github.com/EzequielRindello/StockCore/internal/domain/entity"

// CategoryFilter criterios del listado de categorías. Search es substring
// sensible a mayúsculas sobre nombre y descripción.
type CategoryFilter struct {
	Search   string
	IsActive *bool
}

// CategoryListRow fila de listado: la categoría más su conteo de productos.
type CategoryListRow struct {
	Category     entity.Category
	ProductCount int
}

// CategoryRepository define el puerto de persistencia para Category (DIP).
// Los Get devuelven (nil, nil) cuando la fila no existe.
type CategoryRepository interface {
	Create(category *entity.Category) error
	GetByID(id int64) (*entity.Category, error)
	List(filter CategoryFilter) ([]CategoryListRow, error)
	CountProducts(categoryID int64) (int, error)
	// AnyWithProducts indica si alguna de las categorías tiene productos
	// asociados (guarda de borrado en lote: todo o nada).
	AnyWithProducts(ids []int64) (bool, error)
	Update(category *entity.Category) error
	DeleteMany(ids []int64) error
}
