package repository

import (
	"time"

	"github.com/EzequielRindello/StockCore/internal/domain/entity"
)

// MovementFilter criterios del listado de movimientos.
type MovementFilter struct {
	ProductID    *int64
	MovementType *string
	DateFrom     *time.Time
	DateTo       *time.Time
}

// MovementListRow fila de listado: el movimiento más los datos del producto.
type MovementListRow struct {
	Movement    entity.StockMovement
	ProductName string
	ProductSKU  string
}

// StockMovementRepository define el puerto de persistencia para el libro de
// movimientos (DIP). Los Get devuelven (nil, nil) cuando la fila no existe.
type StockMovementRepository interface {
	Create(movement *entity.StockMovement) error
	GetByID(id int64) (*entity.StockMovement, error)
	// GetDetail trae el movimiento con nombre y SKU del producto resueltos.
	GetDetail(id int64) (*MovementListRow, error)
	// List devuelve los movimientos ordenados por fecha descendente.
	List(filter MovementFilter) ([]MovementListRow, error)
	// ListByProduct devuelve el libro completo de un producto, para derivar
	// su stock actual.
	ListByProduct(productID int64) ([]entity.StockMovement, error)
	Update(movement *entity.StockMovement) error
	DeleteMany(ids []int64) error
}
