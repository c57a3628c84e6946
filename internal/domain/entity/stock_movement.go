package entity

import "time"

// Tipos de movimiento de stock.
const (
	MovementTypeIn  = "in"  // entrada
	MovementTypeOut = "out" // salida
)

// StockMovement es una entrada del libro de movimientos: una cantidad que
// entra o sale del inventario para un producto. La cantidad siempre es
// positiva; el signo lo aporta MovementType al derivar el stock.
type StockMovement struct {
	ID           int64
	ProductID    int64
	Quantity     int    // siempre > 0
	MovementType string // in, out
	Reason       string // máx 250, opcional
	CreatedAt    time.Time
}

// Signed devuelve la cantidad con signo según el tipo de movimiento.
func (m StockMovement) Signed() int {
	if m.MovementType == MovementTypeOut {
		return -m.Quantity
	}
	return m.Quantity
}
