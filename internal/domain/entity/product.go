package entity

import "time"

// Product representa un producto del inventario.
// El stock NUNCA se guarda en esta tabla: se deriva del libro de movimientos
// (ver internal/domain/stock). SKU es único por convención, no por constraint.
type Product struct {
	ID          int64
	Name        string // máx 150
	Description string // máx 500, opcional
	SKU         string // máx 50
	CategoryID  int64
	IsActive    bool
	CreatedAt   time.Time
}
