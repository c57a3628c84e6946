package entity

import "time"

// Supplier representa un proveedor. Existe en el esquema y el seeder pero no
// participa de la lógica de stock.
type Supplier struct {
	ID           int64
	Name         string
	ContactEmail string
	Phone        string
	IsActive     bool
	CreatedAt    time.Time
}
