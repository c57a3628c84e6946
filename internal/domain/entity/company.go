package entity

import "time"

// Company datos de la empresa dueña del inventario (una sola fila, sembrada).
type Company struct {
	ID        int64
	Name      string
	Address   string
	Email     string
	CreatedAt time.Time
}
