package entity

import "time"

// Category representa una categoría de productos.
// Invariante: una categoría con productos asociados no puede eliminarse
// (FK RESTRICT en Product.CategoryID más guarda de dominio en el use case).
type Category struct {
	ID          int64
	Name        string // máx 100
	Description string // máx 250, opcional
	IsActive    bool
	CreatedAt   time.Time
}
