package repository

import (
	"context"
	"time"

	"github.com/EzequielRindello/StockCore/internal/domain/entity"
	"github.com/EzequielRindello/StockCore/internal/domain/stock"
)

// RecentMovementRow movimiento reciente con el nombre del producto resuelto.
type RecentMovementRow struct {
	ID           int64
	ProductName  string
	Quantity     int
	MovementType string
	CreatedAt    time.Time
}

// CategoryCountRow nombre de categoría más conteo de productos.
type CategoryCountRow struct {
	Name         string
	ProductCount int
}

// RecentProductRow producto reciente con el nombre de categoría resuelto.
type RecentProductRow struct {
	Name     string
	Category string
	SKU      string
	IsActive bool
}

// AnalyticsRepository consultas de solo lectura para el dashboard. Cada método
// es una única consulta (snapshot consistente por agregado); el dashboard las
// lanza de forma independiente y acepta desfasajes entre agregados bajo
// escrituras concurrentes.
type AnalyticsRepository interface {
	CountProducts(ctx context.Context) (int, error)
	CountCategories(ctx context.Context) (int, error)
	// MovementsSince devuelve los movimientos creados desde la fecha dada,
	// crudos, para que el agregador derive totales y buckets mensuales.
	MovementsSince(ctx context.Context, since time.Time) ([]entity.StockMovement, error)
	RecentMovements(ctx context.Context, limit int) ([]RecentMovementRow, error)
	// StockLevels deriva el stock por producto con un group-by (LEFT JOIN:
	// un producto sin movimientos aparece con stock 0).
	StockLevels(ctx context.Context) ([]stock.ProductStock, error)
	CategoriesOverview(ctx context.Context, limit int) ([]CategoryCountRow, error)
	ProductsByCategory(ctx context.Context) ([]CategoryCountRow, error)
	RecentProducts(ctx context.Context, limit int) ([]RecentProductRow, error)
	// CategoryBreakdown totales in/out por categoría sin acotar por fecha;
	// categorías sin productos aportan filas en cero.
	CategoryBreakdown(ctx context.Context) ([]stock.CategoryTotals, error)
}
