package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/EzequielRindello/StockCore/internal/domain/entity"
	"github.com/EzequielRindello/StockCore/internal/domain/repository"
	"github.com/EzequielRindello/StockCore/internal/domain/stock"
)

var _ repository.AnalyticsRepository = (*AnalyticsRepo)(nil)

// AnalyticsRepo consultas read-only del dashboard. Cada método es una única
// consulta; la aritmética y el bucketing viven en el paquete stock.
type AnalyticsRepo struct {
	q Querier
}

// NewAnalyticsRepository construye el adaptador de consultas del dashboard.
func NewAnalyticsRepository(q Querier) *AnalyticsRepo {
	return &AnalyticsRepo{q: q}
}

// CountProducts cuenta todos los productos.
func (r *AnalyticsRepo) CountProducts(ctx context.Context) (int, error) {
	var count int
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM products`).Scan(&count); err != nil {
		return 0, fmt.Errorf("count products: %w", err)
	}
	return count, nil
}

// CountCategories cuenta todas las categorías.
func (r *AnalyticsRepo) CountCategories(ctx context.Context) (int, error) {
	var count int
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM categories`).Scan(&count); err != nil {
		return 0, fmt.Errorf("count categories: %w", err)
	}
	return count, nil
}

// MovementsSince devuelve los movimientos crudos desde la fecha dada.
func (r *AnalyticsRepo) MovementsSince(ctx context.Context, since time.Time) ([]entity.StockMovement, error) {
	query := `
		SELECT id, product_id, quantity, movement_type, reason, created_at
		FROM stock_movements WHERE created_at >= $1`
	rows, err := r.q.Query(ctx, query, since)
	if err != nil {
		return nil, fmt.Errorf("movements since: %w", err)
	}
	defer rows.Close()

	out := []entity.StockMovement{}
	for rows.Next() {
		var m entity.StockMovement
		if err := rows.Scan(
			&m.ID, &m.ProductID, &m.Quantity, &m.MovementType, &m.Reason, &m.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan movement: %w", err)
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

// RecentMovements devuelve los últimos movimientos con el nombre del producto.
func (r *AnalyticsRepo) RecentMovements(ctx context.Context, limit int) ([]repository.RecentMovementRow, error) {
	query := `
		SELECT m.id, p.name, m.quantity, m.movement_type, m.created_at
		FROM stock_movements m
		JOIN products p ON p.id = m.product_id
		ORDER BY m.created_at DESC, m.id DESC
		LIMIT $1`
	rows, err := r.q.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("recent movements: %w", err)
	}
	defer rows.Close()

	out := []repository.RecentMovementRow{}
	for rows.Next() {
		var row repository.RecentMovementRow
		if err := rows.Scan(&row.ID, &row.ProductName, &row.Quantity, &row.MovementType, &row.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan recent movement: %w", err)
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

// StockLevels deriva el stock actual de cada producto con un group-by. El
// LEFT JOIN garantiza que un producto sin movimientos aparezca con stock 0.
func (r *AnalyticsRepo) StockLevels(ctx context.Context) ([]stock.ProductStock, error) {
	query := `
		SELECT p.id, p.name, p.sku,
		       COALESCE(SUM(CASE WHEN m.movement_type = 'in' THEN m.quantity ELSE -m.quantity END), 0)
		FROM products p
		LEFT JOIN stock_movements m ON m.product_id = p.id
		GROUP BY p.id, p.name, p.sku`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("stock levels: %w", err)
	}
	defer rows.Close()

	out := []stock.ProductStock{}
	for rows.Next() {
		var level stock.ProductStock
		if err := rows.Scan(&level.ProductID, &level.Name, &level.SKU, &level.Stock); err != nil {
			return nil, fmt.Errorf("scan stock level: %w", err)
		}
		out = append(out, level)
	}
	return out, rows.Err()
}

// CategoriesOverview devuelve las categorías con más productos.
func (r *AnalyticsRepo) CategoriesOverview(ctx context.Context, limit int) ([]repository.CategoryCountRow, error) {
	query := `
		SELECT c.name, COUNT(p.id)
		FROM categories c
		LEFT JOIN products p ON p.category_id = c.id
		GROUP BY c.id, c.name
		ORDER BY COUNT(p.id) DESC, c.name
		LIMIT $1`
	return r.categoryCounts(ctx, query, limit)
}

// ProductsByCategory devuelve el conteo de productos de todas las categorías.
func (r *AnalyticsRepo) ProductsByCategory(ctx context.Context) ([]repository.CategoryCountRow, error) {
	query := `
		SELECT c.name, COUNT(p.id)
		FROM categories c
		LEFT JOIN products p ON p.category_id = c.id
		GROUP BY c.id, c.name
		ORDER BY c.name`
	return r.categoryCounts(ctx, query)
}

// RecentProducts devuelve los últimos productos creados con su categoría.
func (r *AnalyticsRepo) RecentProducts(ctx context.Context, limit int) ([]repository.RecentProductRow, error) {
	query := `
		SELECT p.name, c.name, p.sku, p.is_active
		FROM products p
		JOIN categories c ON c.id = p.category_id
		ORDER BY p.created_at DESC, p.id DESC
		LIMIT $1`
	rows, err := r.q.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("recent products: %w", err)
	}
	defer rows.Close()

	out := []repository.RecentProductRow{}
	for rows.Next() {
		var row repository.RecentProductRow
		if err := rows.Scan(&row.Name, &row.Category, &row.SKU, &row.IsActive); err != nil {
			return nil, fmt.Errorf("scan recent product: %w", err)
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

// CategoryBreakdown totales in/out por categoría sobre todos los movimientos.
// Los LEFT JOIN garantizan que una categoría sin productos o sin movimientos
// aporte una fila en cero.
func (r *AnalyticsRepo) CategoryBreakdown(ctx context.Context) ([]stock.CategoryTotals, error) {
	query := `
		SELECT c.name,
		       COUNT(DISTINCT p.id),
		       COALESCE(SUM(CASE WHEN m.movement_type = 'in' THEN m.quantity ELSE 0 END), 0),
		       COALESCE(SUM(CASE WHEN m.movement_type = 'out' THEN m.quantity ELSE 0 END), 0)
		FROM categories c
		LEFT JOIN products p ON p.category_id = c.id
		LEFT JOIN stock_movements m ON m.product_id = p.id
		GROUP BY c.id, c.name
		ORDER BY c.name`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("category breakdown: %w", err)
	}
	defer rows.Close()

	out := []stock.CategoryTotals{}
	for rows.Next() {
		var totals stock.CategoryTotals
		if err := rows.Scan(&totals.Category, &totals.ProductCount, &totals.StockIn, &totals.StockOut); err != nil {
			return nil, fmt.Errorf("scan category breakdown: %w", err)
		}
		out = append(out, totals)
	}
	return out, rows.Err()
}

func (r *AnalyticsRepo) categoryCounts(ctx context.Context, query string, args ...any) ([]repository.CategoryCountRow, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("category counts: %w", err)
	}
	defer rows.Close()

	out := []repository.CategoryCountRow{}
	for rows.Next() {
		var row repository.CategoryCountRow
		if err := rows.Scan(&row.Name, &row.ProductCount); err != nil {
			return nil, fmt.Errorf("scan category count: %w", err)
		}
		out = append(out, row)
	}
	return out, rows.Err()
}
