package postgres

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/jackc/pgx/v5"

	"github.com/EzequielRindello/StockCore/internal/domain"
	"github.com/EzequielRindello/StockCore/internal/domain/entity"
	"github.com/EzequielRindello/StockCore/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL
// (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos.
// Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// Create persiste un nuevo producto y completa su ID. El stock inicial es
// implícitamente 0: sin movimientos no hay stock.
func (r *ProductRepo) Create(product *entity.Product) error {
	query := `
		INSERT INTO products (name, description, sku, category_id, is_active, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		product.Name, product.Description, product.SKU,
		product.CategoryID, product.IsActive, product.CreatedAt,
	).Scan(&product.ID)
	if err != nil {
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID, o (nil, nil) si no existe.
func (r *ProductRepo) GetByID(id int64) (*entity.Product, error) {
	query := `
		SELECT id, name, description, sku, category_id, is_active, created_at
		FROM products WHERE id = $1`
	var p entity.Product
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&p.ID, &p.Name, &p.Description, &p.SKU, &p.CategoryID, &p.IsActive, &p.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return &p, nil
}

// GetDetail obtiene el producto con el nombre de su categoría resuelto.
func (r *ProductRepo) GetDetail(id int64) (*repository.ProductListRow, error) {
	query := `
		SELECT p.id, p.name, p.description, p.sku, p.category_id, p.is_active, p.created_at, c.name
		FROM products p
		JOIN categories c ON c.id = p.category_id
		WHERE p.id = $1`
	var row repository.ProductListRow
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&row.Product.ID, &row.Product.Name, &row.Product.Description, &row.Product.SKU,
		&row.Product.CategoryID, &row.Product.IsActive, &row.Product.CreatedAt,
		&row.CategoryName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product detail: %w", err)
	}
	return &row, nil
}

// List devuelve los productos con el nombre de su categoría, aplicando el
// filtro de substring, categoría y estado.
func (r *ProductRepo) List(filter repository.ProductFilter) ([]repository.ProductListRow, error) {
	query := `
		SELECT p.id, p.name, p.description, p.sku, p.category_id, p.is_active, p.created_at, c.name
		FROM products p
		JOIN categories c ON c.id = p.category_id
		WHERE 1=1`
	args := []any{}
	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		n := strconv.Itoa(len(args))
		query += " AND (p.name LIKE $" + n + " OR p.sku LIKE $" + n + ")"
	}
	if filter.CategoryID != nil {
		args = append(args, *filter.CategoryID)
		query += " AND p.category_id = $" + strconv.Itoa(len(args))
	}
	if filter.IsActive != nil {
		args = append(args, *filter.IsActive)
		query += " AND p.is_active = $" + strconv.Itoa(len(args))
	}
	query += " ORDER BY p.id"

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()

	out := []repository.ProductListRow{}
	for rows.Next() {
		var row repository.ProductListRow
		if err := rows.Scan(
			&row.Product.ID, &row.Product.Name, &row.Product.Description, &row.Product.SKU,
			&row.Product.CategoryID, &row.Product.IsActive, &row.Product.CreatedAt,
			&row.CategoryName,
		); err != nil {
			return nil, fmt.Errorf("scan product row: %w", err)
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

// ListActive devuelve los productos activos (para combos).
func (r *ProductRepo) ListActive() ([]*entity.Product, error) {
	query := `
		SELECT id, name, description, sku, category_id, is_active, created_at
		FROM products WHERE is_active ORDER BY name`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list active products: %w", err)
	}
	defer rows.Close()

	out := []*entity.Product{}
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(
			&p.ID, &p.Name, &p.Description, &p.SKU, &p.CategoryID, &p.IsActive, &p.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		out = append(out, &p)
	}
	return out, rows.Err()
}

// AnyWithMovements indica si algún producto del lote registra movimientos.
func (r *ProductRepo) AnyWithMovements(ids []int64) (bool, error) {
	var exists bool
	err := r.q.QueryRow(context.Background(),
		`SELECT EXISTS (SELECT 1 FROM stock_movements WHERE product_id = ANY($1))`, ids,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check products with movements: %w", err)
	}
	return exists, nil
}

// Update actualiza un producto existente.
func (r *ProductRepo) Update(product *entity.Product) error {
	query := `
		UPDATE products SET name = $2, description = $3, sku = $4, category_id = $5, is_active = $6
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		product.ID, product.Name, product.Description, product.SKU,
		product.CategoryID, product.IsActive,
	)
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	return nil
}

// DeleteMany borra productos por lote. La FK RESTRICT de stock_movements
// respalda la guarda del use case ante carreras.
func (r *ProductRepo) DeleteMany(ids []int64) error {
	_, err := r.q.Exec(context.Background(),
		`DELETE FROM products WHERE id = ANY($1)`, ids,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrProductHasMovements
		}
		return fmt.Errorf("delete products: %w", err)
	}
	return nil
}
