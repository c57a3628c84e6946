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

var _ repository.CategoryRepository = (*CategoryRepo)(nil)

// CategoryRepo implementación del puerto CategoryRepository sobre PostgreSQL
// (usable con pool o tx).
type CategoryRepo struct {
	q Querier
}

// NewCategoryRepository construye el adaptador de persistencia para
// categorías. Pasar pool o tx (Querier).
func NewCategoryRepository(q Querier) *CategoryRepo {
	return &CategoryRepo{q: q}
}

// Create persiste una nueva categoría y completa su ID.
func (r *CategoryRepo) Create(category *entity.Category) error {
	query := `
		INSERT INTO categories (name, description, is_active, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		category.Name, category.Description, category.IsActive, category.CreatedAt,
	).Scan(&category.ID)
	if err != nil {
		return fmt.Errorf("insert category: %w", err)
	}
	return nil
}

// GetByID obtiene una categoría por ID, o (nil, nil) si no existe.
func (r *CategoryRepo) GetByID(id int64) (*entity.Category, error) {
	query := `
		SELECT id, name, description, is_active, created_at
		FROM categories WHERE id = $1`
	var c entity.Category
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&c.ID, &c.Name, &c.Description, &c.IsActive, &c.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get category: %w", err)
	}
	return &c, nil
}

// List devuelve las categorías con su conteo de productos, aplicando el
// filtro de substring y estado. El LEFT JOIN garantiza que una categoría sin
// productos aparezca con conteo 0.
func (r *CategoryRepo) List(filter repository.CategoryFilter) ([]repository.CategoryListRow, error) {
	query := `
		SELECT c.id, c.name, c.description, c.is_active, c.created_at, COUNT(p.id)
		FROM categories c
		LEFT JOIN products p ON p.category_id = c.id
		WHERE 1=1`
	args := []any{}
	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		n := strconv.Itoa(len(args))
		query += " AND (c.name LIKE $" + n + " OR c.description LIKE $" + n + ")"
	}
	if filter.IsActive != nil {
		args = append(args, *filter.IsActive)
		query += " AND c.is_active = $" + strconv.Itoa(len(args))
	}
	query += `
		GROUP BY c.id, c.name, c.description, c.is_active, c.created_at
		ORDER BY c.id`

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()

	out := []repository.CategoryListRow{}
	for rows.Next() {
		var row repository.CategoryListRow
		if err := rows.Scan(
			&row.Category.ID, &row.Category.Name, &row.Category.Description,
			&row.Category.IsActive, &row.Category.CreatedAt, &row.ProductCount,
		); err != nil {
			return nil, fmt.Errorf("scan category row: %w", err)
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

// CountProducts cuenta los productos de una categoría.
func (r *CategoryRepo) CountProducts(categoryID int64) (int, error) {
	var count int
	err := r.q.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM products WHERE category_id = $1`, categoryID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count products of category: %w", err)
	}
	return count, nil
}

// AnyWithProducts indica si alguna de las categorías tiene productos.
func (r *CategoryRepo) AnyWithProducts(ids []int64) (bool, error) {
	var exists bool
	err := r.q.QueryRow(context.Background(),
		`SELECT EXISTS (SELECT 1 FROM products WHERE category_id = ANY($1))`, ids,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check categories with products: %w", err)
	}
	return exists, nil
}

// Update actualiza una categoría existente.
func (r *CategoryRepo) Update(category *entity.Category) error {
	query := `
		UPDATE categories SET name = $2, description = $3, is_active = $4
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		category.ID, category.Name, category.Description, category.IsActive,
	)
	if err != nil {
		return fmt.Errorf("update category: %w", err)
	}
	return nil
}

// DeleteMany borra categorías por lote. La FK RESTRICT de products respalda
// la guarda del use case ante carreras.
func (r *CategoryRepo) DeleteMany(ids []int64) error {
	_, err := r.q.Exec(context.Background(),
		`DELETE FROM categories WHERE id = ANY($1)`, ids,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrCategoryHasProducts
		}
		return fmt.Errorf("delete categories: %w", err)
	}
	return nil
}
