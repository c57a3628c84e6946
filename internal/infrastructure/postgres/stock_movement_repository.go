package postgres

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/jackc/pgx/v5"

	"github.com/EzequielRindello/StockCore/internal/domain/entity"
	"github.com/EzequielRindello/StockCore/internal/domain/repository"
)

var _ repository.StockMovementRepository = (*StockMovementRepo)(nil)

// StockMovementRepo implementación del puerto StockMovementRepository sobre
// PostgreSQL (usable con pool o tx).
type StockMovementRepo struct {
	q Querier
}

// NewStockMovementRepository construye el adaptador de persistencia para el
// libro de movimientos. Pasar pool o tx (Querier).
func NewStockMovementRepository(q Querier) *StockMovementRepo {
	return &StockMovementRepo{q: q}
}

// Create registra un nuevo movimiento y completa su ID.
func (r *StockMovementRepo) Create(movement *entity.StockMovement) error {
	query := `
		INSERT INTO stock_movements (product_id, quantity, movement_type, reason, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		movement.ProductID, movement.Quantity, movement.MovementType,
		movement.Reason, movement.CreatedAt,
	).Scan(&movement.ID)
	if err != nil {
		return fmt.Errorf("insert stock movement: %w", err)
	}
	return nil
}

// GetByID obtiene un movimiento por ID, o (nil, nil) si no existe.
func (r *StockMovementRepo) GetByID(id int64) (*entity.StockMovement, error) {
	query := `
		SELECT id, product_id, quantity, movement_type, reason, created_at
		FROM stock_movements WHERE id = $1`
	var m entity.StockMovement
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&m.ID, &m.ProductID, &m.Quantity, &m.MovementType, &m.Reason, &m.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get stock movement: %w", err)
	}
	return &m, nil
}

// GetDetail obtiene el movimiento con nombre y SKU del producto resueltos.
func (r *StockMovementRepo) GetDetail(id int64) (*repository.MovementListRow, error) {
	query := `
		SELECT m.id, m.product_id, m.quantity, m.movement_type, m.reason, m.created_at, p.name, p.sku
		FROM stock_movements m
		JOIN products p ON p.id = m.product_id
		WHERE m.id = $1`
	var row repository.MovementListRow
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&row.Movement.ID, &row.Movement.ProductID, &row.Movement.Quantity,
		&row.Movement.MovementType, &row.Movement.Reason, &row.Movement.CreatedAt,
		&row.ProductName, &row.ProductSKU,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get stock movement detail: %w", err)
	}
	return &row, nil
}

// List devuelve los movimientos más recientes primero, aplicando el filtro
// de producto, tipo y rango de fechas (intervalo semiabierto [from, to)).
func (r *StockMovementRepo) List(filter repository.MovementFilter) ([]repository.MovementListRow, error) {
	query := `
		SELECT m.id, m.product_id, m.quantity, m.movement_type, m.reason, m.created_at, p.name, p.sku
		FROM stock_movements m
		JOIN products p ON p.id = m.product_id
		WHERE 1=1`
	args := []any{}
	if filter.ProductID != nil {
		args = append(args, *filter.ProductID)
		query += " AND m.product_id = $" + strconv.Itoa(len(args))
	}
	if filter.MovementType != nil {
		args = append(args, *filter.MovementType)
		query += " AND m.movement_type = $" + strconv.Itoa(len(args))
	}
	if filter.DateFrom != nil {
		args = append(args, *filter.DateFrom)
		query += " AND m.created_at >= $" + strconv.Itoa(len(args))
	}
	if filter.DateTo != nil {
		args = append(args, *filter.DateTo)
		query += " AND m.created_at < $" + strconv.Itoa(len(args))
	}
	query += " ORDER BY m.created_at DESC, m.id DESC"

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list stock movements: %w", err)
	}
	defer rows.Close()

	out := []repository.MovementListRow{}
	for rows.Next() {
		var row repository.MovementListRow
		if err := rows.Scan(
			&row.Movement.ID, &row.Movement.ProductID, &row.Movement.Quantity,
			&row.Movement.MovementType, &row.Movement.Reason, &row.Movement.CreatedAt,
			&row.ProductName, &row.ProductSKU,
		); err != nil {
			return nil, fmt.Errorf("scan stock movement row: %w", err)
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

// ListByProduct devuelve el libro completo de un producto.
func (r *StockMovementRepo) ListByProduct(productID int64) ([]entity.StockMovement, error) {
	query := `
		SELECT id, product_id, quantity, movement_type, reason, created_at
		FROM stock_movements WHERE product_id = $1 ORDER BY id`
	rows, err := r.q.Query(context.Background(), query, productID)
	if err != nil {
		return nil, fmt.Errorf("list movements by product: %w", err)
	}
	defer rows.Close()

	out := []entity.StockMovement{}
	for rows.Next() {
		var m entity.StockMovement
		if err := rows.Scan(
			&m.ID, &m.ProductID, &m.Quantity, &m.MovementType, &m.Reason, &m.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan stock movement: %w", err)
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

// Update corrige un movimiento existente.
func (r *StockMovementRepo) Update(movement *entity.StockMovement) error {
	query := `
		UPDATE stock_movements SET product_id = $2, quantity = $3, movement_type = $4, reason = $5
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		movement.ID, movement.ProductID, movement.Quantity,
		movement.MovementType, movement.Reason,
	)
	if err != nil {
		return fmt.Errorf("update stock movement: %w", err)
	}
	return nil
}

// DeleteMany borra movimientos por lote.
func (r *StockMovementRepo) DeleteMany(ids []int64) error {
	_, err := r.q.Exec(context.Background(),
		`DELETE FROM stock_movements WHERE id = ANY($1)`, ids,
	)
	if err != nil {
		return fmt.Errorf("delete stock movements: %w", err)
	}
	return nil
}
