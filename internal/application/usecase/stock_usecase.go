package usecase

import (
	"context"
	"encoding/csv"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/EzequielRindello/StockCore/internal/application/dto"
	"github.com/EzequielRindello/StockCore/internal/application/ports"
	"github.com/EzequielRindello/StockCore/internal/domain"
	"github.com/EzequielRindello/StockCore/internal/domain/entity"
	"github.com/EzequielRindello/StockCore/internal/domain/repository"
)

// StockUseCase casos de uso CRUD para movimientos de stock. Cada movimiento
// es un hecho del ledger: crear uno es la única forma de cambiar el stock.
type StockUseCase struct {
	movements repository.StockMovementRepository
	tx        ports.TxRunner
}

// NewStockUseCase construye el caso de uso.
func NewStockUseCase(movements repository.StockMovementRepository, tx ports.TxRunner) *StockUseCase {
	return &StockUseCase{movements: movements, tx: tx}
}

// List devuelve todos los movimientos, más recientes primero.
func (uc *StockUseCase) List() ([]dto.StockMovementListItem, error) {
	return uc.Filter(dto.StockMovementFilterRequest{})
}

// Filter lista movimientos por producto, tipo y rango de fechas.
func (uc *StockUseCase) Filter(in dto.StockMovementFilterRequest) ([]dto.StockMovementListItem, error) {
	rows, err := uc.movements.List(repository.MovementFilter{
		ProductID:    in.ProductID,
		MovementType: in.MovementType,
		DateFrom:     in.DateFrom,
		DateTo:       in.DateTo,
	})
	if err != nil {
		return nil, err
	}
	items := make([]dto.StockMovementListItem, 0, len(rows))
	for _, r := range rows {
		items = append(items, toMovementItem(r))
	}
	return items, nil
}

// GetDetail devuelve la vista de detalle, o (nil, nil) si no existe.
func (uc *StockUseCase) GetDetail(id int64) (*dto.StockMovementDetail, error) {
	row, err := uc.movements.GetDetail(id)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, nil
	}
	item := toMovementItem(*row)
	return &item, nil
}

// GetForEdit devuelve la proyección de formulario, o (nil, nil) si no existe.
func (uc *StockUseCase) GetForEdit(id int64) (*dto.StockMovementForm, error) {
	movement, err := uc.movements.GetByID(id)
	if err != nil {
		return nil, err
	}
	if movement == nil {
		return nil, nil
	}
	return &dto.StockMovementForm{
		ID:           movement.ID,
		ProductID:    movement.ProductID,
		Quantity:     movement.Quantity,
		MovementType: movement.MovementType,
		Reason:       movement.Reason,
	}, nil
}

// Create registra un nuevo movimiento dentro de una transacción.
func (uc *StockUseCase) Create(ctx context.Context, form dto.StockMovementForm) dto.Result {
	err := uc.tx.Run(ctx, func(r ports.TxRepos) error {
		return r.Movements.Create(&entity.StockMovement{
			ProductID:    form.ProductID,
			Quantity:     form.Quantity,
			MovementType: form.MovementType,
			Reason:       form.Reason,
			CreatedAt:    time.Now().UTC(),
		})
	})
	if err != nil {
		return dto.Fail(dto.MsgErrorDoing("creating", "stock movement"))
	}
	return dto.Ok(dto.MsgCreated("Stock movement"))
}

// Update corrige un movimiento existente. El stock derivado de los reportes
// refleja la corrección automáticamente en la próxima lectura.
func (uc *StockUseCase) Update(ctx context.Context, form dto.StockMovementForm) (dto.StockMovementForm, dto.Result) {
	err := uc.tx.Run(ctx, func(r ports.TxRepos) error {
		movement, err := r.Movements.GetByID(form.ID)
		if err != nil {
			return err
		}
		if movement == nil {
			return domain.ErrNotFound
		}
		movement.ProductID = form.ProductID
		movement.Quantity = form.Quantity
		movement.MovementType = form.MovementType
		movement.Reason = form.Reason
		return r.Movements.Update(movement)
	})
	switch {
	case err == nil:
		return form, dto.Ok(dto.MsgSaved("Stock movement"))
	case errors.Is(err, domain.ErrNotFound):
		return form, dto.Fail(dto.MsgNotFound("Stock movement"))
	default:
		return form, dto.Fail(dto.MsgErrorDoing("saving", "stock movement"))
	}
}

// DeleteMany elimina movimientos en lote, sin guardas adicionales: borrar un
// movimiento simplemente resta ese hecho del ledger.
func (uc *StockUseCase) DeleteMany(ctx context.Context, ids []int64) dto.Result {
	if len(ids) == 0 {
		return dto.Fail(dto.MsgNoneSelected("stock movements"))
	}
	err := uc.tx.Run(ctx, func(r ports.TxRepos) error {
		return r.Movements.DeleteMany(ids)
	})
	if err != nil {
		return dto.Fail(dto.MsgErrorDoing("deleting", "stock movement"))
	}
	return dto.Ok(dto.MsgDeleted("Stock movement"))
}

// ExportCsv genera el CSV del listado aplicando el mismo filtro.
func (uc *StockUseCase) ExportCsv(in dto.StockMovementFilterRequest) (string, error) {
	items, err := uc.Filter(in)
	if err != nil {
		return "", err
	}
	var sb strings.Builder
	w := csv.NewWriter(&sb)
	_ = w.Write([]string{"Id", "Product", "Sku", "Quantity", "Type", "Reason", "Date"})
	for _, m := range items {
		_ = w.Write([]string{
			strconv.FormatInt(m.ID, 10),
			m.ProductName,
			m.ProductSku,
			strconv.Itoa(m.Quantity),
			m.MovementType,
			m.Reason,
			m.CreatedAt.Format("2006-01-02 15:04"),
		})
	}
	w.Flush()
	return sb.String(), w.Error()
}

func toMovementItem(r repository.MovementListRow) dto.StockMovementListItem {
	return dto.StockMovementListItem{
		ID:           r.Movement.ID,
		ProductName:  r.ProductName,
		ProductSku:   r.ProductSKU,
		Quantity:     r.Movement.Quantity,
		MovementType: r.Movement.MovementType,
		Reason:       r.Movement.Reason,
		CreatedAt:    r.Movement.CreatedAt,
	}
}
