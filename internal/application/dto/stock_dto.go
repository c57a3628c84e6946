package dto

import (
	"time"

	"github.com/EzequielRindello/StockCore/internal/domain/entity"
)

// StockMovementForm proyección plana de un movimiento para alta y edición.
type StockMovementForm struct {
	ID           int64  `json:"id"`
	ProductID    int64  `json:"productId"`
	Quantity     int    `json:"quantity"`
	MovementType string `json:"movementType"` // in, out
	Reason       string `json:"reason"`
}

// Validate devuelve los errores de validación por campo (vacío si es válido).
func (f StockMovementForm) Validate() map[string]string {
	errs := map[string]string{}
	if f.ProductID == 0 {
		errs["productId"] = MsgProductRequired
	}
	switch {
	case f.Quantity == 0:
		errs["quantity"] = MsgQuantityRequired
	case f.Quantity < 0:
		errs["quantity"] = MsgQuantityGreaterThanZero
	}
	switch f.MovementType {
	case entity.MovementTypeIn, entity.MovementTypeOut:
	case "":
		errs["movementType"] = MsgMovementTypeRequired
	default:
		errs["movementType"] = MsgMovementTypeRequired
	}
	switch {
	case f.Reason == "":
		errs["reason"] = MsgReasonRequired
	case len(f.Reason) > 250:
		errs["reason"] = MsgDescriptionMax250
	}
	return errs
}

// StockMovementListItem fila del listado de movimientos.
type StockMovementListItem struct {
	ID           int64     `json:"id"`
	ProductName  string    `json:"productName"`
	ProductSku   string    `json:"productSku"`
	Quantity     int       `json:"quantity"`
	MovementType string    `json:"movementType"`
	Reason       string    `json:"reason"`
	CreatedAt    time.Time `json:"createdAt"`
}

// StockMovementDetail vista de detalle (mismos campos que el listado).
type StockMovementDetail = StockMovementListItem

// StockMovementFilterRequest filtro del listado.
type StockMovementFilterRequest struct {
	ProductID    *int64     `json:"productId" query:"productId"`
	MovementType *string    `json:"movementType" query:"movementType"`
	DateFrom     *time.Time `json:"dateFrom" query:"dateFrom"`
	DateTo       *time.Time `json:"dateTo" query:"dateTo"`
}
