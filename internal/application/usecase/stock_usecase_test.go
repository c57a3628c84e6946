package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/EzequielRindello/StockCore/internal/application/dto"
	"github.com/EzequielRindello/StockCore/internal/application/ports"
	"github.com/EzequielRindello/StockCore/internal/application/usecase"
	"github.com/EzequielRindello/StockCore/internal/domain/entity"
)

func buildStockUseCase() (*usecase.StockUseCase, *fakeMovementRepo) {
	movements := newFakeMovementRepo()
	tx := &fakeTxRunner{repos: ports.TxRepos{Movements: movements}}
	return usecase.NewStockUseCase(movements, tx), movements
}

func TestStockCreate_DevuelveSuccessYPersiste(t *testing.T) {
	uc, movements := buildStockUseCase()

	res := uc.Create(context.Background(), dto.StockMovementForm{
		ProductID:    1,
		Quantity:     10,
		MovementType: entity.MovementTypeIn,
		Reason:       "Compra inicial",
	})

	assert.Equal(t, dto.KeySuccess, res.Key)
	assert.Equal(t, "Stock movement created successfully", res.Message)
	assert.Len(t, movements.movements, 1)
}

func TestStockUpdate_CorrigeLaCantidad(t *testing.T) {
	uc, movements := buildStockUseCase()
	require.NoError(t, movements.Create(&entity.StockMovement{
		ProductID: 1, Quantity: 10, MovementType: entity.MovementTypeIn, Reason: "Compra", CreatedAt: time.Now(),
	}))

	_, res := uc.Update(context.Background(), dto.StockMovementForm{
		ID: 1, ProductID: 1, Quantity: 8, MovementType: entity.MovementTypeIn, Reason: "Compra (corregida)",
	})

	assert.Equal(t, dto.KeySuccess, res.Key)
	assert.Equal(t, 8, movements.movements[1].Quantity, "la corrección debe reemplazar la cantidad")
	assert.Equal(t, "Compra (corregida)", movements.movements[1].Reason)
}

func TestStockUpdate_NoEncontradoDevuelveFormularioEnviado(t *testing.T) {
	uc, _ := buildStockUseCase()

	form := dto.StockMovementForm{ID: 7, ProductID: 1, Quantity: 1, MovementType: entity.MovementTypeOut, Reason: "x"}
	got, res := uc.Update(context.Background(), form)

	assert.Equal(t, dto.KeyError, res.Key)
	assert.Equal(t, "Stock movement not found", res.Message)
	assert.Equal(t, form, got)
}

func TestStockDeleteMany_SinSeleccionDevuelveError(t *testing.T) {
	uc, _ := buildStockUseCase()

	res := uc.DeleteMany(context.Background(), nil)

	assert.Equal(t, dto.KeyError, res.Key)
	assert.Equal(t, "No stock movements selected", res.Message)
}

func TestStockDeleteMany_BorraSinGuardas(t *testing.T) {
	uc, movements := buildStockUseCase()
	require.NoError(t, movements.Create(&entity.StockMovement{ProductID: 1, Quantity: 5, MovementType: entity.MovementTypeIn}))

	res := uc.DeleteMany(context.Background(), []int64{1})

	assert.Equal(t, dto.KeySuccess, res.Key)
	assert.Empty(t, movements.movements, "borrar un movimiento solo resta ese hecho del libro")
}

func TestStockFilter_PorTipoYRangoDeFechas(t *testing.T) {
	uc, movements := buildStockUseCase()
	base := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	require.NoError(t, movements.Create(&entity.StockMovement{ProductID: 1, Quantity: 5, MovementType: entity.MovementTypeIn, CreatedAt: base}))
	require.NoError(t, movements.Create(&entity.StockMovement{ProductID: 1, Quantity: 2, MovementType: entity.MovementTypeOut, CreatedAt: base.Add(time.Hour)}))
	require.NoError(t, movements.Create(&entity.StockMovement{ProductID: 1, Quantity: 9, MovementType: entity.MovementTypeIn, CreatedAt: base.AddDate(0, 1, 0)}))

	typ := entity.MovementTypeIn
	from := base.Add(-time.Hour)
	to := base.Add(24 * time.Hour)
	items, err := uc.Filter(dto.StockMovementFilterRequest{MovementType: &typ, DateFrom: &from, DateTo: &to})

	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 5, items[0].Quantity)
}

func TestStockList_MasRecientesPrimero(t *testing.T) {
	uc, movements := buildStockUseCase()
	base := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	require.NoError(t, movements.Create(&entity.StockMovement{ProductID: 1, Quantity: 1, MovementType: entity.MovementTypeIn, CreatedAt: base}))
	require.NoError(t, movements.Create(&entity.StockMovement{ProductID: 1, Quantity: 2, MovementType: entity.MovementTypeIn, CreatedAt: base.Add(time.Hour)}))

	items, err := uc.List()

	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, 2, items[0].Quantity, "el movimiento más nuevo va primero")
}

func TestStockExportCsv_IncluyeProductoYSku(t *testing.T) {
	uc, movements := buildStockUseCase()
	movements.productRefs[1] = productRef{name: "Teclado", sku: "TEC-001"}
	require.NoError(t, movements.Create(&entity.StockMovement{
		ProductID: 1, Quantity: 5, MovementType: entity.MovementTypeIn, Reason: "Compra",
		CreatedAt: time.Date(2026, 3, 10, 12, 30, 0, 0, time.UTC),
	}))

	out, err := uc.ExportCsv(dto.StockMovementFilterRequest{})

	require.NoError(t, err)
	assert.Equal(t, "Id,Product,Sku,Quantity,Type,Reason,Date\n1,Teclado,TEC-001,5,in,Compra,2026-03-10 12:30\n", out)
}
