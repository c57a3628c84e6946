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

func buildProductUseCase() (*usecase.ProductUseCase, *fakeProductRepo, *fakeMovementRepo) {
	products := newFakeProductRepo()
	movements := newFakeMovementRepo()
	tx := &fakeTxRunner{repos: ports.TxRepos{Products: products, Movements: movements}}
	return usecase.NewProductUseCase(products, movements, tx), products, movements
}

func TestProductCreate_DevuelveSuccessYPersiste(t *testing.T) {
	uc, products, _ := buildProductUseCase()

	res := uc.Create(context.Background(), dto.ProductForm{
		Name:        "Teclado",
		Description: "Mecánico",
		Sku:         "TEC-001",
		CategoryID:  1,
		IsActive:    true,
	})

	assert.Equal(t, dto.KeySuccess, res.Key)
	assert.Equal(t, "Product created successfully", res.Message)
	assert.Len(t, products.products, 1)
}

func TestProductGetDetail_DerivaStockDelLibro(t *testing.T) {
	uc, products, movements := buildProductUseCase()
	require.NoError(t, products.Create(&entity.Product{Name: "Teclado", SKU: "TEC-001", CategoryID: 1, IsActive: true}))
	products.categoryNames[1] = "Periféricos"
	now := time.Now()
	require.NoError(t, movements.Create(&entity.StockMovement{ProductID: 1, Quantity: 10, MovementType: entity.MovementTypeIn, CreatedAt: now}))
	require.NoError(t, movements.Create(&entity.StockMovement{ProductID: 1, Quantity: 3, MovementType: entity.MovementTypeOut, CreatedAt: now}))
	require.NoError(t, movements.Create(&entity.StockMovement{ProductID: 2, Quantity: 99, MovementType: entity.MovementTypeIn, CreatedAt: now}))

	detail, err := uc.GetDetail(1)

	require.NoError(t, err)
	require.NotNil(t, detail)
	assert.Equal(t, 7, detail.Stock, "el stock debe ser la suma con signo de los movimientos del producto")
	assert.Equal(t, "Periféricos", detail.Category)
}

func TestProductGetDetail_SinMovimientosStockCero(t *testing.T) {
	uc, products, _ := buildProductUseCase()
	require.NoError(t, products.Create(&entity.Product{Name: "Teclado", SKU: "TEC-001", CategoryID: 1}))

	detail, err := uc.GetDetail(1)

	require.NoError(t, err)
	require.NotNil(t, detail)
	assert.Zero(t, detail.Stock)
}

func TestProductUpdate_NoEncontradoDevuelveFormularioEnviado(t *testing.T) {
	uc, _, _ := buildProductUseCase()

	form := dto.ProductForm{ID: 5, Name: "Fantasma", Description: "x", Sku: "F-1", CategoryID: 1}
	got, res := uc.Update(context.Background(), form)

	assert.Equal(t, dto.KeyError, res.Key)
	assert.Equal(t, "Product not found", res.Message)
	assert.Equal(t, form, got)
}

func TestProductDeleteMany_ConMovimientosRechazaElLote(t *testing.T) {
	uc, products, _ := buildProductUseCase()
	require.NoError(t, products.Create(&entity.Product{Name: "Libre", SKU: "L-1", CategoryID: 1}))
	require.NoError(t, products.Create(&entity.Product{Name: "Con stock", SKU: "S-1", CategoryID: 1}))
	products.withMovements[2] = true

	res := uc.DeleteMany(context.Background(), []int64{1, 2})

	assert.Equal(t, dto.KeyError, res.Key)
	assert.Equal(t, "Products with associated stock cannot be deleted.", res.Message)
	assert.Len(t, products.products, 2, "no debe borrarse ninguna fila del lote")
}

func TestProductDeleteMany_SinSeleccionDevuelveError(t *testing.T) {
	uc, _, _ := buildProductUseCase()

	res := uc.DeleteMany(context.Background(), []int64{})

	assert.Equal(t, dto.KeyError, res.Key)
	assert.Equal(t, "No products selected", res.Message)
}

func TestProductFilter_PorCategoria(t *testing.T) {
	uc, products, _ := buildProductUseCase()
	require.NoError(t, products.Create(&entity.Product{Name: "Teclado", SKU: "TEC-001", CategoryID: 1, IsActive: true}))
	require.NoError(t, products.Create(&entity.Product{Name: "Yerba", SKU: "YER-001", CategoryID: 2, IsActive: true}))
	products.categoryNames[1] = "Periféricos"
	products.categoryNames[2] = "Almacén"

	categoryID := int64(2)
	items, err := uc.Filter(dto.ProductFilterRequest{CategoryID: &categoryID})

	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Yerba", items[0].Name)
	assert.Equal(t, "Almacén", items[0].Category)
}

func TestProductExportCsv_EncabezadoYFilas(t *testing.T) {
	uc, products, _ := buildProductUseCase()
	require.NoError(t, products.Create(&entity.Product{Name: "Teclado", SKU: "TEC-001", CategoryID: 1, IsActive: true}))
	products.categoryNames[1] = "Periféricos"

	out, err := uc.ExportCsv(dto.ProductFilterRequest{})

	require.NoError(t, err)
	assert.Equal(t, "Id,Name,Sku,Category,Active\n1,Teclado,TEC-001,Periféricos,true\n", out)
}
