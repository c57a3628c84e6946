package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/EzequielRindello/StockCore/internal/application/usecase"
	"github.com/EzequielRindello/StockCore/internal/domain/entity"
)

func TestComboCategories_OrdenadasPorNombre(t *testing.T) {
	categories := newFakeCategoryRepo()
	products := newFakeProductRepo()
	require.NoError(t, categories.Create(&entity.Category{Name: "Periféricos", IsActive: true}))
	require.NoError(t, categories.Create(&entity.Category{Name: "Almacén", IsActive: true}))
	uc := usecase.NewComboUseCase(categories, products)

	items, err := uc.Categories()

	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "Almacén", items[0].Text)
	assert.Equal(t, "2", items[0].Value)
	assert.Equal(t, "Periféricos", items[1].Text)
}

func TestComboProducts_SoloActivosConSkuEnLaEtiqueta(t *testing.T) {
	categories := newFakeCategoryRepo()
	products := newFakeProductRepo()
	require.NoError(t, products.Create(&entity.Product{Name: "Teclado", SKU: "TEC-001", IsActive: true}))
	require.NoError(t, products.Create(&entity.Product{Name: "Mouse", SKU: "MOU-001", IsActive: false}))
	uc := usecase.NewComboUseCase(categories, products)

	items, err := uc.Products()

	require.NoError(t, err)
	require.Len(t, items, 1, "los productos inactivos no entran al combo")
	assert.Equal(t, "Teclado (TEC-001)", items[0].Text)
	assert.Equal(t, "1", items[0].Value)
}
