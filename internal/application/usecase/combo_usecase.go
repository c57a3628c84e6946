package usecase

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/EzequielRindello/StockCore/internal/application/dto"
	"github.com/EzequielRindello/StockCore/internal/domain/repository"
)

// ComboUseCase arma las opciones de los selects de la UI.
type ComboUseCase struct {
	categories repository.CategoryRepository
	products   repository.ProductRepository
}

// NewComboUseCase construye el caso de uso.
func NewComboUseCase(categories repository.CategoryRepository, products repository.ProductRepository) *ComboUseCase {
	return &ComboUseCase{categories: categories, products: products}
}

// Categories devuelve todas las categorías ordenadas por nombre.
func (uc *ComboUseCase) Categories() ([]dto.ComboItem, error) {
	rows, err := uc.categories.List(repository.CategoryFilter{})
	if err != nil {
		return nil, err
	}
	items := make([]dto.ComboItem, 0, len(rows))
	for _, r := range rows {
		items = append(items, dto.ComboItem{
			Value: strconv.FormatInt(r.Category.ID, 10),
			Text:  r.Category.Name,
		})
	}
	sort.Slice(items, func(i, j int) bool { return items[i].Text < items[j].Text })
	return items, nil
}

// Products devuelve los productos activos ordenados por nombre, con el SKU
// entre paréntesis en la etiqueta.
func (uc *ComboUseCase) Products() ([]dto.ComboItem, error) {
	products, err := uc.products.ListActive()
	if err != nil {
		return nil, err
	}
	items := make([]dto.ComboItem, 0, len(products))
	for _, p := range products {
		items = append(items, dto.ComboItem{
			Value: strconv.FormatInt(p.ID, 10),
			Text:  fmt.Sprintf("%s (%s)", p.Name, p.SKU),
		})
	}
	sort.Slice(items, func(i, j int) bool { return items[i].Text < items[j].Text })
	return items, nil
}
