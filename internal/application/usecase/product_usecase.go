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
	"github.com/EzequielRindello/StockCore/internal/domain/stock"
)

// ProductUseCase casos de uso CRUD para productos. El stock nunca se lee de
// una columna: el detalle lo deriva sumando los movimientos del producto.
type ProductUseCase struct {
	products  repository.ProductRepository
	movements repository.StockMovementRepository
	tx        ports.TxRunner
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(products repository.ProductRepository, movements repository.StockMovementRepository, tx ports.TxRunner) *ProductUseCase {
	return &ProductUseCase{products: products, movements: movements, tx: tx}
}

// List devuelve todos los productos con el nombre de su categoría.
func (uc *ProductUseCase) List() ([]dto.ProductListItem, error) {
	return uc.Filter(dto.ProductFilterRequest{})
}

// Filter lista productos por substring (nombre o SKU), categoría y estado.
func (uc *ProductUseCase) Filter(in dto.ProductFilterRequest) ([]dto.ProductListItem, error) {
	rows, err := uc.products.List(repository.ProductFilter{
		Search:     in.Search,
		CategoryID: in.CategoryID,
		IsActive:   in.IsActive,
	})
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductListItem, 0, len(rows))
	for _, r := range rows {
		items = append(items, dto.ProductListItem{
			ID:       r.Product.ID,
			Name:     r.Product.Name,
			Sku:      r.Product.SKU,
			Category: r.CategoryName,
			IsActive: r.Product.IsActive,
		})
	}
	return items, nil
}

// GetDetail devuelve la vista de detalle con el stock derivado, o (nil, nil)
// si el producto no existe.
func (uc *ProductUseCase) GetDetail(id int64) (*dto.ProductDetail, error) {
	row, err := uc.products.GetDetail(id)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, nil
	}
	movements, err := uc.movements.ListByProduct(id)
	if err != nil {
		return nil, err
	}
	return &dto.ProductDetail{
		ID:          row.Product.ID,
		Name:        row.Product.Name,
		Description: row.Product.Description,
		Sku:         row.Product.SKU,
		Category:    row.CategoryName,
		IsActive:    row.Product.IsActive,
		CreatedAt:   row.Product.CreatedAt,
		Stock:       stock.CurrentStock(movements),
	}, nil
}

// GetForEdit devuelve la proyección de formulario, o (nil, nil) si no existe.
func (uc *ProductUseCase) GetForEdit(id int64) (*dto.ProductForm, error) {
	product, err := uc.products.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	return &dto.ProductForm{
		ID:          product.ID,
		Name:        product.Name,
		Description: product.Description,
		Sku:         product.SKU,
		CategoryID:  product.CategoryID,
		IsActive:    product.IsActive,
	}, nil
}

// Create persiste un nuevo producto dentro de una transacción.
func (uc *ProductUseCase) Create(ctx context.Context, form dto.ProductForm) dto.Result {
	err := uc.tx.Run(ctx, func(r ports.TxRepos) error {
		return r.Products.Create(&entity.Product{
			Name:        form.Name,
			Description: form.Description,
			SKU:         form.Sku,
			CategoryID:  form.CategoryID,
			IsActive:    form.IsActive,
			CreatedAt:   time.Now().UTC(),
		})
	})
	if err != nil {
		return dto.Fail(dto.MsgErrorDoing("creating", "product"))
	}
	return dto.Ok(dto.MsgCreated("Product"))
}

// Update actualiza un producto existente devolviendo el formulario recibido.
func (uc *ProductUseCase) Update(ctx context.Context, form dto.ProductForm) (dto.ProductForm, dto.Result) {
	err := uc.tx.Run(ctx, func(r ports.TxRepos) error {
		product, err := r.Products.GetByID(form.ID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}
		product.Name = form.Name
		product.Description = form.Description
		product.SKU = form.Sku
		product.CategoryID = form.CategoryID
		product.IsActive = form.IsActive
		return r.Products.Update(product)
	})
	switch {
	case err == nil:
		return form, dto.Ok(dto.MsgSaved("Product"))
	case errors.Is(err, domain.ErrNotFound):
		return form, dto.Fail(dto.MsgNotFound("Product"))
	default:
		return form, dto.Fail(dto.MsgErrorDoing("saving", "product"))
	}
}

// DeleteMany elimina productos en lote. Si alguno registra movimientos de
// stock se rechaza el lote completo.
func (uc *ProductUseCase) DeleteMany(ctx context.Context, ids []int64) dto.Result {
	if len(ids) == 0 {
		return dto.Fail(dto.MsgNoneSelected("products"))
	}
	err := uc.tx.Run(ctx, func(r ports.TxRepos) error {
		hasMovements, err := r.Products.AnyWithMovements(ids)
		if err != nil {
			return err
		}
		if hasMovements {
			return domain.ErrProductHasMovements
		}
		return r.Products.DeleteMany(ids)
	})
	switch {
	case err == nil:
		return dto.Ok(dto.MsgDeleted("Product"))
	case errors.Is(err, domain.ErrProductHasMovements):
		return dto.Fail(dto.MsgProductWithStock)
	default:
		return dto.Fail(dto.MsgErrorDoing("deleting", "product"))
	}
}

// ExportCsv genera el CSV del listado aplicando el mismo filtro.
func (uc *ProductUseCase) ExportCsv(in dto.ProductFilterRequest) (string, error) {
	items, err := uc.Filter(in)
	if err != nil {
		return "", err
	}
	var sb strings.Builder
	w := csv.NewWriter(&sb)
	_ = w.Write([]string{"Id", "Name", "Sku", "Category", "Active"})
	for _, p := range items {
		_ = w.Write([]string{
			strconv.FormatInt(p.ID, 10),
			p.Name,
			p.Sku,
			p.Category,
			strconv.FormatBool(p.IsActive),
		})
	}
	w.Flush()
	return sb.String(), w.Error()
}
