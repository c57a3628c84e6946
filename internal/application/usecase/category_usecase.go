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

// CategoryUseCase casos de uso CRUD para categorías. Las mutaciones corren
// dentro de una transacción y devuelven el par Result en vez de propagar el
// error al caller.
type CategoryUseCase struct {
	repo repository.CategoryRepository
	tx   ports.TxRunner
}

// NewCategoryUseCase construye el caso de uso.
func NewCategoryUseCase(repo repository.CategoryRepository, tx ports.TxRunner) *CategoryUseCase {
	return &CategoryUseCase{repo: repo, tx: tx}
}

// List devuelve todas las categorías con su conteo de productos.
func (uc *CategoryUseCase) List() ([]dto.CategoryListItem, error) {
	return uc.Filter(dto.CategoryFilterRequest{})
}

// Filter lista categorías por substring (nombre o descripción) y estado.
func (uc *CategoryUseCase) Filter(in dto.CategoryFilterRequest) ([]dto.CategoryListItem, error) {
	rows, err := uc.repo.List(repository.CategoryFilter{Search: in.Search, IsActive: in.IsActive})
	if err != nil {
		return nil, err
	}
	items := make([]dto.CategoryListItem, 0, len(rows))
	for _, r := range rows {
		items = append(items, dto.CategoryListItem{
			ID:           r.Category.ID,
			Name:         r.Category.Name,
			Description:  r.Category.Description,
			IsActive:     r.Category.IsActive,
			ProductCount: r.ProductCount,
		})
	}
	return items, nil
}

// GetDetail devuelve la vista de detalle, o (nil, nil) si no existe.
func (uc *CategoryUseCase) GetDetail(id int64) (*dto.CategoryDetail, error) {
	category, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, nil
	}
	count, err := uc.repo.CountProducts(id)
	if err != nil {
		return nil, err
	}
	return &dto.CategoryDetail{
		ID:           category.ID,
		Name:         category.Name,
		Description:  category.Description,
		IsActive:     category.IsActive,
		CreatedAt:    category.CreatedAt,
		ProductCount: count,
	}, nil
}

// GetForEdit devuelve la proyección de formulario, o (nil, nil) si no existe.
func (uc *CategoryUseCase) GetForEdit(id int64) (*dto.CategoryForm, error) {
	category, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, nil
	}
	return &dto.CategoryForm{
		ID:          category.ID,
		Name:        category.Name,
		Description: category.Description,
		IsActive:    category.IsActive,
	}, nil
}

// Create persiste una nueva categoría dentro de una transacción.
func (uc *CategoryUseCase) Create(ctx context.Context, form dto.CategoryForm) dto.Result {
	err := uc.tx.Run(ctx, func(r ports.TxRepos) error {
		return r.Categories.Create(&entity.Category{
			Name:        form.Name,
			Description: form.Description,
			IsActive:    form.IsActive,
			CreatedAt:   time.Now().UTC(),
		})
	})
	if err != nil {
		return dto.Fail(dto.MsgErrorDoing("creating", "category"))
	}
	return dto.Ok(dto.MsgCreated("Category"))
}

// Update actualiza una categoría existente. Si la fila desapareció, devuelve
// el formulario tal como se recibió (el caller re-renderiza con los valores
// enviados, no los guardados) junto con el error de no encontrada.
func (uc *CategoryUseCase) Update(ctx context.Context, form dto.CategoryForm) (dto.CategoryForm, dto.Result) {
	err := uc.tx.Run(ctx, func(r ports.TxRepos) error {
		category, err := r.Categories.GetByID(form.ID)
		if err != nil {
			return err
		}
		if category == nil {
			return domain.ErrNotFound
		}
		category.Name = form.Name
		category.Description = form.Description
		category.IsActive = form.IsActive
		return r.Categories.Update(category)
	})
	switch {
	case err == nil:
		return form, dto.Ok(dto.MsgSaved("Category"))
	case errors.Is(err, domain.ErrNotFound):
		return form, dto.Fail(dto.MsgNotFound("Category"))
	default:
		return form, dto.Fail(dto.MsgErrorDoing("saving", "category"))
	}
}

// DeleteMany elimina categorías en lote. Si alguna tiene productos asociados
// se rechaza el lote completo sin borrar ninguna fila.
func (uc *CategoryUseCase) DeleteMany(ctx context.Context, ids []int64) dto.Result {
	if len(ids) == 0 {
		return dto.Fail(dto.MsgNoneSelected("categories"))
	}
	err := uc.tx.Run(ctx, func(r ports.TxRepos) error {
		hasProducts, err := r.Categories.AnyWithProducts(ids)
		if err != nil {
			return err
		}
		if hasProducts {
			return domain.ErrCategoryHasProducts
		}
		return r.Categories.DeleteMany(ids)
	})
	switch {
	case err == nil:
		return dto.Ok(dto.MsgDeleted("Category"))
	case errors.Is(err, domain.ErrCategoryHasProducts):
		return dto.Fail(dto.MsgCategoryWithProducts)
	default:
		return dto.Fail(dto.MsgErrorDoing("deleting", "category"))
	}
}

// ExportCsv genera el CSV del listado aplicando el mismo filtro.
func (uc *CategoryUseCase) ExportCsv(in dto.CategoryFilterRequest) (string, error) {
	items, err := uc.Filter(in)
	if err != nil {
		return "", err
	}
	var sb strings.Builder
	w := csv.NewWriter(&sb)
	_ = w.Write([]string{"Id", "Name", "Description", "Active", "ProductCount"})
	for _, c := range items {
		_ = w.Write([]string{
			strconv.FormatInt(c.ID, 10),
			c.Name,
			c.Description,
			strconv.FormatBool(c.IsActive),
			strconv.Itoa(c.ProductCount),
		})
	}
	w.Flush()
	return sb.String(), w.Error()
}
