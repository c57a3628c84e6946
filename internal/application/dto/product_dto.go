package dto

import "time"

// ProductForm proyección plana de un producto para alta y edición.
type ProductForm struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Sku         string `json:"sku"`
	CategoryID  int64  `json:"categoryId"`
	IsActive    bool   `json:"isActive"`
}

// Validate devuelve los errores de validación por campo (vacío si es válido).
func (f ProductForm) Validate() map[string]string {
	errs := map[string]string{}
	switch {
	case f.Name == "":
		errs["name"] = MsgNameRequired
	case len(f.Name) > 150:
		errs["name"] = MsgNameMax150
	}
	switch {
	case f.Description == "":
		errs["description"] = MsgDescriptionRequired
	case len(f.Description) > 500:
		errs["description"] = MsgDescriptionMax500
	}
	switch {
	case f.Sku == "":
		errs["sku"] = MsgSkuRequired
	case len(f.Sku) > 50:
		errs["sku"] = MsgSkuMax50
	}
	if f.CategoryID == 0 {
		errs["categoryId"] = MsgCategoryRequired
	}
	return errs
}

// ProductListItem fila del listado de productos.
type ProductListItem struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Sku      string `json:"sku"`
	Category string `json:"category"`
	IsActive bool   `json:"isActive"`
}

// ProductDetail vista de detalle; Stock se deriva del libro de movimientos.
type ProductDetail struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Sku         string    `json:"sku"`
	Category    string    `json:"category"`
	IsActive    bool      `json:"isActive"`
	CreatedAt   time.Time `json:"createdAt"`
	Stock       int       `json:"stock"`
}

// ProductFilterRequest filtro del listado (búsqueda + categoría + estado).
type ProductFilterRequest struct {
	Search     string `json:"search" query:"search"`
	CategoryID *int64 `json:"categoryId" query:"categoryId"`
	IsActive   *bool  `json:"isActive" query:"isActive"`
}
