package dto

import "time"

// CategoryForm proyección plana de una categoría para alta y edición.
type CategoryForm struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	IsActive    bool   `json:"isActive"`
}

// Validate devuelve los errores de validación por campo (vacío si es válido).
func (f CategoryForm) Validate() map[string]string {
	errs := map[string]string{}
	switch {
	case f.Name == "":
		errs["name"] = MsgNameRequired
	case len(f.Name) > 100:
		errs["name"] = MsgNameMax100
	}
	switch {
	case f.Description == "":
		errs["description"] = MsgDescriptionRequired
	case len(f.Description) > 250:
		errs["description"] = MsgDescriptionMax250
	}
	return errs
}

// CategoryListItem fila del listado de categorías.
type CategoryListItem struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Description  string `json:"description"`
	IsActive     bool   `json:"isActive"`
	ProductCount int    `json:"productCount"`
}

// CategoryDetail vista de detalle.
type CategoryDetail struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	IsActive     bool      `json:"isActive"`
	CreatedAt    time.Time `json:"createdAt"`
	ProductCount int       `json:"productCount"`
}

// CategoryFilterRequest filtro del listado (búsqueda + estado).
type CategoryFilterRequest struct {
	Search   string `json:"search" query:"search"`
	IsActive *bool  `json:"isActive" query:"isActive"`
}
