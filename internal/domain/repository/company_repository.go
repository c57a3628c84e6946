package repository

import "github.com/EzequielRindello/StockCore/internal/domain/entity"

// CompanyRepository puerto de persistencia para la empresa (fila única).
type CompanyRepository interface {
	Create(company *entity.Company) error
	// Get devuelve la empresa sembrada, o (nil, nil) si aún no existe.
	Get() (*entity.Company, error)
}
