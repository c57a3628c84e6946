package repository

import "github.com/EzequielRindello/StockCore/internal/domain/entity"

// UserRepository define el puerto de persistencia para User (DIP).
// Los Get devuelven (nil, nil) cuando la fila no existe.
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	GetByEmail(email string) (*entity.User, error)
	// FindByEmailOrUserName busca colisiones de unicidad (comparación exacta,
	// sensible a mayúsculas). excludeID descarta al propio usuario en updates;
	// vacío para creates.
	FindByEmailOrUserName(email, userName, excludeID string) (*entity.User, error)
	// List filtra por substring sobre nombre de usuario y email.
	List(search string) ([]*entity.User, error)
	Update(user *entity.User) error
	UpdatePasswordHash(id, hash string) error
	Delete(id string) error
	Count() (int, error)
	// CountActiveExcept cuenta los usuarios activos distintos del indicado
	// (invariante: debe quedar al menos un usuario activo).
	CountActiveExcept(id string) (int, error)
}
