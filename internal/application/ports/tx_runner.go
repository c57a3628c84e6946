package ports

import (
	"context"

	"github.com/EzequielRindello/StockCore/internal/domain/repository"
)

// TxRepos repositorios atados a una misma transacción.
type TxRepos struct {
	Categories repository.CategoryRepository
	Products   repository.ProductRepository
	Movements  repository.StockMovementRepository
	Users      repository.UserRepository
}

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Cualquier error de fn provoca rollback.
type TxRunner interface {
	Run(ctx context.Context, fn func(r TxRepos) error) error
}
