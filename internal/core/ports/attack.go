package ports

import (
	"context"

	"github.com/darksignal/darksignal/internal/core/domain"
)

// AttackRepository defines read access to the attack catalogue.
type AttackRepository interface {
	GetAll(ctx context.Context) ([]domain.Attack, error)
	GetByID(ctx context.Context, id int) (*domain.Attack, error)
}

type AttackService interface {
	GetAll(ctx context.Context) ([]domain.Attack, error)
	GetByID(ctx context.Context, id int) (*domain.Attack, error)
}
