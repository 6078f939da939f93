package service

import (
	"context"

	"github.com/darksignal/darksignal/internal/core/domain"
	"github.com/darksignal/darksignal/internal/core/ports"
)

// AttackService serves the attack catalogue.
type AttackService struct {
	repo ports.AttackRepository
}

func NewAttackService(repo ports.AttackRepository) *AttackService {
	return &AttackService{repo: repo}
}

func (s *AttackService) GetAll(ctx context.Context) ([]domain.Attack, error) {
	return s.repo.GetAll(ctx)
}

func (s *AttackService) GetByID(ctx context.Context, id int) (*domain.Attack, error) {
	if id <= 0 {
		return nil, domain.ErrAttackNotFound
	}
	return s.repo.GetByID(ctx, id)
}
