package application

import (
	"context"

	"github.com/carepoint-dev/carepoint-api/internal/domain/entity"
	"github.com/carepoint-dev/carepoint-api/internal/domain/repository"
)

// CartService lists a user's cart. Pure pass-through persistence.
type CartService struct {
	Repo repository.CartRepository
}

func NewCartService(repo repository.CartRepository) *CartService {
	return &CartService{Repo: repo}
}

func (s *CartService) ListCart(ctx context.Context, userID string) ([]entity.CartItem, error) {
	return s.Repo.ListByUser(ctx, userID)
}
