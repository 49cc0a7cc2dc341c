package repository

import (
	"context"

	"github.com/carepoint-dev/carepoint-api/internal/domain/entity"
)

// CartRepository defines the persistence boundary for cart items.
type CartRepository interface {
	ListByUser(ctx context.Context, userID string) ([]entity.CartItem, error)
}
