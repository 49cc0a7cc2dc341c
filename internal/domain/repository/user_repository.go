package repository

import (
	"context"

	"github.com/carepoint-dev/carepoint-api/internal/domain/entity"
)

// UserRepository defines the persistence boundary for user records.
// Email uniqueness is enforced by the store; Create returns a duplicate
// error when the normalized email already exists.
type UserRepository interface {
	Create(ctx context.Context, u *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	List(ctx context.Context) ([]entity.User, error)
	Update(ctx context.Context, u *entity.User) error
	Delete(ctx context.Context, id string) error
}
