package repository

import (
	"context"

	"github.com/carepoint-dev/carepoint-api/internal/domain/entity"
)

// MedicineRepository defines the persistence boundary for the catalog.
// List with a non-empty keyword performs a case-insensitive name match.
type MedicineRepository interface {
	Create(ctx context.Context, m *entity.Medicine) error
	GetByID(ctx context.Context, id string) (*entity.Medicine, error)
	List(ctx context.Context, keyword string) ([]entity.Medicine, error)
	Update(ctx context.Context, m *entity.Medicine) error
	Delete(ctx context.Context, id string) error

	AddReview(ctx context.Context, r *entity.Review) error
	ListReviews(ctx context.Context, medicineID string) ([]entity.Review, error)
	UpdateAggregates(ctx context.Context, medicineID string, rating float64, numReviews int) error
}
