package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/carepoint-dev/carepoint-api/internal/domain/entity"
	"github.com/carepoint-dev/carepoint-api/internal/domain/repository"
)

type CartRepository struct {
	pool *pgxpool.Pool
}

func NewCartRepository(pool *pgxpool.Pool) *CartRepository {
	return &CartRepository{pool: pool}
}

// ListByUser returns the user's cart items joined with their catalog data.
func (r *CartRepository) ListByUser(ctx context.Context, userID string) ([]entity.CartItem, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT c.id, c.user_id, c.medicine_id, c.quantity, c.created_at,
		       m.id, m.name, m.description, m.price, m.category, m.manufacturer,
		       m.count_in_stock, m.prescription_required, m.rating, m.num_reviews,
		       COALESCE(m.created_by::text, ''), m.created_at, m.updated_at
		FROM cart_items c
		JOIN medicines m ON m.id = c.medicine_id
		WHERE c.user_id = $1
		ORDER BY c.created_at
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []entity.CartItem
	for rows.Next() {
		var item entity.CartItem
		m := &entity.Medicine{}
		if err := rows.Scan(&item.ID, &item.UserID, &item.MedicineID, &item.Quantity, &item.CreatedAt,
			&m.ID, &m.Name, &m.Description, &m.Price, &m.Category, &m.Manufacturer,
			&m.CountInStock, &m.PrescriptionRequired, &m.Rating, &m.NumReviews,
			&m.CreatedBy, &m.CreatedAt, &m.UpdatedAt); err != nil {
			return nil, err
		}
		item.Medicine = m
		out = append(out, item)
	}
	return out, rows.Err()
}

var _ repository.CartRepository = (*CartRepository)(nil)
