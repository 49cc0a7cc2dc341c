package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/carepoint-dev/carepoint-api/internal/domain/entity"
	"github.com/carepoint-dev/carepoint-api/internal/domain/repository"
)

type MedicineRepository struct {
	pool *pgxpool.Pool
}

func NewMedicineRepository(pool *pgxpool.Pool) *MedicineRepository {
	return &MedicineRepository{pool: pool}
}

// created_by is nullable (creator deletion sets it NULL), so it is
// coalesced to '' for the plain string field.
const medicineColumns = `id, name, description, price, category, manufacturer, count_in_stock, prescription_required, rating, num_reviews, COALESCE(created_by::text, ''), created_at, updated_at`

func (r *MedicineRepository) Create(ctx context.Context, m *entity.Medicine) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO medicines (name, description, price, category, manufacturer, count_in_stock, prescription_required, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, rating, num_reviews, created_at, updated_at
	`, m.Name, m.Description, m.Price, m.Category, m.Manufacturer, m.CountInStock, m.PrescriptionRequired, m.CreatedBy)
	if err := row.Scan(&m.ID, &m.Rating, &m.NumReviews, &m.CreatedAt, &m.UpdatedAt); err != nil {
		if isUniqueViolation(err) {
			return repository.ErrDuplicate
		}
		return err
	}
	return nil
}

func (r *MedicineRepository) GetByID(ctx context.Context, id string) (*entity.Medicine, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+medicineColumns+` FROM medicines WHERE id = $1`, id)
	m, err := scanMedicine(row)
	if err != nil {
		return nil, err
	}
	reviews, err := r.ListReviews(ctx, m.ID)
	if err != nil {
		return nil, err
	}
	m.Reviews = reviews
	return m, nil
}

func (r *MedicineRepository) List(ctx context.Context, keyword string) ([]entity.Medicine, error) {
	query := `SELECT ` + medicineColumns + ` FROM medicines ORDER BY name`
	args := []any{}
	if keyword != "" {
		query = `SELECT ` + medicineColumns + ` FROM medicines WHERE name ILIKE '%' || $1 || '%' ORDER BY name`
		args = append(args, keyword)
	}
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []entity.Medicine
	for rows.Next() {
		m, err := scanMedicine(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *m)
	}
	return out, rows.Err()
}

func (r *MedicineRepository) Update(ctx context.Context, m *entity.Medicine) error {
	m.UpdatedAt = time.Now()
	res, err := r.pool.Exec(ctx, `
		UPDATE medicines
		SET name = $1, description = $2, price = $3, category = $4, manufacturer = $5,
		    count_in_stock = $6, prescription_required = $7, updated_at = $8
		WHERE id = $9
	`, m.Name, m.Description, m.Price, m.Category, m.Manufacturer, m.CountInStock, m.PrescriptionRequired, m.UpdatedAt, m.ID)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *MedicineRepository) Delete(ctx context.Context, id string) error {
	res, err := r.pool.Exec(ctx, `DELETE FROM medicines WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *MedicineRepository) AddReview(ctx context.Context, rev *entity.Review) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO medicine_reviews (medicine_id, user_id, user_name, rating, comment)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`, rev.MedicineID, rev.UserID, rev.UserName, rev.Rating, rev.Comment)
	if err := row.Scan(&rev.ID, &rev.CreatedAt); err != nil {
		if isUniqueViolation(err) {
			return repository.ErrDuplicate
		}
		return err
	}
	return nil
}

func (r *MedicineRepository) ListReviews(ctx context.Context, medicineID string) ([]entity.Review, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, medicine_id, user_id, user_name, rating, comment, created_at
		FROM medicine_reviews WHERE medicine_id = $1 ORDER BY created_at
	`, medicineID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []entity.Review
	for rows.Next() {
		var rev entity.Review
		if err := rows.Scan(&rev.ID, &rev.MedicineID, &rev.UserID, &rev.UserName, &rev.Rating, &rev.Comment, &rev.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, rev)
	}
	return out, rows.Err()
}

func (r *MedicineRepository) UpdateAggregates(ctx context.Context, medicineID string, rating float64, numReviews int) error {
	res, err := r.pool.Exec(ctx, `
		UPDATE medicines SET rating = $1, num_reviews = $2, updated_at = now() WHERE id = $3
	`, rating, numReviews, medicineID)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func scanMedicine(row pgx.Row) (*entity.Medicine, error) {
	m := &entity.Medicine{}
	if err := row.Scan(&m.ID, &m.Name, &m.Description, &m.Price, &m.Category, &m.Manufacturer,
		&m.CountInStock, &m.PrescriptionRequired, &m.Rating, &m.NumReviews, &m.CreatedBy,
		&m.CreatedAt, &m.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return m, nil
}

var _ repository.MedicineRepository = (*MedicineRepository)(nil)
