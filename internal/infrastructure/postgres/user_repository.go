package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/carepoint-dev/carepoint-api/internal/domain/entity"
	"github.com/carepoint-dev/carepoint-api/internal/domain/repository"
)

type UserRepository struct {
	pool *pgxpool.Pool
}

func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

const userColumns = `id, name, email, password_hash, phone, role, address, profile_picture, medical_history, created_at, updated_at`

func (r *UserRepository) Create(ctx context.Context, u *entity.User) error {
	address, err := marshalNullable(u.Address)
	if err != nil {
		return err
	}
	history, err := marshalNullable(u.MedicalHistory)
	if err != nil {
		return err
	}
	row := r.pool.QueryRow(ctx, `
		INSERT INTO users (name, email, password_hash, phone, role, address, profile_picture, medical_history)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at, updated_at
	`, u.Name, u.Email, u.PasswordHash, u.Phone, u.Role, address, u.ProfilePicture, history)

	if err := row.Scan(&u.ID, &u.CreatedAt, &u.UpdatedAt); err != nil {
		if isUniqueViolation(err) {
			return repository.ErrDuplicate
		}
		return err
	}
	return nil
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (*entity.User, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
	return scanUser(row)
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE email = $1`, email)
	return scanUser(row)
}

func (r *UserRepository) List(ctx context.Context) ([]entity.User, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+userColumns+` FROM users ORDER BY created_at`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []entity.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, *u)
	}
	return users, rows.Err()
}

func (r *UserRepository) Update(ctx context.Context, u *entity.User) error {
	address, err := marshalNullable(u.Address)
	if err != nil {
		return err
	}
	history, err := marshalNullable(u.MedicalHistory)
	if err != nil {
		return err
	}
	u.UpdatedAt = time.Now()

	res, err := r.pool.Exec(ctx, `
		UPDATE users
		SET name = $1, email = $2, password_hash = $3, phone = $4, role = $5,
		    address = $6, profile_picture = $7, medical_history = $8, updated_at = $9
		WHERE id = $10
	`, u.Name, u.Email, u.PasswordHash, u.Phone, u.Role, address, u.ProfilePicture, history, u.UpdatedAt, u.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return repository.ErrDuplicate
		}
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *UserRepository) Delete(ctx context.Context, id string) error {
	res, err := r.pool.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func scanUser(row pgx.Row) (*entity.User, error) {
	u := &entity.User{}
	var address, history []byte
	if err := row.Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.Phone, &u.Role,
		&address, &u.ProfilePicture, &history, &u.CreatedAt, &u.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	if len(address) > 0 {
		if err := json.Unmarshal(address, &u.Address); err != nil {
			return nil, err
		}
	}
	if len(history) > 0 {
		if err := json.Unmarshal(history, &u.MedicalHistory); err != nil {
			return nil, err
		}
	}
	return u, nil
}

// marshalNullable keeps empty optional fields as SQL NULL instead of
// JSON null literals.
func marshalNullable(v any) ([]byte, error) {
	switch x := v.(type) {
	case *entity.Address:
		if x == nil {
			return nil, nil
		}
	case []entity.MedicalRecord:
		if len(x) == 0 {
			return nil, nil
		}
	}
	return json.Marshal(v)
}

var _ repository.UserRepository = (*UserRepository)(nil)
