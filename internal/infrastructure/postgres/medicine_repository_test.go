package postgres

import (
	"context"
	"os"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/carepoint-dev/carepoint-api/internal/domain/entity"
)

// Integration tests run against a migrated database named by
// TEST_DATABASE_URL and are skipped otherwise.

func testPool(t *testing.T) *pgxpool.Pool {
	t.Helper()
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}
	pool, err := pgxpool.New(context.Background(), dsn)
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	t.Cleanup(pool.Close)
	return pool
}

func TestMedicineRowsSurviveCreatorDeletion(t *testing.T) {
	pool := testPool(t)
	ctx := context.Background()
	medRepo := NewMedicineRepository(pool)
	cartRepo := NewCartRepository(pool)

	var creatorID, buyerID string
	if err := pool.QueryRow(ctx, `
		INSERT INTO users (name, email, password_hash, role)
		VALUES ('Creator', 'creator-it@example.com', 'x', 'admin')
		RETURNING id
	`).Scan(&creatorID); err != nil {
		t.Fatalf("insert creator: %v", err)
	}
	if err := pool.QueryRow(ctx, `
		INSERT INTO users (name, email, password_hash, role)
		VALUES ('Buyer', 'buyer-it@example.com', 'x', 'patient')
		RETURNING id
	`).Scan(&buyerID); err != nil {
		t.Fatalf("insert buyer: %v", err)
	}
	t.Cleanup(func() {
		_, _ = pool.Exec(ctx, `DELETE FROM users WHERE email IN ('creator-it@example.com', 'buyer-it@example.com')`)
	})

	m := &entity.Medicine{Name: "Orphan Check 10mg", Description: "d", Price: 1, CreatedBy: creatorID}
	if err := medRepo.Create(ctx, m); err != nil {
		t.Fatalf("create medicine: %v", err)
	}
	t.Cleanup(func() {
		_, _ = pool.Exec(ctx, `DELETE FROM medicines WHERE id = $1`, m.ID)
	})
	if _, err := pool.Exec(ctx, `
		INSERT INTO cart_items (user_id, medicine_id, quantity) VALUES ($1, $2, 1)
	`, buyerID, m.ID); err != nil {
		t.Fatalf("insert cart item: %v", err)
	}

	// Deleting the creator nulls medicines.created_by via the FK.
	if _, err := pool.Exec(ctx, `DELETE FROM users WHERE id = $1`, creatorID); err != nil {
		t.Fatalf("delete creator: %v", err)
	}

	got, err := medRepo.GetByID(ctx, m.ID)
	if err != nil {
		t.Fatalf("GetByID after creator deletion: %v", err)
	}
	if got.CreatedBy != "" {
		t.Fatalf("CreatedBy = %q, want empty", got.CreatedBy)
	}

	listed, err := medRepo.List(ctx, "Orphan Check")
	if err != nil {
		t.Fatalf("List after creator deletion: %v", err)
	}
	if len(listed) != 1 {
		t.Fatalf("List returned %d rows, want 1", len(listed))
	}

	items, err := cartRepo.ListByUser(ctx, buyerID)
	if err != nil {
		t.Fatalf("ListByUser after creator deletion: %v", err)
	}
	if len(items) != 1 || items[0].Medicine == nil || items[0].Medicine.CreatedBy != "" {
		t.Fatalf("unexpected cart items: %+v", items)
	}
}
