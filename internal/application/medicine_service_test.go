package application

import (
	"context"
	"errors"
	"testing"

	"github.com/carepoint-dev/carepoint-api/internal/domain/entity"
)

func newTestMedicineService() (*MedicineService, *memUserRepo) {
	users := newMemUserRepo()
	return NewMedicineService(newMemMedicineRepo(), users, testLogger(), nil, ""), users
}

func seedUser(t *testing.T, users *memUserRepo, name, email string) *entity.User {
	t.Helper()
	u := &entity.User{Name: name, Email: email, PasswordHash: "x", Role: entity.RolePatient}
	if err := users.Create(context.Background(), u); err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return u
}

func TestAddReviewRecomputesAggregates(t *testing.T) {
	svc, users := newTestMedicineService()
	u1 := seedUser(t, users, "A", "a@example.com")
	u2 := seedUser(t, users, "B", "b@example.com")

	m, err := svc.Create(context.Background(), "admin-1", MedicineInput{Name: "Paracetamol", Description: "d", Price: 5})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	m, err = svc.AddReview(context.Background(), m.ID, u1.ID, 4, "works")
	if err != nil {
		t.Fatalf("AddReview: %v", err)
	}
	if m.NumReviews != 1 || m.Rating != 4 {
		t.Fatalf("aggregates = %d reviews, rating %v; want 1, 4", m.NumReviews, m.Rating)
	}

	m, err = svc.AddReview(context.Background(), m.ID, u2.ID, 5, "great")
	if err != nil {
		t.Fatalf("AddReview: %v", err)
	}
	if m.NumReviews != 2 || m.Rating != 4.5 {
		t.Fatalf("aggregates = %d reviews, rating %v; want 2, 4.5", m.NumReviews, m.Rating)
	}
	if len(m.Reviews) != 2 {
		t.Fatalf("reviews attached = %d, want 2", len(m.Reviews))
	}
	if m.Reviews[0].UserName != "A" {
		t.Fatalf("review user name = %q, want A", m.Reviews[0].UserName)
	}
}

func TestAddReviewOncePerUser(t *testing.T) {
	svc, users := newTestMedicineService()
	u := seedUser(t, users, "A", "a@example.com")

	m, err := svc.Create(context.Background(), "admin-1", MedicineInput{Name: "Ibuprofen", Price: 6})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if _, err := svc.AddReview(context.Background(), m.ID, u.ID, 3, "ok"); err != nil {
		t.Fatalf("AddReview: %v", err)
	}
	if _, err := svc.AddReview(context.Background(), m.ID, u.ID, 5, "again"); !errors.Is(err, ErrAlreadyReviewed) {
		t.Fatalf("err = %v, want ErrAlreadyReviewed", err)
	}
}

func TestUpdateMedicinePartial(t *testing.T) {
	svc, _ := newTestMedicineService()
	m, err := svc.Create(context.Background(), "admin-1", MedicineInput{
		Name: "Cetirizine", Description: "allergy", Price: 6.25, CountInStock: 10,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	price := 7.0
	m, err = svc.Update(context.Background(), m.ID, UpdateMedicineInput{Price: &price})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if m.Price != 7.0 || m.Name != "Cetirizine" || m.CountInStock != 10 {
		t.Fatalf("partial update clobbered fields: %+v", m)
	}

	zero := 0
	m, err = svc.Update(context.Background(), m.ID, UpdateMedicineInput{CountInStock: &zero})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if m.CountInStock != 0 {
		t.Fatalf("explicit zero stock ignored: %d", m.CountInStock)
	}
}

func TestCreateMedicineDuplicate(t *testing.T) {
	svc, _ := newTestMedicineService()
	in := MedicineInput{Name: "Paracetamol 500mg", Manufacturer: "Acme Pharma", Price: 5}

	if _, err := svc.Create(context.Background(), "admin-1", in); err != nil {
		t.Fatalf("first Create: %v", err)
	}
	if _, err := svc.Create(context.Background(), "admin-1", in); !errors.Is(err, ErrMedicineExists) {
		t.Fatalf("err = %v, want ErrMedicineExists", err)
	}

	// Same name from a different manufacturer is a distinct catalog item.
	in.Manufacturer = "HealWell Labs"
	if _, err := svc.Create(context.Background(), "admin-1", in); err != nil {
		t.Fatalf("Create with different manufacturer: %v", err)
	}
}

func TestGetMissingMedicine(t *testing.T) {
	svc, _ := newTestMedicineService()
	if _, err := svc.Get(context.Background(), "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
	if err := svc.Delete(context.Background(), "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}
