package main

import (
	"database/sql"
	"fmt"
	"log"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"github.com/carepoint-dev/carepoint-api/config"
	"github.com/carepoint-dev/carepoint-api/internal/domain/entity"
	"github.com/carepoint-dev/carepoint-api/pkg/helpers"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := sql.Open("pgx", cfg.PostgresDSN())
	if err != nil {
		log.Fatalf("failed to open db: %v", err)
	}
	defer func() { _ = db.Close() }()

	adminEmail := "admin@carepoint.local"
	adminPassword := "admin123"
	hash, err := helpers.HashPassword(adminPassword)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}

	var adminID string
	err = db.QueryRow(`
		INSERT INTO users (name, email, password_hash, phone, role)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (email) DO UPDATE SET role = EXCLUDED.role
		RETURNING id
	`, "CarePoint Admin", adminEmail, hash, "+10000000000", entity.RoleAdmin).Scan(&adminID)
	if err != nil {
		log.Fatalf("failed to seed admin: %v", err)
	}
	fmt.Printf("seeded admin: id=%s email=%s password=%s\n", adminID, adminEmail, adminPassword)

	medicines := []struct {
		name, description, category, manufacturer string
		price                                     float64
		stock                                     int
		prescription                              bool
	}{
		{"Paracetamol 500mg", "Pain and fever relief tablets", "analgesic", "Acme Pharma", 4.99, 200, false},
		{"Amoxicillin 250mg", "Broad-spectrum antibiotic capsules", "antibiotic", "Acme Pharma", 12.50, 80, true},
		{"Cetirizine 10mg", "Antihistamine for allergy relief", "antihistamine", "HealWell Labs", 6.25, 150, false},
		{"Ibuprofen 400mg", "Anti-inflammatory pain relief tablets", "analgesic", "HealWell Labs", 5.75, 120, false},
	}

	for _, m := range medicines {
		var id string
		err := db.QueryRow(`
			INSERT INTO medicines (name, description, price, category, manufacturer, count_in_stock, prescription_required, created_by)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			ON CONFLICT (name, manufacturer) DO NOTHING
			RETURNING id
		`, m.name, m.description, m.price, m.category, m.manufacturer, m.stock, m.prescription, adminID).Scan(&id)
		if err == sql.ErrNoRows {
			continue
		}
		if err != nil {
			log.Fatalf("failed to seed medicine %q: %v", m.name, err)
		}
		fmt.Printf("seeded medicine: id=%s name=%s\n", id, m.name)
	}
}
