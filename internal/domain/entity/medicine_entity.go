package entity

import "time"

// Medicine is a catalog item. Rating and NumReviews are aggregates
// recomputed whenever a review is added.
type Medicine struct {
	ID                   string    `json:"id"`
	Name                 string    `json:"name"`
	Description          string    `json:"description"`
	Price                float64   `json:"price"`
	Category             string    `json:"category"`
	Manufacturer         string    `json:"manufacturer"`
	CountInStock         int       `json:"count_in_stock"`
	PrescriptionRequired bool      `json:"prescription_required"`
	Rating               float64   `json:"rating"`
	NumReviews           int       `json:"num_reviews"`
	CreatedBy            string    `json:"created_by"`
	Reviews              []Review  `json:"reviews,omitempty"`
	CreatedAt            time.Time `json:"created_at"`
	UpdatedAt            time.Time `json:"updated_at"`
}

// Review is a single user review of a medicine. One per user per medicine.
type Review struct {
	ID         string    `json:"id"`
	MedicineID string    `json:"-"`
	UserID     string    `json:"user_id"`
	UserName   string    `json:"user_name"`
	Rating     int       `json:"rating"`
	Comment    string    `json:"comment"`
	CreatedAt  time.Time `json:"created_at"`
}
