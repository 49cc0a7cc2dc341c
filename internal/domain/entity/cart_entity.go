package entity

import "time"

// CartItem is a medicine placed in a user's cart, joined with the
// catalog data the storefront needs to render it.
type CartItem struct {
	ID         string    `json:"id"`
	UserID     string    `json:"user_id"`
	MedicineID string    `json:"medicine_id"`
	Quantity   int       `json:"quantity"`
	Medicine   *Medicine `json:"medicine,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}
