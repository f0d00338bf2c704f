package domain

import "time"

// Product is a catalog entry. CreatedAt is set once at creation; UpdatedAt is
// nil until the first update and refreshed on every subsequent one.
type Product struct {
	ID          int        `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Price       float64    `json:"price"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   *time.Time `json:"updated_at,omitempty"`
}
