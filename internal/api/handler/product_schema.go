package handler

import "time"

// Request types carry the field rules; descriptions may be empty, prices must
// be strictly positive. Wire format is camelCase.

type createProductRequest struct {
	Name        string  `json:"name"        validate:"required,max=200"`
	Description string  `json:"description" validate:"max=1000"`
	Price       float64 `json:"price"       validate:"gt=0"`
}

type updateProductRequest struct {
	ID          int     `json:"id"          validate:"required"`
	Name        string  `json:"name"        validate:"required,max=200"`
	Description string  `json:"description" validate:"max=1000"`
	Price       float64 `json:"price"       validate:"gt=0"`
}

// productResponse is the output shape shared by the list and single-item
// queries. UpdatedAt is null until the product's first update.
type productResponse struct {
	ID          int        `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Price       float64    `json:"price"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   *time.Time `json:"updatedAt"`
}
