package model

import (
	"time"

	"github.com/google/uuid"
)

// Product represents a sellable inventory item with a stock quantity.
type Product struct {
	ID          uuid.UUID `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	Price       float64   `json:"price" db:"price"`
	Quantity    int       `json:"quantity" db:"quantity"`
	Tax         *float64  `json:"tax,omitempty" db:"tax"`
	Description *string   `json:"description,omitempty" db:"description"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time `json:"updatedAt" db:"updated_at"`
}

// ProductCreate represents the request payload for creating a product.
// Quantity defaults to zero when omitted.
type ProductCreate struct {
	Name        string   `json:"name"`
	Price       float64  `json:"price"`
	Quantity    int      `json:"quantity"`
	Tax         *float64 `json:"tax,omitempty"`
	Description *string  `json:"description,omitempty"`
}

// ProductUpdate represents a partial update. A nil pointer field was not
// supplied and leaves the stored value untouched. The nullable fields use
// Optional so that an explicit null clears the stored value instead of being
// mistaken for an omitted field.
type ProductUpdate struct {
	Name        *string           `json:"name,omitempty"`
	Price       *float64          `json:"price,omitempty"`
	Quantity    *int              `json:"quantity,omitempty"`
	Tax         Optional[float64] `json:"tax"`
	Description Optional[string]  `json:"description"`
}
