package model

import (
	"time"

	"github.com/google/uuid"
)

// Transaction represents a signed stock adjustment applied to one product.
// A positive quantity restocks, a negative quantity records a sale.
type Transaction struct {
	ID        uuid.UUID `json:"id" db:"id"`
	ProductID uuid.UUID `json:"productId" db:"product_id"`
	Quantity  int       `json:"quantity" db:"quantity"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

// TransactionCreate represents the request payload for applying a stock delta.
type TransactionCreate struct {
	ProductID uuid.UUID `json:"productId"`
	Quantity  int       `json:"quantity"`
}
