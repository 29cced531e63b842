package service

import (
	"context"

	"stock-ledger/internal/model"

	"github.com/google/uuid"
)

// ProductService defines operations for product management.
type ProductService interface {
	// Create validates and persists a new product.
	Create(ctx context.Context, req *model.ProductCreate) (*model.Product, error)

	// GetByID retrieves a single product by ID.
	GetByID(ctx context.Context, id uuid.UUID) (*model.Product, error)

	// GetAll retrieves products in insertion order with pagination.
	GetAll(ctx context.Context, skip, limit int) ([]model.Product, error)

	// Update applies a partial update to an existing product.
	Update(ctx context.Context, id uuid.UUID, req *model.ProductUpdate) (*model.Product, error)

	// Delete removes a product permanently.
	Delete(ctx context.Context, id uuid.UUID) error
}

// TransactionService defines operations for stock-adjusting transactions.
type TransactionService interface {
	// Apply validates a stock delta against a product and commits the
	// quantity change together with the transaction record.
	Apply(ctx context.Context, req *model.TransactionCreate) (*model.Transaction, error)

	// GetByID retrieves a single transaction by ID.
	GetByID(ctx context.Context, id uuid.UUID) (*model.Transaction, error)

	// GetAll retrieves transactions in insertion order with pagination.
	GetAll(ctx context.Context, skip, limit int) ([]model.Transaction, error)
}
