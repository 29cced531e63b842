package repository

import (
	"context"

	"stock-ledger/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// ProductRepository defines the interface for product data access operations.
type ProductRepository interface {
	// Create inserts a new product row.
	Create(ctx context.Context, product *model.Product) error

	// GetByID retrieves a single product by its ID. Returns nil when absent.
	GetByID(ctx context.Context, id uuid.UUID) (*model.Product, error)

	// GetAll retrieves products in insertion order with pagination support.
	GetAll(ctx context.Context, limit, offset int) ([]model.Product, error)

	// Update replaces all mutable fields of an existing product row.
	Update(ctx context.Context, product *model.Product) error

	// Delete removes a product row permanently.
	Delete(ctx context.Context, id uuid.UUID) error

	// GetByIDForUpdate retrieves a product inside the given transaction,
	// locking its row until the transaction ends.
	GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*model.Product, error)

	// UpdateQuantity sets the stock quantity of a product within the
	// provided transaction.
	UpdateQuantity(ctx context.Context, tx pgx.Tx, id uuid.UUID, quantity int) error
}

// TransactionRepository defines the interface for stock-transaction data access.
type TransactionRepository interface {
	// BeginTx starts a new database transaction.
	BeginTx(ctx context.Context) (pgx.Tx, error)

	// Create inserts a new transaction row within the provided database transaction.
	Create(ctx context.Context, tx pgx.Tx, transaction *model.Transaction) error

	// GetByID retrieves a single transaction by its ID. Returns nil when absent.
	GetByID(ctx context.Context, id uuid.UUID) (*model.Transaction, error)

	// GetAll retrieves transactions in insertion order with pagination support.
	GetAll(ctx context.Context, limit, offset int) ([]model.Transaction, error)
}
