package repository

import (
	"context"
	"errors"
	"fmt"

	"stock-ledger/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// transactionRepository implements the TransactionRepository interface using PostgreSQL.
type transactionRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewTransactionRepository creates a new PostgreSQL-backed transaction repository.
func NewTransactionRepository(pool *pgxpool.Pool, logger zerolog.Logger) TransactionRepository {
	return &transactionRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "transaction").Logger(),
	}
}

// BeginTx starts a new database transaction.
func (r *transactionRepository) BeginTx(ctx context.Context) (pgx.Tx, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to begin transaction")
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	return tx, nil
}

// Create inserts a new transaction row within the provided database transaction.
func (r *transactionRepository) Create(ctx context.Context, tx pgx.Tx, transaction *model.Transaction) error {
	query := `
		INSERT INTO transactions (id, product_id, quantity, created_at)
		VALUES ($1, $2, $3, $4)
	`

	_, err := tx.Exec(ctx, query,
		transaction.ID,
		transaction.ProductID,
		transaction.Quantity,
		transaction.CreatedAt,
	)
	if err != nil {
		r.logger.Error().
			Err(err).
			Str("transaction_id", transaction.ID.String()).
			Str("product_id", transaction.ProductID.String()).
			Msg("failed to insert transaction")
		return fmt.Errorf("failed to insert transaction: %w", err)
	}

	r.logger.Debug().
		Str("transaction_id", transaction.ID.String()).
		Msg("transaction created")

	return nil
}

// GetByID retrieves a single transaction by its ID.
func (r *transactionRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Transaction, error) {
	query := `
		SELECT id, product_id, quantity, created_at
		FROM transactions
		WHERE id = $1
	`

	var t model.Transaction
	err := r.pool.QueryRow(ctx, query, id).Scan(&t.ID, &t.ProductID, &t.Quantity, &t.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.Debug().Str("transaction_id", id.String()).Msg("transaction not found")
			return nil, nil
		}
		r.logger.Error().Err(err).Str("transaction_id", id.String()).Msg("failed to query transaction")
		return nil, fmt.Errorf("failed to query transaction: %w", err)
	}

	return &t, nil
}

// GetAll retrieves transactions in insertion order with pagination support.
func (r *transactionRepository) GetAll(ctx context.Context, limit, offset int) ([]model.Transaction, error) {
	query := `
		SELECT id, product_id, quantity, created_at
		FROM transactions
		ORDER BY created_at, id
		LIMIT $1 OFFSET $2
	`

	rows, err := r.pool.Query(ctx, query, limit, offset)
	if err != nil {
		r.logger.Error().Err(err).
			Int("limit", limit).
			Int("offset", offset).
			Msg("failed to query transactions")
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer rows.Close()

	var transactions []model.Transaction
	for rows.Next() {
		var t model.Transaction
		if err := rows.Scan(&t.ID, &t.ProductID, &t.Quantity, &t.CreatedAt); err != nil {
			r.logger.Error().Err(err).Msg("failed to scan transaction row")
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}
		transactions = append(transactions, t)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating transaction rows")
		return nil, fmt.Errorf("error iterating transactions: %w", err)
	}

	return transactions, nil
}
