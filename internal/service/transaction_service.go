package service

import (
	"context"
	"fmt"
	"time"

	"stock-ledger/internal/model"
	"stock-ledger/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// transactionService implements TransactionService.
type transactionService struct {
	transactionRepo repository.TransactionRepository
	productRepo     repository.ProductRepository
	logger          zerolog.Logger
}

// NewTransactionService creates a new transaction service.
func NewTransactionService(
	transactionRepo repository.TransactionRepository,
	productRepo repository.ProductRepository,
	logger zerolog.Logger,
) TransactionService {
	return &transactionService{
		transactionRepo: transactionRepo,
		productRepo:     productRepo,
		logger:          logger.With().Str("service", "transaction").Logger(),
	}
}

// Apply validates a stock delta against a product and commits the quantity
// change together with the transaction record. Both writes happen inside one
// database transaction with the product row locked, so concurrent applies
// against the same product serialize and either both writes land or neither.
func (s *transactionService) Apply(ctx context.Context, req *model.TransactionCreate) (*model.Transaction, error) {
	if req == nil {
		return nil, fmt.Errorf("transaction request is nil")
	}

	tx, err := s.transactionRepo.BeginTx(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to begin transaction")
		return nil, fmt.Errorf("failed to apply transaction: %w", err)
	}

	// Release the row lock on every failure path.
	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(ctx); rbErr != nil {
				s.logger.Error().Err(rbErr).Msg("failed to rollback transaction")
			}
		}
	}()

	product, err := s.productRepo.GetByIDForUpdate(ctx, tx, req.ProductID)
	if err != nil {
		s.logger.Error().Err(err).Str("product_id", req.ProductID.String()).Msg("failed to lock product")
		return nil, fmt.Errorf("failed to apply transaction: %w", err)
	}

	if product == nil {
		s.logger.Debug().Str("product_id", req.ProductID.String()).Msg("product not found")
		err = model.ErrProductNotFound
		return nil, err
	}

	if req.Quantity == 0 {
		s.logger.Warn().Str("product_id", req.ProductID.String()).Msg("rejecting zero stock delta")
		err = model.ErrZeroQuantity
		return nil, err
	}

	newQuantity := product.Quantity + req.Quantity
	if newQuantity < 0 {
		s.logger.Warn().
			Str("product_id", req.ProductID.String()).
			Int("quantity", product.Quantity).
			Int("delta", req.Quantity).
			Msg("rejecting stock delta that would go negative")
		err = model.ErrInsufficientStock
		return nil, err
	}

	if err = s.productRepo.UpdateQuantity(ctx, tx, product.ID, newQuantity); err != nil {
		s.logger.Error().Err(err).Str("product_id", product.ID.String()).Msg("failed to update stock")
		return nil, fmt.Errorf("failed to apply transaction: %w", err)
	}

	transaction := &model.Transaction{
		ID:        uuid.New(),
		ProductID: product.ID,
		Quantity:  req.Quantity,
		CreatedAt: time.Now(),
	}

	if err = s.transactionRepo.Create(ctx, tx, transaction); err != nil {
		s.logger.Error().
			Err(err).
			Str("transaction_id", transaction.ID.String()).
			Msg("failed to record transaction")
		return nil, fmt.Errorf("failed to apply transaction: %w", err)
	}

	if err = tx.Commit(ctx); err != nil {
		s.logger.Error().Err(err).Str("transaction_id", transaction.ID.String()).Msg("failed to commit transaction")
		return nil, fmt.Errorf("failed to apply transaction: %w", err)
	}

	s.logger.Info().
		Str("transaction_id", transaction.ID.String()).
		Str("product_id", product.ID.String()).
		Int("delta", req.Quantity).
		Int("new_quantity", newQuantity).
		Msg("stock transaction applied")

	return transaction, nil
}

// GetByID retrieves a single transaction by ID.
func (s *transactionService) GetByID(ctx context.Context, id uuid.UUID) (*model.Transaction, error) {
	transaction, err := s.transactionRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Str("transaction_id", id.String()).Msg("failed to get transaction")
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}

	if transaction == nil {
		s.logger.Debug().Str("transaction_id", id.String()).Msg("transaction not found")
		return nil, model.ErrTransactionNotFound
	}

	return transaction, nil
}

// GetAll retrieves transactions in insertion order with pagination.
func (s *transactionService) GetAll(ctx context.Context, skip, limit int) ([]model.Transaction, error) {
	skip, limit = normalizePage(skip, limit)

	transactions, err := s.transactionRepo.GetAll(ctx, limit, skip)
	if err != nil {
		s.logger.Error().Err(err).
			Int("skip", skip).
			Int("limit", limit).
			Msg("failed to get transactions")
		return nil, fmt.Errorf("failed to get transactions: %w", err)
	}

	s.logger.Debug().
		Int("count", len(transactions)).
		Int("skip", skip).
		Int("limit", limit).
		Msg("retrieved transactions")

	return transactions, nil
}
