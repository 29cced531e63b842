package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"stock-ledger/internal/model"
	"stock-ledger/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const (
	defaultPageLimit = 100
	maxPageLimit     = 1000
)

// productService implements ProductService.
type productService struct {
	productRepo repository.ProductRepository
	logger      zerolog.Logger
}

// NewProductService creates a new product service.
func NewProductService(productRepo repository.ProductRepository, logger zerolog.Logger) ProductService {
	return &productService{
		productRepo: productRepo,
		logger:      logger.With().Str("service", "product").Logger(),
	}
}

// Create validates and persists a new product. A price of zero or below is
// rejected and nothing is stored.
func (s *productService) Create(ctx context.Context, req *model.ProductCreate) (*model.Product, error) {
	if req == nil {
		return nil, fmt.Errorf("product request is nil")
	}

	if req.Name == "" {
		return nil, fmt.Errorf("product name is required")
	}

	if req.Price <= 0 {
		s.logger.Warn().
			Str("name", req.Name).
			Float64("price", req.Price).
			Msg("rejecting non-positive price")
		return nil, model.ErrInvalidPrice
	}

	now := time.Now()
	product := &model.Product{
		ID:          uuid.New(),
		Name:        req.Name,
		Price:       req.Price,
		Quantity:    req.Quantity,
		Tax:         req.Tax,
		Description: req.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.productRepo.Create(ctx, product); err != nil {
		s.logger.Error().Err(err).Str("name", req.Name).Msg("failed to create product")
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	s.logger.Info().
		Str("product_id", product.ID.String()).
		Str("name", product.Name).
		Msg("product created")

	return product, nil
}

// GetByID retrieves a single product by ID.
func (s *productService) GetByID(ctx context.Context, id uuid.UUID) (*model.Product, error) {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Str("product_id", id.String()).Msg("failed to get product")
		return nil, fmt.Errorf("failed to get product: %w", err)
	}

	if product == nil {
		s.logger.Debug().Str("product_id", id.String()).Msg("product not found")
		return nil, model.ErrProductNotFound
	}

	return product, nil
}

// GetAll retrieves products in insertion order with pagination.
func (s *productService) GetAll(ctx context.Context, skip, limit int) ([]model.Product, error) {
	skip, limit = normalizePage(skip, limit)

	products, err := s.productRepo.GetAll(ctx, limit, skip)
	if err != nil {
		s.logger.Error().Err(err).
			Int("skip", skip).
			Int("limit", limit).
			Msg("failed to get products")
		return nil, fmt.Errorf("failed to get products: %w", err)
	}

	s.logger.Debug().
		Int("count", len(products)).
		Int("skip", skip).
		Int("limit", limit).
		Msg("retrieved products")

	return products, nil
}

// Update applies a partial update to an existing product. Only supplied
// fields replace stored values. A supplied price of exactly zero is rejected;
// this path does not reject negative prices the way Create does. See
// DESIGN.md for the asymmetry.
func (s *productService) Update(ctx context.Context, id uuid.UUID, req *model.ProductUpdate) (*model.Product, error) {
	if req == nil {
		return nil, fmt.Errorf("product update request is nil")
	}

	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Str("product_id", id.String()).Msg("failed to get product for update")
		return nil, fmt.Errorf("failed to get product: %w", err)
	}

	if product == nil {
		s.logger.Debug().Str("product_id", id.String()).Msg("product not found for update")
		return nil, model.ErrProductNotFound
	}

	if req.Price != nil && *req.Price == 0 {
		s.logger.Warn().Str("product_id", id.String()).Msg("rejecting zero price on update")
		return nil, model.ErrInvalidPrice
	}

	if req.Name != nil {
		product.Name = *req.Name
	}
	if req.Price != nil {
		product.Price = *req.Price
	}
	if req.Quantity != nil {
		product.Quantity = *req.Quantity
	}
	if req.Tax.Set {
		product.Tax = req.Tax.Ptr()
	}
	if req.Description.Set {
		product.Description = req.Description.Ptr()
	}
	product.UpdatedAt = time.Now()

	if err := s.productRepo.Update(ctx, product); err != nil {
		s.logger.Error().Err(err).Str("product_id", id.String()).Msg("failed to update product")
		return nil, fmt.Errorf("failed to update product: %w", err)
	}

	s.logger.Info().Str("product_id", id.String()).Msg("product updated")

	return product, nil
}

// Delete removes a product permanently. A product still referenced by
// transactions is rejected.
func (s *productService) Delete(ctx context.Context, id uuid.UUID) error {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Str("product_id", id.String()).Msg("failed to get product for delete")
		return fmt.Errorf("failed to get product: %w", err)
	}

	if product == nil {
		s.logger.Debug().Str("product_id", id.String()).Msg("product not found for delete")
		return model.ErrProductNotFound
	}

	if err := s.productRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, model.ErrProductHasTransactions) {
			return err
		}
		s.logger.Error().Err(err).Str("product_id", id.String()).Msg("failed to delete product")
		return fmt.Errorf("failed to delete product: %w", err)
	}

	s.logger.Info().Str("product_id", id.String()).Msg("product deleted")

	return nil
}

// normalizePage clamps pagination parameters to sane bounds.
func normalizePage(skip, limit int) (int, int) {
	if skip < 0 {
		skip = 0
	}
	if limit <= 0 {
		limit = defaultPageLimit
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}
	return skip, limit
}
