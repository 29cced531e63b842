package seed

import (
	"context"
	"errors"
	"strings"
	"testing"

	"stock-ledger/internal/model"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockProductService is a mock implementation of service.ProductService.
type MockProductService struct {
	mock.Mock
}

func (m *MockProductService) Create(ctx context.Context, req *model.ProductCreate) (*model.Product, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Product), args.Error(1)
}

func (m *MockProductService) GetByID(ctx context.Context, id uuid.UUID) (*model.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Product), args.Error(1)
}

func (m *MockProductService) GetAll(ctx context.Context, skip, limit int) ([]model.Product, error) {
	args := m.Called(ctx, skip, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Product), args.Error(1)
}

func (m *MockProductService) Update(ctx context.Context, id uuid.UUID, req *model.ProductUpdate) (*model.Product, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Product), args.Error(1)
}

func (m *MockProductService) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// stubLoader returns a fixed catalogue or error.
type stubLoader struct {
	entries []model.ProductCreate
	err     error
}

func (l *stubLoader) Load(ctx context.Context, key string) ([]model.ProductCreate, error) {
	return l.entries, l.err
}

func TestSeeder_Run(t *testing.T) {
	ctx := context.Background()
	logger := zerolog.Nop()

	catalogue := []model.ProductCreate{
		{Name: "Bananas", Price: 10.0, Quantity: 10000},
		{Name: "Bike wheel", Price: 100.0, Quantity: 555},
	}

	t.Run("Seeds empty catalogue", func(t *testing.T) {
		mockService := new(MockProductService)
		mockService.On("GetAll", ctx, 0, 1).Return([]model.Product{}, nil)
		mockService.On("Create", ctx, mock.AnythingOfType("*model.ProductCreate")).
			Return(&model.Product{ID: uuid.New()}, nil).Times(2)

		seeder := NewSeeder(mockService, &stubLoader{entries: catalogue}, logger)

		err := seeder.Run(ctx, "data/products.json")
		require.NoError(t, err)
		mockService.AssertExpectations(t)
	})

	t.Run("Skips when catalogue already populated", func(t *testing.T) {
		mockService := new(MockProductService)
		mockService.On("GetAll", ctx, 0, 1).Return([]model.Product{{ID: uuid.New()}}, nil)

		seeder := NewSeeder(mockService, &stubLoader{entries: catalogue}, logger)

		err := seeder.Run(ctx, "data/products.json")
		require.NoError(t, err)
		mockService.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Continues past invalid entries", func(t *testing.T) {
		entries := []model.ProductCreate{
			{Name: "Freebie", Price: 0},
			{Name: "Bananas", Price: 10.0, Quantity: 10000},
		}

		mockService := new(MockProductService)
		mockService.On("GetAll", ctx, 0, 1).Return([]model.Product{}, nil)
		mockService.On("Create", ctx, mock.MatchedBy(func(req *model.ProductCreate) bool {
			return req.Name == "Freebie"
		})).Return(nil, model.ErrInvalidPrice)
		mockService.On("Create", ctx, mock.MatchedBy(func(req *model.ProductCreate) bool {
			return req.Name == "Bananas"
		})).Return(&model.Product{ID: uuid.New()}, nil)

		seeder := NewSeeder(mockService, &stubLoader{entries: entries}, logger)

		err := seeder.Run(ctx, "data/products.json")
		require.NoError(t, err)
		mockService.AssertExpectations(t)
	})

	t.Run("Loader error aborts the seed", func(t *testing.T) {
		mockService := new(MockProductService)
		mockService.On("GetAll", ctx, 0, 1).Return([]model.Product{}, nil)

		seeder := NewSeeder(mockService, &stubLoader{err: errors.New("bucket unreachable")}, logger)

		err := seeder.Run(ctx, "seed/products.json")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to load seed catalogue")
		mockService.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Catalogue check error aborts the seed", func(t *testing.T) {
		mockService := new(MockProductService)
		mockService.On("GetAll", ctx, 0, 1).Return(nil, errors.New("database error"))

		seeder := NewSeeder(mockService, &stubLoader{entries: catalogue}, logger)

		err := seeder.Run(ctx, "data/products.json")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to check existing catalogue")
	})
}

func TestDecodeCatalogue(t *testing.T) {
	t.Run("Valid catalogue", func(t *testing.T) {
		input := `[
			{"name": "Bananas", "price": 10.0, "quantity": 10000, "description": "A product loved by minions"},
			{"name": "RTX 3090", "price": 1000.0, "quantity": 1, "tax": 50.0}
		]`

		entries, err := decodeCatalogue(strings.NewReader(input))
		require.NoError(t, err)
		require.Len(t, entries, 2)

		assert.Equal(t, "Bananas", entries[0].Name)
		assert.Equal(t, 10000, entries[0].Quantity)
		require.NotNil(t, entries[1].Tax)
		assert.Equal(t, 50.0, *entries[1].Tax)
	})

	t.Run("Empty array", func(t *testing.T) {
		entries, err := decodeCatalogue(strings.NewReader("[]"))
		require.NoError(t, err)
		assert.Empty(t, entries)
	})

	t.Run("Malformed JSON", func(t *testing.T) {
		_, err := decodeCatalogue(strings.NewReader("{not a catalogue"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to decode seed catalogue")
	})
}
