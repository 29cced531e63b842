package integration

import (
	"context"
	"testing"
	"time"

	"stock-ledger/internal/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

// TestDB represents a test database instance.
type TestDB struct {
	Container *postgres.PostgresContainer
	Pool      *pgxpool.Pool
	ConnStr   string
}

// SetupTestDB creates a PostgreSQL test container and connection pool.
func SetupTestDB(t *testing.T) *TestDB {
	t.Helper()

	ctx := context.Background()

	// Create PostgreSQL container
	postgresContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second)),
	)
	if err != nil {
		t.Fatalf("failed to start postgres container: %v", err)
	}

	// Get connection string
	connStr, err := postgresContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		t.Fatalf("failed to get connection string: %v", err)
	}

	// Create connection pool
	poolConfig, err := pgxpool.ParseConfig(connStr)
	if err != nil {
		t.Fatalf("failed to parse connection string: %v", err)
	}
	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		t.Fatalf("failed to create connection pool: %v", err)
	}

	// Verify connection
	if err := pool.Ping(ctx); err != nil {
		t.Fatalf("failed to ping database: %v", err)
	}

	// Create schema
	if err := database.Migrate(ctx, pool, zerolog.Nop()); err != nil {
		t.Fatalf("failed to create schema: %v", err)
	}

	t.Cleanup(func() {
		pool.Close()
		if err := postgresContainer.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	return &TestDB{
		Container: postgresContainer,
		Pool:      pool,
		ConnStr:   connStr,
	}
}

// SeedProducts inserts test product data and returns the generated IDs by name.
func SeedProducts(t *testing.T, pool *pgxpool.Pool) map[string]uuid.UUID {
	t.Helper()

	ctx := context.Background()

	products := []struct {
		name     string
		price    float64
		quantity int
	}{
		{"Bananas", 10.00, 10000},
		{"RTX 3090", 1000.00, 1},
		{"Bike wheel", 100.00, 555},
	}

	// Distinct timestamps keep the insertion order stable for listing tests.
	base := time.Now().UTC().Truncate(time.Microsecond)

	ids := make(map[string]uuid.UUID, len(products))
	for i, p := range products {
		id := uuid.New()
		ts := base.Add(time.Duration(i) * time.Millisecond)
		_, err := pool.Exec(ctx,
			"INSERT INTO products (id, name, price, quantity, created_at, updated_at) VALUES ($1, $2, $3, $4, $5, $5)",
			id, p.name, p.price, p.quantity, ts,
		)
		if err != nil {
			t.Fatalf("failed to seed product %s: %v", p.name, err)
		}
		ids[p.name] = id
	}

	return ids
}

// CleanupDB cleans all data from test tables.
func CleanupDB(t *testing.T, pool *pgxpool.Pool) {
	t.Helper()

	ctx := context.Background()

	// Transactions reference products, so they go first.
	for _, table := range []string{"transactions", "products"} {
		_, err := pool.Exec(ctx, "DELETE FROM "+table)
		if err != nil {
			t.Logf("failed to clean table %s: %v", table, err)
		}
	}
}
