package seed

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileLoader_Load(t *testing.T) {
	ctx := context.Background()
	loader := NewFileLoader(zerolog.Nop())

	t.Run("Loads catalogue from disk", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "products.json")
		content := `[
			{"name": "Bananas", "price": 10.0, "quantity": 10000},
			{"name": "Bike wheel", "price": 100.0, "quantity": 555, "tax": 25.0}
		]`
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))

		entries, err := loader.Load(ctx, path)
		require.NoError(t, err)
		require.Len(t, entries, 2)
		assert.Equal(t, "Bananas", entries[0].Name)
		assert.Equal(t, "Bike wheel", entries[1].Name)
	})

	t.Run("Missing file", func(t *testing.T) {
		_, err := loader.Load(ctx, filepath.Join(t.TempDir(), "missing.json"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to open seed catalogue")
	})

	t.Run("Malformed catalogue", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "broken.json")
		require.NoError(t, os.WriteFile(path, []byte("{oops"), 0644))

		_, err := loader.Load(ctx, path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid seed catalogue")
	})
}
