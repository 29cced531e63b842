package main

import (
	"encoding/json"
	"log"
	"os"
	"path/filepath"

	"stock-ledger/internal/model"
)

func floatPtr(f float64) *float64 { return &f }

func strPtr(s string) *string { return &s }

// Writes a sample seed catalogue for local development.
func main() {
	dataDir := "data"

	if err := os.MkdirAll(dataDir, 0755); err != nil {
		log.Fatalf("Failed to create directory: %v", err)
	}

	catalogue := []model.ProductCreate{
		{
			Name:        "Bananas",
			Price:       10.0,
			Quantity:    10000,
			Description: strPtr("A product loved by minions"),
		},
		{
			Name:        "RTX 3090",
			Price:       1000.0,
			Quantity:    1,
			Tax:         floatPtr(50.0),
			Description: strPtr("A product loved by gamers"),
		},
		{
			Name:        "Bike wheel",
			Price:       100.0,
			Quantity:    555,
			Tax:         floatPtr(25.0),
			Description: strPtr("A product loved by triathletes"),
		},
	}

	path := filepath.Join(dataDir, "products.json")
	file, err := os.Create(path)
	if err != nil {
		log.Fatalf("Failed to create %s: %v", path, err)
	}
	defer file.Close()

	enc := json.NewEncoder(file)
	enc.SetIndent("", "  ")
	if err := enc.Encode(catalogue); err != nil {
		log.Fatalf("Failed to write catalogue: %v", err)
	}

	log.Printf("Wrote %d products to %s", len(catalogue), path)
}
