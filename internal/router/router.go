package router

import (
	"net/http"

	"stock-ledger/internal/handler"
	"stock-ledger/internal/middleware"

	"github.com/rs/zerolog"
)

// New creates a new HTTP router with all routes and middleware configured.
func New(
	productHandler *handler.ProductHandler,
	transactionHandler *handler.TransactionHandler,
	logger zerolog.Logger,
) http.Handler {
	mux := http.NewServeMux()

	// Health check endpoint
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status": "healthy"}`))
	})

	// Product routes
	mux.HandleFunc("GET /products/", productHandler.GetAll)
	mux.HandleFunc("GET /products/{id}", productHandler.GetByID)
	mux.HandleFunc("POST /products/", productHandler.Create)
	mux.HandleFunc("PATCH /products/{id}", productHandler.Update)
	mux.HandleFunc("DELETE /products/{id}", productHandler.Delete)

	// Transaction routes
	mux.HandleFunc("GET /transactions/", transactionHandler.GetAll)
	mux.HandleFunc("GET /transactions/{id}", transactionHandler.GetByID)
	mux.HandleFunc("POST /transactions/", transactionHandler.Create)

	// Apply middleware in order: Recovery -> Logging -> CORS
	var h http.Handler = mux
	h = middleware.CORS(h)
	h = middleware.Logging(logger)(h)
	h = middleware.Recovery(logger)(h)

	return h
}
