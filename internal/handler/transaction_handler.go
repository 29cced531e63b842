package handler

import (
	"encoding/json"
	"net/http"

	"stock-ledger/internal/model"
	"stock-ledger/internal/service"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// TransactionHandler handles stock-transaction HTTP requests.
type TransactionHandler struct {
	service service.TransactionService
	logger  zerolog.Logger
}

// NewTransactionHandler creates a new transaction handler.
func NewTransactionHandler(service service.TransactionService, logger zerolog.Logger) *TransactionHandler {
	return &TransactionHandler{
		service: service,
		logger:  logger.With().Str("handler", "transaction").Logger(),
	}
}

// Create handles POST /transactions/ requests, applying a stock delta.
func (h *TransactionHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req model.TransactionCreate
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", h.logger)
		return
	}

	transaction, err := h.service.Apply(r.Context(), &req)
	if err != nil {
		writeServiceError(w, err, "failed to apply transaction", h.logger)
		return
	}

	writeJSON(w, http.StatusCreated, transaction)
}

// GetAll handles GET /transactions/ requests with skip/limit pagination.
func (h *TransactionHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	skip, limit, ok := parsePagination(w, r, h.logger)
	if !ok {
		return
	}

	transactions, err := h.service.GetAll(r.Context(), skip, limit)
	if err != nil {
		writeServiceError(w, err, "failed to retrieve transactions", h.logger)
		return
	}

	if transactions == nil {
		transactions = []model.Transaction{}
	}

	writeJSON(w, http.StatusOK, transactions)
}

// GetByID handles GET /transactions/{id} requests.
func (h *TransactionHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	idStr := r.PathValue("id")
	if idStr == "" {
		writeError(w, http.StatusBadRequest, "transaction ID is required", h.logger)
		return
	}

	id, err := uuid.Parse(idStr)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid transaction ID format", h.logger)
		return
	}

	transaction, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		writeServiceError(w, err, "failed to retrieve transaction", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, transaction)
}
