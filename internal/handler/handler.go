package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"stock-ledger/internal/model"

	"github.com/rs/zerolog"
)

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		// Headers are already out; nothing left to do for the client.
		return
	}
}

// writeError writes an error response with the given status code and message.
func writeError(w http.ResponseWriter, status int, message string, logger zerolog.Logger) {
	logger.Error().Str("error", message).Int("status", status).Msg("handler error")
	writeJSON(w, status, model.ErrorResponse{Error: message})
}

// writeServiceError maps a service failure to a client-facing status code.
// Domain errors carry their own status; anything else is an internal failure.
func writeServiceError(w http.ResponseWriter, err error, fallback string, logger zerolog.Logger) {
	var domainErr *model.DomainError
	if errors.As(err, &domainErr) {
		writeError(w, statusForDomainError(domainErr), domainErr.Message, logger)
		return
	}

	// Request-shape problems raised as plain errors in the service layer.
	if strings.Contains(err.Error(), "required") || strings.Contains(err.Error(), "is nil") {
		writeError(w, http.StatusBadRequest, err.Error(), logger)
		return
	}

	writeError(w, http.StatusInternalServerError, fallback, logger)
}

// statusForDomainError returns the HTTP status for a domain error code.
func statusForDomainError(err *model.DomainError) int {
	switch err.Code {
	case model.ErrCodeProductNotFound, model.ErrCodeTransactionNotFound:
		return http.StatusNotFound
	case model.ErrCodeInvalidPrice, model.ErrCodeZeroQuantity, model.ErrCodeInsufficientStock:
		return http.StatusBadRequest
	case model.ErrCodeProductHasTransactions:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
