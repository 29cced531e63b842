package model

// ErrorResponse represents a standardised error response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// Standard error codes for API responses
const (
	ErrCodeInvalidJSON            = "INVALID_JSON"
	ErrCodeProductNotFound        = "PRODUCT_NOT_FOUND"
	ErrCodeTransactionNotFound    = "TRANSACTION_NOT_FOUND"
	ErrCodeInvalidPrice           = "INVALID_PRICE"
	ErrCodeZeroQuantity           = "ZERO_QUANTITY"
	ErrCodeInsufficientStock      = "INSUFFICIENT_STOCK"
	ErrCodeProductHasTransactions = "PRODUCT_HAS_TRANSACTIONS"
	ErrCodeInternalError          = "INTERNAL_ERROR"
)

// DomainError is a business-rule failure that maps to a client-facing status.
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// Common domain errors
var (
	ErrProductNotFound        = NewDomainError(ErrCodeProductNotFound, "Product not found")
	ErrTransactionNotFound    = NewDomainError(ErrCodeTransactionNotFound, "Transaction not found")
	ErrInvalidPrice           = NewDomainError(ErrCodeInvalidPrice, "Can't sell it for free")
	ErrZeroQuantity           = NewDomainError(ErrCodeZeroQuantity, "Need to add a quantity different than zero")
	ErrInsufficientStock      = NewDomainError(ErrCodeInsufficientStock, "Not enough products in inventory")
	ErrProductHasTransactions = NewDomainError(ErrCodeProductHasTransactions, "Product has recorded transactions and cannot be deleted")
)
