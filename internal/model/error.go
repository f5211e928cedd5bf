package model

// ErrorResponse represents a standardised error response.
type ErrorResponse struct {
	Error         string `json:"error"`
	Message       string `json:"message"`
	CorrelationID string `json:"correlationId,omitempty"`
}

// Standard error codes for API responses
const (
	ErrCodeInvalidJSON     = "INVALID_JSON"
	ErrCodeMissingField    = "MISSING_FIELD"
	ErrCodeProductNotFound = "PRODUCT_NOT_FOUND"
	ErrCodeLineNotFound    = "LINE_NOT_FOUND"
	ErrCodeInvalidQuantity = "INVALID_QUANTITY"
	ErrCodeInvalidOption   = "INVALID_OPTION"
	ErrCodePartnerNotFound = "PARTNER_NOT_FOUND"
	ErrCodeEmptyCart       = "EMPTY_CART"
	ErrCodeUnauthorised    = "UNAUTHORIZED"
	ErrCodeForbidden       = "FORBIDDEN"
	ErrCodeInternalError   = "INTERNAL_ERROR"
)

// Domain errors for business logic
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
	ErrProductNotFound = NewDomainError(ErrCodeProductNotFound, "Product not found in catalogue")
	ErrLineNotFound    = NewDomainError(ErrCodeLineNotFound, "Cart line not found")
	ErrInvalidQuantity = NewDomainError(ErrCodeInvalidQuantity, "Quantity must be greater than zero")
	ErrInvalidOption   = NewDomainError(ErrCodeInvalidOption, "Selected colour or size is not offered for this product")
	ErrPartnerNotFound = NewDomainError(ErrCodePartnerNotFound, "Unknown delivery partner")
	ErrEmptyCart       = NewDomainError(ErrCodeEmptyCart, "Cart contains no items")
)
