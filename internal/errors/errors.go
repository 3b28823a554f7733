package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrNotFound is returned when a record lookup misses.
	ErrNotFound = errors.New("record not found")
	// ErrUserNotFound is returned when no user exists for the given email.
	ErrUserNotFound = errors.New("user not found")
	// ErrInvalidCredential is returned when the password does not match.
	ErrInvalidCredential = errors.New("invalid password")
	// ErrAccountBlocked is returned when the account is not active.
	ErrAccountBlocked = errors.New("account is not active, please contact admin")
	// ErrDuplicateEmail is returned when registering an already used email.
	ErrDuplicateEmail = errors.New("email already registered")
	// ErrNotAuthenticated is returned when no valid session is present.
	ErrNotAuthenticated = errors.New("not authenticated")
	// ErrNotABuyer is returned when a non-buyer tries to place an order.
	ErrNotABuyer = errors.New("only buyers can place orders")
	// ErrEmptyCart is returned when checking out an empty cart.
	ErrEmptyCart = errors.New("cart is empty")
	// ErrForbidden is returned when a caller acts on a record it does not own.
	ErrForbidden = errors.New("operation not allowed")
	// ErrInvalidStatus is returned on a disallowed order status transition.
	ErrInvalidStatus = errors.New("invalid status transition")
	// ErrInvalidAttachment is returned for unsupported checkout attachments.
	ErrInvalidAttachment = errors.New("attachment must be a JPG, PNG, PDF or DOCX file")
	// ErrStorageFailure is returned by store backends on serialization or I/O issues.
	ErrStorageFailure = errors.New("storage failure")
)

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Error: e.Message,
		Code:  e.Code,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors.
func MapErrorToHTTP(err error) *HTTPError {
	switch err {
	case ErrNotFound:
		return NewHTTPError(http.StatusNotFound, err.Error(), "NOT_FOUND")
	case ErrUserNotFound:
		return NewHTTPError(http.StatusNotFound, err.Error(), "USER_NOT_FOUND")
	case ErrInvalidCredential:
		return NewHTTPError(http.StatusUnauthorized, err.Error(), "INVALID_CREDENTIAL")
	case ErrAccountBlocked:
		return NewHTTPError(http.StatusForbidden, err.Error(), "ACCOUNT_BLOCKED")
	case ErrDuplicateEmail:
		return NewHTTPError(http.StatusConflict, err.Error(), "DUPLICATE_EMAIL")
	case ErrNotAuthenticated:
		return NewHTTPError(http.StatusUnauthorized, err.Error(), "NOT_AUTHENTICATED")
	case ErrNotABuyer:
		return NewHTTPError(http.StatusForbidden, err.Error(), "NOT_A_BUYER")
	case ErrEmptyCart:
		return NewHTTPError(http.StatusBadRequest, err.Error(), "EMPTY_CART")
	case ErrForbidden:
		return NewHTTPError(http.StatusForbidden, err.Error(), "FORBIDDEN")
	case ErrInvalidStatus:
		return NewHTTPError(http.StatusBadRequest, err.Error(), "INVALID_STATUS")
	case ErrInvalidAttachment:
		return NewHTTPError(http.StatusBadRequest, err.Error(), "INVALID_ATTACHMENT")
	case ErrStorageFailure:
		return NewHTTPError(http.StatusInternalServerError, err.Error(), "STORAGE_FAILURE")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}
