package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrDuplicateEmail is returned when an email is already registered.
	ErrDuplicateEmail = errors.New("Email already registered")
	// ErrInvalidCredentials is returned for an unknown email or a wrong password.
	// Both cases share this error so callers cannot tell them apart.
	ErrInvalidCredentials = errors.New("Invalid email or password")
	// ErrUnauthorized is returned when the Authorization header is missing or malformed.
	ErrUnauthorized = errors.New("Unauthorized")
	// ErrInvalidToken is returned when a bearer token fails verification.
	ErrInvalidToken = errors.New("Invalid or expired token")
	// ErrUserNotFound is returned when a user id does not exist.
	ErrUserNotFound = errors.New("User not found")
	// ErrPostNotFound is returned when a post id does not exist.
	ErrPostNotFound = errors.New("Post not found")
	// ErrUnknownAuthor is returned when a post or comment references a missing user.
	ErrUnknownAuthor = errors.New("Author does not exist")
	// ErrUnknownPost is returned when a comment references a missing post.
	ErrUnknownPost = errors.New("Post does not exist")
)

// ValidationError reports missing or malformed request input.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NewValidationError creates a new validation error.
func NewValidationError(message string) *ValidationError {
	return &ValidationError{Message: message}
}

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

// IsInternal reports whether the error is hidden behind the generic 500 response.
func (e *HTTPError) IsInternal() bool {
	return e.StatusCode >= http.StatusInternalServerError
}

// MapErrorToHTTP maps domain errors to HTTP errors. Anything unrecognised is an
// internal error and its message is not exposed.
func MapErrorToHTTP(err error) *HTTPError {
	var validationErr *ValidationError
	switch {
	case errors.As(err, &validationErr):
		return NewHTTPError(http.StatusBadRequest, validationErr.Message, "VALIDATION_ERROR")
	case errors.Is(err, ErrDuplicateEmail):
		return NewHTTPError(http.StatusBadRequest, ErrDuplicateEmail.Error(), "DUPLICATE_EMAIL")
	case errors.Is(err, ErrUnknownAuthor):
		return NewHTTPError(http.StatusBadRequest, ErrUnknownAuthor.Error(), "INVALID_REFERENCE")
	case errors.Is(err, ErrUnknownPost):
		return NewHTTPError(http.StatusBadRequest, ErrUnknownPost.Error(), "INVALID_REFERENCE")
	case errors.Is(err, ErrInvalidCredentials):
		return NewHTTPError(http.StatusUnauthorized, ErrInvalidCredentials.Error(), "INVALID_CREDENTIALS")
	case errors.Is(err, ErrUnauthorized):
		return NewHTTPError(http.StatusUnauthorized, ErrUnauthorized.Error(), "UNAUTHORIZED")
	case errors.Is(err, ErrInvalidToken):
		return NewHTTPError(http.StatusUnauthorized, ErrInvalidToken.Error(), "UNAUTHORIZED")
	case errors.Is(err, ErrUserNotFound):
		return NewHTTPError(http.StatusNotFound, ErrUserNotFound.Error(), "NOT_FOUND")
	case errors.Is(err, ErrPostNotFound):
		return NewHTTPError(http.StatusNotFound, ErrPostNotFound.Error(), "NOT_FOUND")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}
