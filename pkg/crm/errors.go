package crm

import (
	"encoding/json"
	"errors"
	"fmt"
)

// APIError represents an error returned by the resource manager API.
type APIError struct {
	Code    int    `json:"code"    yaml:"code"`
	Message string `json:"message" yaml:"message"`
	Status  string `json:"status"  yaml:"status"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %s (code: %d)", e.Status, e.Message, e.Code)
}

// ResponseError is the error envelope the API wraps failures in.
type ResponseError struct {
	Err APIError `json:"error"`
}

// Error implements the error interface for ResponseError.
func (e *ResponseError) Error() string {
	return e.Err.Error()
}

// Unwrap exposes the inner APIError for errors.As.
func (e *ResponseError) Unwrap() error {
	return &e.Err
}

// Canonical status strings used by the API.
const (
	StatusNotFound          = "NOT_FOUND"
	StatusPermissionDenied  = "PERMISSION_DENIED"
	StatusUnauthenticated   = "UNAUTHENTICATED"
	StatusAlreadyExists     = "ALREADY_EXISTS"
	StatusInvalidArgument   = "INVALID_ARGUMENT"
	StatusResourceExhausted = "RESOURCE_EXHAUSTED"
)

// Common static errors that can be wrapped with context.
var (
	ErrConfigRequired        = errors.New("config is required")
	ErrProjectIDRequired     = errors.New("a project ID is required")
	ErrOperationNameRequired = errors.New("an operation name is required")
	ErrOperationFailed       = errors.New("operation failed")
	ErrNoMoreItems           = errors.New("no more items")
)

// IsNotFound checks if the error is a not-found API error.
func IsNotFound(err error) bool {
	return hasStatus(err, StatusNotFound)
}

// IsPermissionDenied checks if the error is a permission-denied API error.
func IsPermissionDenied(err error) bool {
	return hasStatus(err, StatusPermissionDenied)
}

// IsUnauthenticated checks if the error is an unauthenticated API error.
func IsUnauthenticated(err error) bool {
	return hasStatus(err, StatusUnauthenticated)
}

// IsAlreadyExists checks if the error is an already-exists API error.
func IsAlreadyExists(err error) bool {
	return hasStatus(err, StatusAlreadyExists)
}

func hasStatus(err error, status string) bool {
	apiErr := &APIError{}
	if errors.As(err, &apiErr) {
		return apiErr.Status == status
	}

	return false
}

// ParseResponseError parses an error envelope from a response body.
func ParseResponseError(data []byte) (*ResponseError, error) {
	var errResp ResponseError

	err := json.Unmarshal(data, &errResp)
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal response error: %w", err)
	}

	return &errResp, nil
}
