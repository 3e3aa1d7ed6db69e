package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrUnauthorized indicates the caller could not be identified.
var ErrUnauthorized = errors.New("unauthorized")

// ErrForbidden indicates the caller is identified but not allowed to perform the action.
var ErrForbidden = errors.New("forbidden")

// ErrAuthenticationMissing indicates there is no usable provider credential for the
// (user, company) pair, either because none is stored or because the provider rejected
// its refresh token. It is fatal for the request and is never retried.
var ErrAuthenticationMissing = errors.New("provider authentication missing")

// ErrProviderRequestFailed indicates a fetch against the accounting data provider failed.
var ErrProviderRequestFailed = errors.New("provider request failed")

// ProviderError carries the fetch stage and endpoint of a failed provider call.
type ProviderError struct {
	Stage      string
	Endpoint   string
	StatusCode int
	Err        error
}

func (e *ProviderError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("provider %s fetch failed (%s, status %d): %v", e.Stage, e.Endpoint, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("provider %s fetch failed (%s): %v", e.Stage, e.Endpoint, e.Err)
}

// Unwrap exposes both the sentinel and the underlying cause to errors.Is / errors.As.
func (e *ProviderError) Unwrap() []error {
	return []error{ErrProviderRequestFailed, e.Err}
}

// NewProviderError wraps err with the stage and endpoint it came from.
func NewProviderError(stage, endpoint string, statusCode int, err error) *ProviderError {
	return &ProviderError{Stage: stage, Endpoint: endpoint, StatusCode: statusCode, Err: err}
}
