package domain

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrNotFound        = errors.New("not found")
	ErrInvalidPrompt   = errors.New("invalid prompt")
	ErrQuotaExceeded   = errors.New("quota exceeded")
	ErrUnknownStyle    = errors.New("unknown style")
	ErrUnsupportedPlan = errors.New("unsupported plan")
)

// GenerationError reports a failed remote generation call. Auth marks a 401
// credential rejection, which is systemic rather than per-request and aborts
// any in-flight batch.
type GenerationError struct {
	Status int
	Auth   bool
	Err    error
}

func (e *GenerationError) Error() string {
	if e.Auth {
		return fmt.Sprintf("generation unauthorized (status %d): check the API key", e.Status)
	}
	if e.Err != nil {
		return fmt.Sprintf("generation failed: %v", e.Err)
	}
	return fmt.Sprintf("generation failed with status %d", e.Status)
}

func (e *GenerationError) Unwrap() error { return e.Err }

// NewGenerationError builds a GenerationError from an HTTP status.
func NewGenerationError(status int) *GenerationError {
	return &GenerationError{Status: status, Auth: status == http.StatusUnauthorized}
}

// IsAuthError reports whether err is (or wraps) a credential rejection.
func IsAuthError(err error) bool {
	var ge *GenerationError
	return errors.As(err, &ge) && ge.Auth
}
