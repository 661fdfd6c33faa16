package application

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Apurer/go-orders-api/internal/domains/orders/ports"
)

var (
	// ErrInvalidArgument signals a required identifier argument was empty or inconsistent.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrValidationFailed signals the order violated one or more validation rules.
	ErrValidationFailed = errors.New("order validation failed")
	// ErrNotFound signals no order exists under the requested identifier.
	ErrNotFound = errors.New("order not found")
	// ErrStoreFailure signals the backing store itself failed.
	ErrStoreFailure = errors.New("order store failure")
)

// ValidationError carries every violation found in a single validation pass.
type ValidationError struct {
	Violations []Violation
}

func (e *ValidationError) Error() string {
	if len(e.Violations) == 0 {
		return ErrValidationFailed.Error()
	}
	parts := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		parts = append(parts, v.String())
	}
	return fmt.Sprintf("%s: %s", ErrValidationFailed, strings.Join(parts, "; "))
}

func (e *ValidationError) Unwrap() error {
	return ErrValidationFailed
}

func violationsError(violations []Violation) error {
	if len(violations) == 0 {
		return nil
	}
	return &ValidationError{Violations: violations}
}

func mapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, ports.ErrNotFound) {
		return fmt.Errorf("%w: %w", ErrNotFound, err)
	}
	return fmt.Errorf("%w: %w", ErrStoreFailure, err)
}
