package orders

import (
	"errors"
	"fmt"

	"go.temporal.io/sdk/temporal"

	orderapp "github.com/Apurer/go-orders-api/internal/domains/orders/application"
)

// Application error types carried across the Temporal boundary.
const (
	ErrTypeInvalidArgument  = "InvalidArgument"
	ErrTypeValidationFailed = "ValidationFailed"
	ErrTypeNotFound         = "NotFound"
	ErrTypeStoreFailure     = "StoreFailure"
)

// EncodeError converts a service error into a Temporal application error. Store failures stay
// retryable; everything the caller can fix is not.
func EncodeError(err error) error {
	if err == nil {
		return nil
	}
	var validationErr *orderapp.ValidationError
	switch {
	case errors.As(err, &validationErr):
		return temporal.NewNonRetryableApplicationError(err.Error(), ErrTypeValidationFailed, nil, validationErr.Violations)
	case errors.Is(err, orderapp.ErrInvalidArgument):
		return temporal.NewNonRetryableApplicationError(err.Error(), ErrTypeInvalidArgument, nil)
	case errors.Is(err, orderapp.ErrNotFound):
		return temporal.NewNonRetryableApplicationError(err.Error(), ErrTypeNotFound, nil)
	case errors.Is(err, orderapp.ErrStoreFailure):
		return temporal.NewApplicationError(err.Error(), ErrTypeStoreFailure)
	default:
		return err
	}
}

// DecodeError restores the service error classification from a workflow or activity error.
// Errors without a known application error type are returned unchanged.
func DecodeError(err error) error {
	if err == nil {
		return nil
	}
	var appErr *temporal.ApplicationError
	if !errors.As(err, &appErr) {
		return err
	}
	switch appErr.Type() {
	case ErrTypeValidationFailed:
		var violations []orderapp.Violation
		if appErr.HasDetails() {
			if detailsErr := appErr.Details(&violations); detailsErr != nil {
				return fmt.Errorf("%w: %s", orderapp.ErrValidationFailed, appErr.Message())
			}
		}
		return &orderapp.ValidationError{Violations: violations}
	case ErrTypeInvalidArgument:
		return fmt.Errorf("%w: %s", orderapp.ErrInvalidArgument, appErr.Message())
	case ErrTypeNotFound:
		return fmt.Errorf("%w: %s", orderapp.ErrNotFound, appErr.Message())
	case ErrTypeStoreFailure:
		return fmt.Errorf("%w: %s", orderapp.ErrStoreFailure, appErr.Message())
	default:
		return err
	}
}
