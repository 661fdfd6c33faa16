package ordersserver

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	orderapp "github.com/Apurer/go-orders-api/internal/domains/orders/application"
	apierrors "github.com/Apurer/go-orders-api/internal/shared/errors"
)

// faultTranslator maps order service failures onto problem details.
var faultTranslator = apierrors.NewChainedResponder("", mapOrderError)

func mapOrderError(err error) (apierrors.ProblemDetail, bool) {
	var validationErr *orderapp.ValidationError
	switch {
	case errors.As(err, &validationErr):
		return apierrors.NewValidationProblem(validationErr.Violations).
			WithDetail("The order failed validation."), true
	case errors.Is(err, orderapp.ErrInvalidArgument):
		return apierrors.ErrBadRequest.WithDetail(err.Error()), true
	case errors.Is(err, orderapp.ErrNotFound):
		return apierrors.ErrNotFound.WithDetail(err.Error()), true
	case errors.Is(err, orderapp.ErrStoreFailure):
		return apierrors.ErrServiceUnavailable.WithDetail("The order store is unavailable."), true
	default:
		return apierrors.ProblemDetail{}, false
	}
}

func respondOrderError(c *gin.Context, err error) {
	if err == nil {
		return
	}
	faultTranslator.RespondError(c, err)
}

// respondOrderLookupError reports a missing order with the identifier the caller asked for.
func respondOrderLookupError(c *gin.Context, id uuid.UUID, err error) {
	if errors.Is(err, orderapp.ErrNotFound) {
		faultTranslator.Respond(c, apierrors.NewNotFoundProblem("Order", id.String()))
		return
	}
	respondOrderError(c, err)
}

func badRequest(c *gin.Context, detail string) {
	faultTranslator.BadRequest(c, detail)
}
