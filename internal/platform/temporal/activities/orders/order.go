package orders

import (
	"context"
	"errors"

	"go.temporal.io/sdk/activity"

	"github.com/Apurer/go-orders-api/internal/domains/orders/application/types"
	orderports "github.com/Apurer/go-orders-api/internal/domains/orders/ports"
)

// PersistOrderActivityName persists a new order through the order service.
const PersistOrderActivityName = "orders.activities.PersistOrder"

// Activities groups activities that operate on the orders bounded context.
type Activities struct {
	service orderports.Service
}

// NewActivities wires the order service into the Temporal activities bundle.
func NewActivities(service orderports.Service) *Activities {
	return &Activities{service: service}
}

// PersistOrder stores a new order. Caller faults are returned as non-retryable
// application errors so the workflow fails fast instead of retrying them.
func (a *Activities) PersistOrder(ctx context.Context, dto types.OrderDTO) (*types.OrderDTO, error) {
	logger := activity.GetLogger(ctx)
	orderID := dto.ID.String()
	if a == nil || a.service == nil {
		logger.Error("order persist activity not initialized", "orderId", orderID)
		return nil, errors.New("order persist activity not initialized")
	}
	logger.Info("PersistOrder activity started", "orderId", orderID)
	created, err := a.service.Create(ctx, dto)
	if err != nil {
		logger.Error("PersistOrder activity failed", "orderId", orderID, "error", err)
		return nil, EncodeError(err)
	}
	logger.Info("PersistOrder activity completed", "orderId", created.ID.String())
	return created, nil
}
