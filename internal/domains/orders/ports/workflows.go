package ports

import (
	"context"

	"github.com/Apurer/go-orders-api/internal/domains/orders/application/types"
)

// WorkflowOrchestrator runs order creation, either durably or inline.
type WorkflowOrchestrator interface {
	CreateOrder(ctx context.Context, dto types.OrderDTO) (*types.OrderDTO, error)
}
