package orders

import (
	"go.temporal.io/sdk/workflow"

	"github.com/Apurer/go-orders-api/internal/domains/orders/application/types"
	"github.com/Apurer/go-orders-api/internal/platform/temporal/sequences"
)

const (
	// OrderCreationWorkflowName is the public identifier for registering the workflow.
	OrderCreationWorkflowName = "orders.workflows.Creation"
	// OrderCreationTaskQueue is the queue consumed by the worker processing order workflows.
	OrderCreationTaskQueue = "ORDER_CREATION"
)

// OrderCreationWorkflowInput captures the payload required to create an order.
type OrderCreationWorkflowInput struct {
	Order   types.OrderDTO
	TraceID string
}

// OrderCreationWorkflow persists a new order through the persistence sequence.
func OrderCreationWorkflow(ctx workflow.Context, input OrderCreationWorkflowInput) (*types.OrderDTO, error) {
	logger := workflow.GetLogger(ctx)
	orderID := input.Order.ID.String()
	logger.Info("OrderCreationWorkflow started", withTraceID(input.TraceID, "orderId", orderID)...)
	created, err := sequences.RunOrderPersistenceSequence(ctx, input.Order)
	if err != nil {
		logger.Error("OrderCreationWorkflow failed", withTraceID(input.TraceID, "orderId", orderID, "error", err)...)
		return nil, err
	}
	logger.Info("OrderCreationWorkflow completed", withTraceID(input.TraceID, "orderId", created.ID.String())...)
	return created, nil
}

func withTraceID(traceID string, keyvals ...interface{}) []interface{} {
	if traceID == "" {
		return keyvals
	}
	return append(keyvals, "traceId", traceID)
}
