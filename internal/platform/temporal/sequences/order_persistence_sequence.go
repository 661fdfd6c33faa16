package sequences

import (
	"time"

	"go.temporal.io/sdk/temporal"
	"go.temporal.io/sdk/workflow"

	"github.com/Apurer/go-orders-api/internal/domains/orders/application/types"
	orderactivities "github.com/Apurer/go-orders-api/internal/platform/temporal/activities/orders"
)

// RunOrderPersistenceSequence executes the activities needed to persist a new order.
func RunOrderPersistenceSequence(ctx workflow.Context, dto types.OrderDTO) (*types.OrderDTO, error) {
	logger := workflow.GetLogger(ctx)
	orderID := dto.ID.String()
	logger.Info("order persistence sequence started", "orderId", orderID)
	options := workflow.ActivityOptions{
		StartToCloseTimeout: time.Minute,
		RetryPolicy: &temporal.RetryPolicy{
			InitialInterval:    2 * time.Second,
			BackoffCoefficient: 2.0,
			MaximumInterval:    10 * time.Second,
			MaximumAttempts:    5,
			NonRetryableErrorTypes: []string{
				orderactivities.ErrTypeInvalidArgument,
				orderactivities.ErrTypeValidationFailed,
				orderactivities.ErrTypeNotFound,
			},
		},
	}
	ctx = workflow.WithActivityOptions(ctx, options)

	var created types.OrderDTO
	err := workflow.ExecuteActivity(ctx, orderactivities.PersistOrderActivityName, dto).Get(ctx, &created)
	if err != nil {
		logger.Error("order persistence sequence failed", "orderId", orderID, "error", err)
		return nil, err
	}
	logger.Info("order persistence sequence completed", "orderId", created.ID.String())
	return &created, nil
}
