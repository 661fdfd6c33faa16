package ports

import (
	"context"

	"github.com/google/uuid"

	"github.com/Apurer/go-orders-api/internal/domains/orders/application/types"
)

// Service exposes the order lifecycle use cases to adapters.
type Service interface {
	Validate(ctx context.Context, dto types.OrderDTO) error
	GetByID(ctx context.Context, id uuid.UUID) (*types.OrderDTO, error)
	GetAll(ctx context.Context) ([]types.OrderDTO, error)
	Create(ctx context.Context, dto types.OrderDTO) (*types.OrderDTO, error)
	Update(ctx context.Context, id uuid.UUID, dto types.OrderDTO) (*types.OrderDTO, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
