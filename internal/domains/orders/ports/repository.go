package ports

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/Apurer/go-orders-api/internal/domains/orders/domain"
)

var ErrNotFound = errors.New("order not found")

// Repository persists order aggregates keyed by identifier.
// Create and Update are unconditional upserts; Delete of a missing identifier is a no-op.
type Repository interface {
	Get(ctx context.Context, id uuid.UUID) (*domain.Order, error)
	GetAll(ctx context.Context) ([]*domain.Order, error)
	Create(ctx context.Context, order *domain.Order) error
	Update(ctx context.Context, order *domain.Order) error
	Delete(ctx context.Context, id uuid.UUID) error
}
