package types

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Apurer/go-orders-api/internal/domains/orders/domain"
)

// OrderDTO is the external representation of an order exchanged with callers.
type OrderDTO struct {
	ID         uuid.UUID
	CustomerID uuid.UUID
	Items      []OrderItemDTO
	OrderDate  time.Time
	Status     domain.Status
}

// OrderItemDTO is the external representation of a line item.
type OrderItemDTO struct {
	ProductID  uuid.UUID
	Quantity   int
	TotalPrice decimal.Decimal
}
