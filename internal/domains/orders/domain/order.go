package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderItem is a line item owned by its order. It has no identity of its own.
type OrderItem struct {
	ProductID  uuid.UUID
	Quantity   int
	TotalPrice decimal.Decimal
}

// Order models the customer purchase order aggregate.
type Order struct {
	ID         uuid.UUID
	CustomerID uuid.UUID
	Items      []OrderItem
	OrderDate  time.Time
	Status     Status
}

// NewOrder constructs an Order aggregate, assigning a fresh identifier when id is uuid.Nil.
func NewOrder(id, customerID uuid.UUID, items []OrderItem, orderDate time.Time, status Status) *Order {
	if id == uuid.Nil {
		id = uuid.New()
	}
	return &Order{
		ID:         id,
		CustomerID: customerID,
		Items:      cloneItems(items),
		OrderDate:  orderDate,
		Status:     status,
	}
}

// Replace overwrites every mutable field. The identifier is left untouched.
func (o *Order) Replace(customerID uuid.UUID, items []OrderItem, orderDate time.Time, status Status) {
	o.CustomerID = customerID
	o.Items = cloneItems(items)
	o.OrderDate = orderDate
	o.Status = status
}

// Clone returns a deep copy so callers never share the items backing array.
func (o *Order) Clone() *Order {
	if o == nil {
		return nil
	}
	clone := *o
	clone.Items = cloneItems(o.Items)
	return &clone
}

func cloneItems(items []OrderItem) []OrderItem {
	if items == nil {
		return nil
	}
	out := make([]OrderItem, len(items))
	copy(out, items)
	return out
}
