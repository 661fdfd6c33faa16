package ordersserver

import (
	"time"

	openapi_types "github.com/oapi-codegen/runtime/types"
	"github.com/shopspring/decimal"
)

func init() {
	// Prices travel as JSON numbers.
	decimal.MarshalJSONWithoutQuotes = true
}

// Order is the wire representation of an order.
type Order struct {
	OrderID    openapi_types.UUID `json:"orderID"`
	CustomerID openapi_types.UUID `json:"customerID"`
	OrderItems []OrderItem        `json:"orderItems"`
	OrderDate  time.Time          `json:"orderDate"`
	// Status is one of Pending, Completed, Shipped or Canceled. Empty means Pending.
	Status string `json:"status"`
}

// OrderItem is the wire representation of a single order line.
type OrderItem struct {
	ProductID  openapi_types.UUID `json:"productID"`
	Quantity   int                `json:"quantity"`
	TotalPrice decimal.Decimal    `json:"totalPrice"`
}

// DeleteOrderResponse confirms a deletion.
type DeleteOrderResponse struct {
	Message string `json:"message"`
}
