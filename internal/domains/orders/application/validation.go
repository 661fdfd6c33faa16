package application

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/Apurer/go-orders-api/internal/domains/orders/application/types"
)

// Violation describes one broken rule on a candidate order.
type Violation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (v Violation) String() string {
	return v.Field + ": " + v.Message
}

// Validate checks every rule against the order and returns all violations in rule order.
// An empty result means the order is valid.
func Validate(dto types.OrderDTO) []Violation {
	var violations []Violation
	if dto.ID == uuid.Nil {
		violations = append(violations, Violation{Field: "orderID", Message: "OrderID must be a valid, non-default GUID."})
	}
	return append(violations, ValidateContent(dto)...)
}

// ValidateContent applies every rule except the order identifier one. Create assigns missing
// identifiers and update takes the identifier from its argument, so both validate content only.
func ValidateContent(dto types.OrderDTO) []Violation {
	var violations []Violation
	if dto.CustomerID == uuid.Nil {
		violations = append(violations, Violation{Field: "customerID", Message: "CustomerID is required."})
	}
	if dto.OrderDate.IsZero() {
		violations = append(violations, Violation{Field: "orderDate", Message: "OrderDate is required."})
	}
	if len(dto.Items) == 0 {
		violations = append(violations, Violation{Field: "orderItems", Message: "Order must have at least one item."})
	}
	for i, item := range dto.Items {
		violations = append(violations, validateItem(i, item)...)
	}
	if !dto.Status.IsValid() {
		violations = append(violations, Violation{Field: "status", Message: "Status must be a valid value."})
	}
	return violations
}

func validateItem(index int, item types.OrderItemDTO) []Violation {
	var violations []Violation
	prefix := fmt.Sprintf("orderItems[%d]", index)
	if item.ProductID == uuid.Nil {
		violations = append(violations, Violation{Field: prefix + ".productID", Message: "ProductID is required."})
	}
	if item.Quantity <= 0 {
		violations = append(violations, Violation{Field: prefix + ".quantity", Message: "Quantity must be greater than zero."})
	}
	if !item.TotalPrice.IsPositive() {
		violations = append(violations, Violation{Field: prefix + ".totalPrice", Message: "TotalPrice must be greater than zero."})
	}
	return violations
}
