package application

import (
	"github.com/Apurer/go-orders-api/internal/domains/orders/application/types"
	"github.com/Apurer/go-orders-api/internal/domains/orders/domain"
)

// ToDomain converts the external representation into the order aggregate.
// A nil identifier is replaced with a freshly generated one.
func ToDomain(dto types.OrderDTO) *domain.Order {
	return domain.NewOrder(dto.ID, dto.CustomerID, toDomainItems(dto.Items), dto.OrderDate, dto.Status)
}

// FromDomain converts the order aggregate into its external representation.
func FromDomain(order *domain.Order) types.OrderDTO {
	if order == nil {
		return types.OrderDTO{}
	}
	return types.OrderDTO{
		ID:         order.ID,
		CustomerID: order.CustomerID,
		Items:      fromDomainItems(order.Items),
		OrderDate:  order.OrderDate,
		Status:     order.Status,
	}
}

// FromDomainList converts a slice of aggregates, preserving order.
func FromDomainList(orders []*domain.Order) []types.OrderDTO {
	result := make([]types.OrderDTO, 0, len(orders))
	for _, order := range orders {
		result = append(result, FromDomain(order))
	}
	return result
}

func mergeInto(existing *domain.Order, dto types.OrderDTO) {
	existing.Replace(dto.CustomerID, toDomainItems(dto.Items), dto.OrderDate, dto.Status)
}

func toDomainItems(items []types.OrderItemDTO) []domain.OrderItem {
	if items == nil {
		return nil
	}
	result := make([]domain.OrderItem, 0, len(items))
	for _, item := range items {
		result = append(result, domain.OrderItem{
			ProductID:  item.ProductID,
			Quantity:   item.Quantity,
			TotalPrice: item.TotalPrice,
		})
	}
	return result
}

func fromDomainItems(items []domain.OrderItem) []types.OrderItemDTO {
	if items == nil {
		return nil
	}
	result := make([]types.OrderItemDTO, 0, len(items))
	for _, item := range items {
		result = append(result, types.OrderItemDTO{
			ProductID:  item.ProductID,
			Quantity:   item.Quantity,
			TotalPrice: item.TotalPrice,
		})
	}
	return result
}
