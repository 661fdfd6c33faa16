package application

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/Apurer/go-orders-api/internal/domains/orders/application/types"
	"github.com/Apurer/go-orders-api/internal/domains/orders/domain"
)

func TestMapper_RoundTrip(t *testing.T) {
	dtos := []types.OrderDTO{validDTO(), validDTO()}
	dtos[1].Status = domain.StatusCanceled
	dtos[1].Items = append(dtos[1].Items,
		types.OrderItemDTO{ProductID: uuid.New(), Quantity: 4, TotalPrice: decimal.RequireFromString("19.99")},
		types.OrderItemDTO{ProductID: uuid.New(), Quantity: 2, TotalPrice: decimal.RequireFromString("0.50")},
	)

	for _, dto := range dtos {
		require.Equal(t, dto, FromDomain(ToDomain(dto)))
	}
}

func TestMapper_ToDomainCopiesEveryField(t *testing.T) {
	dto := validDTO()
	dto.Status = domain.StatusShipped

	order := ToDomain(dto)
	require.Equal(t, dto.ID, order.ID)
	require.Equal(t, dto.CustomerID, order.CustomerID)
	require.Equal(t, dto.OrderDate, order.OrderDate)
	require.Equal(t, domain.StatusShipped, order.Status)
	require.Len(t, order.Items, 1)
	require.Equal(t, dto.Items[0].ProductID, order.Items[0].ProductID)
	require.Equal(t, dto.Items[0].Quantity, order.Items[0].Quantity)
	require.True(t, dto.Items[0].TotalPrice.Equal(order.Items[0].TotalPrice))
}

func TestMapper_ToDomainAssignsMissingIdentifier(t *testing.T) {
	dto := validDTO()
	dto.ID = uuid.Nil

	order := ToDomain(dto)
	require.NotEqual(t, uuid.Nil, order.ID)
}

func TestMapper_MergeKeepsIdentifier(t *testing.T) {
	existing := ToDomain(validDTO())
	originalID := existing.ID

	update := validDTO()
	update.Status = domain.StatusCompleted
	update.OrderDate = time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
	mergeInto(existing, update)

	merged := FromDomain(existing)
	require.Equal(t, originalID, merged.ID)
	update.ID = originalID
	require.Equal(t, update, merged)
}

func TestMapper_FromDomainNilAndList(t *testing.T) {
	require.Equal(t, types.OrderDTO{}, FromDomain(nil))

	first, second := ToDomain(validDTO()), ToDomain(validDTO())
	list := FromDomainList([]*domain.Order{first, second})
	require.Len(t, list, 2)
	require.Equal(t, first.ID, list[0].ID)
	require.Equal(t, second.ID, list[1].ID)
	require.Empty(t, FromDomainList(nil))
}
