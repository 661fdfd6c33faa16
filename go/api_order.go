package ordersserver

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/oapi-codegen/runtime"
	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/Apurer/go-orders-api/internal/domains/orders/application/types"
	"github.com/Apurer/go-orders-api/internal/domains/orders/domain"
	orderports "github.com/Apurer/go-orders-api/internal/domains/orders/ports"
)

// OrderAPI wires HTTP transport with the orders bounded context service and workflows.
type OrderAPI struct {
	service   orderports.Service
	workflows orderports.WorkflowOrchestrator
}

// NewOrderAPI creates an OrderAPI backed by the provided service. workflows may be nil,
// in which case orders are created through the service directly.
func NewOrderAPI(service orderports.Service, workflows orderports.WorkflowOrchestrator) OrderAPI {
	return OrderAPI{service: service, workflows: workflows}
}

// Get /api/orders
// Lists every order
func (api *OrderAPI) GetOrders(c *gin.Context) {
	orders, err := api.service.GetAll(c.Request.Context())
	if err != nil {
		respondOrderError(c, err)
		return
	}
	out := make([]Order, 0, len(orders))
	for _, dto := range orders {
		out = append(out, fromOrderDTO(dto))
	}
	c.JSON(http.StatusOK, out)
}

// Get /api/orders/:id
// Find order by ID
func (api *OrderAPI) GetOrderById(c *gin.Context) {
	id, ok := parseOrderID(c)
	if !ok {
		return
	}
	dto, err := api.service.GetByID(c.Request.Context(), id)
	if err != nil {
		respondOrderLookupError(c, id, err)
		return
	}
	c.JSON(http.StatusOK, fromOrderDTO(*dto))
}

// Post /api/orders
// Creates an order
func (api *OrderAPI) CreateOrder(c *gin.Context) {
	var payload Order
	if err := c.ShouldBindJSON(&payload); err != nil {
		badRequest(c, "Order data is null or malformed: "+err.Error())
		return
	}
	dto := toOrderDTO(payload)
	if err := api.service.Validate(c.Request.Context(), dto); err != nil {
		respondOrderError(c, err)
		return
	}
	created, err := api.createOrder(c.Request.Context(), dto)
	if err != nil {
		respondOrderError(c, err)
		return
	}
	c.Header("Location", fmt.Sprintf("/api/orders/%s", created.ID))
	c.JSON(http.StatusCreated, fromOrderDTO(*created))
}

func (api *OrderAPI) createOrder(ctx context.Context, dto types.OrderDTO) (*types.OrderDTO, error) {
	if api.workflows != nil {
		return api.workflows.CreateOrder(ctx, dto)
	}
	return api.service.Create(ctx, dto)
}

// Put /api/orders/:id
// Replaces an existing order
func (api *OrderAPI) UpdateOrder(c *gin.Context) {
	id, ok := parseOrderID(c)
	if !ok {
		return
	}
	var payload Order
	if err := c.ShouldBindJSON(&payload); err != nil {
		badRequest(c, "Order data is null or malformed: "+err.Error())
		return
	}
	if payload.OrderID != id {
		badRequest(c, "Order ID mismatch.")
		return
	}
	dto := toOrderDTO(payload)
	if err := api.service.Validate(c.Request.Context(), dto); err != nil {
		respondOrderError(c, err)
		return
	}
	updated, err := api.service.Update(c.Request.Context(), id, dto)
	if err != nil {
		respondOrderLookupError(c, id, err)
		return
	}
	c.JSON(http.StatusOK, fromOrderDTO(*updated))
}

// Delete /api/orders/:id
// Deletes an order
func (api *OrderAPI) DeleteOrder(c *gin.Context) {
	id, ok := parseOrderID(c)
	if !ok {
		return
	}
	if err := api.service.Delete(c.Request.Context(), id); err != nil {
		respondOrderLookupError(c, id, err)
		return
	}
	c.JSON(http.StatusOK, DeleteOrderResponse{Message: fmt.Sprintf("Order with ID %s deleted successfully.", id)})
}

func parseOrderID(c *gin.Context) (uuid.UUID, bool) {
	var id openapi_types.UUID
	err := runtime.BindStyledParameterWithOptions("simple", "id", c.Param("id"), &id,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		badRequest(c, fmt.Sprintf("Invalid format for parameter id: %s", err))
		return uuid.Nil, false
	}
	return id, true
}

func toOrderDTO(order Order) types.OrderDTO {
	var items []types.OrderItemDTO
	if order.OrderItems != nil {
		items = make([]types.OrderItemDTO, 0, len(order.OrderItems))
		for _, item := range order.OrderItems {
			items = append(items, types.OrderItemDTO{
				ProductID:  item.ProductID,
				Quantity:   item.Quantity,
				TotalPrice: item.TotalPrice,
			})
		}
	}
	return types.OrderDTO{
		ID:         order.OrderID,
		CustomerID: order.CustomerID,
		Items:      items,
		OrderDate:  order.OrderDate,
		Status:     domain.ParseStatus(order.Status),
	}
}

func fromOrderDTO(dto types.OrderDTO) Order {
	items := make([]OrderItem, 0, len(dto.Items))
	for _, item := range dto.Items {
		items = append(items, OrderItem{
			ProductID:  item.ProductID,
			Quantity:   item.Quantity,
			TotalPrice: item.TotalPrice,
		})
	}
	return Order{
		OrderID:    dto.ID,
		CustomerID: dto.CustomerID,
		OrderItems: items,
		OrderDate:  dto.OrderDate,
		Status:     dto.Status.String(),
	}
}
