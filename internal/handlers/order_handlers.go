package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"onlineshop/internal/common"
	"onlineshop/internal/models"
	"onlineshop/internal/services"
)

// OrderHandlers handles HTTP requests for orders
type OrderHandlers struct {
	orderService services.OrderServiceInterface
}

func NewOrderHandlers(orderService services.OrderServiceInterface) *OrderHandlers {
	return &OrderHandlers{orderService: orderService}
}

// ListOrders handles GET /orders
func (h *OrderHandlers) ListOrders(c echo.Context) error {
	skip, limit, err := common.ParseSkipLimit(c)
	if err != nil {
		return common.SendValidationError(c, "query", err.Error())
	}

	orders, err := h.orderService.ListOrders(c.Request().Context(), limit, skip)
	if err != nil {
		return common.SendServerError(c, "Failed to retrieve orders")
	}
	return c.JSON(http.StatusOK, orders)
}

// GetOrder handles GET /orders/:id
func (h *OrderHandlers) GetOrder(c echo.Context) error {
	id, err := common.ParseID(c, "id")
	if err != nil {
		return common.SendClientError(c, err.Error())
	}

	order, err := h.orderService.GetOrder(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrOrderNotFound) {
			return common.SendNotFoundError(c, "Order")
		}
		return common.SendServerError(c, "Failed to retrieve order")
	}
	return c.JSON(http.StatusOK, order)
}

// CreateOrder handles POST /orders
func (h *OrderHandlers) CreateOrder(c echo.Context) error {
	var req models.OrderCreate
	if err := c.Bind(&req); err != nil {
		return common.SendClientError(c, "Invalid request format")
	}
	if req.CustomerID <= 0 {
		return common.SendValidationError(c, "customer_id", "customer_id is required")
	}
	for _, item := range req.Items {
		if err := common.ValidatePositiveInteger(item.Quantity, "quantity"); err != nil {
			return common.SendValidationError(c, "quantity", err.Error())
		}
	}

	order, err := h.orderService.CreateOrder(c.Request().Context(), &req)
	if err != nil {
		return respondOrderError(c, err, "Failed to create order")
	}
	return c.JSON(http.StatusCreated, order)
}

// UpdateOrder handles PUT /orders/:id
func (h *OrderHandlers) UpdateOrder(c echo.Context) error {
	id, err := common.ParseID(c, "id")
	if err != nil {
		return common.SendClientError(c, err.Error())
	}

	var req models.OrderUpdate
	if err := c.Bind(&req); err != nil {
		return common.SendClientError(c, "Invalid request format")
	}
	for _, item := range req.Items {
		if err := common.ValidatePositiveInteger(item.Quantity, "quantity"); err != nil {
			return common.SendValidationError(c, "quantity", err.Error())
		}
	}

	order, err := h.orderService.UpdateOrder(c.Request().Context(), id, &req)
	if err != nil {
		return respondOrderError(c, err, "Failed to update order")
	}
	return c.JSON(http.StatusOK, order)
}

// DeleteOrder handles DELETE /orders/:id
func (h *OrderHandlers) DeleteOrder(c echo.Context) error {
	id, err := common.ParseID(c, "id")
	if err != nil {
		return common.SendClientError(c, err.Error())
	}

	if err := h.orderService.DeleteOrder(c.Request().Context(), id); err != nil {
		if errors.Is(err, services.ErrOrderNotFound) {
			return common.SendNotFoundError(c, "Order")
		}
		return common.SendServerError(c, "Failed to delete order")
	}
	return c.JSON(http.StatusOK, map[string]string{
		"message": "Order deleted successfully",
	})
}

func respondOrderError(c echo.Context, err error, fallback string) error {
	switch {
	case errors.Is(err, services.ErrOrderNotFound):
		return common.SendNotFoundError(c, "Order")
	case errors.Is(err, services.ErrCustomerNotFound):
		return common.SendNotFoundError(c, "Customer")
	case errors.Is(err, services.ErrShopItemNotFound):
		return common.SendNotFoundError(c, "Shop item")
	}
	return common.SendServerError(c, fallback)
}
