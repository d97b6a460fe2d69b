package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"onlineshop/internal/common"
	"onlineshop/internal/models"
	"onlineshop/internal/services"
)

// CustomerHandlers handles HTTP requests for customers
type CustomerHandlers struct {
	customerService services.CustomerServiceInterface
}

func NewCustomerHandlers(customerService services.CustomerServiceInterface) *CustomerHandlers {
	return &CustomerHandlers{customerService: customerService}
}

// ListCustomers handles GET /customers
func (h *CustomerHandlers) ListCustomers(c echo.Context) error {
	skip, limit, err := common.ParseSkipLimit(c)
	if err != nil {
		return common.SendValidationError(c, "query", err.Error())
	}

	customers, err := h.customerService.ListCustomers(c.Request().Context(), limit, skip)
	if err != nil {
		return common.SendServerError(c, "Failed to retrieve customers")
	}
	return c.JSON(http.StatusOK, customers)
}

// GetCustomer handles GET /customers/:id
func (h *CustomerHandlers) GetCustomer(c echo.Context) error {
	id, err := common.ParseID(c, "id")
	if err != nil {
		return common.SendClientError(c, err.Error())
	}

	customer, err := h.customerService.GetCustomer(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrCustomerNotFound) {
			return common.SendNotFoundError(c, "Customer")
		}
		return common.SendServerError(c, "Failed to retrieve customer")
	}
	return c.JSON(http.StatusOK, customer)
}

// CreateCustomer handles POST /customers
func (h *CustomerHandlers) CreateCustomer(c echo.Context) error {
	var req models.CustomerCreate
	if err := c.Bind(&req); err != nil {
		return common.SendClientError(c, "Invalid request format")
	}
	if err := common.ValidateRequiredString(req.Name, "name"); err != nil {
		return common.SendValidationError(c, "name", err.Error())
	}
	if err := common.ValidateRequiredString(req.Surname, "surname"); err != nil {
		return common.SendValidationError(c, "surname", err.Error())
	}
	if err := common.ValidateRequiredString(req.Email, "email"); err != nil {
		return common.SendValidationError(c, "email", err.Error())
	}

	customer, err := h.customerService.CreateCustomer(c.Request().Context(), &req)
	if err != nil {
		if errors.Is(err, services.ErrEmailTaken) {
			return common.SendConflictError(c, "Email already exists")
		}
		return common.SendServerError(c, "Failed to create customer")
	}
	return c.JSON(http.StatusCreated, customer)
}

// UpdateCustomer handles PUT /customers/:id
func (h *CustomerHandlers) UpdateCustomer(c echo.Context) error {
	id, err := common.ParseID(c, "id")
	if err != nil {
		return common.SendClientError(c, err.Error())
	}

	var req models.CustomerUpdate
	if err := c.Bind(&req); err != nil {
		return common.SendClientError(c, "Invalid request format")
	}
	if req.Email != nil {
		if err := common.ValidateRequiredString(*req.Email, "email"); err != nil {
			return common.SendValidationError(c, "email", err.Error())
		}
	}

	customer, err := h.customerService.UpdateCustomer(c.Request().Context(), id, &req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrCustomerNotFound):
			return common.SendNotFoundError(c, "Customer")
		case errors.Is(err, services.ErrEmailTaken):
			return common.SendConflictError(c, "Email already exists")
		}
		return common.SendServerError(c, "Failed to update customer")
	}
	return c.JSON(http.StatusOK, customer)
}

// DeleteCustomer handles DELETE /customers/:id
func (h *CustomerHandlers) DeleteCustomer(c echo.Context) error {
	id, err := common.ParseID(c, "id")
	if err != nil {
		return common.SendClientError(c, err.Error())
	}

	if err := h.customerService.DeleteCustomer(c.Request().Context(), id); err != nil {
		if errors.Is(err, services.ErrCustomerNotFound) {
			return common.SendNotFoundError(c, "Customer")
		}
		return common.SendServerError(c, "Failed to delete customer")
	}
	return c.JSON(http.StatusOK, map[string]string{
		"message": "Customer deleted successfully",
	})
}
