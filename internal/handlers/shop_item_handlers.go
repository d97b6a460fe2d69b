package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"onlineshop/internal/common"
	"onlineshop/internal/models"
	"onlineshop/internal/services"
)

// ShopItemHandlers handles HTTP requests for shop items
type ShopItemHandlers struct {
	shopItemService services.ShopItemServiceInterface
}

func NewShopItemHandlers(shopItemService services.ShopItemServiceInterface) *ShopItemHandlers {
	return &ShopItemHandlers{shopItemService: shopItemService}
}

// ListShopItems handles GET /items with an optional category_id filter
func (h *ShopItemHandlers) ListShopItems(c echo.Context) error {
	skip, limit, err := common.ParseSkipLimit(c)
	if err != nil {
		return common.SendValidationError(c, "query", err.Error())
	}

	var categoryID *int64
	if categoryParam := c.QueryParam("category_id"); categoryParam != "" {
		id, err := strconv.ParseInt(categoryParam, 10, 64)
		if err != nil || id <= 0 {
			return common.SendClientError(c, "invalid category_id")
		}
		categoryID = &id
	}

	items, err := h.shopItemService.ListShopItems(c.Request().Context(), categoryID, limit, skip)
	if err != nil {
		return common.SendServerError(c, "Failed to retrieve shop items")
	}
	return c.JSON(http.StatusOK, items)
}

// GetShopItem handles GET /items/:id
func (h *ShopItemHandlers) GetShopItem(c echo.Context) error {
	id, err := common.ParseID(c, "id")
	if err != nil {
		return common.SendClientError(c, err.Error())
	}

	item, err := h.shopItemService.GetShopItem(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrShopItemNotFound) {
			return common.SendNotFoundError(c, "Shop item")
		}
		return common.SendServerError(c, "Failed to retrieve shop item")
	}
	return c.JSON(http.StatusOK, item)
}

// CreateShopItem handles POST /items
func (h *ShopItemHandlers) CreateShopItem(c echo.Context) error {
	var req models.ShopItemCreate
	if err := c.Bind(&req); err != nil {
		return common.SendClientError(c, "Invalid request format")
	}
	if err := common.ValidateRequiredString(req.Title, "title"); err != nil {
		return common.SendValidationError(c, "title", err.Error())
	}
	if err := common.ValidatePositiveFloat(req.Price, "price"); err != nil {
		return common.SendValidationError(c, "price", err.Error())
	}

	item, err := h.shopItemService.CreateShopItem(c.Request().Context(), &req)
	if err != nil {
		return common.SendServerError(c, "Failed to create shop item")
	}
	return c.JSON(http.StatusCreated, item)
}

// UpdateShopItem handles PUT /items/:id
func (h *ShopItemHandlers) UpdateShopItem(c echo.Context) error {
	id, err := common.ParseID(c, "id")
	if err != nil {
		return common.SendClientError(c, err.Error())
	}

	var req models.ShopItemUpdate
	if err := c.Bind(&req); err != nil {
		return common.SendClientError(c, "Invalid request format")
	}
	if req.Price != nil {
		if err := common.ValidatePositiveFloat(*req.Price, "price"); err != nil {
			return common.SendValidationError(c, "price", err.Error())
		}
	}

	item, err := h.shopItemService.UpdateShopItem(c.Request().Context(), id, &req)
	if err != nil {
		if errors.Is(err, services.ErrShopItemNotFound) {
			return common.SendNotFoundError(c, "Shop item")
		}
		return common.SendServerError(c, "Failed to update shop item")
	}
	return c.JSON(http.StatusOK, item)
}

// DeleteShopItem handles DELETE /items/:id
func (h *ShopItemHandlers) DeleteShopItem(c echo.Context) error {
	id, err := common.ParseID(c, "id")
	if err != nil {
		return common.SendClientError(c, err.Error())
	}

	if err := h.shopItemService.DeleteShopItem(c.Request().Context(), id); err != nil {
		if errors.Is(err, services.ErrShopItemNotFound) {
			return common.SendNotFoundError(c, "Shop item")
		}
		return common.SendServerError(c, "Failed to delete shop item")
	}
	return c.JSON(http.StatusOK, map[string]string{
		"message": "Shop item deleted successfully",
	})
}
