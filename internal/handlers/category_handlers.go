package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"onlineshop/internal/common"
	"onlineshop/internal/models"
	"onlineshop/internal/services"
)

// CategoryHandlers handles HTTP requests for shop item categories
type CategoryHandlers struct {
	categoryService services.CategoryServiceInterface
}

func NewCategoryHandlers(categoryService services.CategoryServiceInterface) *CategoryHandlers {
	return &CategoryHandlers{categoryService: categoryService}
}

// ListCategories handles GET /categories
func (h *CategoryHandlers) ListCategories(c echo.Context) error {
	skip, limit, err := common.ParseSkipLimit(c)
	if err != nil {
		return common.SendValidationError(c, "query", err.Error())
	}

	categories, err := h.categoryService.ListCategories(c.Request().Context(), limit, skip)
	if err != nil {
		return common.SendServerError(c, "Failed to retrieve categories")
	}
	return c.JSON(http.StatusOK, categories)
}

// GetCategory handles GET /categories/:id
func (h *CategoryHandlers) GetCategory(c echo.Context) error {
	id, err := common.ParseID(c, "id")
	if err != nil {
		return common.SendClientError(c, err.Error())
	}

	category, err := h.categoryService.GetCategory(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrCategoryNotFound) {
			return common.SendNotFoundError(c, "Category")
		}
		return common.SendServerError(c, "Failed to retrieve category")
	}
	return c.JSON(http.StatusOK, category)
}

// CreateCategory handles POST /categories
func (h *CategoryHandlers) CreateCategory(c echo.Context) error {
	var req models.CategoryCreate
	if err := c.Bind(&req); err != nil {
		return common.SendClientError(c, "Invalid request format")
	}
	if err := common.ValidateRequiredString(req.Title, "title"); err != nil {
		return common.SendValidationError(c, "title", err.Error())
	}

	category, err := h.categoryService.CreateCategory(c.Request().Context(), &req)
	if err != nil {
		return common.SendServerError(c, "Failed to create category")
	}
	return c.JSON(http.StatusCreated, category)
}

// UpdateCategory handles PUT /categories/:id
func (h *CategoryHandlers) UpdateCategory(c echo.Context) error {
	id, err := common.ParseID(c, "id")
	if err != nil {
		return common.SendClientError(c, err.Error())
	}

	var req models.CategoryUpdate
	if err := c.Bind(&req); err != nil {
		return common.SendClientError(c, "Invalid request format")
	}

	category, err := h.categoryService.UpdateCategory(c.Request().Context(), id, &req)
	if err != nil {
		if errors.Is(err, services.ErrCategoryNotFound) {
			return common.SendNotFoundError(c, "Category")
		}
		return common.SendServerError(c, "Failed to update category")
	}
	return c.JSON(http.StatusOK, category)
}

// DeleteCategory handles DELETE /categories/:id
func (h *CategoryHandlers) DeleteCategory(c echo.Context) error {
	id, err := common.ParseID(c, "id")
	if err != nil {
		return common.SendClientError(c, err.Error())
	}

	if err := h.categoryService.DeleteCategory(c.Request().Context(), id); err != nil {
		if errors.Is(err, services.ErrCategoryNotFound) {
			return common.SendNotFoundError(c, "Category")
		}
		return common.SendServerError(c, "Failed to delete category")
	}
	return c.JSON(http.StatusOK, map[string]string{
		"message": "Category deleted successfully",
	})
}
