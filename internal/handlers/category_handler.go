package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pressline/pressline-backend/internal/models"
	"github.com/pressline/pressline-backend/internal/repositories"
	"github.com/pressline/pressline-backend/internal/services"
)

// CategoryHandler handles category HTTP requests
type CategoryHandler struct {
	store repositories.Store
}

// NewCategoryHandler creates a new CategoryHandler
func NewCategoryHandler(store repositories.Store) *CategoryHandler {
	return &CategoryHandler{store: store}
}

// RegisterCategoryRoutes registers category routes
func (h *CategoryHandler) RegisterCategoryRoutes(g *echo.Group) {
	g.GET("/categories", h.ListCategories)
	g.POST("/categories", h.CreateCategory)
}

// ListCategories returns all categories
func (h *CategoryHandler) ListCategories(c echo.Context) error {
	categories, err := h.store.Categories().ListCategories()
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Internal server error")
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": echo.Map{"categories": categories}})
}

// CreateCategory creates a new category (admin)
func (h *CategoryHandler) CreateCategory(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}
	caller, err := h.store.Users().GetUserByID(currentUserID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Authenticated user not found in database")
	}
	if !caller.IsAdmin() {
		return echo.NewHTTPError(http.StatusForbidden, "Forbidden")
	}

	var req models.CreateCategoryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	category := &models.Category{
		Name: req.Name,
		Slug: services.Slugify(req.Name),
	}
	if err := h.store.Categories().CreateCategory(category); err != nil {
		if errors.Is(err, repositories.ErrDuplicate) {
			return echo.NewHTTPError(http.StatusConflict, "Category already exists")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "Internal server error")
	}
	return c.JSON(http.StatusCreated, echo.Map{"success": true, "data": echo.Map{"category": category}})
}
