package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pressline/pressline-backend/internal/models"
	"github.com/pressline/pressline-backend/internal/repositories"
)

// UserHandler handles profile HTTP requests
type UserHandler struct {
	store repositories.Store
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(store repositories.Store) *UserHandler {
	return &UserHandler{store: store}
}

// RegisterUserRoutes registers profile routes
func (h *UserHandler) RegisterUserRoutes(g *echo.Group) {
	g.GET("/users/:id", h.GetProfile)
	g.PUT("/users/me", h.UpdateProfile)
}

// GetProfile returns a user's public profile with author counters and
// derived follow counts
func (h *UserHandler) GetProfile(c echo.Context) error {
	userID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	user, getErr := h.store.Users().GetUserByID(userID)
	if getErr != nil {
		if errors.Is(getErr, repositories.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "User not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "Internal server error")
	}

	followers, _ := h.store.Follows().GetFollowersCount(userID)
	following, _ := h.store.Follows().GetFollowingCount(userID)

	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"data": echo.Map{
			"user": echo.Map{
				"id":               user.ID,
				"name":             user.Name,
				"bio":              user.Bio,
				"role":             user.Role,
				"total_view_count": user.TotalViewCount,
				"total_like_count": user.TotalLikeCount,
				"followers_count":  followers,
				"following_count":  following,
			},
		},
	})
}

// UpdateProfile updates the caller's own profile
func (h *UserHandler) UpdateProfile(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	var req models.UpdateProfileRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	user, err := h.store.Users().GetUserByID(currentUserID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Authenticated user not found in database")
	}
	if req.Name != "" {
		user.Name = req.Name
	}
	if req.Bio != "" {
		user.Bio = req.Bio
	}
	if err := h.store.Users().UpdateUser(user); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Internal server error")
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": echo.Map{"user": user}})
}
