package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pressline/pressline-backend/internal/services"
)

// FollowHandler handles follow/unfollow HTTP requests
type FollowHandler struct {
	interactions *services.InteractionService
}

// NewFollowHandler creates a new FollowHandler
func NewFollowHandler(interactions *services.InteractionService) *FollowHandler {
	return &FollowHandler{interactions: interactions}
}

// RegisterFollowRoutes registers follow-related routes
func (h *FollowHandler) RegisterFollowRoutes(g *echo.Group) {
	g.POST("/users/:id/follow", h.FollowUser)
	g.DELETE("/users/:id/follow", h.UnfollowUser)
	g.GET("/users/:id/follow/status", h.GetFollowStatus)
}

// FollowUser follows a user
func (h *FollowHandler) FollowUser(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}
	targetID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}
	if svcErr := h.interactions.Follow(c.Request().Context(), currentUserID, targetID); svcErr != nil {
		return httpError(svcErr)
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": echo.Map{"following": true}})
}

// UnfollowUser unfollows a user
func (h *FollowHandler) UnfollowUser(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}
	targetID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}
	if svcErr := h.interactions.Unfollow(c.Request().Context(), currentUserID, targetID); svcErr != nil {
		return httpError(svcErr)
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": echo.Map{"following": false}})
}

// GetFollowStatus checks whether the caller follows a user
func (h *FollowHandler) GetFollowStatus(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}
	targetID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}
	following, svcErr := h.interactions.IsFollowing(c.Request().Context(), currentUserID, targetID)
	if svcErr != nil {
		return httpError(svcErr)
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": echo.Map{"following": following}})
}
