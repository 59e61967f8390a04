package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pressline/pressline-backend/internal/services"
)

// LikeHandler handles HTTP requests related to story and comment likes
type LikeHandler struct {
	interactions *services.InteractionService
}

// NewLikeHandler creates a new LikeHandler
func NewLikeHandler(interactions *services.InteractionService) *LikeHandler {
	return &LikeHandler{interactions: interactions}
}

// RegisterLikeRoutes registers like-related routes
func (h *LikeHandler) RegisterLikeRoutes(g *echo.Group) {
	g.POST("/stories/:story_id/likes", h.LikeStory)
	g.DELETE("/stories/:story_id/likes", h.UnlikeStory)
	g.GET("/stories/:story_id/likes/status", h.GetLikeStatus)
	g.POST("/comments/:comment_id/likes", h.LikeComment)
	g.DELETE("/comments/:comment_id/likes", h.UnlikeComment)
}

// LikeStory handles liking a story
func (h *LikeHandler) LikeStory(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}
	storyID, err := parseIDParam(c, "story_id")
	if err != nil {
		return err
	}
	if svcErr := h.interactions.LikeStory(c.Request().Context(), currentUserID, storyID); svcErr != nil {
		return httpError(svcErr)
	}
	return c.JSON(http.StatusCreated, echo.Map{"success": true, "data": echo.Map{"liked": true}})
}

// UnlikeStory handles unliking a story
func (h *LikeHandler) UnlikeStory(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}
	storyID, err := parseIDParam(c, "story_id")
	if err != nil {
		return err
	}
	if svcErr := h.interactions.UnlikeStory(c.Request().Context(), currentUserID, storyID); svcErr != nil {
		return httpError(svcErr)
	}
	return c.NoContent(http.StatusNoContent)
}

// GetLikeStatus checks whether the caller has liked a story
func (h *LikeHandler) GetLikeStatus(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}
	storyID, err := parseIDParam(c, "story_id")
	if err != nil {
		return err
	}
	liked, svcErr := h.interactions.HasLikedStory(c.Request().Context(), currentUserID, storyID)
	if svcErr != nil {
		return httpError(svcErr)
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": echo.Map{"has_liked": liked}})
}

// LikeComment handles liking a comment
func (h *LikeHandler) LikeComment(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}
	commentID, err := parseIDParam(c, "comment_id")
	if err != nil {
		return err
	}
	if svcErr := h.interactions.LikeComment(c.Request().Context(), currentUserID, commentID); svcErr != nil {
		return httpError(svcErr)
	}
	return c.JSON(http.StatusCreated, echo.Map{"success": true, "data": echo.Map{"liked": true}})
}

// UnlikeComment handles unliking a comment
func (h *LikeHandler) UnlikeComment(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}
	commentID, err := parseIDParam(c, "comment_id")
	if err != nil {
		return err
	}
	if svcErr := h.interactions.UnlikeComment(c.Request().Context(), currentUserID, commentID); svcErr != nil {
		return httpError(svcErr)
	}
	return c.NoContent(http.StatusNoContent)
}
