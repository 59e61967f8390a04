package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pressline/pressline-backend/internal/services"
)

// SavedStoryHandler handles bookmark HTTP requests
type SavedStoryHandler struct {
	interactions *services.InteractionService
}

// NewSavedStoryHandler creates a new SavedStoryHandler
func NewSavedStoryHandler(interactions *services.InteractionService) *SavedStoryHandler {
	return &SavedStoryHandler{interactions: interactions}
}

// RegisterSavedStoryRoutes registers bookmark routes
func (h *SavedStoryHandler) RegisterSavedStoryRoutes(g *echo.Group) {
	g.POST("/stories/:story_id/save", h.SaveStory)
	g.DELETE("/stories/:story_id/save", h.UnsaveStory)
	g.GET("/saved-stories", h.ListSavedStories)
}

// SaveStory bookmarks a story
func (h *SavedStoryHandler) SaveStory(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}
	storyID, err := parseIDParam(c, "story_id")
	if err != nil {
		return err
	}
	if svcErr := h.interactions.SaveStory(c.Request().Context(), currentUserID, storyID); svcErr != nil {
		return httpError(svcErr)
	}
	return c.JSON(http.StatusCreated, echo.Map{"success": true, "data": echo.Map{"saved": true}})
}

// UnsaveStory removes a bookmark
func (h *SavedStoryHandler) UnsaveStory(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}
	storyID, err := parseIDParam(c, "story_id")
	if err != nil {
		return err
	}
	if svcErr := h.interactions.UnsaveStory(c.Request().Context(), currentUserID, storyID); svcErr != nil {
		return httpError(svcErr)
	}
	return c.NoContent(http.StatusNoContent)
}

// ListSavedStories returns the caller's active bookmarks
func (h *SavedStoryHandler) ListSavedStories(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}
	stories, svcErr := h.interactions.ListSavedStories(c.Request().Context(), currentUserID)
	if svcErr != nil {
		return httpError(svcErr)
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": echo.Map{"stories": stories}})
}
