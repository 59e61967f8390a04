package handlers

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/pressline/pressline-backend/internal/models"
	"github.com/pressline/pressline-backend/internal/services"
)

// StoryHandler handles story-related HTTP requests
type StoryHandler struct {
	storyService *services.StoryService
}

// NewStoryHandler creates a new StoryHandler
func NewStoryHandler(storyService *services.StoryService) *StoryHandler {
	return &StoryHandler{storyService: storyService}
}

// RegisterStoryRoutes registers story-related routes
func (h *StoryHandler) RegisterStoryRoutes(g *echo.Group) {
	g.GET("/stories", h.ListStories)
	g.GET("/stories/:id", h.GetStory)
	g.POST("/stories", h.CreateStory)
	g.PUT("/stories/:id", h.UpdateStory)
	g.DELETE("/stories/:id", h.DeleteStory)
	g.POST("/stories/:id/publish", h.PublishStory)
	g.POST("/stories/:id/approve", h.ApproveStory)
	g.POST("/stories/:id/reject", h.RejectStory)
	g.POST("/stories/:id/editor-pick", h.ToggleEditorPick)
}

// ListStories returns active stories, optionally filtered
func (h *StoryHandler) ListStories(c echo.Context) error {
	page, limit := pageParams(c)
	filter := models.StoryListFilter{
		Status:     models.StoryStatus(c.QueryParam("status")),
		EditorPick: c.QueryParam("editor_pick") == "true",
	}
	if raw := c.QueryParam("author_id"); raw != "" {
		if authorID, err := strconv.ParseUint(raw, 10, 32); err == nil {
			filter.AuthorID = uint(authorID)
		}
	}
	if raw := c.QueryParam("category_id"); raw != "" {
		if categoryID, err := strconv.ParseUint(raw, 10, 32); err == nil {
			filter.CategoryID = uint(categoryID)
		}
	}

	stories, total, err := h.storyService.List(c.Request().Context(), filter, page, limit)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"data":    echo.Map{"stories": stories},
		"meta":    echo.Map{"totalItems": total, "currentPage": page, "itemsPerPage": limit},
	})
}

// GetStory returns a single story and records the view
func (h *StoryHandler) GetStory(c echo.Context) error {
	storyID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}
	story, svcErr := h.storyService.View(c.Request().Context(), storyID)
	if svcErr != nil {
		return httpError(svcErr)
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": echo.Map{"story": story}})
}

// CreateStory creates a new draft
func (h *StoryHandler) CreateStory(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	var req models.CreateStoryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	story, err := h.storyService.Create(c.Request().Context(), currentUserID, req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, echo.Map{"success": true, "data": echo.Map{"story": story}})
}

// UpdateStory edits a draft or rejected story
func (h *StoryHandler) UpdateStory(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}
	storyID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	var req models.UpdateStoryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	story, svcErr := h.storyService.Update(c.Request().Context(), currentUserID, storyID, req)
	if svcErr != nil {
		return httpError(svcErr)
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": echo.Map{"story": story}})
}

// DeleteStory soft-deletes a story
func (h *StoryHandler) DeleteStory(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}
	storyID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}
	if svcErr := h.storyService.Delete(c.Request().Context(), currentUserID, storyID); svcErr != nil {
		return httpError(svcErr)
	}
	return c.NoContent(http.StatusNoContent)
}

// PublishStory submits a story for review
func (h *StoryHandler) PublishStory(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}
	storyID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}
	story, svcErr := h.storyService.Publish(c.Request().Context(), currentUserID, storyID)
	if svcErr != nil {
		return httpError(svcErr)
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": echo.Map{"story": story}})
}

// ApproveStory approves a story under review (admin)
func (h *StoryHandler) ApproveStory(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}
	storyID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}
	story, svcErr := h.storyService.Approve(c.Request().Context(), currentUserID, storyID)
	if svcErr != nil {
		return httpError(svcErr)
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": echo.Map{"story": story}})
}

// RejectStory rejects a story under review (admin)
func (h *StoryHandler) RejectStory(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}
	storyID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	var req models.RejectStoryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	story, svcErr := h.storyService.Reject(c.Request().Context(), currentUserID, storyID, req.Reason)
	if svcErr != nil {
		return httpError(svcErr)
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": echo.Map{"story": story}})
}

// ToggleEditorPick flips the editor-pick flag (admin)
func (h *StoryHandler) ToggleEditorPick(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}
	storyID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}
	story, svcErr := h.storyService.ToggleEditorPick(c.Request().Context(), currentUserID, storyID)
	if svcErr != nil {
		return httpError(svcErr)
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": echo.Map{"story": story}})
}
