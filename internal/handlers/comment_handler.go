package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pressline/pressline-backend/internal/models"
	"github.com/pressline/pressline-backend/internal/services"
)

// CommentHandler handles comment-related HTTP requests
type CommentHandler struct {
	commentService *services.CommentService
}

// NewCommentHandler creates a new CommentHandler
func NewCommentHandler(commentService *services.CommentService) *CommentHandler {
	return &CommentHandler{commentService: commentService}
}

// RegisterCommentRoutes registers comment-related routes
func (h *CommentHandler) RegisterCommentRoutes(g *echo.Group) {
	g.GET("/stories/:story_id/comments", h.ListComments)
	g.POST("/stories/:story_id/comments", h.CreateComment)
	g.PUT("/comments/:id", h.UpdateComment)
	g.DELETE("/comments/:id", h.DeleteComment)
	g.POST("/comments/:id/moderate", h.ModerateComment)
	g.GET("/comments/moderation", h.ListForModeration)
}

// ListComments returns a story's active comments as a reply tree
func (h *CommentHandler) ListComments(c echo.Context) error {
	storyID, err := parseIDParam(c, "story_id")
	if err != nil {
		return err
	}
	comments, svcErr := h.commentService.ListByStory(c.Request().Context(), storyID)
	if svcErr != nil {
		return httpError(svcErr)
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": echo.Map{"comments": comments}})
}

// CreateComment creates a comment or a reply on a story
func (h *CommentHandler) CreateComment(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}
	storyID, err := parseIDParam(c, "story_id")
	if err != nil {
		return err
	}

	var req models.CreateCommentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	comment, svcErr := h.commentService.Create(c.Request().Context(), currentUserID, storyID, req)
	if svcErr != nil {
		return httpError(svcErr)
	}
	return c.JSON(http.StatusCreated, echo.Map{"success": true, "data": echo.Map{"comment": comment}})
}

// UpdateComment edits a comment's content
func (h *CommentHandler) UpdateComment(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}
	commentID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	var req models.UpdateCommentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	comment, svcErr := h.commentService.Update(c.Request().Context(), currentUserID, commentID, req)
	if svcErr != nil {
		return httpError(svcErr)
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": echo.Map{"comment": comment}})
}

// DeleteComment soft-deletes a comment
func (h *CommentHandler) DeleteComment(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}
	commentID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}
	if svcErr := h.commentService.Delete(c.Request().Context(), currentUserID, commentID); svcErr != nil {
		return httpError(svcErr)
	}
	return c.NoContent(http.StatusNoContent)
}

// ModerateComment applies a moderation decision (admin)
func (h *CommentHandler) ModerateComment(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}
	commentID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	var req models.ModerateCommentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	comment, svcErr := h.commentService.Moderate(c.Request().Context(), currentUserID, commentID, req.Decision)
	if svcErr != nil {
		return httpError(svcErr)
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": echo.Map{"comment": comment}})
}

// ListForModeration returns the admin review queue for a moderation status
func (h *CommentHandler) ListForModeration(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}
	page, limit := pageParams(c)
	status := models.CommentStatus(c.QueryParam("status"))
	if status == "" {
		status = models.CommentStatusPending
	}

	comments, total, svcErr := h.commentService.ListForModeration(c.Request().Context(), currentUserID, status, page, limit)
	if svcErr != nil {
		return httpError(svcErr)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"data":    echo.Map{"comments": comments},
		"meta":    echo.Map{"totalItems": total, "currentPage": page, "itemsPerPage": limit},
	})
}
