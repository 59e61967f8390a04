package services

import (
	"context"
	"time"

	"github.com/pressline/pressline-backend/internal/models"
	"github.com/pressline/pressline-backend/internal/repositories"
	"go.uber.org/zap"
)

// storyTransitions lists the legal publication lifecycle moves. Archived is
// declared on the status enum but no operation transitions into it.
var storyTransitions = map[models.StoryStatus][]models.StoryStatus{
	models.StoryStatusDraft:         {models.StoryStatusPendingReview},
	models.StoryStatusRejected:      {models.StoryStatusPendingReview},
	models.StoryStatusPendingReview: {models.StoryStatusPublished, models.StoryStatusRejected},
}

func checkTransition(current, requested models.StoryStatus) error {
	for _, allowed := range storyTransitions[current] {
		if allowed == requested {
			return nil
		}
	}
	return &InvalidStateTransitionError{Current: current, Requested: requested}
}

// StoryService implements the publication state machine: draft ->
// pending_review -> published, with rejection and re-submission. Status
// moves and their flag changes are one atomic unit; the notification
// fan-out that follows a move is best-effort.
type StoryService struct {
	store         repositories.Store
	notifications *NotificationService
	logger        *zap.Logger
}

// NewStoryService creates a new StoryService
func NewStoryService(store repositories.Store, notifications *NotificationService, logger *zap.Logger) *StoryService {
	return &StoryService{store: store, notifications: notifications, logger: logger}
}

func (s *StoryService) caller(id uint) (*models.User, error) {
	user, err := s.store.Users().GetUserByID(id)
	if err != nil {
		return nil, translateStoreErr(err)
	}
	return user, nil
}

func (s *StoryService) activeStory(id uint) (*models.Story, error) {
	story, err := s.store.Stories().GetStoryByID(id)
	if err != nil {
		return nil, translateStoreErr(err)
	}
	if !story.IsActive {
		return nil, ErrNotFound
	}
	return story, nil
}

// Create yields a new draft owned by the caller. The slug is derived from
// the title; collisions get a numeric suffix.
func (s *StoryService) Create(ctx context.Context, authorID uint, req models.CreateStoryRequest) (*models.Story, error) {
	if _, err := s.caller(authorID); err != nil {
		return nil, err
	}
	if req.CategoryID != nil {
		if _, err := s.store.Categories().GetCategoryByID(*req.CategoryID); err != nil {
			return nil, translateStoreErr(err)
		}
	}

	slug, err := uniqueStorySlug(s.store.Stories(), req.Title)
	if err != nil {
		return nil, err
	}

	story := &models.Story{
		Title:      req.Title,
		Slug:       slug,
		Summary:    req.Summary,
		Body:       req.Body,
		Status:     models.StoryStatusDraft,
		IsActive:   true,
		AuthorID:   authorID,
		CategoryID: req.CategoryID,
	}
	if err := s.store.Stories().CreateStory(story); err != nil {
		return nil, translateStoreErr(err)
	}
	return story, nil
}

// Update edits a story's content. Only the author may edit, and only while
// the story sits in draft or rejected.
func (s *StoryService) Update(ctx context.Context, callerID, storyID uint, req models.UpdateStoryRequest) (*models.Story, error) {
	caller, err := s.caller(callerID)
	if err != nil {
		return nil, err
	}
	story, err := s.activeStory(storyID)
	if err != nil {
		return nil, err
	}
	if caller.ID != story.AuthorID {
		return nil, ErrForbidden
	}
	if story.Status != models.StoryStatusDraft && story.Status != models.StoryStatusRejected {
		return nil, ErrConflict
	}

	if req.Title != "" && req.Title != story.Title {
		story.Title = req.Title
		slug, err := uniqueStorySlug(s.store.Stories(), req.Title)
		if err != nil {
			return nil, err
		}
		story.Slug = slug
	}
	if req.Summary != "" {
		story.Summary = req.Summary
	}
	if req.Body != "" {
		story.Body = req.Body
	}
	if req.CategoryID != nil {
		if _, err := s.store.Categories().GetCategoryByID(*req.CategoryID); err != nil {
			return nil, translateStoreErr(err)
		}
		story.CategoryID = req.CategoryID
	}
	if err := s.store.Stories().UpdateStory(story); err != nil {
		return nil, translateStoreErr(err)
	}
	return story, nil
}

// Publish submits a draft or rejected story for review. Author only.
func (s *StoryService) Publish(ctx context.Context, callerID, storyID uint) (*models.Story, error) {
	caller, err := s.caller(callerID)
	if err != nil {
		return nil, err
	}
	story, err := s.activeStory(storyID)
	if err != nil {
		return nil, err
	}
	if caller.ID != story.AuthorID {
		return nil, ErrForbidden
	}
	if err := checkTransition(story.Status, models.StoryStatusPendingReview); err != nil {
		return nil, err
	}

	story.Status = models.StoryStatusPendingReview
	if err := s.store.Stories().UpdateStory(story); err != nil {
		return nil, translateStoreErr(err)
	}
	return story, nil
}

// Approve moves a story under review to published. Admin only. PublishedAt
// is set on the first approval and never overwritten. After the commit the
// author's active followers are notified, best effort.
func (s *StoryService) Approve(ctx context.Context, callerID, storyID uint) (*models.Story, error) {
	caller, err := s.caller(callerID)
	if err != nil {
		return nil, err
	}
	if err := RequireRole(caller, models.RoleAdmin); err != nil {
		return nil, err
	}
	story, err := s.activeStory(storyID)
	if err != nil {
		return nil, err
	}
	if err := checkTransition(story.Status, models.StoryStatusPublished); err != nil {
		return nil, err
	}

	story.Status = models.StoryStatusPublished
	story.RejectionReason = ""
	if story.PublishedAt == nil {
		now := time.Now()
		story.PublishedAt = &now
	}
	if err := s.store.Stories().UpdateStory(story); err != nil {
		return nil, translateStoreErr(err)
	}

	author, err := s.store.Users().GetUserByID(story.AuthorID)
	if err != nil {
		s.logger.Warn("publish fan-out skipped, author lookup failed",
			zap.Uint("story_id", story.ID), zap.Error(err))
		return story, nil
	}
	s.notifications.FanOutStoryPublished(ctx, story, author)
	return story, nil
}

// Reject moves a story under review to rejected. Admin only. The reason is
// advisory and stored on the story; the author is notified, best effort.
func (s *StoryService) Reject(ctx context.Context, callerID, storyID uint, reason string) (*models.Story, error) {
	caller, err := s.caller(callerID)
	if err != nil {
		return nil, err
	}
	if err := RequireRole(caller, models.RoleAdmin); err != nil {
		return nil, err
	}
	story, err := s.activeStory(storyID)
	if err != nil {
		return nil, err
	}
	if err := checkTransition(story.Status, models.StoryStatusRejected); err != nil {
		return nil, err
	}

	story.Status = models.StoryStatusRejected
	story.RejectionReason = reason
	if err := s.store.Stories().UpdateStory(story); err != nil {
		return nil, translateStoreErr(err)
	}

	storyRef := story.ID
	message := "Your story " + story.Title + " was not approved."
	if reason != "" {
		message += " Reason: " + reason
	}
	s.notifications.Notify(ctx, story.AuthorID, "Story rejected", message,
		models.NotificationTypeStoryRejected, &storyRef, nil)
	return story, nil
}

// ToggleEditorPick flips the editor-pick flag independent of status. Admin only.
func (s *StoryService) ToggleEditorPick(ctx context.Context, callerID, storyID uint) (*models.Story, error) {
	caller, err := s.caller(callerID)
	if err != nil {
		return nil, err
	}
	if err := RequireRole(caller, models.RoleAdmin); err != nil {
		return nil, err
	}
	story, err := s.activeStory(storyID)
	if err != nil {
		return nil, err
	}

	story.IsEditorPick = !story.IsEditorPick
	if err := s.store.Stories().UpdateStory(story); err != nil {
		return nil, translateStoreErr(err)
	}
	return story, nil
}

// Delete soft-deactivates a story. Author or admin. Children are kept; the
// story just disappears from every listing.
func (s *StoryService) Delete(ctx context.Context, callerID, storyID uint) error {
	caller, err := s.caller(callerID)
	if err != nil {
		return err
	}
	story, err := s.activeStory(storyID)
	if err != nil {
		return err
	}
	if err := RequireOwnershipOrAdmin(caller, story.AuthorID); err != nil {
		return err
	}

	story.IsActive = false
	return translateStoreErr(s.store.Stories().UpdateStory(story))
}

// Get returns a story without side effects.
func (s *StoryService) Get(ctx context.Context, storyID uint) (*models.Story, error) {
	return s.activeStory(storyID)
}

// View returns a story and records the read: the story's view counter and
// the author's total move together in one atomic unit.
func (s *StoryService) View(ctx context.Context, storyID uint) (*models.Story, error) {
	story, err := s.activeStory(storyID)
	if err != nil {
		return nil, err
	}

	err = s.store.Atomically(ctx, func(tx repositories.Store) error {
		if err := tx.Stories().IncrementViewCount(story.ID); err != nil {
			return err
		}
		return tx.Users().AddTotalViews(story.AuthorID, 1)
	})
	if err != nil {
		return nil, translateStoreErr(err)
	}
	story.ViewCount++
	return story, nil
}

// List returns active stories matching the filter, newest first.
func (s *StoryService) List(ctx context.Context, filter models.StoryListFilter, page, limit int) ([]models.Story, int64, error) {
	stories, total, err := s.store.Stories().ListStories(filter, page, limit)
	if err != nil {
		return nil, 0, translateStoreErr(err)
	}
	return stories, total, nil
}
