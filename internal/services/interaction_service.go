package services

import (
	"context"
	"errors"

	"github.com/pressline/pressline-backend/internal/models"
	"github.com/pressline/pressline-backend/internal/repositories"
	"go.uber.org/zap"
)

// InteractionService implements the like/follow/save toggles. Every add
// fails with ErrConflict when the edge already exists; every remove is an
// idempotent no-op when it does not. An edge mutation and its counter delta
// are applied as one atomic unit.
type InteractionService struct {
	store         repositories.Store
	notifications *NotificationService
	logger        *zap.Logger
}

// NewInteractionService creates a new InteractionService
func NewInteractionService(store repositories.Store, notifications *NotificationService, logger *zap.Logger) *InteractionService {
	return &InteractionService{store: store, notifications: notifications, logger: logger}
}

func (s *InteractionService) caller(id uint) (*models.User, error) {
	user, err := s.store.Users().GetUserByID(id)
	if err != nil {
		return nil, translateStoreErr(err)
	}
	return user, nil
}

func (s *InteractionService) activeStory(id uint) (*models.Story, error) {
	story, err := s.store.Stories().GetStoryByID(id)
	if err != nil {
		return nil, translateStoreErr(err)
	}
	if !story.IsActive {
		return nil, ErrNotFound
	}
	return story, nil
}

// LikeStory adds a like edge and moves the story's like counter and the
// author's total together. The unique index on (user_id, story_id) is the
// concurrency guard; a racing duplicate surfaces as ErrConflict. The story's
// author is notified unless they liked their own story.
func (s *InteractionService) LikeStory(ctx context.Context, callerID, storyID uint) error {
	caller, err := s.caller(callerID)
	if err != nil {
		return err
	}
	story, err := s.activeStory(storyID)
	if err != nil {
		return err
	}

	err = s.store.Atomically(ctx, func(tx repositories.Store) error {
		if err := tx.Likes().CreateLike(&models.Like{UserID: caller.ID, StoryID: story.ID}); err != nil {
			return err
		}
		if err := tx.Stories().AddLikeCount(story.ID, 1); err != nil {
			return err
		}
		return tx.Users().AddTotalLikes(story.AuthorID, 1)
	})
	if err != nil {
		return translateStoreErr(err)
	}

	if story.AuthorID != caller.ID {
		storyRef := story.ID
		s.notifications.Notify(ctx, story.AuthorID, "Story liked",
			caller.Name+" liked your story "+story.Title,
			models.NotificationTypeStoryLiked, &storyRef, nil)
	}
	return nil
}

// UnlikeStory removes the like edge and rolls the counters back, clamped at
// zero. Removing a like that does not exist is a no-op.
func (s *InteractionService) UnlikeStory(ctx context.Context, callerID, storyID uint) error {
	story, err := s.activeStory(storyID)
	if err != nil {
		return err
	}

	err = s.store.Atomically(ctx, func(tx repositories.Store) error {
		if err := tx.Likes().DeleteLike(callerID, story.ID); err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				return nil
			}
			return err
		}
		if err := tx.Stories().AddLikeCount(story.ID, -1); err != nil {
			return err
		}
		return tx.Users().AddTotalLikes(story.AuthorID, -1)
	})
	return translateStoreErr(err)
}

// HasLikedStory reports whether the caller has liked the story. Pure read.
func (s *InteractionService) HasLikedStory(ctx context.Context, callerID, storyID uint) (bool, error) {
	liked, err := s.store.Likes().HasLiked(callerID, storyID)
	return liked, translateStoreErr(err)
}

// LikeComment adds a like edge on a comment and bumps its counter. The
// comment's author is notified unless they liked their own comment.
func (s *InteractionService) LikeComment(ctx context.Context, callerID, commentID uint) error {
	caller, err := s.caller(callerID)
	if err != nil {
		return err
	}
	comment, err := s.store.Comments().GetCommentByID(commentID)
	if err != nil {
		return translateStoreErr(err)
	}
	if !comment.IsActive {
		return ErrNotFound
	}

	err = s.store.Atomically(ctx, func(tx repositories.Store) error {
		if err := tx.CommentLikes().CreateCommentLike(&models.CommentLike{UserID: caller.ID, CommentID: comment.ID}); err != nil {
			return err
		}
		return tx.Comments().AddLikeCount(comment.ID, 1)
	})
	if err != nil {
		return translateStoreErr(err)
	}

	if comment.AuthorID != caller.ID {
		storyRef := comment.StoryID
		commentRef := comment.ID
		s.notifications.Notify(ctx, comment.AuthorID, "Comment liked",
			caller.Name+" liked your comment",
			models.NotificationTypeCommentLiked, &storyRef, &commentRef)
	}
	return nil
}

// UnlikeComment removes a comment like; a missing edge is a no-op.
func (s *InteractionService) UnlikeComment(ctx context.Context, callerID, commentID uint) error {
	comment, err := s.store.Comments().GetCommentByID(commentID)
	if err != nil {
		return translateStoreErr(err)
	}

	err = s.store.Atomically(ctx, func(tx repositories.Store) error {
		if err := tx.CommentLikes().DeleteCommentLike(callerID, comment.ID); err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				return nil
			}
			return err
		}
		return tx.Comments().AddLikeCount(comment.ID, -1)
	})
	return translateStoreErr(err)
}

// Follow adds a follow edge toward another user. Following yourself is
// ErrConflict, as is following someone twice. The followed user is notified.
func (s *InteractionService) Follow(ctx context.Context, callerID, targetID uint) error {
	if callerID == targetID {
		return ErrConflict
	}
	caller, err := s.caller(callerID)
	if err != nil {
		return err
	}
	if _, err := s.caller(targetID); err != nil {
		return err
	}

	if err := s.store.Follows().CreateFollow(&models.Follow{FollowerID: caller.ID, FollowedID: targetID}); err != nil {
		return translateStoreErr(err)
	}

	s.notifications.Notify(ctx, targetID, "New follower",
		caller.Name+" started following you",
		models.NotificationTypeNewFollower, nil, nil)
	return nil
}

// Unfollow removes the follow edge; a missing edge is a no-op.
func (s *InteractionService) Unfollow(ctx context.Context, callerID, targetID uint) error {
	err := s.store.Follows().DeleteFollow(callerID, targetID)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil
	}
	return translateStoreErr(err)
}

// IsFollowing reports whether caller follows target. Pure read.
func (s *InteractionService) IsFollowing(ctx context.Context, callerID, targetID uint) (bool, error) {
	following, err := s.store.Follows().IsFollowing(callerID, targetID)
	return following, translateStoreErr(err)
}

// SaveStory bookmarks a story. A previously unsaved row is reactivated; an
// active one is ErrConflict.
func (s *InteractionService) SaveStory(ctx context.Context, callerID, storyID uint) error {
	if _, err := s.caller(callerID); err != nil {
		return err
	}
	story, err := s.activeStory(storyID)
	if err != nil {
		return err
	}

	saved, err := s.store.SavedStories().GetSavedStory(callerID, story.ID)
	switch {
	case err == nil:
		if saved.IsActive {
			return ErrConflict
		}
		saved.IsActive = true
		return translateStoreErr(s.store.SavedStories().UpdateSavedStory(saved))
	case errors.Is(err, repositories.ErrNotFound):
		return translateStoreErr(s.store.SavedStories().CreateSavedStory(&models.SavedStory{
			UserID:   callerID,
			StoryID:  story.ID,
			IsActive: true,
		}))
	default:
		return translateStoreErr(err)
	}
}

// UnsaveStory soft-deactivates the bookmark; a missing or inactive row is a
// no-op.
func (s *InteractionService) UnsaveStory(ctx context.Context, callerID, storyID uint) error {
	saved, err := s.store.SavedStories().GetSavedStory(callerID, storyID)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil
	}
	if err != nil {
		return translateStoreErr(err)
	}
	if !saved.IsActive {
		return nil
	}
	saved.IsActive = false
	return translateStoreErr(s.store.SavedStories().UpdateSavedStory(saved))
}

// ListSavedStories returns the caller's active bookmarks resolved to their
// stories, newest bookmark first. Stories deactivated since being saved are
// skipped.
func (s *InteractionService) ListSavedStories(ctx context.Context, callerID uint) ([]models.Story, error) {
	saved, err := s.store.SavedStories().ListSavedByUser(callerID)
	if err != nil {
		return nil, translateStoreErr(err)
	}
	stories := make([]models.Story, 0, len(saved))
	for _, sv := range saved {
		story, err := s.store.Stories().GetStoryByID(sv.StoryID)
		if err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				continue
			}
			return nil, translateStoreErr(err)
		}
		if story.IsActive {
			stories = append(stories, *story)
		}
	}
	return stories, nil
}
