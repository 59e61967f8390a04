package services

import (
	"context"

	"github.com/pressline/pressline-backend/internal/models"
	"github.com/pressline/pressline-backend/internal/repositories"
	"go.uber.org/zap"
)

// CommentService manages the comment tree of a story and its moderation
// state machine, which is independent of the story's publication status.
type CommentService struct {
	store         repositories.Store
	notifications *NotificationService
	logger        *zap.Logger
}

// NewCommentService creates a new CommentService
func NewCommentService(store repositories.Store, notifications *NotificationService, logger *zap.Logger) *CommentService {
	return &CommentService{store: store, notifications: notifications, logger: logger}
}

func (s *CommentService) caller(id uint) (*models.User, error) {
	user, err := s.store.Users().GetUserByID(id)
	if err != nil {
		return nil, translateStoreErr(err)
	}
	return user, nil
}

func (s *CommentService) activeComment(id uint) (*models.Comment, error) {
	comment, err := s.store.Comments().GetCommentByID(id)
	if err != nil {
		return nil, translateStoreErr(err)
	}
	if !comment.IsActive {
		return nil, ErrNotFound
	}
	return comment, nil
}

// Create persists a pending comment and bumps the story's comment counter by
// exactly one, whatever the nesting depth. A top-level comment notifies the
// story's author; a reply notifies the parent comment's author. Commenting
// on your own story, or replying to yourself, produces no notification.
func (s *CommentService) Create(ctx context.Context, callerID, storyID uint, req models.CreateCommentRequest) (*models.Comment, error) {
	caller, err := s.caller(callerID)
	if err != nil {
		return nil, err
	}
	story, err := s.store.Stories().GetStoryByID(storyID)
	if err != nil {
		return nil, translateStoreErr(err)
	}
	if !story.IsActive {
		return nil, ErrNotFound
	}

	var parent *models.Comment
	if req.ParentCommentID != nil {
		parent, err = s.activeComment(*req.ParentCommentID)
		if err != nil {
			return nil, err
		}
		if parent.StoryID != storyID {
			return nil, &ValidationError{Reason: "parent comment belongs to a different story"}
		}
	}

	comment := &models.Comment{
		Content:         req.Content,
		Status:          models.CommentStatusPending,
		IsActive:        true,
		AuthorID:        caller.ID,
		StoryID:         storyID,
		ParentCommentID: req.ParentCommentID,
	}
	err = s.store.Atomically(ctx, func(tx repositories.Store) error {
		if err := tx.Comments().CreateComment(comment); err != nil {
			return err
		}
		return tx.Stories().AddCommentCount(storyID, 1)
	})
	if err != nil {
		return nil, translateStoreErr(err)
	}

	commentRef := comment.ID
	storyRef := storyID
	if parent == nil {
		if story.AuthorID != caller.ID {
			s.notifications.Notify(ctx, story.AuthorID, "New comment",
				caller.Name+" commented on your story "+story.Title,
				models.NotificationTypeNewComment, &storyRef, &commentRef)
		}
	} else if parent.AuthorID != caller.ID {
		s.notifications.Notify(ctx, parent.AuthorID, "New reply",
			caller.Name+" replied to your comment",
			models.NotificationTypeReplyToComment, &storyRef, &commentRef)
	}
	return comment, nil
}

// Update edits a comment's content. Author only; the moderation status is
// not reset.
func (s *CommentService) Update(ctx context.Context, callerID, commentID uint, req models.UpdateCommentRequest) (*models.Comment, error) {
	caller, err := s.caller(callerID)
	if err != nil {
		return nil, err
	}
	comment, err := s.activeComment(commentID)
	if err != nil {
		return nil, err
	}
	if comment.AuthorID != caller.ID {
		return nil, ErrForbidden
	}

	comment.Content = req.Content
	if err := s.store.Comments().UpdateComment(comment); err != nil {
		return nil, translateStoreErr(err)
	}
	return comment, nil
}

// Delete soft-deactivates a comment and decrements the story's comment
// counter by exactly one, clamped at zero. Author or admin.
func (s *CommentService) Delete(ctx context.Context, callerID, commentID uint) error {
	caller, err := s.caller(callerID)
	if err != nil {
		return err
	}
	comment, err := s.activeComment(commentID)
	if err != nil {
		return err
	}
	if err := RequireOwnershipOrAdmin(caller, comment.AuthorID); err != nil {
		return err
	}

	comment.IsActive = false
	err = s.store.Atomically(ctx, func(tx repositories.Store) error {
		if err := tx.Comments().UpdateComment(comment); err != nil {
			return err
		}
		return tx.Stories().AddCommentCount(comment.StoryID, -1)
	})
	return translateStoreErr(err)
}

// Moderate sets a comment's moderation status. Admin only; counters are
// untouched.
func (s *CommentService) Moderate(ctx context.Context, callerID, commentID uint, decision models.CommentStatus) (*models.Comment, error) {
	caller, err := s.caller(callerID)
	if err != nil {
		return nil, err
	}
	if err := RequireRole(caller, models.RoleAdmin); err != nil {
		return nil, err
	}
	switch decision {
	case models.CommentStatusApproved, models.CommentStatusRejected, models.CommentStatusSpam:
	default:
		return nil, &ValidationError{Reason: "unknown moderation decision"}
	}
	comment, err := s.activeComment(commentID)
	if err != nil {
		return nil, err
	}

	comment.Status = decision
	if err := s.store.Comments().UpdateComment(comment); err != nil {
		return nil, translateStoreErr(err)
	}
	return comment, nil
}

// ListByStory returns the active comments of a story as a reply tree. The
// tree is rebuilt by grouping children by parent id; a reply whose parent
// was deleted surfaces as top-level so it stays reachable.
func (s *CommentService) ListByStory(ctx context.Context, storyID uint) ([]*models.CommentNode, error) {
	if _, err := s.store.Stories().GetStoryByID(storyID); err != nil {
		return nil, translateStoreErr(err)
	}
	comments, err := s.store.Comments().ListByStory(storyID)
	if err != nil {
		return nil, translateStoreErr(err)
	}

	nodes := make(map[uint]*models.CommentNode, len(comments))
	for i := range comments {
		nodes[comments[i].ID] = &models.CommentNode{Comment: comments[i]}
	}
	roots := make([]*models.CommentNode, 0, len(comments))
	for i := range comments {
		node := nodes[comments[i].ID]
		if pid := comments[i].ParentCommentID; pid != nil {
			if parent, ok := nodes[*pid]; ok {
				parent.Replies = append(parent.Replies, node)
				continue
			}
		}
		roots = append(roots, node)
	}
	return roots, nil
}

// ListForModeration returns active comments in the given moderation state
// for the admin review queue.
func (s *CommentService) ListForModeration(ctx context.Context, callerID uint, status models.CommentStatus, page, limit int) ([]models.Comment, int64, error) {
	caller, err := s.caller(callerID)
	if err != nil {
		return nil, 0, err
	}
	if err := RequireRole(caller, models.RoleAdmin); err != nil {
		return nil, 0, err
	}
	comments, total, err := s.store.Comments().ListByStatus(status, page, limit)
	if err != nil {
		return nil, 0, translateStoreErr(err)
	}
	return comments, total, nil
}
