package services

import (
	"context"
	"fmt"

	"github.com/pressline/pressline-backend/internal/models"
	"github.com/pressline/pressline-backend/internal/repositories"
	"go.uber.org/zap"
)

// NotificationService is the single point every other component creates
// notifications through. Writes are best-effort: a failed insert is logged
// and never propagated to the triggering mutation.
type NotificationService struct {
	store  repositories.Store
	logger *zap.Logger
}

// NewNotificationService creates a new NotificationService
func NewNotificationService(store repositories.Store, logger *zap.Logger) *NotificationService {
	return &NotificationService{store: store, logger: logger}
}

// Notify creates one notification row for recipientID. The only validation
// is recipient existence. Failures are logged, not returned.
func (s *NotificationService) Notify(ctx context.Context, recipientID uint, title, message string, ntype models.NotificationType, relatedStoryID, relatedCommentID *uint) {
	if _, err := s.store.Users().GetUserByID(recipientID); err != nil {
		s.logger.Warn("notification skipped, recipient missing",
			zap.Uint("recipient_id", recipientID),
			zap.String("type", string(ntype)),
			zap.Error(err))
		return
	}

	notification := &models.Notification{
		RecipientID:      recipientID,
		Title:            title,
		Message:          message,
		Type:             ntype,
		RelatedStoryID:   relatedStoryID,
		RelatedCommentID: relatedCommentID,
	}
	if err := s.store.Notifications().CreateNotification(notification); err != nil {
		s.logger.Warn("notification insert failed",
			zap.Uint("recipient_id", recipientID),
			zap.String("type", string(ntype)),
			zap.Error(err))
	}
}

// FanOutStoryPublished delivers one story-published notification to every
// active follower of the author. Each insert is its own unit of work; a
// failure for one recipient is logged and does not stop the rest.
func (s *NotificationService) FanOutStoryPublished(ctx context.Context, story *models.Story, author *models.User) {
	followers, err := s.store.Follows().GetFollowers(author.ID)
	if err != nil {
		s.logger.Warn("publish fan-out aborted, follower lookup failed",
			zap.Uint("author_id", author.ID),
			zap.Uint("story_id", story.ID),
			zap.Error(err))
		return
	}

	title := "New story from " + author.Name
	message := fmt.Sprintf("%s published %q", author.Name, story.Title)
	storyID := story.ID
	for _, follower := range followers {
		s.Notify(ctx, follower.ID, title, message, models.NotificationTypeStoryPublished, &storyID, nil)
	}
}

// List returns the caller's notifications, newest first.
func (s *NotificationService) List(ctx context.Context, callerID uint, page, limit int) ([]models.Notification, int64, error) {
	notifications, total, err := s.store.Notifications().GetByRecipientID(callerID, page, limit)
	if err != nil {
		return nil, 0, translateStoreErr(err)
	}
	return notifications, total, nil
}

// UnreadCount returns the caller's unread notification count.
func (s *NotificationService) UnreadCount(ctx context.Context, callerID uint) (int64, error) {
	count, err := s.store.Notifications().GetUnreadCount(callerID)
	return count, translateStoreErr(err)
}

// MarkRead marks one notification read. Only the recipient may do so.
func (s *NotificationService) MarkRead(ctx context.Context, callerID, notificationID uint) error {
	notification, err := s.store.Notifications().GetNotificationByID(notificationID)
	if err != nil {
		return translateStoreErr(err)
	}
	if notification.RecipientID != callerID {
		return ErrForbidden
	}
	return translateStoreErr(s.store.Notifications().MarkAsRead(notificationID))
}

// MarkAllRead marks every unread notification of the caller read.
func (s *NotificationService) MarkAllRead(ctx context.Context, callerID uint) error {
	return translateStoreErr(s.store.Notifications().MarkAllAsRead(callerID))
}
