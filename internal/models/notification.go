package models

import "time"

// NotificationType enumerates the events a notification can describe.
type NotificationType string

const (
	NotificationTypeNewComment     NotificationType = "new-comment"
	NotificationTypeReplyToComment NotificationType = "reply-to-comment"
	NotificationTypeCommentLiked   NotificationType = "comment-liked"
	NotificationTypeStoryLiked     NotificationType = "story-liked"
	NotificationTypeStoryPublished NotificationType = "story-published"
	NotificationTypeStoryRejected  NotificationType = "story-rejected"
	NotificationTypeNewFollower    NotificationType = "new-follower"
	NotificationTypeGeneric        NotificationType = "generic"
)

// Notification represents a user notification. Rows are created only as a
// side effect of another mutation; after creation only IsRead changes.
type Notification struct {
	ID               uint             `json:"id" gorm:"primaryKey"`
	RecipientID      uint             `json:"recipient_id" gorm:"index"`
	Title            string           `json:"title"`
	Message          string           `json:"message"`
	Type             NotificationType `json:"type" gorm:"size:30;index"`
	IsRead           bool             `json:"is_read" gorm:"default:false;index"`
	RelatedStoryID   *uint            `json:"related_story_id,omitempty"`
	RelatedCommentID *uint            `json:"related_comment_id,omitempty"`
	CreatedAt        time.Time        `json:"created_at" gorm:"index"`
}
