package models

import "time"

// CommentStatus is the moderation state of a comment. It is independent of
// the owning story's publication status.
type CommentStatus string

const (
	CommentStatusPending  CommentStatus = "pending"
	CommentStatusApproved CommentStatus = "approved"
	CommentStatusRejected CommentStatus = "rejected"
	CommentStatusSpam     CommentStatus = "spam"
)

// Comment represents a comment on a story. Replies reference their parent via
// ParentCommentID; a reply always belongs to the same story as its parent.
type Comment struct {
	ID              uint          `json:"id" gorm:"primaryKey"`
	Content         string        `json:"content"`
	Status          CommentStatus `json:"status" gorm:"size:10;default:pending;index"`
	LikeCount       int64         `json:"like_count" gorm:"default:0"`
	IsActive        bool          `json:"is_active" gorm:"default:true;index"`
	AuthorID        uint          `json:"author_id" gorm:"index"`
	StoryID         uint          `json:"story_id" gorm:"index"`
	ParentCommentID *uint         `json:"parent_comment_id,omitempty" gorm:"index"`
	CreatedAt       time.Time     `json:"created_at"`
	UpdatedAt       time.Time     `json:"updated_at"`
}

// CommentNode is a comment with its direct replies, built on read by grouping
// children by parent id.
type CommentNode struct {
	Comment
	Replies []*CommentNode `json:"replies"`
}

// CreateCommentRequest defines the request body for creating a new comment
type CreateCommentRequest struct {
	Content         string `json:"content" validate:"required,min=1,max=2000"`
	ParentCommentID *uint  `json:"parent_comment_id,omitempty"`
}

// UpdateCommentRequest defines the request body for updating an existing comment
type UpdateCommentRequest struct {
	Content string `json:"content" validate:"required,min=1,max=2000"`
}

// ModerateCommentRequest defines the request body for a moderation decision
type ModerateCommentRequest struct {
	Decision CommentStatus `json:"decision" validate:"required,oneof=approved rejected spam"`
}
