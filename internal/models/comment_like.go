package models

import "time"

// CommentLike represents a like on a comment
type CommentLike struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"user_id" gorm:"index;uniqueIndex:idx_user_comment_like"`
	CommentID uint      `json:"comment_id" gorm:"index;uniqueIndex:idx_user_comment_like"`
	CreatedAt time.Time `json:"created_at"`
}
