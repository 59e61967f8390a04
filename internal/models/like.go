package models

import "time"

// Like represents a like on a story. The composite unique index is the
// concurrency guard: a duplicate insert surfaces as a constraint violation
// rather than a double-counted row.
type Like struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"user_id" gorm:"index;uniqueIndex:idx_user_story_like"`
	StoryID   uint      `json:"story_id" gorm:"index;uniqueIndex:idx_user_story_like"`
	CreatedAt time.Time `json:"created_at"`
}
