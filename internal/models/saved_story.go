package models

import "time"

// SavedStory represents a bookmarked story. Unsaving soft-deactivates the
// row instead of deleting it.
type SavedStory struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"user_id" gorm:"index;uniqueIndex:idx_user_story_save"`
	StoryID   uint      `json:"story_id" gorm:"index;uniqueIndex:idx_user_story_save"`
	IsActive  bool      `json:"is_active" gorm:"default:true"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
