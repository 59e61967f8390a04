package models

import "time"

// StoryStatus is the publication lifecycle state of a story.
type StoryStatus string

const (
	StoryStatusDraft         StoryStatus = "draft"
	StoryStatusPendingReview StoryStatus = "pending_review"
	StoryStatusPublished     StoryStatus = "published"
	StoryStatusRejected      StoryStatus = "rejected"
	// Archived is a reserved state; no service operation currently
	// transitions into it.
	StoryStatusArchived StoryStatus = "archived"
)

// Story represents a submitted article. ViewCount, LikeCount and CommentCount
// are denormalized counters moved in lockstep with their edge/child rows.
// PublishedAt is set exactly once, on the first transition into published.
type Story struct {
	ID              uint        `json:"id" gorm:"primaryKey"`
	Title           string      `json:"title"`
	Slug            string      `json:"slug" gorm:"uniqueIndex"`
	Summary         string      `json:"summary"`
	Body            string      `json:"body"`
	Status          StoryStatus `json:"status" gorm:"size:20;default:draft;index"`
	RejectionReason string      `json:"rejection_reason,omitempty"`
	PublishedAt     *time.Time  `json:"published_at,omitempty"`
	ViewCount       int64       `json:"view_count" gorm:"default:0"`
	LikeCount       int64       `json:"like_count" gorm:"default:0"`
	CommentCount    int64       `json:"comment_count" gorm:"default:0"`
	IsEditorPick    bool        `json:"is_editor_pick" gorm:"default:false"`
	IsActive        bool        `json:"is_active" gorm:"default:true;index"`
	AuthorID        uint        `json:"author_id" gorm:"index"`
	CategoryID      *uint       `json:"category_id,omitempty" gorm:"index"`
	CreatedAt       time.Time   `json:"created_at"`
	UpdatedAt       time.Time   `json:"updated_at"`
}

// CreateStoryRequest defines the request body for creating a story
type CreateStoryRequest struct {
	Title      string `json:"title" validate:"required,min=3,max=200"`
	Summary    string `json:"summary" validate:"omitempty,max=500"`
	Body       string `json:"body" validate:"required,min=1"`
	CategoryID *uint  `json:"category_id,omitempty"`
}

// UpdateStoryRequest defines the request body for editing a story's content
type UpdateStoryRequest struct {
	Title      string `json:"title,omitempty" validate:"omitempty,min=3,max=200"`
	Summary    string `json:"summary,omitempty" validate:"omitempty,max=500"`
	Body       string `json:"body,omitempty"`
	CategoryID *uint  `json:"category_id,omitempty"`
}

// RejectStoryRequest defines the request body for rejecting a story
type RejectStoryRequest struct {
	Reason string `json:"reason" validate:"omitempty,max=1000"`
}

// StoryListFilter narrows story listings. Zero values mean "no filter".
type StoryListFilter struct {
	Status     StoryStatus
	AuthorID   uint
	CategoryID uint
	EditorPick bool
}
