package repositories

import (
	"context"
	"errors"

	"github.com/pressline/pressline-backend/internal/models"
)

// Storage-level sentinel errors shared by every backend.
var (
	// ErrNotFound is returned when a referenced record does not exist.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicate is returned when an insert collides with a unique
	// constraint (duplicate edge, taken slug, taken email).
	ErrDuplicate = errors.New("duplicate record")
)

// Store aggregates every repository behind one handle. Atomically runs fn
// with a Store whose repositories share a single transaction: either every
// write inside fn is applied or none is. Edge mutations and their counter
// deltas always go through Atomically.
type Store interface {
	Users() UserRepository
	Categories() CategoryRepository
	Stories() StoryRepository
	Comments() CommentRepository
	Likes() LikeRepository
	CommentLikes() CommentLikeRepository
	Follows() FollowRepository
	SavedStories() SavedStoryRepository
	Notifications() NotificationRepository

	Atomically(ctx context.Context, fn func(Store) error) error
}

// UserRepository defines the interface for user data operations
type UserRepository interface {
	CreateUser(user *models.User) error
	GetUserByID(id uint) (*models.User, error)
	GetUserByEmail(email string) (*models.User, error)
	UpdateUser(user *models.User) error
	// AddTotalViews and AddTotalLikes move the denormalized author
	// counters; AddTotalLikes clamps at zero on negative deltas.
	AddTotalViews(userID uint, delta int64) error
	AddTotalLikes(userID uint, delta int64) error
}

// CategoryRepository defines the interface for category data operations
type CategoryRepository interface {
	CreateCategory(category *models.Category) error
	GetCategoryByID(id uint) (*models.Category, error)
	GetCategoryBySlug(slug string) (*models.Category, error)
	ListCategories() ([]models.Category, error)
}

// StoryRepository defines the interface for story data operations
type StoryRepository interface {
	CreateStory(story *models.Story) error
	GetStoryByID(id uint) (*models.Story, error)
	GetStoryBySlug(slug string) (*models.Story, error)
	UpdateStory(story *models.Story) error
	ListStories(filter models.StoryListFilter, page, limit int) ([]models.Story, int64, error)
	SlugExists(slug string) (bool, error)
	// Counter deltas. AddLikeCount and AddCommentCount clamp at zero.
	IncrementViewCount(storyID uint) error
	AddLikeCount(storyID uint, delta int64) error
	AddCommentCount(storyID uint, delta int64) error
}

// CommentRepository defines the interface for comment data operations
type CommentRepository interface {
	CreateComment(comment *models.Comment) error
	GetCommentByID(id uint) (*models.Comment, error)
	UpdateComment(comment *models.Comment) error
	// ListByStory returns the active comments of a story as a flat slice,
	// oldest first; the reply tree is rebuilt by the caller.
	ListByStory(storyID uint) ([]models.Comment, error)
	ListByStatus(status models.CommentStatus, page, limit int) ([]models.Comment, int64, error)
	AddLikeCount(commentID uint, delta int64) error
}

// LikeRepository defines the interface for story-like edge operations
type LikeRepository interface {
	CreateLike(like *models.Like) error
	// DeleteLike returns ErrNotFound when the edge does not exist.
	DeleteLike(userID, storyID uint) error
	HasLiked(userID, storyID uint) (bool, error)
}

// CommentLikeRepository defines the interface for comment-like edge operations
type CommentLikeRepository interface {
	CreateCommentLike(like *models.CommentLike) error
	DeleteCommentLike(userID, commentID uint) error
	HasLikedComment(userID, commentID uint) (bool, error)
}

// FollowRepository defines the interface for follow edge operations
type FollowRepository interface {
	CreateFollow(follow *models.Follow) error
	// DeleteFollow returns ErrNotFound when the edge does not exist.
	DeleteFollow(followerID, followedID uint) error
	IsFollowing(followerID, followedID uint) (bool, error)
	GetFollowers(followedID uint) ([]models.User, error)
	GetFollowing(followerID uint) ([]models.User, error)
	GetFollowersCount(followedID uint) (int64, error)
	GetFollowingCount(followerID uint) (int64, error)
}

// SavedStoryRepository defines the interface for saved-story edge operations
type SavedStoryRepository interface {
	CreateSavedStory(saved *models.SavedStory) error
	// GetSavedStory returns the row regardless of its active flag.
	GetSavedStory(userID, storyID uint) (*models.SavedStory, error)
	UpdateSavedStory(saved *models.SavedStory) error
	ListSavedByUser(userID uint) ([]models.SavedStory, error)
}

// NotificationRepository defines the interface for notification operations
type NotificationRepository interface {
	CreateNotification(notification *models.Notification) error
	GetNotificationByID(id uint) (*models.Notification, error)
	GetByRecipientID(recipientID uint, page, limit int) ([]models.Notification, int64, error)
	GetUnreadCount(recipientID uint) (int64, error)
	MarkAsRead(notificationID uint) error
	MarkAllAsRead(recipientID uint) error
}
