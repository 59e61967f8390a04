// Package memory provides an in-memory Store used by service tests and for
// credential-free local runs (STORAGE_DRIVER=memory). It mirrors the unique
// constraints of the Postgres schema so duplicate edges surface as
// ErrDuplicate from both backends.
package memory

import (
	"context"
	"sync"

	"github.com/pressline/pressline-backend/internal/models"
	"github.com/pressline/pressline-backend/internal/repositories"
)

type data struct {
	users         map[uint]*models.User
	categories    map[uint]*models.Category
	stories       map[uint]*models.Story
	comments      map[uint]*models.Comment
	likes         map[uint]*models.Like
	commentLikes  map[uint]*models.CommentLike
	follows       map[uint]*models.Follow
	savedStories  map[uint]*models.SavedStory
	notifications map[uint]*models.Notification
	nextID        map[string]uint
}

// MemoryStore implements repositories.Store over maps guarded by one mutex.
type MemoryStore struct {
	mu     *sync.Mutex
	data   *data
	locked bool // true inside Atomically, where the mutex is already held
}

// New creates an empty MemoryStore
func New() *MemoryStore {
	return &MemoryStore{
		mu: &sync.Mutex{},
		data: &data{
			users:         make(map[uint]*models.User),
			categories:    make(map[uint]*models.Category),
			stories:       make(map[uint]*models.Story),
			comments:      make(map[uint]*models.Comment),
			likes:         make(map[uint]*models.Like),
			commentLikes:  make(map[uint]*models.CommentLike),
			follows:       make(map[uint]*models.Follow),
			savedStories:  make(map[uint]*models.SavedStory),
			notifications: make(map[uint]*models.Notification),
			nextID:        make(map[string]uint),
		},
	}
}

func (s *MemoryStore) lock() {
	if !s.locked {
		s.mu.Lock()
	}
}

func (s *MemoryStore) unlock() {
	if !s.locked {
		s.mu.Unlock()
	}
}

func (s *MemoryStore) allocID(kind string) uint {
	s.data.nextID[kind]++
	return s.data.nextID[kind]
}

func (s *MemoryStore) Users() repositories.UserRepository         { return (*memoryUserRepository)(s) }
func (s *MemoryStore) Categories() repositories.CategoryRepository {
	return (*memoryCategoryRepository)(s)
}
func (s *MemoryStore) Stories() repositories.StoryRepository   { return (*memoryStoryRepository)(s) }
func (s *MemoryStore) Comments() repositories.CommentRepository { return (*memoryCommentRepository)(s) }
func (s *MemoryStore) Likes() repositories.LikeRepository       { return (*memoryLikeRepository)(s) }
func (s *MemoryStore) CommentLikes() repositories.CommentLikeRepository {
	return (*memoryCommentLikeRepository)(s)
}
func (s *MemoryStore) Follows() repositories.FollowRepository { return (*memoryFollowRepository)(s) }
func (s *MemoryStore) SavedStories() repositories.SavedStoryRepository {
	return (*memorySavedStoryRepository)(s)
}
func (s *MemoryStore) Notifications() repositories.NotificationRepository {
	return (*memoryNotificationRepository)(s)
}

// Atomically serializes fn against every other store operation. Rollback of
// partial writes is not simulated; services validate before mutating, so a
// failure mid-block only occurs on programmer error.
func (s *MemoryStore) Atomically(ctx context.Context, fn func(repositories.Store) error) error {
	if s.locked {
		return fn(s)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(&MemoryStore{mu: s.mu, data: s.data, locked: true})
}
