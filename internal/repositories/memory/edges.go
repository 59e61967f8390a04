package memory

import (
	"sort"

	"github.com/pressline/pressline-backend/internal/models"
	"github.com/pressline/pressline-backend/internal/repositories"
)

type memoryLikeRepository MemoryStore

func (r *memoryLikeRepository) store() *MemoryStore { return (*MemoryStore)(r) }

func (r *memoryLikeRepository) CreateLike(like *models.Like) error {
	s := r.store()
	s.lock()
	defer s.unlock()

	for _, l := range s.data.likes {
		if l.UserID == like.UserID && l.StoryID == like.StoryID {
			return repositories.ErrDuplicate
		}
	}
	if like.ID == 0 {
		like.ID = s.allocID("like")
	}
	cp := *like
	s.data.likes[like.ID] = &cp
	return nil
}

func (r *memoryLikeRepository) DeleteLike(userID, storyID uint) error {
	s := r.store()
	s.lock()
	defer s.unlock()

	for id, l := range s.data.likes {
		if l.UserID == userID && l.StoryID == storyID {
			delete(s.data.likes, id)
			return nil
		}
	}
	return repositories.ErrNotFound
}

func (r *memoryLikeRepository) HasLiked(userID, storyID uint) (bool, error) {
	s := r.store()
	s.lock()
	defer s.unlock()

	for _, l := range s.data.likes {
		if l.UserID == userID && l.StoryID == storyID {
			return true, nil
		}
	}
	return false, nil
}

type memoryCommentLikeRepository MemoryStore

func (r *memoryCommentLikeRepository) store() *MemoryStore { return (*MemoryStore)(r) }

func (r *memoryCommentLikeRepository) CreateCommentLike(like *models.CommentLike) error {
	s := r.store()
	s.lock()
	defer s.unlock()

	for _, l := range s.data.commentLikes {
		if l.UserID == like.UserID && l.CommentID == like.CommentID {
			return repositories.ErrDuplicate
		}
	}
	if like.ID == 0 {
		like.ID = s.allocID("comment_like")
	}
	cp := *like
	s.data.commentLikes[like.ID] = &cp
	return nil
}

func (r *memoryCommentLikeRepository) DeleteCommentLike(userID, commentID uint) error {
	s := r.store()
	s.lock()
	defer s.unlock()

	for id, l := range s.data.commentLikes {
		if l.UserID == userID && l.CommentID == commentID {
			delete(s.data.commentLikes, id)
			return nil
		}
	}
	return repositories.ErrNotFound
}

func (r *memoryCommentLikeRepository) HasLikedComment(userID, commentID uint) (bool, error) {
	s := r.store()
	s.lock()
	defer s.unlock()

	for _, l := range s.data.commentLikes {
		if l.UserID == userID && l.CommentID == commentID {
			return true, nil
		}
	}
	return false, nil
}

type memoryFollowRepository MemoryStore

func (r *memoryFollowRepository) store() *MemoryStore { return (*MemoryStore)(r) }

func (r *memoryFollowRepository) CreateFollow(follow *models.Follow) error {
	s := r.store()
	s.lock()
	defer s.unlock()

	for _, f := range s.data.follows {
		if f.FollowerID == follow.FollowerID && f.FollowedID == follow.FollowedID {
			return repositories.ErrDuplicate
		}
	}
	if follow.ID == 0 {
		follow.ID = s.allocID("follow")
	}
	cp := *follow
	s.data.follows[follow.ID] = &cp
	return nil
}

func (r *memoryFollowRepository) DeleteFollow(followerID, followedID uint) error {
	s := r.store()
	s.lock()
	defer s.unlock()

	for id, f := range s.data.follows {
		if f.FollowerID == followerID && f.FollowedID == followedID {
			delete(s.data.follows, id)
			return nil
		}
	}
	return repositories.ErrNotFound
}

func (r *memoryFollowRepository) IsFollowing(followerID, followedID uint) (bool, error) {
	s := r.store()
	s.lock()
	defer s.unlock()

	for _, f := range s.data.follows {
		if f.FollowerID == followerID && f.FollowedID == followedID {
			return true, nil
		}
	}
	return false, nil
}

func (r *memoryFollowRepository) GetFollowers(followedID uint) ([]models.User, error) {
	s := r.store()
	s.lock()
	defer s.unlock()

	var users []models.User
	for _, f := range s.data.follows {
		if f.FollowedID == followedID {
			if u, ok := s.data.users[f.FollowerID]; ok {
				users = append(users, *u)
			}
		}
	}
	sort.Slice(users, func(i, j int) bool { return users[i].ID < users[j].ID })
	return users, nil
}

func (r *memoryFollowRepository) GetFollowing(followerID uint) ([]models.User, error) {
	s := r.store()
	s.lock()
	defer s.unlock()

	var users []models.User
	for _, f := range s.data.follows {
		if f.FollowerID == followerID {
			if u, ok := s.data.users[f.FollowedID]; ok {
				users = append(users, *u)
			}
		}
	}
	sort.Slice(users, func(i, j int) bool { return users[i].ID < users[j].ID })
	return users, nil
}

func (r *memoryFollowRepository) GetFollowersCount(followedID uint) (int64, error) {
	s := r.store()
	s.lock()
	defer s.unlock()

	var count int64
	for _, f := range s.data.follows {
		if f.FollowedID == followedID {
			count++
		}
	}
	return count, nil
}

func (r *memoryFollowRepository) GetFollowingCount(followerID uint) (int64, error) {
	s := r.store()
	s.lock()
	defer s.unlock()

	var count int64
	for _, f := range s.data.follows {
		if f.FollowerID == followerID {
			count++
		}
	}
	return count, nil
}

type memorySavedStoryRepository MemoryStore

func (r *memorySavedStoryRepository) store() *MemoryStore { return (*MemoryStore)(r) }

func (r *memorySavedStoryRepository) CreateSavedStory(saved *models.SavedStory) error {
	s := r.store()
	s.lock()
	defer s.unlock()

	for _, sv := range s.data.savedStories {
		if sv.UserID == saved.UserID && sv.StoryID == saved.StoryID {
			return repositories.ErrDuplicate
		}
	}
	if saved.ID == 0 {
		saved.ID = s.allocID("saved_story")
	}
	cp := *saved
	s.data.savedStories[saved.ID] = &cp
	return nil
}

func (r *memorySavedStoryRepository) GetSavedStory(userID, storyID uint) (*models.SavedStory, error) {
	s := r.store()
	s.lock()
	defer s.unlock()

	for _, sv := range s.data.savedStories {
		if sv.UserID == userID && sv.StoryID == storyID {
			cp := *sv
			return &cp, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (r *memorySavedStoryRepository) UpdateSavedStory(saved *models.SavedStory) error {
	s := r.store()
	s.lock()
	defer s.unlock()

	if _, ok := s.data.savedStories[saved.ID]; !ok {
		return repositories.ErrNotFound
	}
	cp := *saved
	s.data.savedStories[saved.ID] = &cp
	return nil
}

func (r *memorySavedStoryRepository) ListSavedByUser(userID uint) ([]models.SavedStory, error) {
	s := r.store()
	s.lock()
	defer s.unlock()

	var saved []models.SavedStory
	for _, sv := range s.data.savedStories {
		if sv.UserID == userID && sv.IsActive {
			saved = append(saved, *sv)
		}
	}
	sort.Slice(saved, func(i, j int) bool { return saved[i].CreatedAt.After(saved[j].CreatedAt) })
	return saved, nil
}
