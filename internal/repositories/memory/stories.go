package memory

import (
	"sort"

	"github.com/pressline/pressline-backend/internal/models"
	"github.com/pressline/pressline-backend/internal/repositories"
)

type memoryStoryRepository MemoryStore

func (r *memoryStoryRepository) store() *MemoryStore { return (*MemoryStore)(r) }

func (r *memoryStoryRepository) CreateStory(story *models.Story) error {
	s := r.store()
	s.lock()
	defer s.unlock()

	for _, st := range s.data.stories {
		if st.Slug == story.Slug {
			return repositories.ErrDuplicate
		}
	}
	if story.ID == 0 {
		story.ID = s.allocID("story")
	}
	cp := *story
	s.data.stories[story.ID] = &cp
	return nil
}

func (r *memoryStoryRepository) GetStoryByID(id uint) (*models.Story, error) {
	s := r.store()
	s.lock()
	defer s.unlock()

	story, ok := s.data.stories[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	cp := *story
	return &cp, nil
}

func (r *memoryStoryRepository) GetStoryBySlug(slug string) (*models.Story, error) {
	s := r.store()
	s.lock()
	defer s.unlock()

	for _, st := range s.data.stories {
		if st.Slug == slug {
			cp := *st
			return &cp, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (r *memoryStoryRepository) UpdateStory(story *models.Story) error {
	s := r.store()
	s.lock()
	defer s.unlock()

	if _, ok := s.data.stories[story.ID]; !ok {
		return repositories.ErrNotFound
	}
	cp := *story
	s.data.stories[story.ID] = &cp
	return nil
}

func (r *memoryStoryRepository) ListStories(filter models.StoryListFilter, page, limit int) ([]models.Story, int64, error) {
	s := r.store()
	s.lock()
	defer s.unlock()

	var matched []models.Story
	for _, st := range s.data.stories {
		if !st.IsActive {
			continue
		}
		if filter.Status != "" && st.Status != filter.Status {
			continue
		}
		if filter.AuthorID != 0 && st.AuthorID != filter.AuthorID {
			continue
		}
		if filter.CategoryID != 0 && (st.CategoryID == nil || *st.CategoryID != filter.CategoryID) {
			continue
		}
		if filter.EditorPick && !st.IsEditorPick {
			continue
		}
		matched = append(matched, *st)
	}
	sort.Slice(matched, func(i, j int) bool {
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})

	total := int64(len(matched))
	return paginate(matched, page, limit), total, nil
}

func (r *memoryStoryRepository) SlugExists(slug string) (bool, error) {
	s := r.store()
	s.lock()
	defer s.unlock()

	for _, st := range s.data.stories {
		if st.Slug == slug {
			return true, nil
		}
	}
	return false, nil
}

func (r *memoryStoryRepository) IncrementViewCount(storyID uint) error {
	s := r.store()
	s.lock()
	defer s.unlock()

	story, ok := s.data.stories[storyID]
	if !ok {
		return repositories.ErrNotFound
	}
	story.ViewCount++
	return nil
}

func (r *memoryStoryRepository) AddLikeCount(storyID uint, delta int64) error {
	s := r.store()
	s.lock()
	defer s.unlock()

	story, ok := s.data.stories[storyID]
	if !ok {
		return repositories.ErrNotFound
	}
	story.LikeCount += delta
	if story.LikeCount < 0 {
		story.LikeCount = 0
	}
	return nil
}

func (r *memoryStoryRepository) AddCommentCount(storyID uint, delta int64) error {
	s := r.store()
	s.lock()
	defer s.unlock()

	story, ok := s.data.stories[storyID]
	if !ok {
		return repositories.ErrNotFound
	}
	story.CommentCount += delta
	if story.CommentCount < 0 {
		story.CommentCount = 0
	}
	return nil
}

type memoryCommentRepository MemoryStore

func (r *memoryCommentRepository) store() *MemoryStore { return (*MemoryStore)(r) }

func (r *memoryCommentRepository) CreateComment(comment *models.Comment) error {
	s := r.store()
	s.lock()
	defer s.unlock()

	if comment.ID == 0 {
		comment.ID = s.allocID("comment")
	}
	cp := *comment
	s.data.comments[comment.ID] = &cp
	return nil
}

func (r *memoryCommentRepository) GetCommentByID(id uint) (*models.Comment, error) {
	s := r.store()
	s.lock()
	defer s.unlock()

	comment, ok := s.data.comments[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	cp := *comment
	return &cp, nil
}

func (r *memoryCommentRepository) UpdateComment(comment *models.Comment) error {
	s := r.store()
	s.lock()
	defer s.unlock()

	if _, ok := s.data.comments[comment.ID]; !ok {
		return repositories.ErrNotFound
	}
	cp := *comment
	s.data.comments[comment.ID] = &cp
	return nil
}

func (r *memoryCommentRepository) ListByStory(storyID uint) ([]models.Comment, error) {
	s := r.store()
	s.lock()
	defer s.unlock()

	var comments []models.Comment
	for _, c := range s.data.comments {
		if c.StoryID == storyID && c.IsActive {
			comments = append(comments, *c)
		}
	}
	sortOldestFirst(comments)
	return comments, nil
}

func (r *memoryCommentRepository) ListByStatus(status models.CommentStatus, page, limit int) ([]models.Comment, int64, error) {
	s := r.store()
	s.lock()
	defer s.unlock()

	var comments []models.Comment
	for _, c := range s.data.comments {
		if c.Status == status && c.IsActive {
			comments = append(comments, *c)
		}
	}
	sortOldestFirst(comments)
	total := int64(len(comments))
	return paginate(comments, page, limit), total, nil
}

func (r *memoryCommentRepository) AddLikeCount(commentID uint, delta int64) error {
	s := r.store()
	s.lock()
	defer s.unlock()

	comment, ok := s.data.comments[commentID]
	if !ok {
		return repositories.ErrNotFound
	}
	comment.LikeCount += delta
	if comment.LikeCount < 0 {
		comment.LikeCount = 0
	}
	return nil
}
