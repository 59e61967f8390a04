package repositories

import (
	"github.com/pressline/pressline-backend/internal/models"
	"gorm.io/gorm"
)

// postgresStoryRepository implements StoryRepository for PostgreSQL
type postgresStoryRepository struct {
	db *gorm.DB
}

func (r *postgresStoryRepository) CreateStory(story *models.Story) error {
	return translateError(r.db.Create(story).Error)
}

func (r *postgresStoryRepository) GetStoryByID(id uint) (*models.Story, error) {
	var story models.Story
	if err := r.db.First(&story, id).Error; err != nil {
		return nil, translateError(err)
	}
	return &story, nil
}

func (r *postgresStoryRepository) GetStoryBySlug(slug string) (*models.Story, error) {
	var story models.Story
	if err := r.db.Where("slug = ?", slug).First(&story).Error; err != nil {
		return nil, translateError(err)
	}
	return &story, nil
}

func (r *postgresStoryRepository) UpdateStory(story *models.Story) error {
	return translateError(r.db.Save(story).Error)
}

// ListStories returns active stories matching the filter, newest first.
func (r *postgresStoryRepository) ListStories(filter models.StoryListFilter, page, limit int) ([]models.Story, int64, error) {
	q := r.db.Model(&models.Story{}).Where("is_active = ?", true)
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}
	if filter.AuthorID != 0 {
		q = q.Where("author_id = ?", filter.AuthorID)
	}
	if filter.CategoryID != 0 {
		q = q.Where("category_id = ?", filter.CategoryID)
	}
	if filter.EditorPick {
		q = q.Where("is_editor_pick = ?", true)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, translateError(err)
	}

	var stories []models.Story
	offset := (page - 1) * limit
	err := q.Order("created_at DESC").Offset(offset).Limit(limit).Find(&stories).Error
	return stories, total, translateError(err)
}

func (r *postgresStoryRepository) SlugExists(slug string) (bool, error) {
	var count int64
	if err := r.db.Model(&models.Story{}).Where("slug = ?", slug).Count(&count).Error; err != nil {
		return false, translateError(err)
	}
	return count > 0, nil
}

func (r *postgresStoryRepository) IncrementViewCount(storyID uint) error {
	return translateError(r.db.Model(&models.Story{}).Where("id = ?", storyID).
		UpdateColumn("view_count", gorm.Expr("view_count + 1")).Error)
}

func (r *postgresStoryRepository) AddLikeCount(storyID uint, delta int64) error {
	return translateError(r.db.Model(&models.Story{}).Where("id = ?", storyID).
		UpdateColumn("like_count", gorm.Expr("GREATEST(like_count + ?, 0)", delta)).Error)
}

func (r *postgresStoryRepository) AddCommentCount(storyID uint, delta int64) error {
	return translateError(r.db.Model(&models.Story{}).Where("id = ?", storyID).
		UpdateColumn("comment_count", gorm.Expr("GREATEST(comment_count + ?, 0)", delta)).Error)
}
