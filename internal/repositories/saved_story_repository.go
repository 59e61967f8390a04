package repositories

import (
	"github.com/pressline/pressline-backend/internal/models"
	"gorm.io/gorm"
)

// postgresSavedStoryRepository implements SavedStoryRepository for PostgreSQL
type postgresSavedStoryRepository struct {
	db *gorm.DB
}

func (r *postgresSavedStoryRepository) CreateSavedStory(saved *models.SavedStory) error {
	return translateError(r.db.Create(saved).Error)
}

func (r *postgresSavedStoryRepository) GetSavedStory(userID, storyID uint) (*models.SavedStory, error) {
	var saved models.SavedStory
	if err := r.db.Where("user_id = ? AND story_id = ?", userID, storyID).First(&saved).Error; err != nil {
		return nil, translateError(err)
	}
	return &saved, nil
}

func (r *postgresSavedStoryRepository) UpdateSavedStory(saved *models.SavedStory) error {
	return translateError(r.db.Save(saved).Error)
}

func (r *postgresSavedStoryRepository) ListSavedByUser(userID uint) ([]models.SavedStory, error) {
	var saved []models.SavedStory
	err := r.db.Where("user_id = ? AND is_active = ?", userID, true).
		Order("created_at DESC").Find(&saved).Error
	return saved, translateError(err)
}
