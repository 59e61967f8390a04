package repositories

import (
	"github.com/pressline/pressline-backend/internal/models"
	"gorm.io/gorm"
)

// postgresCommentRepository implements CommentRepository for PostgreSQL
type postgresCommentRepository struct {
	db *gorm.DB
}

func (r *postgresCommentRepository) CreateComment(comment *models.Comment) error {
	return translateError(r.db.Create(comment).Error)
}

func (r *postgresCommentRepository) GetCommentByID(id uint) (*models.Comment, error) {
	var comment models.Comment
	if err := r.db.First(&comment, id).Error; err != nil {
		return nil, translateError(err)
	}
	return &comment, nil
}

func (r *postgresCommentRepository) UpdateComment(comment *models.Comment) error {
	return translateError(r.db.Save(comment).Error)
}

func (r *postgresCommentRepository) ListByStory(storyID uint) ([]models.Comment, error) {
	var comments []models.Comment
	err := r.db.Where("story_id = ? AND is_active = ?", storyID, true).
		Order("created_at ASC").Find(&comments).Error
	return comments, translateError(err)
}

func (r *postgresCommentRepository) ListByStatus(status models.CommentStatus, page, limit int) ([]models.Comment, int64, error) {
	q := r.db.Model(&models.Comment{}).Where("status = ? AND is_active = ?", status, true)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, translateError(err)
	}

	var comments []models.Comment
	offset := (page - 1) * limit
	err := q.Order("created_at ASC").Offset(offset).Limit(limit).Find(&comments).Error
	return comments, total, translateError(err)
}

func (r *postgresCommentRepository) AddLikeCount(commentID uint, delta int64) error {
	return translateError(r.db.Model(&models.Comment{}).Where("id = ?", commentID).
		UpdateColumn("like_count", gorm.Expr("GREATEST(like_count + ?, 0)", delta)).Error)
}
