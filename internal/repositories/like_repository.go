package repositories

import (
	"github.com/pressline/pressline-backend/internal/models"
	"gorm.io/gorm"
)

// postgresLikeRepository implements LikeRepository for PostgreSQL
type postgresLikeRepository struct {
	db *gorm.DB
}

func (r *postgresLikeRepository) CreateLike(like *models.Like) error {
	return translateError(r.db.Create(like).Error)
}

func (r *postgresLikeRepository) DeleteLike(userID, storyID uint) error {
	res := r.db.Where("user_id = ? AND story_id = ?", userID, storyID).Delete(&models.Like{})
	if res.Error != nil {
		return translateError(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *postgresLikeRepository) HasLiked(userID, storyID uint) (bool, error) {
	var count int64
	if err := r.db.Model(&models.Like{}).Where("user_id = ? AND story_id = ?", userID, storyID).Count(&count).Error; err != nil {
		return false, translateError(err)
	}
	return count > 0, nil
}

// postgresCommentLikeRepository implements CommentLikeRepository for PostgreSQL
type postgresCommentLikeRepository struct {
	db *gorm.DB
}

func (r *postgresCommentLikeRepository) CreateCommentLike(like *models.CommentLike) error {
	return translateError(r.db.Create(like).Error)
}

func (r *postgresCommentLikeRepository) DeleteCommentLike(userID, commentID uint) error {
	res := r.db.Where("user_id = ? AND comment_id = ?", userID, commentID).Delete(&models.CommentLike{})
	if res.Error != nil {
		return translateError(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *postgresCommentLikeRepository) HasLikedComment(userID, commentID uint) (bool, error) {
	var count int64
	if err := r.db.Model(&models.CommentLike{}).Where("user_id = ? AND comment_id = ?", userID, commentID).Count(&count).Error; err != nil {
		return false, translateError(err)
	}
	return count > 0, nil
}
