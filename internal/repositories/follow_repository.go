package repositories

import (
	"github.com/pressline/pressline-backend/internal/models"
	"gorm.io/gorm"
)

// postgresFollowRepository implements FollowRepository for PostgreSQL
type postgresFollowRepository struct {
	db *gorm.DB
}

func (r *postgresFollowRepository) CreateFollow(follow *models.Follow) error {
	return translateError(r.db.Create(follow).Error)
}

func (r *postgresFollowRepository) DeleteFollow(followerID, followedID uint) error {
	res := r.db.Where("follower_id = ? AND followed_id = ?", followerID, followedID).Delete(&models.Follow{})
	if res.Error != nil {
		return translateError(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *postgresFollowRepository) IsFollowing(followerID, followedID uint) (bool, error) {
	var count int64
	if err := r.db.Model(&models.Follow{}).Where("follower_id = ? AND followed_id = ?", followerID, followedID).Count(&count).Error; err != nil {
		return false, translateError(err)
	}
	return count > 0, nil
}

func (r *postgresFollowRepository) GetFollowers(followedID uint) ([]models.User, error) {
	var users []models.User
	err := r.db.Where("id IN (?)",
		r.db.Table("follows").Select("follower_id").Where("followed_id = ?", followedID),
	).Find(&users).Error
	return users, translateError(err)
}

func (r *postgresFollowRepository) GetFollowing(followerID uint) ([]models.User, error) {
	var users []models.User
	err := r.db.Where("id IN (?)",
		r.db.Table("follows").Select("followed_id").Where("follower_id = ?", followerID),
	).Find(&users).Error
	return users, translateError(err)
}

func (r *postgresFollowRepository) GetFollowersCount(followedID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Follow{}).Where("followed_id = ?", followedID).Count(&count).Error
	return count, translateError(err)
}

func (r *postgresFollowRepository) GetFollowingCount(followerID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Follow{}).Where("follower_id = ?", followerID).Count(&count).Error
	return count, translateError(err)
}
