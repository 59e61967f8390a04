package repositories

import (
	"github.com/pressline/pressline-backend/internal/models"
	"gorm.io/gorm"
)

// postgresUserRepository implements UserRepository for PostgreSQL
type postgresUserRepository struct {
	db *gorm.DB
}

func (r *postgresUserRepository) CreateUser(user *models.User) error {
	return translateError(r.db.Create(user).Error)
}

func (r *postgresUserRepository) GetUserByID(id uint) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, id).Error; err != nil {
		return nil, translateError(err)
	}
	return &user, nil
}

func (r *postgresUserRepository) GetUserByEmail(email string) (*models.User, error) {
	var user models.User
	if err := r.db.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, translateError(err)
	}
	return &user, nil
}

func (r *postgresUserRepository) UpdateUser(user *models.User) error {
	return translateError(r.db.Save(user).Error)
}

func (r *postgresUserRepository) AddTotalViews(userID uint, delta int64) error {
	return translateError(r.db.Model(&models.User{}).Where("id = ?", userID).
		UpdateColumn("total_view_count", gorm.Expr("total_view_count + ?", delta)).Error)
}

func (r *postgresUserRepository) AddTotalLikes(userID uint, delta int64) error {
	return translateError(r.db.Model(&models.User{}).Where("id = ?", userID).
		UpdateColumn("total_like_count", gorm.Expr("GREATEST(total_like_count + ?, 0)", delta)).Error)
}
