package repositories

import (
	"github.com/pressline/pressline-backend/internal/models"
	"gorm.io/gorm"
)

// postgresCategoryRepository implements CategoryRepository for PostgreSQL
type postgresCategoryRepository struct {
	db *gorm.DB
}

func (r *postgresCategoryRepository) CreateCategory(category *models.Category) error {
	return translateError(r.db.Create(category).Error)
}

func (r *postgresCategoryRepository) GetCategoryByID(id uint) (*models.Category, error) {
	var category models.Category
	if err := r.db.First(&category, id).Error; err != nil {
		return nil, translateError(err)
	}
	return &category, nil
}

func (r *postgresCategoryRepository) GetCategoryBySlug(slug string) (*models.Category, error) {
	var category models.Category
	if err := r.db.Where("slug = ?", slug).First(&category).Error; err != nil {
		return nil, translateError(err)
	}
	return &category, nil
}

func (r *postgresCategoryRepository) ListCategories() ([]models.Category, error) {
	var categories []models.Category
	err := r.db.Order("name ASC").Find(&categories).Error
	return categories, translateError(err)
}
