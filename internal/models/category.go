package models

import "time"

// Category groups stories by topic
type Category struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name"`
	Slug      string    `json:"slug" gorm:"uniqueIndex"`
	CreatedAt time.Time `json:"created_at"`
}

// CreateCategoryRequest defines the request body for creating a category
type CreateCategoryRequest struct {
	Name string `json:"name" validate:"required,min=2,max=80"`
}
