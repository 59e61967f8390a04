package memory

import (
	"github.com/pressline/pressline-backend/internal/models"
	"github.com/pressline/pressline-backend/internal/repositories"
)

type memoryUserRepository MemoryStore

func (r *memoryUserRepository) store() *MemoryStore { return (*MemoryStore)(r) }

func (r *memoryUserRepository) CreateUser(user *models.User) error {
	s := r.store()
	s.lock()
	defer s.unlock()

	for _, u := range s.data.users {
		if u.Email == user.Email {
			return repositories.ErrDuplicate
		}
	}
	if user.ID == 0 {
		user.ID = s.allocID("user")
	}
	cp := *user
	s.data.users[user.ID] = &cp
	return nil
}

func (r *memoryUserRepository) GetUserByID(id uint) (*models.User, error) {
	s := r.store()
	s.lock()
	defer s.unlock()

	user, ok := s.data.users[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	cp := *user
	return &cp, nil
}

func (r *memoryUserRepository) GetUserByEmail(email string) (*models.User, error) {
	s := r.store()
	s.lock()
	defer s.unlock()

	for _, u := range s.data.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (r *memoryUserRepository) UpdateUser(user *models.User) error {
	s := r.store()
	s.lock()
	defer s.unlock()

	if _, ok := s.data.users[user.ID]; !ok {
		return repositories.ErrNotFound
	}
	cp := *user
	s.data.users[user.ID] = &cp
	return nil
}

func (r *memoryUserRepository) AddTotalViews(userID uint, delta int64) error {
	s := r.store()
	s.lock()
	defer s.unlock()

	user, ok := s.data.users[userID]
	if !ok {
		return repositories.ErrNotFound
	}
	user.TotalViewCount += delta
	return nil
}

func (r *memoryUserRepository) AddTotalLikes(userID uint, delta int64) error {
	s := r.store()
	s.lock()
	defer s.unlock()

	user, ok := s.data.users[userID]
	if !ok {
		return repositories.ErrNotFound
	}
	user.TotalLikeCount += delta
	if user.TotalLikeCount < 0 {
		user.TotalLikeCount = 0
	}
	return nil
}

type memoryCategoryRepository MemoryStore

func (r *memoryCategoryRepository) store() *MemoryStore { return (*MemoryStore)(r) }

func (r *memoryCategoryRepository) CreateCategory(category *models.Category) error {
	s := r.store()
	s.lock()
	defer s.unlock()

	for _, c := range s.data.categories {
		if c.Slug == category.Slug {
			return repositories.ErrDuplicate
		}
	}
	if category.ID == 0 {
		category.ID = s.allocID("category")
	}
	cp := *category
	s.data.categories[category.ID] = &cp
	return nil
}

func (r *memoryCategoryRepository) GetCategoryByID(id uint) (*models.Category, error) {
	s := r.store()
	s.lock()
	defer s.unlock()

	category, ok := s.data.categories[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	cp := *category
	return &cp, nil
}

func (r *memoryCategoryRepository) GetCategoryBySlug(slug string) (*models.Category, error) {
	s := r.store()
	s.lock()
	defer s.unlock()

	for _, c := range s.data.categories {
		if c.Slug == slug {
			cp := *c
			return &cp, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (r *memoryCategoryRepository) ListCategories() ([]models.Category, error) {
	s := r.store()
	s.lock()
	defer s.unlock()

	categories := make([]models.Category, 0, len(s.data.categories))
	for _, c := range s.data.categories {
		categories = append(categories, *c)
	}
	sortByName(categories)
	return categories, nil
}
