package models

import (
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// Role names used by the authorization checks.
const (
	RoleAdmin  = "ADMIN"
	RoleWriter = "WRITER"
	RoleUser   = "USER"
)

// User represents an account. The Total* fields are the denormalized author
// counters: only the interaction engine and view recording move them, they
// are never recomputed from child rows.
type User struct {
	ID             uint      `json:"id" gorm:"primaryKey"`
	Name           string    `json:"name"`
	Email          string    `json:"email" gorm:"uniqueIndex"`
	Password       string    `json:"-"` // bcrypt hash, never serialized
	Role           string    `json:"role" gorm:"size:10;default:USER"`
	Bio            string    `json:"bio"`
	TotalViewCount int64     `json:"total_view_count" gorm:"default:0"`
	TotalLikeCount int64     `json:"total_like_count" gorm:"default:0"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// IsAdmin reports whether the user carries the admin role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// UserCompact is the trimmed author representation embedded in responses.
type UserCompact struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
	Bio  string `json:"bio,omitempty"`
}

// ToCompact converts a User to its compact representation.
func (u *User) ToCompact() UserCompact {
	return UserCompact{ID: u.ID, Name: u.Name, Bio: u.Bio}
}

// RegisterRequest defines the request body for local registration
type RegisterRequest struct {
	Name     string `json:"name" validate:"required,min=2,max=50"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

// LoginRequest defines the request body for local login
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UpdateProfileRequest defines the request body for profile updates
type UpdateProfileRequest struct {
	Name string `json:"name,omitempty" validate:"omitempty,min=2,max=50"`
	Bio  string `json:"bio,omitempty" validate:"omitempty,max=500"`
}

// JwtCustomClaims are custom claims extending standard jwt.RegisteredClaims
type JwtCustomClaims struct {
	UserID uint   `json:"user_id"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}
