package services

import "github.com/pressline/pressline-backend/internal/models"

// RequireRole fails with ErrForbidden unless the caller holds one of the
// allowed roles.
func RequireRole(caller *models.User, allowed ...string) error {
	for _, role := range allowed {
		if caller.Role == role {
			return nil
		}
	}
	return ErrForbidden
}

// RequireOwnershipOrAdmin fails with ErrForbidden unless the caller owns the
// resource or is an admin.
func RequireOwnershipOrAdmin(caller *models.User, ownerID uint) error {
	if caller.ID == ownerID || caller.IsAdmin() {
		return nil
	}
	return ErrForbidden
}
