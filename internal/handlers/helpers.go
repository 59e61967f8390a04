package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/pressline/pressline-backend/internal/models"
	"github.com/pressline/pressline-backend/internal/services"
)

// getUserIDFromContext extracts the authenticated user's id from the JWT
// claims set by the auth middleware. Returns 0 when unauthenticated.
func getUserIDFromContext(c echo.Context) uint {
	claims, ok := c.Get("user").(*models.JwtCustomClaims)
	if !ok {
		return 0
	}
	return claims.UserID
}

// parseIDParam parses a numeric path parameter.
func parseIDParam(c echo.Context, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "Invalid "+name)
	}
	return uint(id), nil
}

// pageParams reads page/limit query parameters with sane bounds.
func pageParams(c echo.Context) (page, limit int) {
	page, _ = strconv.Atoi(c.QueryParam("page"))
	limit, _ = strconv.Atoi(c.QueryParam("limit"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 50 {
		limit = 20
	}
	return page, limit
}

// httpError maps the service error taxonomy onto HTTP status codes. Anything
// outside the taxonomy becomes a generic 500 so internals never leak.
func httpError(err error) error {
	var transitionErr *services.InvalidStateTransitionError
	var validationErr *services.ValidationError
	switch {
	case errors.Is(err, services.ErrNotFound):
		return echo.NewHTTPError(http.StatusNotFound, "Resource not found")
	case errors.Is(err, services.ErrForbidden):
		return echo.NewHTTPError(http.StatusForbidden, "Forbidden")
	case errors.Is(err, services.ErrConflict):
		return echo.NewHTTPError(http.StatusConflict, "Conflict")
	case errors.Is(err, services.ErrUnauthorized):
		return echo.NewHTTPError(http.StatusUnauthorized, "Invalid credentials")
	case errors.As(err, &transitionErr):
		return echo.NewHTTPError(http.StatusUnprocessableEntity, transitionErr.Error())
	case errors.As(err, &validationErr):
		return echo.NewHTTPError(http.StatusBadRequest, validationErr.Error())
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, "Internal server error")
	}
}
