package handlers

import (
	"errors"
	"net/http"

	"github.com/Harshaka512/CookSync-Skill-Sharing-Learning-Platform/backend/internal/models"
	"github.com/Harshaka512/CookSync-Skill-Sharing-Learning-Platform/backend/internal/services"
	"github.com/labstack/echo/v4"
)

// getUserIDFromContext extracts the authenticated user ID from the JWT claims
// stored by the auth middleware. Returns 0 for anonymous requests, which the
// visibility checks treat as "not logged in".
func getUserIDFromContext(c echo.Context) uint {
	claims, ok := c.Get("user").(*models.JwtCustomClaims)
	if !ok || claims == nil {
		return 0
	}
	return claims.UserID
}

// serviceError translates the service layer's typed failures into HTTP errors
func serviceError(err error) error {
	switch {
	case errors.Is(err, services.ErrNotFound):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, services.ErrSelfFollow):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, services.ErrValidation):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, services.ErrUnauthorized):
		return echo.NewHTTPError(http.StatusForbidden, err.Error())
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
}
