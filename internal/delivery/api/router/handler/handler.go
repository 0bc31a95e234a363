// Package handler contains the HTTP handlers of the JSON API.
package handler

import (
	"net/http"

	"foodbridge/internal/delivery/api/middleware"
	"foodbridge/internal/delivery/api/response"
	"foodbridge/internal/domain/entity"
	domainerrors "foodbridge/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// principalFrom returns ErrUnauthenticated when the route skipped Authenticate.
func principalFrom(c echo.Context) (entity.Principal, error) {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		return entity.Principal{}, domainerrors.ErrUnauthenticated
	}

	return principal, nil
}

// bindRequest binds and validates req. When it reports false the error response is already written.
func bindRequest(c echo.Context, req any) (bool, error) {
	if err := c.Bind(req); err != nil {
		return false, response.BindingError(c, "Invalid request body")
	}
	if err := c.Validate(req); err != nil {
		return false, response.BadRequest(c, domainerrors.ErrValidationFailed.ErrorCode(), err.Error())
	}

	return true, nil
}

func parseUUIDParam(c echo.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, domainerrors.ErrValidationFailed.WithMessage("Invalid " + name)
	}

	return id, nil
}

// parseUUIDQuery parses an optional query parameter; a missing value yields nil.
func parseUUIDQuery(c echo.Context, name string) (*uuid.UUID, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return nil, nil
	}

	id, err := uuid.Parse(raw)
	if err != nil {
		return nil, domainerrors.ErrValidationFailed.WithMessage("Invalid " + name)
	}

	return &id, nil
}

// HealthCheck is the liveness probe.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"})
}
