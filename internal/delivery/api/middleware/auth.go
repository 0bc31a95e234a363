package middleware

import (
	"strings"

	"foodbridge/internal/delivery/api/response"
	deliverycontext "foodbridge/internal/delivery/context"
	"foodbridge/internal/domain/entity"
	domainerrors "foodbridge/internal/domain/errors"
	"foodbridge/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// AuthMiddleware resolves the bearer token into an entity.Principal and guards routes by role.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate accepts only access tokens.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return unauthenticated(c, "Authorization header is missing")
		}

		tokenString, found := strings.CutPrefix(authHeader, "Bearer ")
		if !found || tokenString == "" {
			return unauthenticated(c, "Invalid token format, must be Bearer token")
		}

		claims, err := m.tokenSvc.ValidateToken(tokenString)
		if err != nil || claims.Type != service.TokenTypeAccess {
			return unauthenticated(c, "Invalid or expired token")
		}

		role := entity.Role(claims.Role)
		if !role.IsValid() {
			return unauthenticated(c, "Invalid role in token")
		}

		deliverycontext.SetPrincipal(c, entity.Principal{UserID: claims.UserID, Role: role})

		return next(c)
	}
}

// RequireRole rejects other roles with 403. It must run after Authenticate.
func (m *AuthMiddleware) RequireRole(roles ...entity.Role) echo.MiddlewareFunc {
	return requireRole(domainerrors.ErrForbidden, roles)
}

// RequireRoleUnauthorized rejects other roles with 401, the status older admin-only endpoints return.
func (m *AuthMiddleware) RequireRoleUnauthorized(roles ...entity.Role) echo.MiddlewareFunc {
	return requireRole(domainerrors.ErrUnauthenticated, roles)
}

func requireRole(deny *domainerrors.BaseError, roles []entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			principal, ok := GetPrincipal(c)
			if !ok {
				return unauthenticated(c, "Authentication required")
			}
			if !principal.Is(roles...) {
				return response.Error(c, deny.HTTPCode(), deny.ErrorCode(), deny.Message(), nil)
			}

			return next(c)
		}
	}
}

// GetPrincipal returns the caller resolved by Authenticate.
func GetPrincipal(c echo.Context) (entity.Principal, bool) {
	return deliverycontext.GetPrincipal(c)
}

func unauthenticated(c echo.Context, message string) error {
	return response.Unauthorized(c, domainerrors.ErrUnauthenticated.ErrorCode(), message)
}
