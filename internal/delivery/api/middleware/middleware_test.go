package middleware

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"foodbridge/internal/delivery/api/response"
	"foodbridge/internal/domain/entity"
	domainerrors "foodbridge/internal/domain/errors"
	"foodbridge/internal/domain/service"
	"foodbridge/internal/errors"
	mockService "foodbridge/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func okHandler(c echo.Context) error {
	principal, _ := GetPrincipal(c)

	return c.String(http.StatusOK, string(principal.Role))
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) response.ErrorResponse {
	t.Helper()

	var body response.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return body
}

func TestAuthMiddleware_Authenticate(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name       string
		header     string
		setupMocks func(svc *mockService.MockTokenService)
		wantStatus int
		wantBody   string
		wantError  string
	}{
		{
			name:       "missing header",
			wantStatus: http.StatusUnauthorized,
			wantError:  "Authorization header is missing",
		},
		{
			name:       "not a bearer token",
			header:     "Basic dXNlcjpwYXNz",
			wantStatus: http.StatusUnauthorized,
			wantError:  "Invalid token format, must be Bearer token",
		},
		{
			name:   "expired token",
			header: "Bearer expired",
			setupMocks: func(svc *mockService.MockTokenService) {
				svc.EXPECT().ValidateToken("expired").Return(nil, errors.New("token is expired"))
			},
			wantStatus: http.StatusUnauthorized,
			wantError:  "Invalid or expired token",
		},
		{
			name:   "refresh token used as access token",
			header: "Bearer refresh",
			setupMocks: func(svc *mockService.MockTokenService) {
				svc.EXPECT().ValidateToken("refresh").
					Return(&service.Claims{UserID: userID, Role: string(entity.RoleSupplier), Type: service.TokenTypeRefresh}, nil)
			},
			wantStatus: http.StatusUnauthorized,
			wantError:  "Invalid or expired token",
		},
		{
			name:   "unknown role",
			header: "Bearer legacy",
			setupMocks: func(svc *mockService.MockTokenService) {
				svc.EXPECT().ValidateToken("legacy").
					Return(&service.Claims{UserID: userID, Role: "VOLUNTEER", Type: service.TokenTypeAccess}, nil)
			},
			wantStatus: http.StatusUnauthorized,
			wantError:  "Invalid role in token",
		},
		{
			name:   "valid access token",
			header: "Bearer good",
			setupMocks: func(svc *mockService.MockTokenService) {
				svc.EXPECT().ValidateToken("good").
					Return(&service.Claims{UserID: userID, Role: string(entity.RoleSupplier), Type: service.TokenTypeAccess}, nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   string(entity.RoleSupplier),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokenSvc := mockService.NewMockTokenService(t)
			if tt.setupMocks != nil {
				tt.setupMocks(tokenSvc)
			}
			m := NewAuthMiddleware(tokenSvc)

			e := echo.New()
			e.GET("/", okHandler, m.Authenticate)

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set(echo.HeaderAuthorization, tt.header)
			}
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			require.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantError != "" {
				body := decodeError(t, rec)
				assert.Equal(t, "UNAUTHENTICATED", body.Code)
				assert.Equal(t, tt.wantError, body.Error)

				return
			}
			assert.Equal(t, tt.wantBody, rec.Body.String())
		})
	}
}

func TestAuthMiddleware_RoleGuards(t *testing.T) {
	tokenSvc := mockService.NewMockTokenService(t)
	tokenSvc.EXPECT().ValidateToken("staff").
		Return(&service.Claims{UserID: uuid.New(), Role: string(entity.RoleStaff), Type: service.TokenTypeAccess}, nil)
	m := NewAuthMiddleware(tokenSvc)

	e := echo.New()
	e.GET("/operators", okHandler, m.Authenticate, m.RequireRole(entity.RoleAdmin, entity.RoleStaff))
	e.GET("/admin", okHandler, m.Authenticate, m.RequireRole(entity.RoleAdmin))
	e.PATCH("/admin", okHandler, m.Authenticate, m.RequireRoleUnauthorized(entity.RoleAdmin))
	e.GET("/unauthenticated", okHandler, m.RequireRole(entity.RoleAdmin))

	tests := []struct {
		method     string
		path       string
		wantStatus int
		wantCode   string
	}{
		{method: http.MethodGet, path: "/operators", wantStatus: http.StatusOK},
		{method: http.MethodGet, path: "/admin", wantStatus: http.StatusForbidden, wantCode: "FORBIDDEN"},
		{method: http.MethodPatch, path: "/admin", wantStatus: http.StatusUnauthorized, wantCode: "UNAUTHENTICATED"},
		{method: http.MethodGet, path: "/unauthenticated", wantStatus: http.StatusUnauthorized, wantCode: "UNAUTHENTICATED"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			req.Header.Set(echo.HeaderAuthorization, "Bearer staff")
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			require.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantCode != "" {
				assert.Equal(t, tt.wantCode, decodeError(t, rec).Code)
			}
		})
	}
}

func TestErrorMiddleware_HandleHTTPError(t *testing.T) {
	m := NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil)))

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
		wantError  string
	}{
		{
			name:       "wrapped app error",
			err:        errors.Wrap(domainerrors.ErrProductNotFound, "claim"),
			wantStatus: http.StatusNotFound,
			wantCode:   "PRODUCT_NOT_FOUND",
			wantError:  "Product not found",
		},
		{
			name:       "fetch failure keeps its message",
			err:        errors.WithStack(domainerrors.FetchError("products")),
			wantStatus: http.StatusInternalServerError,
			wantCode:   "FETCH_FAILED",
			wantError:  "Failed to fetch products",
		},
		{
			name:       "echo error",
			err:        echo.NewHTTPError(http.StatusMethodNotAllowed),
			wantStatus: http.StatusMethodNotAllowed,
			wantCode:   "HTTP_ERROR",
			wantError:  http.StatusText(http.StatusMethodNotAllowed),
		},
		{
			name:       "unexpected error is masked",
			err:        errors.New("pq: connection refused"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   "INTERNAL_ERROR",
			wantError:  "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			rec := httptest.NewRecorder()
			c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

			m.HandleHTTPError(tt.err, c)

			require.Equal(t, tt.wantStatus, rec.Code)
			body := decodeError(t, rec)
			assert.Equal(t, tt.wantCode, body.Code)
			assert.Equal(t, tt.wantError, body.Error)
		})
	}
}
