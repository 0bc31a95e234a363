package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	deliverycontext "foodbridge/internal/delivery/context"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestIDMiddleware(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	mw := NewRequestIDMiddleware(logger)

	tests := []struct {
		name     string
		header   string
		expectID func(t *testing.T, got string)
	}{
		{
			name:   "keeps client id",
			header: "req-123",
			expectID: func(t *testing.T, got string) {
				assert.Equal(t, "req-123", got)
			},
		},
		{
			name:   "generates when missing",
			header: "",
			expectID: func(t *testing.T, got string) {
				assert.Len(t, got, 36)
			},
		},
		{
			name:   "replaces oversized id",
			header: strings.Repeat("x", maxRequestIDLength+1),
			expectID: func(t *testing.T, got string) {
				assert.Len(t, got, 36)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set(deliverycontext.HeaderXRequestID, tt.header)
			}
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			var ctxID string
			err := mw.Process(func(c echo.Context) error {
				ctxID = deliverycontext.GetRequestIDFromContext(c.Request().Context())
				require.NotNil(t, deliverycontext.GetLogger(c.Request().Context()))

				return nil
			})(c)
			require.NoError(t, err)

			tt.expectID(t, ctxID)
			assert.Equal(t, ctxID, rec.Header().Get(deliverycontext.HeaderXRequestID))
		})
	}
}
