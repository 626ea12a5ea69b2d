package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"taskboard/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newIdentityRouter() (*gin.Engine, *uint64) {
	gin.SetMode(gin.TestMode)
	var captured uint64
	engine := gin.New()
	engine.GET("/whoami", middleware.IdentityMiddleware(), func(c *gin.Context) {
		captured = middleware.CallerID(c)
		c.Status(http.StatusOK)
	})
	return engine, &captured
}

func TestIdentityMiddleware(t *testing.T) {
	tests := []struct {
		name       string
		header     string
		wantStatus int
		wantID     uint64
	}{
		{name: "valid id passes through", header: "42", wantStatus: http.StatusOK, wantID: 42},
		{name: "missing header is rejected", header: "", wantStatus: http.StatusUnauthorized},
		{name: "non-numeric header is rejected", header: "alice", wantStatus: http.StatusUnauthorized},
		{name: "zero id is rejected", header: "0", wantStatus: http.StatusUnauthorized},
		{name: "negative id is rejected", header: "-3", wantStatus: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			engine, captured := newIdentityRouter()

			req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
			if tt.header != "" {
				req.Header.Set("X-User-Id", tt.header)
			}
			w := httptest.NewRecorder()
			engine.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantStatus == http.StatusOK {
				assert.Equal(t, tt.wantID, *captured)
			}
		})
	}
}
