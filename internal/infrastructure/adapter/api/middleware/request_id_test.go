package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	coreport "github.com/amirhossein-jamali/paybot/internal/domain/port/core"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	var seen string
	engine := gin.New()
	engine.Use(RequestID())
	engine.GET("/", func(c *gin.Context) {
		seen = coreport.RequestIDFromContext(c.Request.Context())
		c.Status(http.StatusNoContent)
	})

	t.Run("Generated when absent", func(t *testing.T) {
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

		_, err := uuid.Parse(seen)
		assert.NoError(t, err)
		assert.Equal(t, seen, w.Header().Get(RequestIDHeader))
	})

	t.Run("Reused when present", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(RequestIDHeader, "abc")
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, req)

		assert.Equal(t, "abc", seen)
		assert.Equal(t, "abc", w.Header().Get(RequestIDHeader))
	})
}

func TestStatusText(t *testing.T) {
	assert.Equal(t, "Informational", statusText(101))
	assert.Equal(t, "Success", statusText(200))
	assert.Equal(t, "Redirect", statusText(302))
	assert.Equal(t, "Client Error", statusText(404))
	assert.Equal(t, "Server Error", statusText(503))
}
