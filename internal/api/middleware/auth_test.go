package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupAuthRouter() (*gin.Engine, *string) {
	gin.SetMode(gin.TestMode)

	var captured string
	r := gin.New()
	r.GET("/protected", APIKey(), func(c *gin.Context) {
		key, _ := GetAPIKey(c)
		captured = key
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return r, &captured
}

func TestAPIKey_MissingHeader(t *testing.T) {
	r, _ := setupAuthRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/protected", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAPIKey_MalformedHeader(t *testing.T) {
	r, _ := setupAuthRouter()

	for _, header := range []string{"sk-abc123", "Basic sk-abc123", "Bearer "} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/protected", nil)
		req.Header.Set("Authorization", header)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code, "header: %q", header)
	}
}

func TestAPIKey_ValidHeader(t *testing.T) {
	r, captured := setupAuthRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer sk-abc123")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "sk-abc123", *captured)
}

func TestGetAPIKey_NotSet(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())

	_, ok := GetAPIKey(c)
	assert.False(t, ok)
}
