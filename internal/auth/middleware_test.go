package auth

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func newProtectedRouter(secret []byte, reached *bool) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", RequireAuth(secret), func(c *gin.Context) {
		*reached = true
		c.String(http.StatusOK, strconv.FormatInt(UserIDFromContext(c), 10))
	})
	return r
}

func TestRequireAuth_NoHeader(t *testing.T) {
	reached := false
	r := newProtectedRouter([]byte("s"), &reached)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusUnauthorized, w.Code)
	require.False(t, reached, "handler must not run without a token")
}

func TestRequireAuth_InvalidToken(t *testing.T) {
	reached := false
	r := newProtectedRouter([]byte("s"), &reached)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusUnauthorized, w.Code)
	require.False(t, reached)
}

func TestRequireAuth_ExpiredToken(t *testing.T) {
	secret := []byte("s")
	reached := false
	r := newProtectedRouter(secret, &reached)

	tok, err := GenerateToken(7, secret, -time.Minute)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusUnauthorized, w.Code)
	require.False(t, reached)
}

func TestRequireAuth_ValidToken(t *testing.T) {
	secret := []byte("s")
	reached := false
	r := newProtectedRouter(secret, &reached)

	tok, err := GenerateToken(7, secret, time.Hour)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.True(t, reached)
	require.Equal(t, "7", w.Body.String())
}
