package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/SscSPs/pricex_locale/internal/middleware"
	"github.com/SscSPs/pricex_locale/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-key-that-is-long-enough"

func newSessionRouter(seen *string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.SessionMiddleware(testSecret, time.Hour))
	r.GET("/", func(c *gin.Context) {
		id, _ := middleware.GetSessionIDFromContext(c)
		*seen = id
		c.Status(http.StatusNoContent)
	})
	return r
}

func TestSessionMiddleware_IssuesNewSession(t *testing.T) {
	var seen string
	r := newSessionRouter(&seen)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/", nil)
	r.ServeHTTP(w, req)

	require.NotEmpty(t, seen)
	token := w.Header().Get(middleware.SessionTokenHeader)
	require.NotEmpty(t, token)
	id, err := utils.ParseSessionToken(token, testSecret)
	require.NoError(t, err)
	assert.Equal(t, seen, id)
}

func TestSessionMiddleware_ReusesValidToken(t *testing.T) {
	var seen string
	r := newSessionRouter(&seen)
	token, err := utils.GenerateSessionToken("session-42", testSecret, time.Hour, "test")
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(middleware.SessionTokenHeader, token)
	r.ServeHTTP(w, req)

	assert.Equal(t, "session-42", seen)
	assert.Equal(t, token, w.Header().Get(middleware.SessionTokenHeader))
}

func TestSessionMiddleware_ReplacesBadTokens(t *testing.T) {
	expired, err := utils.GenerateSessionToken("old", testSecret, -time.Minute, "test")
	require.NoError(t, err)
	forged, err := utils.GenerateSessionToken("forged", "some-other-secret", time.Hour, "test")
	require.NoError(t, err)

	for name, token := range map[string]string{"expired": expired, "forged": forged, "garbage": "not-a-token"} {
		t.Run(name, func(t *testing.T) {
			var seen string
			r := newSessionRouter(&seen)

			w := httptest.NewRecorder()
			req, _ := http.NewRequest(http.MethodGet, "/", nil)
			req.Header.Set(middleware.SessionTokenHeader, token)
			r.ServeHTTP(w, req)

			assert.Equal(t, http.StatusNoContent, w.Code)
			assert.NotEmpty(t, seen)
			assert.NotEqual(t, "old", seen)
			assert.NotEqual(t, "forged", seen)
			assert.NotEqual(t, token, w.Header().Get(middleware.SessionTokenHeader))
		})
	}
}
