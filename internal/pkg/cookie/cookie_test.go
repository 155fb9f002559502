//go:build unit

package cookie_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"carestay/internal/pkg/config"
	"carestay/internal/pkg/cookie"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cookiesByName(rec *httptest.ResponseRecorder) map[string]*http.Cookie {
	byName := make(map[string]*http.Cookie)
	for _, ck := range rec.Result().Cookies() {
		byName[ck.Name] = ck
	}
	return byName
}

func TestSetTokenCookies(t *testing.T) {
	gin.SetMode(gin.TestMode)
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	cfg := config.CookieConfig{SameSite: "Lax"}

	cookie.SetTokenCookies(c, cfg, "access-value", "refresh-value", time.Minute, time.Hour)

	byName := cookiesByName(rec)
	access := byName[cookie.AccessTokenCookieName]
	require.NotNil(t, access)
	assert.Equal(t, "access-value", access.Value)
	assert.Equal(t, 60, access.MaxAge)
	assert.Equal(t, "/", access.Path)
	assert.True(t, access.HttpOnly)

	refresh := byName[cookie.RefreshTokenCookieName]
	require.NotNil(t, refresh)
	assert.Equal(t, "refresh-value", refresh.Value)
	assert.Equal(t, 3600, refresh.MaxAge)
	assert.True(t, refresh.HttpOnly)
}

func TestClearTokenCookies(t *testing.T) {
	gin.SetMode(gin.TestMode)
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)

	cookie.ClearTokenCookies(c, config.CookieConfig{})

	byName := cookiesByName(rec)
	for _, name := range []string{cookie.AccessTokenCookieName, cookie.RefreshTokenCookieName} {
		ck := byName[name]
		require.NotNil(t, ck, name)
		assert.Empty(t, ck.Value)
		assert.Negative(t, ck.MaxAge)
	}
}

func TestGetAccessToken(t *testing.T) {
	gin.SetMode(gin.TestMode)
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	c.Request.AddCookie(&http.Cookie{Name: cookie.AccessTokenCookieName, Value: "tok"})

	assert.Equal(t, "tok", cookie.GetAccessToken(c))
	assert.Empty(t, cookie.GetRefreshToken(c))
}
