//go:build unit

package middleware_test

import (
	"context"
	"net/http"
	stdhttptest "net/http/httptest"
	"testing"

	"carestay/internal/domain/user"
	"carestay/internal/handler/middleware"
	"carestay/internal/pkg/cookie"
	"carestay/internal/pkg/errs"
	"carestay/internal/usecase"
	"carestay/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubSessionResolver struct {
	session   *usecase.Session
	err       error
	lastToken string
}

func (s *stubSessionResolver) Resolve(_ context.Context, token string) (*usecase.Session, error) {
	s.lastToken = token
	if s.err != nil {
		return nil, s.err
	}
	return s.session, nil
}

func newAuthRouter(resolver *stubSessionResolver, extra ...gin.HandlerFunc) (*gin.Engine, *bool) {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	reached := false
	handlers := []gin.HandlerFunc{middleware.NewAuthMiddleware(resolver).RequireAuth()}
	handlers = append(handlers, extra...)
	handlers = append(handlers, func(c *gin.Context) {
		reached = true
		c.Status(http.StatusOK)
	})

	router.GET("/protected", handlers...)
	return router, &reached
}

func customerSession() *usecase.Session {
	return &usecase.Session{
		UserID: uuid.New(),
		Email:  "test@example.com",
		Name:   "Test User",
		Role:   user.RoleCustomer,
	}
}

func TestRequireAuth(t *testing.T) {
	t.Run("bearer token reaches the handler", func(t *testing.T) {
		resolver := &stubSessionResolver{session: customerSession()}
		router, reached := newAuthRouter(resolver)

		w := httptest.PerformRequest(t, router, http.MethodGet, "/protected", nil, "valid-token")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.True(t, *reached)
		assert.Equal(t, "valid-token", resolver.lastToken)
	})

	t.Run("cookie token wins over authorization header", func(t *testing.T) {
		resolver := &stubSessionResolver{session: customerSession()}
		router, _ := newAuthRouter(resolver)

		cookies := []*http.Cookie{{Name: cookie.AccessTokenCookieName, Value: "cookie-token"}}
		w := httptest.PerformRequestWithCookies(t, router, http.MethodGet, "/protected", nil, cookies, "header-token")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "cookie-token", resolver.lastToken)
	})

	t.Run("missing token yields 401 envelope", func(t *testing.T) {
		resolver := &stubSessionResolver{session: customerSession()}
		router, reached := newAuthRouter(resolver)

		w := httptest.PerformRequest(t, router, http.MethodGet, "/protected", nil, "")

		assert.False(t, *reached)
		assert.JSONEq(t,
			`{"success":false,"error":{"code":"UNAUTHORIZED","message":"Authentication required"}}`,
			w.Body.String())
	})

	t.Run("resolver failure yields 401", func(t *testing.T) {
		resolver := &stubSessionResolver{err: errs.New("token expired")}
		router, reached := newAuthRouter(resolver)

		w := httptest.PerformRequest(t, router, http.MethodGet, "/protected", nil, "stale-token")

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.False(t, *reached)
	})

	t.Run("malformed authorization header is rejected", func(t *testing.T) {
		resolver := &stubSessionResolver{session: customerSession()}
		router, reached := newAuthRouter(resolver)
		gin.SetMode(gin.TestMode)

		req := stdhttptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Token abc")

		w := performRaw(router, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.False(t, *reached)
	})

	t.Run("session is available downstream", func(t *testing.T) {
		session := customerSession()
		resolver := &stubSessionResolver{session: session}

		var got *usecase.Session
		router, _ := newAuthRouter(resolver, func(c *gin.Context) {
			s, ok := middleware.GetSession(c)
			require.True(t, ok)
			got = s
		})

		httptest.PerformRequest(t, router, http.MethodGet, "/protected", nil, "valid-token")
		require.NotNil(t, got)
		assert.Equal(t, session.UserID, got.UserID)
		assert.Equal(t, user.RoleCustomer, got.Role)
	})
}

func performRaw(router *gin.Engine, req *http.Request) *stdhttptest.ResponseRecorder {
	w := stdhttptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestGetSessionWithoutAuth(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(nil)
	_, ok := middleware.GetSession(c)
	assert.False(t, ok)
}
