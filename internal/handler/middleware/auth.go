package middleware

import (
	"log/slog"
	"strings"

	"carestay/internal/handler/httperr"
	"carestay/internal/pkg/cookie"
	"carestay/internal/pkg/errs"
	"carestay/internal/usecase"

	"github.com/gin-gonic/gin"
)

type AuthMiddleware struct {
	sessions usecase.SessionResolver
}

const ctxSessionKey = "session"

var errNoToken = errs.New("no access token supplied")

func NewAuthMiddleware(sessions usecase.SessionResolver) *AuthMiddleware {
	return &AuthMiddleware{sessions: sessions}
}

// RequireAuth resolves the bearer token (cookie first, Authorization
// header second) into a session and attaches it to the context.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := cookie.GetAccessToken(c)

		if token == "" {
			authHeader := c.GetHeader("Authorization")
			if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
				token = strings.TrimSpace(authHeader[len("Bearer "):])
			}
		}

		if token == "" {
			httperr.Unauthorized(c, errNoToken)
			return
		}

		session, err := m.sessions.Resolve(c.Request.Context(), token)
		if err != nil {
			slog.Warn("session resolution failed", "error", err.Error())
			httperr.Unauthorized(c, err)
			return
		}

		c.Set(ctxSessionKey, session)
		c.Set("jwt_claims", map[string]any{
			"user_id": session.UserID.String(),
			"role":    session.Role.String(),
		})
		c.Next()
	}
}

// GetSession returns the session attached by RequireAuth.
func GetSession(c *gin.Context) (*usecase.Session, bool) {
	value, exists := c.Get(ctxSessionKey)
	if !exists {
		return nil, false
	}
	session, ok := value.(*usecase.Session)
	return session, ok
}
