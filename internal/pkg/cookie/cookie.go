package cookie

import (
	"net/http"
	"time"

	"carestay/internal/pkg/config"

	"github.com/gin-gonic/gin"
)

// Cookie names carry the product prefix so the tokens do not collide with
// other apps served off a shared parent domain.
const (
	AccessTokenCookieName  = "carestay_access_token"
	RefreshTokenCookieName = "carestay_refresh_token"
)

func SetTokenCookies(c *gin.Context, cfg config.CookieConfig, accessToken, refreshToken string, accessExpiry, refreshExpiry time.Duration) {
	write(c, cfg, AccessTokenCookieName, accessToken, int(accessExpiry.Seconds()))
	write(c, cfg, RefreshTokenCookieName, refreshToken, int(refreshExpiry.Seconds()))
}

func ClearTokenCookies(c *gin.Context, cfg config.CookieConfig) {
	write(c, cfg, AccessTokenCookieName, "", -1)
	write(c, cfg, RefreshTokenCookieName, "", -1)
}

func GetAccessToken(c *gin.Context) string {
	token, _ := c.Cookie(AccessTokenCookieName)
	return token
}

func GetRefreshToken(c *gin.Context) string {
	token, _ := c.Cookie(RefreshTokenCookieName)
	return token
}

// write emits one HttpOnly cookie rooted at "/" with the configured
// domain, Secure and SameSite attributes.
func write(c *gin.Context, cfg config.CookieConfig, name, value string, maxAge int) {
	c.SetSameSite(sameSiteOf(cfg.SameSite))
	c.SetCookie(name, value, maxAge, "/", cfg.Domain, cfg.Secure, true)
}

func sameSiteOf(v string) http.SameSite {
	switch v {
	case "Strict":
		return http.SameSiteStrictMode
	case "None":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteLaxMode
	}
}
