package cookie

import (
	"net/http"
	"time"

	"agenda-web/internal/pkg/config"

	"github.com/gin-gonic/gin"
)

const (
	SessionCookieName    = "agenda_session"
	AdminTokenCookieName = "agenda_admin_token"
)

// SetSession stores the booking session id. ttl <= 0 makes it a browser-session cookie.
func SetSession(c *gin.Context, cfg config.CookieConfig, sessionID string, ttl time.Duration) {
	set(c, cfg, SessionCookieName, sessionID, maxAge(ttl))
}

func ClearSession(c *gin.Context, cfg config.CookieConfig) {
	set(c, cfg, SessionCookieName, "", -1)
}

func GetSession(c *gin.Context) string {
	v, _ := c.Cookie(SessionCookieName)
	return v
}

func SetAdminToken(c *gin.Context, cfg config.CookieConfig, token string) {
	set(c, cfg, AdminTokenCookieName, token, maxAge(cfg.AdminTTL))
}

func ClearAdminToken(c *gin.Context, cfg config.CookieConfig) {
	set(c, cfg, AdminTokenCookieName, "", -1)
}

func GetAdminToken(c *gin.Context) string {
	v, _ := c.Cookie(AdminTokenCookieName)
	return v
}

func set(c *gin.Context, cfg config.CookieConfig, name, value string, age int) {
	c.SetSameSite(getSameSite(cfg.SameSite))
	c.SetCookie(
		name,
		value,
		age,
		"/",
		cfg.Domain,
		cfg.Secure,
		true, // HttpOnly
	)
}

func maxAge(ttl time.Duration) int {
	if ttl <= 0 {
		return 0
	}
	return int(ttl.Seconds())
}

func getSameSite(sameSite string) http.SameSite {
	switch sameSite {
	case "Strict":
		return http.SameSiteStrictMode
	case "Lax":
		return http.SameSiteLaxMode
	case "None":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteLaxMode
	}
}
