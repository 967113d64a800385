package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"agenda-web/internal/handler/httperr"
	"agenda-web/internal/pkg/config"
	"agenda-web/internal/pkg/cookie"
	"agenda-web/internal/pkg/errs"
	"agenda-web/internal/pkg/jwt"

	"github.com/gin-gonic/gin"
)

const (
	ctxAdminTokenKey = "admin_token"
	ctxAdminIDKey    = "admin_id"

	MsgTokenRequired = "Token de acceso requerido"
	MsgTokenExpired  = "Tu sesión expiró. Por favor inicia sesión nuevamente."
)

type AdminAuthMiddleware struct {
	inspector *jwt.Inspector
	cookieCfg config.CookieConfig
}

func NewAdminAuthMiddleware(inspector *jwt.Inspector, cfg config.Config) *AdminAuthMiddleware {
	return &AdminAuthMiddleware{
		inspector: inspector,
		cookieCfg: cfg.Cookie,
	}
}

// RequireAdmin rejects requests without an admin token, and JWT-shaped tokens whose exp
// has passed, before they reach the backend. Everything else is forwarded; the backend
// decides whether the token is valid.
func (m *AdminAuthMiddleware) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := ExtractAdminToken(c)
		if token == "" {
			httperr.AbortWithError(c, http.StatusUnauthorized, errs.ErrAdminTokenRequired, MsgTokenRequired, nil)
			return
		}

		claims, err := m.inspector.Inspect(token)
		if errs.Is(err, jwt.ErrExpiredToken) {
			slog.Info("expired admin token rejected locally", "admin_id", claims.Subject())
			cookie.ClearAdminToken(c, m.cookieCfg)
			httperr.AbortWithError(c, http.StatusUnauthorized, errs.ErrAdminTokenExpired, MsgTokenExpired, nil)
			return
		}

		c.Set(ctxAdminTokenKey, token)
		if claims != nil {
			c.Set(ctxAdminIDKey, claims.Subject())
		}
		c.Next()
	}
}

// ExtractAdminToken prefers the HttpOnly cookie and falls back to a bearer header.
func ExtractAdminToken(c *gin.Context) string {
	if token := cookie.GetAdminToken(c); token != "" {
		return token
	}
	authHeader := c.GetHeader("Authorization")
	if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimSpace(authHeader[len("Bearer "):])
	}
	return ""
}

func GetAdminToken(c *gin.Context) string {
	return c.GetString(ctxAdminTokenKey)
}

func GetAdminID(c *gin.Context) string {
	return c.GetString(ctxAdminIDKey)
}
