package middleware

import (
	"net/http"

	"agenda-web/internal/handler/httperr"
	"agenda-web/internal/pkg/config"
	"agenda-web/internal/pkg/cookie"
	"agenda-web/internal/usecase/bookingflow"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	ctxSessionIDKey      = "booking_session_id"
	ctxSessionCreatedKey = "booking_session_created"
	ctxControllerKey     = "booking_controller"

	sessionHeader = "X-Booking-Session"

	MsgSessionNotFound = "Sesión de reserva no encontrada"
)

type SessionStore interface {
	Lookup(raw string) (uuid.UUID, *bookingflow.Controller, error)
	Resume(raw string) (uuid.UUID, *bookingflow.Controller, bool)
}

type SessionMiddleware struct {
	store     SessionStore
	cookieCfg config.CookieConfig
	cfg       config.SessionConfig
}

func NewSessionMiddleware(store SessionStore, cfg config.Config) *SessionMiddleware {
	return &SessionMiddleware{
		store:     store,
		cookieCfg: cfg.Cookie,
		cfg:       cfg.Session,
	}
}

// StartSession resumes the caller's booking session, or starts a new one when the
// cookie is missing or names an expired one. Mount it only on the route that opens sessions.
func (m *SessionMiddleware) StartSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ctrl, created := m.store.Resume(sessionRef(c))
		m.attach(c, id, ctrl, created)
		c.Next()
	}
}

// RequireSession attaches the caller's live booking controller and answers 404 otherwise.
func (m *SessionMiddleware) RequireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ctrl, err := m.store.Lookup(sessionRef(c))
		if err != nil {
			httperr.AbortWithError(c, http.StatusNotFound, err, MsgSessionNotFound, nil)
			return
		}
		m.attach(c, id, ctrl, false)
		c.Next()
	}
}

// attach refreshes the cookie on every call so its lifetime slides with the idle TTL.
func (m *SessionMiddleware) attach(c *gin.Context, id uuid.UUID, ctrl *bookingflow.Controller, created bool) {
	cookie.SetSession(c, m.cookieCfg, id.String(), m.cfg.IdleTTL)
	c.Header(sessionHeader, id.String())

	c.Set(ctxSessionIDKey, id.String())
	c.Set(ctxSessionCreatedKey, created)
	c.Set(ctxControllerKey, ctrl)
}

func sessionRef(c *gin.Context) string {
	if raw := cookie.GetSession(c); raw != "" {
		return raw
	}
	return c.GetHeader(sessionHeader)
}

func GetController(c *gin.Context) (*bookingflow.Controller, bool) {
	v, exists := c.Get(ctxControllerKey)
	if !exists {
		return nil, false
	}
	ctrl, ok := v.(*bookingflow.Controller)
	return ctrl, ok && ctrl != nil
}

func GetSessionID(c *gin.Context) string {
	return c.GetString(ctxSessionIDKey)
}

func SessionCreated(c *gin.Context) bool {
	return c.GetBool(ctxSessionCreatedKey)
}
