package jwt

import (
	"errors"
	"fmt"
	"time"

	"agenda-web/internal/pkg/clock"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrNotJWT       = errors.New("token is not a JWT")
	ErrExpiredToken = errors.New("token expired")
)

// Claims are the admin token claims the backend is known to issue. The signature is
// never checked here; the backend stays the authority.
type Claims struct {
	AdminID any    `json:"id,omitempty"`
	Email   string `json:"email,omitempty"`
	jwt.RegisteredClaims
}

// Subject returns the admin id claim (or sub) as a string for logging.
func (c *Claims) Subject() string {
	if c.AdminID != nil {
		return fmt.Sprint(c.AdminID)
	}
	return c.RegisteredClaims.Subject
}

type Inspector struct {
	clock  clock.Clock
	leeway time.Duration
	parser *jwt.Parser
}

func NewInspector(c clock.Clock, leeway time.Duration) *Inspector {
	return &Inspector{
		clock:  c,
		leeway: leeway,
		parser: jwt.NewParser(),
	}
}

// Inspect decodes tokenString without verifying it. Opaque tokens yield ErrNotJWT;
// tokens whose exp claim has passed yield their claims and ErrExpiredToken.
func (i *Inspector) Inspect(tokenString string) (*Claims, error) {
	claims := &Claims{}
	if _, _, err := i.parser.ParseUnverified(tokenString, claims); err != nil {
		return nil, ErrNotJWT
	}

	if claims.ExpiresAt != nil && i.clock.Now().After(claims.ExpiresAt.Add(i.leeway)) {
		return claims, ErrExpiredToken
	}
	return claims, nil
}
