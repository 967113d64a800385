//go:build unit

package jwt_test

import (
	"testing"
	"time"

	"agenda-web/internal/pkg/clock"
	"agenda-web/internal/pkg/jwt"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sign(t *testing.T, claims gojwt.MapClaims) string {
	t.Helper()
	s, err := gojwt.NewWithClaims(gojwt.SigningMethodHS256, claims).SignedString([]byte("backend-secret"))
	require.NoError(t, err)
	return s
}

func TestInspect(t *testing.T) {
	now := time.Date(2026, 10, 14, 12, 0, 0, 0, time.UTC)
	inspector := jwt.NewInspector(clock.NewMockClock(now), 30*time.Second)

	t.Run("success: live token", func(t *testing.T) {
		token := sign(t, gojwt.MapClaims{"id": 7, "email": "laura@example.com", "exp": now.Add(time.Hour).Unix()})

		claims, err := inspector.Inspect(token)
		require.NoError(t, err)
		assert.Equal(t, "7", claims.Subject())
		assert.Equal(t, "laura@example.com", claims.Email)
	})

	t.Run("success: token without exp is left to the backend", func(t *testing.T) {
		_, err := inspector.Inspect(sign(t, gojwt.MapClaims{"sub": "admin-1"}))
		assert.NoError(t, err)
	})

	t.Run("success: leeway covers clock skew", func(t *testing.T) {
		_, err := inspector.Inspect(sign(t, gojwt.MapClaims{"exp": now.Add(-10 * time.Second).Unix()}))
		assert.NoError(t, err)
	})

	t.Run("error: expired token", func(t *testing.T) {
		claims, err := inspector.Inspect(sign(t, gojwt.MapClaims{"sub": "admin-1", "exp": now.Add(-time.Hour).Unix()}))
		assert.ErrorIs(t, err, jwt.ErrExpiredToken)
		assert.Equal(t, "admin-1", claims.Subject())
	})

	t.Run("error: opaque token", func(t *testing.T) {
		_, err := inspector.Inspect("3f2a9c")
		assert.ErrorIs(t, err, jwt.ErrNotJWT)
	})
}
