package bootstrap

import (
	"time"

	"agenda-web/internal/pkg/clock"
	"agenda-web/internal/pkg/jwt"

	"go.uber.org/fx"
)

// tokens within this margin of exp are still forwarded; the backend has the final say
const adminTokenLeeway = 30 * time.Second

var JWTModule = fx.Module("jwt",
	fx.Provide(
		NewTokenInspector,
	),
)

func NewTokenInspector(c clock.Clock) *jwt.Inspector {
	return jwt.NewInspector(c, adminTokenLeeway)
}
