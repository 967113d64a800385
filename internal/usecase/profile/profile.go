//go:generate mockgen -source=profile.go -destination=../../../tests/mock/profile/profile.go -package=profilemock

package profile

import (
	"context"
	"sync"
	"time"

	"agenda-web/internal/pkg/clock"
	"agenda-web/internal/pkg/errs"
)

// Profile is the business identity shown in the page header and footer.
type Profile struct {
	Name  string
	Email string
	Extra map[string]any
}

type Source interface {
	BusinessProfile(ctx context.Context) (*Profile, error)
}

type UseCase interface {
	Get(ctx context.Context) (*Profile, error)
}

// cachedUseCase keeps the last successful answer for ttl. Failures are not cached.
type cachedUseCase struct {
	source Source
	clock  clock.Clock
	ttl    time.Duration

	mu        sync.Mutex
	cached    *Profile
	fetchedAt time.Time
}

func NewUseCase(source Source, c clock.Clock, ttl time.Duration) UseCase {
	return &cachedUseCase{source: source, clock: c, ttl: ttl}
}

func (u *cachedUseCase) Get(ctx context.Context) (*Profile, error) {
	u.mu.Lock()
	if u.cached != nil && u.clock.Now().Sub(u.fetchedAt) < u.ttl {
		p := u.cached
		u.mu.Unlock()
		return p, nil
	}
	u.mu.Unlock()

	p, err := u.source.BusinessProfile(ctx)
	if err != nil {
		return nil, errs.Wrap(err, "load business profile")
	}

	u.mu.Lock()
	u.cached = p
	u.fetchedAt = u.clock.Now()
	u.mu.Unlock()
	return p, nil
}
