// Package session keeps one booking controller per browser session in memory.
package session

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"agenda-web/internal/pkg/clock"
	"agenda-web/internal/pkg/config"
	"agenda-web/internal/pkg/errs"
	"agenda-web/internal/usecase/bookingflow"

	"github.com/google/uuid"
)

type ControllerFactory interface {
	New() *bookingflow.Controller
}

// Gauge is satisfied by prometheus.Gauge.
type Gauge interface {
	Set(float64)
}

type entry struct {
	ctrl     *bookingflow.Controller
	lastSeen time.Time
}

// Store is safe for concurrent use. Sessions idle for longer than the configured TTL
// are evicted by Sweep, which the background loop started by Start calls periodically.
type Store struct {
	mu       sync.Mutex
	sessions map[uuid.UUID]*entry

	factory       ControllerFactory
	clock         clock.Clock
	idleTTL       time.Duration
	sweepInterval time.Duration
	gauge         Gauge
	logger        *slog.Logger

	stop chan struct{}
	done chan struct{}
}

func NewStore(factory ControllerFactory, c clock.Clock, cfg config.SessionConfig, gauge Gauge, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{
		sessions:      make(map[uuid.UUID]*entry),
		factory:       factory,
		clock:         c,
		idleTTL:       cfg.IdleTTL,
		sweepInterval: cfg.SweepInterval,
		gauge:         gauge,
		logger:        logger.With("component", "session"),
	}
}

// Create starts a fresh session.
func (s *Store) Create() (uuid.UUID, *bookingflow.Controller) {
	id := uuid.New()
	ctrl := s.factory.New()

	s.mu.Lock()
	s.sessions[id] = &entry{ctrl: ctrl, lastSeen: s.clock.Now()}
	s.reportLocked()
	s.mu.Unlock()

	s.logger.Debug("session created", "session_id", id.String())
	return id, ctrl
}

// Get returns the controller of a live session and marks it as used.
func (s *Store) Get(id uuid.UUID) (*bookingflow.Controller, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.sessions[id]
	if !ok {
		return nil, errs.Wrapf(errs.ErrSessionNotFound, "session %s", id)
	}
	now := s.clock.Now()
	if s.expired(e, now) {
		delete(s.sessions, id)
		s.reportLocked()
		return nil, errs.Wrapf(errs.ErrSessionNotFound, "session %s expired", id)
	}
	e.lastSeen = now
	return e.ctrl, nil
}

// Lookup resolves the session named by raw without starting a new one.
func (s *Store) Lookup(raw string) (uuid.UUID, *bookingflow.Controller, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, nil, errs.Wrapf(errs.ErrSessionNotFound, "session id %q", raw)
	}
	ctrl, err := s.Get(id)
	if err != nil {
		return uuid.Nil, nil, err
	}
	return id, ctrl, nil
}

// Resume returns the session named by raw when it is still alive, otherwise a new one.
// created reports whether a new session was started.
func (s *Store) Resume(raw string) (id uuid.UUID, ctrl *bookingflow.Controller, created bool) {
	if id, ctrl, err := s.Lookup(raw); err == nil {
		return id, ctrl, false
	}
	id, ctrl = s.Create()
	return id, ctrl, true
}

func (s *Store) Delete(id uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
	s.reportLocked()
}

func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// Sweep evicts idle sessions and returns how many were removed.
func (s *Store) Sweep() int {
	now := s.clock.Now()

	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for id, e := range s.sessions {
		if s.expired(e, now) {
			delete(s.sessions, id)
			removed++
		}
	}
	if removed > 0 {
		s.reportLocked()
		s.logger.Info("idle sessions evicted", "count", removed, "remaining", len(s.sessions))
	}
	return removed
}

func (s *Store) expired(e *entry, now time.Time) bool {
	return s.idleTTL > 0 && now.Sub(e.lastSeen) > s.idleTTL
}

func (s *Store) reportLocked() {
	if s.gauge != nil {
		s.gauge.Set(float64(len(s.sessions)))
	}
}

// Start launches the sweep loop. It returns immediately.
func (s *Store) Start(context.Context) error {
	if s.sweepInterval <= 0 || s.stop != nil {
		return nil
	}
	s.stop = make(chan struct{})
	s.done = make(chan struct{})

	go func() {
		defer close(s.done)
		ticker := time.NewTicker(s.sweepInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				s.Sweep()
			case <-s.stop:
				return
			}
		}
	}()
	return nil
}

// Stop ends the sweep loop, waiting for it up to ctx's deadline.
func (s *Store) Stop(ctx context.Context) error {
	if s.stop == nil {
		return nil
	}
	close(s.stop)
	select {
	case <-s.done:
		s.stop = nil
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
