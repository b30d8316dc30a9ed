package web

import (
	"context"
	"fmt"
	"sync"

	"github.com/arebot/horasbot/internal/application"
	"github.com/arebot/horasbot/internal/ports"
)

// DialFunc builds a time-tracker handle bound to one bearer token.
type DialFunc func(token string) ports.TimeTracker

// Sessions caches one executor service per bearer token for the lifetime of
// the process. An entry is created on first use, after the token has been
// proven valid against the remote API, and only leaves the cache through
// the explicit session-delete endpoint.
type Sessions struct {
	dial  DialFunc
	clock ports.Clock

	mu       sync.Mutex
	services map[string]*application.Service
	locks    map[string]*sync.Mutex
}

func NewSessions(dial DialFunc, clock ports.Clock) *Sessions {
	if clock == nil {
		clock = ports.SystemClock{}
	}

	return &Sessions{
		dial:     dial,
		clock:    clock,
		services: map[string]*application.Service{},
		locks:    map[string]*sync.Mutex{},
	}
}

// Get returns the cached service for token, bootstrapping it on first use.
// Bootstrapping fetches the project list once to prove the token works; a
// rejection surfaces here, before any command executes. A per-token lock
// keeps concurrent first requests from validating the same token twice.
func (s *Sessions) Get(ctx context.Context, token string) (*application.Service, error) {
	s.mu.Lock()
	if service, ok := s.services[token]; ok {
		s.mu.Unlock()
		return service, nil
	}
	lock, ok := s.locks[token]
	if !ok {
		lock = &sync.Mutex{}
		s.locks[token] = lock
	}
	s.mu.Unlock()

	lock.Lock()
	defer lock.Unlock()

	s.mu.Lock()
	service, ok := s.services[token]
	s.mu.Unlock()
	if ok {
		return service, nil
	}

	tracker := s.dial(token)
	if _, err := tracker.Projects(ctx); err != nil {
		return nil, fmt.Errorf("validate token: %w", err)
	}

	service = application.NewService(tracker, s.clock)

	s.mu.Lock()
	s.services[token] = service
	s.mu.Unlock()

	return service, nil
}

// Delete evicts the session for token and reports whether one existed.
func (s *Sessions) Delete(token string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, ok := s.services[token]
	delete(s.services, token)
	delete(s.locks, token)
	return ok
}

// Len reports the number of active sessions.
func (s *Sessions) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.services)
}
