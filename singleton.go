package verdant

import (
	"database/sql"
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"
)

// Singleton bridges a most-recent-row resource (about, hero, contact, logo)
// to a cached record. Legacy tables may hold several rows; fetch always
// returns the newest one.
type Singleton[T any] struct {
	name  string
	log   *zap.Logger
	fetch func() (T, error)

	mu      sync.RWMutex
	current *T
}

func newSingleton[T any](name string, log *zap.Logger, fetch func() (T, error)) *Singleton[T] {
	s := &Singleton[T]{name: name, log: log, fetch: fetch}
	if err := s.Refresh(); err != nil {
		s.log.Warn("initial fetch failed", zap.String("singleton", name), zap.Error(err))
	}
	return s
}

// Current returns the cached record and whether one exists.
func (s *Singleton[T]) Current() (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		var zero T
		return zero, false
	}
	return *s.current, true
}

// Refresh re-fetches the record. A missing row clears the cache without
// error; any other failure keeps the previous value.
func (s *Singleton[T]) Refresh() error {
	v, err := s.fetch()
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			s.mu.Lock()
			s.current = nil
			s.mu.Unlock()
			return nil
		}
		return fmt.Errorf("fetch %s: %w", s.name, err)
	}
	s.mu.Lock()
	s.current = &v
	s.mu.Unlock()
	return nil
}

// mutate runs a store write and refreshes on success. On failure the cache
// is left unchanged.
func (s *Singleton[T]) mutate(write func() error) error {
	if err := write(); err != nil {
		return fmt.Errorf("update %s: %w", s.name, err)
	}
	if err := s.Refresh(); err != nil {
		s.log.Warn("refresh after update failed", zap.String("singleton", s.name), zap.Error(err))
	}
	return nil
}
