package memory

import (
	"context"
	"sync"
	"time"

	"myroom/pkg/kvstore"
)

const maxSweepInterval = 10 * time.Minute

type entry struct {
	value     []byte
	expiresAt time.Time
}

func (e entry) expired(now time.Time) bool {
	return !e.expiresAt.IsZero() && !now.Before(e.expiresAt)
}

// Store keeps values in a map. Values are copied on the way in and out.
// With a TTL every Set pushes the expiry of the key forward, like a Redis
// SET with EX.
type Store struct {
	mu       sync.RWMutex
	data     map[string]entry
	ttl      time.Duration
	now      func() time.Time
	stopCh   chan struct{}
	stopOnce sync.Once
}

// New returns a store whose values never expire.
func New() *Store {
	return &Store{
		data:   make(map[string]entry),
		now:    time.Now,
		stopCh: make(chan struct{}),
	}
}

// NewWithTTL returns a store that drops values ttl after their last write
// and sweeps expired values in the background until Close.
func NewWithTTL(ttl time.Duration) *Store {
	s := New()
	s.ttl = ttl
	if ttl > 0 {
		go s.cleanup(min(ttl, maxSweepInterval))
	}
	return s
}

func (s *Store) cleanup(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.sweep()
		case <-s.stopCh:
			return
		}
	}
}

func (s *Store) sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	removed := 0
	for key, e := range s.data {
		if e.expired(now) {
			delete(s.data, key)
			removed++
		}
	}
	return removed
}

func (s *Store) Get(_ context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	e, ok := s.data[key]
	s.mu.RUnlock()

	if !ok {
		return nil, kvstore.ErrNotFound
	}
	if e.expired(s.now()) {
		s.mu.Lock()
		if cur, ok := s.data[key]; ok && cur.expired(s.now()) {
			delete(s.data, key)
		}
		s.mu.Unlock()
		return nil, kvstore.ErrNotFound
	}
	return append([]byte(nil), e.value...), nil
}

func (s *Store) Set(_ context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	e := entry{value: append([]byte(nil), value...)}
	if s.ttl > 0 {
		e.expiresAt = s.now().Add(s.ttl)
	}
	s.data[key] = e
	return nil
}

func (s *Store) Remove(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.data, key)
	return nil
}

func (s *Store) Ping(context.Context) error {
	return nil
}

func (s *Store) Close(context.Context) error {
	s.stopOnce.Do(func() { close(s.stopCh) })
	return nil
}

// Len counts stored values, expired ones not yet swept included.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.data)
}
