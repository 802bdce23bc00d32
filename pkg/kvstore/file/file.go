package file

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"myroom/pkg/kvstore"
)

const (
	fileExt          = ".json"
	maxSweepInterval = 10 * time.Minute
)

// Store keeps one file per key under Dir. Writes go to a temp file that is
// renamed over the target, so a crash never leaves a half-written value.
// With a TTL a value expires ttl after the modification time of its file.
type Store struct {
	mu       sync.Mutex
	dir      string
	ttl      time.Duration
	now      func() time.Time
	stopCh   chan struct{}
	stopOnce sync.Once
}

// New returns a store whose values never expire.
func New(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create storage dir %s: %w", dir, err)
	}
	return &Store{
		dir:    dir,
		now:    time.Now,
		stopCh: make(chan struct{}),
	}, nil
}

// NewWithTTL returns a store that expires values ttl after their last write
// and sweeps expired files in the background until Close.
func NewWithTTL(dir string, ttl time.Duration) (*Store, error) {
	s, err := New(dir)
	if err != nil {
		return nil, err
	}
	s.ttl = ttl
	if ttl > 0 {
		go s.cleanup(min(ttl, maxSweepInterval))
	}
	return s, nil
}

func (s *Store) cleanup(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			_, _ = s.sweep()
		case <-s.stopCh:
			return
		}
	}
}

func (s *Store) expired(info fs.FileInfo) bool {
	return s.ttl > 0 && s.now().Sub(info.ModTime()) >= s.ttl
}

// sweep removes expired value files and returns how many were removed.
func (s *Store) sweep() (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return 0, fmt.Errorf("list %s: %w", s.dir, err)
	}

	removed := 0
	for _, de := range entries {
		if de.IsDir() || !strings.HasSuffix(de.Name(), fileExt) {
			continue
		}
		info, err := de.Info()
		if err != nil || !s.expired(info) {
			continue
		}
		if err := os.Remove(filepath.Join(s.dir, de.Name())); err == nil {
			removed++
		}
	}
	return removed, nil
}

func (s *Store) path(key string) string {
	return filepath.Join(s.dir, base64.RawURLEncoding.EncodeToString([]byte(key))+fileExt)
}

func (s *Store) Get(_ context.Context, key string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	path := s.path(key)
	if s.ttl > 0 {
		info, err := os.Stat(path)
		if err == nil && s.expired(info) {
			_ = os.Remove(path)
			return nil, kvstore.ErrNotFound
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, kvstore.ErrNotFound
		}
		return nil, fmt.Errorf("read %q: %w", key, err)
	}
	return data, nil
}

func (s *Store) Set(_ context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tmp, err := os.CreateTemp(s.dir, "kv-*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(value); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write %q: %w", key, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close %q: %w", key, err)
	}
	if err := os.Rename(tmpName, s.path(key)); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("rename %q: %w", key, err)
	}
	return nil
}

func (s *Store) Remove(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.path(key)); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("remove %q: %w", key, err)
	}
	return nil
}

func (s *Store) Ping(context.Context) error {
	info, err := os.Stat(s.dir)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return fmt.Errorf("%s is not a directory", s.dir)
	}
	return nil
}

func (s *Store) Close(context.Context) error {
	s.stopOnce.Do(func() { close(s.stopCh) })
	return nil
}
