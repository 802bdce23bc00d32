package history

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	apperrors "myroom/pkg/errors"
	"myroom/pkg/kvstore"
	"myroom/pkg/logger"
	"myroom/pkg/model"
)

type Options[T any] struct {
	// Key is the storage slot holding the whole list.
	Key      string
	Capacity int
	// KeyFunc derives the entry id from the entity. Entries sharing an id are
	// collapsed to the newest one.
	KeyFunc func(T) string
	Clock   func() time.Time
}

// Listener receives a copy of the list after each mutation.
type Listener[T any] func(entries []model.HistoryEntry[T])

// Store is a bounded, deduplicated list of entities, newest first, persisted
// as one JSON array under a single key.
type Store[T any] struct {
	opts Options[T]
	kv   kvstore.Store
	log  *logger.Logger

	mu        sync.Mutex
	entries   []model.HistoryEntry[T]
	listeners map[int]Listener[T]
	nextID    int
}

func NewStore[T any](kv kvstore.Store, log *logger.Logger, opts Options[T]) *Store[T] {
	if opts.Capacity < 1 {
		opts.Capacity = 1
	}
	if opts.Clock == nil {
		opts.Clock = time.Now
	}
	return &Store[T]{
		opts:      opts,
		kv:        kv,
		log:       log,
		listeners: make(map[int]Listener[T]),
	}
}

// Load replaces the in-memory list with the persisted one. A missing,
// unreadable or corrupted slot yields an empty list.
func (s *Store[T]) Load(ctx context.Context) []model.HistoryEntry[T] {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries = s.read(ctx)
	return s.snapshot()
}

// Add records item as the newest entry. The in-memory list changes and
// listeners run only once the new list is stored.
func (s *Store[T]) Add(ctx context.Context, item T) error {
	entry := model.HistoryEntry[T]{
		ID:        s.opts.KeyFunc(item),
		Item:      item,
		Timestamp: s.opts.Clock().UTC().Format(time.RFC3339),
	}

	s.mu.Lock()
	next := s.normalize(append([]model.HistoryEntry[T]{entry}, s.entries...))
	return s.commit(ctx, next)
}

// Remove drops the entry with the given id. Removing an unknown id still
// persists the list.
func (s *Store[T]) Remove(ctx context.Context, id string) error {
	s.mu.Lock()
	next := make([]model.HistoryEntry[T], 0, len(s.entries))
	for _, e := range s.entries {
		if e.ID != id {
			next = append(next, e)
		}
	}
	return s.commit(ctx, next)
}

// Clear empties the list and deletes its storage slot. The list is left as
// it was when the slot cannot be deleted.
func (s *Store[T]) Clear(ctx context.Context) error {
	s.mu.Lock()
	if err := s.kv.Remove(ctx, s.opts.Key); err != nil {
		s.mu.Unlock()
		s.log.Error("Failed to clear history", "key", s.opts.Key, "error", err)
		return apperrors.Storage("Failed to clear history", err)
	}
	s.entries = nil
	listeners := s.listenerList()
	s.mu.Unlock()

	s.notify(listeners, []model.HistoryEntry[T]{})
	return nil
}

// commit persists next, swaps it in and notifies listeners. It must be called
// with s.mu held and releases it.
func (s *Store[T]) commit(ctx context.Context, next []model.HistoryEntry[T]) error {
	if err := s.persist(ctx, next); err != nil {
		s.mu.Unlock()
		return err
	}
	s.entries = next
	snapshot, listeners := s.snapshot(), s.listenerList()
	s.mu.Unlock()

	s.notify(listeners, snapshot)
	return nil
}

// Entries returns a copy of the current list, newest first.
func (s *Store[T]) Entries() []model.HistoryEntry[T] {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot()
}

func (s *Store[T]) Subscribe(listener Listener[T]) (unsubscribe func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextID
	s.nextID++
	s.listeners[id] = listener

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.listeners, id)
	}
}

func (s *Store[T]) read(ctx context.Context) []model.HistoryEntry[T] {
	data, err := s.kv.Get(ctx, s.opts.Key)
	if errors.Is(err, kvstore.ErrNotFound) {
		return nil
	}
	if err != nil {
		s.log.Error("Failed to read history", "key", s.opts.Key, "error", err)
		return nil
	}

	var entries []model.HistoryEntry[T]
	if err := json.Unmarshal(data, &entries); err != nil {
		s.log.Warn("Discarding corrupted history", "key", s.opts.Key, "error", err)
		return nil
	}
	return s.normalize(entries)
}

func (s *Store[T]) persist(ctx context.Context, entries []model.HistoryEntry[T]) error {
	data, err := json.Marshal(entries)
	if err != nil {
		return apperrors.Internal("Failed to encode history", err)
	}
	if err := s.kv.Set(ctx, s.opts.Key, data); err != nil {
		s.log.Error("Failed to save history", "key", s.opts.Key, "error", err)
		return apperrors.Storage("Failed to save history", err)
	}
	return nil
}

// normalize keeps the first occurrence of every id and cuts the list to
// capacity.
func (s *Store[T]) normalize(entries []model.HistoryEntry[T]) []model.HistoryEntry[T] {
	seen := make(map[string]struct{}, len(entries))
	out := make([]model.HistoryEntry[T], 0, min(len(entries), s.opts.Capacity))
	for _, e := range entries {
		if _, dup := seen[e.ID]; dup {
			continue
		}
		seen[e.ID] = struct{}{}
		out = append(out, e)
		if len(out) == s.opts.Capacity {
			break
		}
	}
	return out
}

func (s *Store[T]) snapshot() []model.HistoryEntry[T] {
	out := make([]model.HistoryEntry[T], len(s.entries))
	copy(out, s.entries)
	return out
}

func (s *Store[T]) listenerList() []Listener[T] {
	out := make([]Listener[T], 0, len(s.listeners))
	for _, l := range s.listeners {
		out = append(out, l)
	}
	return out
}

func (s *Store[T]) notify(listeners []Listener[T], entries []model.HistoryEntry[T]) {
	for _, l := range listeners {
		l(entries)
	}
}
