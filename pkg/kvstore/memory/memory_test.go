package memory

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"myroom/pkg/kvstore"
)

func TestStore_ExpiresAfterTTL(t *testing.T) {
	ctx := context.Background()
	s := NewWithTTL(time.Hour)
	defer s.Close(ctx)

	now := time.Date(2025, 7, 1, 12, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return now }

	if err := s.Set(ctx, "session:a:wishlist", []byte(`["1"]`)); err != nil {
		t.Fatalf("Set: %v", err)
	}

	now = now.Add(59 * time.Minute)
	if _, err := s.Get(ctx, "session:a:wishlist"); err != nil {
		t.Fatalf("value should still be live: %v", err)
	}

	now = now.Add(time.Minute)
	if _, err := s.Get(ctx, "session:a:wishlist"); !errors.Is(err, kvstore.ErrNotFound) {
		t.Errorf("expected ErrNotFound after ttl, got %v", err)
	}
	if s.Len() != 0 {
		t.Errorf("expired value should be dropped on read, Len = %d", s.Len())
	}
}

func TestStore_SetRefreshesExpiry(t *testing.T) {
	ctx := context.Background()
	s := NewWithTTL(time.Hour)
	defer s.Close(ctx)

	now := time.Date(2025, 7, 1, 12, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return now }

	_ = s.Set(ctx, "k", []byte("v1"))
	now = now.Add(50 * time.Minute)
	_ = s.Set(ctx, "k", []byte("v2"))
	now = now.Add(50 * time.Minute)

	got, err := s.Get(ctx, "k")
	if err != nil || string(got) != "v2" {
		t.Errorf("rewritten value should live a full ttl, got %s %v", got, err)
	}
}

func TestStore_SweepEvictsAbandonedSessions(t *testing.T) {
	ctx := context.Background()
	s := NewWithTTL(time.Hour)
	defer s.Close(ctx)

	now := time.Date(2025, 7, 1, 12, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return now }

	for i := 0; i < 1000; i++ {
		scoped := kvstore.Scoped(s, kvstore.SessionPrefix(fmt.Sprintf("visitor-%d", i)))
		_ = scoped.Set(ctx, "myroom_recent_searches", []byte(`[]`))
	}
	now = now.Add(30 * time.Minute)
	_ = s.Set(ctx, "session:fresh:wishlist", []byte(`[]`))

	now = now.Add(31 * time.Minute)
	if removed := s.sweep(); removed != 1000 {
		t.Errorf("sweep removed %d, want 1000", removed)
	}
	if s.Len() != 1 {
		t.Errorf("Len = %d, want the one fresh value", s.Len())
	}
}

func TestStore_NoTTLKeepsValues(t *testing.T) {
	ctx := context.Background()
	s := New()
	now := time.Date(2025, 7, 1, 12, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return now }

	_ = s.Set(ctx, "k", []byte("v"))
	now = now.Add(24 * 365 * time.Hour)

	if _, err := s.Get(ctx, "k"); err != nil {
		t.Errorf("value without ttl should never expire: %v", err)
	}
	if removed := s.sweep(); removed != 0 {
		t.Errorf("sweep removed %d", removed)
	}
}
