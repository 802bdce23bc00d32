package kvstore_test

import (
	"context"
	"errors"
	"testing"

	"myroom/pkg/kvstore"
	"myroom/pkg/kvstore/file"
	"myroom/pkg/kvstore/memory"
)

func backends(t *testing.T) map[string]kvstore.Store {
	t.Helper()
	fs, err := file.New(t.TempDir())
	if err != nil {
		t.Fatalf("file.New: %v", err)
	}
	return map[string]kvstore.Store{
		"memory": memory.New(),
		"file":   fs,
	}
}

func TestStore_Contract(t *testing.T) {
	for name, s := range backends(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			if _, err := s.Get(ctx, "missing"); !errors.Is(err, kvstore.ErrNotFound) {
				t.Fatalf("expected ErrNotFound, got %v", err)
			}

			if err := s.Set(ctx, "myroom_recent_searches", []byte(`[1]`)); err != nil {
				t.Fatalf("Set: %v", err)
			}
			if err := s.Set(ctx, "myroom_recent_searches", []byte(`[1,2]`)); err != nil {
				t.Fatalf("Set: %v", err)
			}
			got, err := s.Get(ctx, "myroom_recent_searches")
			if err != nil {
				t.Fatalf("Get: %v", err)
			}
			if string(got) != `[1,2]` {
				t.Errorf("expected last write to win, got %s", got)
			}

			if err := s.Remove(ctx, "myroom_recent_searches"); err != nil {
				t.Fatalf("Remove: %v", err)
			}
			if _, err := s.Get(ctx, "myroom_recent_searches"); !errors.Is(err, kvstore.ErrNotFound) {
				t.Errorf("expected ErrNotFound after remove, got %v", err)
			}
			if err := s.Remove(ctx, "never-set"); err != nil {
				t.Errorf("Remove of missing key should be a no-op, got %v", err)
			}
			if err := s.Ping(ctx); err != nil {
				t.Errorf("Ping: %v", err)
			}
		})
	}
}

func TestMemoryStore_CopiesValues(t *testing.T) {
	ctx := context.Background()
	s := memory.New()
	buf := []byte("abc")
	_ = s.Set(ctx, "k", buf)
	buf[0] = 'x'

	got, _ := s.Get(ctx, "k")
	if string(got) != "abc" {
		t.Errorf("stored value changed through caller's slice: %s", got)
	}
	got[1] = 'y'
	again, _ := s.Get(ctx, "k")
	if string(again) != "abc" {
		t.Errorf("stored value changed through returned slice: %s", again)
	}
}

func TestScoped_IsolatesSessions(t *testing.T) {
	ctx := context.Background()
	shared := memory.New()
	a := kvstore.Scoped(shared, kvstore.SessionPrefix("a"))
	b := kvstore.Scoped(shared, kvstore.SessionPrefix("b"))

	_ = a.Set(ctx, "wishlist", []byte(`["1"]`))

	if _, err := b.Get(ctx, "wishlist"); !errors.Is(err, kvstore.ErrNotFound) {
		t.Errorf("session b should not see session a's wishlist, got %v", err)
	}
	raw, err := shared.Get(ctx, "session:a:wishlist")
	if err != nil || string(raw) != `["1"]` {
		t.Errorf("expected prefixed key in shared store, got %s %v", raw, err)
	}
	if err := a.Close(ctx); err != nil {
		t.Errorf("scoped Close: %v", err)
	}
	if shared.Len() != 1 {
		t.Errorf("closing a scope must not touch the shared store")
	}
}
