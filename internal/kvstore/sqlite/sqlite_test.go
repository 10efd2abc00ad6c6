package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"
)

func openTemp(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "kv.db"))
	if err != nil {
		t.Fatalf("Open error: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestStore_PutGetDelete(t *testing.T) {
	s := openTemp(t)
	ctx := context.Background()

	if _, ok, err := s.Get(ctx, "ph_users"); err != nil || ok {
		t.Fatalf("expected missing key, ok=%v err=%v", ok, err)
	}

	if err := s.Put(ctx, "ph_users", `[{"id":1}]`); err != nil {
		t.Fatalf("Put error: %v", err)
	}
	v, ok, err := s.Get(ctx, "ph_users")
	if err != nil || !ok || v != `[{"id":1}]` {
		t.Fatalf("Get: v=%q ok=%v err=%v", v, ok, err)
	}

	// upsert pisa el valor completo
	if err := s.Put(ctx, "ph_users", `[]`); err != nil {
		t.Fatalf("Put #2 error: %v", err)
	}
	v, _, _ = s.Get(ctx, "ph_users")
	if v != `[]` {
		t.Fatalf("expected replaced value, got %q", v)
	}

	if err := s.Delete(ctx, "ph_users"); err != nil {
		t.Fatalf("Delete error: %v", err)
	}
	if _, ok, _ := s.Get(ctx, "ph_users"); ok {
		t.Fatalf("expected key gone after Delete")
	}
}

func TestStore_SurvivesReopen(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "kv.db")
	ctx := context.Background()

	s1, err := Open(path)
	if err != nil {
		t.Fatalf("Open error: %v", err)
	}
	if err := s1.Put(ctx, "ph_session", `{"email":"user@example.com"}`); err != nil {
		t.Fatalf("Put error: %v", err)
	}
	if err := s1.Close(); err != nil {
		t.Fatalf("Close error: %v", err)
	}

	s2, err := Open(path)
	if err != nil {
		t.Fatalf("reopen error: %v", err)
	}
	defer s2.Close()

	v, ok, err := s2.Get(ctx, "ph_session")
	if err != nil || !ok {
		t.Fatalf("Get after reopen: ok=%v err=%v", ok, err)
	}
	if v != `{"email":"user@example.com"}` {
		t.Fatalf("unexpected value after reopen: %q", v)
	}
}

func TestStore_WatchFiresAfterDurableWrite(t *testing.T) {
	s := openTemp(t)
	ctx := context.Background()

	ch, cancel := s.Watch()
	defer cancel()

	if err := s.Put(ctx, "ph_chats", "[]"); err != nil {
		t.Fatalf("Put error: %v", err)
	}

	select {
	case ev := <-ch:
		if ev.Key != "ph_chats" {
			t.Fatalf("expected event for ph_chats, got %q", ev.Key)
		}
	case <-time.After(time.Second):
		t.Fatalf("no change event received")
	}
}
