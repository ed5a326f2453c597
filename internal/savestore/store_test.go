package savestore

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "data", "saves.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() {
		if err := store.Close(); err != nil {
			t.Errorf("close: %v", err)
		}
	})
	return store
}

func TestPutGetRoundTrip(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	payload := []byte(`{"sceneIndex":3}`)
	if err := store.Put(ctx, "quicksave", payload); err != nil {
		t.Fatalf("Put: %v", err)
	}

	got, ok, err := store.Get(ctx, "quicksave")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if !ok {
		t.Fatal("slot should exist")
	}
	if string(got) != string(payload) {
		t.Fatalf("payload mismatch: %s", got)
	}
}

func TestGetMissingSlot(t *testing.T) {
	store := openTestStore(t)

	_, ok, err := store.Get(context.Background(), "nothing")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if ok {
		t.Fatal("missing slot must report absent, not error")
	}
}

func TestPutReplacesExisting(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	if err := store.Put(ctx, "slot", []byte("one")); err != nil {
		t.Fatalf("Put: %v", err)
	}
	if err := store.Put(ctx, "slot", []byte("two")); err != nil {
		t.Fatalf("Put: %v", err)
	}

	got, _, err := store.Get(ctx, "slot")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if string(got) != "two" {
		t.Fatalf("expected replacement payload, got %s", got)
	}

	slots, err := store.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(slots) != 1 {
		t.Fatalf("upsert should keep one record, got %d", len(slots))
	}
}

func TestPutRejectsEmptySlot(t *testing.T) {
	store := openTestStore(t)
	if err := store.Put(context.Background(), "  ", []byte("x")); err == nil {
		t.Fatal("expected error for empty slot name")
	}
}

func TestListOrdersByUpdate(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	if err := store.Put(ctx, "older", []byte("a")); err != nil {
		t.Fatalf("Put: %v", err)
	}
	time.Sleep(5 * time.Millisecond)
	if err := store.Put(ctx, "newer", []byte("bb")); err != nil {
		t.Fatalf("Put: %v", err)
	}

	slots, err := store.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(slots) != 2 {
		t.Fatalf("expected 2 slots, got %d", len(slots))
	}
	if slots[0].Name != "newer" {
		t.Fatalf("most recent first, got %v", slots)
	}
	if slots[0].Size != 2 || slots[1].Size != 1 {
		t.Fatalf("sizes wrong: %+v", slots)
	}
	if slots[0].UpdatedAt.IsZero() {
		t.Fatal("timestamps should parse")
	}
}

func TestDelete(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	if err := store.Put(ctx, "slot", []byte("x")); err != nil {
		t.Fatalf("Put: %v", err)
	}
	if err := store.Delete(ctx, "slot"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, ok, _ := store.Get(ctx, "slot"); ok {
		t.Fatal("slot should be gone")
	}
	if err := store.Delete(ctx, "slot"); err != nil {
		t.Fatalf("deleting an absent slot should be a no-op, got %v", err)
	}
}

func TestIsSQLiteBusy(t *testing.T) {
	if isSQLiteBusy(nil) {
		t.Error("nil is not busy")
	}
	if !isSQLiteBusy(errors.New("database is locked (5) (SQLITE_BUSY)")) {
		t.Error("busy message not recognized")
	}
	if isSQLiteBusy(errors.New("syntax error")) {
		t.Error("unrelated error flagged busy")
	}
}
