package store

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(context.Background(), filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func TestGetMissingKey(t *testing.T) {
	db := openTestDB(t)
	if v, ok := db.Get("dashboard:layout"); ok || v != "" {
		t.Fatalf("expected miss, got %q ok=%v", v, ok)
	}
}

func TestSetGetRoundTrip(t *testing.T) {
	db := openTestDB(t)
	if err := db.Set("dashboard:layout", `{"cols":[28,44,28]}`); err != nil {
		t.Fatalf("Set: %v", err)
	}
	v, ok := db.Get("dashboard:layout")
	if !ok || v != `{"cols":[28,44,28]}` {
		t.Fatalf("Get = %q ok=%v", v, ok)
	}
}

func TestSetOverwrites(t *testing.T) {
	db := openTestDB(t)
	if err := db.Set("k", "one"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := db.Set("k", "two"); err != nil {
		t.Fatalf("Set again: %v", err)
	}
	if v, _ := db.Get("k"); v != "two" {
		t.Fatalf("overwrite lost: %q", v)
	}
}

func TestDeleteIsIdempotent(t *testing.T) {
	db := openTestDB(t)
	if err := db.Set("k", "v"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := db.Delete("k"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, ok := db.Get("k"); ok {
		t.Fatalf("key survived delete")
	}
	if err := db.Delete("k"); err != nil {
		t.Fatalf("second Delete: %v", err)
	}
}

func TestKeysSorted(t *testing.T) {
	db := openTestDB(t)
	for _, k := range []string{"dashboard:slots", "dashboard:2026", "dashboard:layout"} {
		if err := db.Set(k, "{}"); err != nil {
			t.Fatalf("Set %s: %v", k, err)
		}
	}
	keys, err := db.Keys()
	if err != nil {
		t.Fatalf("Keys: %v", err)
	}
	want := []string{"dashboard:2026", "dashboard:layout", "dashboard:slots"}
	if len(keys) != len(want) {
		t.Fatalf("Keys = %v", keys)
	}
	for i := range want {
		if keys[i] != want[i] {
			t.Fatalf("Keys = %v, want %v", keys, want)
		}
	}
}

func TestOpErrorUnwrap(t *testing.T) {
	inner := errors.New("disk full")
	err := &OpError{Op: "set", Key: "dashboard:layout", Err: inner}
	if !errors.Is(err, inner) {
		t.Fatalf("Unwrap broken")
	}
	if err.Error() == "" {
		t.Fatalf("empty message")
	}
}
