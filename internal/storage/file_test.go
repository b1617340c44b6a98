package storage

import (
	"context"
	"io"
	"log"
	"os"
	"path/filepath"
	"testing"
)

func newTestFile(t *testing.T) (*FileStore, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "shopctl", "cart.json")
	return NewFile(path, log.New(io.Discard, "", 0)), path
}

func TestFileSaveLoadAcrossInstances(t *testing.T) {
	store, path := newTestFile(t)
	ctx := context.Background()

	store.Save(ctx, "cart", `[{"id":1}]`)
	store.Save(ctx, "cart:ts", "2026-03-01T12:00:00Z")

	// A fresh instance over the same file sees the state.
	reopened := NewFile(path, log.New(io.Discard, "", 0))
	val, ok := reopened.Load(ctx, "cart")
	if !ok || val != `[{"id":1}]` {
		t.Fatalf("expected persisted value back, got %q (present=%v)", val, ok)
	}
	val, ok = reopened.Load(ctx, "cart:ts")
	if !ok || val != "2026-03-01T12:00:00Z" {
		t.Fatalf("expected persisted timestamp back, got %q (present=%v)", val, ok)
	}
}

func TestFileLoadMissing(t *testing.T) {
	store, _ := newTestFile(t)

	if _, ok := store.Load(context.Background(), "cart"); ok {
		t.Fatalf("missing file should report absence")
	}
}

func TestFileRemove(t *testing.T) {
	store, _ := newTestFile(t)
	ctx := context.Background()

	store.Save(ctx, "cart", "x")
	store.Remove(ctx, "cart")
	if _, ok := store.Load(ctx, "cart"); ok {
		t.Fatalf("removed key should be absent")
	}

	// Removing an absent key must not touch the file.
	store.Remove(ctx, "never-there")
}

func TestFileCorruptFileDegrades(t *testing.T) {
	store, path := newTestFile(t)
	ctx := context.Background()

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("{{{not json"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, ok := store.Load(ctx, "cart"); ok {
		t.Fatalf("corrupt file should report absence")
	}

	// Writing over a corrupt file recovers it.
	store.Save(ctx, "cart", "x")
	if val, ok := store.Load(ctx, "cart"); !ok || val != "x" {
		t.Fatalf("expected recovery after save, got %q (present=%v)", val, ok)
	}
}

func TestFileAvailable(t *testing.T) {
	store, _ := newTestFile(t)
	ctx := context.Background()

	if !store.Available(ctx) {
		t.Fatalf("store in a writable dir should be available")
	}
	if _, ok := store.Load(ctx, probeKey); ok {
		t.Fatalf("availability probe must not leave its key behind")
	}
}
