package persist

import (
	"bytes"
	"context"
	"testing"
)

func TestMemory_RoundTrip(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	got, err := m.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got != nil {
		t.Fatalf("expected nil snapshot from empty engine, got %q", got)
	}

	if err := m.Save(ctx, []byte(`{"session":{}}`)); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err = m.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !bytes.Equal(got, []byte(`{"session":{}}`)) {
		t.Fatalf("unexpected snapshot: %q", got)
	}
}

func TestBadger_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	b, err := OpenBadger(dir)
	if err != nil {
		t.Fatalf("open: %v", err)
	}

	got, err := b.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got != nil {
		t.Fatalf("expected nil snapshot from fresh db, got %q", got)
	}

	want := []byte(`{"tag":{"items":[{"_id":"t1","name":"urgent"}]}}`)
	if err := b.Save(ctx, want); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := b.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	// Snapshot survives reopening the database.
	b, err = OpenBadger(dir)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer b.Close()

	got, err = b.Load(ctx)
	if err != nil {
		t.Fatalf("load after reopen: %v", err)
	}
	if !bytes.Equal(got, want) {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestBadger_SaveReplaces(t *testing.T) {
	b, err := OpenBadger(t.TempDir())
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer b.Close()

	ctx := context.Background()
	if err := b.Save(ctx, []byte("one")); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := b.Save(ctx, []byte("two")); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := b.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if string(got) != "two" {
		t.Fatalf("expected latest snapshot, got %q", got)
	}
}
