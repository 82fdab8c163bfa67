package storages

import (
	"context"
	"testing"
)

func TestFileStore(t *testing.T) {
	ctx := context.Background()
	root := t.TempDir()

	store := NewFile(root)
	if _, ok, err := store.Get(ctx, "propscript/state"); err != nil || ok {
		t.Fatalf("got %v %v", ok, err)
	}

	if err := store.Set(ctx, "propscript/state", "text = \"Hi\"\n"); err != nil {
		t.Fatal(err)
	}

	// a second instance over the same root sees the value
	store = NewFile(root)
	value, ok, err := store.Get(ctx, "propscript/state")
	if err != nil {
		t.Fatal(err)
	}
	if !ok || value != "text = \"Hi\"\n" {
		t.Fatalf("got %v %q", ok, value)
	}
}

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	store := NewMemory()

	if _, ok, _ := store.Get(ctx, "k"); ok {
		t.Fatal()
	}
	if err := store.Set(ctx, "k", "v"); err != nil {
		t.Fatal(err)
	}
	value, ok, _ := store.Get(ctx, "k")
	if !ok || value != "v" {
		t.Fatalf("got %v %q", ok, value)
	}
}
