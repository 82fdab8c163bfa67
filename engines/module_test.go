package engines

import (
	"context"
	"testing"

	"github.com/reusee/dscope"
	"github.com/reusee/propscript/modes"
	"github.com/reusee/propscript/props"
	"github.com/reusee/propscript/storages"
	"github.com/reusee/propscript/targets"
)

func TestNewEngineProvider(t *testing.T) {
	store := storages.NewMemory()
	dscope.New(
		new(Module),
		modes.ForTest(t),
	).Fork(
		func() storages.Store {
			return store
		},
	).Call(func(
		newEngine NewEngine,
	) {
		ctx := context.Background()
		target := targets.NewMemory()

		engine, err := newEngine(ctx, Config{
			Target:     target,
			PersistKey: "test/state",
		})
		if err != nil {
			t.Fatal(err)
		}
		if engine.PersistKey() != "test/state" {
			t.Fatalf("got %v", engine.PersistKey())
		}

		engine.Update(ctx, `text = "Hi"`, props.PolicyMerge)
		if target.Text != "Hi" {
			t.Fatalf("got %q", target.Text)
		}

		persisted, ok, err := store.Get(ctx, "test/state")
		if err != nil {
			t.Fatal(err)
		}
		if !ok || persisted != "text = \"Hi\"\n" {
			t.Fatalf("got %q", persisted)
		}
	})
}
