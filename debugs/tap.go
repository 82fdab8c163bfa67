package debugs

import (
	"context"

	"github.com/reusee/propscript/logs"
	"github.com/reusee/propscript/props"
	"github.com/reusee/starlarkutil"
	"go.starlark.net/repl"
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// Tap drops into a starlark REPL with the property tree bound as
// `tree` and a `serialize` helper, for poking at engine state.
type Tap func(ctx context.Context, what string, tree *props.Tree)

func (Module) Tap(
	logger logs.Logger,
) Tap {
	return func(ctx context.Context, what string, tree *props.Tree) {
		logger.InfoContext(ctx, "tap: "+what,
			"size", tree.Len(),
		)
		defer func() {
			logger.InfoContext(ctx, "tap end: "+what)
		}()

		mappings := starlark.StringDict{
			"tree": toStarlarkValue(tree),
			"serialize": starlarkutil.MakeFunc("serialize", func() string {
				return props.Serialize(tree)
			}),
		}

		thread := &starlark.Thread{
			Name: "repl",
		}
		repl.REPLOptions(&syntax.FileOptions{
			Set:             true,
			While:           true,
			TopLevelControl: true,
		}, thread, mappings)
	}
}
