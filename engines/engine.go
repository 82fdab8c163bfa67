package engines

import (
	"context"
	"errors"
	"fmt"

	"github.com/reusee/propscript/faults"
	"github.com/reusee/propscript/logs"
	"github.com/reusee/propscript/props"
	"github.com/reusee/propscript/storages"
	"github.com/reusee/propscript/targets"
	"github.com/reusee/propscript/vars"
)

// DefaultPersistKey is used when neither Config nor the loaded
// configuration names a persistence key.
const DefaultPersistKey = "propscript/state"

var ErrTargetNotFound = errors.New("render target not found")

// Config describes one engine. Target, when set, is used directly;
// otherwise TargetID is resolved through Resolver. StrictParse nil
// defers to the loaded configuration.
type Config struct {
	Target      targets.Target
	TargetID    string
	Resolver    targets.Resolver
	PersistKey  string
	StrictParse *bool
}

// Engine owns one property tree, one persistence key and one render
// target fixed for its lifetime. After every successful update the
// persisted text again reflects the rendered tree.
type Engine struct {
	tree   *props.Tree
	key    string
	target targets.Target
	store  storages.Store
	sink   faults.Sink
	logger logs.Logger
	strict bool
}

// New resolves the render target and restores any persisted state.
// An unresolvable target is the only fatal condition; load, parse
// and render failures go to the sink and construction completes with
// whatever tree was recovered.
func New(
	ctx context.Context,
	config Config,
	store storages.Store,
	sink faults.Sink,
	logger logs.Logger,
) (*Engine, error) {

	target := config.Target
	if target == nil {
		if config.Resolver == nil {
			return nil, fmt.Errorf("%w: no resolver for %q", ErrTargetNotFound, config.TargetID)
		}
		var ok bool
		target, ok = config.Resolver(config.TargetID)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrTargetNotFound, config.TargetID)
		}
	}

	engine := &Engine{
		tree:   props.NewTree(),
		key:    vars.FirstNonZero(config.PersistKey, DefaultPersistKey),
		target: target,
		store:  store,
		sink:   sink,
		logger: logger,
		strict: vars.DerefOrZero(config.StrictParse),
	}

	persisted, ok, err := store.Get(ctx, engine.key)
	if err != nil {
		sink(ctx, faults.Event{
			What: "load",
			Err:  err,
		})
		return engine, nil
	}
	if ok {
		engine.tree = engine.parse(ctx, persisted)
		if err := engine.render(ctx); err != nil {
			sink(ctx, faults.Event{
				What: "render",
				Err:  err,
			})
		}
	}

	return engine, nil
}

// Tree is the current property tree. Callers must not mutate it
// while an update is in flight.
func (e *Engine) Tree() *props.Tree {
	return e.tree
}

func (e *Engine) PersistKey() string {
	return e.key
}

// Update parses text, combines it with the current tree under
// policy, re-renders, then persists the serialized tree. Failures go
// to the sink, never to the caller. A failure before the merge
// completes leaves the tree untouched; render and persist failures
// keep the merged tree. This asymmetry is a contract: valid portions
// of an update stay applied.
func (e *Engine) Update(ctx context.Context, text string, policy props.Policy) {
	incoming := e.parse(ctx, text)
	e.tree = props.Merge(e.tree, incoming, policy)

	if err := e.render(ctx); err != nil {
		e.sink(ctx, faults.Event{
			What: "render",
			Err:  err,
		})
		return
	}

	if err := e.store.Set(ctx, e.key, props.Serialize(e.tree)); err != nil {
		e.sink(ctx, faults.Event{
			What: "persist",
			Err:  err,
		})
		return
	}

	e.logger.DebugContext(ctx, "updated",
		"key", e.key,
		"size", e.tree.Len(),
	)
}

// parse never fails; in strict mode anomalies are reported before
// the (identical) tree is returned.
func (e *Engine) parse(ctx context.Context, text string) *props.Tree {
	if !e.strict {
		return props.Parse(text)
	}
	tree, anomalies := props.ParseReport(text)
	for _, anomaly := range anomalies {
		e.sink(ctx, faults.Event{
			What: "parse",
			Line: anomaly.Line,
			Err:  fmt.Errorf("malformed line: %q", anomaly.Text),
		})
	}
	return tree
}
