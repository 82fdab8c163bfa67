package engines

import (
	"context"

	"github.com/reusee/dscope"
	"github.com/reusee/propscript/configs"
	"github.com/reusee/propscript/faults"
	"github.com/reusee/propscript/logs"
	"github.com/reusee/propscript/storages"
	"github.com/reusee/propscript/vars"
)

type Module struct {
	dscope.Module
	Configs  configs.Module
	Faults   faults.Module
	Logs     logs.Module
	Storages storages.Module
}

// NewEngine constructs an engine, filling Config gaps from the
// loaded configuration.
type NewEngine func(ctx context.Context, config Config) (*Engine, error)

func (Module) NewEngine(
	loader configs.Loader,
	store storages.Store,
	sink faults.Sink,
	logger logs.Logger,
) NewEngine {
	return func(ctx context.Context, config Config) (*Engine, error) {
		if config.Target == nil && config.TargetID == "" {
			config.TargetID = configs.First[string](loader, "target")
		}
		config.PersistKey = vars.FirstNonZero(
			config.PersistKey,
			configs.First[string](loader, "persist_key"),
		)
		if config.StrictParse == nil {
			strict := configs.First[bool](loader, "strict_parse")
			config.StrictParse = &strict
		}
		return New(ctx, config, store, sink, logger)
	}
}
