package configs

import (
	_ "embed"

	"github.com/reusee/dscope"
	"github.com/reusee/propscript/logs"
)

//go:embed schema.cue
var schema string

type Module struct {
	dscope.Module
	Logs logs.Module
}

func (Module) Loader(
	logger logs.Logger,
) Loader {
	paths := Discover(
		"propscript.cue",
		".propscript.cue",
	)
	if len(paths) > 0 {
		logger.Info("config file",
			"paths", paths,
		)
	}
	return NewLoader(paths, schema)
}
