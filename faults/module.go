package faults

import (
	"context"
	"fmt"

	"github.com/reusee/dscope"
	"github.com/reusee/propscript/logs"
	"github.com/reusee/propscript/modes"
)

type Module struct {
	dscope.Module
	Logs logs.Module
}

func (Module) Sink(
	logger logs.Logger,
	mode modes.Mode,
) Sink {
	return func(ctx context.Context, event Event) {
		args := []any{
			"what", event.What,
			"error", event.Err,
		}
		if event.Line > 0 {
			args = append(args, "line", event.Line)
		}
		if mode == modes.ModeDevelopment {
			args = append(args, "type", fmt.Sprintf("%T", event.Err))
		}
		logger.ErrorContext(ctx, "script fault", args...)
	}
}
