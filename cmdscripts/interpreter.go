package cmdscripts

import (
	"context"
	"errors"
	"strings"

	"github.com/reusee/propscript/faults"
)

// Interpreter dispatches line-oriented command scripts against a
// registry. Lines are independent: a failing line is reported to the
// sink and the remaining lines still run.
type Interpreter struct {
	registry *Registry
	sink     faults.Sink
	onLine   func(name string, args []string)
}

func NewInterpreter(registry *Registry, sink faults.Sink) *Interpreter {
	return &Interpreter{
		registry: registry,
		sink:     sink,
	}
}

// OnLine installs a hook invoked after each successfully executed
// line, with the command name and its arguments.
func (i *Interpreter) OnLine(fn func(name string, args []string)) {
	i.onLine = fn
}

// Run interprets script against env. Tokens are runs of
// non-whitespace; there is no quoting. Commands needing multi-word
// values join trailing tokens themselves.
func (i *Interpreter) Run(ctx context.Context, env Env, script string) {
	for n, line := range strings.Split(script, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		tokens := strings.Fields(line)
		name := tokens[0]
		args := tokens[1:]

		command, ok := i.registry.Lookup(name)
		if !ok {
			i.sink(ctx, faults.Event{
				What: name,
				Line: n + 1,
				Err: UnknownCommandError{
					Name: name,
				},
			})
			continue
		}

		if err := command.exec(env, args); err != nil {
			var arity ArityError
			if !errors.As(err, &arity) {
				err = ExecError{
					Name: name,
					Err:  err,
				}
			}
			i.sink(ctx, faults.Event{
				What: name,
				Line: n + 1,
				Err:  err,
			})
			continue
		}

		if i.onLine != nil {
			i.onLine(name, args)
		}
	}
}
