package cmdscripts

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/reusee/propscript/faults"
)

func collectSink(events *[]faults.Event) faults.Sink {
	return func(ctx context.Context, event faults.Event) {
		*events = append(*events, event)
	}
}

func TestSetProperty(t *testing.T) {
	var events []faults.Event
	interp := NewInterpreter(Builtins(), collectSink(&events))

	env := Env{}
	interp.Run(context.Background(), env, `setProperty a hello world`)

	if len(events) != 0 {
		t.Fatalf("got %v", events)
	}
	if env["a"] != "hello world" {
		t.Fatalf("got %v", env["a"])
	}
}

func TestAnimateElement(t *testing.T) {
	var events []faults.Event
	interp := NewInterpreter(Builtins(), collectSink(&events))

	env := Env{}
	interp.Run(context.Background(), env, `animateElement fadeIn 2s`)

	if len(events) != 0 {
		t.Fatalf("got %v", events)
	}
	if len(env) != 1 {
		t.Fatalf("got %v", env)
	}
	animation, ok := env[AnimationKey].(Animation)
	if !ok {
		t.Fatalf("got %T", env[AnimationKey])
	}
	if animation.Name != "fadeIn" || animation.Duration != "2s" {
		t.Fatalf("got %+v", animation)
	}
}

func TestPerLineIsolation(t *testing.T) {
	var events []faults.Event
	interp := NewInterpreter(Builtins(), collectSink(&events))

	env := Env{}
	interp.Run(context.Background(), env, `# comment
noSuchCommand x y
setProperty a ok
`)

	if len(events) != 1 {
		t.Fatalf("got %v", events)
	}
	if events[0].Line != 2 {
		t.Fatalf("got %+v", events[0])
	}
	var unknown UnknownCommandError
	if !errors.As(events[0].Err, &unknown) || unknown.Name != "noSuchCommand" {
		t.Fatalf("got %v", events[0].Err)
	}
	if env["a"] != "ok" {
		t.Fatalf("got %v", env["a"])
	}
}

func TestArityReported(t *testing.T) {
	var events []faults.Event
	interp := NewInterpreter(Builtins(), collectSink(&events))

	interp.Run(context.Background(), Env{}, `setProperty onlykey
animateElement onlyname`)

	if len(events) != 2 {
		t.Fatalf("got %v", events)
	}
	for _, event := range events {
		var arity ArityError
		if !errors.As(event.Err, &arity) {
			t.Fatalf("got %v", event.Err)
		}
	}
}

func TestExecFailureReported(t *testing.T) {
	registry := Builtins()
	registry.Define("explode", Handle(func(env Env, args []string) error {
		return fmt.Errorf("bad day")
	}))

	var events []faults.Event
	interp := NewInterpreter(registry, collectSink(&events))

	env := Env{}
	interp.Run(context.Background(), env, `explode
setProperty a still-works`)

	if len(events) != 1 {
		t.Fatalf("got %v", events)
	}
	var exec ExecError
	if !errors.As(events[0].Err, &exec) {
		t.Fatalf("got %v", events[0].Err)
	}
	if exec.Name != "explode" {
		t.Fatalf("got %+v", exec)
	}
	if env["a"] != "still-works" {
		t.Fatalf("got %v", env["a"])
	}
}

func TestOnLineHook(t *testing.T) {
	var events []faults.Event
	interp := NewInterpreter(Builtins(), collectSink(&events))

	var lines []string
	interp.OnLine(func(name string, args []string) {
		lines = append(lines, fmt.Sprintf("%s/%d", name, len(args)))
	})

	interp.Run(context.Background(), Env{}, `setProperty a 1
noSuchCommand
animateElement fadeIn 2s`)

	if str := fmt.Sprintf("%v", lines); str != "[setProperty/2 animateElement/2]" {
		t.Fatalf("got %v", str)
	}
}
