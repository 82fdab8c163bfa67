package faults

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/reusee/dscope"
	"github.com/reusee/propscript/logs"
	"github.com/reusee/propscript/modes"
)

func TestSink(t *testing.T) {
	buf := new(bytes.Buffer)
	dscope.New(
		new(Module),
		modes.ForTest(t),
	).Fork(
		func() logs.Writer {
			return buf
		},
	).Call(func(
		sink Sink,
	) {
		sink(context.Background(), Event{
			What: "setProperty",
			Line: 3,
			Err:  errors.New("boom"),
		})

		out := buf.String()
		if !strings.Contains(out, "what=setProperty") {
			t.Fatalf("got %v", out)
		}
		if !strings.Contains(out, "line=3") {
			t.Fatalf("got %v", out)
		}
		if !strings.Contains(out, "boom") {
			t.Fatalf("got %v", out)
		}
	})
}
