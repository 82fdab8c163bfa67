package logs

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/reusee/dscope"
)

func TestWithScript(t *testing.T) {
	buf := new(bytes.Buffer)
	dscope.New(new(Module)).Fork(
		func() Writer {
			return buf
		},
	).Call(func(
		logger Logger,
	) {
		ctx := WithScript(context.Background(), "startup.script")
		logger.InfoContext(ctx, "rendered")

		var line string
		for _, l := range strings.Split(buf.String(), "\n") {
			if strings.Contains(l, "msg=rendered") {
				line = l
			}
		}
		if !strings.Contains(line, "logs.script=startup.script") {
			t.Fatalf("got %v", buf.String())
		}
	})
}
