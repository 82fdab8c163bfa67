package debugs

import (
	"testing"

	"github.com/reusee/dscope"
	"github.com/reusee/propscript/props"
)

func TestTap(t *testing.T) {
	dscope.New(
		new(Module),
	).Call(func(
		tap Tap,
	) {
		tap(t.Context(), "test", props.Parse("text = \"Hi\"\nanimation.type = \"fade\"\n"))
	})
}

func TestToStarlarkValue(t *testing.T) {
	tree := props.Parse("a = 1\nb.c = 2\n")
	value := toStarlarkValue(tree)

	str := value.String()
	if str != `{"a": "1", "b": {"c": "2"}}` {
		t.Fatalf("got %v", str)
	}
}
