package engines

import (
	"context"

	"github.com/reusee/propscript/props"
)

// render applies the current tree to the target: identity, text,
// color, size, then animation styling.
func (e *Engine) render(ctx context.Context) error {
	if err := e.target.Create(ctx); err != nil {
		return err
	}

	if id, ok := e.tree.Str("id"); ok {
		e.target.SetID(id)
	}
	if text, ok := e.tree.Str("text"); ok {
		e.target.SetText(text)
	}
	if color, ok := e.tree.Str("color"); ok {
		e.target.SetStyle("background-color", color)
	}
	if width, ok := e.tree.Str("width"); ok {
		e.target.SetStyle("width", width)
	}
	if height, ok := e.tree.Str("height"); ok {
		e.target.SetStyle("height", height)
	}

	if animation, ok := e.tree.Sub("animation"); ok {
		e.applyAnimation(animation)
	}

	return nil
}

func (e *Engine) applyAnimation(animation *props.Tree) {
	typ, _ := animation.Str("type")
	switch typ {

	case "fade":
		duration, ok := animation.Str("duration")
		if !ok {
			duration = "1s"
		}
		e.target.SetStyle("transition", "opacity "+duration)

	default:
		// unrecognized animation types are a forward-compatible no-op
	}
}
