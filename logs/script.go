package logs

import "context"

// Script names the script currently being interpreted. Records emitted
// while it is in the context carry it as an attribute.
type Script string

type scriptKeyType struct{}

var ScriptKey scriptKeyType

func WithScript(ctx context.Context, name Script) context.Context {
	return context.WithValue(ctx, ScriptKey, name)
}
