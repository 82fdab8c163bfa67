package targets

import "context"

// Target is the opaque artifact an engine configures. The engine
// calls Create before applying anything; implementations create
// themselves lazily and tolerate repeated calls.
type Target interface {
	Create(ctx context.Context) error
	SetID(id string)
	SetText(text string)
	SetStyle(name string, value string)
}

// Resolver maps a target identifier to a Target.
type Resolver func(id string) (Target, bool)

// Table is a Resolver backed by a fixed identifier table.
type Table map[string]Target

func (t Table) Resolve(id string) (Target, bool) {
	target, ok := t[id]
	return target, ok
}
