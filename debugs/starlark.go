package debugs

import (
	"github.com/reusee/propscript/props"
	"go.starlark.net/starlark"
)

func toStarlarkValue(value props.Value) starlark.Value {
	switch value := value.(type) {

	case props.Str:
		return starlark.String(value)

	case *props.Tree:
		d := starlark.NewDict(value.Len())
		for key, sub := range value.All() {
			d.SetKey(starlark.String(key), toStarlarkValue(sub))
		}
		return d

	}

	return starlark.None
}
