package cmdscripts

import "strings"

// AnimationKey is the reserved environment key animateElement records
// under.
const AnimationKey = "animation"

type Animation struct {
	Name     string
	Duration string
}

// Builtins returns a registry holding the built-in commands.
func Builtins() *Registry {
	registry := NewRegistry()

	registry.Define("setProperty", Func(
		func(env Env, key string, values ...string) error {
			if len(values) == 0 {
				return ArityError{
					Want: 2,
					Got:  1,
				}
			}
			env[key] = strings.Join(values, " ")
			return nil
		},
	).Desc("set a named value in the shared environment"))

	registry.Define("animateElement", Func(
		func(env Env, name string, duration string, _ ...string) error {
			env[AnimationKey] = Animation{
				Name:     name,
				Duration: duration,
			}
			return nil
		},
	).Desc("record an animation request"))

	return registry
}
