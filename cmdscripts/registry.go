package cmdscripts

import "fmt"

// Registry maps command names to commands. Registration never
// collides: the last definition of a name wins.
type Registry struct {
	commands map[string]*Command
}

func NewRegistry() *Registry {
	return &Registry{
		commands: make(map[string]*Command),
	}
}

func (r *Registry) Define(name string, command *Command) error {
	if name == "" {
		return fmt.Errorf("%w: empty command name", ErrInvalidRegistration)
	}
	r.commands[name] = command
	return nil
}

func (r *Registry) Lookup(name string) (*Command, bool) {
	command, ok := r.commands[name]
	return command, ok
}
