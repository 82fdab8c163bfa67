package cmdscripts

import (
	"errors"
	"testing"
)

func TestRegistryDefine(t *testing.T) {
	registry := NewRegistry()

	err := registry.Define("", Handle(func(env Env, args []string) error {
		return nil
	}))
	if !errors.Is(err, ErrInvalidRegistration) {
		t.Fatalf("got %v", err)
	}

	if err := registry.Define("foo", Handle(func(env Env, args []string) error {
		env["which"] = "first"
		return nil
	})); err != nil {
		t.Fatal(err)
	}
	// last registration wins, silently
	if err := registry.Define("foo", Handle(func(env Env, args []string) error {
		env["which"] = "second"
		return nil
	})); err != nil {
		t.Fatal(err)
	}

	command, ok := registry.Lookup("foo")
	if !ok {
		t.Fatal()
	}
	env := Env{}
	if err := command.exec(env, nil); err != nil {
		t.Fatal(err)
	}
	if env["which"] != "second" {
		t.Fatalf("got %v", env["which"])
	}

	if _, ok := registry.Lookup("bar"); ok {
		t.Fatal()
	}
}
