package cmdscripts

import (
	"errors"
	"fmt"
)

var ErrInvalidRegistration = errors.New("invalid registration")

type UnknownCommandError struct {
	Name string
}

func (e UnknownCommandError) Error() string {
	return fmt.Sprintf("unknown command: %s", e.Name)
}

type ArityError struct {
	Want int
	Got  int
}

func (e ArityError) Error() string {
	return fmt.Sprintf("expecting %d arguments, got %d", e.Want, e.Got)
}

type ExecError struct {
	Name string
	Err  error
}

func (e ExecError) Error() string {
	return fmt.Sprintf("command %s: %v", e.Name, e.Err)
}

func (e ExecError) Unwrap() error {
	return e.Err
}
