package cmdscripts

import (
	"fmt"
	"reflect"
	"strconv"

	"github.com/reusee/propscript/vars"
)

// Handler executes one command invocation against the environment
// passed at call time. args are the positional tokens after the
// command name.
type Handler func(env Env, args []string) error

type Command struct {
	handler     Handler
	Description string
}

func (c *Command) Desc(desc string) *Command {
	c.Description = desc
	return c
}

func (c *Command) exec(env Env, args []string) error {
	return c.handler(env, args)
}

// Handle wraps a plain Handler.
func Handle(fn Handler) *Command {
	return &Command{
		handler: fn,
	}
}

var (
	errorType = reflect.TypeFor[error]()
	envType   = reflect.TypeFor[Env]()
)

// Func adapts a typed function into a Command. The first parameter
// must be Env; remaining parameters are converted from positional
// tokens (bool, ints, floats, string; a pointer parameter is
// optional; a trailing ...string takes all remaining tokens). It may
// return nothing or an error. Too few tokens surface as ArityError.
func Func(fn any) *Command {
	fnValue := reflect.ValueOf(fn)
	fnType := fnValue.Type()

	if fnValue.Kind() != reflect.Func {
		panic(fmt.Errorf("must be function, got %T", fn))
	}
	numRets := fnType.NumOut()
	if numRets >= 2 {
		panic(fmt.Errorf("must return 0 or 1 value"))
	}
	if numRets == 1 && fnType.Out(0) != errorType {
		panic(fmt.Errorf("must return error"))
	}
	numIn := fnType.NumIn()
	if numIn == 0 || fnType.In(0) != envType {
		panic(fmt.Errorf("first parameter must be Env"))
	}
	if fnType.IsVariadic() && fnType.In(numIn-1).Elem().Kind() != reflect.String {
		panic(fmt.Errorf("variadic parameter must be ...string"))
	}

	required := numIn - 1
	if fnType.IsVariadic() {
		required--
	}
	for i := numIn - 1; i >= 1 && fnType.In(i).Kind() == reflect.Pointer; i-- {
		required--
	}

	return &Command{
		handler: func(env Env, args []string) error {
			if len(args) < required {
				return ArityError{
					Want: required,
					Got:  len(args),
				}
			}

			callArgs := []reflect.Value{reflect.ValueOf(env)}
			for i := 1; i < numIn; i++ {
				if fnType.IsVariadic() && i == numIn-1 {
					for _, arg := range args {
						callArgs = append(callArgs, reflect.ValueOf(arg))
					}
					args = nil
					break
				}
				value, err := convertArg(fnType.In(i), args)
				if err != nil {
					return err
				}
				if len(args) > 0 {
					args = args[1:]
				}
				callArgs = append(callArgs, value)
			}

			rets := fnValue.Call(callArgs)
			if len(rets) > 0 {
				if err, ok := rets[0].Interface().(error); ok && err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func convertArg(t reflect.Type, args []string) (ret reflect.Value, err error) {
	if len(args) == 0 {
		if t.Kind() == reflect.Pointer {
			// optional, use zero value
			return reflect.New(t.Elem()), nil
		}
		return ret, fmt.Errorf("expecting argument, got nothing")
	}

	if t.Kind() == reflect.Pointer {
		elemValue, err := convertArg(t.Elem(), args)
		if err != nil {
			return ret, err
		}
		ret = elemValue.Addr()
		return ret, nil
	}

	str := args[0]

	ret = reflect.New(t).Elem()

	switch t.Kind() {

	case reflect.Bool:
		ret.SetBool(vars.StrToBool(str))
		return

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		v, err := strconv.ParseInt(str, 10, 64)
		if err != nil {
			return ret, fmt.Errorf("convert %s to int: %w", str, err)
		}
		ret.SetInt(v)
		return ret, nil

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		v, err := strconv.ParseUint(str, 10, 64)
		if err != nil {
			return ret, fmt.Errorf("convert %s to unsigned int: %w", str, err)
		}
		ret.SetUint(v)
		return ret, nil

	case reflect.Float32, reflect.Float64:
		v, err := strconv.ParseFloat(str, 64)
		if err != nil {
			return ret, fmt.Errorf("convert %s to float: %w", str, err)
		}
		ret.SetFloat(v)
		return ret, nil

	case reflect.String:
		ret.SetString(str)
		return

	}

	return ret, fmt.Errorf("unsupported type: %v", t)
}
