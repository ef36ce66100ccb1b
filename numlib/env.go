/*
Package numlib applies named numeric operators to forms produced by the
parser.  An Env holds the operator table and a handful of named constants.
There are no special forms and no variable bindings: a list form names an
operator in its first cell and every other cell is evaluated as an
argument, which must produce a number.
*/
package numlib

import (
	"errors"
	"fmt"
	"io"
	"math"
	"sort"
	"strings"

	"github.com/luthersystems/elpsnum/num"
	"github.com/luthersystems/elpsnum/parser"
)

// Errors reported by Eval for forms that cannot be applied.  Failures of
// the numeric operations themselves are returned as *num.Error values.
var (
	ErrUnbound  = errors.New("unbound symbol")
	ErrNotFunc  = errors.New("not a function")
	ErrArity    = errors.New("invalid number of arguments")
	ErrArgument = errors.New("argument is not a number")
)

// Config is a function that configures an Env.
type Config func(env *Env)

// WithPrintConfig returns a Config that makes env print numbers using c.
func WithPrintConfig(c *num.PrintConfig) Config {
	return func(env *Env) {
		env.print = c
	}
}

// WithBuiltins returns a Config that adds fns to the operator table of
// env, replacing any operators with the same names.
func WithBuiltins(fns ...*Builtin) Config {
	return func(env *Env) {
		for _, fn := range fns {
			env.builtins[fn.Name()] = fn
		}
	}
}

// WithConstant returns a Config that binds name to the number n.
func WithConstant(name string, n num.Number) Config {
	return func(env *Env) {
		env.constants[name] = n
	}
}

// Env evaluates forms.  An Env is not modified by evaluation and may be
// shared by goroutines once configured.
type Env struct {
	print     *num.PrintConfig
	builtins  map[string]*Builtin
	constants map[string]num.Number
}

// NewEnv returns an Env containing the default operator table and
// constants, modified by configs.
func NewEnv(configs ...Config) *Env {
	env := &Env{
		print:     num.NewPrintConfig(),
		builtins:  make(map[string]*Builtin, len(builtins)),
		constants: make(map[string]num.Number, len(constants)),
	}
	for _, fn := range builtins {
		env.builtins[fn.Name()] = fn
	}
	for _, c := range constants {
		env.constants[c.name] = c.value
	}
	for _, config := range configs {
		config(env)
	}
	return env
}

var constants = []struct {
	name  string
	value num.Number
}{
	{"most-positive-fixnum", num.MakeInteger(math.MaxInt64)},
	{"most-negative-fixnum", num.MakeInteger(math.MinInt64)},
	{"single-float-positive-infinity", num.SinglePositiveInfinity},
	{"single-float-negative-infinity", num.SingleNegativeInfinity},
	{"double-float-positive-infinity", num.DoublePositiveInfinity},
	{"double-float-negative-infinity", num.DoubleNegativeInfinity},
	{"inf", num.DoublePositiveInfinity},
	{"-inf", num.DoubleNegativeInfinity},
}

// Names returns the sorted names of all operators and constants in env.
func (env *Env) Names() []string {
	names := make([]string, 0, len(env.builtins)+len(env.constants))
	for name := range env.builtins {
		names = append(names, name)
	}
	for name := range env.constants {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Builtin returns the operator bound to name.
func (env *Env) Builtin(name string) (*Builtin, bool) {
	fn, ok := env.builtins[name]
	return fn, ok
}

// Load reads all forms in text and evaluates them in order.  Evaluation
// stops at the first error, returning the values computed before it.
func (env *Env) Load(text []byte) ([]*Value, error) {
	forms, err := parser.Read(text)
	if err != nil {
		return nil, err
	}
	vals := make([]*Value, 0, len(forms))
	for _, form := range forms {
		v, err := env.Eval(form)
		if err != nil {
			return vals, err
		}
		vals = append(vals, v)
	}
	return vals, nil
}

// LoadString is like Load but reads text from a string.
func (env *Env) LoadString(text string) ([]*Value, error) {
	return env.Load([]byte(text))
}

// Format writes v to w using the print configuration of env.
func (env *Env) Format(w io.Writer, v *Value) error {
	return v.Format(w, env.print)
}

// Sprint returns v printed using the print configuration of env.
func (env *Env) Sprint(v *Value) string {
	var buf strings.Builder
	_ = v.Format(&buf, env.print)
	return buf.String()
}

// Eval evaluates form.  Errors identify the offset of the innermost form
// that failed.
func (env *Env) Eval(form *parser.Form) (*Value, error) {
	switch form.Type {
	case parser.FormNumber:
		return Number(form.Number), nil
	case parser.FormSymbol:
		n, ok := env.constants[form.Symbol]
		if !ok {
			return nil, fmt.Errorf("offset %d: %w: %s", form.Pos, ErrUnbound, form.Symbol)
		}
		return Number(n), nil
	case parser.FormList:
		return env.apply(form)
	case parser.FormError:
		return nil, form.Err
	default:
		return nil, fmt.Errorf("offset %d: invalid form type: %v", form.Pos, form.Type)
	}
}

func (env *Env) apply(form *parser.Form) (*Value, error) {
	if len(form.Cells) == 0 {
		return nil, fmt.Errorf("offset %d: %w: ()", form.Pos, ErrNotFunc)
	}
	head := form.Cells[0]
	if head.Type != parser.FormSymbol {
		return nil, fmt.Errorf("offset %d: %w: %v", head.Pos, ErrNotFunc, head)
	}
	fn, ok := env.builtins[head.Symbol]
	if !ok {
		if _, ok := env.constants[head.Symbol]; ok {
			return nil, fmt.Errorf("offset %d: %w: %s", head.Pos, ErrNotFunc, head.Symbol)
		}
		return nil, fmt.Errorf("offset %d: %w: %s", head.Pos, ErrUnbound, head.Symbol)
	}
	argForms := form.Cells[1:]
	if err := fn.checkArity(len(argForms)); err != nil {
		return nil, fmt.Errorf("offset %d: %w", form.Pos, err)
	}
	args := make([]num.Number, len(argForms))
	for i, c := range argForms {
		v, err := env.Eval(c)
		if err != nil {
			return nil, err
		}
		if v.Type != ValueNumber {
			return nil, fmt.Errorf("offset %d: %s: %w: %v", c.Pos, fn.Name(), ErrArgument, v)
		}
		args[i] = v.Number
	}
	v, err := fn.Eval(args)
	if err != nil {
		return nil, fmt.Errorf("offset %d: %w", form.Pos, err)
	}
	return v, nil
}
