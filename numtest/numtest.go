/*
Package numtest runs table driven tests of numeric expressions.  Each
expression is read by the parser, evaluated by a numlib.Env and compared
with the expected printed result.  An expression that fails produces a
result naming its condition, such as #<division-by-zero>.
*/
package numtest

import (
	"errors"
	"fmt"
	"testing"

	"github.com/luthersystems/elpsnum/num"
	"github.com/luthersystems/elpsnum/numlib"
	"github.com/luthersystems/elpsnum/parser"
)

// TestSequence is a sequence of expressions which are evaluated in order by
// a numlib.Env.
type TestSequence []struct {
	Expr   string // a numeric expression
	Result string // the printed result
}

// TestSuite is a set of named TestSequences
type TestSuite []struct {
	Name string
	TestSequence
}

// Runner is a test runner.
type Runner struct {
	// Configs are applied to each environment created by the runner.
	Configs []numlib.Config
}

// NewEnv returns an environment for a test sequence.
func (r *Runner) NewEnv() *numlib.Env {
	return numlib.NewEnv(r.Configs...)
}

// RunTestSuite runs each TestSequence in tests on its own environment.
func (r *Runner) RunTestSuite(t *testing.T, tests TestSuite) {
	for i, test := range tests {
		env := r.NewEnv()
		for j, expr := range test.TestSequence {
			forms, err := parser.ReadString(expr.Expr)
			if err != nil {
				t.Errorf("test %d %q: expr %d: parse error: %v", i, test.Name, j, err)
				continue
			}
			if len(forms) == 0 {
				t.Errorf("test %d %q: expr %d: no expression parsed", i, test.Name, j)
				continue
			}
			if len(forms) != 1 {
				t.Errorf("test %d %q: expr %d: more than one expression parsed (%d)", i, test.Name, j, len(forms))
				continue
			}
			result := Result(env, forms[0])
			if result != expr.Result {
				t.Errorf("test %d %q: expr %d: expected result %s (got %s)", i, test.Name, j, expr.Result, result)
			}
		}
	}
}

// RunTestSuite runs tests using a default Runner.
func RunTestSuite(t *testing.T, tests TestSuite) {
	var r Runner
	r.RunTestSuite(t, tests)
}

// Result evaluates form in env and returns its printed value, or the
// printed condition of the error it produced.
func Result(env *numlib.Env, form *parser.Form) string {
	v, err := env.Eval(form)
	if err != nil {
		return ErrorString(err)
	}
	return env.Sprint(v)
}

// ErrorString returns the printed form of an evaluation error.
func ErrorString(err error) string {
	if c, ok := num.GetCondition(err); ok {
		return fmt.Sprintf("#<%s>", c)
	}
	switch {
	case errors.Is(err, numlib.ErrUnbound):
		return "#<unbound-symbol>"
	case errors.Is(err, numlib.ErrNotFunc):
		return "#<not-a-function>"
	case errors.Is(err, numlib.ErrArity):
		return "#<arity-error>"
	case errors.Is(err, numlib.ErrArgument):
		return "#<type-error>"
	default:
		return "#<error>"
	}
}
