package repl

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/luthersystems/elpsnum/num"
	"github.com/luthersystems/elpsnum/numlib"
)

func testRepl(opts ...Option) (*repl, *bytes.Buffer, *bytes.Buffer) {
	var stdout, stderr bytes.Buffer
	r := newRepl(append([]Option{WithStderr(&stderr)}, opts...)...)
	r.stdout = &stdout
	return r, &stdout, &stderr
}

func TestEval(t *testing.T) {
	r, stdout, stderr := testRepl()
	assert.True(t, r.eval([]byte("(+ 1 2) (/ 1 3)")))
	assert.Equal(t, "3\n1/3\n", stdout.String())
	assert.Empty(t, stderr.String())
}

func TestEvalIncomplete(t *testing.T) {
	r, stdout, _ := testRepl()
	assert.False(t, r.eval([]byte("(+ 1")))
	assert.Empty(t, stdout.String())
	assert.True(t, r.eval([]byte("(+ 1\n 2)")))
	assert.Equal(t, "3\n", stdout.String())
}

func TestEvalError(t *testing.T) {
	var logs bytes.Buffer
	r, stdout, stderr := testRepl(WithLogger(zerolog.New(&logs).Level(zerolog.DebugLevel)))
	assert.True(t, r.eval([]byte("(+ 1 1) (/ 1 0) (+ 2 2)")))
	assert.Equal(t, "2\n", stdout.String())
	assert.Contains(t, stderr.String(), "division by zero")
	assert.Contains(t, logs.String(), `"condition":"division-by-zero"`)

	stderr.Reset()
	assert.True(t, r.eval([]byte("(+ 1 2))")))
	assert.Contains(t, stderr.String(), "unbalanced")
}

func TestEvalPrintConfig(t *testing.T) {
	env := numlib.NewEnv(numlib.WithPrintConfig(num.NewPrintConfig(num.WithBase(2), num.WithRadix(true))))
	r, stdout, _ := testRepl(WithEnv(env))
	assert.True(t, r.eval([]byte("(+ 2 3)")))
	assert.Equal(t, "#b101\n", stdout.String())
}

func TestCompleter(t *testing.T) {
	c := &nameCompleter{names: []string{"float", "float-bits", "floor", "logand"}}
	line := []rune("(+ 1 (flo")
	completions, n := c.Do(line, len(line))
	assert.Equal(t, 3, n)
	assert.Equal(t, [][]rune{[]rune("at"), []rune("at-bits"), []rune("or")}, completions)

	completions, n = c.Do([]rune("("), 1)
	assert.Equal(t, 0, n)
	assert.Len(t, completions, 4)
}
