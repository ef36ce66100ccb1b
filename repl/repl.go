package repl

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/rs/zerolog"

	"github.com/luthersystems/elpsnum/num"
	"github.com/luthersystems/elpsnum/numlib"
	"github.com/luthersystems/elpsnum/parser"
)

// Option configures RunRepl.
type Option func(r *repl)

// WithEnv makes the repl evaluate expressions in env.
func WithEnv(env *numlib.Env) Option {
	return func(r *repl) {
		r.env = env
	}
}

// WithLogger makes the repl log evaluation failures to logger.
func WithLogger(logger zerolog.Logger) Option {
	return func(r *repl) {
		r.log = logger
	}
}

// WithStderr makes the repl write error messages to w instead of
// os.Stderr.
func WithStderr(w io.Writer) Option {
	return func(r *repl) {
		r.stderr = w
	}
}

type repl struct {
	env    *numlib.Env
	log    zerolog.Logger
	stdout io.Writer
	stderr io.Writer
}

func newRepl(opts ...Option) *repl {
	r := &repl{
		log:    zerolog.Nop(),
		stdout: os.Stdout,
		stderr: os.Stderr,
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.env == nil {
		r.env = numlib.NewEnv()
	}
	return r
}

// RunRepl runs a simple repl
func RunRepl(prompt string, opts ...Option) error {
	r := newRepl(opts...)

	rl, err := readline.NewEx(&readline.Config{
		Prompt:       prompt,
		AutoComplete: r.completer(),
	})
	if err != nil {
		return err
	}
	defer rl.Close()
	r.stdout = rl.Stdout()
	contPrompt := strings.Repeat(" ", len(prompt)) // prompt had better be ascii...

	var buf []byte
	for {
		var line []byte
		line, err = rl.ReadSlice()
		if err != nil && err != readline.ErrInterrupt {
			break
		}
		if err == readline.ErrInterrupt {
			line = nil
			buf = nil
			rl.SetPrompt(prompt)
		}
		if len(buf) != 0 {
			buf = append(buf, '\n')
			line = append(buf, line...)
			buf = nil
			rl.SetPrompt(prompt)
		}
		if len(line) != 0 && !r.eval(line) {
			buf = line
			rl.SetPrompt(contPrompt)
		}
	}
	if err != io.EOF {
		return err
	}
	r.errln("done")
	return nil
}

// eval evaluates the expressions in text and prints their values.  eval
// returns false if text ends inside of an incomplete expression, in which
// case nothing is evaluated.
func (r *repl) eval(text []byte) (complete bool) {
	forms, err := parser.Read(text)
	if errors.Is(err, io.ErrUnexpectedEOF) {
		return false
	}
	if err != nil {
		r.log.Debug().Err(err).Msg("read failed")
		r.errln(err)
		return true
	}
	for _, form := range forms {
		v, err := r.env.Eval(form)
		if err != nil {
			event := r.log.Debug().Err(err).Str("form", form.String())
			if c, ok := num.GetCondition(err); ok {
				event = event.Stringer("condition", c)
			}
			event.Msg("evaluation failed")
			r.errln(err)
			return true
		}
		if err := r.env.Format(r.stdout, v); err != nil {
			r.errln(err)
			return true
		}
		io.WriteString(r.stdout, "\n")
	}
	return true
}

func (r *repl) completer() readline.AutoCompleter {
	return &nameCompleter{names: r.env.Names()}
}

// nameCompleter completes operator and constant names.
type nameCompleter struct {
	names []string
}

func (c *nameCompleter) Do(line []rune, pos int) (newLine [][]rune, length int) {
	start := pos
	for start > 0 && !strings.ContainsRune(" \t\n()", line[start-1]) {
		start--
	}
	prefix := string(line[start:pos])
	for _, name := range c.names {
		if strings.HasPrefix(name, prefix) {
			newLine = append(newLine, []rune(name[len(prefix):]))
		}
	}
	return newLine, pos - start
}

func (r *repl) errln(v ...interface{}) {
	fmt.Fprintln(r.stderr, v...)
}
