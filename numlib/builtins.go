package numlib

import (
	"fmt"

	"github.com/luthersystems/elpsnum/num"
)

// Symbols that mark optional and variadic formal arguments.
const (
	OptArgSymbol = "&optional"
	VarArgSymbol = "&rest"
)

// BuiltinFunc computes the result of an operator from its evaluated
// arguments.
type BuiltinFunc func(args []num.Number) (*Value, error)

// Builtin is a named numeric operator.
type Builtin struct {
	name    string
	formals []string
	fun     BuiltinFunc
	min     int
	max     int // -1 when variadic
}

// Formals returns a formal argument list.  Names following OptArgSymbol
// are optional and a name following VarArgSymbol collects any remaining
// arguments.
func Formals(names ...string) []string {
	return names
}

// Function returns a Builtin that calls fn with arguments matching
// formals.
func Function(name string, formals []string, fn BuiltinFunc) *Builtin {
	b := &Builtin{name: name, formals: formals, fun: fn}
	optional := false
	for i, f := range formals {
		switch f {
		case OptArgSymbol:
			optional = true
		case VarArgSymbol:
			if i != len(formals)-2 {
				panic(fmt.Sprintf("%s: %s must precede the last formal", name, VarArgSymbol))
			}
			b.max = -1
			return b
		default:
			b.max++
			if !optional {
				b.min++
			}
		}
	}
	return b
}

// Name returns the operator name.
func (fn *Builtin) Name() string {
	return fn.name
}

// Formals returns the formal argument list of the operator.
func (fn *Builtin) Formals() []string {
	return fn.formals
}

// Eval applies the operator to args.  The number of arguments is checked
// against the formals.
func (fn *Builtin) Eval(args []num.Number) (*Value, error) {
	if err := fn.checkArity(len(args)); err != nil {
		return nil, err
	}
	return fn.fun(args)
}

func (fn *Builtin) checkArity(n int) error {
	if n < fn.min {
		return fmt.Errorf("%s: %w: expected at least %d (got %d)", fn.name, ErrArity, fn.min, n)
	}
	if fn.max >= 0 && n > fn.max {
		if fn.max == fn.min {
			return fmt.Errorf("%s: %w: expected %d (got %d)", fn.name, ErrArity, fn.max, n)
		}
		return fmt.Errorf("%s: %w: expected at most %d (got %d)", fn.name, ErrArity, fn.max, n)
	}
	return nil
}

var builtins = []*Builtin{
	Function("+", Formals(VarArgSymbol, "numbers"), builtinAdd),
	Function("-", Formals("number", VarArgSymbol, "rest"), builtinSub),
	Function("*", Formals(VarArgSymbol, "numbers"), builtinMul),
	Function("/", Formals("number", VarArgSymbol, "rest"), builtinDiv),
	Function("1+", Formals("number"), builtinIncr),
	Function("1-", Formals("number"), builtinDecr),
	Function("=", Formals("number", VarArgSymbol, "rest"), builtinNumEq),
	Function("/=", Formals("number", VarArgSymbol, "rest"), builtinNumNeq),
	Function("<", Formals("real", VarArgSymbol, "rest"), chain(num.Less)),
	Function("<=", Formals("real", VarArgSymbol, "rest"), chain(num.LessEqual)),
	Function(">", Formals("real", VarArgSymbol, "rest"), chain(num.Greater)),
	Function(">=", Formals("real", VarArgSymbol, "rest"), chain(num.GreaterEqual)),
	Function("max", Formals("real", VarArgSymbol, "rest"), fold(num.Max)),
	Function("min", Formals("real", VarArgSymbol, "rest"), fold(num.Min)),
	Function("abs", Formals("number"), unary(num.Abs)),
	Function("signum", Formals("number"), unary(num.Signum)),
	Function("truncate", Formals("number", OptArgSymbol, "divisor"), division(num.Truncate)),
	Function("floor", Formals("number", OptArgSymbol, "divisor"), division(num.Floor)),
	Function("ceiling", Formals("number", OptArgSymbol, "divisor"), division(num.Ceiling)),
	Function("round", Formals("number", OptArgSymbol, "divisor"), division(num.Round)),
	Function("mod", Formals("number", "divisor"), binary(num.Mod)),
	Function("rem", Formals("number", "divisor"), binary(num.Rem)),
	Function("gcd", Formals(VarArgSymbol, "integers"), reduce(num.MakeInteger(0), num.Gcd)),
	Function("lcm", Formals(VarArgSymbol, "integers"), reduce(num.MakeInteger(1), num.Lcm)),
	Function("evenp", Formals("integer"), predicate(num.Evenp)),
	Function("oddp", Formals("integer"), predicate(num.Oddp)),
	Function("zerop", Formals("number"), test(num.Zerop)),
	Function("plusp", Formals("real"), test(num.Plusp)),
	Function("minusp", Formals("real"), test(num.Minusp)),
	Function("numerator", Formals("rational"), unary(num.Numerator)),
	Function("denominator", Formals("rational"), unary(num.Denominator)),
	Function("logand", Formals(VarArgSymbol, "integers"), reduce(num.MakeInteger(-1), num.Logand)),
	Function("logior", Formals(VarArgSymbol, "integers"), reduce(num.MakeInteger(0), num.Logior)),
	Function("logxor", Formals(VarArgSymbol, "integers"), reduce(num.MakeInteger(0), num.Logxor)),
	Function("lognot", Formals("integer"), unary(num.Lognot)),
	Function("ash", Formals("integer", "count"), binary(num.Ash)),
	Function("ldb", Formals("size", "position", "integer"), builtinLdb),
	Function("logbitp", Formals("index", "integer"), builtinLogbitp),
	Function("logcount", Formals("integer"), unary(num.Logcount)),
	Function("integer-length", Formals("integer"), unary(num.IntegerLength)),
	Function("expt", Formals("base", "power"), binary(num.Expt)),
	Function("sqrt", Formals("number"), unary(num.Sqrt)),
	Function("float", Formals("number", OptArgSymbol, "prototype"), builtinFloat),
	Function("rational", Formals("real"), unary(num.Rational)),
	Function("complex", Formals("realpart", OptArgSymbol, "imagpart"), builtinComplex),
	Function("realpart", Formals("number"), unary(wrap(num.Realpart))),
	Function("imagpart", Formals("number"), unary(wrap(num.Imagpart))),
	Function("conjugate", Formals("number"), unary(num.Conjugate)),
	Function("integer-decode-float", Formals("float"), builtinIntegerDecodeFloat),
	Function("float-bits", Formals("float"), unary(num.FloatBits)),
	Function("float-from-bits", Formals("bits", "width"), builtinFloatFromBits),
	Function("float-nan-p", Formals("number"), test(num.IsNaN)),
	Function("float-infinity-p", Formals("number"), test(num.IsInfinite)),
	Function("eql", Formals("a", "b"), builtinEql),
	Function("hash-equal", Formals("a", "b"), builtinHashEqual),
	Function("hash", Formals("number"), builtinHash),
	Function("type-of", Formals("number"), builtinTypeOf),
}

func unary(fn func(num.Number) (num.Number, error)) BuiltinFunc {
	return func(args []num.Number) (*Value, error) {
		n, err := fn(args[0])
		if err != nil {
			return nil, err
		}
		return Number(n), nil
	}
}

func binary(fn func(a, b num.Number) (num.Number, error)) BuiltinFunc {
	return func(args []num.Number) (*Value, error) {
		n, err := fn(args[0], args[1])
		if err != nil {
			return nil, err
		}
		return Number(n), nil
	}
}

func wrap(fn func(num.Number) num.Number) func(num.Number) (num.Number, error) {
	return func(n num.Number) (num.Number, error) {
		return fn(n), nil
	}
}

func test(fn func(num.Number) bool) BuiltinFunc {
	return func(args []num.Number) (*Value, error) {
		return Bool(fn(args[0])), nil
	}
}

func predicate(fn func(num.Number) (bool, error)) BuiltinFunc {
	return func(args []num.Number) (*Value, error) {
		ok, err := fn(args[0])
		if err != nil {
			return nil, err
		}
		return Bool(ok), nil
	}
}

// fold combines args from left to right.  A single argument is combined
// with itself so that fn still checks its type.
func fold(fn func(a, b num.Number) (num.Number, error)) BuiltinFunc {
	return func(args []num.Number) (*Value, error) {
		acc := args[0]
		if len(args) == 1 {
			if _, err := fn(acc, acc); err != nil {
				return nil, err
			}
		}
		for _, x := range args[1:] {
			var err error
			acc, err = fn(acc, x)
			if err != nil {
				return nil, err
			}
		}
		return Number(acc), nil
	}
}

// reduce is fold with an identity element, so every argument is checked
// by fn even when there is only one.
func reduce(identity num.Number, fn func(a, b num.Number) (num.Number, error)) BuiltinFunc {
	f := fold(fn)
	return func(args []num.Number) (*Value, error) {
		return f(append([]num.Number{identity}, args...))
	}
}

// chain tests each adjacent pair of args.  Every comparison is performed
// so that a type error in any argument is reported.
func chain(fn func(a, b num.Number) (bool, error)) BuiltinFunc {
	return func(args []num.Number) (*Value, error) {
		result := true
		for i := 1; i < len(args); i++ {
			ok, err := fn(args[i-1], args[i])
			if err != nil {
				return nil, err
			}
			result = result && ok
		}
		if len(args) == 1 {
			// a single complex argument is not ordered
			if _, err := fn(args[0], args[0]); err != nil {
				return nil, err
			}
		}
		return Bool(result), nil
	}
}

func division(fn func(a, b num.Number) (q, r num.Number, err error)) BuiltinFunc {
	return func(args []num.Number) (*Value, error) {
		divisor := num.MakeInteger(1)
		if len(args) > 1 {
			divisor = args[1]
		}
		q, r, err := fn(args[0], divisor)
		if err != nil {
			return nil, err
		}
		return Values(Number(q), Number(r)), nil
	}
}

func builtinAdd(args []num.Number) (*Value, error) {
	n, err := num.Sum(args...)
	if err != nil {
		return nil, err
	}
	return Number(n), nil
}

func builtinMul(args []num.Number) (*Value, error) {
	n, err := num.Product(args...)
	if err != nil {
		return nil, err
	}
	return Number(n), nil
}

func builtinSub(args []num.Number) (*Value, error) {
	if len(args) == 1 {
		return unary(num.Negate)(args)
	}
	return fold(num.Subtract)(args)
}

func builtinDiv(args []num.Number) (*Value, error) {
	if len(args) == 1 {
		n, err := num.Divide(num.MakeInteger(1), args[0])
		if err != nil {
			return nil, err
		}
		return Number(n), nil
	}
	return fold(num.Divide)(args)
}

func builtinIncr(args []num.Number) (*Value, error) {
	n, err := num.Add(args[0], num.MakeInteger(1))
	if err != nil {
		return nil, err
	}
	return Number(n), nil
}

func builtinDecr(args []num.Number) (*Value, error) {
	n, err := num.Subtract(args[0], num.MakeInteger(1))
	if err != nil {
		return nil, err
	}
	return Number(n), nil
}

func builtinNumEq(args []num.Number) (*Value, error) {
	for i := 1; i < len(args); i++ {
		if !num.NumEqual(args[0], args[i]) {
			return Bool(false), nil
		}
	}
	return Bool(true), nil
}

func builtinNumNeq(args []num.Number) (*Value, error) {
	for i := range args {
		for j := i + 1; j < len(args); j++ {
			if num.NumEqual(args[i], args[j]) {
				return Bool(false), nil
			}
		}
	}
	return Bool(true), nil
}

func builtinLdb(args []num.Number) (*Value, error) {
	n, err := num.Ldb(args[0], args[1], args[2])
	if err != nil {
		return nil, err
	}
	return Number(n), nil
}

func builtinLogbitp(args []num.Number) (*Value, error) {
	ok, err := num.Logbitp(args[0], args[1])
	if err != nil {
		return nil, err
	}
	return Bool(ok), nil
}

func builtinFloat(args []num.Number) (*Value, error) {
	var proto num.Number
	if len(args) > 1 {
		proto = args[1]
	}
	n, err := num.Float(args[0], proto)
	if err != nil {
		return nil, err
	}
	return Number(n), nil
}

func builtinComplex(args []num.Number) (*Value, error) {
	im := num.MakeInteger(0)
	if len(args) > 1 {
		im = args[1]
	}
	n, err := num.MakeComplex(args[0], im)
	if err != nil {
		return nil, err
	}
	return Number(n), nil
}

func builtinIntegerDecodeFloat(args []num.Number) (*Value, error) {
	mant, exp, sign, err := num.IntegerDecodeFloat(args[0])
	if err != nil {
		return nil, err
	}
	return Values(Number(mant), Number(exp), Number(sign)), nil
}

func builtinFloatFromBits(args []num.Number) (*Value, error) {
	width, ok := args[1].(num.Fixnum)
	if !ok {
		return nil, fmt.Errorf("float-from-bits: %w: width %v", num.ErrType, args[1])
	}
	n, err := num.FloatFromBits(args[0], int(width))
	if err != nil {
		return nil, err
	}
	return Number(n), nil
}

func builtinEql(args []num.Number) (*Value, error) {
	return Bool(num.Eql(args[0], args[1])), nil
}

func builtinHashEqual(args []num.Number) (*Value, error) {
	return Bool(num.HashEqual(args[0], args[1])), nil
}

func builtinHash(args []num.Number) (*Value, error) {
	return Number(num.FromUint(num.Hash(args[0]))), nil
}

func builtinTypeOf(args []num.Number) (*Value, error) {
	return Symbol(args[0].Kind().String()), nil
}
