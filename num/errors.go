package num

import (
	"errors"
	"fmt"
)

// Condition classifies the errors signaled by numeric operations.
type Condition uint8

// Possible Condition values
const (
	ArithmeticError Condition = iota
	DivisionByZero
	TypeError
)

var conditionStrings = []string{
	ArithmeticError: "arithmetic-error",
	DivisionByZero:  "division-by-zero",
	TypeError:       "type-error",
}

func (c Condition) String() string {
	if int(c) >= len(conditionStrings) {
		return conditionStrings[ArithmeticError]
	}
	return conditionStrings[c]
}

// Error is returned by any numeric operation that fails.  Numeric
// operations never recover from an Error themselves.
type Error struct {
	Condition Condition
	// Op is the name of the operation that failed.
	Op string
	// Msg describes the failure.
	Msg string
	// Expected names the expected type of a TypeError.
	Expected string
	// Operands are the numeric operands involved, when known.
	Operands []Number
}

// Sentinel errors for use with errors.Is.
var (
	ErrArithmetic     = &Error{Condition: ArithmeticError}
	ErrDivisionByZero = &Error{Condition: DivisionByZero}
	ErrType           = &Error{Condition: TypeError}
)

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Op == "" {
		if e.Msg == "" {
			return e.Condition.String()
		}
		return e.Msg
	}
	return fmt.Sprintf("%s: %s", e.Op, e.Msg)
}

// Is reports whether target is the sentinel for e's condition.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	if t == e {
		return true
	}
	return t.Op == "" && t.Msg == "" && t.Condition == e.Condition
}

// GetCondition returns the Condition of err if err wraps an *Error.
func GetCondition(err error) (Condition, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Condition, true
	}
	return 0, false
}

func divisionByZero(op string, operands ...Number) error {
	return &Error{
		Condition: DivisionByZero,
		Op:        op,
		Msg:       "division by zero",
		Operands:  operands,
	}
}

func typeError(op string, v interface{}, expected string) error {
	e := &Error{
		Condition: TypeError,
		Op:        op,
		Expected:  expected,
		Msg:       fmt.Sprintf("value %v is not of type %s", v, expected),
	}
	if n, ok := v.(Number); ok {
		e.Operands = []Number{n}
	}
	return e
}

func conversionError(op string, v Number, target Kind) error {
	return &Error{
		Condition: TypeError,
		Op:        op,
		Expected:  target.String(),
		Msg:       fmt.Sprintf("value %v is too large to convert to %s", v, target),
		Operands:  []Number{v},
	}
}

func arithmeticError(op string, format string, v ...interface{}) error {
	return &Error{
		Condition: ArithmeticError,
		Op:        op,
		Msg:       fmt.Sprintf(format, v...),
	}
}
