package numlib

import (
	"io"
	"strings"

	"github.com/luthersystems/elpsnum/num"
)

// ValueType is the type of a Value.
type ValueType uint

// Possible ValueType values
const (
	ValueInvalid ValueType = iota
	ValueNumber
	ValueBool
	ValueSymbol
	ValueMulti
)

var valueTypeStrings = []string{
	ValueInvalid: "INVALID",
	ValueNumber:  "number",
	ValueBool:    "bool",
	ValueSymbol:  "symbol",
	ValueMulti:   "values",
}

func (t ValueType) String() string {
	if int(t) >= len(valueTypeStrings) {
		return valueTypeStrings[ValueInvalid]
	}
	return valueTypeStrings[t]
}

// Value is the result of evaluating a form.  Operators such as truncate
// that produce more than one result return a ValueMulti holding each of
// them in Values.
type Value struct {
	Type   ValueType
	Number num.Number
	Bool   bool
	Symbol string
	Values []*Value
}

// Number returns a number Value.
func Number(n num.Number) *Value {
	return &Value{Type: ValueNumber, Number: n}
}

// Bool returns a boolean Value.
func Bool(b bool) *Value {
	return &Value{Type: ValueBool, Bool: b}
}

// Symbol returns a symbol Value.
func Symbol(name string) *Value {
	return &Value{Type: ValueSymbol, Symbol: name}
}

// Values returns a Value holding multiple results.
func Values(vs ...*Value) *Value {
	return &Value{Type: ValueMulti, Values: vs}
}

// String returns v printed in decimal.
func (v *Value) String() string {
	var buf strings.Builder
	_ = v.Format(&buf, nil)
	return buf.String()
}

// Format writes v to w.  Numbers are printed using c, or the default print
// configuration when c is nil.  Multiple values are separated by spaces.
func (v *Value) Format(w io.Writer, c *num.PrintConfig) error {
	switch v.Type {
	case ValueNumber:
		if c == nil {
			return num.Format(w, v.Number)
		}
		return c.Format(w, v.Number)
	case ValueBool:
		if v.Bool {
			_, err := io.WriteString(w, "true")
			return err
		}
		_, err := io.WriteString(w, "false")
		return err
	case ValueSymbol:
		_, err := io.WriteString(w, v.Symbol)
		return err
	case ValueMulti:
		for i, x := range v.Values {
			if i > 0 {
				if _, err := io.WriteString(w, " "); err != nil {
					return err
				}
			}
			if err := x.Format(w, c); err != nil {
				return err
			}
		}
		return nil
	default:
		_, err := io.WriteString(w, "#<invalid>")
		return err
	}
}
