package parser

import (
	"strings"

	"github.com/luthersystems/elpsnum/num"
)

// FormType identifies the kind of datum held by a Form.
type FormType uint

// Possible FormType values
const (
	FormInvalid FormType = iota
	FormNumber
	FormSymbol
	FormList
	FormError
)

var formTypeStrings = []string{
	FormInvalid: "INVALID",
	FormNumber:  "number",
	FormSymbol:  "symbol",
	FormList:    "list",
	FormError:   "error",
}

func (t FormType) String() string {
	if int(t) >= len(formTypeStrings) {
		return formTypeStrings[FormInvalid]
	}
	return formTypeStrings[t]
}

// Form is a datum produced by the reader: a number, a symbol, or a
// parenthesized list of forms.
type Form struct {
	Type   FormType
	Number num.Number
	Symbol string
	Cells  []*Form
	// Pos is the byte offset of the form in the source text.
	Pos int
	// Err is set for FormError values.
	Err error
}

// Number returns a number Form.
func Number(n num.Number) *Form {
	return &Form{Type: FormNumber, Number: n}
}

// Symbol returns a symbol Form.
func Symbol(name string) *Form {
	return &Form{Type: FormSymbol, Symbol: name}
}

// List returns a list Form containing cells.
func List(cells ...*Form) *Form {
	return &Form{Type: FormList, Cells: cells}
}

func errorForm(pos int, err error) *Form {
	return &Form{Type: FormError, Pos: pos, Err: err}
}

// String returns the form in reader syntax.  Numbers use the default print
// configuration.
func (f *Form) String() string {
	var buf strings.Builder
	f.write(&buf)
	return buf.String()
}

func (f *Form) write(buf *strings.Builder) {
	switch f.Type {
	case FormNumber:
		buf.WriteString(f.Number.String())
	case FormSymbol:
		buf.WriteString(f.Symbol)
	case FormList:
		buf.WriteByte('(')
		for i, c := range f.Cells {
			if i > 0 {
				buf.WriteByte(' ')
			}
			c.write(buf)
		}
		buf.WriteByte(')')
	case FormError:
		buf.WriteString("#<error ")
		buf.WriteString(f.Err.Error())
		buf.WriteByte('>')
	default:
		buf.WriteString("#<invalid>")
	}
}

// firstError returns the first error found in a depth first walk of f.
func (f *Form) firstError() error {
	switch f.Type {
	case FormError:
		return f.Err
	case FormList:
		for _, c := range f.Cells {
			if err := c.firstError(); err != nil {
				return err
			}
		}
	}
	return nil
}
