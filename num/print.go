package num

import (
	"io"
	"math"
	"strconv"
	"strings"
)

// PrintConfig controls how numbers are written.  The zero value is not
// valid; use NewPrintConfig.
type PrintConfig struct {
	// Base is the radix used to print integers and ratios, between 2 and
	// 36.  Floats always print in decimal.
	Base int
	// Radix causes integers and ratios to be printed with a prefix that
	// identifies their base so they read back the same way.
	Radix bool
}

// PrintOption is a function that configures a PrintConfig.
type PrintOption func(c *PrintConfig)

// WithBase returns a PrintOption that prints rationals in base b.  Bases
// outside of 2 through 36 fall back to 10.
func WithBase(b int) PrintOption {
	return func(c *PrintConfig) {
		if b < 2 || b > 36 {
			b = 10
		}
		c.Base = b
	}
}

// WithRadix returns a PrintOption that controls radix prefixes.
func WithRadix(radix bool) PrintOption {
	return func(c *PrintConfig) {
		c.Radix = radix
	}
}

// NewPrintConfig returns a decimal PrintConfig without radix prefixes,
// modified by opts.
func NewPrintConfig(opts ...PrintOption) *PrintConfig {
	c := &PrintConfig{Base: 10}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

var defaultPrintConfig = NewPrintConfig()

// Format writes the printed representation of n to w using the default
// configuration modified by opts.
func Format(w io.Writer, n Number, opts ...PrintOption) error {
	return NewPrintConfig(opts...).Format(w, n)
}

// Sprint returns the printed representation of n.
func Sprint(n Number, opts ...PrintOption) string {
	return NewPrintConfig(opts...).Sprint(n)
}

// Format writes the printed representation of n to w.
func (c *PrintConfig) Format(w io.Writer, n Number) error {
	_, err := io.WriteString(w, c.Sprint(n))
	return err
}

// Sprint returns the printed representation of n.
func (c *PrintConfig) Sprint(n Number) string {
	var buf strings.Builder
	c.write(&buf, n)
	return buf.String()
}

func (c *PrintConfig) base() int {
	if c.Base < 2 || c.Base > 36 {
		return 10
	}
	return c.Base
}

func (c *PrintConfig) write(buf *strings.Builder, n Number) {
	switch x := n.(type) {
	case Fixnum:
		c.writePrefix(buf, false)
		buf.WriteString(strings.ToUpper(strconv.FormatInt(int64(x), c.base())))
		c.writeSuffix(buf)
	case *Bignum:
		c.writePrefix(buf, false)
		buf.WriteString(strings.ToUpper(x.x.Text(c.base())))
		c.writeSuffix(buf)
	case *Ratio:
		c.writePrefix(buf, true)
		buf.WriteString(strings.ToUpper(x.num.Text(c.base())))
		buf.WriteByte('/')
		buf.WriteString(strings.ToUpper(x.den.Text(c.base())))
	case Single:
		writeFloat(buf, float64(x), singleFormat)
	case Double:
		writeFloat(buf, float64(x), doubleFormat)
	case *Complex:
		buf.WriteString("#C(")
		c.write(buf, x.re)
		buf.WriteByte(' ')
		c.write(buf, x.im)
		buf.WriteByte(')')
	default:
		buf.WriteString("#<invalid number>")
	}
}

// writePrefix writes the radix prefix of a rational.  Decimal integers are
// marked with a trailing point instead, but a decimal ratio has no such
// syntax and takes the #10r prefix.
func (c *PrintConfig) writePrefix(buf *strings.Builder, ratio bool) {
	if !c.Radix {
		return
	}
	switch b := c.base(); b {
	case 2:
		buf.WriteString("#b")
	case 8:
		buf.WriteString("#o")
	case 16:
		buf.WriteString("#x")
	case 10:
		if ratio {
			buf.WriteString("#10r")
		}
	default:
		buf.WriteByte('#')
		buf.WriteString(strconv.Itoa(b))
		buf.WriteByte('r')
	}
}

func (c *PrintConfig) writeSuffix(buf *strings.Builder) {
	if c.Radix && c.base() == 10 {
		buf.WriteByte('.')
	}
}

// Floats in [1e-3, 1e7) print in positional notation and others in
// scientific notation.  Both use the shortest digit string that reads back
// as the same float.
const (
	minPositionalExp = -3
	maxPositionalExp = 7
)

// writeFloat prints f with the exponent marker of its format.  Single is
// the default float format of the reader and carries no marker in
// positional notation.
func writeFloat(buf *strings.Builder, f float64, format *floatFormat) {
	name := format.kind.String()
	switch {
	case math.IsNaN(f):
		buf.WriteString("#<" + name + " NaN>")
		return
	case math.IsInf(f, 1):
		buf.WriteString(name + "-positive-infinity")
		return
	case math.IsInf(f, -1):
		buf.WriteString(name + "-negative-infinity")
		return
	}
	marker := byte('e')
	if format == doubleFormat {
		marker = 'd'
	}
	if math.Signbit(f) {
		buf.WriteByte('-')
		f = -f
	}
	digits, exp := shortestDigits(f, format.width)
	if f == 0 || (minPositionalExp <= exp && exp < maxPositionalExp) {
		writePositional(buf, digits, exp)
		if format == doubleFormat {
			buf.WriteString("d0")
		}
		return
	}
	buf.WriteByte(digits[0])
	buf.WriteByte('.')
	if len(digits) > 1 {
		buf.WriteString(digits[1:])
	} else {
		buf.WriteByte('0')
	}
	buf.WriteByte(marker)
	buf.WriteString(strconv.Itoa(exp))
}

// shortestDigits returns the significant decimal digits of f and the
// decimal exponent of the first digit, so that f = d1.d2d3... * 10^exp.
func shortestDigits(f float64, width int) (string, int) {
	s := strconv.FormatFloat(f, 'e', -1, width)
	mant, e, _ := strings.Cut(s, "e")
	exp, _ := strconv.Atoi(e)
	return strings.Replace(mant, ".", "", 1), exp
}

func writePositional(buf *strings.Builder, digits string, exp int) {
	if digits == "0" {
		buf.WriteString("0.0")
		return
	}
	if exp < 0 {
		buf.WriteString("0.")
		buf.WriteString(strings.Repeat("0", -exp-1))
		buf.WriteString(digits)
		return
	}
	intLen := exp + 1
	if len(digits) <= intLen {
		buf.WriteString(digits)
		buf.WriteString(strings.Repeat("0", intLen-len(digits)))
		buf.WriteString(".0")
		return
	}
	buf.WriteString(digits[:intLen])
	buf.WriteByte('.')
	buf.WriteString(digits[intLen:])
}

// String returns the decimal representation of x.
func (x Fixnum) String() string {
	return strconv.FormatInt(int64(x), 10)
}

// String returns the decimal representation of x.
func (x *Bignum) String() string {
	return x.x.String()
}

// String returns x as num/den.
func (x *Ratio) String() string {
	return defaultPrintConfig.Sprint(x)
}

// String returns x in the float syntax read by the parser.
func (x Single) String() string {
	return defaultPrintConfig.Sprint(x)
}

// String returns x in the float syntax read by the parser, with a d
// exponent marker.
func (x Double) String() string {
	return defaultPrintConfig.Sprint(x)
}

// String returns x as #C(re im).
func (x *Complex) String() string {
	return defaultPrintConfig.Sprint(x)
}
