package num

import (
	"math"
	"math/big"
)

// Kind identifies the representation of a Number.  Kinds are ordered by
// generality and the order is the contagion order used by binary
// operations.
type Kind uint8

// Possible Kind values
const (
	KindFixnum Kind = iota
	KindBignum
	KindRatio
	KindSingle
	KindDouble
	KindComplex
)

var kindStrings = []string{
	KindFixnum:  "fixnum",
	KindBignum:  "bignum",
	KindRatio:   "ratio",
	KindSingle:  "single-float",
	KindDouble:  "double-float",
	KindComplex: "complex",
}

func (k Kind) String() string {
	if int(k) >= len(kindStrings) {
		return "INVALID"
	}
	return kindStrings[k]
}

// IsExact returns true for the integer and ratio kinds.
func (k Kind) IsExact() bool {
	return k <= KindRatio
}

// IsFloat returns true for KindSingle and KindDouble.
func (k Kind) IsFloat() bool {
	return k == KindSingle || k == KindDouble
}

// Number is an immutable numeric value.  The set of implementations is
// closed: Fixnum, *Bignum, *Ratio, Single, Double and *Complex.
type Number interface {
	Kind() Kind
	String() string
	number()
}

// Fixnum is an integer in int64 range.
type Fixnum int64

// Bignum is an integer outside of int64 range.  The zero Bignum is not a
// valid value; Bignums are only created through MakeBig.
type Bignum struct {
	x *big.Int
}

// Ratio is an exact fraction in lowest terms with a denominator greater
// than one.
type Ratio struct {
	num *big.Int
	den *big.Int
}

// Single is an IEEE-754 binary32 value.
type Single float32

// Double is an IEEE-754 binary64 value.
type Double float64

// Complex is a number with real and imaginary parts.  Neither part is
// itself complex, and both parts are floats of the same width whenever
// either part is a float.
type Complex struct {
	re Number
	im Number
}

// Named infinities.
var (
	SinglePositiveInfinity = Single(math.Inf(1))
	SingleNegativeInfinity = Single(math.Inf(-1))
	DoublePositiveInfinity = Double(math.Inf(1))
	DoubleNegativeInfinity = Double(math.Inf(-1))
)

func (Fixnum) number()   {}
func (*Bignum) number()  {}
func (*Ratio) number()   {}
func (Single) number()   {}
func (Double) number()   {}
func (*Complex) number() {}

// Kind implements Number.
func (Fixnum) Kind() Kind { return KindFixnum }

// Kind implements Number.
func (*Bignum) Kind() Kind { return KindBignum }

// Kind implements Number.
func (*Ratio) Kind() Kind { return KindRatio }

// Kind implements Number.
func (Single) Kind() Kind { return KindSingle }

// Kind implements Number.
func (Double) Kind() Kind { return KindDouble }

// Kind implements Number.
func (*Complex) Kind() Kind { return KindComplex }

// Int returns a copy of the value of x.
func (x *Bignum) Int() *big.Int {
	return new(big.Int).Set(x.x)
}

// Numerator returns the numerator of x as an exact integer.
func (x *Ratio) Numerator() Number {
	return MakeBig(x.num)
}

// Denominator returns the denominator of x as an exact integer.
func (x *Ratio) Denominator() Number {
	return MakeBig(x.den)
}

// Rat returns the value of x as a new big.Rat.
func (x *Ratio) Rat() *big.Rat {
	return new(big.Rat).SetFrac(x.num, x.den)
}

// Real returns the real part of x.
func (x *Complex) Real() Number {
	return x.re
}

// Imag returns the imaginary part of x.
func (x *Complex) Imag() Number {
	return x.im
}

// smallFixnums holds the interned values 0 through 255.  The table is
// filled during package initialization and is read-only afterward.
var smallFixnums = internFixnums()

func internFixnums() *[256]Number {
	table := new([256]Number)
	for i := range table {
		table[i] = Fixnum(i)
	}
	return table
}

var (
	zero     = MakeInteger(0)
	one      = MakeInteger(1)
	minusOne = MakeInteger(-1)
)

// Zero returns the interned exact zero.
func Zero() Number { return zero }

// One returns the interned exact one.
func One() Number { return one }
