package num

import (
	"math"
	"math/big"

	"golang.org/x/exp/constraints"
)

var (
	bigMinFixnum = big.NewInt(math.MinInt64)
	bigMaxFixnum = big.NewInt(math.MaxInt64)
	bigOne       = big.NewInt(1)
)

// MakeInteger returns the Fixnum x.  Values 0 through 255 are shared.
func MakeInteger(x int64) Number {
	if 0 <= x && x < int64(len(smallFixnums)) {
		return smallFixnums[x]
	}
	return Fixnum(x)
}

// MakeBig returns x as a Fixnum when it is in int64 range and as a Bignum
// otherwise.  MakeBig does not retain x.
func MakeBig(x *big.Int) Number {
	if x.IsInt64() {
		return MakeInteger(x.Int64())
	}
	return &Bignum{x: new(big.Int).Set(x)}
}

// makeBigOwned is MakeBig for a freshly computed x that no one else
// references.
func makeBigOwned(x *big.Int) Number {
	if x.IsInt64() {
		return MakeInteger(x.Int64())
	}
	return &Bignum{x: x}
}

// FromInt returns the exact integer x.
func FromInt[T constraints.Signed](x T) Number {
	return MakeInteger(int64(x))
}

// FromUint returns the exact integer x, promoting to a Bignum when x
// exceeds math.MaxInt64.
func FromUint[T constraints.Unsigned](x T) Number {
	u := uint64(x)
	if u <= math.MaxInt64 {
		return MakeInteger(int64(u))
	}
	return makeBigOwned(new(big.Int).SetUint64(u))
}

// MakeRational returns num/den in canonical form.  Both arguments must be
// exact integers.  MakeRational returns a DivisionByZero error when den is
// zero.
func MakeRational(num, den Number) (Number, error) {
	n, ok := integerBig(num)
	if !ok {
		return nil, typeError("make-rational", num, "integer")
	}
	d, ok := integerBig(den)
	if !ok {
		return nil, typeError("make-rational", den, "integer")
	}
	if f, ok := num.(Fixnum); ok {
		if g, ok := den.(Fixnum); ok {
			return makeRatioFixnum(int64(f), int64(g))
		}
	}
	return MakeRatio(n, d)
}

// MakeRatio returns num/den in canonical form: the denominator is made
// positive, the fraction is reduced, and an integer is returned when the
// reduced denominator is one.  Neither argument is retained.
func MakeRatio(num, den *big.Int) (Number, error) {
	if den.Sign() == 0 {
		return nil, divisionByZero("/", MakeBig(num), zero)
	}
	n := new(big.Int).Set(num)
	d := new(big.Int).Set(den)
	return makeRatioOwned(n, d), nil
}

// makeRatioOwned canonicalizes n/d, taking ownership of both.  The caller
// guarantees d is not zero.
func makeRatioOwned(n, d *big.Int) Number {
	if d.Sign() < 0 {
		n.Neg(n)
		d.Neg(d)
	}
	if n.Sign() == 0 {
		return zero
	}
	if d.Cmp(bigOne) != 0 {
		var g big.Int
		g.GCD(nil, nil, new(big.Int).Abs(n), d)
		if g.Cmp(bigOne) != 0 {
			n.Quo(n, &g)
			d.Quo(d, &g)
		}
	}
	if d.Cmp(bigOne) == 0 {
		return makeBigOwned(n)
	}
	return &Ratio{num: n, den: d}
}

func makeRatioFixnum(n, d int64) (Number, error) {
	if d == 0 {
		return nil, divisionByZero("/", MakeInteger(n), zero)
	}
	if d == math.MinInt64 || n == math.MinInt64 {
		return makeRatioOwned(big.NewInt(n), big.NewInt(d)), nil
	}
	if d < 0 {
		n, d = -n, -d
	}
	g := gcd64(abs64(n), d)
	n, d = n/g, d/g
	if d == 1 {
		return MakeInteger(n), nil
	}
	return &Ratio{num: big.NewInt(n), den: big.NewInt(d)}, nil
}

func gcd64(a, b int64) int64 {
	for b != 0 {
		a, b = b, a%b
	}
	if a == 0 {
		return 1
	}
	return a
}

func abs64(x int64) int64 {
	if x < 0 {
		return -x
	}
	return x
}

// Coerce converts a Go value into a Number.  Coerce accepts any Number,
// the Go integer, float and complex types, *big.Int and *big.Rat.  Other
// values produce a TypeError.
func Coerce(v interface{}) (Number, error) {
	switch v := v.(type) {
	case Number:
		return v, nil
	case int:
		return FromInt(v), nil
	case int8:
		return FromInt(v), nil
	case int16:
		return FromInt(v), nil
	case int32:
		return FromInt(v), nil
	case int64:
		return FromInt(v), nil
	case uint:
		return FromUint(v), nil
	case uint8:
		return FromUint(v), nil
	case uint16:
		return FromUint(v), nil
	case uint32:
		return FromUint(v), nil
	case uint64:
		return FromUint(v), nil
	case float32:
		return Single(v), nil
	case float64:
		return Double(v), nil
	case complex64:
		return MakeComplex(Single(real(v)), Single(imag(v)))
	case complex128:
		return MakeComplex(Double(real(v)), Double(imag(v)))
	case *big.Int:
		if v != nil {
			return MakeBig(v), nil
		}
	case *big.Rat:
		if v != nil {
			return MakeRatio(v.Num(), v.Denom())
		}
	}
	return nil, typeError("coerce", v, "number")
}

// integerBig returns the value of an exact integer as a big.Int.  The
// returned value must not be modified.
func integerBig(n Number) (*big.Int, bool) {
	switch x := n.(type) {
	case Fixnum:
		return big.NewInt(int64(x)), true
	case *Bignum:
		return x.x, true
	default:
		return nil, false
	}
}

// exactParts returns the numerator and denominator of an exact number.
// The returned values must not be modified.
func exactParts(n Number) (num, den *big.Int, ok bool) {
	switch x := n.(type) {
	case Fixnum:
		return big.NewInt(int64(x)), bigOne, true
	case *Bignum:
		return x.x, bigOne, true
	case *Ratio:
		return x.num, x.den, true
	default:
		return nil, nil, false
	}
}

// IsInteger returns true if n is a Fixnum or a Bignum.
func IsInteger(n Number) bool {
	k := n.Kind()
	return k == KindFixnum || k == KindBignum
}

// IsRational returns true if n is exact.
func IsRational(n Number) bool {
	return n.Kind().IsExact()
}

// IsReal returns true if n is not complex.
func IsReal(n Number) bool {
	return n.Kind() != KindComplex
}

// IsFloat returns true if n is a Single or a Double.
func IsFloat(n Number) bool {
	return n.Kind().IsFloat()
}
