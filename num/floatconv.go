package num

import (
	"math"
	"math/big"

	"golang.org/x/exp/constraints"
)

// exactToFloat converts an exact number to the nearest float of width F,
// rounding half to even.  A magnitude beyond the largest finite F is a
// TypeError.
func exactToFloat[F constraints.Float](op string, n Number) (F, error) {
	f := formatOf[F]()
	switch x := n.(type) {
	case Fixnum:
		// native conversion rounds to nearest even and cannot overflow
		return F(int64(x)), nil
	case *Bignum:
		v, ok := quoToFloat(f, x.x, bigOne)
		if !ok {
			return 0, conversionError(op, n, f.kind)
		}
		return F(v), nil
	case *Ratio:
		v, ok := quoToFloat(f, x.num, x.den)
		if !ok {
			return 0, conversionError(op, n, f.kind)
		}
		return F(v), nil
	default:
		return 0, typeError(op, n, "rational")
	}
}

// quoToFloat returns num/den correctly rounded to the format f, as a
// float64 holding a value representable in f.  quoToFloat returns false if
// the quotient is beyond the finite range of f.  den must be positive.
//
// When both operands are exactly representable in f a single native
// division is correctly rounded.  Otherwise numerator and denominator are
// shifted against each other so that the integer quotient carries prec+1
// or prec+2 significant bits, and the dropped bits (plus the division
// remainder as a sticky bit) decide the rounding.  This is what keeps a
// ratio of two integers that each overflow the float exponent range from
// collapsing to zero, infinity or NaN.
func quoToFloat(f *floatFormat, num, den *big.Int) (float64, bool) {
	neg := num.Sign() < 0
	if num.Sign() == 0 {
		return 0, true
	}
	a := new(big.Int).Abs(num)
	alen, blen := a.BitLen(), den.BitLen()
	if alen <= int(f.prec) && blen <= int(f.prec) {
		var v float64
		if f == singleFormat {
			v = float64(float32(a.Uint64()) / float32(den.Uint64()))
		} else {
			v = float64(a.Uint64()) / float64(den.Uint64())
		}
		if neg {
			v = -v
		}
		return v, true
	}

	// num/den lies in [2^(alen-blen-1), 2^(alen-blen+1))
	if alen-blen-1 > f.emax {
		return 0, false
	}
	if alen-blen+1 < f.emin-int(f.prec) {
		return signedZero(neg), true
	}

	shift := int(f.prec) + 1 - (alen - blen)
	n := a
	d := new(big.Int).Set(den)
	if shift > 0 {
		n = new(big.Int).Lsh(a, uint(shift))
	} else if shift < 0 {
		d.Lsh(d, uint(-shift))
	}
	q, r := new(big.Int).QuoRem(n, d, new(big.Int))

	// value = q * 2^-shift (+ fraction); e is the exponent of its top bit
	qlen := q.BitLen()
	e := qlen - 1 - shift
	keep := int(f.prec)
	if e < f.emin {
		keep -= f.emin - e
	}
	if keep < 0 {
		return signedZero(neg), true
	}
	drop := qlen - keep
	mant := new(big.Int).Rsh(q, uint(drop)).Uint64()
	half := q.Bit(drop - 1)
	sticky := r.Sign() != 0 || lowBitsSet(q, drop-1)
	if half == 1 && (sticky || mant&1 == 1) {
		mant++
	}
	v := math.Ldexp(float64(mant), drop-shift)
	if math.IsInf(v, 0) || v > maxFinite(f) {
		return 0, false
	}
	if neg {
		v = -v
	}
	return v, true
}

// lowBitsSet reports whether any of the n low bits of x are set.
func lowBitsSet(x *big.Int, n int) bool {
	if n <= 0 {
		return false
	}
	tz := x.TrailingZeroBits()
	return x.Sign() != 0 && int(tz) < n
}

func signedZero(neg bool) float64 {
	if neg {
		return math.Copysign(0, -1)
	}
	return 0
}

func maxFinite(f *floatFormat) float64 {
	if f == singleFormat {
		return math.MaxFloat32
	}
	return math.MaxFloat64
}

// ToDouble converts a real number to a Double.  Exact values that exceed
// the double range produce a TypeError.
func ToDouble(n Number) (Double, error) {
	switch x := n.(type) {
	case Double:
		return x, nil
	case Single:
		return Double(float64(x)), nil
	case *Complex:
		return 0, typeError("to-double", n, "real")
	default:
		v, err := exactToFloat[float64]("to-double", n)
		return Double(v), err
	}
}

// ToSingle converts a real number to a Single.  Doubles are rounded to
// nearest; finite doubles beyond the single range, like exact values beyond
// it, produce a TypeError.
func ToSingle(n Number) (Single, error) {
	switch x := n.(type) {
	case Single:
		return x, nil
	case Double:
		v := float64(x)
		if !math.IsInf(v, 0) && math.Abs(v) > math.MaxFloat32 {
			// round through the exact value; a native conversion of an
			// out-of-range value is implementation-defined
			r, err := rationalOf(v)
			if err != nil {
				return 0, err
			}
			s, err := exactToFloat[float32]("to-single", r)
			if err != nil {
				return 0, conversionError("to-single", n, KindSingle)
			}
			return Single(s), nil
		}
		return Single(float32(v)), nil
	case *Complex:
		return 0, typeError("to-single", n, "real")
	default:
		v, err := exactToFloat[float32]("to-single", n)
		return Single(v), err
	}
}

// FloatFromRational converts a real number to a float of the given kind
// (KindSingle or KindDouble).
func FloatFromRational(n Number, kind Kind) (Number, error) {
	switch kind {
	case KindSingle:
		return ToSingle(n)
	case KindDouble:
		return ToDouble(n)
	default:
		return nil, typeError("float", kind.String(), "float kind")
	}
}

// Float converts a real number to a float.  Floats are returned unchanged
// when proto is nil; otherwise the result has the width of the float proto.
// Exact values convert to Single by default.
func Float(n Number, proto Number) (Number, error) {
	if !IsReal(n) {
		return nil, typeError("float", n, "real")
	}
	if proto == nil {
		if IsFloat(n) {
			return n, nil
		}
		return ToSingle(n)
	}
	switch proto.(type) {
	case Single:
		return ToSingle(n)
	case Double:
		return ToDouble(n)
	default:
		return nil, typeError("float", proto, "float")
	}
}

// toWidth converts a real number to the float kind k.  Contagion only
// ever widens, so a Double is never narrowed here.
func toWidth(op string, n Number, k Kind) (Number, error) {
	if n.Kind() == k {
		return n, nil
	}
	if k == KindSingle {
		v, err := exactToFloat[float32](op, n)
		if err != nil {
			return nil, err
		}
		return Single(v), nil
	}
	if x, ok := n.(Single); ok {
		return Double(float64(x)), nil
	}
	v, err := exactToFloat[float64](op, n)
	if err != nil {
		return nil, err
	}
	return Double(v), nil
}
