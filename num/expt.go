package num

import (
	"math"
	"math/big"
	"math/cmplx"
)

// Expt returns base raised to power.  An integer power is computed by
// repeated squaring in the representation of base, so exact bases produce
// exact results.  Other powers are computed in floating point and produce
// a Double when either argument involves a Double and a Single otherwise.
// A negative real base with a non-integer power produces a complex result.
func Expt(base, power Number) (Number, error) {
	if IsInteger(power) {
		return exptInteger(base, power)
	}
	width := KindSingle
	if Realpart(base).Kind() == KindDouble || Realpart(power).Kind() == KindDouble {
		width = KindDouble
	}
	if Zerop(base) {
		if IsReal(power) && Plusp(power) {
			return FloatFromRational(zero, width)
		}
		return nil, divisionByZero("expt", base, power)
	}
	if IsReal(base) && IsReal(power) && !Minusp(base) {
		b, err := ToDouble(base)
		if err != nil {
			return nil, err
		}
		p, err := ToDouble(power)
		if err != nil {
			return nil, err
		}
		return FloatFromRational(Double(math.Pow(float64(b), float64(p))), width)
	}
	b, err := toComplex128(base)
	if err != nil {
		return nil, err
	}
	p, err := toComplex128(power)
	if err != nil {
		return nil, err
	}
	return fromComplex128(cmplx.Pow(b, p), width)
}

func exptInteger(base, power Number) (Number, error) {
	p, ok := power.(Fixnum)
	if !ok {
		return exptHuge(base, power)
	}
	if p == 0 {
		return unitOf(base)
	}
	m := uabs64(int64(p))
	if IsRational(base) {
		if Zerop(base) {
			if p < 0 {
				return nil, divisionByZero("expt", base, power)
			}
			return zero, nil
		}
		an, ad, _ := exactParts(base)
		if m > maxBitCount && !isUnit(an, ad) {
			return nil, arithmeticError("expt", "exponent %v is too large", power)
		}
		e := new(big.Int).SetUint64(m)
		n := new(big.Int).Exp(an, e, nil)
		d := new(big.Int).Exp(ad, e, nil)
		if p < 0 {
			n, d = d, n
		}
		return makeRatioOwned(n, d), nil
	}
	acc, err := unitOf(base)
	if err != nil {
		return nil, err
	}
	sq := base
	for m > 0 {
		if m&1 == 1 {
			acc, err = Multiply(acc, sq)
			if err != nil {
				return nil, err
			}
		}
		m >>= 1
		if m > 0 {
			sq, err = Multiply(sq, sq)
			if err != nil {
				return nil, err
			}
		}
	}
	if p < 0 {
		u, err := unitOf(base)
		if err != nil {
			return nil, err
		}
		return Divide(u, acc)
	}
	return acc, nil
}

func isUnit(n, d *big.Int) bool {
	return d == bigOne && n.IsInt64() && (n.Int64() == 1 || n.Int64() == -1)
}

// exptHuge handles a Bignum power, which is only computable for bases of
// magnitude 0 or 1, exact or float.
func exptHuge(base, power Number) (Number, error) {
	if IsFloat(base) {
		m, err := Abs(base)
		if err != nil {
			return nil, err
		}
		if Zerop(base) && !Plusp(power) {
			return nil, divisionByZero("expt", base, power)
		}
		if Zerop(base) || NumEqual(m, one) {
			if isOddInteger(power) {
				return base, nil
			}
			return m, nil
		}
	}
	if x, ok := base.(Fixnum); ok {
		switch {
		case x == 1:
			return one, nil
		case x == -1:
			if isOddInteger(power) {
				return minusOne, nil
			}
			return one, nil
		case x == 0 && Plusp(power):
			return zero, nil
		case x == 0:
			return nil, divisionByZero("expt", base, power)
		}
	}
	return nil, arithmeticError("expt", "exponent %v is too large", power)
}

// unitOf returns 1 in the representation of n.
func unitOf(n Number) (Number, error) {
	switch x := n.(type) {
	case Single:
		return Single(1), nil
	case Double:
		return Double(1), nil
	case *Complex:
		if IsFloat(x.re) {
			u, err := unitOf(x.re)
			if err != nil {
				return nil, err
			}
			z, err := FloatFromRational(zero, x.re.Kind())
			if err != nil {
				return nil, err
			}
			return MakeComplex(u, z)
		}
		return one, nil
	case Fixnum, *Bignum, *Ratio:
		return one, nil
	default:
		return nil, typeError("expt", n, "number")
	}
}
