package num

// The division family divides two reals and rounds the quotient to an
// integer.  Every function returns a quotient q and remainder r such that
// a = q*b + r, with r computed exactly from a and b.  The quotient is always
// an exact integer.  The remainder has the contagion kind of the operands.
// A zero divisor of any kind is a DivisionByZero error because no integer
// quotient exists.

// roundMode selects how a quotient is rounded to an integer.
type roundMode int

const (
	roundTruncate roundMode = iota
	roundFloor
	roundCeiling
	roundNearest
)

// Truncate divides a by b rounding the quotient toward zero.  The remainder
// is zero or has the sign of a.
func Truncate(a, b Number) (q, r Number, err error) {
	return divide("truncate", a, b, roundTruncate)
}

// divide checks the operands and divides them exactly.  Float operands are
// first widened to their common width and then divided by their exact
// values, so the quotient is the true quotient rounded by mode and only
// the remainder is rounded back to a float.
func divide(op string, a, b Number, mode roundMode) (q, r Number, err error) {
	if !IsReal(a) {
		return nil, nil, typeError(op, a, "real")
	}
	if !IsReal(b) {
		return nil, nil, typeError(op, b, "real")
	}
	if Zerop(b) {
		return nil, nil, divisionByZero(op, a, b)
	}
	k := contagion(a, b)
	if k != KindSingle && k != KindDouble {
		return divideExact(a, b, mode)
	}
	x, y, err := widen(op, a, b, k)
	if err != nil {
		return nil, nil, err
	}
	xr, err := Rational(x)
	if err != nil {
		return nil, nil, err
	}
	yr, err := Rational(y)
	if err != nil {
		return nil, nil, err
	}
	if Zerop(yr) {
		// an exact divisor can underflow to zero when it is widened
		return nil, nil, divisionByZero(op, a, b)
	}
	q, res, err := divideExact(xr, yr, mode)
	if err != nil {
		return nil, nil, err
	}
	if k == KindSingle {
		r, err = floatRemainder(op, float32(x.(Single)), res)
	} else {
		r, err = floatRemainder(op, float64(x.(Double)), res)
	}
	if err != nil {
		return nil, nil, err
	}
	return q, r, nil
}

// divideExact divides the exact reals a and b, where b is not zero.
func divideExact(a, b Number, mode roundMode) (q, r Number, err error) {
	x, ok1 := a.(Fixnum)
	y, ok2 := b.(Fixnum)
	if ok1 && ok2 {
		q, r, err = truncateFixnum(int64(x), int64(y))
	} else {
		an, ad, _ := exactParts(a)
		bn, bd, _ := exactParts(b)
		if ad == bigOne && bd == bigOne {
			q, r, err = truncateBig(an, bn)
		} else {
			q, r, err = truncateExact(an, ad, bn, bd)
		}
	}
	if err != nil || Zerop(r) {
		return q, r, err
	}
	switch mode {
	case roundFloor:
		if Minusp(r) != Minusp(b) {
			return adjust(q, r, b, -1)
		}
	case roundCeiling:
		if Minusp(r) == Minusp(b) {
			return adjust(q, r, b, 1)
		}
	case roundNearest:
		if Minusp(r) != Minusp(b) {
			if q, r, err = adjust(q, r, b, -1); err != nil {
				return nil, nil, err
			}
		}
		return roundHalfEven(q, r, b)
	}
	return q, r, nil
}

func widen(op string, a, b Number, k Kind) (Number, Number, error) {
	x, err := toWidth(op, a, k)
	if err != nil {
		return nil, nil, err
	}
	y, err := toWidth(op, b, k)
	if err != nil {
		return nil, nil, err
	}
	return x, y, nil
}

// Floor divides a by b rounding the quotient toward negative infinity.  The
// remainder is zero or has the sign of b.
func Floor(a, b Number) (q, r Number, err error) {
	return divide("floor", a, b, roundFloor)
}

// Ceiling divides a by b rounding the quotient toward positive infinity.
// The remainder is zero or has the sign opposite to b.
func Ceiling(a, b Number) (q, r Number, err error) {
	return divide("ceiling", a, b, roundCeiling)
}

// Round divides a by b rounding the quotient to the nearest integer.  Ties
// round to the even integer.
func Round(a, b Number) (q, r Number, err error) {
	return divide("round", a, b, roundNearest)
}

// roundHalfEven takes the floored quotient q and remainder r of dividing by
// b and moves q up when r is more than half of b, or exactly half with q
// odd.
func roundHalfEven(q, r, b Number) (Number, Number, error) {
	if Zerop(r) {
		return q, r, nil
	}
	// r lies strictly between 0 and b, so compare 2|r| against |b|
	r2, err := Add(r, r)
	if err != nil {
		return nil, nil, err
	}
	ar, err := Abs(r2)
	if err != nil {
		return nil, nil, err
	}
	ab, err := Abs(b)
	if err != nil {
		return nil, nil, err
	}
	c, err := Compare(ar, ab)
	if err != nil {
		return nil, nil, err
	}
	if c > 0 || (c == 0 && isOddInteger(q)) {
		return adjust(q, r, b, 1)
	}
	return q, r, nil
}

// adjust moves the quotient by dir and the remainder by -dir*b.
func adjust(q, r, b Number, dir int64) (Number, Number, error) {
	q, err := Add(q, MakeInteger(dir))
	if err != nil {
		return nil, nil, err
	}
	if dir > 0 {
		r, err = Subtract(r, b)
	} else {
		r, err = Add(r, b)
	}
	if err != nil {
		return nil, nil, err
	}
	return q, r, nil
}

func isOddInteger(n Number) bool {
	switch x := n.(type) {
	case Fixnum:
		return x&1 != 0
	case *Bignum:
		return x.x.Bit(0) != 0
	default:
		return false
	}
}

// Rem returns the remainder of Truncate.
func Rem(a, b Number) (Number, error) {
	x, ok1 := a.(Fixnum)
	y, ok2 := b.(Fixnum)
	if ok1 && ok2 {
		_, r, err := truncateFixnum(int64(x), int64(y))
		return r, err
	}
	_, r, err := divide("rem", a, b, roundTruncate)
	return r, err
}

// Mod returns the remainder of Floor.
func Mod(a, b Number) (Number, error) {
	if IsInteger(a) && IsInteger(b) {
		x, ok1 := a.(Fixnum)
		y, ok2 := b.(Fixnum)
		if ok1 && ok2 {
			return floorModFixnum(int64(x), int64(y))
		}
		an, _ := integerBig(a)
		bn, _ := integerBig(b)
		return floorModBig(an, bn)
	}
	_, r, err := divide("mod", a, b, roundFloor)
	return r, err
}
