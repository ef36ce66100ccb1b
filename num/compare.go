package num

// Eql returns true if a and b have the same representation and the same
// value.  Eql distinguishes 0.0 from -0.0, 1 from 1.0, and Singles from
// Doubles.  Floats are compared with ==, so a NaN is never Eql to anything.
func Eql(a, b Number) bool {
	if a.Kind() != b.Kind() {
		return false
	}
	switch x := a.(type) {
	case Fixnum:
		return x == b.(Fixnum)
	case *Bignum:
		return x.x.Cmp(b.(*Bignum).x) == 0
	case *Ratio:
		y := b.(*Ratio)
		return x.num.Cmp(y.num) == 0 && x.den.Cmp(y.den) == 0
	case Single:
		y := b.(Single)
		return x == y && signbit(float32(x)) == signbit(float32(y))
	case Double:
		y := b.(Double)
		return x == y && signbit(float64(x)) == signbit(float64(y))
	case *Complex:
		y := b.(*Complex)
		return Eql(x.re, y.re) && Eql(x.im, y.im)
	default:
		return false
	}
}

// NumEqual returns true if a and b are mathematically equal regardless of
// representation.  A float is compared with an exact number by converting
// the float to its exact value, never the other way around.  NaN is not
// equal to anything.
func NumEqual(a, b Number) bool {
	if a.Kind() == KindComplex || b.Kind() == KindComplex {
		ar, ai := complexParts(a)
		br, bi := complexParts(b)
		return NumEqual(ar, br) && NumEqual(ai, bi)
	}
	c, ordered, _ := compareReal("=", a, b)
	return ordered && c == 0
}

// compareReal orders two real numbers.  ordered is false when either
// operand is NaN.  Complex operands produce a TypeError.
func compareReal(op string, a, b Number) (c int, ordered bool, err error) {
	if a.Kind() == KindComplex {
		return 0, false, typeError(op, a, "real")
	}
	if b.Kind() == KindComplex {
		return 0, false, typeError(op, b, "real")
	}
	if x, ok := a.(Fixnum); ok {
		if y, ok := b.(Fixnum); ok {
			return compareFixnum(int64(x), int64(y)), true, nil
		}
	}
	af, aFloat := floatValue(a)
	bf, bFloat := floatValue(b)
	switch {
	case aFloat && bFloat:
		// a Single widens to a Double exactly
		switch {
		case af != af || bf != bf:
			return 0, false, nil
		case af < bf:
			return -1, true, nil
		case af > bf:
			return 1, true, nil
		default:
			return 0, true, nil
		}
	case aFloat:
		c, ordered = compareFloatExact(af, b)
		return c, ordered, nil
	case bFloat:
		c, ordered = compareFloatExact(bf, a)
		return -c, ordered, nil
	}
	an, ad, _ := exactParts(a)
	bn, bd, _ := exactParts(b)
	return compareExact(an, ad, bn, bd), true, nil
}

// compareFloatExact orders the float f against the exact number x using
// the exact value of f.
func compareFloatExact(f float64, x Number) (int, bool) {
	switch {
	case f != f:
		return 0, false
	case isInf(f):
		if f > 0 {
			return 1, true
		}
		return -1, true
	}
	r, err := rationalOf(f)
	if err != nil {
		return 0, false
	}
	rn, rd, _ := exactParts(r)
	xn, xd, _ := exactParts(x)
	return compareExact(rn, rd, xn, xd), true
}

func floatValue(n Number) (float64, bool) {
	switch x := n.(type) {
	case Single:
		return float64(x), true
	case Double:
		return float64(x), true
	default:
		return 0, false
	}
}

// Compare returns -1, 0 or 1 as a is less than, equal to, or greater than
// b.  Complex operands produce a TypeError and NaN operands an
// ArithmeticError since neither can be ordered.
func Compare(a, b Number) (int, error) {
	c, ordered, err := compareReal("compare", a, b)
	if err != nil {
		return 0, err
	}
	if !ordered {
		return 0, arithmeticError("compare", "unordered comparison: %v %v", a, b)
	}
	return c, nil
}

func order(op string, a, b Number, test func(c int) bool) (bool, error) {
	c, ordered, err := compareReal(op, a, b)
	if err != nil {
		return false, err
	}
	return ordered && test(c), nil
}

// Less returns true if a < b.  Comparisons involving NaN are false.
func Less(a, b Number) (bool, error) {
	return order("<", a, b, func(c int) bool { return c < 0 })
}

// LessEqual returns true if a <= b.
func LessEqual(a, b Number) (bool, error) {
	return order("<=", a, b, func(c int) bool { return c <= 0 })
}

// Greater returns true if a > b.
func Greater(a, b Number) (bool, error) {
	return order(">", a, b, func(c int) bool { return c > 0 })
}

// GreaterEqual returns true if a >= b.
func GreaterEqual(a, b Number) (bool, error) {
	return order(">=", a, b, func(c int) bool { return c >= 0 })
}

// Max returns the larger of a and b.  When they are equal or unordered a is
// returned.
func Max(a, b Number) (Number, error) {
	c, ordered, err := compareReal("max", a, b)
	if err != nil {
		return nil, err
	}
	if ordered && c < 0 {
		return b, nil
	}
	return a, nil
}

// Min returns the smaller of a and b.  When they are equal or unordered a
// is returned.
func Min(a, b Number) (Number, error) {
	c, ordered, err := compareReal("min", a, b)
	if err != nil {
		return nil, err
	}
	if ordered && c > 0 {
		return b, nil
	}
	return a, nil
}

// Zerop returns true if n is zero.  Both float zeros are zero, and a
// complex is zero when both of its parts are.
func Zerop(n Number) bool {
	switch x := n.(type) {
	case Fixnum:
		return x == 0
	case Single:
		return x == 0
	case Double:
		return x == 0
	case *Complex:
		return Zerop(x.re) && Zerop(x.im)
	default:
		// canonical Bignums and Ratios are never zero
		return false
	}
}

// Plusp returns true if the real number n is greater than zero.  Complex
// numbers and NaN are not positive.
func Plusp(n Number) bool {
	return sign(n) > 0
}

// Minusp returns true if the real number n is less than zero.  -0.0 is not
// negative.
func Minusp(n Number) bool {
	return sign(n) < 0
}

func sign(n Number) int {
	switch x := n.(type) {
	case Fixnum:
		return compareFixnum(int64(x), 0)
	case *Bignum:
		return x.x.Sign()
	case *Ratio:
		return x.num.Sign()
	case Single:
		return compareFloat(float64(x))
	case Double:
		return compareFloat(float64(x))
	default:
		return 0
	}
}

func compareFloat(f float64) int {
	switch {
	case f > 0:
		return 1
	case f < 0:
		return -1
	default:
		return 0
	}
}
