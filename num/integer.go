package num

import "math/big"

// Gcd returns the greatest common divisor of two integers.  The result is
// never negative and Gcd(0, 0) is 0.
func Gcd(a, b Number) (Number, error) {
	if err := bitOperands("gcd", a, b); err != nil {
		return nil, err
	}
	x, ok1 := a.(Fixnum)
	y, ok2 := b.(Fixnum)
	if ok1 && ok2 {
		u, v := uabs64(int64(x)), uabs64(int64(y))
		for v != 0 {
			u, v = v, u%v
		}
		return FromUint(u), nil
	}
	ab, _ := integerBig(a)
	bb, _ := integerBig(b)
	return makeBigOwned(new(big.Int).GCD(nil, nil, ab, bb)), nil
}

// Lcm returns the least common multiple of two integers.  The result is
// never negative and is 0 when either argument is 0.
func Lcm(a, b Number) (Number, error) {
	if err := bitOperands("lcm", a, b); err != nil {
		return nil, err
	}
	if Zerop(a) || Zerop(b) {
		return zero, nil
	}
	g, err := Gcd(a, b)
	if err != nil {
		return nil, err
	}
	q, err := Divide(a, g)
	if err != nil {
		return nil, err
	}
	p, err := Multiply(q, b)
	if err != nil {
		return nil, err
	}
	return Abs(p)
}

// Evenp reports whether the integer n is even.
func Evenp(n Number) (bool, error) {
	if !IsInteger(n) {
		return false, typeError("evenp", n, "integer")
	}
	return !isOddInteger(n), nil
}

// Oddp reports whether the integer n is odd.
func Oddp(n Number) (bool, error) {
	if !IsInteger(n) {
		return false, typeError("oddp", n, "integer")
	}
	return isOddInteger(n), nil
}

// Numerator returns the numerator of a rational in lowest terms.  An
// integer is its own numerator.
func Numerator(n Number) (Number, error) {
	switch x := n.(type) {
	case *Ratio:
		return x.Numerator(), nil
	case Fixnum, *Bignum:
		return n, nil
	default:
		return nil, typeError("numerator", n, "rational")
	}
}

// Denominator returns the positive denominator of a rational in lowest
// terms.  The denominator of an integer is 1.
func Denominator(n Number) (Number, error) {
	switch x := n.(type) {
	case *Ratio:
		return x.Denominator(), nil
	case Fixnum, *Bignum:
		return one, nil
	default:
		return nil, typeError("denominator", n, "rational")
	}
}
