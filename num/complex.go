package num

import (
	"math"
	"math/cmplx"
)

// MakeComplex returns re + im*i.  When im is an exact zero the result is
// re itself.  A float zero imaginary part produces a genuine Complex.  When
// either part is a float both parts are converted to the wider float
// width.
func MakeComplex(re, im Number) (Number, error) {
	if !IsReal(re) {
		return nil, typeError("complex", re, "real")
	}
	if !IsReal(im) {
		return nil, typeError("complex", im, "real")
	}
	if im.Kind().IsExact() && isExactZero(im) {
		return re, nil
	}
	k := re.Kind()
	if im.Kind() > k {
		k = im.Kind()
	}
	if k.IsFloat() {
		var err error
		re, err = toWidth("complex", re, k)
		if err != nil {
			return nil, err
		}
		im, err = toWidth("complex", im, k)
		if err != nil {
			return nil, err
		}
	}
	return &Complex{re: re, im: im}, nil
}

func isExactZero(n Number) bool {
	x, ok := n.(Fixnum)
	return ok && x == 0
}

// Realpart returns the real part of n.  A real number is its own real part.
func Realpart(n Number) Number {
	if c, ok := n.(*Complex); ok {
		return c.re
	}
	return n
}

// Imagpart returns the imaginary part of n.  The imaginary part of a real
// number is a zero of the same kind: exact zero for exact numbers and a
// float zero with the sign of n for floats.
func Imagpart(n Number) Number {
	switch x := n.(type) {
	case *Complex:
		return x.im
	case Single:
		if signbit(float32(x)) {
			return Single(negateFloat(float32(0)))
		}
		return Single(0)
	case Double:
		if signbit(float64(x)) {
			return Double(negateFloat(float64(0)))
		}
		return Double(0)
	default:
		return zero
	}
}

// Conjugate returns the complex conjugate of n.
func Conjugate(n Number) (Number, error) {
	c, ok := n.(*Complex)
	if !ok {
		return n, nil
	}
	im, err := Negate(c.im)
	if err != nil {
		return nil, err
	}
	return MakeComplex(c.re, im)
}

func complexParts(n Number) (re, im Number) {
	if c, ok := n.(*Complex); ok {
		return c.re, c.im
	}
	return n, zero
}

func addComplex(a, b Number) (Number, error) {
	ar, ai := complexParts(a)
	br, bi := complexParts(b)
	re, err := Add(ar, br)
	if err != nil {
		return nil, err
	}
	im, err := Add(ai, bi)
	if err != nil {
		return nil, err
	}
	return MakeComplex(re, im)
}

func subComplex(a, b Number) (Number, error) {
	ar, ai := complexParts(a)
	br, bi := complexParts(b)
	re, err := Subtract(ar, br)
	if err != nil {
		return nil, err
	}
	im, err := Subtract(ai, bi)
	if err != nil {
		return nil, err
	}
	return MakeComplex(re, im)
}

// mulComplex computes (a+bi)(c+di) = (ac-bd) + (ad+bc)i.
func mulComplex(x, y Number) (Number, error) {
	a, b := complexParts(x)
	c, d := complexParts(y)
	re, err := linear(a, c, b, d, Subtract)
	if err != nil {
		return nil, err
	}
	im, err := linear(a, d, b, c, Add)
	if err != nil {
		return nil, err
	}
	return MakeComplex(re, im)
}

// divComplex computes (a+bi)/(c+di) =
// ((ac+bd) + (bc-ad)i) / (c^2+d^2).  A real divisor divides each part
// directly.
func divComplex(x, y Number) (Number, error) {
	a, b := complexParts(x)
	if _, ok := y.(*Complex); !ok {
		if Zerop(y) && y.Kind().IsExact() {
			return nil, divisionByZero("/", x, y)
		}
		re, err := Divide(a, y)
		if err != nil {
			return nil, err
		}
		im, err := Divide(b, y)
		if err != nil {
			return nil, err
		}
		return MakeComplex(re, im)
	}
	c, d := complexParts(y)
	if Zerop(c) && Zerop(d) {
		return nil, divisionByZero("/", x, y)
	}
	den, err := linear(c, c, d, d, Add)
	if err != nil {
		return nil, err
	}
	nre, err := linear(a, c, b, d, Add)
	if err != nil {
		return nil, err
	}
	nim, err := linear(b, c, a, d, Subtract)
	if err != nil {
		return nil, err
	}
	re, err := Divide(nre, den)
	if err != nil {
		return nil, err
	}
	im, err := Divide(nim, den)
	if err != nil {
		return nil, err
	}
	return MakeComplex(re, im)
}

// linear computes op(p*q, r*s).
func linear(p, q, r, s Number, op func(a, b Number) (Number, error)) (Number, error) {
	pq, err := Multiply(p, q)
	if err != nil {
		return nil, err
	}
	rs, err := Multiply(r, s)
	if err != nil {
		return nil, err
	}
	return op(pq, rs)
}

func negComplex(c *Complex) (Number, error) {
	re, err := Negate(c.re)
	if err != nil {
		return nil, err
	}
	im, err := Negate(c.im)
	if err != nil {
		return nil, err
	}
	return MakeComplex(re, im)
}

// absComplex returns the modulus of c as a float.  Exact parts produce a
// Single.
func absComplex(c *Complex) (Number, error) {
	k := c.re.Kind()
	if k.IsExact() {
		k = KindSingle
	}
	re, err := ToDouble(c.re)
	if err != nil {
		return nil, err
	}
	im, err := ToDouble(c.im)
	if err != nil {
		return nil, err
	}
	h := math.Hypot(float64(re), float64(im))
	if k == KindSingle {
		return ToSingle(Double(h))
	}
	return Double(h), nil
}

// toComplex128 returns the value of c as a native complex number.
func toComplex128(n Number) (complex128, error) {
	re, im := complexParts(n)
	r, err := ToDouble(re)
	if err != nil {
		return 0, err
	}
	i, err := ToDouble(im)
	if err != nil {
		return 0, err
	}
	return complex(float64(r), float64(i)), nil
}

// fromComplex128 converts a native complex number back to a Complex of the
// float kind k.
func fromComplex128(z complex128, k Kind) (Number, error) {
	if k == KindSingle {
		re, err := ToSingle(Double(real(z)))
		if err != nil {
			return nil, err
		}
		im, err := ToSingle(Double(imag(z)))
		if err != nil {
			return nil, err
		}
		return MakeComplex(re, im)
	}
	return MakeComplex(Double(real(z)), Double(imag(z)))
}

// Sqrt returns the principal square root of n.  Non-negative reals produce
// a float; negative reals and complex numbers produce a complex result.
// Exact arguments produce Single results.
func Sqrt(n Number) (Number, error) {
	k := n.Kind()
	width := KindSingle
	switch {
	case k == KindComplex:
		if Realpart(n).Kind() == KindDouble {
			width = KindDouble
		}
	case k == KindDouble:
		width = KindDouble
	}
	if k != KindComplex && !Minusp(n) {
		x, err := ToDouble(n)
		if err != nil {
			return nil, err
		}
		return FloatFromRational(Double(math.Sqrt(float64(x))), width)
	}
	z, err := toComplex128(n)
	if err != nil {
		return nil, err
	}
	return fromComplex128(cmplx.Sqrt(z), width)
}
