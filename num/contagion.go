package num

import "math/big"

// binop describes a binary arithmetic operation for each representation
// it can be carried out in.  The dispatcher picks the representation from
// the larger Kind of the two operands and converts the other operand to
// it.  Every field must be set so dispatch is exhaustive.
type binop struct {
	name    string
	fixnum  func(x, y int64) (Number, error)
	exact   func(an, ad, bn, bd *big.Int) (Number, error)
	single  func(x, y float32) Number
	double  func(x, y float64) Number
	complex func(a, b Number) (Number, error)
}

// contagion returns the Kind in which an operation on a and b is carried
// out.
func contagion(a, b Number) Kind {
	ka, kb := a.Kind(), b.Kind()
	if kb > ka {
		return kb
	}
	return ka
}

func (op *binop) apply(a, b Number) (Number, error) {
	if a == nil {
		return nil, typeError(op.name, a, "number")
	}
	if b == nil {
		return nil, typeError(op.name, b, "number")
	}
	switch k := contagion(a, b); k {
	case KindFixnum:
		return op.fixnum(int64(a.(Fixnum)), int64(b.(Fixnum)))
	case KindBignum, KindRatio:
		an, ad, _ := exactParts(a)
		bn, bd, _ := exactParts(b)
		return op.exact(an, ad, bn, bd)
	case KindSingle:
		x, err := toWidth(op.name, a, k)
		if err != nil {
			return nil, err
		}
		y, err := toWidth(op.name, b, k)
		if err != nil {
			return nil, err
		}
		return op.single(float32(x.(Single)), float32(y.(Single))), nil
	case KindDouble:
		x, err := toWidth(op.name, a, k)
		if err != nil {
			return nil, err
		}
		y, err := toWidth(op.name, b, k)
		if err != nil {
			return nil, err
		}
		return op.double(float64(x.(Double)), float64(y.(Double))), nil
	case KindComplex:
		return op.complex(a, b)
	default:
		return nil, typeError(op.name, a, "number")
	}
}

var (
	opAdd = &binop{
		name:   "+",
		fixnum: func(x, y int64) (Number, error) { return addFixnum(x, y), nil },
		exact: func(an, ad, bn, bd *big.Int) (Number, error) {
			return addExact(an, ad, bn, bd), nil
		},
		// explicit conversions keep each operation rounded to its width
		single: func(x, y float32) Number { return Single(float32(x + y)) },
		double: func(x, y float64) Number { return Double(float64(x + y)) },
	}
	opSub = &binop{
		name:   "-",
		fixnum: func(x, y int64) (Number, error) { return subFixnum(x, y), nil },
		exact: func(an, ad, bn, bd *big.Int) (Number, error) {
			return subExact(an, ad, bn, bd), nil
		},
		single: func(x, y float32) Number { return Single(float32(x - y)) },
		double: func(x, y float64) Number { return Double(float64(x - y)) },
	}
	opMul = &binop{
		name:   "*",
		fixnum: func(x, y int64) (Number, error) { return mulFixnum(x, y), nil },
		exact: func(an, ad, bn, bd *big.Int) (Number, error) {
			return mulExact(an, ad, bn, bd), nil
		},
		single: func(x, y float32) Number { return Single(float32(x * y)) },
		double: func(x, y float64) Number { return Double(float64(x * y)) },
	}
	opDiv = &binop{
		name:   "/",
		fixnum: divFixnum,
		exact:  divExact,
		single: func(x, y float32) Number { return Single(float32(x / y)) },
		double: func(x, y float64) Number { return Double(float64(x / y)) },
	}
)

// The complex entries call back into the dispatcher and are attached
// after package variables are initialized.
func init() {
	opAdd.complex = addComplex
	opSub.complex = subComplex
	opMul.complex = mulComplex
	opDiv.complex = divComplex
}

// Add returns a + b.
func Add(a, b Number) (Number, error) {
	return opAdd.apply(a, b)
}

// Subtract returns a - b.
func Subtract(a, b Number) (Number, error) {
	return opSub.apply(a, b)
}

// Multiply returns a * b.
func Multiply(a, b Number) (Number, error) {
	return opMul.apply(a, b)
}

// Divide returns a / b.  Exact operands produce an exact quotient, and an
// exact zero divisor is a DivisionByZero error whatever the dividend.
// Division by a float zero follows IEEE-754 and may produce an infinity or
// NaN without error.
func Divide(a, b Number) (Number, error) {
	if isExactZero(b) {
		return nil, divisionByZero("/", a, b)
	}
	return opDiv.apply(a, b)
}

// Negate returns -n.  Floats have their sign bit flipped, so the negation
// of 0.0 is -0.0.
func Negate(n Number) (Number, error) {
	switch x := n.(type) {
	case Fixnum:
		return negFixnum(int64(x)), nil
	case *Bignum:
		return negBig(x.x), nil
	case *Ratio:
		return negRatio(x), nil
	case Single:
		return Single(negateFloat(float32(x))), nil
	case Double:
		return Double(negateFloat(float64(x))), nil
	case *Complex:
		return negComplex(x)
	default:
		return nil, typeError("-", n, "number")
	}
}

// Abs returns the absolute value of n.  The absolute value of a complex
// number is its modulus as a float.
func Abs(n Number) (Number, error) {
	switch x := n.(type) {
	case Fixnum:
		if x < 0 {
			return negFixnum(int64(x)), nil
		}
		return x, nil
	case *Bignum:
		return absBig(x.x), nil
	case *Ratio:
		return absRatio(x), nil
	case Single:
		return Single(absFloat(float32(x))), nil
	case Double:
		return Double(absFloat(float64(x))), nil
	case *Complex:
		return absComplex(x)
	default:
		return nil, typeError("abs", n, "number")
	}
}

// Signum returns -1, 0 or 1 in the representation of n for reals.  Float
// zeros and NaN are returned unchanged.  A complex number produces a
// complex of unit modulus with the same phase, and a zero complex is
// returned unchanged.
func Signum(n Number) (Number, error) {
	switch x := n.(type) {
	case Single:
		switch {
		case x > 0:
			return Single(1), nil
		case x < 0:
			return Single(-1), nil
		default:
			return x, nil
		}
	case Double:
		switch {
		case x > 0:
			return Double(1), nil
		case x < 0:
			return Double(-1), nil
		default:
			return x, nil
		}
	case *Complex:
		if Zerop(x) {
			return x, nil
		}
		m, err := absComplex(x)
		if err != nil {
			return nil, err
		}
		return Divide(x, m)
	default:
		switch {
		case Plusp(n):
			return one, nil
		case Minusp(n):
			return minusOne, nil
		default:
			return zero, nil
		}
	}
}

// Sum adds all of xs.  The sum of no numbers is 0.
func Sum(xs ...Number) (Number, error) {
	return fold(opAdd, zero, xs)
}

// Product multiplies all of xs.  The product of no numbers is 1.
func Product(xs ...Number) (Number, error) {
	return fold(opMul, one, xs)
}

func fold(op *binop, acc Number, xs []Number) (Number, error) {
	var err error
	for _, x := range xs {
		acc, err = op.apply(acc, x)
		if err != nil {
			return nil, err
		}
	}
	return acc, nil
}
