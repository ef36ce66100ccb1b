package num

import (
	"math"
	"math/big"
	"strconv"
	"unsafe"

	"golang.org/x/exp/constraints"
)

// floatFormat describes an IEEE-754 binary interchange format.
type floatFormat struct {
	kind     Kind
	width    int  // total bits
	mantBits uint // stored significand bits
	expBits  uint
	bias     int
	prec     uint // significand precision including the implicit bit
	emin     int  // exponent of the smallest normal value
	emax     int  // exponent of the largest finite value
}

var (
	singleFormat = &floatFormat{
		kind:     KindSingle,
		width:    32,
		mantBits: 23,
		expBits:  8,
		bias:     127,
		prec:     24,
		emin:     -126,
		emax:     127,
	}
	doubleFormat = &floatFormat{
		kind:     KindDouble,
		width:    64,
		mantBits: 52,
		expBits:  11,
		bias:     1023,
		prec:     53,
		emin:     -1022,
		emax:     1023,
	}
)

func formatOf[F constraints.Float]() *floatFormat {
	var z F
	if unsafe.Sizeof(z) == 4 {
		return singleFormat
	}
	return doubleFormat
}

func (f *floatFormat) signMask() uint64 {
	return 1 << (f.width - 1)
}

func (f *floatFormat) expMask() uint64 {
	return 1<<f.expBits - 1
}

func (f *floatFormat) mantMask() uint64 {
	return 1<<f.mantBits - 1
}

func floatBits[F constraints.Float](x F) uint64 {
	if formatOf[F]() == singleFormat {
		return uint64(math.Float32bits(float32(x)))
	}
	return math.Float64bits(float64(x))
}

func floatFrombits[F constraints.Float](b uint64) F {
	if formatOf[F]() == singleFormat {
		return F(math.Float32frombits(uint32(b)))
	}
	return F(math.Float64frombits(b))
}

// negateFloat flips the sign bit so that -(+0.0) is -0.0 and the sign of a
// NaN is flipped as well.
func negateFloat[F constraints.Float](x F) F {
	return floatFrombits[F](floatBits(x) ^ formatOf[F]().signMask())
}

// absFloat clears the sign bit.
func absFloat[F constraints.Float](x F) F {
	return floatFrombits[F](floatBits(x) &^ formatOf[F]().signMask())
}

func signbit[F constraints.Float](x F) bool {
	return floatBits(x)&formatOf[F]().signMask() != 0
}

func isNaN[F constraints.Float](x F) bool {
	return x != x
}

func isInf[F constraints.Float](x F) bool {
	return !isNaN(x) && x-x != 0
}

// makeFloat boxes x as the Number of its width.
func makeFloat[F constraints.Float](x F) Number {
	if formatOf[F]() == singleFormat {
		return Single(float32(x))
	}
	return Double(float64(x))
}

// decodeFloat splits x into sign, an integer significand and a binary
// exponent such that |x| = mant * 2^exp.  The implicit leading bit of a
// normalized value is restored.  decodeFloat returns false for infinities
// and NaN.
func decodeFloat[F constraints.Float](x F) (neg bool, mant uint64, exp int, ok bool) {
	f := formatOf[F]()
	b := floatBits(x)
	neg = b&f.signMask() != 0
	biased := (b >> f.mantBits) & f.expMask()
	mant = b & f.mantMask()
	switch biased {
	case f.expMask():
		return neg, 0, 0, false
	case 0:
		// subnormal, or zero
		exp = 1 - f.bias - int(f.mantBits)
	default:
		mant |= 1 << f.mantBits
		exp = int(biased) - f.bias - int(f.mantBits)
	}
	return neg, mant, exp, true
}

// rationalOf returns the exact value of x as an integer or a Ratio.
func rationalOf[F constraints.Float](x F) (Number, error) {
	neg, mant, exp, ok := decodeFloat(x)
	if !ok {
		return nil, typeError("rational", makeFloat(x), "finite float")
	}
	if mant == 0 {
		return zero, nil
	}
	if exp < 0 {
		// strip common factors of two so the fraction is already reduced
		for mant&1 == 0 && exp < 0 {
			mant >>= 1
			exp++
		}
	}
	n := new(big.Int).SetUint64(mant)
	if neg {
		n.Neg(n)
	}
	if exp >= 0 {
		return makeBigOwned(n.Lsh(n, uint(exp))), nil
	}
	d := new(big.Int).Lsh(bigOne, uint(-exp))
	return makeRatioOwned(n, d), nil
}

// floatRemainder rounds the exact remainder res of dividing x to the width
// of F.  A zero remainder takes the sign of x.
func floatRemainder[F constraints.Float](op string, x F, res Number) (Number, error) {
	rf, err := exactToFloat[F](op, res)
	if err != nil {
		return nil, err
	}
	if rf == 0 && signbit(x) {
		rf = negateFloat(absFloat(rf))
	}
	return makeFloat(rf), nil
}

// IsNaN returns true if n is a float NaN or a complex with a NaN part.
func IsNaN(n Number) bool {
	switch x := n.(type) {
	case Single:
		return isNaN(float32(x))
	case Double:
		return isNaN(float64(x))
	case *Complex:
		return IsNaN(x.re) || IsNaN(x.im)
	default:
		return false
	}
}

// IsInfinite returns true if n is a float infinity or a complex with an
// infinite part.
func IsInfinite(n Number) bool {
	switch x := n.(type) {
	case Single:
		return isInf(float32(x))
	case Double:
		return isInf(float64(x))
	case *Complex:
		return IsInfinite(x.re) || IsInfinite(x.im)
	default:
		return false
	}
}

// Rational returns the exact value of a real number.  Exact numbers are
// returned unchanged.  Float infinities and NaN have no exact value and
// produce a TypeError.
func Rational(n Number) (Number, error) {
	switch x := n.(type) {
	case Single:
		return rationalOf(float32(x))
	case Double:
		return rationalOf(float64(x))
	case *Complex:
		return nil, typeError("rational", n, "real")
	default:
		return n, nil
	}
}

// IntegerDecodeFloat returns the significand, exponent and sign of a float
// such that x = sign * mantissa * 2^exponent, with the significand and
// exponent as exact integers and sign as 1 or -1.
func IntegerDecodeFloat(n Number) (mantissa, exponent, sign Number, err error) {
	var neg, ok bool
	var mant uint64
	var exp int
	switch x := n.(type) {
	case Single:
		neg, mant, exp, ok = decodeFloat(float32(x))
	case Double:
		neg, mant, exp, ok = decodeFloat(float64(x))
	default:
		return nil, nil, nil, typeError("integer-decode-float", n, "float")
	}
	if !ok {
		return nil, nil, nil, typeError("integer-decode-float", n, "finite float")
	}
	sign = one
	if neg {
		sign = minusOne
	}
	return FromUint(mant), MakeInteger(int64(exp)), sign, nil
}

// FloatBits returns the IEEE-754 bit pattern of a float as a non-negative
// exact integer.
func FloatBits(n Number) (Number, error) {
	switch x := n.(type) {
	case Single:
		return FromUint(math.Float32bits(float32(x))), nil
	case Double:
		return FromUint(math.Float64bits(float64(x))), nil
	default:
		return nil, typeError("float-bits", n, "float")
	}
}

// FloatFromBits builds a float of the given width (32 or 64) from an IEEE
// bit pattern held in a non-negative exact integer.
func FloatFromBits(bits Number, width int) (Number, error) {
	b, ok := integerBig(bits)
	if !ok {
		return nil, typeError("float-from-bits", bits, "integer")
	}
	if b.Sign() < 0 || b.BitLen() > width {
		return nil, typeError("float-from-bits", bits, "unsigned-byte "+strconv.Itoa(width))
	}
	switch width {
	case 32:
		return Single(math.Float32frombits(uint32(b.Uint64()))), nil
	case 64:
		return Double(math.Float64frombits(b.Uint64())), nil
	default:
		return nil, typeError("float-from-bits", MakeInteger(int64(width)), "float width (32 or 64)")
	}
}
