package num

import (
	"encoding/binary"
	"hash/fnv"
	"io"
	"math"
	"math/big"
)

// HashEqual is the equality used for hash table keys.  Go numeric values
// are coerced to Numbers first, so HashEqual(int8(3), MakeInteger(3)) is
// true.  Any two reals that are numerically equal are HashEqual.  Unlike
// NumEqual, a NaN is HashEqual to a NaN of the same width and bit pattern so
// that it can be found again once stored.  Values that are not numbers are
// compared with ==.
func HashEqual(a, b interface{}) bool {
	x, err1 := Coerce(a)
	y, err2 := Coerce(b)
	switch {
	case err1 != nil && err2 != nil:
		return canCompare(a, b) && a == b
	case err1 != nil || err2 != nil:
		return false
	}
	if IsNaN(x) || IsNaN(y) {
		return Eql(x, y) || sameBits(x, y)
	}
	return NumEqual(x, y)
}

// canCompare reports whether a == b can be evaluated without a runtime
// panic.
func canCompare(a, b interface{}) (ok bool) {
	defer func() {
		if recover() != nil {
			ok = false
		}
	}()
	_ = a == b
	return true
}

func sameBits(x, y Number) bool {
	if x.Kind() != y.Kind() {
		return false
	}
	switch x := x.(type) {
	case Single:
		return math.Float32bits(float32(x)) == math.Float32bits(float32(y.(Single)))
	case Double:
		return math.Float64bits(float64(x)) == math.Float64bits(float64(y.(Double)))
	case *Complex:
		c := y.(*Complex)
		return (Eql(x.re, c.re) || sameBits(x.re, c.re)) && (Eql(x.im, c.im) || sameBits(x.im, c.im))
	default:
		return false
	}
}

// Hash returns a hash of n consistent with HashEqual: values that are
// HashEqual hash identically.  The hash is computed from the exact value
// of n, so 1, 1.0 and 1.0d0 share a hash, as do 0.0 and -0.0.
func Hash(n Number) uint64 {
	h := fnv.New64a()
	writeHash(h, n)
	return h.Sum64()
}

func writeHash(h io.Writer, n Number) {
	switch x := n.(type) {
	case Fixnum:
		writeTag(h, 'i')
		writeInt(h, int64(x))
	case *Bignum:
		writeTag(h, 'i')
		writeBig(h, x.x)
	case *Ratio:
		writeTag(h, 'r')
		writeBig(h, x.num)
		writeBig(h, x.den)
	case Single:
		writeFloatHash(h, n, float64(x))
	case Double:
		writeFloatHash(h, n, float64(x))
	case *Complex:
		if Zerop(x.im) {
			// numerically equal to its real part
			writeHash(h, x.re)
			return
		}
		writeTag(h, 'c')
		writeHash(h, x.re)
		writeHash(h, x.im)
	}
}

func writeFloatHash(h io.Writer, n Number, f float64) {
	switch {
	case f != f:
		writeTag(h, 'n')
		bits, _ := FloatBits(n)
		writeHash(h, bits)
	case math.IsInf(f, 1):
		writeTag(h, '+')
	case math.IsInf(f, -1):
		writeTag(h, '-')
	default:
		r, err := Rational(n)
		if err == nil {
			writeHash(h, r)
		}
	}
}

func writeTag(h io.Writer, tag byte) {
	h.Write([]byte{tag})
}

func writeInt(h io.Writer, x int64) {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(x))
	h.Write(buf[:])
}

// writeBig hashes a bignum.  A Bignum never holds a fixnum value so the
// two encodings cannot collide on equal values.
func writeBig(h io.Writer, x *big.Int) {
	if x.IsInt64() {
		writeInt(h, x.Int64())
		return
	}
	if x.Sign() < 0 {
		writeTag(h, '-')
	}
	h.Write(x.Bytes())
}
