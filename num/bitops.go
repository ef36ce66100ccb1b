package num

import (
	"math/big"
	"math/bits"
)

// Bit operations treat integers as infinite two's-complement bit strings.
// Negative integers have infinitely many leading one bits.

// maxBitCount bounds shift counts and byte specifiers.  Larger values would
// describe integers that cannot be allocated.
const maxBitCount = 1 << 32

func bitOperands(op string, a, b Number) error {
	if !IsInteger(a) {
		return typeError(op, a, "integer")
	}
	if !IsInteger(b) {
		return typeError(op, b, "integer")
	}
	return nil
}

// bitwise applies a logical operation.  Two fixnums combine natively since
// int64 operations already carry sign extension.  Any bignum operand moves
// the computation to big.Int, whose logical operations implement
// two's-complement semantics for negative values.
func bitwise(op string, a, b Number, fix func(x, y int64) int64, bigop func(z, x, y *big.Int) *big.Int) (Number, error) {
	if err := bitOperands(op, a, b); err != nil {
		return nil, err
	}
	x, ok1 := a.(Fixnum)
	y, ok2 := b.(Fixnum)
	if ok1 && ok2 {
		return MakeInteger(fix(int64(x), int64(y))), nil
	}
	ab, _ := integerBig(a)
	bb, _ := integerBig(b)
	return makeBigOwned(bigop(new(big.Int), ab, bb)), nil
}

// Logand returns the bitwise and of two integers.
func Logand(a, b Number) (Number, error) {
	// a non-negative fixnum masks away every bit of a bignum above the
	// word
	if x, ok := a.(Fixnum); ok && x >= 0 {
		if y, ok := b.(*Bignum); ok {
			return MakeInteger(int64(x) & lowWord(y.x)), nil
		}
	}
	if y, ok := b.(Fixnum); ok && y >= 0 {
		if x, ok := a.(*Bignum); ok {
			return MakeInteger(lowWord(x.x) & int64(y)), nil
		}
	}
	return bitwise("logand", a, b,
		func(x, y int64) int64 { return x & y },
		(*big.Int).And)
}

// lowWord returns the low 64 bits of the two's-complement expansion of x.
func lowWord(x *big.Int) int64 {
	lo := new(big.Int).And(x, bigWordMask)
	return int64(lo.Uint64())
}

var bigWordMask = new(big.Int).SetUint64(^uint64(0))

// Logior returns the bitwise inclusive or of two integers.
func Logior(a, b Number) (Number, error) {
	return bitwise("logior", a, b,
		func(x, y int64) int64 { return x | y },
		(*big.Int).Or)
}

// Logxor returns the bitwise exclusive or of two integers.
func Logxor(a, b Number) (Number, error) {
	return bitwise("logxor", a, b,
		func(x, y int64) int64 { return x ^ y },
		(*big.Int).Xor)
}

// Lognot returns the bitwise complement of an integer, -n-1.
func Lognot(n Number) (Number, error) {
	switch x := n.(type) {
	case Fixnum:
		return MakeInteger(^int64(x)), nil
	case *Bignum:
		return makeBigOwned(new(big.Int).Not(x.x)), nil
	default:
		return nil, typeError("lognot", n, "integer")
	}
}

// Ash shifts n left by count bits, or right when count is negative.  Left
// shifts promote to a Bignum instead of overflowing.  Right shifts are
// arithmetic and round toward negative infinity.  Shifting left by more
// than 2^32 bits is an ArithmeticError.
func Ash(n, count Number) (Number, error) {
	if err := bitOperands("ash", n, count); err != nil {
		return nil, err
	}
	c, ok := count.(Fixnum)
	if !ok {
		// a bignum count is either an impossible left shift or a right
		// shift past every bit
		if count.(*Bignum).x.Sign() > 0 && !Zerop(n) {
			return nil, arithmeticError("ash", "shift count %v is too large", count)
		}
		return signFill(n), nil
	}
	if c == 0 || Zerop(n) {
		return n, nil
	}
	if c > 0 {
		if c > maxBitCount {
			return nil, arithmeticError("ash", "shift count %v is too large", count)
		}
		if x, ok := n.(Fixnum); ok && c < 63 {
			v := int64(x) << uint(c)
			if v>>uint(c) == int64(x) {
				return MakeInteger(v), nil
			}
		}
		b, _ := integerBig(n)
		return makeBigOwned(new(big.Int).Lsh(b, uint(c))), nil
	}
	// c is compared before it is negated, so math.MinInt64 never is
	switch x := n.(type) {
	case Fixnum:
		if c <= -64 {
			return signFill(n), nil
		}
		return MakeInteger(int64(x) >> uint(-c)), nil
	default:
		b := x.(*Bignum).x
		if int64(c) <= -int64(b.BitLen()) {
			return signFill(n), nil
		}
		return makeBigOwned(new(big.Int).Rsh(b, uint(-c))), nil
	}
}

// signFill returns the result of shifting n right past all of its bits.
func signFill(n Number) Number {
	if Minusp(n) {
		return minusOne
	}
	return zero
}

// bitIndex validates a non-negative bit index or field size.  Indices too
// large to be represented are reported as an ArithmeticError.
func bitIndex(op string, n Number) (int64, error) {
	switch x := n.(type) {
	case Fixnum:
		if x < 0 {
			return 0, typeError(op, n, "unsigned-byte")
		}
		if x > maxBitCount {
			return 0, arithmeticError(op, "bit index %v is too large", n)
		}
		return int64(x), nil
	case *Bignum:
		if x.x.Sign() < 0 {
			return 0, typeError(op, n, "unsigned-byte")
		}
		return 0, arithmeticError(op, "bit index %v is too large", n)
	default:
		return 0, typeError(op, n, "unsigned-byte")
	}
}

// Ldb extracts the size bits of n starting at bit position.  The result is
// a non-negative integer.
func Ldb(size, position, n Number) (Number, error) {
	s, err := bitIndex("ldb", size)
	if err != nil {
		return nil, err
	}
	p, err := bitIndex("ldb", position)
	if err != nil {
		return nil, err
	}
	if !IsInteger(n) {
		return nil, typeError("ldb", n, "integer")
	}
	if s == 0 {
		return zero, nil
	}
	if x, ok := n.(Fixnum); ok && s < 63 {
		v := int64(x)
		if p < 64 {
			v >>= uint(p)
		} else if v < 0 {
			v = -1
		} else {
			v = 0
		}
		return MakeInteger(v & (1<<uint(s) - 1)), nil
	}
	b, _ := integerBig(n)
	z := new(big.Int).Rsh(b, uint(p))
	mask := new(big.Int).Lsh(bigOne, uint(s))
	mask.Sub(mask, bigOne)
	return makeBigOwned(z.And(z, mask)), nil
}

// Logbitp reports whether bit index of n is set.
func Logbitp(index, n Number) (bool, error) {
	if !IsInteger(n) {
		return false, typeError("logbitp", n, "integer")
	}
	i, err := bitIndex("logbitp", index)
	if err != nil {
		if IsInteger(index) && !Minusp(index) {
			// every bit past the end repeats the sign
			return Minusp(n), nil
		}
		return false, err
	}
	switch x := n.(type) {
	case Fixnum:
		if i >= 64 {
			return x < 0, nil
		}
		return x>>uint(i)&1 != 0, nil
	default:
		return x.(*Bignum).x.Bit(int(i)) != 0, nil
	}
}

// Logcount returns the number of one bits in a non-negative integer, or of
// zero bits in a negative integer.
func Logcount(n Number) (Number, error) {
	switch x := n.(type) {
	case Fixnum:
		v := int64(x)
		if v < 0 {
			v = ^v
		}
		return MakeInteger(int64(bits.OnesCount64(uint64(v)))), nil
	case *Bignum:
		v := x.x
		if v.Sign() < 0 {
			v = new(big.Int).Not(v)
		}
		var c int
		for _, w := range v.Bits() {
			c += bits.OnesCount(uint(w))
		}
		return MakeInteger(int64(c)), nil
	default:
		return nil, typeError("logcount", n, "integer")
	}
}

// IntegerLength returns the number of bits needed to represent n in two's
// complement, excluding the sign bit.
func IntegerLength(n Number) (Number, error) {
	switch x := n.(type) {
	case Fixnum:
		v := int64(x)
		if v < 0 {
			v = ^v
		}
		return MakeInteger(int64(bits.Len64(uint64(v)))), nil
	case *Bignum:
		v := x.x
		if v.Sign() < 0 {
			v = new(big.Int).Not(v)
		}
		return MakeInteger(int64(v.BitLen())), nil
	default:
		return nil, typeError("integer-length", n, "integer")
	}
}
