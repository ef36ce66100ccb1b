package num

import (
	"math"
	"math/big"
	"math/bits"
)

// Fixnum arithmetic never overflows.  A result outside of int64 range is
// carried exactly by a Bignum.

func addFixnum(x, y int64) Number {
	s := x + y
	if (x^s)&(y^s) < 0 {
		z := big.NewInt(x)
		return makeBigOwned(z.Add(z, big.NewInt(y)))
	}
	return MakeInteger(s)
}

func subFixnum(x, y int64) Number {
	d := x - y
	if (x^y)&(x^d) < 0 {
		z := big.NewInt(x)
		return makeBigOwned(z.Sub(z, big.NewInt(y)))
	}
	return MakeInteger(d)
}

// mulFixnum computes the full 128-bit product of the magnitudes and
// demotes it when it fits.
func mulFixnum(x, y int64) Number {
	neg := (x < 0) != (y < 0)
	hi, lo := bits.Mul64(uabs64(x), uabs64(y))
	if hi == 0 {
		if !neg && lo <= math.MaxInt64 {
			return MakeInteger(int64(lo))
		}
		if neg && lo <= 1<<63 {
			return MakeInteger(int64(-lo))
		}
	}
	z := new(big.Int).SetUint64(hi)
	z.Lsh(z, 64)
	z.Or(z, new(big.Int).SetUint64(lo))
	if neg {
		z.Neg(z)
	}
	return makeBigOwned(z)
}

// uabs64 returns |x| without overflowing for math.MinInt64.
func uabs64(x int64) uint64 {
	if x < 0 {
		return uint64(-(x + 1)) + 1
	}
	return uint64(x)
}

func negFixnum(x int64) Number {
	if x == math.MinInt64 {
		return makeBigOwned(new(big.Int).Neg(bigMinFixnum))
	}
	return MakeInteger(-x)
}

func divFixnum(x, y int64) (Number, error) {
	if y == 0 {
		return nil, divisionByZero("/", MakeInteger(x), zero)
	}
	if y == -1 {
		return negFixnum(x), nil
	}
	if x%y == 0 {
		return MakeInteger(x / y), nil
	}
	return makeRatioFixnum(x, y)
}

// truncateFixnum returns the quotient rounded toward zero and a remainder
// with the sign of x.
func truncateFixnum(x, y int64) (Number, Number, error) {
	if y == 0 {
		return nil, nil, divisionByZero("truncate", MakeInteger(x), zero)
	}
	if y == -1 {
		return negFixnum(x), zero, nil
	}
	return MakeInteger(x / y), MakeInteger(x % y), nil
}

// floorModFixnum returns a remainder with the sign of y.
func floorModFixnum(x, y int64) (Number, error) {
	if y == 0 {
		return nil, divisionByZero("mod", MakeInteger(x), zero)
	}
	r := x % y
	if r != 0 && (r < 0) != (y < 0) {
		r += y
	}
	return MakeInteger(r), nil
}

func compareFixnum(x, y int64) int {
	switch {
	case x < y:
		return -1
	case x > y:
		return 1
	default:
		return 0
	}
}
