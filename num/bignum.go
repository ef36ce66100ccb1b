package num

import "math/big"

// Integer arithmetic on big.Int operands.  Every result goes back through
// makeBigOwned so small results come back as Fixnums.

func addBig(x, y *big.Int) Number {
	return makeBigOwned(new(big.Int).Add(x, y))
}

func subBig(x, y *big.Int) Number {
	return makeBigOwned(new(big.Int).Sub(x, y))
}

func mulBig(x, y *big.Int) Number {
	return makeBigOwned(new(big.Int).Mul(x, y))
}

func divBig(x, y *big.Int) (Number, error) {
	return MakeRatio(x, y)
}

// truncateBig divides rounding toward zero.  The remainder has the sign of
// x.
func truncateBig(x, y *big.Int) (Number, Number, error) {
	if y.Sign() == 0 {
		return nil, nil, divisionByZero("truncate", MakeBig(x), zero)
	}
	q, r := new(big.Int).QuoRem(x, y, new(big.Int))
	return makeBigOwned(q), makeBigOwned(r), nil
}

// floorModBig returns a remainder with the sign of y.  big.Int.Mod is
// euclidean and is not used here.
func floorModBig(x, y *big.Int) (Number, error) {
	if y.Sign() == 0 {
		return nil, divisionByZero("mod", MakeBig(x), zero)
	}
	r := new(big.Int).Rem(x, y)
	if r.Sign() != 0 && r.Sign() != y.Sign() {
		r.Add(r, y)
	}
	return makeBigOwned(r), nil
}

func negBig(x *big.Int) Number {
	return makeBigOwned(new(big.Int).Neg(x))
}

func absBig(x *big.Int) Number {
	return makeBigOwned(new(big.Int).Abs(x))
}
