package num

import "math/big"

// Exact arithmetic over numerator/denominator pairs.  Integers take part
// as themselves over one.  Denominators are always positive.

func addExact(an, ad, bn, bd *big.Int) Number {
	if ad == bigOne && bd == bigOne {
		return addBig(an, bn)
	}
	n := new(big.Int).Mul(an, bd)
	n.Add(n, new(big.Int).Mul(bn, ad))
	return makeRatioOwned(n, new(big.Int).Mul(ad, bd))
}

func subExact(an, ad, bn, bd *big.Int) Number {
	if ad == bigOne && bd == bigOne {
		return subBig(an, bn)
	}
	n := new(big.Int).Mul(an, bd)
	n.Sub(n, new(big.Int).Mul(bn, ad))
	return makeRatioOwned(n, new(big.Int).Mul(ad, bd))
}

func mulExact(an, ad, bn, bd *big.Int) Number {
	n := new(big.Int).Mul(an, bn)
	if ad == bigOne && bd == bigOne {
		return makeBigOwned(n)
	}
	return makeRatioOwned(n, new(big.Int).Mul(ad, bd))
}

func divExact(an, ad, bn, bd *big.Int) (Number, error) {
	if bn.Sign() == 0 {
		return nil, divisionByZero("/", exactFromParts(an, ad), zero)
	}
	n := new(big.Int).Mul(an, bd)
	d := new(big.Int).Mul(ad, bn)
	return makeRatioOwned(n, d), nil
}

// truncateExact computes the quotient of a/b rounded toward zero by exact
// integer division of the cross products.  The remainder is a - q*b,
// computed exactly.
func truncateExact(an, ad, bn, bd *big.Int) (Number, Number, error) {
	if bn.Sign() == 0 {
		return nil, nil, divisionByZero("truncate", exactFromParts(an, ad), zero)
	}
	n := new(big.Int).Mul(an, bd)
	d := new(big.Int).Mul(ad, bn)
	q := new(big.Int).Quo(n, d)
	// r = a - q*b = (an*bd - q*bn*ad) / (ad*bd)
	rn := new(big.Int).Mul(q, bn)
	rn.Mul(rn, ad)
	rn.Sub(new(big.Int).Mul(an, bd), rn)
	r := makeRatioOwned(rn, new(big.Int).Mul(ad, bd))
	return makeBigOwned(q), r, nil
}

func compareExact(an, ad, bn, bd *big.Int) int {
	if ad == bigOne && bd == bigOne {
		return an.Cmp(bn)
	}
	l := new(big.Int).Mul(an, bd)
	return l.Cmp(new(big.Int).Mul(bn, ad))
}

func exactFromParts(n, d *big.Int) Number {
	if d == bigOne {
		return MakeBig(n)
	}
	return makeRatioOwned(new(big.Int).Set(n), new(big.Int).Set(d))
}

func negRatio(x *Ratio) Number {
	return &Ratio{num: new(big.Int).Neg(x.num), den: x.den}
}

func absRatio(x *Ratio) Number {
	if x.num.Sign() >= 0 {
		return x
	}
	return negRatio(x)
}
