package num

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExptInteger(t *testing.T) {
	tests := []struct {
		base, power Number
		want        string
		kind        Kind
	}{
		{Fixnum(2), Fixnum(10), "1024", KindFixnum},
		{Fixnum(2), Fixnum(64), "18446744073709551616", KindBignum},
		{Fixnum(-3), Fixnum(3), "-27", KindFixnum},
		{Fixnum(2), Fixnum(-2), "1/4", KindRatio},
		{Fixnum(-2), Fixnum(-3), "-1/8", KindRatio},
		{mustRatio(t, 2, 3), Fixnum(2), "4/9", KindRatio},
		{mustRatio(t, 2, 3), Fixnum(-2), "9/4", KindRatio},
		{Fixnum(7), Fixnum(0), "1", KindFixnum},
		{Fixnum(0), Fixnum(0), "1", KindFixnum},
		{Fixnum(0), Fixnum(5), "0", KindFixnum},
		{Double(2), Fixnum(10), "1024.0d0", KindDouble},
		{Single(2), Fixnum(-1), "0.5", KindSingle},
		{Double(3), Fixnum(0), "1.0d0", KindDouble},
		{mustComplex(t, Fixnum(0), Fixnum(1)), Fixnum(2), "-1", KindFixnum},
		{mustComplex(t, Fixnum(0), Fixnum(1)), Fixnum(-1), "#C(0 -1)", KindComplex},
		{mustComplex(t, Double(1), Double(1)), Fixnum(0), "#C(1.0d0 0.0d0)", KindComplex},
		{Fixnum(-1), mustInteger(t, "100000000000000000001"), "-1", KindFixnum},
		{Fixnum(1), mustInteger(t, "-100000000000000000000"), "1", KindFixnum},
	}
	for _, test := range tests {
		n, err := Expt(test.base, test.power)
		if !assert.NoError(t, err, "expt %v %v", test.base, test.power) {
			continue
		}
		assert.Equal(t, test.want, n.String(), "expt %v %v", test.base, test.power)
		assert.Equal(t, test.kind, n.Kind(), "expt %v %v", test.base, test.power)
	}
}

func TestExptErrors(t *testing.T) {
	_, err := Expt(Fixnum(0), Fixnum(-1))
	assert.ErrorIs(t, err, ErrDivisionByZero)
	_, err = Expt(Fixnum(2), mustInteger(t, "100000000000000000000"))
	assert.ErrorIs(t, err, ErrArithmetic)
	_, err = Expt(Fixnum(2), Fixnum(1<<40))
	assert.ErrorIs(t, err, ErrArithmetic)
	_, err = Expt(Fixnum(0), Double(-1))
	assert.ErrorIs(t, err, ErrDivisionByZero)
}

func TestExptHugeFloatBase(t *testing.T) {
	even := mustInteger(t, "100000000000000000000")
	odd := mustInteger(t, "100000000000000000001")
	negOdd, err := Negate(odd)
	require.NoError(t, err)
	tests := []struct {
		base, power Number
		want        Number
	}{
		{Double(1), even, Double(1)},
		{Single(1), odd, Single(1)},
		{Double(-1), even, Double(1)},
		{Double(-1), odd, Double(-1)},
		{Single(-1), negOdd, Single(-1)},
		{Double(0), odd, Double(0)},
	}
	for _, test := range tests {
		n, err := Expt(test.base, test.power)
		if assert.NoError(t, err, "expt %v %v", test.base, test.power) {
			assert.Equal(t, test.want, n, "expt %v %v", test.base, test.power)
		}
	}
	_, err = Expt(Double(0), negOdd)
	assert.ErrorIs(t, err, ErrDivisionByZero)
	_, err = Expt(Double(2), even)
	assert.ErrorIs(t, err, ErrArithmetic)
}

func TestExptFloat(t *testing.T) {
	n, err := Expt(Fixnum(4), mustRatio(t, 1, 2))
	require.NoError(t, err)
	assert.Equal(t, Single(2), n)

	n, err = Expt(Double(2), Double(0.5))
	require.NoError(t, err)
	assert.Equal(t, Double(math.Sqrt2), n)

	n, err = Expt(Fixnum(0), Double(2))
	require.NoError(t, err)
	assert.Equal(t, Double(0), n)

	n, err = Expt(Fixnum(-1), mustRatio(t, 1, 2))
	require.NoError(t, err)
	require.Equal(t, KindComplex, n.Kind())
	re, err := ToSingle(Realpart(n))
	require.NoError(t, err)
	assert.InDelta(t, 0, float64(re), 1e-7)
	assert.Equal(t, Single(1), Imagpart(n))
}

func TestSqrt(t *testing.T) {
	n, err := Sqrt(Fixnum(4))
	require.NoError(t, err)
	assert.Equal(t, Single(2), n)

	n, err = Sqrt(Double(2))
	require.NoError(t, err)
	assert.Equal(t, Double(math.Sqrt2), n)

	n, err = Sqrt(Fixnum(-4))
	require.NoError(t, err)
	assert.Equal(t, "#C(0.0 2.0)", n.String())

	n, err = Sqrt(mustComplex(t, Double(-4), Double(0)))
	require.NoError(t, err)
	assert.Equal(t, "#C(0.0d0 2.0d0)", n.String())
}

func TestComplexParts(t *testing.T) {
	c := mustComplex(t, mustRatio(t, 1, 2), Fixnum(3))
	assert.Equal(t, "1/2", Realpart(c).String())
	assert.Equal(t, Fixnum(3), Imagpart(c))
	assert.Equal(t, Fixnum(5), Realpart(Fixnum(5)))
	assert.Equal(t, Fixnum(0), Imagpart(Fixnum(5)))
	assert.True(t, math.Signbit(float64(Imagpart(Double(-2)).(Double))))

	conj, err := Conjugate(c)
	require.NoError(t, err)
	assert.Equal(t, "#C(1/2 -3)", conj.String())

	n, err := MakeComplex(Fixnum(3), Fixnum(0))
	require.NoError(t, err)
	assert.Equal(t, Fixnum(3), n)

	n, err = MakeComplex(Fixnum(3), Double(0))
	require.NoError(t, err)
	assert.Equal(t, KindComplex, n.Kind())
	assert.Equal(t, "#C(3.0d0 0.0d0)", n.String())

	n, err = MakeComplex(Single(1), Double(2))
	require.NoError(t, err)
	assert.Equal(t, "#C(1.0d0 2.0d0)", n.String())

	_, err = MakeComplex(c, Fixnum(1))
	assert.ErrorIs(t, err, ErrType)
}
