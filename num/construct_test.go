package num

import (
	"math"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bigFromString(t *testing.T, s string) *big.Int {
	t.Helper()
	x, ok := new(big.Int).SetString(s, 10)
	require.True(t, ok, "bad integer literal %q", s)
	return x
}

func TestMakeIntegerInterned(t *testing.T) {
	for i := int64(0); i < 256; i++ {
		assert.Equal(t, smallFixnums[i], MakeInteger(i))
	}
	assert.Equal(t, Fixnum(256), MakeInteger(256))
	assert.Equal(t, Fixnum(-1), MakeInteger(-1))
	assert.Equal(t, KindFixnum, Zero().Kind())
	assert.Equal(t, Fixnum(1), One())
}

func TestMakeBigDemotes(t *testing.T) {
	n := MakeBig(big.NewInt(42))
	assert.Equal(t, Fixnum(42), n)

	n = MakeBig(big.NewInt(math.MinInt64))
	assert.Equal(t, Fixnum(math.MinInt64), n)

	x := new(big.Int).Add(bigMaxFixnum, bigOne)
	n = MakeBig(x)
	require.Equal(t, KindBignum, n.Kind())
	assert.Equal(t, "9223372036854775808", n.String())

	// MakeBig does not retain its argument
	x.SetInt64(0)
	assert.Equal(t, "9223372036854775808", n.String())
}

func TestFromUint(t *testing.T) {
	assert.Equal(t, Fixnum(7), FromUint(uint8(7)))
	assert.Equal(t, Fixnum(math.MaxInt64), FromUint(uint64(math.MaxInt64)))
	n := FromUint(uint64(math.MaxUint64))
	assert.Equal(t, KindBignum, n.Kind())
	assert.Equal(t, "18446744073709551615", n.String())
	assert.Equal(t, Fixnum(-3), FromInt(int16(-3)))
}

func TestMakeRational(t *testing.T) {
	tests := []struct {
		num, den int64
		want     string
		kind     Kind
	}{
		{1, 3, "1/3", KindRatio},
		{2, 4, "1/2", KindRatio},
		{-2, 4, "-1/2", KindRatio},
		{2, -4, "-1/2", KindRatio},
		{-2, -4, "1/2", KindRatio},
		{6, 3, "2", KindFixnum},
		{0, 5, "0", KindFixnum},
		{0, -5, "0", KindFixnum},
		{math.MinInt64, -1, "9223372036854775808", KindBignum},
		{1, math.MinInt64, "-1/9223372036854775808", KindRatio},
		{math.MinInt64, 2, "-4611686018427387904", KindFixnum},
	}
	for _, test := range tests {
		n, err := MakeRational(MakeInteger(test.num), MakeInteger(test.den))
		if assert.NoError(t, err, "%d/%d", test.num, test.den) {
			assert.Equal(t, test.want, n.String(), "%d/%d", test.num, test.den)
			assert.Equal(t, test.kind, n.Kind(), "%d/%d", test.num, test.den)
		}
	}
}

func TestMakeRationalErrors(t *testing.T) {
	_, err := MakeRational(MakeInteger(1), MakeInteger(0))
	assert.ErrorIs(t, err, ErrDivisionByZero)

	_, err = MakeRatio(big.NewInt(1), new(big.Int))
	assert.ErrorIs(t, err, ErrDivisionByZero)

	_, err = MakeRational(Double(1), MakeInteger(2))
	if assert.ErrorIs(t, err, ErrType) {
		var e *Error
		require.ErrorAs(t, err, &e)
		assert.Equal(t, "integer", e.Expected)
	}
}

func TestMakeRatioBig(t *testing.T) {
	n := bigFromString(t, "100000000000000000000")
	d := bigFromString(t, "300000000000000000000")
	r, err := MakeRatio(n, d)
	require.NoError(t, err)
	assert.Equal(t, "1/3", r.String())

	r, err = MakeRatio(d, n)
	require.NoError(t, err)
	assert.Equal(t, "3", r.String())
	assert.Equal(t, KindFixnum, r.Kind())
}

func TestCoerce(t *testing.T) {
	n, err := Coerce(3)
	require.NoError(t, err)
	assert.Equal(t, Fixnum(3), n)

	n, err = Coerce(float32(1.5))
	require.NoError(t, err)
	assert.Equal(t, Single(1.5), n)

	n, err = Coerce(big.NewRat(6, 4))
	require.NoError(t, err)
	assert.Equal(t, "3/2", n.String())

	n, err = Coerce(complex(1, 0))
	require.NoError(t, err)
	assert.Equal(t, KindComplex, n.Kind())

	_, err = Coerce("12")
	assert.ErrorIs(t, err, ErrType)
	_, err = Coerce((*big.Int)(nil))
	assert.ErrorIs(t, err, ErrType)
}

func TestErrorConditions(t *testing.T) {
	_, err := Divide(MakeInteger(1), MakeInteger(0))
	require.Error(t, err)
	c, ok := GetCondition(err)
	assert.True(t, ok)
	assert.Equal(t, DivisionByZero, c)
	assert.Equal(t, "/: division by zero", err.Error())
	assert.NotErrorIs(t, err, ErrType)
	assert.Equal(t, "division-by-zero", c.String())
}
