package num

import (
	"math"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDoubleRoundTrip(t *testing.T) {
	xs := []float64{
		0, 1, -1, 0.1, -1.0 / 3, 1e30, -1e-30, 123456789.125,
		math.MaxFloat64, -math.MaxFloat64,
		math.SmallestNonzeroFloat64, 3 * math.SmallestNonzeroFloat64,
		3e-310, 2.2250738585072014e-308, 2.225073858507201e-308,
		math.Nextafter(1, 2), math.Nextafter(1, 0),
		1 << 53, 1<<53 + 2, 1 << 63, 1 << 64,
	}
	for _, x := range xs {
		r, err := Rational(Double(x))
		if !assert.NoError(t, err, "%v", x) {
			continue
		}
		assert.True(t, IsRational(r))
		f, err := FloatFromRational(r, KindDouble)
		if assert.NoError(t, err, "%v", x) {
			assert.Equal(t, math.Float64bits(x), math.Float64bits(float64(f.(Double))), "%v via %v", x, r)
		}
	}
}

func TestSingleRoundTrip(t *testing.T) {
	xs := []float32{
		0, 1, -1, 0.1, 1e30, -1e-30,
		math.MaxFloat32, math.SmallestNonzeroFloat32,
		5 * math.SmallestNonzeroFloat32, 1.1754942e-38,
		math.Nextafter32(1, 2), 1 << 24, 1<<24 + 2,
	}
	for _, x := range xs {
		r, err := Rational(Single(x))
		if !assert.NoError(t, err, "%v", x) {
			continue
		}
		f, err := FloatFromRational(r, KindSingle)
		if assert.NoError(t, err, "%v", x) {
			assert.Equal(t, math.Float32bits(x), math.Float32bits(float32(f.(Single))), "%v via %v", x, r)
		}
	}
}

func TestRationalValues(t *testing.T) {
	r, err := Rational(Double(0.5))
	require.NoError(t, err)
	assert.Equal(t, "1/2", r.String())

	r, err = Rational(Single(0.1))
	require.NoError(t, err)
	assert.Equal(t, "13421773/134217728", r.String())

	r, err = Rational(Double(1e30))
	require.NoError(t, err)
	assert.Equal(t, "1000000000000000019884624838656", r.String())

	r, err = Rational(Double(math.Copysign(0, -1)))
	require.NoError(t, err)
	assert.Equal(t, Fixnum(0), r)

	_, err = Rational(DoublePositiveInfinity)
	assert.ErrorIs(t, err, ErrType)
	_, err = Rational(Single(float32(math.NaN())))
	assert.ErrorIs(t, err, ErrType)
}

func TestRatioToFloat(t *testing.T) {
	// numerator and denominator both overflow a double; their quotient
	// does not
	ten400 := new(big.Int).Exp(big.NewInt(10), big.NewInt(400), nil)
	num := new(big.Int).Add(ten400, big.NewInt(7))
	den := new(big.Int).Div(ten400, big.NewInt(10))
	den.Mul(den, big.NewInt(3))
	r, err := MakeRatio(num, den)
	require.NoError(t, err)
	d, err := ToDouble(r)
	require.NoError(t, err)
	assert.Equal(t, Double(10.0/3.0), d)
	s, err := ToSingle(r)
	require.NoError(t, err)
	assert.Equal(t, Single(float32(10.0)/3), s)

	// subnormal results round half to even
	tiny := func(n int64, shift uint) Number {
		r, err := MakeRatio(big.NewInt(n), new(big.Int).Lsh(bigOne, shift))
		require.NoError(t, err)
		return r
	}
	d, err = ToDouble(tiny(1, 1074))
	require.NoError(t, err)
	assert.Equal(t, Double(math.SmallestNonzeroFloat64), d)
	d, err = ToDouble(tiny(1, 1075))
	require.NoError(t, err)
	assert.Equal(t, Double(0), d)
	d, err = ToDouble(tiny(3, 1076))
	require.NoError(t, err)
	assert.Equal(t, Double(math.SmallestNonzeroFloat64), d)
	d, err = ToDouble(tiny(-3, 1075))
	require.NoError(t, err)
	assert.Equal(t, Double(-2*math.SmallestNonzeroFloat64), d)
	d, err = ToDouble(tiny(1, 5000))
	require.NoError(t, err)
	assert.Equal(t, Double(0), d)
}

func TestBignumToFloatOverflow(t *testing.T) {
	huge := MakeBig(new(big.Int).Lsh(bigOne, 2000))
	_, err := ToDouble(huge)
	if assert.ErrorIs(t, err, ErrType) {
		assert.Contains(t, err.Error(), "too large to convert")
	}
	_, err = Add(huge, Double(1))
	assert.ErrorIs(t, err, ErrType)

	_, err = ToSingle(MakeBig(new(big.Int).Lsh(bigOne, 200)))
	assert.ErrorIs(t, err, ErrType)

	d, err := ToDouble(MakeBig(new(big.Int).Lsh(bigOne, 1023)))
	require.NoError(t, err)
	assert.Equal(t, Double(math.Ldexp(1, 1023)), d)

	_, err = ToDouble(MakeBig(new(big.Int).Lsh(bigOne, 1024)))
	assert.ErrorIs(t, err, ErrType)
}

func TestToSingle(t *testing.T) {
	s, err := ToSingle(Double(math.MaxFloat32))
	require.NoError(t, err)
	assert.Equal(t, Single(math.MaxFloat32), s)

	// less than half an ulp above the largest single rounds down to it
	s, err = ToSingle(Double(math.MaxFloat32 + math.Ldexp(1, 102)))
	require.NoError(t, err)
	assert.Equal(t, Single(math.MaxFloat32), s)

	_, err = ToSingle(Double(1e39))
	assert.ErrorIs(t, err, ErrType)

	s, err = ToSingle(DoubleNegativeInfinity)
	require.NoError(t, err)
	assert.Equal(t, SingleNegativeInfinity, s)

	_, err = ToSingle(mustComplex(t, Fixnum(1), Fixnum(1)))
	assert.ErrorIs(t, err, ErrType)
}

func TestFloat(t *testing.T) {
	f, err := Float(Fixnum(1), nil)
	require.NoError(t, err)
	assert.Equal(t, Single(1), f)

	f, err = Float(mustRatio(t, 1, 3), Double(0))
	require.NoError(t, err)
	assert.Equal(t, Double(1.0/3.0), f)

	f, err = Float(Single(1.5), Double(0))
	require.NoError(t, err)
	assert.Equal(t, Double(1.5), f)

	f, err = Float(Double(2.5), nil)
	require.NoError(t, err)
	assert.Equal(t, Double(2.5), f)

	_, err = Float(Fixnum(1), Fixnum(1))
	assert.ErrorIs(t, err, ErrType)
}

func TestFloatBits(t *testing.T) {
	b, err := FloatBits(Single(1))
	require.NoError(t, err)
	assert.Equal(t, Fixnum(0x3f800000), b)

	b, err = FloatBits(Double(math.Copysign(0, -1)))
	require.NoError(t, err)
	assert.Equal(t, "9223372036854775808", b.String())

	f, err := FloatFromBits(b, 64)
	require.NoError(t, err)
	assert.True(t, math.Signbit(float64(f.(Double))))
	assert.True(t, Zerop(f))

	f, err = FloatFromBits(Fixnum(0x7f800000), 32)
	require.NoError(t, err)
	assert.Equal(t, SinglePositiveInfinity, f)

	f, err = FloatFromBits(Fixnum(0x7ff8000000000001), 64)
	require.NoError(t, err)
	assert.True(t, IsNaN(f))
	b, err = FloatBits(f)
	require.NoError(t, err)
	assert.Equal(t, Fixnum(0x7ff8000000000001), b)

	_, err = FloatFromBits(Fixnum(1<<32), 32)
	assert.ErrorIs(t, err, ErrType)
	_, err = FloatFromBits(Fixnum(-1), 64)
	assert.ErrorIs(t, err, ErrType)
	_, err = FloatFromBits(Fixnum(1), 16)
	assert.ErrorIs(t, err, ErrType)
	_, err = FloatBits(Fixnum(1))
	assert.ErrorIs(t, err, ErrType)
}

func TestIntegerDecodeFloat(t *testing.T) {
	m, e, s, err := IntegerDecodeFloat(Double(1))
	require.NoError(t, err)
	assert.Equal(t, Fixnum(1<<52), m)
	assert.Equal(t, Fixnum(-52), e)
	assert.Equal(t, Fixnum(1), s)

	m, e, s, err = IntegerDecodeFloat(Single(-0.5))
	require.NoError(t, err)
	assert.Equal(t, Fixnum(1<<23), m)
	assert.Equal(t, Fixnum(-24), e)
	assert.Equal(t, Fixnum(-1), s)

	m, e, _, err = IntegerDecodeFloat(Double(math.SmallestNonzeroFloat64))
	require.NoError(t, err)
	assert.Equal(t, Fixnum(1), m)
	assert.Equal(t, Fixnum(-1074), e)

	_, _, _, err = IntegerDecodeFloat(SinglePositiveInfinity)
	assert.ErrorIs(t, err, ErrType)
	_, _, _, err = IntegerDecodeFloat(Fixnum(1))
	assert.ErrorIs(t, err, ErrType)
}

func TestNaNInfinityPredicates(t *testing.T) {
	assert.True(t, IsNaN(Double(math.NaN())))
	assert.False(t, IsNaN(DoublePositiveInfinity))
	assert.True(t, IsInfinite(SingleNegativeInfinity))
	assert.True(t, IsInfinite(mustComplex(t, Double(1), DoublePositiveInfinity)))
	assert.False(t, IsInfinite(Fixnum(1)))
}
