package num

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashEqualConsistent(t *testing.T) {
	negZero := Double(math.Copysign(0, -1))
	groups := [][]Number{
		{Fixnum(1), Single(1), Double(1), mustComplex(t, Double(1), Double(0))},
		{Fixnum(0), Single(0), Double(0), negZero},
		{mustRatio(t, 1, 2), Single(0.5), Double(0.5)},
		{mustRatio(t, 13421773, 134217728), Single(0.1)},
		{mustInteger(t, "1000000000000000019884624838656"), Double(1e30)},
		{SinglePositiveInfinity, DoublePositiveInfinity},
		{mustComplex(t, Fixnum(1), Fixnum(2))},
	}
	for i, g := range groups {
		for _, a := range g {
			for _, b := range g {
				assert.True(t, HashEqual(a, b), "%v %v", a, b)
				assert.Equal(t, Hash(a), Hash(b), "%v %v", a, b)
			}
		}
		for j, h := range groups {
			if i == j {
				continue
			}
			assert.False(t, HashEqual(g[0], h[0]), "%v %v", g[0], h[0])
		}
	}
}

func TestHashEqualGoValues(t *testing.T) {
	assert.True(t, HashEqual(int8(3), MakeInteger(3)))
	assert.True(t, HashEqual(0.5, mustRatio(t, 1, 2)))
	assert.False(t, HashEqual("3", MakeInteger(3)))
	assert.True(t, HashEqual("x", "x"))
	assert.False(t, HashEqual([]int{1}, []int{1}))
	assert.False(t, HashEqual(Single(0.1), Double(0.1)))
}

func TestHashEqualNaN(t *testing.T) {
	nan := Double(math.NaN())
	assert.False(t, NumEqual(nan, nan))
	assert.True(t, HashEqual(nan, nan))
	assert.Equal(t, Hash(nan), Hash(nan))
	assert.False(t, HashEqual(nan, Single(float32(math.NaN()))))
	assert.False(t, HashEqual(nan, Fixnum(0)))
}
