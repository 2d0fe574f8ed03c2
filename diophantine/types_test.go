package diophantine_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lindio/diophantine"
)

func TestEquation_String(t *testing.T) {
	assert.Equal(t, "3x + 5y = 1", diophantine.NewEquation(3, 5, 1).String())
	assert.Equal(t, "3x - 5y = 1", diophantine.NewEquation(3, -5, 1).String())
	assert.Equal(t, "-2x + 0y = -4", diophantine.NewEquation(-2, 0, -4).String())
}

func TestEquation_Satisfies(t *testing.T) {
	eq := diophantine.NewEquation(3, 5, 1)
	assert.True(t, eq.Satisfies(diophantine.Solution{X: 2, Y: -1}))
	assert.False(t, eq.Satisfies(diophantine.Solution{X: 1, Y: 1}))

	// exact even when a·x alone overflows int64
	big := diophantine.NewEquation(math.MaxInt64, -math.MaxInt64, 0)
	assert.True(t, big.Satisfies(diophantine.Solution{X: 5, Y: 5}))
}

func TestFamily_AtOverflow(t *testing.T) {
	fam := diophantine.Family{X: diophantine.Line{Base: 1, Step: math.MaxInt64}, Y: diophantine.Line{Base: 0, Step: 1}}
	_, err := fam.At(2)
	assert.ErrorIs(t, err, diophantine.ErrOverflow)

	s, err := fam.At(0)
	require.NoError(t, err)
	assert.Equal(t, diophantine.Solution{X: 1, Y: 0}, s)
}

func TestFamily_Invert(t *testing.T) {
	fam := diophantine.Family{X: diophantine.Line{Base: 2, Step: 5}, Y: diophantine.Line{Base: -1, Step: -3}}
	inv := fam.Invert()
	for k := int64(-5); k <= 5; k++ {
		a, err := fam.At(k)
		require.NoError(t, err)
		b, err := inv.At(-k)
		require.NoError(t, err)
		assert.Equal(t, a, b)
	}
	assert.Equal(t, "x = +2 -5t, y = -1 +3t", inv.String())
}

func TestSolution_Natural(t *testing.T) {
	assert.True(t, diophantine.Solution{X: 1, Y: 1}.Natural())
	assert.False(t, diophantine.Solution{X: 0, Y: 1}.Natural())
	assert.False(t, diophantine.Solution{X: 3, Y: -1}.Natural())
	assert.Equal(t, "(3, -1)", diophantine.Solution{X: 3, Y: -1}.String())
}
