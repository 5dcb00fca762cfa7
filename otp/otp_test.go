package otp

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate_SixDigitsNoLeadingZero(t *testing.T) {
	gen := NewGenerator()
	for i := 0; i < 200; i++ {
		code := gen.Generate()
		require.Len(t, code, 6)
		n, err := strconv.Atoi(code)
		require.NoError(t, err)
		require.GreaterOrEqual(t, n, 100000)
		require.LessOrEqual(t, n, 999999)
	}
}

func TestGenerate_BoundaryDraws(t *testing.T) {
	low := NewGeneratorWithSource(func(n int) int { return 0 })
	assert.Equal(t, "100000", low.Generate())

	high := NewGeneratorWithSource(func(n int) int { return n - 1 })
	assert.Equal(t, "999999", high.Generate())
}

func TestVerify_RoundTrip(t *testing.T) {
	gen := NewGenerator()
	code := gen.Generate()

	assert.True(t, Verify(code, code))

	// any single-character mutation fails
	for i := 0; i < len(code); i++ {
		mutated := []byte(code)
		if mutated[i] == '9' {
			mutated[i] = '0'
		} else {
			mutated[i]++
		}
		assert.False(t, Verify(string(mutated), code))
	}
}

func TestVerify_NoNormalization(t *testing.T) {
	assert.False(t, Verify(" 123456", "123456"))
	assert.False(t, Verify("123456 ", "123456"))
	assert.False(t, Verify("12345", "123456"))
	assert.False(t, Verify("", ""))
}
