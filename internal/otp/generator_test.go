package otp

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGenerator_Fixed(t *testing.T) {
	gen := NewGenerator("123456")

	code, err := gen.Generate()

	require.NoError(t, err)
	assert.Equal(t, "123456", code)
}

func TestNewGenerator_RandomSixDigits(t *testing.T) {
	gen := NewGenerator("")
	sixDigits := regexp.MustCompile(`^\d{6}$`)

	seen := map[string]struct{}{}
	for i := 0; i < 50; i++ {
		code, err := gen.Generate()
		require.NoError(t, err)
		assert.Regexp(t, sixDigits, code)
		seen[code] = struct{}{}
	}
	assert.Greater(t, len(seen), 1)
}

func TestRandomGenerator_DefaultsToSixDigits(t *testing.T) {
	code, err := RandomGenerator{}.Generate()

	require.NoError(t, err)
	assert.Len(t, code, 6)
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, "123456", Normalize(" 12 34\t56\n"))
	assert.Equal(t, "", Normalize("   "))
}
