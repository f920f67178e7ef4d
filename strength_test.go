package cassowary

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStrengthConstants(t *testing.T) {
	require.EqualValues(t, 1001001000, Required)
	require.EqualValues(t, 1000000, Strong)
	require.EqualValues(t, 1000, Medium)
	require.EqualValues(t, 1, Weak)
}

func TestClipStrength(t *testing.T) {
	require.Equal(t, Strength(0), ClipStrength(-1))
	require.Equal(t, Required, ClipStrength(Required+1))
	require.Equal(t, Strength(500), ClipStrength(500))
}

func TestNewStrengthOrdering(t *testing.T) {
	// Nonzero in a stronger band dominates the largest in-band (< 1000)
	// amounts in the weaker ones.
	strong := NewStrength(1, 0, 0, 1)
	mediumMax := NewStrength(0, 999, 999, 1)
	require.Greater(t, float64(strong), float64(mediumMax))
}

func TestNewStrengthWeight(t *testing.T) {
	base := NewStrength(0, 1, 0, 1)
	doubled := NewStrength(0, 1, 0, 2)
	require.InDelta(t, float64(base)*2, float64(doubled), 1e-9)
}
