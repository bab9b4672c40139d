package domain

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoi(t *testing.T) {
	assert.Equal(t, float64(12), Roi(120, 1000))
	assert.Equal(t, float64(50), Roi(500, 1000))
	assert.Equal(t, float64(-10), Roi(-100, 1000))
	assert.Equal(t, float64(200), Roi(2000, 1000))
}

func TestRoiZeroInvestment(t *testing.T) {
	for _, earnings := range []float64{0, 1, -1, 1e12} {
		got := Roi(earnings, 0)
		assert.Equal(t, float64(0), got)
		assert.False(t, math.IsNaN(got))
		assert.False(t, math.IsInf(got, 0))
	}
}

func TestInitials(t *testing.T) {
	assert.Equal(t, "AT", Initials("alice tan"))
	assert.Equal(t, "JW", Initials("John William Smith"))
	assert.Equal(t, "B", Initials("bob"))
	assert.Equal(t, "", Initials(""))
	assert.Equal(t, "", Initials("   "))
}

func TestFormatCurrency(t *testing.T) {
	assert.Contains(t, FormatCurrency(100000), "100,000")
	assert.Contains(t, FormatCurrency(100000), "$")
}
