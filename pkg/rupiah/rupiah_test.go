package rupiah

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConvert(t *testing.T) {
	t.Parallel()

	t.Run("whole price", func(t *testing.T) {
		assert.Equal(t, int64(150000), Convert(10, 15000))
	})

	t.Run("rounds half up", func(t *testing.T) {
		// 0.0001 * 15000 = 1.5 -> 2
		assert.Equal(t, int64(2), Convert(0.0001, 15000))
	})

	t.Run("fractional price", func(t *testing.T) {
		// 109.95 * 15000 = 1649250
		assert.Equal(t, int64(1649250), Convert(109.95, 15000))
	})

	t.Run("zero price", func(t *testing.T) {
		assert.Equal(t, int64(0), Convert(0, 15000))
	})
}

func TestSumRoundsPerLine(t *testing.T) {
	t.Parallel()

	// each line rounds independently: round(0.00004*15000)=1, twice
	prices := []float64{0.00004, 0.00004}
	assert.Equal(t, int64(2), Sum(prices, 15000))
	// rounding the aggregate would have given round(1.2)=1
}

func TestFormat(t *testing.T) {
	t.Parallel()

	cases := map[int64]string{
		0:         "0",
		999:       "999",
		1000:      "1.000",
		150000:    "150.000",
		600000:    "600.000",
		1649250:   "1.649.250",
		123456789: "123.456.789",
	}
	for amount, want := range cases {
		assert.Equal(t, want, Format(amount))
	}
}

func TestFormatPrice(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Rp 150.000", FormatPrice(10, 15000))
	assert.Equal(t, "Rp 300.000", FormatPrice(20, 15000))
}
