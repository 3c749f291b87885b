package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParsePrice(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in    string
		cents int64
	}{
		{"5.25", 525},
		{"5.2", 520},
		{"5", 500},
		{"0", 0},
		{"0.99", 99},
		{"999.99", 99999},
		{" 12.50 ", 1250},
	}
	for _, tc := range cases {
		p, err := ParsePrice(tc.in)
		require.NoError(t, err, tc.in)
		require.Equal(t, tc.cents, p.Cents(), tc.in)
	}
}

func TestParsePriceRejects(t *testing.T) {
	t.Parallel()

	_, err := ParsePrice("-1.00")
	require.ErrorIs(t, err, ErrPriceNegative)

	_, err = ParsePrice("1000.00")
	require.ErrorIs(t, err, ErrPriceTooLarge)

	// Whole parts big enough to overflow the cent multiplication must still
	// land on the too-large error, never wrap negative.
	for _, in := range []string{"9223372036854775807", "92233720368547758.07", "184467440737095516.15"} {
		p, err := ParsePrice(in)
		require.ErrorIs(t, err, ErrPriceTooLarge, in)
		require.GreaterOrEqual(t, p.Cents(), int64(0), in)
	}

	for _, in := range []string{"", ".", "5.", ".5", "5.255", "abc", "1.2.3", "1,50"} {
		_, err := ParsePrice(in)
		require.ErrorIs(t, err, ErrPriceFormat, in)
	}
}

func TestPriceString(t *testing.T) {
	t.Parallel()

	require.Equal(t, "5.25", Price(525).String())
	require.Equal(t, "5.05", Price(505).String())
	require.Equal(t, "0.00", Price(0).String())
	require.Equal(t, "999.99", Price(99999).String())
}
