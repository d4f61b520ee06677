package numeric

import (
	"math/big"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	"github.com/haisapan/ethereum-trading-mcp-server/internal/apperrors"
)

func bi(s string) *big.Int {
	z, ok := new(big.Int).SetString(s, 10)
	if !ok {
		panic("bad test literal: " + s)
	}
	return z
}

func TestParseDecimal(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		text     string
		decimals uint8
		want     string
	}{
		{"whole eth", "1", 18, "1000000000000000000"},
		{"fractional eth", "1.5", 18, "1500000000000000000"},
		{"usdc", "1", 6, "1000000"},
		{"wbtc", "1", 8, "100000000"},
		{"zero decimals", "42", 0, "42"},
		{"smallest unit", "0.000000000000000001", 18, "1"},
		{"large", "1000000", 18, "1000000000000000000000000"},
		{"leading dot", ".5", 6, "500000"},
		{"high decimals", "1.5", 20, "150000000000000000000"},
		{"very high decimals", "1", 30, "1000000000000000000000000000000"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := ParseDecimal(tt.text, tt.decimals)
			require.NoError(t, err)
			require.Equal(t, bi(tt.want), got)
		})
	}
}

func TestParseDecimalErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		text     string
		decimals uint8
	}{
		{"negative", "-1", 18},
		{"too many fractional digits", "0.0000000000000000001", 18},
		{"letters", "abc", 18},
		{"mixed", "1x5", 18},
		{"empty", "", 18},
		{"lone dot", ".", 18},
		{"fraction with zero decimals", "1.5", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := ParseDecimal(tt.text, tt.decimals)
			require.Error(t, err)
			require.True(t, errors.Is(err, apperrors.ErrInvalidAmount))
		})
	}
}

func TestFormatDecimal(t *testing.T) {
	t.Parallel()

	require.Equal(t, "1", FormatDecimal(bi("1000000000000000000"), 18))
	require.Equal(t, "1.5", FormatDecimal(bi("1500000000000000000"), 18))
	require.Equal(t, "1", FormatDecimal(bi("1000000"), 6))
	require.Equal(t, "42", FormatDecimal(bi("42"), 0))
	require.Equal(t, "0.000000000000000001", FormatDecimal(bi("1"), 18))
	require.Equal(t, "100", FormatDecimal(bi("100000000000000000000"), 18))
}

func TestParseFormatRoundTrip(t *testing.T) {
	t.Parallel()

	for _, s := range []string{"123.456789", "0.1", "1", "999999.999999", "0.000001"} {
		parsed, err := ParseDecimal(s, 18)
		require.NoError(t, err)
		require.Equal(t, s, FormatDecimal(parsed, 18))
	}
}

func TestScale(t *testing.T) {
	t.Parallel()

	t.Run("up", func(t *testing.T) {
		got, err := Scale(bi("1000000"), 6, 18)
		require.NoError(t, err)
		require.Equal(t, bi("1000000000000000000"), got)
	})

	t.Run("down exact", func(t *testing.T) {
		got, err := Scale(bi("1000000000000000000"), 18, 6)
		require.NoError(t, err)
		require.Equal(t, bi("1000000"), got)
	})

	t.Run("same", func(t *testing.T) {
		got, err := Scale(bi("123"), 8, 8)
		require.NoError(t, err)
		require.Equal(t, bi("123"), got)
	})

	t.Run("down lossy", func(t *testing.T) {
		_, err := Scale(bi("1000000000001"), 18, 6)
		require.Error(t, err)
		require.True(t, errors.Is(err, apperrors.ErrOverflow))
	})
}

func TestMulDiv(t *testing.T) {
	t.Parallel()

	t.Run("basic floor", func(t *testing.T) {
		got, err := MulDiv(bi("10"), bi("10"), bi("3"))
		require.NoError(t, err)
		require.Equal(t, bi("33"), got)
	})

	t.Run("reserve sized operands", func(t *testing.T) {
		// a*b is near 10^60, far past any native register width.
		a := bi("1000000000000000000000000000000") // 10^30
		b := bi("3000000000000000000000000000000") // 3*10^30
		c := bi("7000000000000000000")             // 7*10^18

		got, err := MulDiv(a, b, c)
		require.NoError(t, err)

		want := new(big.Int).Mul(a, b)
		want.Quo(want, c)
		require.Equal(t, want, got)
		require.Equal(t, "428571428571428571428571428571428571428571", got.String())
	})

	t.Run("division by zero", func(t *testing.T) {
		_, err := MulDiv(bi("1"), bi("1"), bi("0"))
		require.Error(t, err)
		require.True(t, errors.Is(err, apperrors.ErrOverflow))
	})
}

func TestFormatRatio(t *testing.T) {
	t.Parallel()

	require.Equal(t, "3.333333", FormatRatio(bi("10"), bi("3"), 6))
	require.Equal(t, "0.5", FormatRatio(bi("1"), bi("2"), 6))
	require.Equal(t, "10", FormatRatio(bi("100"), bi("10"), 6))
	require.Equal(t, "0", FormatRatio(bi("1"), bi("0"), 6))
	// Reserves near the uint112 ceiling.
	require.Equal(t, "2500", FormatRatio(
		bi("5000000000000000000000000000000000"),
		bi("2000000000000000000000000000000"), 6))
}
