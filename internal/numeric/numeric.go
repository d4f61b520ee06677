// Package numeric implements lossless decimal/fixed-point conversion for
// token amounts. Every quantity is an arbitrary-width integer in the token's
// smallest unit; nothing here ever touches a binary float.
package numeric

import (
	"math/big"
	"strings"

	"github.com/pkg/errors"

	"github.com/haisapan/ethereum-trading-mcp-server/internal/apperrors"
)

var ten = big.NewInt(10)

// Pow10 returns 10^n as a big.Int.
func Pow10(n uint8) *big.Int {
	return new(big.Int).Exp(ten, big.NewInt(int64(n)), nil)
}

// ParseDecimal converts a human decimal numeral into an integer amount in the
// token's smallest unit. It rejects negative values, malformed numerals, and
// any value with more fractional digits than decimals allows; there is no
// silent truncation.
func ParseDecimal(text string, decimals uint8) (*big.Int, error) {
	s := strings.TrimSpace(text)
	if s == "" {
		return nil, errors.Wrap(apperrors.ErrInvalidAmount, "empty amount")
	}
	if strings.HasPrefix(s, "-") {
		return nil, errors.Wrapf(apperrors.ErrInvalidAmount, "amount %q is negative", text)
	}
	s = strings.TrimPrefix(s, "+")

	intPart, fracPart := s, ""
	if dot := strings.IndexByte(s, '.'); dot >= 0 {
		intPart, fracPart = s[:dot], s[dot+1:]
	}
	if intPart == "" && fracPart == "" {
		return nil, errors.Wrapf(apperrors.ErrInvalidAmount, "amount %q has no digits", text)
	}
	if !isDigits(intPart) || !isDigits(fracPart) {
		return nil, errors.Wrapf(apperrors.ErrInvalidAmount, "amount %q is not a decimal numeral", text)
	}
	if len(fracPart) > int(decimals) {
		return nil, errors.Wrapf(apperrors.ErrInvalidAmount,
			"amount %q has %d fractional digits, token supports %d", text, len(fracPart), decimals)
	}

	// intPart || fracPart || zero padding to exactly `decimals` digits.
	raw := intPart + fracPart + strings.Repeat("0", int(decimals)-len(fracPart))
	out, ok := new(big.Int).SetString(raw, 10)
	if !ok {
		return nil, errors.Wrapf(apperrors.ErrInvalidAmount, "amount %q", text)
	}
	return out, nil
}

// FormatDecimal renders an integer amount as the decimal numeral ParseDecimal
// would accept, trailing fractional zeros stripped. It is the exact inverse
// of ParseDecimal for every value ParseDecimal produces.
func FormatDecimal(amount *big.Int, decimals uint8) string {
	if decimals == 0 {
		return amount.String()
	}
	div := Pow10(decimals)
	quo, rem := new(big.Int).QuoRem(amount, div, new(big.Int))
	if rem.Sign() == 0 {
		return quo.String()
	}
	frac := rem.String()
	frac = strings.Repeat("0", int(decimals)-len(frac)) + frac
	frac = strings.TrimRight(frac, "0")
	return quo.String() + "." + frac
}

// Scale converts an amount between decimal exponents. Scaling up multiplies
// by a power of ten; scaling down divides and fails with Overflow when the
// value cannot be represented exactly at the coarser scale.
func Scale(amount *big.Int, fromDecimals, toDecimals uint8) (*big.Int, error) {
	switch {
	case toDecimals == fromDecimals:
		return new(big.Int).Set(amount), nil
	case toDecimals > fromDecimals:
		return new(big.Int).Mul(amount, Pow10(toDecimals-fromDecimals)), nil
	default:
		quo, rem := new(big.Int).QuoRem(amount, Pow10(fromDecimals-toDecimals), new(big.Int))
		if rem.Sign() != 0 {
			return nil, errors.Wrapf(apperrors.ErrOverflow,
				"scaling %s from %d to %d decimals loses precision", amount, fromDecimals, toDecimals)
		}
		return quo, nil
	}
}

// MulDiv computes floor(a*b/c) with a full-width intermediate product, so the
// result is exact even when a*b exceeds 256 bits. Reserve products routinely
// do for high-decimal tokens.
func MulDiv(a, b, c *big.Int) (*big.Int, error) {
	if c.Sign() == 0 {
		return nil, errors.Wrap(apperrors.ErrOverflow, "division by zero")
	}
	prod := new(big.Int).Mul(a, b)
	return prod.Quo(prod, c), nil
}

// FormatRatio renders num/den as a decimal string with up to places
// fractional digits, trailing zeros stripped. Used for spot-price output,
// where the exact rational is divided once at the display boundary.
func FormatRatio(num, den *big.Int, places uint8) string {
	if den.Sign() == 0 {
		return "0"
	}
	quo, rem := new(big.Int).QuoRem(num, den, new(big.Int))
	if rem.Sign() == 0 {
		return quo.String()
	}
	scaled := new(big.Int).Mul(rem, Pow10(places))
	scaled.Quo(scaled, den)
	frac := scaled.String()
	frac = strings.Repeat("0", int(places)-len(frac)) + frac
	frac = strings.TrimRight(frac, "0")
	if frac == "" {
		return quo.String()
	}
	return quo.String() + "." + frac
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
