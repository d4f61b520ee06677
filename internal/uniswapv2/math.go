// Package uniswapv2 implements the off-chain side of a Uniswap V2 style
// exchange: reserve lookups, route resolution, constant-product quoting and
// revert-aware swap simulation. Everything is integer math on big.Int.
package uniswapv2

import (
	"math/big"

	"github.com/pkg/errors"

	"github.com/haisapan/ethereum-trading-mcp-server/internal/apperrors"
	"github.com/haisapan/ethereum-trading-mcp-server/internal/numeric"
)

const bpsDenominator = 10_000

// AmountOut computes the constant-product swap output for a single hop:
//
//	out = reserveOut * in * (10000 - feeBps) / (reserveIn * 10000 + in * (10000 - feeBps))
//
// Division floors, matching the pair contract.
func AmountOut(amountIn, reserveIn, reserveOut *big.Int, feeBps uint16) (*big.Int, error) {
	if amountIn == nil || amountIn.Sign() <= 0 {
		return nil, errors.Wrap(apperrors.ErrInvalidAmount, "amount in must be positive")
	}
	if reserveIn.Sign() <= 0 || reserveOut.Sign() <= 0 {
		return nil, errors.Wrap(apperrors.ErrInsufficientLiquidity, "empty reserve")
	}
	if feeBps >= bpsDenominator {
		return nil, errors.Wrap(apperrors.ErrInvalidAmount, "fee consumes entire input")
	}

	keep := big.NewInt(bpsDenominator - int64(feeBps))
	inAfterFee := new(big.Int).Mul(amountIn, keep)

	num := new(big.Int).Mul(inAfterFee, reserveOut)
	den := new(big.Int).Mul(reserveIn, big.NewInt(bpsDenominator))
	den.Add(den, inAfterFee)

	return new(big.Int).Quo(num, den), nil
}

// SpotOut is the output the pre-trade spot rate would imply for the same
// input, with no fee and no slippage. Used as the price-impact baseline.
func SpotOut(amountIn, reserveIn, reserveOut *big.Int) (*big.Int, error) {
	if reserveIn.Sign() <= 0 {
		return nil, errors.Wrap(apperrors.ErrInsufficientLiquidity, "empty reserve")
	}
	return numeric.MulDiv(amountIn, reserveOut, reserveIn)
}

// impactBps returns 1 - actual/spot in basis points, floored at zero. A
// trade can never beat spot, but floor division in AmountOut may make the
// naive difference negative at dust sizes.
func impactBps(actual, spot *big.Int) int64 {
	if spot.Sign() <= 0 {
		return 0
	}
	diff := new(big.Int).Sub(spot, actual)
	if diff.Sign() <= 0 {
		return 0
	}
	bps := new(big.Int).Mul(diff, big.NewInt(bpsDenominator))
	bps.Quo(bps, spot)
	if !bps.IsInt64() {
		return bpsDenominator
	}
	return bps.Int64()
}
