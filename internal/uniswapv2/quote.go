package uniswapv2

import (
	"math/big"

	"github.com/pkg/errors"

	"github.com/haisapan/ethereum-trading-mcp-server/internal/apperrors"
)

// Quote is an immutable swap estimate: expected output, the slippage floor
// and the price impact of taking the route with the given input.
type Quote struct {
	Route        Route
	AmountIn     *big.Int
	AmountOut    *big.Int
	MinAmountOut *big.Int
	// ImpactBps is 1 - actualOutput/spotOutput in basis points, where the
	// spot output uses reserves before the trade.
	ImpactBps int64
	// Forced marks a quote computed past the liquidity safety check.
	Forced bool
}

// Quoter prices swaps along resolved routes with a fixed pool fee.
type Quoter struct {
	feeBps uint16
}

// NewQuoter builds a quoter. feeBps is the per-hop pool fee, 30 for
// canonical V2 deployments.
func NewQuoter(feeBps uint16) *Quoter {
	return &Quoter{feeBps: feeBps}
}

// Quote prices amountIn along the route. Fails with ErrInsufficientLiquidity
// when any hop would consume more than half its input reserve, a size at
// which constant-product output is no longer a meaningful estimate.
func (q *Quoter) Quote(route Route, amountIn *big.Int, slippageBps uint16) (Quote, error) {
	return q.quote(route, amountIn, slippageBps, false)
}

// QuoteForced prices the route without the liquidity safety check, for
// diagnostic use. The returned quote is marked Forced.
func (q *Quoter) QuoteForced(route Route, amountIn *big.Int, slippageBps uint16) (Quote, error) {
	return q.quote(route, amountIn, slippageBps, true)
}

func (q *Quoter) quote(route Route, amountIn *big.Int, slippageBps uint16, forced bool) (Quote, error) {
	if amountIn == nil || amountIn.Sign() <= 0 {
		return Quote{}, errors.Wrap(apperrors.ErrInvalidAmount, "amount in must be positive")
	}
	if slippageBps >= bpsDenominator {
		return Quote{}, errors.Wrapf(apperrors.ErrInvalidSlippage, "%d bps", slippageBps)
	}
	if route.Hops() == 0 {
		return Quote{}, errors.Wrap(apperrors.ErrNoRouteFound, "empty route")
	}

	actual := new(big.Int).Set(amountIn)
	spot := new(big.Int).Set(amountIn)
	for _, pool := range route.Pools {
		if !forced && exceedsLiquidity(actual, pool.ReserveIn) {
			return Quote{}, errors.Wrapf(apperrors.ErrInsufficientLiquidity,
				"input exceeds half the %s reserve of pool %s",
				pool.TokenIn.Hex(), pool.Pair.Hex())
		}

		out, err := AmountOut(actual, pool.ReserveIn, pool.ReserveOut, q.feeBps)
		if err != nil {
			return Quote{}, err
		}
		actual = out

		spotOut, err := SpotOut(spot, pool.ReserveIn, pool.ReserveOut)
		if err != nil {
			return Quote{}, err
		}
		spot = spotOut
	}

	minOut := new(big.Int).Mul(actual, big.NewInt(bpsDenominator-int64(slippageBps)))
	minOut.Quo(minOut, big.NewInt(bpsDenominator))

	return Quote{
		Route:        route,
		AmountIn:     new(big.Int).Set(amountIn),
		AmountOut:    actual,
		MinAmountOut: minOut,
		ImpactBps:    impactBps(actual, spot),
		Forced:       forced,
	}, nil
}

// exceedsLiquidity reports whether in > reserveIn/2.
func exceedsLiquidity(in, reserveIn *big.Int) bool {
	doubled := new(big.Int).Lsh(in, 1)
	return doubled.Cmp(reserveIn) > 0
}
