package uniswapv2

import (
	"context"

	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"

	"github.com/haisapan/ethereum-trading-mcp-server/internal/apperrors"
)

// Route is a resolved trading path. Path lists the token addresses in trade
// order; Pools carries one oriented reserve snapshot per hop.
type Route struct {
	Path  []common.Address
	Pools []PoolReserves
}

// Hops returns the number of swaps the route performs.
func (r Route) Hops() int { return len(r.Pools) }

// PoolAddresses lists the pair contract of every hop, in order.
func (r Route) PoolAddresses() []common.Address {
	addrs := make([]common.Address, len(r.Pools))
	for i, p := range r.Pools {
		addrs[i] = p.Pair
	}
	return addrs
}

// Resolver finds a route between two tokens: the direct pool when one
// exists, otherwise a two-hop path through the wrapped native asset.
type Resolver struct {
	oracle *Oracle
	weth   common.Address
}

// NewResolver builds a resolver bridging through weth.
func NewResolver(oracle *Oracle, weth common.Address) *Resolver {
	return &Resolver{oracle: oracle, weth: weth}
}

// Resolve returns the preferred route for tokenIn -> tokenOut. A direct
// pool always wins over a bridged path. When either endpoint is the bridge
// asset itself the bridged path degenerates to the direct one, so a missing
// direct pool is terminal: ErrNoRouteFound.
func (r *Resolver) Resolve(ctx context.Context, tokenIn, tokenOut common.Address) (Route, error) {
	if tokenIn == tokenOut {
		return Route{}, errors.Wrap(apperrors.ErrNoRouteFound, "identical tokens")
	}

	direct, err := r.oracle.Reserves(ctx, tokenIn, tokenOut)
	if err == nil {
		return Route{
			Path:  []common.Address{tokenIn, tokenOut},
			Pools: []PoolReserves{direct},
		}, nil
	}
	if !errors.Is(err, apperrors.ErrPairNotFound) {
		return Route{}, err
	}

	if tokenIn == r.weth || tokenOut == r.weth {
		return Route{}, errors.Wrap(apperrors.ErrNoRouteFound, "no direct pool with bridge asset")
	}

	first, err := r.oracle.Reserves(ctx, tokenIn, r.weth)
	if err != nil {
		if errors.Is(err, apperrors.ErrPairNotFound) {
			return Route{}, errors.Wrap(apperrors.ErrNoRouteFound, "no pool on the input leg")
		}
		return Route{}, err
	}
	second, err := r.oracle.Reserves(ctx, r.weth, tokenOut)
	if err != nil {
		if errors.Is(err, apperrors.ErrPairNotFound) {
			return Route{}, errors.Wrap(apperrors.ErrNoRouteFound, "no pool on the output leg")
		}
		return Route{}, err
	}

	return Route{
		Path:  []common.Address{tokenIn, r.weth, tokenOut},
		Pools: []PoolReserves{first, second},
	}, nil
}
