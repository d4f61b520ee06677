package uniswapv2

import (
	"bytes"
	"context"
	"math/big"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	lru "github.com/hashicorp/golang-lru"
	"github.com/pkg/errors"

	"github.com/haisapan/ethereum-trading-mcp-server/internal/apperrors"
	"github.com/haisapan/ethereum-trading-mcp-server/internal/infra/eth"
)

const factoryABIJSON = `[
	{"inputs":[{"internalType":"address","name":"","type":"address"},{"internalType":"address","name":"","type":"address"}],"name":"getPair","outputs":[{"internalType":"address","name":"","type":"address"}],"stateMutability":"view","type":"function"}
]`

const pairABIJSON = `[
	{"inputs":[],"name":"getReserves","outputs":[{"internalType":"uint112","name":"_reserve0","type":"uint112"},{"internalType":"uint112","name":"_reserve1","type":"uint112"},{"internalType":"uint32","name":"_blockTimestampLast","type":"uint32"}],"stateMutability":"view","type":"function"}
]`

// PoolReserves is a pool snapshot oriented to a particular trade direction:
// ReserveIn backs the token being sold, ReserveOut the token being bought.
type PoolReserves struct {
	Pair       common.Address
	TokenIn    common.Address
	TokenOut   common.Address
	ReserveIn  *big.Int
	ReserveOut *big.Int
}

// Flip returns the same snapshot oriented to the opposite direction.
func (p PoolReserves) Flip() PoolReserves {
	return PoolReserves{
		Pair:       p.Pair,
		TokenIn:    p.TokenOut,
		TokenOut:   p.TokenIn,
		ReserveIn:  p.ReserveOut,
		ReserveOut: p.ReserveIn,
	}
}

type reserveEntry struct {
	reserves PoolReserves // oriented lower-address token in
	fetched  time.Time
}

// Oracle resolves pool addresses through the factory and reads reserves
// from pair contracts. Snapshots are cached for a short TTL so a single
// quote's repeated lookups hit the chain once.
type Oracle struct {
	gw         eth.Gateway
	factory    common.Address
	factoryABI abi.ABI
	pairABI    abi.ABI
	cache      *lru.Cache
	ttl        time.Duration
	now        func() time.Time
}

// NewOracle builds an oracle over the gateway. cacheSize bounds the number
// of pools held; ttl bounds snapshot staleness.
func NewOracle(gw eth.Gateway, factory common.Address, cacheSize int, ttl time.Duration) (*Oracle, error) {
	factoryABI, err := abi.JSON(strings.NewReader(factoryABIJSON))
	if err != nil {
		return nil, errors.Wrap(err, "abi.JSON factory")
	}
	pairABI, err := abi.JSON(strings.NewReader(pairABIJSON))
	if err != nil {
		return nil, errors.Wrap(err, "abi.JSON pair")
	}
	cache, err := lru.New(cacheSize)
	if err != nil {
		return nil, errors.Wrap(err, "lru.New")
	}
	return &Oracle{
		gw:         gw,
		factory:    factory,
		factoryABI: factoryABI,
		pairABI:    pairABI,
		cache:      cache,
		ttl:        ttl,
		now:        time.Now,
	}, nil
}

// Reserves returns the pool snapshot for the tokenIn -> tokenOut direction.
// ErrPairNotFound when the factory knows no pool for the pair.
func (o *Oracle) Reserves(ctx context.Context, tokenIn, tokenOut common.Address) (PoolReserves, error) {
	lo, hi := sortTokens(tokenIn, tokenOut)
	key := lo.Hex() + ":" + hi.Hex()

	if v, ok := o.cache.Get(key); ok {
		entry := v.(reserveEntry)
		if o.now().Sub(entry.fetched) < o.ttl {
			return orient(entry.reserves, tokenIn), nil
		}
		o.cache.Remove(key)
	}

	pair, err := o.pairAddress(ctx, lo, hi)
	if err != nil {
		return PoolReserves{}, err
	}

	reserve0, reserve1, err := o.pairReserves(ctx, pair)
	if err != nil {
		return PoolReserves{}, err
	}

	// The pair contract reports reserves in token0/token1 order, and V2
	// assigns token0 to the numerically lower address.
	canonical := PoolReserves{
		Pair:       pair,
		TokenIn:    lo,
		TokenOut:   hi,
		ReserveIn:  reserve0,
		ReserveOut: reserve1,
	}
	o.cache.Add(key, reserveEntry{reserves: canonical, fetched: o.now()})

	return orient(canonical, tokenIn), nil
}

func (o *Oracle) pairAddress(ctx context.Context, lo, hi common.Address) (common.Address, error) {
	data, err := o.factoryABI.Pack("getPair", lo, hi)
	if err != nil {
		return common.Address{}, errors.Wrap(err, "factoryABI.Pack")
	}
	ret, err := o.gw.Call(ctx, o.factory, data)
	if err != nil {
		return common.Address{}, errors.Wrap(err, "factory getPair")
	}
	out, err := o.factoryABI.Unpack("getPair", ret)
	if err != nil {
		return common.Address{}, errors.Wrap(err, "factoryABI.Unpack")
	}
	pair, ok := out[0].(common.Address)
	if !ok {
		return common.Address{}, errors.New("getPair did not return an address")
	}
	if pair == (common.Address{}) {
		return common.Address{}, errors.Wrapf(apperrors.ErrPairNotFound,
			"no pool for %s/%s", lo.Hex(), hi.Hex())
	}
	return pair, nil
}

func (o *Oracle) pairReserves(ctx context.Context, pair common.Address) (*big.Int, *big.Int, error) {
	data, err := o.pairABI.Pack("getReserves")
	if err != nil {
		return nil, nil, errors.Wrap(err, "pairABI.Pack")
	}
	ret, err := o.gw.Call(ctx, pair, data)
	if err != nil {
		return nil, nil, errors.Wrap(err, "pair getReserves")
	}
	out, err := o.pairABI.Unpack("getReserves", ret)
	if err != nil {
		return nil, nil, errors.Wrap(err, "pairABI.Unpack")
	}
	reserve0, ok0 := out[0].(*big.Int)
	reserve1, ok1 := out[1].(*big.Int)
	if !ok0 || !ok1 {
		return nil, nil, errors.New("getReserves did not return uint112 pair")
	}
	return new(big.Int).Set(reserve0), new(big.Int).Set(reserve1), nil
}

func orient(canonical PoolReserves, tokenIn common.Address) PoolReserves {
	copied := PoolReserves{
		Pair:       canonical.Pair,
		TokenIn:    canonical.TokenIn,
		TokenOut:   canonical.TokenOut,
		ReserveIn:  new(big.Int).Set(canonical.ReserveIn),
		ReserveOut: new(big.Int).Set(canonical.ReserveOut),
	}
	if tokenIn != canonical.TokenIn {
		return copied.Flip()
	}
	return copied
}

func sortTokens(a, b common.Address) (common.Address, common.Address) {
	if bytes.Compare(a.Bytes(), b.Bytes()) < 0 {
		return a, b
	}
	return b, a
}
