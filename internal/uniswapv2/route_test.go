package uniswapv2

import (
	"context"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/haisapan/ethereum-trading-mcp-server/internal/apperrors"
	"github.com/haisapan/ethereum-trading-mcp-server/internal/infra/eth/mock"
)

func newTestResolver(t *testing.T, fixture *chainFixture) *Resolver {
	t.Helper()

	ctrl := gomock.NewController(t)
	gw := mock.NewMockGateway(ctrl)
	fixture.install(t, gw)

	oracle, err := NewOracle(gw, factoryAddr, 16, 3*time.Second)
	require.NoError(t, err)
	return NewResolver(oracle, wethTT)
}

func TestResolver_Resolve(t *testing.T) {
	t.Parallel()

	t.Run("direct pool preferred", func(t *testing.T) {
		t.Parallel()

		r := newTestResolver(t, &chainFixture{
			pairs: map[[2]common.Address]common.Address{
				{tokenA, tokenB}: pairAB,
				{tokenA, wethTT}: pairAW,
				{tokenB, wethTT}: pairWB,
			},
			reserves: map[common.Address][2]int64{
				pairAB: {100, 200},
				pairAW: {10_000, 5000},
				pairWB: {20_000, 5000},
			},
		})

		route, err := r.Resolve(context.Background(), tokenA, tokenB)
		require.NoError(t, err)
		require.Equal(t, []common.Address{tokenA, tokenB}, route.Path)
		require.Equal(t, []common.Address{pairAB}, route.PoolAddresses())
	})

	t.Run("bridges through wrapped native asset", func(t *testing.T) {
		t.Parallel()

		r := newTestResolver(t, &chainFixture{
			pairs: map[[2]common.Address]common.Address{
				{tokenA, wethTT}: pairAW,
				{tokenB, wethTT}: pairWB,
			},
			reserves: map[common.Address][2]int64{
				pairAW: {10_000, 5000},
				pairWB: {20_000, 5000},
			},
		})

		route, err := r.Resolve(context.Background(), tokenA, tokenB)
		require.NoError(t, err)
		require.Equal(t, []common.Address{tokenA, wethTT, tokenB}, route.Path)
		require.Equal(t, []common.Address{pairAW, pairWB}, route.PoolAddresses())
		require.Equal(t, 2, route.Hops())

		// The first hop sells tokenA into the A/WETH pool; tokenA sorts
		// below WETH, so its reserve is reserve0.
		require.Equal(t, int64(10_000), route.Pools[0].ReserveIn.Int64())
		require.Equal(t, int64(5000), route.Pools[0].ReserveOut.Int64())
		// The second hop sells WETH into the B/WETH pool, where WETH is
		// the higher address.
		require.Equal(t, int64(5000), route.Pools[1].ReserveIn.Int64())
		require.Equal(t, int64(20_000), route.Pools[1].ReserveOut.Int64())
	})

	t.Run("no pools at all", func(t *testing.T) {
		t.Parallel()

		r := newTestResolver(t, &chainFixture{
			pairs:    map[[2]common.Address]common.Address{},
			reserves: map[common.Address][2]int64{},
		})

		_, err := r.Resolve(context.Background(), tokenA, tokenB)
		require.ErrorIs(t, err, apperrors.ErrNoRouteFound)
	})

	t.Run("missing output leg", func(t *testing.T) {
		t.Parallel()

		r := newTestResolver(t, &chainFixture{
			pairs: map[[2]common.Address]common.Address{
				{tokenA, wethTT}: pairAW,
			},
			reserves: map[common.Address][2]int64{
				pairAW: {10_000, 5000},
			},
		})

		_, err := r.Resolve(context.Background(), tokenA, tokenB)
		require.ErrorIs(t, err, apperrors.ErrNoRouteFound)
	})

	t.Run("bridge endpoint cannot bridge to itself", func(t *testing.T) {
		t.Parallel()

		r := newTestResolver(t, &chainFixture{
			pairs:    map[[2]common.Address]common.Address{},
			reserves: map[common.Address][2]int64{},
		})

		_, err := r.Resolve(context.Background(), tokenA, wethTT)
		require.ErrorIs(t, err, apperrors.ErrNoRouteFound)
	})

	t.Run("identical tokens", func(t *testing.T) {
		t.Parallel()

		r := newTestResolver(t, &chainFixture{
			pairs:    map[[2]common.Address]common.Address{},
			reserves: map[common.Address][2]int64{},
		})

		_, err := r.Resolve(context.Background(), tokenA, tokenA)
		require.ErrorIs(t, err, apperrors.ErrNoRouteFound)
	})
}
