package uniswapv2

import (
	"context"
	"math/big"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/haisapan/ethereum-trading-mcp-server/internal/apperrors"
	"github.com/haisapan/ethereum-trading-mcp-server/internal/infra/eth/mock"
)

var (
	factoryAddr = common.HexToAddress("0x5C69bEe701ef814a2B6a3EDD4B1652CB9cc5aA6f")
	pairAB      = common.HexToAddress("0xaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa")
	pairAW      = common.HexToAddress("0xbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb")
	pairWB      = common.HexToAddress("0xcccccccccccccccccccccccccccccccccccccccc")
)

// chainFixture answers factory and pair reads the way a canned chain would:
// getPair from a pair table, getReserves from a reserve table keyed by pair.
type chainFixture struct {
	pairs    map[[2]common.Address]common.Address
	reserves map[common.Address][2]int64
}

func (f *chainFixture) install(t *testing.T, gw *mock.MockGateway) {
	t.Helper()

	gw.EXPECT().
		Call(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, to common.Address, data []byte) ([]byte, error) {
			if to == factoryAddr {
				a := common.BytesToAddress(data[4+12 : 4+32])
				b := common.BytesToAddress(data[36+12 : 36+32])
				pair := f.pairs[[2]common.Address{a, b}]
				return common.LeftPadBytes(pair.Bytes(), 32), nil
			}
			rs, ok := f.reserves[to]
			require.True(t, ok, "reserves read on unknown pair %s", to.Hex())
			out := make([]byte, 0, 96)
			out = append(out, common.LeftPadBytes(big.NewInt(rs[0]).Bytes(), 32)...)
			out = append(out, common.LeftPadBytes(big.NewInt(rs[1]).Bytes(), 32)...)
			out = append(out, common.LeftPadBytes(nil, 32)...)
			return out, nil
		}).
		AnyTimes()
}

func newTestOracle(t *testing.T, fixture *chainFixture) *Oracle {
	t.Helper()

	ctrl := gomock.NewController(t)
	gw := mock.NewMockGateway(ctrl)
	fixture.install(t, gw)

	oracle, err := NewOracle(gw, factoryAddr, 16, 3*time.Second)
	require.NoError(t, err)
	return oracle
}

func TestOracle_Reserves_Normalization(t *testing.T) {
	t.Parallel()

	// tokenA sorts below tokenB, so the pair reports tokenA's reserve as
	// reserve0.
	oracle := newTestOracle(t, &chainFixture{
		pairs:    map[[2]common.Address]common.Address{{tokenA, tokenB}: pairAB},
		reserves: map[common.Address][2]int64{pairAB: {100, 200}},
	})

	forward, err := oracle.Reserves(context.Background(), tokenA, tokenB)
	require.NoError(t, err)
	require.Equal(t, pairAB, forward.Pair)
	require.Equal(t, big.NewInt(100), forward.ReserveIn)
	require.Equal(t, big.NewInt(200), forward.ReserveOut)

	backward, err := oracle.Reserves(context.Background(), tokenB, tokenA)
	require.NoError(t, err)
	require.Equal(t, big.NewInt(200), backward.ReserveIn)
	require.Equal(t, big.NewInt(100), backward.ReserveOut)
}

func TestOracle_Reserves_PairNotFound(t *testing.T) {
	t.Parallel()

	oracle := newTestOracle(t, &chainFixture{
		pairs:    map[[2]common.Address]common.Address{},
		reserves: map[common.Address][2]int64{},
	})

	_, err := oracle.Reserves(context.Background(), tokenA, tokenB)
	require.ErrorIs(t, err, apperrors.ErrPairNotFound)
}

func TestOracle_Reserves_Cache(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	gw := mock.NewMockGateway(ctrl)

	calls := 0
	gw.EXPECT().
		Call(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, to common.Address, _ []byte) ([]byte, error) {
			calls++
			if to == factoryAddr {
				return common.LeftPadBytes(pairAB.Bytes(), 32), nil
			}
			out := make([]byte, 0, 96)
			out = append(out, common.LeftPadBytes(big.NewInt(100).Bytes(), 32)...)
			out = append(out, common.LeftPadBytes(big.NewInt(200).Bytes(), 32)...)
			out = append(out, common.LeftPadBytes(nil, 32)...)
			return out, nil
		}).
		AnyTimes()

	oracle, err := NewOracle(gw, factoryAddr, 16, 3*time.Second)
	require.NoError(t, err)

	base := time.Unix(1_700_000_000, 0)
	oracle.now = func() time.Time { return base }

	_, err = oracle.Reserves(context.Background(), tokenA, tokenB)
	require.NoError(t, err)
	require.Equal(t, 2, calls, "first lookup hits factory and pair")

	// Both directions are served from the same cached snapshot.
	_, err = oracle.Reserves(context.Background(), tokenB, tokenA)
	require.NoError(t, err)
	require.Equal(t, 2, calls, "fresh snapshot must not refetch")

	oracle.now = func() time.Time { return base.Add(5 * time.Second) }

	_, err = oracle.Reserves(context.Background(), tokenA, tokenB)
	require.NoError(t, err)
	require.Equal(t, 4, calls, "stale snapshot must refetch")
}
