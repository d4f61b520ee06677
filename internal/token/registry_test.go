package token

import (
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	"github.com/haisapan/ethereum-trading-mcp-server/internal/apperrors"
)

func TestRegistryDefaults(t *testing.T) {
	t.Parallel()

	r := NewRegistry()
	for _, sym := range []string{"ETH", "WETH", "USDC", "USDT", "DAI", "WBTC", "UNI"} {
		require.True(t, r.Contains(sym), sym)
	}
	require.GreaterOrEqual(t, len(r.All()), 6)
}

func TestEthAliasSharesWETHContract(t *testing.T) {
	t.Parallel()

	r := NewRegistry()

	eth, err := r.Resolve("ETH")
	require.NoError(t, err)
	require.Equal(t, "ETH", eth.Symbol)
	require.Equal(t, uint8(18), eth.Decimals)

	weth, err := r.Resolve("WETH")
	require.NoError(t, err)
	require.Equal(t, weth.Address, eth.Address)
	require.Equal(t, WETHAddress, weth.Address)
}

func TestResolveBySymbol(t *testing.T) {
	t.Parallel()

	r := NewRegistry()

	usdc, err := r.Resolve("USDC")
	require.NoError(t, err)
	require.Equal(t, uint8(6), usdc.Decimals)

	// Case-insensitive.
	dai, err := r.Resolve("dai")
	require.NoError(t, err)
	require.Equal(t, "DAI", dai.Symbol)
}

func TestResolveByAddress(t *testing.T) {
	t.Parallel()

	r := NewRegistry()

	tok, err := r.Resolve(WETHAddress.Hex())
	require.NoError(t, err)
	require.Equal(t, "WETH", tok.Symbol)

	// Lowercase hex resolves too.
	tok, err = r.Resolve("0xc02aaa39b223fe8d0a0e5c4f27ead9083c756cc2")
	require.NoError(t, err)
	require.Equal(t, "WETH", tok.Symbol)
}

func TestResolveUnknownAddressReturnsPlaceholder(t *testing.T) {
	t.Parallel()

	r := NewRegistry()

	tok, err := r.Resolve("0x1234567890123456789012345678901234567890")
	require.NoError(t, err)
	require.Equal(t, "UNKNOWN", tok.Symbol)
	require.Equal(t, uint8(18), tok.Decimals)
}

func TestResolveInvalid(t *testing.T) {
	t.Parallel()

	r := NewRegistry()

	_, err := r.Resolve("NOSUCH")
	require.Error(t, err)
	require.True(t, errors.Is(err, apperrors.ErrUnknownToken))

	_, err = r.Resolve("0xinvalid")
	require.Error(t, err)
	require.True(t, errors.Is(err, apperrors.ErrUnknownToken))
}

func TestRegisterCustomToken(t *testing.T) {
	t.Parallel()

	r := NewRegistry()
	custom := Token{
		Symbol:   "CUSTOM",
		Name:     "Custom Token",
		Address:  common.HexToAddress("0x1234567890123456789012345678901234567890"),
		Decimals: 9,
	}
	r.Register(custom)

	bySym, err := r.Resolve("custom")
	require.NoError(t, err)
	require.Equal(t, custom, bySym)

	byAddr, err := r.Resolve(custom.Address.Hex())
	require.NoError(t, err)
	require.Equal(t, custom, byAddr)
}

func TestAmountFormat(t *testing.T) {
	t.Parallel()

	eth := Ether()
	a := NewAmount(big.NewInt(1500000000000000000), eth)
	require.Equal(t, "1.5", a.Format())
}
