package eth

import (
	"bytes"
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/pkg/errors"
)

// Selectors answered by the test gateway. Plain reads arrive as raw
// calldata, so dispatch happens on the first four bytes the same way a node
// would route them.
var (
	selGetPair     = []byte{0xe6, 0xa4, 0x39, 0x05} // getPair(address,address)
	selGetReserves = []byte{0x09, 0x02, 0xf1, 0xac} // getReserves()
	selBalanceOf   = []byte{0x70, 0xa0, 0x82, 0x31} // balanceOf(address)
)

// TestGateway is the deterministic Gateway used in test mode. Every pair of
// tokens has a pool, reserves are fixed, balances equal the configured test
// balance, and simulations succeed with a fixed gas figure. No network is
// touched.
type TestGateway struct {
	balance  *big.Int
	reserve0 *big.Int
	reserve1 *big.Int
	gas      uint64
}

// NewTestGateway builds the canned gateway around a fixed balance in the
// native asset's smallest unit.
func NewTestGateway(balance *big.Int) *TestGateway {
	exp18 := new(big.Int).Exp(big.NewInt(10), big.NewInt(18), nil)
	return &TestGateway{
		balance:  new(big.Int).Set(balance),
		reserve0: new(big.Int).Mul(big.NewInt(1_000_000), exp18),
		reserve1: new(big.Int).Mul(big.NewInt(2_000_000), exp18),
		gas:      150_000,
	}
}

// NativeBalance returns the configured test balance.
func (g *TestGateway) NativeBalance(_ context.Context, _ common.Address) (*big.Int, error) {
	return new(big.Int).Set(g.balance), nil
}

// TokenBalance returns the configured test balance for any token.
func (g *TestGateway) TokenBalance(_ context.Context, _, _ common.Address) (*big.Int, error) {
	return new(big.Int).Set(g.balance), nil
}

// TokenMetadata describes every token identically.
func (g *TestGateway) TokenMetadata(_ context.Context, _ common.Address) (Metadata, error) {
	return Metadata{Symbol: "TEST", Name: "Test Token", Decimals: 18}, nil
}

// Call answers the plain reads the engine makes: pool lookup, reserve
// fetch and balance reads, all with deterministic values.
func (g *TestGateway) Call(_ context.Context, _ common.Address, data []byte) ([]byte, error) {
	if len(data) < 4 {
		return nil, errors.New("calldata too short")
	}
	switch {
	case bytes.Equal(data[:4], selGetPair):
		if len(data) != 4+64 {
			return nil, errors.New("malformed getPair calldata")
		}
		a := common.BytesToAddress(data[4+12 : 4+32])
		b := common.BytesToAddress(data[36+12 : 36+32])
		pair := TestPairAddress(a, b)
		return common.LeftPadBytes(pair.Bytes(), 32), nil

	case bytes.Equal(data[:4], selGetReserves):
		out := make([]byte, 0, 96)
		out = append(out, common.LeftPadBytes(g.reserve0.Bytes(), 32)...)
		out = append(out, common.LeftPadBytes(g.reserve1.Bytes(), 32)...)
		out = append(out, common.LeftPadBytes(nil, 32)...) // blockTimestampLast
		return out, nil

	case bytes.Equal(data[:4], selBalanceOf):
		return common.LeftPadBytes(g.balance.Bytes(), 32), nil

	default:
		return nil, errors.Errorf("test gateway: unsupported selector %x", data[:4])
	}
}

// SimulateCall always succeeds in test mode.
func (g *TestGateway) SimulateCall(_ context.Context, _ common.Address, _ []byte, _ common.Address) (CallResult, error) {
	return CallResult{Success: true}, nil
}

// EstimateGas returns the fixed test gas figure.
func (g *TestGateway) EstimateGas(_ context.Context, _ common.Address, _ []byte, _ common.Address) (uint64, error) {
	return g.gas, nil
}

// TestPairAddress derives the deterministic pool address the test gateway
// reports for a token pair, insensitive to argument order.
func TestPairAddress(a, b common.Address) common.Address {
	lo, hi := a, b
	if bytes.Compare(hi.Bytes(), lo.Bytes()) < 0 {
		lo, hi = hi, lo
	}
	return common.BytesToAddress(crypto.Keccak256(lo.Bytes(), hi.Bytes())[12:])
}
