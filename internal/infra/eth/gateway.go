// Package eth abstracts the read-only chain interface the engine depends on:
// balance reads, contract reads, and simulated calls. Two implementations
// exist, a live RPC-backed client and a deterministic test-mode gateway; the
// engine never branches on which one it was given.
package eth

//go:generate mockgen -source=gateway.go -destination=mock/gateway.go -package=mock

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

// CallResult is the outcome of a simulated, non-state-changing contract
// execution. A revert is a result, not an error: Success is false and
// RevertData carries the raw payload for the decoder chain.
type CallResult struct {
	Success    bool
	ReturnData []byte
	RevertData []byte
}

// Metadata is the on-chain self-description of a token contract.
type Metadata struct {
	Symbol   string
	Name     string
	Decimals uint8
}

// Gateway is the read-only blockchain interface.
//
// All methods honor ctx deadlines; an expired deadline surfaces as
// apperrors.ErrGatewayTimeout rather than hanging. No method mutates chain
// state.
type Gateway interface {
	// NativeBalance returns the native-asset balance of an account in wei.
	NativeBalance(ctx context.Context, account common.Address) (*big.Int, error)

	// TokenBalance reads balanceOf(owner) on a token contract.
	TokenBalance(ctx context.Context, tok, owner common.Address) (*big.Int, error)

	// TokenMetadata reads symbol/name/decimals from a token contract.
	// Contracts that omit symbol or name yield placeholder values; a missing
	// decimals value is an error, since amount conversion depends on it.
	TokenMetadata(ctx context.Context, tok common.Address) (Metadata, error)

	// Call performs a plain read against a contract and returns the raw
	// return data.
	Call(ctx context.Context, to common.Address, data []byte) ([]byte, error)

	// SimulateCall executes a call against current chain state without
	// committing it, from the given sender.
	SimulateCall(ctx context.Context, to common.Address, data []byte, from common.Address) (CallResult, error)

	// EstimateGas returns the gas the call would consume. It fails with
	// apperrors.ErrEstimationFailed when the call would revert.
	EstimateGas(ctx context.Context, to common.Address, data []byte, from common.Address) (uint64, error)
}
