package uniswapv2

import (
	"context"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/haisapan/ethereum-trading-mcp-server/internal/infra/eth"
)

const routerABIJSON = `[
	{"inputs":[{"internalType":"uint256","name":"amountIn","type":"uint256"},{"internalType":"uint256","name":"amountOutMin","type":"uint256"},{"internalType":"address[]","name":"path","type":"address[]"},{"internalType":"address","name":"to","type":"address"},{"internalType":"uint256","name":"deadline","type":"uint256"}],"name":"swapExactTokensForTokens","outputs":[{"internalType":"uint256[]","name":"amounts","type":"uint256[]"}],"stateMutability":"nonpayable","type":"function"}
]`

// maxDeadline disables the router's deadline check. The call is never
// broadcast, so expiry is meaningless here.
var maxDeadline = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 256), big.NewInt(1))

// SimulationResult reports what a dry-run of the swap would do. A revert is
// a result, not an error: Success is false and RevertReason carries the
// decoded cause.
type SimulationResult struct {
	Success bool
	// GasEstimate is nil when the node could not produce one even though
	// the simulation itself succeeded; GasWarning is set in that case.
	GasEstimate  *uint64
	GasWarning   bool
	RevertReason string
}

// Simulator dry-runs quotes against the router without broadcasting
// anything.
type Simulator struct {
	gw        eth.Gateway
	router    common.Address
	routerABI abi.ABI
	log       *zap.Logger
}

// NewSimulator builds a simulator targeting the given router contract.
func NewSimulator(gw eth.Gateway, router common.Address, log *zap.Logger) (*Simulator, error) {
	routerABI, err := abi.JSON(strings.NewReader(routerABIJSON))
	if err != nil {
		return nil, errors.Wrap(err, "abi.JSON router")
	}
	return &Simulator{gw: gw, router: router, routerABI: routerABI, log: log}, nil
}

// Simulate executes the quote's swap as an eth_call from the given sender
// and, when it succeeds, asks the node for a gas estimate. A failed
// estimate after a successful simulation degrades to a warning rather than
// failing the whole result.
func (s *Simulator) Simulate(ctx context.Context, q Quote, from common.Address) (SimulationResult, error) {
	data, err := s.packSwap(q, from)
	if err != nil {
		return SimulationResult{}, err
	}

	res, err := s.gw.SimulateCall(ctx, s.router, data, from)
	if err != nil {
		return SimulationResult{}, err
	}

	if !res.Success {
		reason := DecodeRevert(res.RevertData)
		s.log.Debug("swap simulation reverted",
			zap.String("router", s.router.Hex()),
			zap.String("reason", reason),
		)
		return SimulationResult{Success: false, RevertReason: reason}, nil
	}

	gas, err := s.gw.EstimateGas(ctx, s.router, data, from)
	if err != nil {
		s.log.Debug("gas estimation failed after successful simulation",
			zap.String("router", s.router.Hex()),
			zap.Error(err),
		)
		return SimulationResult{Success: true, GasWarning: true}, nil
	}
	return SimulationResult{Success: true, GasEstimate: &gas}, nil
}

func (s *Simulator) packSwap(q Quote, from common.Address) ([]byte, error) {
	path := make([]common.Address, len(q.Route.Path))
	copy(path, q.Route.Path)

	data, err := s.routerABI.Pack("swapExactTokensForTokens",
		q.AmountIn, q.MinAmountOut, path, from, maxDeadline)
	if err != nil {
		return nil, errors.Wrap(err, "routerABI.Pack")
	}
	return data, nil
}
