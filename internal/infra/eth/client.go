package eth

import (
	"context"
	"math/big"
	"strings"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v5"
	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/ethereum/go-ethereum/rpc"
	"github.com/pkg/errors"
	"go.uber.org/multierr"

	"github.com/haisapan/ethereum-trading-mcp-server/internal/apperrors"
)

const erc20ABIJSON = `[
	{"inputs":[{"internalType":"address","name":"owner","type":"address"}],"name":"balanceOf","outputs":[{"internalType":"uint256","name":"","type":"uint256"}],"stateMutability":"view","type":"function"},
	{"inputs":[],"name":"symbol","outputs":[{"internalType":"string","name":"","type":"string"}],"stateMutability":"view","type":"function"},
	{"inputs":[],"name":"name","outputs":[{"internalType":"string","name":"","type":"string"}],"stateMutability":"view","type":"function"},
	{"inputs":[],"name":"decimals","outputs":[{"internalType":"uint8","name":"","type":"uint8"}],"stateMutability":"view","type":"function"}
]`

const maxCallAttempts = 3

// NodeCaller is the slice of the RPC client the gateway needs. ethclient
// satisfies it; tests substitute a mock.
type NodeCaller interface {
	BalanceAt(ctx context.Context, account common.Address, blockNumber *big.Int) (*big.Int, error)
	CallContract(ctx context.Context, msg ethereum.CallMsg, blockNumber *big.Int) ([]byte, error)
	EstimateGas(ctx context.Context, msg ethereum.CallMsg) (uint64, error)
}

// Client is the live Gateway backed by an Ethereum RPC node. Transient
// transport faults are retried with exponential backoff; execution reverts
// and expired deadlines are not.
type Client struct {
	node        NodeCaller
	erc20       abi.ABI
	callTimeout time.Duration
}

// Dial connects to an RPC endpoint and returns a live gateway.
func Dial(rpcURL string, callTimeout time.Duration) (*Client, error) {
	node, err := ethclient.Dial(rpcURL)
	if err != nil {
		return nil, errors.Wrap(apperrors.ErrGatewayUnavailable, err.Error())
	}
	return NewClient(node, callTimeout)
}

// NewClient builds a gateway over an existing node connection.
func NewClient(node NodeCaller, callTimeout time.Duration) (*Client, error) {
	erc20, err := abi.JSON(strings.NewReader(erc20ABIJSON))
	if err != nil {
		return nil, errors.Wrap(err, "abi.JSON")
	}
	return &Client{node: node, erc20: erc20, callTimeout: callTimeout}, nil
}

// NativeBalance returns the account balance in wei.
func (c *Client) NativeBalance(ctx context.Context, account common.Address) (*big.Int, error) {
	ctx, cancel := context.WithTimeout(ctx, c.callTimeout)
	defer cancel()

	bal, err := retry(ctx, func() (*big.Int, error) {
		b, err := c.node.BalanceAt(ctx, account, nil)
		return b, permanentIfFinal(ctx, err)
	})
	if err != nil {
		return nil, classify(err, "node.BalanceAt")
	}
	return bal, nil
}

// TokenBalance reads balanceOf(owner) on the token contract.
func (c *Client) TokenBalance(ctx context.Context, tok, owner common.Address) (*big.Int, error) {
	data, err := c.erc20.Pack("balanceOf", owner)
	if err != nil {
		return nil, errors.Wrap(err, "erc20.Pack")
	}
	ret, err := c.Call(ctx, tok, data)
	if err != nil {
		return nil, err
	}
	out, err := c.erc20.Unpack("balanceOf", ret)
	if err != nil {
		return nil, errors.Wrap(err, "erc20.Unpack")
	}
	bal, ok := out[0].(*big.Int)
	if !ok {
		return nil, errors.New("balanceOf did not return uint256")
	}
	return bal, nil
}

// TokenMetadata reads symbol, name and decimals concurrently. Symbol and
// name fall back to placeholders when a contract omits them; decimals does
// not, since every amount conversion depends on it.
func (c *Client) TokenMetadata(ctx context.Context, tok common.Address) (Metadata, error) {
	md := Metadata{Symbol: "UNKNOWN", Name: "Unknown Token"}

	var (
		wg          sync.WaitGroup
		mu          sync.Mutex
		combinedErr error
		decimalsOK  bool
	)

	read := func(method string, assign func([]interface{}) error) {
		defer wg.Done()

		data, err := c.erc20.Pack(method)
		if err != nil {
			mu.Lock()
			combinedErr = multierr.Append(combinedErr, errors.Wrapf(err, "pack %s", method))
			mu.Unlock()
			return
		}
		ret, err := c.Call(ctx, tok, data)
		if err != nil {
			mu.Lock()
			combinedErr = multierr.Append(combinedErr, errors.Wrapf(err, "call %s", method))
			mu.Unlock()
			return
		}
		out, err := c.erc20.Unpack(method, ret)
		if err != nil {
			mu.Lock()
			combinedErr = multierr.Append(combinedErr, errors.Wrapf(err, "unpack %s", method))
			mu.Unlock()
			return
		}
		mu.Lock()
		combinedErr = multierr.Append(combinedErr, assign(out))
		mu.Unlock()
	}

	wg.Add(3)
	go read("symbol", func(out []interface{}) error {
		if s, ok := out[0].(string); ok && s != "" {
			md.Symbol = s
		}
		return nil
	})
	go read("name", func(out []interface{}) error {
		if s, ok := out[0].(string); ok && s != "" {
			md.Name = s
		}
		return nil
	})
	go read("decimals", func(out []interface{}) error {
		d, ok := out[0].(uint8)
		if !ok {
			return errors.New("decimals did not return uint8")
		}
		md.Decimals = d
		decimalsOK = true
		return nil
	})
	wg.Wait()

	if !decimalsOK {
		return Metadata{}, errors.Wrapf(combinedErr, "token %s metadata", tok.Hex())
	}
	return md, nil
}

// Call performs a plain read and returns raw return data. A revert here is
// an error: plain reads target view functions that are not expected to
// revert under normal operation.
func (c *Client) Call(ctx context.Context, to common.Address, data []byte) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, c.callTimeout)
	defer cancel()

	msg := ethereum.CallMsg{To: &to, Data: data}
	ret, err := retry(ctx, func() ([]byte, error) {
		out, err := c.node.CallContract(ctx, msg, nil)
		return out, permanentIfFinal(ctx, err)
	})
	if err != nil {
		return nil, classify(err, "node.CallContract")
	}
	return ret, nil
}

// SimulateCall executes the call from the given sender without committing
// state. Reverts come back as a failed CallResult with the raw payload, not
// as an error.
func (c *Client) SimulateCall(ctx context.Context, to common.Address, data []byte, from common.Address) (CallResult, error) {
	ctx, cancel := context.WithTimeout(ctx, c.callTimeout)
	defer cancel()

	msg := ethereum.CallMsg{From: from, To: &to, Data: data}
	ret, err := retry(ctx, func() ([]byte, error) {
		out, err := c.node.CallContract(ctx, msg, nil)
		return out, permanentIfFinal(ctx, err)
	})
	if err != nil {
		if isRevert(err) {
			payload, _ := revertPayload(err)
			return CallResult{Success: false, RevertData: payload}, nil
		}
		return CallResult{}, classify(err, "node.CallContract")
	}
	return CallResult{Success: true, ReturnData: ret}, nil
}

// EstimateGas returns the gas the call would use, failing with
// ErrEstimationFailed when the node reports the call would revert.
func (c *Client) EstimateGas(ctx context.Context, to common.Address, data []byte, from common.Address) (uint64, error) {
	ctx, cancel := context.WithTimeout(ctx, c.callTimeout)
	defer cancel()

	msg := ethereum.CallMsg{From: from, To: &to, Data: data}
	gas, err := retry(ctx, func() (uint64, error) {
		g, err := c.node.EstimateGas(ctx, msg)
		return g, permanentIfFinal(ctx, err)
	})
	if err != nil {
		if isRevert(err) {
			return 0, errors.Wrap(apperrors.ErrEstimationFailed, err.Error())
		}
		return 0, classify(err, "node.EstimateGas")
	}
	return gas, nil
}

func retry[T any](ctx context.Context, op func() (T, error)) (T, error) {
	return backoff.Retry(ctx, op,
		backoff.WithBackOff(backoff.NewExponentialBackOff()),
		backoff.WithMaxTries(maxCallAttempts),
	)
}

// permanentIfFinal marks errors that retrying cannot fix: execution reverts
// and expired contexts.
func permanentIfFinal(ctx context.Context, err error) error {
	if err == nil {
		return nil
	}
	if isRevert(err) || ctx.Err() != nil {
		return backoff.Permanent(err)
	}
	return err
}

func classify(err error, callSite string) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return errors.Wrap(apperrors.ErrGatewayTimeout, callSite)
	}
	return errors.Wrap(err, callSite)
}

// isRevert reports whether err represents an execution revert rather than a
// transport fault.
func isRevert(err error) bool {
	if _, ok := revertPayload(err); ok {
		return true
	}
	return strings.Contains(err.Error(), "execution reverted")
}

// revertPayload extracts the raw revert data a node attaches to eth_call
// failures.
func revertPayload(err error) ([]byte, bool) {
	var de rpc.DataError
	if !errors.As(err, &de) {
		return nil, false
	}
	hexData, ok := de.ErrorData().(string)
	if !ok {
		return nil, false
	}
	payload, decErr := hexutil.Decode(hexData)
	if decErr != nil {
		return nil, false
	}
	return payload, true
}
