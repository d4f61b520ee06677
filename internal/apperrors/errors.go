// Package apperrors defines the error taxonomy shared by the engine.
//
// Every failure surfaced to a caller wraps exactly one of these sentinels so
// the transport layer can map it to a machine-checkable kind with errors.Is.
package apperrors

import "github.com/pkg/errors"

var (
	// ErrInvalidArgument is returned when a request is malformed in a way
	// that is not covered by a more specific sentinel: a bad address, a
	// missing field, an unsupported quote currency.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrInvalidAmount is returned when a decimal amount string cannot be
	// parsed, is negative, or carries more fractional digits than the token
	// supports.
	ErrInvalidAmount = errors.New("invalid amount")

	// ErrOverflow is returned when a scaling operation cannot represent its
	// result exactly.
	ErrOverflow = errors.New("overflow")

	// ErrUnknownToken is returned when a token symbol is not in the registry
	// and the input is not a well-formed contract address.
	ErrUnknownToken = errors.New("unknown token")

	// ErrPairNotFound is returned when the factory has no pool for a pair of
	// tokens. Callers use it to prune candidate routes; it is not a fault.
	ErrPairNotFound = errors.New("pair not found")

	// ErrNoRouteFound is returned when neither a direct pool nor a bridged
	// two-hop path connects two tokens.
	ErrNoRouteFound = errors.New("no route found")

	// ErrInsufficientLiquidity is returned when a pool cannot sensibly absorb
	// the requested input relative to its reserves.
	ErrInsufficientLiquidity = errors.New("insufficient liquidity")

	// ErrInvalidSlippage is returned when a slippage tolerance lies outside
	// [0, 10000) basis points.
	ErrInvalidSlippage = errors.New("invalid slippage")

	// ErrGatewayTimeout is returned when a chain read exceeds its deadline.
	ErrGatewayTimeout = errors.New("gateway timeout")

	// ErrGatewayUnavailable is returned when no chain gateway is configured
	// or the remote node cannot be reached at all.
	ErrGatewayUnavailable = errors.New("gateway unavailable")

	// ErrEstimationFailed is returned by gas estimation when the underlying
	// call would revert.
	ErrEstimationFailed = errors.New("gas estimation failed")
)

// Kind returns the stable machine-readable name for err, matching it against
// the sentinels above. Unrecognized errors report "internal".
func Kind(err error) string {
	switch {
	case errors.Is(err, ErrInvalidArgument):
		return "invalid_argument"
	case errors.Is(err, ErrInvalidAmount):
		return "invalid_amount"
	case errors.Is(err, ErrOverflow):
		return "overflow"
	case errors.Is(err, ErrUnknownToken):
		return "unknown_token"
	case errors.Is(err, ErrPairNotFound):
		return "pair_not_found"
	case errors.Is(err, ErrNoRouteFound):
		return "no_route_found"
	case errors.Is(err, ErrInsufficientLiquidity):
		return "insufficient_liquidity"
	case errors.Is(err, ErrInvalidSlippage):
		return "invalid_slippage"
	case errors.Is(err, ErrGatewayTimeout):
		return "gateway_timeout"
	case errors.Is(err, ErrGatewayUnavailable):
		return "gateway_unavailable"
	case errors.Is(err, ErrEstimationFailed):
		return "estimation_failed"
	default:
		return "internal"
	}
}
