package uniswapv2

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
)

// Solidity's built-in revert envelopes.
var (
	selError = [4]byte{0x08, 0xc3, 0x79, 0xa0} // Error(string)
	selPanic = [4]byte{0x4e, 0x48, 0x7b, 0x71} // Panic(uint256)
)

// customErrors maps 4-byte selectors of custom errors seen on routers and
// tokens in the wild to their signatures. Keyed by keccak-derived selector
// so a signature typo cannot silently miss.
var customErrors = func() map[[4]byte]string {
	sigs := []string{
		"TransferFromFailed()",
		"TransferFailed()",
		"InsufficientAllowance()",
		"InsufficientBalance()",
		"Expired()",
	}
	m := make(map[[4]byte]string, len(sigs))
	for _, sig := range sigs {
		var sel [4]byte
		copy(sel[:], crypto.Keccak256([]byte(sig))[:4])
		m[sel] = sig
	}
	return m
}()

// reasonHints rewrites well-known require strings into actionable messages.
// Checked by substring, since routers prefix reasons with contract names.
var reasonHints = []struct {
	substr string
	hint   string
}{
	{"TRANSFER_FROM_FAILED", "token transfer failed, check balance and allowance"},
	{"INSUFFICIENT_OUTPUT_AMOUNT", "output fell below the slippage floor"},
	{"INSUFFICIENT_LIQUIDITY", "pool lacks liquidity for this size"},
	{"EXPIRED", "transaction deadline expired"},
}

// panicCodes are the Solidity Panic(uint256) reason codes.
var panicCodes = map[uint64]string{
	0x01: "assertion failed",
	0x11: "arithmetic overflow or underflow",
	0x12: "division by zero",
	0x21: "invalid enum value",
	0x22: "corrupted storage byte array",
	0x31: "pop on empty array",
	0x32: "array index out of bounds",
	0x41: "out of memory",
	0x51: "call to uninitialized function",
}

var errorStringArgs = abi.Arguments{{Type: mustNewType("string")}}

func mustNewType(name string) abi.Type {
	t, err := abi.NewType(name, "", nil)
	if err != nil {
		panic(err)
	}
	return t
}

// DecodeRevert turns raw revert data into a human-readable reason. It tries
// the standard Error(string) envelope first, then Panic(uint256), then the
// custom-error table, and finally reports the raw payload so no revert is
// ever swallowed.
func DecodeRevert(data []byte) string {
	if len(data) == 0 {
		return "execution reverted without reason data"
	}
	if len(data) < 4 {
		return fmt.Sprintf("execution reverted with malformed data %s", hexutil.Encode(data))
	}

	var sel [4]byte
	copy(sel[:], data[:4])

	switch sel {
	case selError:
		if reason, ok := decodeErrorString(data[4:]); ok {
			return applyHints(reason)
		}
	case selPanic:
		if code, ok := decodePanicCode(data[4:]); ok {
			if msg, known := panicCodes[code]; known {
				return fmt.Sprintf("panic 0x%02x: %s", code, msg)
			}
			return fmt.Sprintf("panic 0x%02x", code)
		}
	default:
		if sig, ok := customErrors[sel]; ok {
			return "reverted with " + sig
		}
	}

	return fmt.Sprintf("execution reverted with data %s", hexutil.Encode(data))
}

func decodeErrorString(payload []byte) (string, bool) {
	out, err := errorStringArgs.Unpack(payload)
	if err != nil || len(out) != 1 {
		return "", false
	}
	reason, ok := out[0].(string)
	return reason, ok
}

func decodePanicCode(payload []byte) (uint64, bool) {
	if len(payload) != 32 {
		return 0, false
	}
	code := new(big.Int).SetBytes(payload)
	if !code.IsUint64() {
		return 0, false
	}
	return code.Uint64(), true
}

func applyHints(reason string) string {
	for _, h := range reasonHints {
		if strings.Contains(reason, h.substr) {
			return fmt.Sprintf("%s (%s)", reason, h.hint)
		}
	}
	return reason
}
