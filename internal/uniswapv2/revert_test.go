package uniswapv2

import (
	"testing"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/require"
)

func encodeErrorString(t *testing.T, reason string) []byte {
	t.Helper()

	stringTy, err := abi.NewType("string", "", nil)
	require.NoError(t, err)
	packed, err := abi.Arguments{{Type: stringTy}}.Pack(reason)
	require.NoError(t, err)
	return append([]byte{0x08, 0xc3, 0x79, 0xa0}, packed...)
}

func encodePanic(code int64) []byte {
	payload := common.LeftPadBytes([]byte{byte(code)}, 32)
	return append([]byte{0x4e, 0x48, 0x7b, 0x71}, payload...)
}

func TestDecodeRevert(t *testing.T) {
	t.Parallel()

	t.Run("transfer from failure gets allowance hint", func(t *testing.T) {
		t.Parallel()

		got := DecodeRevert(encodeErrorString(t, "TransferHelper: TRANSFER_FROM_FAILED"))
		require.Equal(t,
			"TransferHelper: TRANSFER_FROM_FAILED (token transfer failed, check balance and allowance)",
			got)
	})

	t.Run("slippage failure gets floor hint", func(t *testing.T) {
		t.Parallel()

		got := DecodeRevert(encodeErrorString(t, "UniswapV2Router: INSUFFICIENT_OUTPUT_AMOUNT"))
		require.Equal(t,
			"UniswapV2Router: INSUFFICIENT_OUTPUT_AMOUNT (output fell below the slippage floor)",
			got)
	})

	t.Run("unrecognized reason passes through", func(t *testing.T) {
		t.Parallel()

		require.Equal(t, "SomeToken: paused", DecodeRevert(encodeErrorString(t, "SomeToken: paused")))
	})

	t.Run("arithmetic panic", func(t *testing.T) {
		t.Parallel()

		require.Equal(t, "panic 0x11: arithmetic overflow or underflow", DecodeRevert(encodePanic(0x11)))
	})

	t.Run("unknown panic code", func(t *testing.T) {
		t.Parallel()

		require.Equal(t, "panic 0x77", DecodeRevert(encodePanic(0x77)))
	})

	t.Run("known custom error", func(t *testing.T) {
		t.Parallel()

		sel := crypto.Keccak256([]byte("TransferFromFailed()"))[:4]
		require.Equal(t, "reverted with TransferFromFailed()", DecodeRevert(sel))
	})

	t.Run("unknown payload reported raw", func(t *testing.T) {
		t.Parallel()

		require.Equal(t,
			"execution reverted with data 0xdeadbeef",
			DecodeRevert([]byte{0xde, 0xad, 0xbe, 0xef}))
	})

	t.Run("empty payload", func(t *testing.T) {
		t.Parallel()

		require.Equal(t, "execution reverted without reason data", DecodeRevert(nil))
	})

	t.Run("truncated payload", func(t *testing.T) {
		t.Parallel()

		require.Equal(t,
			"execution reverted with malformed data 0x08c3",
			DecodeRevert([]byte{0x08, 0xc3}))
	})
}
