package validate

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/haisapan/ethereum-trading-mcp-server/internal/apperrors"
	"github.com/haisapan/ethereum-trading-mcp-server/internal/service/dto"
)

const goodAddress = "0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266"

func TestBalanceRequestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		req     dto.BalanceRequest
		wantErr error
	}{
		{name: "valid native", req: dto.BalanceRequest{Address: goodAddress}},
		{name: "valid token by symbol", req: dto.BalanceRequest{Address: goodAddress, Token: "USDC"}},
		{name: "missing address", req: dto.BalanceRequest{}, wantErr: apperrors.ErrInvalidArgument},
		{name: "malformed address", req: dto.BalanceRequest{Address: "0x123"}, wantErr: apperrors.ErrInvalidArgument},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := BalanceRequestValidate(tt.req)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestPriceRequestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		req     dto.PriceRequest
		wantErr error
	}{
		{name: "default quote", req: dto.PriceRequest{Token: "WETH"}},
		{name: "usd quote", req: dto.PriceRequest{Token: "WETH", QuoteCurrency: "USD"}},
		{name: "eth quote lowercase", req: dto.PriceRequest{Token: "USDC", QuoteCurrency: "eth"}},
		{name: "missing token", req: dto.PriceRequest{}, wantErr: apperrors.ErrInvalidArgument},
		{name: "unsupported quote", req: dto.PriceRequest{Token: "WETH", QuoteCurrency: "JPY"}, wantErr: apperrors.ErrInvalidArgument},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := PriceRequestValidate(tt.req)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestSwapRequestValidate(t *testing.T) {
	t.Parallel()

	slip := func(v uint32) *uint32 { return &v }

	tests := []struct {
		name    string
		req     dto.SwapRequest
		wantErr error
	}{
		{
			name: "valid",
			req:  dto.SwapRequest{FromToken: "WETH", ToToken: "USDC", Amount: "1.5"},
		},
		{
			name: "valid with slippage and wallet",
			req: dto.SwapRequest{
				FromToken: "WETH", ToToken: "USDC", Amount: "1000",
				SlippageBps: slip(100), WalletAddress: goodAddress,
			},
		},
		{
			name:    "same token both sides",
			req:     dto.SwapRequest{FromToken: "weth", ToToken: "WETH", Amount: "1"},
			wantErr: apperrors.ErrInvalidArgument,
		},
		{
			name:    "missing amount",
			req:     dto.SwapRequest{FromToken: "WETH", ToToken: "USDC"},
			wantErr: apperrors.ErrInvalidAmount,
		},
		{
			name:    "negative amount",
			req:     dto.SwapRequest{FromToken: "WETH", ToToken: "USDC", Amount: "-5"},
			wantErr: apperrors.ErrInvalidAmount,
		},
		{
			name:    "trailing point",
			req:     dto.SwapRequest{FromToken: "WETH", ToToken: "USDC", Amount: "1."},
			wantErr: apperrors.ErrInvalidAmount,
		},
		{
			name: "slippage out of range",
			req: dto.SwapRequest{
				FromToken: "WETH", ToToken: "USDC", Amount: "1",
				SlippageBps: slip(10_000),
			},
			wantErr: apperrors.ErrInvalidSlippage,
		},
		{
			name: "bad wallet address",
			req: dto.SwapRequest{
				FromToken: "WETH", ToToken: "USDC", Amount: "1",
				WalletAddress: "not-an-address",
			},
			wantErr: apperrors.ErrInvalidArgument,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := SwapRequestValidate(tt.req)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
		})
	}
}
