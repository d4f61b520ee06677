// Package validate rejects malformed requests before any chain interaction.
// Checks here are purely syntactic; resolution against the registry or the
// chain happens in the service after validation passes.
package validate

import (
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"

	"github.com/haisapan/ethereum-trading-mcp-server/internal/apperrors"
	"github.com/haisapan/ethereum-trading-mcp-server/internal/service/dto"
)

// BalanceRequestValidate checks a balance request.
func BalanceRequestValidate(req dto.BalanceRequest) error {
	if req.Address == "" {
		return errors.Wrap(apperrors.ErrInvalidArgument, "address is required")
	}
	if !common.IsHexAddress(req.Address) {
		return errors.Wrapf(apperrors.ErrInvalidArgument, "address %q is not a valid address", req.Address)
	}
	return nil
}

// PriceRequestValidate checks a price request.
func PriceRequestValidate(req dto.PriceRequest) error {
	if req.Token == "" {
		return errors.Wrap(apperrors.ErrInvalidArgument, "token is required")
	}
	switch strings.ToUpper(req.QuoteCurrency) {
	case "", dto.QuoteUSD, dto.QuoteETH:
		return nil
	default:
		return errors.Wrapf(apperrors.ErrInvalidArgument, "unsupported quote currency %q", req.QuoteCurrency)
	}
}

// SwapRequestValidate checks a swap request.
func SwapRequestValidate(req dto.SwapRequest) error {
	if req.FromToken == "" || req.ToToken == "" {
		return errors.Wrap(apperrors.ErrInvalidArgument, "from_token and to_token are required")
	}
	if strings.EqualFold(req.FromToken, req.ToToken) {
		return errors.Wrap(apperrors.ErrInvalidArgument, "from_token and to_token must differ")
	}
	if err := validAmountSyntax(req.Amount); err != nil {
		return err
	}
	if req.SlippageBps != nil && *req.SlippageBps >= 10_000 {
		return errors.Wrapf(apperrors.ErrInvalidSlippage, "%d bps", *req.SlippageBps)
	}
	if req.WalletAddress != "" && !common.IsHexAddress(req.WalletAddress) {
		return errors.Wrapf(apperrors.ErrInvalidArgument, "wallet address %q is not a valid address", req.WalletAddress)
	}
	return nil
}

// validAmountSyntax accepts unsigned decimal strings with at most one point.
// Scale fitting is checked later at parse time, once the token's decimals
// are known.
func validAmountSyntax(amount string) error {
	if amount == "" {
		return errors.Wrap(apperrors.ErrInvalidAmount, "amount is required")
	}
	whole, frac, dotted := strings.Cut(amount, ".")
	if !digits(whole) || (dotted && !digits(frac)) {
		return errors.Wrapf(apperrors.ErrInvalidAmount, "amount %q is not a decimal number", amount)
	}
	return nil
}

func digits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
