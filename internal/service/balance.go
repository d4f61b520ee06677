package service

import (
	"context"

	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"

	"github.com/haisapan/ethereum-trading-mcp-server/internal/service/dto"
	"github.com/haisapan/ethereum-trading-mcp-server/internal/service/validate"
	"github.com/haisapan/ethereum-trading-mcp-server/internal/token"
)

// GetBalance reads an account's native or token balance and reports it both
// raw and formatted at the token's scale.
func (s *TradingService) GetBalance(ctx context.Context, req dto.BalanceRequest) (*dto.BalanceResult, error) {
	if err := validate.BalanceRequestValidate(req); err != nil {
		return nil, err
	}
	account := common.HexToAddress(req.Address)

	var amount token.Amount
	if isNativeRequest(req.Token) {
		bal, err := s.gw.NativeBalance(ctx, account)
		if err != nil {
			return nil, err
		}
		amount = token.NewAmount(bal, token.Ether())
	} else {
		tok, err := s.resolveToken(ctx, req.Token)
		if err != nil {
			return nil, err
		}
		bal, err := s.gw.TokenBalance(ctx, tok.Address, account)
		if err != nil {
			return nil, err
		}
		amount = token.NewAmount(bal, tok)
	}

	s.log.Debug("balance read",
		zap.String("account", account.Hex()),
		zap.String("token", amount.Token.Symbol),
		zap.String("balance", amount.Value.String()),
	)

	return &dto.BalanceResult{
		Address:          account.Hex(),
		Token:            tokenInfo(amount.Token),
		Balance:          amount.Value.String(),
		Decimals:         amount.Token.Decimals,
		FormattedBalance: amount.Format(),
	}, nil
}
