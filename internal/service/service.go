// Package service implements the tool surface: balance lookup, pool-derived
// pricing, and quote-plus-simulation for swaps. Requests are validated
// before anything touches the chain.
package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/haisapan/ethereum-trading-mcp-server/internal/config"
	"github.com/haisapan/ethereum-trading-mcp-server/internal/infra/eth"
	"github.com/haisapan/ethereum-trading-mcp-server/internal/service/dto"
	"github.com/haisapan/ethereum-trading-mcp-server/internal/token"
	"github.com/haisapan/ethereum-trading-mcp-server/internal/uniswapv2"
)

//go:generate mockgen -source=service.go -destination=mock/service.go -package=mock

// reserveCacheSize bounds the pools kept in the oracle's snapshot cache.
const reserveCacheSize = 256

// Service is the tool surface exposed to transports.
type Service interface {
	GetBalance(ctx context.Context, req dto.BalanceRequest) (*dto.BalanceResult, error)
	GetTokenPrice(ctx context.Context, req dto.PriceRequest) (*dto.TokenPriceResult, error)
	SwapTokens(ctx context.Context, req dto.SwapRequest) (*dto.SwapResult, error)
}

// TradingService wires the engine components behind the tool surface.
type TradingService struct {
	gw       eth.Gateway
	tokens   *token.Registry
	oracle   *uniswapv2.Oracle
	resolver *uniswapv2.Resolver
	quoter   *uniswapv2.Quoter
	sim      *uniswapv2.Simulator
	cfg      *config.Config
	log      *zap.Logger
}

// New builds the service over a gateway. The same constructor serves live
// and test-mode gateways; nothing downstream knows which one it got.
func New(gw eth.Gateway, tokens *token.Registry, cfg *config.Config, log *zap.Logger) (*TradingService, error) {
	oracle, err := uniswapv2.NewOracle(gw, cfg.Factory(), reserveCacheSize, cfg.ReserveCacheTTL)
	if err != nil {
		return nil, err
	}
	sim, err := uniswapv2.NewSimulator(gw, cfg.Router(), log)
	if err != nil {
		return nil, err
	}
	return &TradingService{
		gw:       gw,
		tokens:   tokens,
		oracle:   oracle,
		resolver: uniswapv2.NewResolver(oracle, cfg.WETH()),
		quoter:   uniswapv2.NewQuoter(uint16(cfg.FeeBps)),
		sim:      sim,
		cfg:      cfg,
		log:      log,
	}, nil
}

// resolveToken maps a symbol or address to a descriptor. Unregistered
// addresses are completed from on-chain metadata and remembered, so the
// chain is asked about each contract once.
func (s *TradingService) resolveToken(ctx context.Context, symbolOrAddress string) (token.Token, error) {
	t, err := s.tokens.Resolve(symbolOrAddress)
	if err != nil {
		return token.Token{}, err
	}
	if t.Symbol != "UNKNOWN" {
		return t, nil
	}

	md, err := s.gw.TokenMetadata(ctx, t.Address)
	if err != nil {
		return token.Token{}, err
	}
	t.Symbol = md.Symbol
	t.Name = md.Name
	t.Decimals = md.Decimals
	s.tokens.Register(t)
	return t, nil
}

func isNativeRequest(tok string) bool {
	return tok == "" || strings.EqualFold(tok, "ETH")
}

func tokenInfo(t token.Token) dto.TokenInfo {
	return dto.TokenInfo{
		Symbol:   t.Symbol,
		Name:     t.Name,
		Address:  t.Address.Hex(),
		Decimals: t.Decimals,
	}
}
