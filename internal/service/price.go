package service

import (
	"context"
	"fmt"
	"math/big"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/haisapan/ethereum-trading-mcp-server/internal/numeric"
	"github.com/haisapan/ethereum-trading-mcp-server/internal/service/dto"
	"github.com/haisapan/ethereum-trading-mcp-server/internal/service/validate"
	"github.com/haisapan/ethereum-trading-mcp-server/internal/token"
)

const (
	wethDecimals = 18

	// pricePlaces bounds the fractional digits of rendered prices. USD
	// prices get the conventional 6; ETH prices keep full wei resolution
	// so low-value tokens do not round to zero.
	priceUSDPlaces = 6
	priceETHPlaces = 18
)

// GetTokenPrice derives a spot price from pool reserves: token/WETH for ETH
// quotes, composed with WETH/USDC for USD quotes. The exact rational is
// divided once at the display boundary; nothing in between is rounded.
func (s *TradingService) GetTokenPrice(ctx context.Context, req dto.PriceRequest) (*dto.TokenPriceResult, error) {
	if err := validate.PriceRequestValidate(req); err != nil {
		return nil, err
	}
	quote := strings.ToUpper(req.QuoteCurrency)
	if quote == "" {
		quote = dto.QuoteUSD
	}

	tok, err := s.resolveToken(ctx, req.Token)
	if err != nil {
		return nil, err
	}

	weth := s.cfg.WETH()
	if tok.Address == weth {
		return s.wethPrice(ctx, tok, quote)
	}

	// Oriented token in, so ReserveIn backs the token and ReserveOut the
	// bridge asset.
	pool, err := s.oracle.Reserves(ctx, tok.Address, weth)
	if err != nil {
		return nil, err
	}

	num := new(big.Int).Mul(pool.ReserveOut, numeric.Pow10(tok.Decimals))
	den := new(big.Int).Mul(pool.ReserveIn, numeric.Pow10(wethDecimals))

	var price string
	if quote == dto.QuoteETH {
		price = numeric.FormatRatio(num, den, priceETHPlaces)
	} else {
		usdcNum, usdcDen, err := s.etherUSDRatio(ctx)
		if err != nil {
			return nil, err
		}
		// token->USD composes the two ratios without intermediate division.
		price = numeric.FormatRatio(
			new(big.Int).Mul(num, usdcNum),
			new(big.Int).Mul(den, usdcDen),
			priceUSDPlaces,
		)
	}

	s.log.Debug("price derived",
		zap.String("token", tok.Symbol),
		zap.String("quote", quote),
		zap.String("price", price),
		zap.String("pair", pool.Pair.Hex()),
	)

	return &dto.TokenPriceResult{
		Token:         tokenInfo(tok),
		Price:         price,
		QuoteCurrency: quote,
		Source:        fmt.Sprintf("Uniswap V2 (Pair: %s)", pool.Pair.Hex()),
		Liquidity:     poolLiquidity(pool.ReserveOut),
	}, nil
}

// wethPrice handles the bridge asset itself: parity for ETH quotes, the
// WETH/USDC pool for USD quotes.
func (s *TradingService) wethPrice(ctx context.Context, tok token.Token, quote string) (*dto.TokenPriceResult, error) {
	if quote == dto.QuoteETH {
		return &dto.TokenPriceResult{
			Token:         tokenInfo(tok),
			Price:         "1",
			QuoteCurrency: quote,
			Source:        "wrapped native parity",
		}, nil
	}

	usdc, err := s.tokens.Resolve("USDC")
	if err != nil {
		return nil, err
	}
	pool, err := s.oracle.Reserves(ctx, s.cfg.WETH(), usdc.Address)
	if err != nil {
		return nil, err
	}

	num := new(big.Int).Mul(pool.ReserveOut, numeric.Pow10(wethDecimals))
	den := new(big.Int).Mul(pool.ReserveIn, numeric.Pow10(usdc.Decimals))

	return &dto.TokenPriceResult{
		Token:         tokenInfo(tok),
		Price:         numeric.FormatRatio(num, den, priceUSDPlaces),
		QuoteCurrency: quote,
		Source:        fmt.Sprintf("Uniswap V2 (Pair: %s)", pool.Pair.Hex()),
		Liquidity:     poolLiquidity(pool.ReserveIn),
	}, nil
}

// etherUSDRatio returns the ETH price in USD as an exact num/den pair read
// from the WETH/USDC pool.
func (s *TradingService) etherUSDRatio(ctx context.Context) (*big.Int, *big.Int, error) {
	usdc, err := s.tokens.Resolve("USDC")
	if err != nil {
		return nil, nil, err
	}
	pool, err := s.oracle.Reserves(ctx, s.cfg.WETH(), usdc.Address)
	if err != nil {
		return nil, nil, errors.Wrap(err, "usd conversion pool")
	}
	num := new(big.Int).Mul(pool.ReserveOut, numeric.Pow10(wethDecimals))
	den := new(big.Int).Mul(pool.ReserveIn, numeric.Pow10(usdc.Decimals))
	return num, den, nil
}

// poolLiquidity renders pool depth as twice the bridge-asset reserve, the
// usual convention for V2 pools.
func poolLiquidity(wethReserve *big.Int) string {
	doubled := new(big.Int).Lsh(wethReserve, 1)
	return numeric.FormatDecimal(doubled, wethDecimals) + " ETH"
}
