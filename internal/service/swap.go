package service

import (
	"context"
	"fmt"
	"strconv"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/haisapan/ethereum-trading-mcp-server/internal/apperrors"
	"github.com/haisapan/ethereum-trading-mcp-server/internal/numeric"
	"github.com/haisapan/ethereum-trading-mcp-server/internal/service/dto"
	"github.com/haisapan/ethereum-trading-mcp-server/internal/service/validate"
	"github.com/haisapan/ethereum-trading-mcp-server/internal/uniswapv2"
)

// SwapTokens quotes a swap and dry-runs it against the router. The combined
// result carries both the quote and the simulation outcome; a revert is
// reported inside the result, not as an error.
func (s *TradingService) SwapTokens(ctx context.Context, req dto.SwapRequest) (*dto.SwapResult, error) {
	if err := validate.SwapRequestValidate(req); err != nil {
		return nil, err
	}

	from, err := s.resolveToken(ctx, req.FromToken)
	if err != nil {
		return nil, err
	}
	to, err := s.resolveToken(ctx, req.ToToken)
	if err != nil {
		return nil, err
	}
	if from.Address == to.Address {
		return nil, errors.Wrap(apperrors.ErrInvalidArgument, "tokens share a contract")
	}

	amountIn, err := numeric.ParseDecimal(req.Amount, from.Decimals)
	if err != nil {
		return nil, err
	}
	if amountIn.Sign() == 0 {
		return nil, errors.Wrap(apperrors.ErrInvalidAmount, "amount must be positive")
	}

	slippageBps := uint16(s.cfg.DefaultSlippageBps)
	if req.SlippageBps != nil {
		slippageBps = uint16(*req.SlippageBps)
	}

	route, err := s.resolver.Resolve(ctx, from.Address, to.Address)
	if err != nil {
		return nil, err
	}

	var quote uniswapv2.Quote
	if req.Force {
		quote, err = s.quoter.QuoteForced(route, amountIn, slippageBps)
	} else {
		quote, err = s.quoter.Quote(route, amountIn, slippageBps)
	}
	if err != nil {
		return nil, err
	}

	// The half-reserve guard bounds each hop; this bounds the end-to-end
	// rate degradation across the whole route.
	if !req.Force && s.cfg.MaxImpactBps > 0 && quote.ImpactBps > int64(s.cfg.MaxImpactBps) {
		return nil, errors.Wrapf(apperrors.ErrInsufficientLiquidity,
			"price impact %s exceeds the %d bps limit", formatImpact(quote.ImpactBps), s.cfg.MaxImpactBps)
	}

	sender, err := s.cfg.SimulationAddress(req.WalletAddress)
	if err != nil {
		return nil, errors.Wrap(apperrors.ErrInvalidArgument, err.Error())
	}

	sim, err := s.sim.Simulate(ctx, quote, sender)
	if err != nil {
		return nil, err
	}

	s.log.Info("swap simulated",
		zap.String("from", from.Symbol),
		zap.String("to", to.Symbol),
		zap.String("amount_in", amountIn.String()),
		zap.String("amount_out", quote.AmountOut.String()),
		zap.Int64("impact_bps", quote.ImpactBps),
		zap.Int("hops", quote.Route.Hops()),
		zap.Bool("success", sim.Success),
	)

	return &dto.SwapResult{
		FromToken:         tokenInfo(from),
		ToToken:           tokenInfo(to),
		InputAmount:       numeric.FormatDecimal(quote.AmountIn, from.Decimals),
		EstimatedOutput:   numeric.FormatDecimal(quote.AmountOut, to.Decimals),
		MinimumOutput:     numeric.FormatDecimal(quote.MinAmountOut, to.Decimals),
		PriceImpact:       formatImpact(quote.ImpactBps),
		Route:             swapRoute(quote.Route),
		SimulationSuccess: sim.Success,
		GasEstimate:       sim.GasEstimate,
		GasWarning:        sim.GasWarning,
		RevertReason:      sim.RevertReason,
	}, nil
}

// formatImpact renders basis points as a percentage string, "0.4%" for 40
// bps.
func formatImpact(bps int64) string {
	whole := bps / 100
	frac := bps % 100
	switch {
	case frac == 0:
		return strconv.FormatInt(whole, 10) + "%"
	case frac%10 == 0:
		return strconv.FormatInt(whole, 10) + "." + strconv.FormatInt(frac/10, 10) + "%"
	default:
		return fmt.Sprintf("%d.%02d%%", whole, frac)
	}
}

func swapRoute(r uniswapv2.Route) dto.SwapRoute {
	path := make([]string, len(r.Path))
	for i, a := range r.Path {
		path[i] = a.Hex()
	}
	pools := make([]string, 0, r.Hops())
	for _, p := range r.PoolAddresses() {
		pools = append(pools, p.Hex())
	}
	return dto.SwapRoute{Protocol: "Uniswap V2", Path: path, Pools: pools}
}
