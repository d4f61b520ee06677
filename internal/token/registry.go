package token

import (
	"strings"
	"sync"

	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"

	"github.com/haisapan/ethereum-trading-mcp-server/internal/apperrors"
)

// Registry maps symbols and addresses to token descriptors. It is preloaded
// with common mainnet tokens and can learn new ones at runtime, so reads
// vastly outnumber writes.
type Registry struct {
	mu     sync.RWMutex
	tokens map[string]Token
}

// NewRegistry creates a registry preloaded with the mainnet defaults.
func NewRegistry() *Registry {
	r := &Registry{tokens: make(map[string]Token)}
	for _, t := range mainnetTokens() {
		r.put(t)
	}
	return r
}

// Resolve looks up a token by symbol (case-insensitive) or hex address.
//
// A well-formed address that is not in the registry resolves to a placeholder
// descriptor with symbol UNKNOWN and 18 decimals; callers holding a chain
// gateway should replace it with on-chain metadata before converting amounts.
// Anything else fails with ErrUnknownToken.
func (r *Registry) Resolve(symbolOrAddress string) (Token, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if common.IsHexAddress(symbolOrAddress) {
		addr := common.HexToAddress(symbolOrAddress)
		if t, ok := r.tokens[addressKey(addr)]; ok {
			return t, nil
		}
		return Token{
			Symbol:   "UNKNOWN",
			Name:     "Unknown Token",
			Address:  addr,
			Decimals: 18,
		}, nil
	}

	if t, ok := r.tokens[strings.ToUpper(symbolOrAddress)]; ok {
		return t, nil
	}
	return Token{}, errors.Wrapf(apperrors.ErrUnknownToken, "token %q", symbolOrAddress)
}

// Register adds or replaces a token under both its symbol and its address.
func (r *Registry) Register(t Token) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.put(t)
}

// Contains reports whether a symbol is registered.
func (r *Registry) Contains(symbol string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.tokens[strings.ToUpper(symbol)]
	return ok
}

// All returns every registered descriptor, symbols only (address keys alias
// the same descriptors).
func (r *Registry) All() []Token {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Token, 0, len(r.tokens))
	seen := make(map[common.Address]bool, len(r.tokens))
	for key, t := range r.tokens {
		if strings.HasPrefix(key, "0x") {
			continue
		}
		if seen[t.Address] && !t.Native {
			continue
		}
		seen[t.Address] = true
		out = append(out, t)
	}
	return out
}

func (r *Registry) put(t Token) {
	r.tokens[strings.ToUpper(t.Symbol)] = t
	if !isZero(t.Address) {
		// Address lookups keep the first registration for a shared contract,
		// so WETH wins over its ETH alias.
		if _, ok := r.tokens[addressKey(t.Address)]; !ok {
			r.tokens[addressKey(t.Address)] = t
		}
	}
}

func addressKey(addr common.Address) string {
	return strings.ToLower(addr.Hex())
}

func isZero(addr common.Address) bool {
	return addr == (common.Address{})
}

// mainnetTokens is the preloaded registry content. ETH is an alias for the
// WETH contract so that routing and pricing treat them as one asset.
func mainnetTokens() []Token {
	return []Token{
		{Symbol: "WETH", Name: "Wrapped Ether", Address: WETHAddress, Decimals: 18},
		{Symbol: "ETH", Name: "Ether", Address: WETHAddress, Decimals: 18},
		{Symbol: "USDC", Name: "USD Coin", Address: common.HexToAddress("0xA0b86991c6218b36c1d19D4a2e9Eb0cE3606eB48"), Decimals: 6},
		{Symbol: "USDT", Name: "Tether USD", Address: common.HexToAddress("0xdAC17F958D2ee523a2206206994597C13D831ec7"), Decimals: 6},
		{Symbol: "DAI", Name: "Dai Stablecoin", Address: common.HexToAddress("0x6B175474E89094C44Da98b954EedeAC495271d0F"), Decimals: 18},
		{Symbol: "WBTC", Name: "Wrapped BTC", Address: common.HexToAddress("0x2260FAC5E5542a773Aa44fBCfeDf7C193bc2C599"), Decimals: 8},
		{Symbol: "UNI", Name: "Uniswap", Address: common.HexToAddress("0x1f9840a85d5aF5bf1D1762F925BDADdC4201F984"), Decimals: 18},
	}
}
