// Package token holds token descriptors and the symbol/address registry.
package token

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"

	"github.com/haisapan/ethereum-trading-mcp-server/internal/numeric"
)

// WETHAddress is the canonical mainnet wrapped-ether contract, used both as
// the routing bridge asset and as the ETH alias target.
var WETHAddress = common.HexToAddress("0xC02aaA39b223FE8D0A0e5C4F27eAD9083C756Cc2")

// Token describes an asset: symbol, display name, contract address and the
// decimal exponent that fixes its smallest-unit scale. Descriptors are
// immutable once resolved.
type Token struct {
	Symbol   string         `json:"symbol"`
	Name     string         `json:"name"`
	Address  common.Address `json:"address"`
	Decimals uint8          `json:"decimals"`
	// Native marks the chain's own asset, which has no contract and is read
	// via the account balance instead of a token call.
	Native bool `json:"-"`
}

// Ether returns the descriptor for the native asset.
func Ether() Token {
	return Token{
		Symbol:   "ETH",
		Name:     "Ether",
		Address:  common.Address{},
		Decimals: 18,
		Native:   true,
	}
}

// Amount pairs a raw smallest-unit quantity with the token defining its
// scale. The quantity is never a float at any stage.
type Amount struct {
	Value *big.Int
	Token Token
}

// NewAmount builds an Amount from a raw value.
func NewAmount(value *big.Int, tok Token) Amount {
	return Amount{Value: value, Token: tok}
}

// Format renders the amount as a decimal string at the token's scale.
func (a Amount) Format() string {
	return numeric.FormatDecimal(a.Value, a.Token.Decimals)
}
