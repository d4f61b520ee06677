package dto

// Quote currencies supported by the price endpoint.
const (
	QuoteUSD = "USD"
	QuoteETH = "ETH"
)

// PriceRequest asks for a token's spot price. QuoteCurrency defaults to USD.
type PriceRequest struct {
	Token         string `json:"token"`
	QuoteCurrency string `json:"quote_currency,omitempty"`
}

// TokenPriceResult reports a pool-derived spot price. Price is an exact
// decimal string; Source names the pool the price came from; Liquidity is
// the pool's depth expressed in the bridge asset.
type TokenPriceResult struct {
	Token         TokenInfo `json:"token"`
	Price         string    `json:"price"`
	QuoteCurrency string    `json:"quote_currency"`
	Source        string    `json:"source"`
	Liquidity     string    `json:"liquidity,omitempty"`
}
