package dto

// BalanceRequest asks for an account's balance of the native asset or, when
// Token is set, of a specific ERC-20 token. Token accepts a symbol or a
// contract address.
type BalanceRequest struct {
	Address string `json:"address"`
	Token   string `json:"token_address,omitempty"`
}

// BalanceResult reports both the raw smallest-unit balance and its decimal
// rendering.
type BalanceResult struct {
	Address          string    `json:"address"`
	Token            TokenInfo `json:"token"`
	Balance          string    `json:"balance"`
	Decimals         uint8     `json:"decimals"`
	FormattedBalance string    `json:"formatted_balance"`
}
