package dto

// SwapRequest asks for a quoted and simulated swap. Amount is a decimal
// string at the source token's scale. SlippageBps falls back to the
// configured default when nil. WalletAddress optionally overrides the
// simulation sender. Force skips the liquidity safety check for diagnostic
// quotes.
type SwapRequest struct {
	FromToken     string  `json:"from_token"`
	ToToken       string  `json:"to_token"`
	Amount        string  `json:"amount"`
	SlippageBps   *uint32 `json:"slippage_bps,omitempty"`
	WalletAddress string  `json:"wallet_address,omitempty"`
	Force         bool    `json:"force,omitempty"`
}

// SwapRoute describes the path a swap would take.
type SwapRoute struct {
	Protocol string   `json:"protocol"`
	Path     []string `json:"path"`
	Pools    []string `json:"pools"`
}

// SwapResult combines the quote with the simulation outcome. A reverted
// simulation is a successful result: SimulationSuccess is false and
// RevertReason explains why, but no error is raised.
type SwapResult struct {
	FromToken         TokenInfo `json:"from_token"`
	ToToken           TokenInfo `json:"to_token"`
	InputAmount       string    `json:"input_amount"`
	EstimatedOutput   string    `json:"estimated_output"`
	MinimumOutput     string    `json:"minimum_output"`
	PriceImpact       string    `json:"price_impact"`
	Route             SwapRoute `json:"route"`
	SimulationSuccess bool      `json:"simulation_success"`
	GasEstimate       *uint64   `json:"gas_estimate,omitempty"`
	GasWarning        bool      `json:"gas_warning,omitempty"`
	RevertReason      string    `json:"revert_reason,omitempty"`
}
