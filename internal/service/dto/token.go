// Package dto defines the request and response shapes of the tool surface.
// All quantities cross this boundary as decimal strings; nothing here is
// ever a float.
package dto

// TokenInfo describes a token in responses.
type TokenInfo struct {
	Symbol   string `json:"symbol"`
	Name     string `json:"name"`
	Address  string `json:"address"`
	Decimals uint8  `json:"decimals"`
}
