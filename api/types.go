// Package api - request/response types
package api

// ResolveRequest asks for the price of a tier at an instant.
type ResolveRequest struct {
	// TierID addresses the pricing tier
	TierID string `json:"tier_id"`

	// At is the query instant (RFC 3339); empty means "now"
	At string `json:"at,omitempty"`

	// Language selects the display language for titles
	Language string `json:"language,omitempty"`
}

// ResolveResponse carries a resolution result. Resolved is false when no
// tier or no price applies; that is an expected outcome, not an error.
type ResolveResponse struct {
	// TierID echoes the addressed tier (the effective tier id after
	// fallback, when one was found)
	TierID string `json:"tier_id"`

	// Resolved reports whether a price applies
	Resolved bool `json:"resolved"`

	// Amount is the decimal price string when resolved
	Amount string `json:"amount,omitempty"`

	// Priority is the winning price's priority step
	Priority string `json:"priority,omitempty"`

	// ExceptionTitle is set when an override supplied the price
	ExceptionTitle string `json:"exception_title,omitempty"`

	// At is the instant the resolution was computed for
	At string `json:"at"`
}

// TierSummary describes one addressable tier.
type TierSummary struct {
	ID        string `json:"id"`
	Priority  string `json:"priority"`
	Overrides int    `json:"overrides"`
	Seasons   int    `json:"seasons"`
	BaseItems int    `json:"base_items"`
}

// TiersResponse lists the catalog's tiers.
type TiersResponse struct {
	Tiers []TierSummary `json:"tiers"`
}

// ErrorResponse is the uniform error envelope.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
