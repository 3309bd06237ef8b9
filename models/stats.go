package models

// TokenStatsRecord is one historical usage record from GET /api/stats.
type TokenStatsRecord struct {
	SessionID   string  `json:"session_id"`
	Model       string  `json:"model,omitempty"`
	InputTokens int     `json:"input_tokens"`
	OutputToken int     `json:"output_tokens"`
	TotalTokens int     `json:"total_tokens"`
	CostUSD     float64 `json:"estimated_cost_usd"`
	At          string  `json:"at,omitempty"`
}

// TokenStatsResponse is the body of GET /api/stats: the global totals, the
// per-session totals map and a bounded list of recent records.
type TokenStatsResponse struct {
	Totals   TokenTotals            `json:"totals"`
	Sessions map[string]TokenTotals `json:"sessions"`
	Records  []TokenStatsRecord     `json:"records"`
}

// ClearStatsResponse is the body of POST /api/stats/clear.
type ClearStatsResponse struct {
	OK bool `json:"ok"`
}

// UsageSnapshot groups the three client-held usage scopes: the last finished
// run, the cumulative totals of the foreground session and the cumulative
// global totals. Cumulative scopes are replaced wholesale from
// backend-reported values, never summed locally.
type UsageSnapshot struct {
	LastRun TokenUsage
	Session TokenTotals
	Global  TokenTotals
}
