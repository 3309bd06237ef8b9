// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// ToolEvent describes a single tool invocation performed by the backend agent
// during a run.
type ToolEvent struct {
	Name          string         `json:"name"`
	Input         map[string]any `json:"input,omitempty"`
	OutputPreview string         `json:"output_preview"`
}

// DebugFlowItem is one step of the backend's internal decision flow, emitted
// only when ChatSettings.DebugRaw is set.
type DebugFlowItem struct {
	Step   int    `json:"step"`
	Stage  string `json:"stage"`
	Title  string `json:"title"`
	Detail string `json:"detail"`
}

// TokenUsage is the last-run usage scope reported by the backend. The pricing
// fields are populated only when the effective model matched the backend
// price table (PricingKnown).
type TokenUsage struct {
	InputTokens      int     `json:"input_tokens"`
	OutputTokens     int     `json:"output_tokens"`
	TotalTokens      int     `json:"total_tokens"`
	LLMCalls         int     `json:"llm_calls"`
	EstimatedCostUSD float64 `json:"estimated_cost_usd"`
	PricingKnown     bool    `json:"pricing_known"`
	PricingModel     string  `json:"pricing_model,omitempty"`
	InputPricePer1M  float64 `json:"input_price_per_1m,omitempty"`
	OutputPricePer1M float64 `json:"output_price_per_1m,omitempty"`
}

// TokenTotals is a cumulative usage scope (per session or global). Values are
// always backend-authoritative; the client never sums them locally.
type TokenTotals struct {
	Requests         int     `json:"requests"`
	InputTokens      int     `json:"input_tokens"`
	OutputTokens     int     `json:"output_tokens"`
	TotalTokens      int     `json:"total_tokens"`
	EstimatedCostUSD float64 `json:"estimated_cost_usd"`
}

// ChatResponse is the final result payload of a run, delivered either as the
// body of POST /api/chat or inside the `final` frame of the event stream.
type ChatResponse struct {
	SessionID            string          `json:"session_id"`
	RunID                string          `json:"run_id,omitempty"`
	EffectiveModel       string          `json:"effective_model,omitempty"`
	QueueWaitMS          int             `json:"queue_wait_ms"`
	Text                 string          `json:"text"`
	ToolEvents           []ToolEvent     `json:"tool_events"`
	ExecutionPlan        []string        `json:"execution_plan"`
	ExecutionTrace       []string        `json:"execution_trace"`
	DebugFlow            []DebugFlowItem `json:"debug_flow"`
	MissingAttachmentIDs []string        `json:"missing_attachment_ids"`
	TokenUsage           TokenUsage      `json:"token_usage"`
	SessionTokenTotals   TokenTotals     `json:"session_token_totals"`
	GlobalTokenTotals    TokenTotals     `json:"global_token_totals"`
	TurnCount            int             `json:"turn_count"`
	Summarized           bool            `json:"summarized"`
}
