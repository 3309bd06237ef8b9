package service

import (
	"github.com/pkoukk/tiktoken-go"
)

// TokenEstimator gives a rough input-token count for the compose box. The
// estimate is advisory: the backend does the authoritative accounting.
type TokenEstimator struct {
	enc *tiktoken.Tiktoken
}

// NewTokenEstimator builds an estimator for model, falling back to the
// cl100k_base encoding when the model is unknown to the token tables, and to
// a bytes/4 heuristic when no encoding can be loaded at all.
func NewTokenEstimator(model string) *TokenEstimator {
	enc, err := tiktoken.EncodingForModel(model)
	if err != nil {
		enc, err = tiktoken.GetEncoding("cl100k_base")
		if err != nil {
			return &TokenEstimator{}
		}
	}
	return &TokenEstimator{enc: enc}
}

// Estimate returns the approximate token count of text.
func (e *TokenEstimator) Estimate(text string) int {
	if text == "" {
		return 0
	}
	if e.enc == nil {
		return (len(text) + 3) / 4
	}
	return len(e.enc.Encode(text, nil, nil))
}
