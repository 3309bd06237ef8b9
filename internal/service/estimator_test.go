package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenEstimator_EmptyText(t *testing.T) {
	e := &TokenEstimator{}
	assert.Zero(t, e.Estimate(""))
}

func TestTokenEstimator_HeuristicFallback(t *testing.T) {
	// Without a loaded encoding the estimator falls back to bytes/4.
	e := &TokenEstimator{}

	assert.Equal(t, 1, e.Estimate("abc"))
	assert.Equal(t, 3, e.Estimate("twelve chars"))
}
