package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunXOR(t *testing.T) {
	var out strings.Builder
	require.NoError(t, runXOR(&out))

	got := out.String()
	assert.Contains(t, got, "Training XOR")
	assert.Contains(t, got, "Predictions:")
	// One line per truth-table row.
	assert.Equal(t, 4, strings.Count(got, "XOR"))
}

func TestRunLinreg(t *testing.T) {
	var out strings.Builder
	require.NoError(t, runLinreg(&out))

	got := out.String()
	assert.Contains(t, got, "Fitted line")
	// Converges to the least-squares answer; the printed slope rounds
	// to 2.04 and the intercept to 3.06 within a hundredth.
	assert.Regexp(t, `y = 2\.0[0-9]*·x \+ 3\.0[0-9]*`, got)
}
