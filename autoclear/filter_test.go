package autoclear_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"automaid/autoclear"
	"automaid/models"
)

func TestPasses(t *testing.T) {
	t.Run("no-pattern-always-passes", func(t *testing.T) {
		rule := &models.Rule{ChannelID: "chan1", TimeoutSeconds: 10}
		require.True(t, autoclear.Passes(rule, "anything at all"))
		require.True(t, autoclear.Passes(rule, ""))
	})

	t.Run("substring-match-not-anchored", func(t *testing.T) {
		rule := &models.Rule{ChannelID: "chan1", Pattern: "https?://"}
		require.False(t, autoclear.Passes(rule, "hello world"))
		require.True(t, autoclear.Passes(rule, "see https://x"))
		require.True(t, autoclear.Passes(rule, "http:// in the middle of text"))
	})

	t.Run("malformed-pattern-is-a-non-match", func(t *testing.T) {
		rule := &models.Rule{ChannelID: "chan1", Pattern: "(unclosed"}
		require.False(t, autoclear.Passes(rule, "(unclosed"))
	})

	t.Run("oversized-pattern-is-a-non-match", func(t *testing.T) {
		rule := &models.Rule{ChannelID: "chan1", Pattern: strings.Repeat("a", autoclear.MaxPatternLength+1)}
		require.False(t, autoclear.Passes(rule, strings.Repeat("a", 100)))
	})
}

func TestValidatePattern(t *testing.T) {
	t.Run("accepts-simple-patterns", func(t *testing.T) {
		require.NoError(t, autoclear.ValidatePattern("https?://"))
		require.NoError(t, autoclear.ValidatePattern("^[0-9]+$"))
		require.NoError(t, autoclear.ValidatePattern(strings.Repeat("a", autoclear.MaxPatternLength)))
	})

	t.Run("rejects-source-over-limit", func(t *testing.T) {
		err := autoclear.ValidatePattern(strings.Repeat("a", autoclear.MaxPatternLength+1))
		require.ErrorIs(t, err, autoclear.ErrPatternTooLong)
	})

	t.Run("rejects-malformed-source", func(t *testing.T) {
		require.Error(t, autoclear.ValidatePattern("(unclosed"))
		require.Error(t, autoclear.ValidatePattern("a{2,1}"))
	})

	t.Run("rejects-program-over-budget", func(t *testing.T) {
		// Counted repetitions push the compiled program past the
		// instruction budget while staying under 64 source bytes.
		err := autoclear.ValidatePattern("a{900}b{900}c{900}d{900}e{900}")
		require.ErrorIs(t, err, autoclear.ErrPatternTooComplex)
	})
}
