package handlers

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseMentions(t *testing.T) {
	t.Run("plain-and-nickname-mentions", func(t *testing.T) {
		ids := parseMentions("<@111> some text <@!222>")
		require.Equal(t, []string{"111", "222"}, ids)
	})

	t.Run("no-mentions", func(t *testing.T) {
		require.Empty(t, parseMentions("just words"))
	})

	t.Run("role-and-channel-mentions-are-ignored", func(t *testing.T) {
		require.Empty(t, parseMentions("<@&333> <#444>"))
	})
}
