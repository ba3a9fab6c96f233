package database

import (
	"testing"

	"github.com/stretchr/testify/require"

	"automaid/models"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestReplaceRule(t *testing.T) {
	t.Run("global-rule-has-one-row-after-repeated-writes", func(t *testing.T) {
		store := openTestStore(t)

		rule := models.Rule{ChannelID: "chan1", TimeoutSeconds: 10}
		require.NoError(t, store.ReplaceRule(rule))
		rule.TimeoutSeconds = 20
		require.NoError(t, store.ReplaceRule(rule))

		rules, err := store.ListRules("chan1")
		require.NoError(t, err)
		require.Len(t, rules, 1)
		require.EqualValues(t, 20, rules[0].TimeoutSeconds)
		require.True(t, rules[0].Global())
	})

	t.Run("user-rule-replaces-only-its-own-key", func(t *testing.T) {
		store := openTestStore(t)

		require.NoError(t, store.ReplaceRule(models.Rule{ChannelID: "chan1", TimeoutSeconds: 10}))
		require.NoError(t, store.ReplaceRule(models.Rule{ChannelID: "chan1", UserID: "user1", TimeoutSeconds: 5}))
		require.NoError(t, store.ReplaceRule(models.Rule{ChannelID: "chan1", UserID: "user1", TimeoutSeconds: 7}))

		rules, err := store.ListRules("chan1")
		require.NoError(t, err)
		require.Len(t, rules, 2)
		require.True(t, rules[0].Global())
		require.EqualValues(t, 10, rules[0].TimeoutSeconds)
		require.Equal(t, "user1", rules[1].UserID)
		require.EqualValues(t, 7, rules[1].TimeoutSeconds)
	})

	t.Run("optional-fields-round-trip-as-empty", func(t *testing.T) {
		store := openTestStore(t)

		require.NoError(t, store.ReplaceRule(models.Rule{
			ChannelID:      "chan1",
			TimeoutSeconds: 10,
			Notice:         "bye",
			Pattern:        "https?://",
		}))
		require.NoError(t, store.ReplaceRule(models.Rule{ChannelID: "chan2", TimeoutSeconds: 3}))

		rules, err := store.ListRules("chan1")
		require.NoError(t, err)
		require.Len(t, rules, 1)
		require.Equal(t, "bye", rules[0].Notice)
		require.Equal(t, "https?://", rules[0].Pattern)

		rules, err = store.ListRules("chan2")
		require.NoError(t, err)
		require.Len(t, rules, 1)
		require.Empty(t, rules[0].Notice)
		require.Empty(t, rules[0].Pattern)
	})
}

func TestGetCandidateRules(t *testing.T) {
	store := openTestStore(t)

	require.NoError(t, store.ReplaceRule(models.Rule{ChannelID: "chan1", TimeoutSeconds: 10}))
	require.NoError(t, store.ReplaceRule(models.Rule{ChannelID: "chan1", UserID: "user1", TimeoutSeconds: 5}))
	require.NoError(t, store.ReplaceRule(models.Rule{ChannelID: "chan1", UserID: "user2", TimeoutSeconds: 7}))
	require.NoError(t, store.ReplaceRule(models.Rule{ChannelID: "chan2", TimeoutSeconds: 1}))

	t.Run("global-plus-own-rule", func(t *testing.T) {
		rules, err := store.GetCandidateRules("chan1", "user1")
		require.NoError(t, err)
		require.Len(t, rules, 2)
		// Global row first so tie-breaks are deterministic.
		require.True(t, rules[0].Global())
		require.Equal(t, "user1", rules[1].UserID)
	})

	t.Run("global-only-for-unscoped-author", func(t *testing.T) {
		rules, err := store.GetCandidateRules("chan1", "user9")
		require.NoError(t, err)
		require.Len(t, rules, 1)
		require.True(t, rules[0].Global())
	})

	t.Run("nothing-on-unconfigured-channel", func(t *testing.T) {
		rules, err := store.GetCandidateRules("chan3", "user1")
		require.NoError(t, err)
		require.Empty(t, rules)
	})
}

func TestDeleteRule(t *testing.T) {
	store := openTestStore(t)

	require.NoError(t, store.ReplaceRule(models.Rule{ChannelID: "chan1", TimeoutSeconds: 10}))
	require.NoError(t, store.ReplaceRule(models.Rule{ChannelID: "chan1", UserID: "user1", TimeoutSeconds: 5}))

	t.Run("deleting-global-keeps-user-rules", func(t *testing.T) {
		require.NoError(t, store.DeleteRule("chan1", ""))

		rules, err := store.ListRules("chan1")
		require.NoError(t, err)
		require.Len(t, rules, 1)
		require.Equal(t, "user1", rules[0].UserID)
	})

	t.Run("deleting-a-user-rule", func(t *testing.T) {
		require.NoError(t, store.DeleteRule("chan1", "user1"))

		rules, err := store.ListRules("chan1")
		require.NoError(t, err)
		require.Empty(t, rules)
	})

	t.Run("deleting-a-missing-rule-is-not-an-error", func(t *testing.T) {
		require.NoError(t, store.DeleteRule("chan1", "user9"))
	})
}
