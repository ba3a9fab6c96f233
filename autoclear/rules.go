package autoclear

import (
	"github.com/pkg/errors"

	"automaid/models"
)

// DefaultTimeoutSeconds applies when a start command gives no timeout.
const DefaultTimeoutSeconds = 10

// StartOptions describes one start command after argument parsing.
type StartOptions struct {
	ChannelID      string
	UserIDs        []string // empty = write the channel's global rule
	TimeoutSeconds int64
	Notice         string
	Pattern        string
}

// Start writes autoclear rules. With no user mentions a single global rule
// is written for the channel; with mentions, one rule per mentioned user,
// each replacing any prior rule for that user and leaving the global rule
// untouched. The pattern is validated before any row is written, so a
// rejected command leaves no partial rule behind.
func (a *Autoclear) Start(opts StartOptions) error {
	if opts.TimeoutSeconds < 0 {
		return errors.New("timeout must not be negative")
	}
	if opts.Pattern != "" {
		if err := ValidatePattern(opts.Pattern); err != nil {
			return err
		}
	}

	rule := models.Rule{
		ChannelID:      opts.ChannelID,
		TimeoutSeconds: opts.TimeoutSeconds,
		Notice:         opts.Notice,
		Pattern:        opts.Pattern,
	}

	if len(opts.UserIDs) == 0 {
		return a.store.ReplaceRule(rule)
	}
	for _, userID := range opts.UserIDs {
		rule.UserID = userID
		if err := a.store.ReplaceRule(rule); err != nil {
			return err
		}
	}
	return nil
}

// Stop deletes the channel's global rule when no users are given, else the
// rule for each given user. Jobs already queued under a deleted rule are
// left to run; only the pin guard retracts queued jobs.
func (a *Autoclear) Stop(channelID string, userIDs []string) error {
	if len(userIDs) == 0 {
		return a.store.DeleteRule(channelID, "")
	}
	for _, userID := range userIDs {
		if err := a.store.DeleteRule(channelID, userID); err != nil {
			return err
		}
	}
	return nil
}

// Rules returns the channel's rules for display, the global rule (if any)
// ordered first.
func (a *Autoclear) Rules(channelID string) ([]models.Rule, error) {
	return a.store.ListRules(channelID)
}
