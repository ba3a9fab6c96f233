package autoclear

import (
	"github.com/pkg/errors"

	"automaid/models"
)

// Resolve picks the single rule applying to a message by the given author in
// the given channel: among the channel's global rule and the author-scoped
// rule, the one with the minimum timeout wins. A user-scoped rule takes
// precedence only by having the smaller timeout; resolution is a numeric
// comparison, not a priority hierarchy. Returns nil when no rule applies.
func (a *Autoclear) Resolve(channelID, authorID string) (*models.Rule, error) {
	candidates, err := a.store.GetCandidateRules(channelID, authorID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load rules")
	}
	if len(candidates) == 0 {
		return nil, nil
	}

	winner := candidates[0]
	for _, rule := range candidates[1:] {
		if rule.TimeoutSeconds < winner.TimeoutSeconds {
			winner = rule
		}
	}
	return &winner, nil
}
