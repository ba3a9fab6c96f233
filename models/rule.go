package models

// Rule represents one autoclear policy row. A rule is scoped to a channel
// and optionally to a single user; an empty UserID means the rule is global
// to the channel and applies to every author.
type Rule struct {
	ChannelID      string `json:"channel_id"`
	UserID         string `json:"user_id"`         // empty = global rule (stored as NULL)
	TimeoutSeconds int64  `json:"timeout_seconds"` // delay between message creation and deletion
	Notice         string `json:"notice"`          // empty = no notice (stored as NULL)
	Pattern        string `json:"pattern"`         // empty = no content filter (stored as NULL)
}

// Global reports whether the rule applies to all authors in its channel.
func (r Rule) Global() bool {
	return r.UserID == ""
}

// DeletionJob represents a scheduled message deletion. Rows are consumed by
// the sweeper when they come due, or retracted by the pin guard if the
// target message is pinned first.
type DeletionJob struct {
	ChannelID string `json:"channel_id"`
	MessageID string `json:"message_id"`
	FireAt    int64  `json:"fire_at"` // unix seconds
	Notice    string `json:"notice"`  // copied from the winning rule at evaluation time
}
