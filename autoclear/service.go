package autoclear

import (
	"time"

	"github.com/pkg/errors"

	"automaid/models"
)

// Store is the persistence capability the autoclear logic runs against.
// The sqlite implementation lives in the database package; tests substitute
// an in-memory fake.
type Store interface {
	GetCandidateRules(channelID, authorID string) ([]models.Rule, error)
	ListRules(channelID string) ([]models.Rule, error)
	ReplaceRule(rule models.Rule) error
	DeleteRule(channelID, userID string) error
	EnqueueJob(job models.DeletionJob) error
	DeleteJobsForMessages(channelID string, messageIDs []string) error
}

// Autoclear evaluates messages against the rule store and maintains the
// deferred-deletion queue.
type Autoclear struct {
	store        Store
	noticeOnBots bool
}

// New creates an Autoclear service over the given store. noticeOnBots
// controls whether deletion notices are carried for bot-authored messages.
func New(store Store, noticeOnBots bool) *Autoclear {
	return &Autoclear{store: store, noticeOnBots: noticeOnBots}
}

// Message carries the fields of an incoming message the evaluation pipeline
// needs. AuthorID must be the effective author: for webhook-authored
// messages, the webhook's owning user.
type Message struct {
	ChannelID    string
	MessageID    string
	AuthorID     string
	AuthorIsBot  bool
	AuthorIsSelf bool
	Content      string
	CreatedAt    time.Time
}

// Evaluate runs the per-message pipeline: resolve the winning rule, gate on
// its content filter, and enqueue one deferred-deletion job. It returns the
// job that was queued, or nil when the message is left alone. Any error
// aborts this message's processing only; nothing is queued on failure.
func (a *Autoclear) Evaluate(msg Message) (*models.DeletionJob, error) {
	rule, err := a.Resolve(msg.ChannelID, msg.AuthorID)
	if err != nil {
		return nil, err
	}
	if rule == nil {
		return nil, nil
	}

	if !Passes(rule, msg.Content) {
		return nil, nil
	}

	job := models.DeletionJob{
		ChannelID: msg.ChannelID,
		MessageID: msg.MessageID,
		FireAt:    msg.CreatedAt.Add(time.Duration(rule.TimeoutSeconds) * time.Second).Unix(),
		Notice:    a.noticeFor(rule, msg),
	}
	if err := a.store.EnqueueJob(job); err != nil {
		return nil, errors.Wrap(err, "failed to enqueue deletion job")
	}
	return &job, nil
}

// noticeFor determines the notice text stored with a job. The notice is
// suppressed when the author is this bot itself, and for other bots unless
// bot notices are enabled.
func (a *Autoclear) noticeFor(rule *models.Rule, msg Message) string {
	if msg.AuthorIsSelf {
		return ""
	}
	if msg.AuthorIsBot && !a.noticeOnBots {
		return ""
	}
	return rule.Notice
}

// RetractPinned cancels the queued deletions for every message in the
// channel's current pinned set. A pinned message is presumed intentionally
// preserved, however much of its timeout has elapsed.
func (a *Autoclear) RetractPinned(channelID string, pinnedIDs []string) error {
	if len(pinnedIDs) == 0 {
		return nil
	}
	if err := a.store.DeleteJobsForMessages(channelID, pinnedIDs); err != nil {
		return errors.Wrap(err, "failed to retract jobs for pinned messages")
	}
	return nil
}
