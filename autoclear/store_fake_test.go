package autoclear_test

import (
	"github.com/pkg/errors"

	"automaid/models"
)

var errFake = errors.New("store unreachable")

// fakeStore is an in-memory stand-in for the sqlite store, preserving its
// observable behavior: global rows first among candidates, replace-by-key
// rule writes, at most one job per message.
type fakeStore struct {
	rules []models.Rule
	jobs  []models.DeletionJob
	err   error
}

func (f *fakeStore) GetCandidateRules(channelID, authorID string) ([]models.Rule, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []models.Rule
	for _, r := range f.rules {
		if r.ChannelID == channelID && r.Global() {
			out = append(out, r)
		}
	}
	for _, r := range f.rules {
		if r.ChannelID == channelID && r.UserID == authorID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeStore) ListRules(channelID string) ([]models.Rule, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []models.Rule
	for _, r := range f.rules {
		if r.ChannelID == channelID && r.Global() {
			out = append(out, r)
		}
	}
	for _, r := range f.rules {
		if r.ChannelID == channelID && !r.Global() {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeStore) ReplaceRule(rule models.Rule) error {
	if f.err != nil {
		return f.err
	}
	if err := f.DeleteRule(rule.ChannelID, rule.UserID); err != nil {
		return err
	}
	f.rules = append(f.rules, rule)
	return nil
}

func (f *fakeStore) DeleteRule(channelID, userID string) error {
	if f.err != nil {
		return f.err
	}
	kept := f.rules[:0]
	for _, r := range f.rules {
		if r.ChannelID == channelID && r.UserID == userID {
			continue
		}
		kept = append(kept, r)
	}
	f.rules = kept
	return nil
}

func (f *fakeStore) EnqueueJob(job models.DeletionJob) error {
	if f.err != nil {
		return f.err
	}
	for i, existing := range f.jobs {
		if existing.MessageID == job.MessageID {
			f.jobs[i] = job
			return nil
		}
	}
	f.jobs = append(f.jobs, job)
	return nil
}

func (f *fakeStore) DeleteJobsForMessages(channelID string, messageIDs []string) error {
	if f.err != nil {
		return f.err
	}
	targets := make(map[string]bool, len(messageIDs))
	for _, id := range messageIDs {
		targets[id] = true
	}
	kept := f.jobs[:0]
	for _, job := range f.jobs {
		if job.ChannelID == channelID && targets[job.MessageID] {
			continue
		}
		kept = append(kept, job)
	}
	f.jobs = kept
	return nil
}
