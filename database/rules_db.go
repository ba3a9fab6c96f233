package database

import (
	"database/sql"

	sq "github.com/Masterminds/squirrel"
	"github.com/pkg/errors"

	"automaid/models"
)

// GetCandidateRules returns every rule on the channel that applies to the
// given author: the channel's global rule plus the author-scoped rule, when
// present. Global rows are ordered first so resolution ties break towards
// the global rule deterministically.
func (s *Store) GetCandidateRules(channelID, authorID string) ([]models.Rule, error) {
	query := s.builder.
		Select("channel_id", "user_id", "timeout_seconds", "notice", "pattern").
		From("rules").
		Where(sq.And{
			sq.Eq{"channel_id": channelID},
			sq.Or{
				sq.Eq{"user_id": nil},
				sq.Eq{"user_id": authorID},
			},
		}).
		OrderBy("user_id IS NULL DESC")

	return s.selectRules(query)
}

// ListRules returns all rules on a channel, the global rule (if any) first.
func (s *Store) ListRules(channelID string) ([]models.Rule, error) {
	query := s.builder.
		Select("channel_id", "user_id", "timeout_seconds", "notice", "pattern").
		From("rules").
		Where(sq.Eq{"channel_id": channelID}).
		OrderBy("user_id IS NULL DESC")

	return s.selectRules(query)
}

// ReplaceRule writes a rule for its (channel, user-or-global) key, replacing
// any prior rule for that key. Delete-then-insert rather than an upsert:
// sqlite unique indexes treat NULL user_ids as distinct rows, so a global
// rule would otherwise accumulate duplicates.
func (s *Store) ReplaceRule(rule models.Rule) error {
	if err := s.DeleteRule(rule.ChannelID, rule.UserID); err != nil {
		return err
	}

	query := s.builder.
		Insert("rules").
		Columns("channel_id", "user_id", "timeout_seconds", "notice", "pattern").
		Values(rule.ChannelID, nullable(rule.UserID), rule.TimeoutSeconds,
			nullable(rule.Notice), nullable(rule.Pattern))

	if _, err := query.RunWith(s.db).Exec(); err != nil {
		return errors.Wrapf(err, "failed to insert rule for channel %s", rule.ChannelID)
	}
	return nil
}

// DeleteRule removes the rule for (channel, user); an empty userID targets
// the channel's global rule. Removing a rule never touches jobs already
// queued under it.
func (s *Store) DeleteRule(channelID, userID string) error {
	query := s.builder.
		Delete("rules").
		Where(sq.Eq{"channel_id": channelID, "user_id": nullable(userID)})

	if _, err := query.RunWith(s.db).Exec(); err != nil {
		return errors.Wrapf(err, "failed to delete rule for channel %s", channelID)
	}
	return nil
}

func (s *Store) selectRules(query sq.SelectBuilder) ([]models.Rule, error) {
	rows, err := query.RunWith(s.db).Query()
	if err != nil {
		return nil, errors.Wrap(err, "failed to query rules")
	}
	defer rows.Close()

	var rules []models.Rule
	for rows.Next() {
		var rule models.Rule
		var userID, notice, pattern sql.NullString
		if err := rows.Scan(&rule.ChannelID, &userID, &rule.TimeoutSeconds, &notice, &pattern); err != nil {
			return nil, errors.Wrap(err, "failed to scan rule")
		}
		rule.UserID = userID.String
		rule.Notice = notice.String
		rule.Pattern = pattern.String
		rules = append(rules, rule)
	}
	return rules, rows.Err()
}

// nullable maps the empty string to NULL so global rules and absent
// notices/patterns are stored as NULL rather than as empty text.
func nullable(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}
