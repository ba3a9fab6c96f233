package database

import (
	"database/sql"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/pkg/errors"

	"automaid/models"
)

// EnqueueJob records one deferred deletion. The evaluation pipeline writes
// at most one job per message; a job for a message the queue already holds
// replaces the stale row rather than failing on the primary key.
func (s *Store) EnqueueJob(job models.DeletionJob) error {
	query := s.builder.
		Insert("deletion_jobs").
		Options("OR REPLACE").
		Columns("channel_id", "message_id", "fire_at", "notice").
		Values(job.ChannelID, job.MessageID, job.FireAt, nullable(job.Notice))

	if _, err := query.RunWith(s.db).Exec(); err != nil {
		return errors.Wrapf(err, "failed to enqueue deletion job for message %s", job.MessageID)
	}
	return nil
}

// DueJobs returns every job whose fire time has passed, soonest first.
func (s *Store) DueJobs(now time.Time) ([]models.DeletionJob, error) {
	query := s.builder.
		Select("channel_id", "message_id", "fire_at", "notice").
		From("deletion_jobs").
		Where(sq.LtOrEq{"fire_at": now.Unix()}).
		OrderBy("fire_at ASC")

	rows, err := query.RunWith(s.db).Query()
	if err != nil {
		return nil, errors.Wrap(err, "failed to query due jobs")
	}
	defer rows.Close()

	var jobs []models.DeletionJob
	for rows.Next() {
		var job models.DeletionJob
		var notice sql.NullString
		if err := rows.Scan(&job.ChannelID, &job.MessageID, &job.FireAt, &notice); err != nil {
			return nil, errors.Wrap(err, "failed to scan deletion job")
		}
		job.Notice = notice.String
		jobs = append(jobs, job)
	}
	return jobs, rows.Err()
}

// DeleteJob removes a single job row after the sweeper has consumed it.
func (s *Store) DeleteJob(messageID string) error {
	query := s.builder.
		Delete("deletion_jobs").
		Where(sq.Eq{"message_id": messageID})

	if _, err := query.RunWith(s.db).Exec(); err != nil {
		return errors.Wrapf(err, "failed to delete job for message %s", messageID)
	}
	return nil
}

// DeleteJobsForMessages retracts the jobs queued in a channel for the given
// message set. Jobs for other messages in the channel are untouched.
func (s *Store) DeleteJobsForMessages(channelID string, messageIDs []string) error {
	if len(messageIDs) == 0 {
		return nil
	}

	query := s.builder.
		Delete("deletion_jobs").
		Where(sq.Eq{"channel_id": channelID, "message_id": messageIDs})

	if _, err := query.RunWith(s.db).Exec(); err != nil {
		return errors.Wrapf(err, "failed to retract jobs for channel %s", channelID)
	}
	return nil
}
