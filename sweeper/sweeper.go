// Package sweeper drains the deferred-deletion queue: each run scans the
// jobs that have come due, deletes their target messages through the
// platform API, posts the stored notice when one was recorded, and removes
// the consumed rows.
package sweeper

import (
	"log"
	"time"

	"github.com/bwmarrin/discordgo"

	"automaid/models"
)

// Queue is the slice of the store the sweeper consumes.
type Queue interface {
	DueJobs(now time.Time) ([]models.DeletionJob, error)
	DeleteJob(messageID string) error
}

// Sweep runs one pass over the due jobs. A job's row is consumed whether or
// not the platform delete succeeds: a message already removed by hand, or a
// channel the bot has since lost access to, must not clog the queue. Errors
// are scoped to the single job being handled.
func Sweep(s *discordgo.Session, q Queue) {
	jobs, err := q.DueJobs(time.Now())
	if err != nil {
		log.Printf("Error querying due deletion jobs: %v", err)
		return
	}

	for _, job := range jobs {
		if err := s.ChannelMessageDelete(job.ChannelID, job.MessageID); err != nil {
			log.Printf("Error deleting message %s in channel %s: %v", job.MessageID, job.ChannelID, err)
		} else if job.Notice != "" {
			if _, err := s.ChannelMessageSend(job.ChannelID, job.Notice); err != nil {
				log.Printf("Error posting deletion notice in channel %s: %v", job.ChannelID, err)
			}
		}

		if err := q.DeleteJob(job.MessageID); err != nil {
			log.Printf("Error removing consumed job for message %s: %v", job.MessageID, err)
		}
	}

	if len(jobs) > 0 {
		log.Printf("Sweeper consumed %d due deletion jobs", len(jobs))
	}
}
