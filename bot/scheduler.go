package bot

import (
	"log"

	"github.com/bwmarrin/discordgo"
	"github.com/robfig/cron/v3"

	"automaid/database"
	"automaid/sweeper"
)

var c *cron.Cron

// startScheduler starts the cron job driving the deletion sweeper.
func startScheduler(s *discordgo.Session, store *database.Store, interval string) {
	log.Println("Initializing scheduler...")
	c = cron.New()

	_, err := c.AddFunc(interval, func() {
		sweeper.Sweep(s, store)
	})
	if err != nil {
		log.Fatalf("Could not set up sweeper cron job: %v", err)
	}
	c.Start()
	log.Printf("Sweeper scheduled with interval %q.", interval)
}

// stopScheduler stops the cron jobs.
func stopScheduler() {
	if c != nil {
		c.Stop()
		log.Println("Scheduler stopped.")
	}
}
