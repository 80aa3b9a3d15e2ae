// Package scheduler re-evaluates the reading streak at day rollover so a
// long-lived scan session crossing midnight keeps showing the right count.
package scheduler

import (
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/mrlokans/shelfstreak/internal/streak"
)

// DefaultSchedule fires once at midnight.
const DefaultSchedule = "0 0 * * *"

// StreakRefresher runs Tracker.EvaluateForToday on a cron schedule.
type StreakRefresher struct {
	tracker  *streak.Tracker
	schedule string

	cron      *cron.Cron
	entryID   cron.EntryID
	mu        sync.Mutex
	isRunning bool
}

func NewStreakRefresher(tracker *streak.Tracker, schedule string) *StreakRefresher {
	if schedule == "" {
		schedule = DefaultSchedule
	}
	return &StreakRefresher{
		tracker:  tracker,
		schedule: schedule,
		cron:     cron.New(cron.WithParser(cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow))),
	}
}

// Start begins the scheduler. Calling Start on a running refresher is a
// no-op.
func (s *StreakRefresher) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isRunning {
		return nil
	}

	entryID, err := s.cron.AddFunc(s.schedule, func() {
		days := s.tracker.EvaluateForToday(time.Now())
		log.Printf("Streak refresher: re-evaluated streak at day rollover, now %d days", days)
	})
	if err != nil {
		return fmt.Errorf("failed to schedule streak refresh: %w", err)
	}
	s.entryID = entryID

	s.cron.Start()
	s.isRunning = true
	log.Printf("Streak refresher: started with schedule '%s'", s.schedule)
	return nil
}

// Stop gracefully stops the scheduler.
func (s *StreakRefresher) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.isRunning {
		return
	}

	s.cron.Remove(s.entryID)
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.isRunning = false
	log.Printf("Streak refresher: stopped")
}
