// Package streak maintains the daily reading-streak counter.
//
// The update is deliberately two-phase: logging a reading session only
// records the date (RecordEvent), and the streak transition is applied on
// the next evaluation (EvaluateForToday), typically the next session load.
package streak

import (
	"log"
	"strconv"
	"time"

	"github.com/mrlokans/shelfstreak/internal/database"
	"github.com/mrlokans/shelfstreak/internal/entities"
)

// Tracker owns the persisted {streak_days, last_reading_date} pair.
type Tracker struct {
	db *database.Database
}

func NewTracker(db *database.Database) *Tracker {
	return &Tracker{db: db}
}

// State reads the persisted streak pair. Missing or malformed values
// degrade to the zero state.
func (t *Tracker) State() entities.StreakState {
	var state entities.StreakState

	if setting, err := t.db.GetSetting(entities.SettingKeyStreakDays); err == nil {
		if days, err := strconv.Atoi(setting.Value); err == nil && days >= 0 {
			state.StreakDays = days
		}
	}

	if setting, err := t.db.GetSetting(entities.SettingKeyLastReadingDate); err == nil {
		if ts, err := time.Parse(time.RFC3339, setting.Value); err == nil {
			state.LastReadingDate = &ts
		}
	}

	return state
}

// EvaluateForToday applies the streak state machine for the calendar day of
// now and persists the result. Same-day evaluation is idempotent, a one-day
// gap continues the streak, and a gap of two or more days breaks it back to
// zero. A future-dated last reading date (negative day diff, clock skew)
// leaves the stored state untouched.
func (t *Tracker) EvaluateForToday(now time.Time) int {
	state := t.State()

	if state.LastReadingDate == nil {
		t.saveStreak(0)
		return 0
	}

	diffDays := calendarDaysBetween(now, *state.LastReadingDate)
	switch {
	case diffDays < 0:
		return state.StreakDays
	case diffDays == 1:
		state.StreakDays = max(1, state.StreakDays+1)
	case diffDays > 1:
		state.StreakDays = 0
	}

	t.saveStreak(state.StreakDays)
	return state.StreakDays
}

// RecordEvent marks now as the most recent reading day. It never touches
// the counter; the next evaluation applies the transition.
func (t *Tracker) RecordEvent(now time.Time) {
	if err := t.db.SetSetting(entities.SettingKeyLastReadingDate, now.Format(time.RFC3339)); err != nil {
		log.Printf("WARNING: could not persist last reading date: %v", err)
	}
}

func (t *Tracker) saveStreak(days int) {
	if err := t.db.SetSetting(entities.SettingKeyStreakDays, strconv.Itoa(days)); err != nil {
		log.Printf("WARNING: could not persist streak counter: %v", err)
	}
}

// calendarDaysBetween counts whole UTC calendar days from last to now,
// ignoring the time-of-day components.
func calendarDaysBetween(now, last time.Time) int {
	nowUTC := now.UTC()
	lastUTC := last.UTC()
	a := time.Date(nowUTC.Year(), nowUTC.Month(), nowUTC.Day(), 0, 0, 0, 0, time.UTC)
	b := time.Date(lastUTC.Year(), lastUTC.Month(), lastUTC.Day(), 0, 0, 0, 0, time.UTC)
	return int(a.Sub(b).Hours() / 24)
}
