// Package streak maintains the consecutive-day completion counter. The
// transition works on local calendar dates, never elapsed time: completing
// a goal at 23:59 and the next at 00:01 the following day still counts as
// two consecutive days, and DST shifts cannot split a streak.
package streak

import (
	"sync"
	"time"

	"zikirmatik/internal/constants"
	"zikirmatik/internal/models"
	"zikirmatik/internal/storage"
	"zikirmatik/internal/utils"
)

// Tracker owns the streak state machine.
type Tracker struct {
	mu      sync.Mutex
	state   models.StreakState
	backend *storage.Backend
	now     func() time.Time
}

func NewTracker(backend *storage.Backend) *Tracker {
	return &Tracker{
		backend: backend,
		now:     time.Now,
	}
}

// Load hydrates the tracker from storage. A corrupt or invalid blob
// falls back to the empty streak rather than failing startup.
func (t *Tracker) Load() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	var stored models.StreakState
	found, err := t.backend.GetJSON(constants.KeyStreak, &stored)
	if err != nil {
		t.state = models.DefaultStreakState()
		return err
	}
	if !found || !stored.Valid() {
		t.state = models.DefaultStreakState()
		return nil
	}
	t.state = stored
	return nil
}

// State returns a copy of the current streak state.
func (t *Tracker) State() models.StreakState {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.state
}

// IsTodayCompleted reports whether the daily goal was already counted today.
func (t *Tracker) IsTodayCompleted() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.state.LastCompletedDate == utils.Today(t.now())
}

// OnDailyGoalCompleted records that today's goal was met. Idempotent per
// calendar day: the second call on the same date is a no-op.
func (t *Tracker) OnDailyGoalCompleted() models.StreakState {
	t.mu.Lock()
	defer t.mu.Unlock()

	today := utils.Today(t.now())
	prev := t.state

	switch {
	case prev.LastCompletedDate == "":
		t.state = models.StreakState{
			CurrentStreak:     1,
			LongestStreak:     max(prev.LongestStreak, 1),
			LastCompletedDate: today,
		}
	case prev.LastCompletedDate == today:
		return prev
	case utils.IsYesterday(prev.LastCompletedDate, today):
		current := prev.CurrentStreak + 1
		t.state = models.StreakState{
			CurrentStreak:     current,
			LongestStreak:     max(prev.LongestStreak, current),
			LastCompletedDate: today,
		}
	default:
		// Missed at least one day
		t.state = models.StreakState{
			CurrentStreak:     1,
			LongestStreak:     max(prev.LongestStreak, 1),
			LastCompletedDate: today,
		}
	}

	t.backend.PutJSON(constants.KeyStreak, t.state)
	return t.state
}

// Reset clears the streak entirely.
func (t *Tracker) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.state = models.DefaultStreakState()
	t.backend.Remove(constants.KeyStreak)
}

// SetNow overrides the clock for tests.
func (t *Tracker) SetNow(now func() time.Time) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.now = now
}
