package models

// StreakState tracks consecutive daily-goal completions. LastCompletedDate
// is a local YYYY-MM-DD string or empty when no goal was ever completed.
type StreakState struct {
	CurrentStreak     int    `json:"current_streak"`
	LongestStreak     int    `json:"longest_streak"`
	LastCompletedDate string `json:"last_completed_date,omitempty"`
}

// DefaultStreakState returns the empty streak.
func DefaultStreakState() StreakState {
	return StreakState{}
}

// Valid reports whether a persisted state holds the invariants; corrupt
// blobs fall back to the default rather than erroring.
func (s StreakState) Valid() bool {
	return s.CurrentStreak >= 0 && s.LongestStreak >= s.CurrentStreak
}
