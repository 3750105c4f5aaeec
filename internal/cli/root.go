package cli

import (
	"fmt"
	"strings"

	"zikirmatik/internal/reminder"
	"zikirmatik/internal/storage"
	"zikirmatik/internal/streak"
	"zikirmatik/internal/widget"
	"zikirmatik/internal/zikr"
)

// Context carries the assembled application, shared by every command.
type Context struct {
	Provider    storage.Provider
	Backend     *storage.Backend
	Zikr        *zikr.Store
	Streak      *streak.Tracker
	Reminders   *reminder.Scheduler
	SpecialDays *reminder.SpecialDayPlanner
	Widget      *widget.Bridge

	loaded bool
}

// Load opens the provider and hydrates every subsystem. Commands call it
// first; repeated calls are no-ops so command chaining stays cheap.
func (ctx *Context) Load() error {
	if ctx.loaded {
		return nil
	}
	if err := ctx.Provider.Load(); err != nil {
		return err
	}
	if err := ctx.Zikr.Load(); err != nil {
		return err
	}
	if err := ctx.Streak.Load(); err != nil {
		return err
	}
	if err := ctx.Reminders.Load(); err != nil {
		return err
	}
	// Fired one-shots are cleaned up opportunistically on every run.
	ctx.Reminders.ReapDelivered()

	ctx.loaded = true
	return nil
}

// progressBar renders a simple text gauge: [████████░░░░] style.
func progressBar(count, target, width int) string {
	if target <= 0 || width <= 0 {
		return ""
	}
	filled := count * width / target
	if filled > width {
		filled = width
	}
	return "[" + strings.Repeat("█", filled) + strings.Repeat("░", width-filled) + "]"
}

// formatCount renders a count the way the counter screen does, padded to
// five digits.
func formatCount(count int) string {
	return fmt.Sprintf("%05d", count)
}
