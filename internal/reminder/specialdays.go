package reminder

import (
	"fmt"
	"sort"
	"time"

	"zikirmatik/internal/constants"
	"zikirmatik/internal/logger"
	"zikirmatik/internal/models"
	"zikirmatik/internal/notify"
	"zikirmatik/internal/registry"
	"zikirmatik/internal/storage"
	"zikirmatik/internal/utils"
)

const dataKeySpecialDay = "specialDay"

const (
	slotMorning = "morning"
	slotEvening = "evening"
)

// SpecialDayPlanner keeps two notifications registered for every
// upcoming special day: a morning heads-up and an evening nudge. Handles
// are persisted per date and per slot so repeated syncs never
// double-schedule, even mid-day when one slot has already passed.
type SpecialDayPlanner struct {
	backend  *storage.Backend
	notifier notify.Scheduler
	now      func() time.Time
}

func NewSpecialDayPlanner(backend *storage.Backend, notifier notify.Scheduler) *SpecialDayPlanner {
	return &SpecialDayPlanner{
		backend:  backend,
		notifier: notifier,
		now:      time.Now,
	}
}

// Sync reconciles the stored handle map with the calendar: schedules
// missing notifications for future special days, drops entries for dates
// that have passed, and prunes handles the external scheduler no longer
// knows about. Returns how many notifications were newly scheduled.
func (p *SpecialDayPlanner) Sync() (int, error) {
	if err := p.checkPermission(); err != nil {
		return 0, err
	}

	scheduled := map[string]map[string]string{}
	if _, err := p.backend.GetJSON(constants.KeySpecialDayNotif, &scheduled); err != nil {
		return 0, err
	}

	pending := map[string]bool{}
	ids, err := p.notifier.ListScheduled()
	if err != nil {
		return 0, fmt.Errorf("failed to list scheduled notifications: %w", err)
	}
	for _, id := range ids {
		pending[id] = true
	}

	now := p.now()
	today := utils.Today(now)

	// Drop past dates. Their notifications already fired or never will.
	for date := range scheduled {
		if date < today {
			delete(scheduled, date)
		}
	}

	added := 0
	for _, date := range registry.UpcomingSpecialDays(now) {
		day, ok := registry.FindSpecialDay(date)
		if !ok {
			continue
		}

		midnight, err := utils.ParseDate(date)
		if err != nil {
			continue
		}

		handles := scheduled[date]
		kept := map[string]string{}
		for _, slot := range daySlots(day) {
			if id, ok := handles[slot.name]; ok && pending[id] {
				kept[slot.name] = id
				continue
			}
			// A slot whose instant has passed counts as satisfied;
			// re-scheduling it would fire a stale notification.
			at := midnight.Add(time.Duration(slot.hour) * time.Hour)
			if !at.After(now) {
				continue
			}
			handle, err := p.scheduleSlot(date, day, slot, at)
			if err != nil {
				logger.Warn("Failed to schedule special day notification", "date", date, "slot", slot.name, "error", err)
				continue
			}
			kept[slot.name] = handle
			added++
		}

		if len(kept) > 0 {
			scheduled[date] = kept
		} else {
			delete(scheduled, date)
		}
	}

	p.backend.PutJSON(constants.KeySpecialDayNotif, scheduled)
	return added, nil
}

// Cancel removes every special-day notification and clears the handle map.
func (p *SpecialDayPlanner) Cancel() error {
	scheduled := map[string]map[string]string{}
	if _, err := p.backend.GetJSON(constants.KeySpecialDayNotif, &scheduled); err != nil {
		return err
	}
	for _, handles := range scheduled {
		for _, id := range handles {
			if err := p.notifier.Cancel(id); err != nil {
				logger.Warn("Failed to cancel special day notification", "notificationID", id, "error", err)
			}
		}
	}
	p.backend.Remove(constants.KeySpecialDayNotif)
	return nil
}

// ScheduledDates returns the dates with live notifications, sorted.
func (p *SpecialDayPlanner) ScheduledDates() ([]string, error) {
	scheduled := map[string]map[string]string{}
	if _, err := p.backend.GetJSON(constants.KeySpecialDayNotif, &scheduled); err != nil {
		return nil, err
	}
	dates := make([]string, 0, len(scheduled))
	for date := range scheduled {
		dates = append(dates, date)
	}
	sort.Strings(dates)
	return dates, nil
}

type daySlot struct {
	name string
	hour int
	body string
}

func daySlots(day models.SpecialDay) []daySlot {
	return []daySlot{
		{slotMorning, constants.SpecialDayMorningHour, fmt.Sprintf("Bugün %s. %s", day.Title, day.Advice)},
		{slotEvening, constants.SpecialDayEveningHour, fmt.Sprintf("%s zikrini çekmeyi unutma: %s", day.Title, day.Dhikr)},
	}
}

func (p *SpecialDayPlanner) scheduleSlot(date string, day models.SpecialDay, slot daySlot, at time.Time) (string, error) {
	content := notify.Content{
		Title: fmt.Sprintf("🌙 %s", day.Title),
		Body:  slot.body,
		Data:  map[string]string{dataKeySpecialDay: date},
	}
	return p.notifier.Schedule(content, notify.Trigger{Kind: notify.TriggerDate, At: at})
}

func (p *SpecialDayPlanner) checkPermission() error {
	granted, err := p.notifier.RequestPermission()
	if err != nil {
		return fmt.Errorf("failed to request notification permission: %w", err)
	}
	if !granted {
		return ErrPermissionDenied
	}
	return nil
}

// SetNow overrides the clock, for tests.
func (p *SpecialDayPlanner) SetNow(now func() time.Time) {
	p.now = now
}
