// Package reminder owns the persisted notification schedules: daily
// repeating reminders, one-shot relative reminders, and the special-day
// calendar notifications. All actual delivery is delegated to a
// notify.Scheduler; this package keeps the records and the external
// handles consistent.
package reminder

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"zikirmatik/internal/constants"
	"zikirmatik/internal/logger"
	"zikirmatik/internal/models"
	"zikirmatik/internal/notify"
	"zikirmatik/internal/storage"
	"zikirmatik/internal/utils"
)

// ErrPermissionDenied is returned when the user has refused notification
// permission. Reminder records are never created in that case.
var ErrPermissionDenied = errors.New("notification permission denied")

// ErrNotFound is returned when an operation references an unknown reminder id.
var ErrNotFound = errors.New("reminder not found")

const dataKeyReminderID = "reminderId"

// Scheduler manages the reminder list and keeps each enabled record
// registered with the external notification scheduler.
type Scheduler struct {
	mu        sync.Mutex
	backend   *storage.Backend
	notifier  notify.Scheduler
	reminders []models.Reminder
	now       func() time.Time
}

func NewScheduler(backend *storage.Backend, notifier notify.Scheduler) *Scheduler {
	return &Scheduler{
		backend:  backend,
		notifier: notifier,
		now:      time.Now,
	}
}

// Load hydrates the reminder list and reconciles it against the external
// scheduler: enabled records that lost their registration (a crash
// between scheduling and persisting, or an external purge) are
// re-scheduled. Reconciliation failures are logged, never fatal; the
// record stays visible and disabled-looking until the next attempt.
func (s *Scheduler) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.reminders = nil
	if _, err := s.backend.GetJSON(constants.KeyReminders, &s.reminders); err != nil {
		return err
	}

	pending := map[string]bool{}
	if ids, err := s.notifier.ListScheduled(); err == nil {
		for _, id := range ids {
			pending[id] = true
		}
	} else {
		logger.Warn("Could not list scheduled notifications, skipping reconciliation", "error", err)
		return nil
	}

	changed := false
	for i := range s.reminders {
		r := &s.reminders[i]
		if !r.Enabled {
			continue
		}
		if r.NotificationID != "" && pending[r.NotificationID] {
			continue
		}
		handle, at, err := s.schedule(*r)
		if err != nil {
			logger.Warn("Failed to re-register reminder", "id", r.ID, "zikhr", r.ZikhrName, "error", err)
			continue
		}
		r.NotificationID = handle
		r.ScheduledFor = at
		changed = true
	}
	if changed {
		s.persistLocked()
	}
	return nil
}

// Reminders returns a copy of the reminder list, newest first.
func (s *Scheduler) Reminders() []models.Reminder {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Reminder, len(s.reminders))
	copy(out, s.reminders)
	return out
}

// Find returns the reminder with the given id.
func (s *Scheduler) Find(id string) (models.Reminder, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, r := range s.reminders {
		if r.ID == id {
			return r, true
		}
	}
	return models.Reminder{}, false
}

// Create validates, registers, and persists a new reminder. The record
// is stored only after the external schedule succeeds, so a stored
// reminder always corresponds to a real pending notification.
func (s *Scheduler) Create(r models.Reminder) (models.Reminder, error) {
	if err := r.Validate(); err != nil {
		return models.Reminder{}, err
	}

	if err := s.checkPermission(); err != nil {
		return models.Reminder{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	r.ID = uuid.NewString()
	r.Enabled = true
	r.CreatedAt = s.now()
	if r.ScheduleType == constants.ScheduleDaily {
		canonical, err := utils.ValidateTimeInput(r.Time)
		if err != nil {
			return models.Reminder{}, err
		}
		r.Time = canonical
	}

	handle, at, err := s.schedule(r)
	if err != nil {
		return models.Reminder{}, fmt.Errorf("failed to schedule reminder: %w", err)
	}
	r.NotificationID = handle
	r.ScheduledFor = at

	s.reminders = append([]models.Reminder{r}, s.reminders...)
	s.persistLocked()
	return r, nil
}

// Toggle enables or disables a reminder. Disabling cancels the pending
// notification; enabling registers a fresh one (for relative reminders
// the offset restarts from now).
func (s *Scheduler) Toggle(id string, enabled bool) (models.Reminder, error) {
	if enabled {
		if err := s.checkPermission(); err != nil {
			return models.Reminder{}, err
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexLocked(id)
	if i < 0 {
		return models.Reminder{}, ErrNotFound
	}
	r := &s.reminders[i]
	if r.Enabled == enabled {
		return *r, nil
	}

	if enabled {
		handle, at, err := s.schedule(*r)
		if err != nil {
			return models.Reminder{}, fmt.Errorf("failed to schedule reminder: %w", err)
		}
		r.NotificationID = handle
		r.ScheduledFor = at
	} else {
		s.cancelLocked(r)
	}
	r.Enabled = enabled
	s.persistLocked()
	return *r, nil
}

// Delete cancels and removes a reminder.
func (s *Scheduler) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexLocked(id)
	if i < 0 {
		return ErrNotFound
	}
	s.cancelLocked(&s.reminders[i])
	s.reminders = append(s.reminders[:i], s.reminders[i+1:]...)
	s.persistLocked()
	return nil
}

// ReapDelivered drains delivery events and removes fired one-shot
// reminders, returning how many were reaped. Daily reminders repeat and
// are left alone.
func (s *Scheduler) ReapDelivered() int {
	deliveries, err := s.notifier.Delivered()
	if err != nil {
		logger.Warn("Could not read delivered notifications", "error", err)
		return 0
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	reaped := 0
	for _, d := range deliveries {
		id := d.Data[dataKeyReminderID]
		if id == "" {
			continue
		}
		i := s.indexLocked(id)
		if i < 0 || !s.reminders[i].IsOneShot() {
			continue
		}
		s.reminders = append(s.reminders[:i], s.reminders[i+1:]...)
		reaped++
	}
	if reaped > 0 {
		s.persistLocked()
	}
	return reaped
}

func (s *Scheduler) checkPermission() error {
	granted, err := s.notifier.RequestPermission()
	if err != nil {
		return fmt.Errorf("failed to request notification permission: %w", err)
	}
	if !granted {
		return ErrPermissionDenied
	}
	return nil
}

// schedule registers r with the external scheduler and returns the
// handle plus the next fire instant.
func (s *Scheduler) schedule(r models.Reminder) (string, *time.Time, error) {
	content := notify.Content{
		Title: r.NotificationTitle(),
		Body:  r.NotificationBody(),
		Data:  map[string]string{dataKeyReminderID: r.ID},
	}

	now := s.now()
	var trigger notify.Trigger
	var at time.Time
	if r.ScheduleType == constants.ScheduleDaily {
		hour, minute, err := utils.HourMinute(r.Time)
		if err != nil {
			return "", nil, err
		}
		trigger = notify.Trigger{Kind: notify.TriggerDaily, Hour: hour, Minute: minute, Repeats: true}
		at, err = utils.NextOccurrence(r.Time, now)
		if err != nil {
			return "", nil, err
		}
	} else {
		at = now.Add(utils.OffsetDuration(r.OffsetValue, r.OffsetUnit))
		trigger = notify.Trigger{Kind: notify.TriggerDate, At: at}
	}

	handle, err := s.notifier.Schedule(content, trigger)
	if err != nil {
		return "", nil, err
	}
	return handle, &at, nil
}

func (s *Scheduler) cancelLocked(r *models.Reminder) {
	if r.NotificationID == "" {
		return
	}
	if err := s.notifier.Cancel(r.NotificationID); err != nil {
		logger.Warn("Failed to cancel notification", "id", r.ID, "notificationID", r.NotificationID, "error", err)
	}
	r.NotificationID = ""
	r.ScheduledFor = nil
}

func (s *Scheduler) indexLocked(id string) int {
	for i := range s.reminders {
		if s.reminders[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *Scheduler) persistLocked() {
	s.backend.PutJSON(constants.KeyReminders, s.reminders)
}

// SetNow overrides the clock, for tests.
func (s *Scheduler) SetNow(now func() time.Time) {
	s.now = now
}
