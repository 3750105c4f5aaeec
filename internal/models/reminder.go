package models

import (
	"fmt"
	"time"

	"zikirmatik/internal/constants"
	"zikirmatik/internal/utils"
)

// Reminder is a persisted notification schedule for one zikhr.
type Reminder struct {
	ID           string                 `json:"id"`
	ZikhrName    string                 `json:"zikhr_name"`
	ScheduleType constants.ScheduleType `json:"schedule_type"`
	Time         string                 `json:"time,omitempty"` // HH:MM, daily reminders only
	OffsetValue  int                    `json:"offset_value,omitempty"`
	OffsetUnit   constants.OffsetUnit   `json:"offset_unit,omitempty"`
	Message      string                 `json:"message,omitempty"`
	Enabled      bool                   `json:"enabled"`
	// NotificationID is the external scheduler's opaque handle; empty when
	// no schedule is currently registered.
	NotificationID string     `json:"notification_id,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	ScheduledFor   *time.Time `json:"scheduled_for,omitempty"`
}

func (r *Reminder) Validate() error {
	if r.ZikhrName == "" {
		return fmt.Errorf("reminder must reference a zikhr")
	}

	switch r.ScheduleType {
	case constants.ScheduleDaily:
		if _, err := utils.ValidateTimeInput(r.Time); err != nil {
			return err
		}
	case constants.ScheduleRelative:
		if r.OffsetUnit != constants.OffsetHour && r.OffsetUnit != constants.OffsetDay {
			return fmt.Errorf("invalid offset unit: %q", r.OffsetUnit)
		}
		if err := utils.ValidateOffset(r.OffsetValue, r.OffsetUnit); err != nil {
			return err
		}
	default:
		return fmt.Errorf("invalid schedule type: %q", r.ScheduleType)
	}

	return nil
}

// IsOneShot returns true for relative reminders, which fire once and are
// reaped after delivery.
func (r *Reminder) IsOneShot() bool {
	return r.ScheduleType == constants.ScheduleRelative
}

// FormatSchedule returns a human-readable description of when the
// reminder fires.
func (r *Reminder) FormatSchedule() string {
	if r.ScheduleType == constants.ScheduleDaily {
		return fmt.Sprintf("Daily at %s", r.Time)
	}
	unit := "hour"
	if r.OffsetUnit == constants.OffsetDay {
		unit = "day"
	}
	if r.OffsetValue == 1 {
		return fmt.Sprintf("Once, 1 %s after creation", unit)
	}
	return fmt.Sprintf("Once, %d %ss after creation", r.OffsetValue, unit)
}

// NotificationTitle returns the notification headline for the reminder.
func (r *Reminder) NotificationTitle() string {
	return fmt.Sprintf("%s zamanı ⏰", r.ZikhrName)
}

// NotificationBody returns the text shown when the reminder fires. A
// custom message wins; otherwise a default nudge is built from the name.
func (r *Reminder) NotificationBody() string {
	if r.Message != "" {
		return r.Message
	}
	return fmt.Sprintf("%s zikrini yapmayı unutma.", r.ZikhrName)
}
