package cli

import (
	"errors"
	"fmt"

	"zikirmatik/internal/constants"
	"zikirmatik/internal/models"
	"zikirmatik/internal/reminder"
)

type ReminderAddCmd struct {
	Zikhr   string `arg:"" help:"Name of the zikhr to be reminded about."`
	At      string `help:"Daily reminder time (HH:MM)." xor:"schedule"`
	In      int    `help:"One-shot delay amount." xor:"schedule"`
	Unit    string `default:"hour" enum:"hour,day" help:"Unit for --in: hour or day."`
	Message string `short:"m" help:"Custom notification text."`
}

func (c *ReminderAddCmd) Validate() error {
	if c.At == "" && c.In == 0 {
		return fmt.Errorf("either --at HH:MM or --in N is required")
	}
	return nil
}

func (c *ReminderAddCmd) Run(ctx *Context) error {
	if err := ctx.Load(); err != nil {
		return err
	}

	if _, ok := ctx.Zikr.Find(c.Zikhr); !ok {
		return fmt.Errorf("no zikhr named %q", c.Zikhr)
	}

	r := models.Reminder{
		ZikhrName: c.Zikhr,
		Message:   c.Message,
	}
	if c.At != "" {
		r.ScheduleType = constants.ScheduleDaily
		r.Time = c.At
	} else {
		r.ScheduleType = constants.ScheduleRelative
		r.OffsetValue = c.In
		r.OffsetUnit = constants.OffsetUnit(c.Unit)
	}

	created, err := ctx.Reminders.Create(r)
	if err != nil {
		if errors.Is(err, reminder.ErrPermissionDenied) {
			return fmt.Errorf("notifications are not permitted; allow them in the tray app and try again")
		}
		return err
	}

	fmt.Printf("✓ Reminder set for %s: %s\n", created.ZikhrName, created.FormatSchedule())
	if created.ScheduledFor != nil {
		fmt.Printf("  Next fire: %s\n", created.ScheduledFor.Format("2006-01-02 15:04"))
	}
	return nil
}

type ReminderListCmd struct{}

func (c *ReminderListCmd) Run(ctx *Context) error {
	if err := ctx.Load(); err != nil {
		return err
	}

	reminders := ctx.Reminders.Reminders()
	if len(reminders) == 0 {
		fmt.Println("No reminders.")
		return nil
	}

	for _, r := range reminders {
		status := "on "
		if !r.Enabled {
			status = "off"
		}
		fmt.Printf("  [%s] %s  %-25s %s\n", status, shortID(r.ID), r.ZikhrName, r.FormatSchedule())
		if r.ScheduledFor != nil && r.Enabled {
			fmt.Printf("        %s  next: %s\n", shortID(r.ID), r.ScheduledFor.Format("2006-01-02 15:04"))
		}
	}
	return nil
}

type ReminderToggleCmd struct {
	ID  string `arg:"" help:"Reminder id (a unique prefix is enough)."`
	Off bool   `help:"Disable instead of enable."`
}

func (c *ReminderToggleCmd) Run(ctx *Context) error {
	if err := ctx.Load(); err != nil {
		return err
	}

	id, err := resolveReminderID(ctx, c.ID)
	if err != nil {
		return err
	}

	r, err := ctx.Reminders.Toggle(id, !c.Off)
	if err != nil {
		if errors.Is(err, reminder.ErrPermissionDenied) {
			return fmt.Errorf("notifications are not permitted; allow them in the tray app and try again")
		}
		return err
	}

	if r.Enabled {
		fmt.Printf("✓ Reminder for %s enabled: %s\n", r.ZikhrName, r.FormatSchedule())
	} else {
		fmt.Printf("✓ Reminder for %s disabled\n", r.ZikhrName)
	}
	return nil
}

type ReminderDeleteCmd struct {
	ID string `arg:"" help:"Reminder id (a unique prefix is enough)."`
}

func (c *ReminderDeleteCmd) Run(ctx *Context) error {
	if err := ctx.Load(); err != nil {
		return err
	}

	id, err := resolveReminderID(ctx, c.ID)
	if err != nil {
		return err
	}
	if err := ctx.Reminders.Delete(id); err != nil {
		return err
	}
	fmt.Println("✓ Reminder deleted.")
	return nil
}

// resolveReminderID expands a unique id prefix to the full id.
func resolveReminderID(ctx *Context, prefix string) (string, error) {
	var match string
	for _, r := range ctx.Reminders.Reminders() {
		if len(prefix) <= len(r.ID) && r.ID[:len(prefix)] == prefix {
			if match != "" {
				return "", fmt.Errorf("reminder id %q is ambiguous", prefix)
			}
			match = r.ID
		}
	}
	if match == "" {
		return "", fmt.Errorf("no reminder with id %q", prefix)
	}
	return match, nil
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
