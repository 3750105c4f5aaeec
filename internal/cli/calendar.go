package cli

import (
	"errors"
	"fmt"
	"time"

	"zikirmatik/internal/registry"
	"zikirmatik/internal/reminder"
	"zikirmatik/internal/utils"
)

type CalendarListCmd struct{}

func (c *CalendarListCmd) Run(ctx *Context) error {
	dates := registry.UpcomingSpecialDays(time.Now())
	if len(dates) == 0 {
		fmt.Println("No upcoming special days in the calendar.")
		return nil
	}

	fmt.Println("Upcoming special days:")
	for _, date := range dates {
		day, ok := registry.FindSpecialDay(date)
		if !ok {
			continue
		}
		fmt.Printf("  %s  %s\n", date, day.Title)
	}
	return nil
}

type CalendarShowCmd struct {
	Date string `arg:"" help:"Date to show (YYYY-MM-DD)."`
}

func (c *CalendarShowCmd) Run(ctx *Context) error {
	if _, err := utils.ParseDate(c.Date); err != nil {
		return err
	}

	day, ok := registry.FindSpecialDay(c.Date)
	if !ok {
		fmt.Printf("%s is not a special day.\n", c.Date)
		return nil
	}

	fmt.Printf("🌙 %s (%s)\n\n", day.Title, c.Date)
	fmt.Println(day.Description)
	if day.Advice != "" {
		fmt.Printf("\nAdvice: %s\n", day.Advice)
	}
	if day.Dhikr != "" {
		fmt.Printf("Dhikr:  %s\n", day.Dhikr)
	}
	return nil
}

type CalendarScheduleCmd struct{}

func (c *CalendarScheduleCmd) Run(ctx *Context) error {
	if err := ctx.Load(); err != nil {
		return err
	}

	added, err := ctx.SpecialDays.Sync()
	if err != nil {
		if errors.Is(err, reminder.ErrPermissionDenied) {
			return fmt.Errorf("notifications are not permitted; allow them in the tray app and try again")
		}
		return err
	}

	dates, err := ctx.SpecialDays.ScheduledDates()
	if err != nil {
		return err
	}
	fmt.Printf("✓ Special-day notifications up to date (%d newly scheduled, %d date(s) covered)\n", added, len(dates))
	return nil
}

type CalendarUnscheduleCmd struct{}

func (c *CalendarUnscheduleCmd) Run(ctx *Context) error {
	if err := ctx.Load(); err != nil {
		return err
	}

	if err := ctx.SpecialDays.Cancel(); err != nil {
		return err
	}
	fmt.Println("✓ Special-day notifications cancelled.")
	return nil
}
