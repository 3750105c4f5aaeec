package cli

import (
	"fmt"
	"time"

	"zikirmatik/internal/backup"
	"zikirmatik/internal/notify"
)

type DoctorCmd struct{}

func (cmd *DoctorCmd) Run(ctx *Context) error {
	fmt.Println("Running diagnostics...")
	fmt.Println()

	hasError := false
	storageReachable := false

	if err := checkStorageReachable(ctx); err != nil {
		fmt.Printf("❌ Storage reachable: FAIL\n")
		fmt.Printf("   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Printf("✓ Storage reachable: OK\n")
		storageReachable = true
	}

	if storageReachable {
		if err := checkDataValidation(ctx); err != nil {
			fmt.Printf("❌ Data validation: FAIL\n")
			fmt.Printf("   Error: %v\n", err)
			hasError = true
		} else {
			fmt.Printf("✓ Data validation: OK\n")
		}
	} else {
		fmt.Printf("⊘ Data validation: SKIPPED (storage not reachable)\n")
	}

	// Warnings only; the app works without either.
	if err := checkBackupsPresent(ctx); err != nil {
		fmt.Printf("⚠ Backups present: WARNING\n")
		fmt.Printf("   %v\n", err)
	} else {
		fmt.Printf("✓ Backups present: OK\n")
	}

	if err := checkTrayDaemon(); err != nil {
		fmt.Printf("⚠ Tray daemon: WARNING\n")
		fmt.Printf("   %v (reminders and widget updates need it)\n", err)
	} else {
		fmt.Printf("✓ Tray daemon: OK\n")
	}

	if err := checkClockTimezone(); err != nil {
		fmt.Printf("❌ Clock/timezone: FAIL\n")
		fmt.Printf("   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Printf("✓ Clock/timezone: OK\n")
	}

	fmt.Println()
	if hasError {
		fmt.Println("Diagnostics completed with errors.")
		return fmt.Errorf("one or more health checks failed")
	}
	fmt.Println("All diagnostics passed!")
	return nil
}

func checkStorageReachable(ctx *Context) error {
	if err := ctx.Load(); err != nil {
		return fmt.Errorf("failed to load storage: %w", err)
	}
	return nil
}

func checkDataValidation(ctx *Context) error {
	// Duplicate names break selection and progress keys.
	names := make(map[string]bool)
	for _, item := range ctx.Zikr.Items() {
		if names[item.Name] {
			return fmt.Errorf("duplicate zikhr name found: %s", item.Name)
		}
		names[item.Name] = true
	}

	if state := ctx.Streak.State(); !state.Valid() {
		return fmt.Errorf("streak state is inconsistent: current %d, longest %d", state.CurrentStreak, state.LongestStreak)
	}

	for _, r := range ctx.Reminders.Reminders() {
		if err := r.Validate(); err != nil {
			return fmt.Errorf("reminder %s is invalid: %w", shortID(r.ID), err)
		}
	}
	return nil
}

func checkBackupsPresent(ctx *Context) error {
	mgr := backup.NewManager(ctx.Provider.GetConfigPath())
	backups, err := mgr.List()
	if err != nil {
		return fmt.Errorf("failed to list backups: %w", err)
	}
	if len(backups) == 0 {
		return fmt.Errorf("no backups found - consider creating one with 'zikirmatik backup create'")
	}
	return nil
}

func checkTrayDaemon() error {
	_, err := notify.NewDaemonScheduler().ListScheduled()
	return err
}

func checkClockTimezone() error {
	now := time.Now()
	if now.Year() < 2020 || now.Year() > 2100 {
		return fmt.Errorf("system time appears incorrect: %s", now.Format(time.RFC3339))
	}
	_, offset := now.Zone()
	if offset == 0 && now.Location() == time.UTC {
		fmt.Printf("   Note: timezone is UTC\n")
	}
	return nil
}
