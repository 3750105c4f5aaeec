package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"

	"zikirmatik/internal/cli"
	"zikirmatik/internal/constants"
	apperrors "zikirmatik/internal/errors"
	"zikirmatik/internal/logger"
	"zikirmatik/internal/notify"
	"zikirmatik/internal/reminder"
	"zikirmatik/internal/storage"
	"zikirmatik/internal/streak"
	"zikirmatik/internal/widget"
	"zikirmatik/internal/zikr"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Storage file path (.json or .db)." type:"path" default:"${config_path}"`
	Debug   bool   `help:"Enable debug logging to stderr."`

	Init  cli.InitCmd `cmd:"" help:"Initialize zikirmatik storage."`
	Tui   cli.TuiCmd  `cmd:"" help:"Launch the interactive counter." default:"1"`
	Count struct {
		Tick   cli.CountTickCmd   `cmd:"" default:"1" help:"Add counts to the selected zikhr."`
		Reset  cli.CountResetCmd  `cmd:"" help:"Reset the selected zikhr's count."`
		Status cli.CountStatusCmd `cmd:"" help:"Show the selected zikhr's progress."`
	} `cmd:"" help:"Count the selected zikhr."`
	Zikr struct {
		List      cli.ZikrListCmd      `cmd:"" help:"List all zikhrs."`
		Add       cli.ZikrAddCmd       `cmd:"" help:"Add a custom zikhr."`
		Delete    cli.ZikrDeleteCmd    `cmd:"" help:"Delete a custom zikhr."`
		Select    cli.ZikrSelectCmd    `cmd:"" help:"Choose the zikhr to count."`
		EditCount cli.ZikrEditCountCmd `cmd:"" name:"edit-count" help:"Change a zikhr's target count."`
		Fav       cli.ZikrFavCmd       `cmd:"" help:"Toggle a zikhr as favorite."`
	} `cmd:"" help:"Manage zikhrs."`
	Esma struct {
		List  cli.EsmaListCmd  `cmd:"" help:"List the Esma-ül Hüsna."`
		Start cli.EsmaStartCmd `cmd:"" help:"Start counting one of the names."`
		Fav   cli.EsmaFavCmd   `cmd:"" help:"Toggle a name as favorite."`
	} `cmd:"" help:"Browse and count the 99 names."`
	History cli.HistoryCmd `cmd:"" help:"Show completed zikhrs."`
	Streak  struct {
		Show  cli.StreakShowCmd  `cmd:"" default:"1" help:"Show the current streak."`
		Reset cli.StreakResetCmd `cmd:"" help:"Clear the streak."`
	} `cmd:"" help:"Daily streak."`
	Reminder struct {
		Add    cli.ReminderAddCmd    `cmd:"" help:"Add a reminder."`
		List   cli.ReminderListCmd   `cmd:"" default:"1" help:"List reminders."`
		Toggle cli.ReminderToggleCmd `cmd:"" help:"Enable or disable a reminder."`
		Delete cli.ReminderDeleteCmd `cmd:"" help:"Delete a reminder."`
	} `cmd:"" help:"Manage reminders."`
	Hadith   cli.HadithCmd `cmd:"" help:"Show today's hadith."`
	Calendar struct {
		List       cli.CalendarListCmd       `cmd:"" default:"1" help:"List upcoming special days."`
		Show       cli.CalendarShowCmd       `cmd:"" help:"Show details for a date."`
		Schedule   cli.CalendarScheduleCmd   `cmd:"" help:"Schedule special-day notifications."`
		Unschedule cli.CalendarUnscheduleCmd `cmd:"" help:"Cancel special-day notifications."`
	} `cmd:"" help:"Religious special-day calendar."`
	Settings struct {
		Show  cli.SettingsShowCmd  `cmd:"" default:"1" help:"Show current settings."`
		Set   cli.SettingsSetCmd   `cmd:"" help:"Change a setting."`
		Reset cli.SettingsResetCmd `cmd:"" help:"Erase all data."`
	} `cmd:"" help:"App settings."`
	Backup struct {
		Create  cli.BackupCreateCmd  `cmd:"" help:"Create a backup."`
		List    cli.BackupListCmd    `cmd:"" default:"1" help:"List backups."`
		Restore cli.BackupRestoreCmd `cmd:"" help:"Restore from a backup."`
	} `cmd:"" help:"Back up and restore data."`
	Widget struct {
		Sync cli.WidgetSyncCmd `cmd:"" default:"1" help:"Publish counter state to the widget."`
		Show cli.WidgetShowCmd `cmd:"" help:"Show the published widget state."`
	} `cmd:"" help:"Tray widget bridge."`
	Doctor cli.DoctorCmd `cmd:"" help:"Run health checks."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Digital tasbih: count zikhrs, keep your streak, get reminded"),
		kong.UsageOnError(),
		kong.Vars{
			"version":     constants.Version,
			"config_path": constants.DefaultConfigPath,
		},
	)

	if err := logger.Init(logger.Config{Debug: CLI.Debug, ConfigDir: filepath.Dir(CLI.Config)}); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not set up logging: %v\n", err)
	}

	var provider storage.Provider
	if strings.HasSuffix(CLI.Config, ".json") {
		provider = storage.NewJSONStore(CLI.Config)
	} else {
		provider = storage.NewSQLiteStore(CLI.Config)
	}

	backend := storage.NewBackend(provider)
	notifier := notify.NewDaemonScheduler()

	appCtx := &cli.Context{
		Provider:    provider,
		Backend:     backend,
		Zikr:        zikr.NewStore(backend),
		Streak:      streak.NewTracker(backend),
		Reminders:   reminder.NewScheduler(backend, notifier),
		SpecialDays: reminder.NewSpecialDayPlanner(backend, notifier),
		Widget:      widget.NewBridge(backend, notifier),
	}

	err := ctx.Run(appCtx)

	// Drain pending writes before the process exits, success or not.
	backend.Close()
	if closeErr := provider.Close(); closeErr != nil {
		logger.Warn("Failed to close storage", "error", closeErr)
	}

	if err != nil {
		apperrors.Fatal(err)
	}
}
