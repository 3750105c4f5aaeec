package constants

// ScheduleType represents how a reminder fires
type ScheduleType string

// OffsetUnit represents the unit of a relative reminder's delay
type OffsetUnit string

// AppearanceMode represents the counter rendering style
type AppearanceMode string

const (
	AppName           = "zikirmatik"
	DefaultConfigPath = "~/.config/zikirmatik/zikirmatik.json"
	Version           = "v0.3.0"

	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// TimeFormat is the standard time format used throughout the application (HH:MM)
	TimeFormat = "15:04"

	// MaxCompletedHistory bounds the completed-run log, newest first
	MaxCompletedHistory = 100

	// Relative reminder offset bounds
	MinOffsetValue = 1
	MaxOffsetHours = 240
	MaxOffsetDays  = 30

	// DefaultTarget is the fallback target when an item carries no count
	DefaultTarget = 10000

	// Backup constants
	MaxBackups       = 14
	BackupDirName    = "backups"
	BackupFilePrefix = "zikirmatik-"

	// Notifier daemon constants
	NotifierLockfileName   = "zikirmatik-notifier.lock"
	NotifierProcessPrefix  = "zikirmatik-tray"
	NotificationDurationMs = 5000
	TrayAppIdentifier      = "com.zikirmatik.tray"

	// Special-day notifications fire twice per date
	SpecialDayMorningHour = 13
	SpecialDayEveningHour = 20

	// Schedule types
	ScheduleDaily    ScheduleType = "daily"
	ScheduleRelative ScheduleType = "relative"

	// Offset units
	OffsetHour OffsetUnit = "hour"
	OffsetDay  OffsetUnit = "day"

	// Appearance modes
	AppearanceBeads   AppearanceMode = "beads"
	AppearanceDigital AppearanceMode = "digital"
)

// Backgrounds lists the selectable backdrop names; empty string is the default.
var Backgrounds = []string{"", "kaaba", "medina", "nature"}
