package constants

// Storage keys. Each key owns one JSON-encoded value; the stores never
// share a key, so writers only ever race with themselves.
const (
	KeyCustomItems     = "customZikhrs"
	KeyCountOverrides  = "zikhrCountOverrides"
	KeyProgress        = "zikhrProgress"
	KeyCompleted       = "completedZikhrs"
	KeySelected        = "selectedZikhr"
	KeySettings        = "appSettings"
	KeyStreak          = "streakState"
	KeyReminders       = "reminders"
	KeyFavorites       = "favoriteZikhrNames"
	KeyEsmaFavorites   = "favoriteEsmaulHusnaNames"
	KeySpecialDayNotif = "specialDaysNotifications"

	// Widget snapshot keys, read independently by the widget host
	KeyWidgetName   = "activeZikrName"
	KeyWidgetCount  = "activeZikrCount"
	KeyWidgetTarget = "activeZikrTarget"
)
