package notify

import "time"

// TriggerKind selects how a scheduled notification fires.
type TriggerKind string

const (
	// TriggerDaily repeats every day at Hour:Minute.
	TriggerDaily TriggerKind = "daily"
	// TriggerDate fires once at the absolute instant At.
	TriggerDate TriggerKind = "date"
)

// Trigger describes when a notification fires.
type Trigger struct {
	Kind    TriggerKind `json:"kind"`
	Hour    int         `json:"hour,omitempty"`
	Minute  int         `json:"minute,omitempty"`
	Repeats bool        `json:"repeats,omitempty"`
	At      time.Time   `json:"at,omitempty"`
}

// Content is the user-visible notification payload. Data rides along
// opaquely and comes back in delivery events, which is how one-shot
// reminders are identified for cleanup.
type Content struct {
	Title string            `json:"title"`
	Body  string            `json:"body"`
	Data  map[string]string `json:"data,omitempty"`
}

// Delivery reports that a scheduled notification actually fired.
type Delivery struct {
	NotificationID string            `json:"notification_id"`
	Data           map[string]string `json:"data,omitempty"`
	DeliveredAt    time.Time         `json:"delivered_at"`
}

// Scheduler is the external notification-scheduling collaborator.
// Schedule returns an opaque handle the caller must retain to cancel.
type Scheduler interface {
	// RequestPermission returns true when notifications may be posted.
	// Implementations prompt at most once; subsequent calls report the
	// stored decision.
	RequestPermission() (bool, error)

	Schedule(content Content, trigger Trigger) (string, error)
	Cancel(notificationID string) error

	// ListScheduled returns the handles of all pending schedules.
	ListScheduled() ([]string, error)

	// Delivered drains delivery events accumulated since the last call.
	Delivered() ([]Delivery, error)
}
