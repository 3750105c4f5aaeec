package reminder

import (
	"errors"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"zikirmatik/internal/constants"
	"zikirmatik/internal/models"
	"zikirmatik/internal/notify"
	"zikirmatik/internal/storage"
)

// fakeNotifier records scheduling traffic so tests can assert on the
// exact calls a lifecycle produces.
type fakeNotifier struct {
	granted    bool
	permErr    error
	nextHandle int

	scheduleCalls int
	cancelled     []string
	pending       map[string]notify.Content
	deliveries    []notify.Delivery
}

func newFakeNotifier() *fakeNotifier {
	return &fakeNotifier{granted: true, pending: map[string]notify.Content{}}
}

func (f *fakeNotifier) RequestPermission() (bool, error) {
	return f.granted, f.permErr
}

func (f *fakeNotifier) Schedule(content notify.Content, trigger notify.Trigger) (string, error) {
	f.scheduleCalls++
	f.nextHandle++
	handle := fmt.Sprintf("n-%d", f.nextHandle)
	f.pending[handle] = content
	return handle, nil
}

func (f *fakeNotifier) Cancel(notificationID string) error {
	f.cancelled = append(f.cancelled, notificationID)
	delete(f.pending, notificationID)
	return nil
}

func (f *fakeNotifier) ListScheduled() ([]string, error) {
	var ids []string
	for id := range f.pending {
		ids = append(ids, id)
	}
	return ids, nil
}

func (f *fakeNotifier) Delivered() ([]notify.Delivery, error) {
	out := f.deliveries
	f.deliveries = nil
	return out, nil
}

// deliver simulates a pending notification firing.
func (f *fakeNotifier) deliver(handle string) {
	content := f.pending[handle]
	delete(f.pending, handle)
	f.deliveries = append(f.deliveries, notify.Delivery{
		NotificationID: handle,
		Data:           content.Data,
		DeliveredAt:    time.Now(),
	})
}

func newTestBackend(t *testing.T) *storage.Backend {
	t.Helper()
	provider := storage.NewJSONStore(filepath.Join(t.TempDir(), "zikirmatik.json"))
	if err := provider.Init(); err != nil {
		t.Fatalf("failed to init store: %v", err)
	}
	if err := provider.Load(); err != nil {
		t.Fatalf("failed to load store: %v", err)
	}
	backend := storage.NewBackend(provider)
	t.Cleanup(func() {
		backend.Close()
		provider.Close()
	})
	return backend
}

func dailyReminder(at string) models.Reminder {
	return models.Reminder{
		ZikhrName:    "Subhanallah",
		ScheduleType: constants.ScheduleDaily,
		Time:         at,
	}
}

func relativeReminder(value int, unit constants.OffsetUnit) models.Reminder {
	return models.Reminder{
		ZikhrName:    "Subhanallah",
		ScheduleType: constants.ScheduleRelative,
		OffsetValue:  value,
		OffsetUnit:   unit,
	}
}

func TestCreateDailyReminder(t *testing.T) {
	notifier := newFakeNotifier()
	s := NewScheduler(newTestBackend(t), notifier)
	now := time.Date(2026, 3, 15, 10, 0, 0, 0, time.Local)
	s.SetNow(func() time.Time { return now })

	created, err := s.Create(dailyReminder("8:30"))
	if err != nil {
		t.Fatal(err)
	}

	if created.Time != "08:30" {
		t.Errorf("time not canonicalized: %q", created.Time)
	}
	if created.NotificationID == "" {
		t.Error("missing notification handle")
	}
	if !created.Enabled {
		t.Error("new reminder should be enabled")
	}
	// 08:30 already passed at 10:00, so the next fire is tomorrow.
	want := time.Date(2026, 3, 16, 8, 30, 0, 0, time.Local)
	if created.ScheduledFor == nil || !created.ScheduledFor.Equal(want) {
		t.Errorf("ScheduledFor = %v, want %v", created.ScheduledFor, want)
	}
	if notifier.scheduleCalls != 1 {
		t.Errorf("schedule calls = %d, want 1", notifier.scheduleCalls)
	}
}

func TestCreateRelativeReminder(t *testing.T) {
	notifier := newFakeNotifier()
	s := NewScheduler(newTestBackend(t), notifier)
	now := time.Date(2026, 3, 15, 10, 0, 0, 0, time.Local)
	s.SetNow(func() time.Time { return now })

	created, err := s.Create(relativeReminder(3, constants.OffsetHour))
	if err != nil {
		t.Fatal(err)
	}

	want := now.Add(3 * time.Hour)
	if created.ScheduledFor == nil || !created.ScheduledFor.Equal(want) {
		t.Errorf("ScheduledFor = %v, want %v", created.ScheduledFor, want)
	}
	if !created.IsOneShot() {
		t.Error("relative reminder should be one-shot")
	}
}

func TestCreateRejectsInvalidReminders(t *testing.T) {
	notifier := newFakeNotifier()
	s := NewScheduler(newTestBackend(t), notifier)

	if _, err := s.Create(dailyReminder("25:00")); err == nil {
		t.Error("expected error for out-of-range time")
	}
	if _, err := s.Create(relativeReminder(500, constants.OffsetHour)); err == nil {
		t.Error("expected error for out-of-range offset")
	}
	if notifier.scheduleCalls != 0 {
		t.Errorf("invalid reminders reached the scheduler %d times", notifier.scheduleCalls)
	}
}

func TestCreateWithoutPermission(t *testing.T) {
	notifier := newFakeNotifier()
	notifier.granted = false
	s := NewScheduler(newTestBackend(t), notifier)

	if _, err := s.Create(dailyReminder("09:00")); !errors.Is(err, ErrPermissionDenied) {
		t.Errorf("error = %v, want ErrPermissionDenied", err)
	}
	if len(s.Reminders()) != 0 {
		t.Error("record stored despite denied permission")
	}
}

func TestToggleLifecycle(t *testing.T) {
	notifier := newFakeNotifier()
	s := NewScheduler(newTestBackend(t), notifier)

	created, err := s.Create(dailyReminder("09:00"))
	if err != nil {
		t.Fatal(err)
	}

	disabled, err := s.Toggle(created.ID, false)
	if err != nil {
		t.Fatal(err)
	}
	if disabled.Enabled || disabled.NotificationID != "" {
		t.Errorf("disabled reminder = %+v", disabled)
	}
	if len(notifier.cancelled) != 1 || notifier.cancelled[0] != created.NotificationID {
		t.Errorf("cancelled = %v, want [%s]", notifier.cancelled, created.NotificationID)
	}

	// Disabling again is a no-op.
	if _, err := s.Toggle(created.ID, false); err != nil {
		t.Fatal(err)
	}
	if len(notifier.cancelled) != 1 {
		t.Errorf("repeated disable cancelled again: %v", notifier.cancelled)
	}

	enabled, err := s.Toggle(created.ID, true)
	if err != nil {
		t.Fatal(err)
	}
	if !enabled.Enabled || enabled.NotificationID == "" {
		t.Errorf("re-enabled reminder = %+v", enabled)
	}
	if notifier.scheduleCalls != 2 {
		t.Errorf("schedule calls = %d, want 2", notifier.scheduleCalls)
	}
}

func TestDelete(t *testing.T) {
	notifier := newFakeNotifier()
	s := NewScheduler(newTestBackend(t), notifier)

	created, err := s.Create(dailyReminder("09:00"))
	if err != nil {
		t.Fatal(err)
	}
	if err := s.Delete(created.ID); err != nil {
		t.Fatal(err)
	}
	if len(s.Reminders()) != 0 {
		t.Error("reminder survived deletion")
	}
	if len(notifier.cancelled) != 1 {
		t.Errorf("cancel calls = %d, want 1", len(notifier.cancelled))
	}

	if err := s.Delete("nope"); !errors.Is(err, ErrNotFound) {
		t.Errorf("deleting unknown id: error = %v, want ErrNotFound", err)
	}
}

func TestReapDeliveredRemovesFiredOneShots(t *testing.T) {
	notifier := newFakeNotifier()
	s := NewScheduler(newTestBackend(t), notifier)

	daily, err := s.Create(dailyReminder("09:00"))
	if err != nil {
		t.Fatal(err)
	}
	oneShot, err := s.Create(relativeReminder(1, constants.OffsetHour))
	if err != nil {
		t.Fatal(err)
	}

	notifier.deliver(oneShot.NotificationID)
	notifier.deliver(daily.NotificationID) // repeating, must survive

	if reaped := s.ReapDelivered(); reaped != 1 {
		t.Errorf("reaped = %d, want 1", reaped)
	}

	remaining := s.Reminders()
	if len(remaining) != 1 || remaining[0].ID != daily.ID {
		t.Errorf("remaining = %+v, want only the daily reminder", remaining)
	}
}

func TestLoadReschedulesOrphanedReminders(t *testing.T) {
	backend := newTestBackend(t)
	notifier := newFakeNotifier()

	// A reminder persisted as enabled but with no live registration,
	// as after a crash between scheduling and persisting.
	orphan := dailyReminder("09:00")
	orphan.ID = "orphan-1"
	orphan.Enabled = true
	orphan.NotificationID = "gone"
	backend.PutJSON(constants.KeyReminders, []models.Reminder{orphan})
	backend.Flush()

	s := NewScheduler(backend, notifier)
	if err := s.Load(); err != nil {
		t.Fatal(err)
	}

	if notifier.scheduleCalls != 1 {
		t.Fatalf("schedule calls = %d, want 1", notifier.scheduleCalls)
	}
	got, ok := s.Find("orphan-1")
	if !ok {
		t.Fatal("orphan record lost on load")
	}
	if got.NotificationID == "" || got.NotificationID == "gone" {
		t.Errorf("NotificationID = %q, want a fresh handle", got.NotificationID)
	}
}
