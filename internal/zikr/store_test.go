package zikr

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"zikirmatik/internal/models"
	"zikirmatik/internal/registry"
	"zikirmatik/internal/storage"
)

func newTestStore(t *testing.T) (*Store, *storage.Backend) {
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

	store := NewStore(backend)
	if err := store.Load(); err != nil {
		t.Fatalf("failed to load zikr store: %v", err)
	}
	return store, backend
}

func TestIncrementRequiresSelection(t *testing.T) {
	store, _ := newTestStore(t)
	if _, _, err := store.Increment(); !errors.Is(err, ErrNoSelection) {
		t.Errorf("Increment() error = %v, want ErrNoSelection", err)
	}
}

func TestIncrementCompletesAtTarget(t *testing.T) {
	store, _ := newTestStore(t)
	if err := store.AddItem(models.ZikhrItem{Name: "Test dhikr", Count: 3}); err != nil {
		t.Fatal(err)
	}

	for i := 1; i <= 2; i++ {
		count, completed, err := store.Increment()
		if err != nil {
			t.Fatal(err)
		}
		if count != i || completed {
			t.Fatalf("tick %d: count=%d completed=%v", i, count, completed)
		}
	}

	count, completed, err := store.Increment()
	if err != nil {
		t.Fatal(err)
	}
	if count != 3 || !completed {
		t.Fatalf("final tick: count=%d completed=%v, want 3/true", count, completed)
	}

	// Past the target the counter holds and completion does not re-fire.
	count, completed, err = store.Increment()
	if err != nil {
		t.Fatal(err)
	}
	if count != 3 || completed {
		t.Fatalf("past target: count=%d completed=%v, want 3/false", count, completed)
	}
	if got := len(store.Completed()); got != 1 {
		t.Errorf("history has %d entries, want 1", got)
	}
}

func TestUpdateProgressClamps(t *testing.T) {
	store, _ := newTestStore(t)
	if err := store.AddItem(models.ZikhrItem{Name: "Test dhikr", Count: 10}); err != nil {
		t.Fatal(err)
	}

	store.UpdateProgress("Test dhikr", 500)
	if got := store.Progress("Test dhikr"); got != 10 {
		t.Errorf("progress = %d, want clamped to 10", got)
	}

	store.UpdateProgress("Test dhikr", -5)
	if got := store.Progress("Test dhikr"); got != 0 {
		t.Errorf("progress = %d, want clamped to 0", got)
	}
}

func TestAddItemRejectsDuplicates(t *testing.T) {
	store, _ := newTestStore(t)

	if err := store.AddItem(models.ZikhrItem{Name: registry.ZikhrItems[0].Name, Count: 33}); err == nil {
		t.Error("expected error when shadowing a built-in name")
	}

	if err := store.AddItem(models.ZikhrItem{Name: "Mine", Count: 33}); err != nil {
		t.Fatal(err)
	}
	if err := store.AddItem(models.ZikhrItem{Name: "Mine", Count: 50}); err == nil {
		t.Error("expected error on duplicate custom name")
	}
}

func TestAddItemSelectsNewItem(t *testing.T) {
	store, _ := newTestStore(t)
	if err := store.AddItem(models.ZikhrItem{Name: "Mine", Count: 33}); err != nil {
		t.Fatal(err)
	}
	selected, ok := store.Selected()
	if !ok || selected.Name != "Mine" {
		t.Errorf("Selected() = %+v, %v; want Mine", selected, ok)
	}
}

func TestDeleteItemCleansUp(t *testing.T) {
	store, _ := newTestStore(t)
	if err := store.AddItem(models.ZikhrItem{Name: "Mine", Count: 33}); err != nil {
		t.Fatal(err)
	}
	store.UpdateProgress("Mine", 5)
	store.ToggleFavorite("Mine")

	store.DeleteItem("Mine")

	if _, ok := store.Find("Mine"); ok {
		t.Error("item still findable after delete")
	}
	if got := store.Progress("Mine"); got != 0 {
		t.Errorf("progress = %d after delete, want 0", got)
	}
	if favs := store.Favorites(); len(favs) != 0 {
		t.Errorf("favorites = %v after delete, want empty", favs)
	}
	if _, ok := store.Selected(); ok {
		t.Error("selection survived deleting the selected item")
	}
}

func TestDeleteBuiltinIsNoOp(t *testing.T) {
	store, _ := newTestStore(t)
	name := registry.ZikhrItems[0].Name
	store.DeleteItem(name)
	if _, ok := store.Find(name); !ok {
		t.Errorf("built-in %q disappeared", name)
	}
}

func TestCountOverrideSupersedesRegistry(t *testing.T) {
	store, _ := newTestStore(t)
	name := registry.ZikhrItems[0].Name
	base := registry.ZikhrItems[0].Count

	if got := store.EffectiveCount(name, base); got != base {
		t.Fatalf("EffectiveCount = %d before override, want %d", got, base)
	}

	store.SetCountOverride(name, 5)
	if got := store.EffectiveCount(name, base); got != 5 {
		t.Errorf("EffectiveCount = %d, want 5", got)
	}

	// The merged item list reflects the override too.
	for _, item := range store.Items() {
		if item.Name == name && item.Count != 5 {
			t.Errorf("Items() shows Count=%d for %s, want 5", item.Count, name)
		}
	}

	// Completion now fires at the overridden target.
	if err := store.SetSelected(name); err != nil {
		t.Fatal(err)
	}
	var completed bool
	for i := 0; i < 5; i++ {
		_, completed, _ = store.Increment()
	}
	if !completed {
		t.Error("five ticks should complete the overridden target")
	}
}

func TestHistoryCapped(t *testing.T) {
	store, _ := newTestStore(t)
	item := models.ZikhrItem{Name: "Test dhikr", Count: 1}

	for i := 0; i < 150; i++ {
		store.RecordCompletion(item)
	}
	if got := len(store.Completed()); got != 100 {
		t.Errorf("history length = %d, want 100", got)
	}
}

func TestCompletedSince(t *testing.T) {
	store, _ := newTestStore(t)
	item := models.ZikhrItem{Name: "Test dhikr", Count: 1}

	base := time.Date(2026, 3, 15, 12, 0, 0, 0, time.Local)
	for _, age := range []time.Duration{400 * 24 * time.Hour, 120 * 24 * time.Hour, 48 * time.Hour, time.Hour} {
		store.SetNow(func() time.Time { return base.Add(-age) })
		store.RecordCompletion(item)
	}
	store.SetNow(func() time.Time { return base })

	windows := []struct {
		window time.Duration
		want   int
	}{
		{24 * time.Hour, 1},
		{7 * 24 * time.Hour, 2},
		{90 * 24 * time.Hour, 2},
		{365 * 24 * time.Hour, 3},
		{0, 4},
	}
	for _, tc := range windows {
		if got := len(store.CompletedSince(tc.window)); got != tc.want {
			t.Errorf("CompletedSince(%v) = %d entries, want %d", tc.window, got, tc.want)
		}
	}
}

func TestSelectionSurvivesReload(t *testing.T) {
	store, backend := newTestStore(t)
	name := registry.ZikhrItems[2].Name
	if err := store.SetSelected(name); err != nil {
		t.Fatal(err)
	}
	backend.Flush()

	fresh := NewStore(backend)
	if err := fresh.Load(); err != nil {
		t.Fatal(err)
	}
	selected, ok := fresh.Selected()
	if !ok || selected.Name != name {
		t.Errorf("reloaded selection = %+v, %v; want %s", selected, ok, name)
	}
}

func TestStaleSelectionDropsOnReload(t *testing.T) {
	store, backend := newTestStore(t)
	if err := store.AddItem(models.ZikhrItem{Name: "Mine", Count: 33}); err != nil {
		t.Fatal(err)
	}
	store.DeleteItem("Mine")
	backend.Flush()

	fresh := NewStore(backend)
	if err := fresh.Load(); err != nil {
		t.Fatal(err)
	}
	if _, ok := fresh.Selected(); ok {
		t.Error("selection should not resolve after the item was deleted")
	}
}

func TestFavoritesOrderInSortedItems(t *testing.T) {
	store, _ := newTestStore(t)
	first := registry.ZikhrItems[3].Name
	second := registry.ZikhrItems[1].Name

	store.ToggleFavorite(first)
	store.ToggleFavorite(second) // most recent, should list first

	items := store.SortedItems()
	if items[0].Name != second || items[1].Name != first {
		t.Errorf("SortedItems head = [%s, %s], want [%s, %s]", items[0].Name, items[1].Name, second, first)
	}

	if store.ToggleFavorite(first) {
		t.Error("second toggle should report un-favorited")
	}
}

func TestStartEsmaUlHusnaMaterializesOnce(t *testing.T) {
	store, _ := newTestStore(t)

	item, err := store.StartEsmaUlHusna("Ya Rahman")
	if err != nil {
		t.Fatal(err)
	}
	if item.Description == "" {
		t.Error("meaning not carried into description")
	}
	if !store.IsCustom("Ya Rahman") {
		t.Error("started name should be a custom item")
	}

	before := len(store.Items())
	if _, err := store.StartEsmaUlHusna("Ya Rahman"); err != nil {
		t.Fatal(err)
	}
	if len(store.Items()) != before {
		t.Error("restarting the same name duplicated the item")
	}

	if _, err := store.StartEsmaUlHusna("Ya Nobody"); err == nil {
		t.Error("expected error for unknown name")
	}
}

func TestSetPreference(t *testing.T) {
	store, _ := newTestStore(t)

	if err := store.SetPreference("appearance", "beads"); err != nil {
		t.Fatal(err)
	}
	if err := store.SetPreference("sound", "false"); err != nil {
		t.Fatal(err)
	}
	s := store.Settings()
	if string(s.AppearanceMode) != "beads" || s.SoundEnabled {
		t.Errorf("settings = %+v", s)
	}

	if err := store.SetPreference("appearance", "neon"); err == nil {
		t.Error("expected error for unknown appearance mode")
	}
	if err := store.SetPreference("bogus", "on"); err == nil {
		t.Error("expected error for unknown key")
	}

	// Boolean keys take exactly "true" or "false"; anything else is
	// rejected without touching the stored value.
	if err := store.SetPreference("sfx", "yes"); err == nil {
		t.Error("expected error for non-boolean value")
	}
	if !store.Settings().SfxEnabled {
		t.Error("rejected value still changed the setting")
	}
}
