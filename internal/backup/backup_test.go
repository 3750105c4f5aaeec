package backup

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"zikirmatik/internal/constants"
)

func writeStore(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "zikirmatik.json")
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestCreateAndList(t *testing.T) {
	dir := t.TempDir()
	path := writeStore(t, dir, `{"version":1,"entries":{}}`)
	mgr := NewManager(path)

	backupPath, err := mgr.Create()
	if err != nil {
		t.Fatal(err)
	}
	if filepath.Ext(backupPath) != ".json" {
		t.Errorf("backup suffix = %s, want .json", filepath.Ext(backupPath))
	}
	if _, err := os.Stat(backupPath); err != nil {
		t.Fatalf("backup file missing: %v", err)
	}

	backups, err := mgr.List()
	if err != nil {
		t.Fatal(err)
	}
	if len(backups) != 1 {
		t.Fatalf("List returned %d backups, want 1", len(backups))
	}
	if backups[0].Size == 0 {
		t.Error("backup reported zero size")
	}
}

func TestCreateWithoutSourceFails(t *testing.T) {
	mgr := NewManager(filepath.Join(t.TempDir(), "missing.json"))
	if _, err := mgr.Create(); err == nil {
		t.Error("expected error when the storage file does not exist")
	}
}

func TestListEmptyDirectory(t *testing.T) {
	mgr := NewManager(filepath.Join(t.TempDir(), "zikirmatik.json"))
	backups, err := mgr.List()
	if err != nil {
		t.Fatal(err)
	}
	if len(backups) != 0 {
		t.Errorf("got %d backups in a fresh dir", len(backups))
	}
}

func TestUniqueNamesWithinSameMinute(t *testing.T) {
	dir := t.TempDir()
	path := writeStore(t, dir, `{"version":1,"entries":{}}`)
	mgr := NewManager(path)

	seen := map[string]bool{}
	for i := 0; i < 3; i++ {
		p, err := mgr.Create()
		if err != nil {
			t.Fatal(err)
		}
		if seen[p] {
			t.Fatalf("duplicate backup path %s", p)
		}
		seen[p] = true
	}
}

func TestRotationKeepsMostRecent(t *testing.T) {
	dir := t.TempDir()
	path := writeStore(t, dir, `{"version":1,"entries":{}}`)
	mgr := NewManager(path)

	// Pre-seed more dated backups than the retention limit.
	if err := os.MkdirAll(mgr.BackupDir(), 0700); err != nil {
		t.Fatal(err)
	}
	for i := 1; i <= constants.MaxBackups+5; i++ {
		name := fmt.Sprintf("%s202601%02d-1200.json", constants.BackupFilePrefix, i)
		if err := os.WriteFile(filepath.Join(mgr.BackupDir(), name), []byte("{}"), 0600); err != nil {
			t.Fatal(err)
		}
	}

	if _, err := mgr.Create(); err != nil {
		t.Fatal(err)
	}

	backups, err := mgr.List()
	if err != nil {
		t.Fatal(err)
	}
	if len(backups) != constants.MaxBackups {
		t.Errorf("after rotation: %d backups, want %d", len(backups), constants.MaxBackups)
	}
	// The newest entry must be the one just created.
	for _, b := range backups[1:] {
		if b.Timestamp.After(backups[0].Timestamp) {
			t.Error("List is not sorted newest first")
		}
	}
}

func TestRestoreReplacesStore(t *testing.T) {
	dir := t.TempDir()
	path := writeStore(t, dir, `{"version":1,"entries":{"a":"old"}}`)
	mgr := NewManager(path)

	backupPath, err := mgr.Create()
	if err != nil {
		t.Fatal(err)
	}

	// Mutate the live store, then restore the snapshot.
	if err := os.WriteFile(path, []byte(`{"version":1,"entries":{"a":"new"}}`), 0600); err != nil {
		t.Fatal(err)
	}
	if err := mgr.Restore(backupPath); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != `{"version":1,"entries":{"a":"old"}}` {
		t.Errorf("restored content = %s", data)
	}
}

func TestRestoreRejectsCorruptBackup(t *testing.T) {
	dir := t.TempDir()
	path := writeStore(t, dir, `{"version":1,"entries":{}}`)
	mgr := NewManager(path)

	bad := filepath.Join(dir, "bad.json")
	if err := os.WriteFile(bad, []byte("not json at all{"), 0600); err != nil {
		t.Fatal(err)
	}
	if err := mgr.Restore(bad); err == nil {
		t.Error("expected error restoring a corrupt backup")
	}
}

func TestStripCounter(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"20260101-1200", "20260101-1200"},
		{"20260101-120000", "20260101-120000"},
		{"20260101-1200-1", "20260101-1200"},
		{"20260101-120000-12", "20260101-120000"},
	}
	for _, tt := range tests {
		if got := stripCounter(tt.in); got != tt.want {
			t.Errorf("stripCounter(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
