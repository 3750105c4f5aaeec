package utils

import (
	"testing"
	"time"

	"zikirmatik/internal/constants"
)

func TestValidateTimeInput(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{"canonical", "08:05", "08:05", false},
		{"single digit hour", "8:05", "08:05", false},
		{"midnight", "0:00", "00:00", false},
		{"end of day", "23:59", "23:59", false},
		{"whitespace", " 12:30 ", "12:30", false},
		{"hour out of range", "24:00", "", true},
		{"minute out of range", "12:60", "", true},
		{"missing minutes", "12", "", true},
		{"not a time", "noon", "", true},
		{"empty", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ValidateTimeInput(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ValidateTimeInput(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ValidateTimeInput(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestIsYesterday(t *testing.T) {
	tests := []struct {
		name string
		prev string
		next string
		want bool
	}{
		{"consecutive days", "2026-03-14", "2026-03-15", true},
		{"same day", "2026-03-15", "2026-03-15", false},
		{"two day gap", "2026-03-13", "2026-03-15", false},
		{"reversed", "2026-03-15", "2026-03-14", false},
		{"month boundary", "2026-03-31", "2026-04-01", true},
		{"year boundary", "2025-12-31", "2026-01-01", true},
		{"leap february", "2028-02-28", "2028-02-29", true},
		{"empty prev", "", "2026-03-15", false},
		{"garbage", "not-a-date", "2026-03-15", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsYesterday(tt.prev, tt.next); got != tt.want {
				t.Errorf("IsYesterday(%q, %q) = %v, want %v", tt.prev, tt.next, got, tt.want)
			}
		})
	}
}

func TestNextOccurrence(t *testing.T) {
	now := time.Date(2026, 3, 15, 10, 0, 0, 0, time.Local)

	t.Run("later today", func(t *testing.T) {
		got, err := NextOccurrence("14:30", now)
		if err != nil {
			t.Fatal(err)
		}
		want := time.Date(2026, 3, 15, 14, 30, 0, 0, time.Local)
		if !got.Equal(want) {
			t.Errorf("got %v, want %v", got, want)
		}
	})

	t.Run("already passed rolls to tomorrow", func(t *testing.T) {
		got, err := NextOccurrence("09:00", now)
		if err != nil {
			t.Fatal(err)
		}
		want := time.Date(2026, 3, 16, 9, 0, 0, 0, time.Local)
		if !got.Equal(want) {
			t.Errorf("got %v, want %v", got, want)
		}
	})

	t.Run("exactly now rolls to tomorrow", func(t *testing.T) {
		got, err := NextOccurrence("10:00", now)
		if err != nil {
			t.Fatal(err)
		}
		want := time.Date(2026, 3, 16, 10, 0, 0, 0, time.Local)
		if !got.Equal(want) {
			t.Errorf("got %v, want %v", got, want)
		}
	})

	t.Run("invalid time", func(t *testing.T) {
		if _, err := NextOccurrence("25:00", now); err == nil {
			t.Error("expected error for invalid time")
		}
	})
}

func TestValidateOffset(t *testing.T) {
	tests := []struct {
		name    string
		value   int
		unit    constants.OffsetUnit
		wantErr bool
	}{
		{"one hour", 1, constants.OffsetHour, false},
		{"max hours", 240, constants.OffsetHour, false},
		{"too many hours", 241, constants.OffsetHour, true},
		{"one day", 1, constants.OffsetDay, false},
		{"max days", 30, constants.OffsetDay, false},
		{"too many days", 31, constants.OffsetDay, true},
		{"zero", 0, constants.OffsetHour, true},
		{"negative", -5, constants.OffsetDay, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateOffset(tt.value, tt.unit)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateOffset(%d, %q) error = %v, wantErr %v", tt.value, tt.unit, err, tt.wantErr)
			}
		})
	}
}

func TestOffsetDuration(t *testing.T) {
	if got := OffsetDuration(3, constants.OffsetHour); got != 3*time.Hour {
		t.Errorf("3 hours = %v", got)
	}
	if got := OffsetDuration(2, constants.OffsetDay); got != 48*time.Hour {
		t.Errorf("2 days = %v", got)
	}
}
