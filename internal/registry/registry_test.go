package registry

import (
	"testing"
	"time"
)

func TestDailyHadithStableWithinADay(t *testing.T) {
	morning := time.Date(2026, 3, 16, 6, 0, 0, 0, time.Local) // a Monday
	evening := time.Date(2026, 3, 16, 23, 30, 0, 0, time.Local)

	if DailyHadith(morning) != DailyHadith(evening) {
		t.Error("hadith changed within the same day")
	}
}

func TestDailyHadithRotatesAcrossDays(t *testing.T) {
	// With a pool larger than one, consecutive non-Friday days differ.
	monday := time.Date(2026, 3, 16, 12, 0, 0, 0, time.Local)
	tuesday := monday.AddDate(0, 0, 1)

	if len(DailyHadiths) > 1 && DailyHadith(monday) == DailyHadith(tuesday) {
		t.Error("expected different hadiths on consecutive days")
	}
}

func TestFridayUsesFridayPool(t *testing.T) {
	friday := time.Date(2026, 3, 20, 12, 0, 0, 0, time.Local)
	if friday.Weekday() != time.Friday {
		t.Fatalf("test date is %s, not Friday", friday.Weekday())
	}

	got := DailyHadith(friday)
	for _, h := range FridayMessages {
		if h == got {
			return
		}
	}
	t.Errorf("Friday hadith %q not drawn from the Friday pool", got.Text)
}

func TestFindZikhr(t *testing.T) {
	if _, ok := FindZikhr(ZikhrItems[0].Name); !ok {
		t.Errorf("FindZikhr(%q) not found", ZikhrItems[0].Name)
	}
	if _, ok := FindZikhr("does-not-exist"); ok {
		t.Error("FindZikhr found a nonexistent item")
	}
}

func TestEsmaUlHusnaComplete(t *testing.T) {
	if len(EsmaUlHusna) != 99 {
		t.Fatalf("registry holds %d names, want 99", len(EsmaUlHusna))
	}
	seen := map[string]bool{}
	for _, item := range EsmaUlHusna {
		if seen[item.Name] {
			t.Errorf("duplicate name %q", item.Name)
		}
		seen[item.Name] = true
		if item.ArabicName == "" || item.Meaning == "" {
			t.Errorf("%q is missing its Arabic spelling or meaning", item.Name)
		}
		if item.Count <= 0 {
			t.Errorf("%q has non-positive count %d", item.Name, item.Count)
		}
	}
}

func TestSearchEsmaUlHusna(t *testing.T) {
	if got := SearchEsmaUlHusna(""); len(got) != len(EsmaUlHusna) {
		t.Errorf("empty query returned %d of %d entries", len(got), len(EsmaUlHusna))
	}

	got := SearchEsmaUlHusna("rahman")
	if len(got) == 0 {
		t.Fatal("case-insensitive name search returned nothing")
	}
	for _, item := range got {
		if item.Name == "Ya Rahman" {
			return
		}
	}
	t.Error("search for 'rahman' did not include Ya Rahman")
}

func TestUpcomingSpecialDaysExcludesPast(t *testing.T) {
	now := time.Date(2026, 6, 1, 12, 0, 0, 0, time.Local)
	dates := UpcomingSpecialDays(now)
	if len(dates) == 0 {
		t.Fatal("no upcoming special days from mid-2026")
	}

	today := now.Format("2006-01-02")
	prev := ""
	for _, date := range dates {
		if date < today {
			t.Errorf("past date %s listed as upcoming", date)
		}
		if prev != "" && date < prev {
			t.Errorf("dates out of order: %s after %s", date, prev)
		}
		prev = date
		if _, ok := FindSpecialDay(date); !ok {
			t.Errorf("upcoming date %s has no calendar entry", date)
		}
	}
}

func TestSpecialDayEntriesComplete(t *testing.T) {
	for date, day := range SpecialDays {
		if day.Title == "" || day.Description == "" {
			t.Errorf("special day %s is missing title or description", date)
		}
		if _, err := time.Parse("2006-01-02", date); err != nil {
			t.Errorf("special day key %q is not a date: %v", date, err)
		}
	}
}
