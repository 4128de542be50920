package availability

import (
	"slices"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 12, 0, 0, 0, time.UTC)
}

func TestForDate_KnownSequences(t *testing.T) {
	cases := map[int][]string{
		1:  {"17:00", "17:30", "18:00", "20:00", "21:00"},
		2:  {"17:00", "17:30", "18:00", "18:30", "20:00", "20:30", "21:00", "22:00"},
		15: {"17:00", "17:30", "20:30", "22:30"},
		28: {"17:00", "17:30", "18:00", "18:30", "19:30", "20:30", "21:00", "21:30", "22:00", "22:30"},
	}
	for d, want := range cases {
		got := ForDate(day(2025, time.June, d))
		if !slices.Equal(got, want) {
			t.Fatalf("day %d: expected %v, got %v", d, want, got)
		}
	}
}

func TestForDate_Deterministic(t *testing.T) {
	first := ForDate(day(2025, time.June, 1))
	second := ForDate(day(2025, time.June, 1))
	if !slices.Equal(first, second) {
		t.Fatalf("expected identical results, got %v and %v", first, second)
	}
	if !slices.IsSorted(first) {
		t.Fatalf("expected sorted slots, got %v", first)
	}
}

func TestForDate_KeyedOnDayOfMonth(t *testing.T) {
	jan := ForDate(day(2024, time.January, 9))
	oct := ForDate(day(2026, time.October, 9))
	if !slices.Equal(jan, oct) {
		t.Fatalf("expected same slots for the 9th of any month, got %v and %v", jan, oct)
	}
}

func TestForDate_SlotBounds(t *testing.T) {
	for d := 1; d <= 31; d++ {
		slots := ForDate(day(2025, time.January, d))
		if slots == nil {
			t.Fatalf("day %d: expected non-nil slice", d)
		}
		seen := make(map[string]bool, len(slots))
		for _, slot := range slots {
			if seen[slot] {
				t.Fatalf("day %d: duplicate slot %s", d, slot)
			}
			seen[slot] = true

			parts := strings.Split(slot, ":")
			if len(parts) != 2 {
				t.Fatalf("day %d: malformed slot %q", d, slot)
			}
			hour, err := strconv.Atoi(parts[0])
			if err != nil || hour < FirstHour || hour > LastHour {
				t.Fatalf("day %d: hour out of range in %q", d, slot)
			}
			if parts[1] != "00" && parts[1] != "30" {
				t.Fatalf("day %d: unexpected minute in %q", d, slot)
			}
		}
	}
}

func TestForDate_Concurrent(t *testing.T) {
	want := ForDate(day(2025, time.March, 14))
	var wg sync.WaitGroup
	errs := make(chan string, 16)
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if got := ForDate(day(2025, time.March, 14)); !slices.Equal(got, want) {
				errs <- strings.Join(got, ",")
			}
		}()
	}
	wg.Wait()
	close(errs)
	for got := range errs {
		t.Fatalf("concurrent call diverged: %s", got)
	}
}

func TestForDateString(t *testing.T) {
	got, err := ForDateString("2025-06-01")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !slices.Equal(got, ForDate(day(2025, time.June, 1))) {
		t.Fatalf("string and time variants disagree: %v", got)
	}

	if _, err := ForDateString("06/01/2025"); err == nil {
		t.Fatalf("expected parse error")
	}
}

func TestIsAvailable(t *testing.T) {
	date := day(2025, time.June, 1)
	if !IsAvailable(date, "18:00") {
		t.Fatalf("expected 18:00 to be open")
	}
	if IsAvailable(date, "18:30") {
		t.Fatalf("expected 18:30 to be taken")
	}
	if IsAvailable(date, "16:00") {
		t.Fatalf("expected 16:00 to be outside service hours")
	}
}
