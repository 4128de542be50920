// Package availability produces the bookable evening time slots for a calendar date.
//
// Slots come from a seeded multiplicative linear-congruential generator, so the same
// date always yields the same list. Only the day-of-month feeds the seed.
package availability

import (
	"fmt"
	"slices"
	"time"
)

const (
	// FirstHour is the earliest seating hour.
	FirstHour = 17
	// LastHour is the latest seating hour.
	LastHour = 22

	modulus    int64 = 1<<35 - 31
	multiplier int64 = 185852

	onTheHourOdds = 0.6
	halfPastOdds  = 0.4
	isoDateLayout = "2006-01-02"
	slotLayout    = "%02d:%02d"
)

type generator struct {
	state int64
}

func newGenerator(seed int64) *generator {
	return &generator{state: seed % modulus}
}

// next advances the sequence and returns a value in [0, 1).
// state*multiplier stays below 2^53, so the product is exact in int64.
func (g *generator) next() float64 {
	g.state = (g.state * multiplier) % modulus
	return float64(g.state) / float64(modulus)
}

// ForDate returns the sorted slots ("HH:MM") open on date. The result is never nil;
// an empty slice means the evening is fully booked.
func ForDate(date time.Time) []string {
	g := newGenerator(int64(date.Day()))
	slots := make([]string, 0, 2*(LastHour-FirstHour+1))

	for hour := FirstHour; hour <= LastHour; hour++ {
		// Both draws happen every hour so the sequence stays aligned.
		if g.next() < onTheHourOdds {
			slots = append(slots, fmt.Sprintf(slotLayout, hour, 0))
		}
		if g.next() < halfPastOdds {
			slots = append(slots, fmt.Sprintf(slotLayout, hour, 30))
		}
	}

	slices.Sort(slots)
	return slots
}

// ForDateString parses a YYYY-MM-DD date and returns its slots.
func ForDateString(isoDate string) ([]string, error) {
	date, err := ParseDate(isoDate)
	if err != nil {
		return nil, err
	}
	return ForDate(date), nil
}

// ParseDate parses the YYYY-MM-DD form the booking page submits.
func ParseDate(isoDate string) (time.Time, error) {
	date, err := time.Parse(isoDateLayout, isoDate)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse date %q: %w", isoDate, err)
	}
	return date, nil
}

// FormatDate renders date as YYYY-MM-DD.
func FormatDate(date time.Time) string {
	return date.Format(isoDateLayout)
}

// IsAvailable reports whether slot is open on date.
func IsAvailable(date time.Time, slot string) bool {
	_, found := slices.BinarySearch(ForDate(date), slot)
	return found
}
