package application

import (
	"fmt"
	"strings"
	"time"

	"github.com/arebot/horasbot/internal/domain"
	"github.com/arebot/horasbot/internal/ports"
)

// dayOffsets maps accent-free lowercase working-day names to their offset
// from Monday. Weekend names never reach the resolver: the interpreter's
// contract only emits these five.
var dayOffsets = map[string]int{
	"lunes":     0,
	"martes":    1,
	"miercoles": 2,
	"jueves":    3,
	"viernes":   4,
}

// WeekMonday returns the Monday on or before ref, truncated to midnight in
// ref's location. Every week is identified by its Monday date.
func WeekMonday(ref time.Time) time.Time {
	// Go weekdays start at Sunday=0; shift so Monday=0.
	daysSinceMonday := (int(ref.Weekday()) + 6) % 7
	monday := ref.AddDate(0, 0, -daysSinceMonday)
	return time.Date(monday.Year(), monday.Month(), monday.Day(), 0, 0, 0, 0, ref.Location())
}

// ParseReferenceDate interprets an ISO calendar date ("2026-02-03"). An
// empty value means "now" per the given clock.
func ParseReferenceDate(value string, clock ports.Clock) (time.Time, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return clock.Now(), nil
	}

	parsed, err := time.Parse("2006-01-02", trimmed)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", domain.ErrDateParse, value)
	}

	return parsed, nil
}

// ResolveDays maps working-day names onto concrete dates within the week of
// ref, in input order. Unrecognized names are skipped, so the result may be
// shorter than the input or empty.
func ResolveDays(names []string, ref time.Time) []time.Time {
	monday := WeekMonday(ref)

	dates := make([]time.Time, 0, len(names))
	for _, name := range names {
		offset, ok := dayOffsets[strings.ToLower(strings.TrimSpace(name))]
		if !ok {
			continue
		}
		dates = append(dates, monday.AddDate(0, 0, offset))
	}

	return dates
}
