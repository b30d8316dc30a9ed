package application

import (
	"errors"
	"testing"
	"time"

	"github.com/arebot/horasbot/internal/domain"
	"github.com/arebot/horasbot/internal/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWeekMondayKnownDates(t *testing.T) {
	tests := []struct {
		name string
		ref  time.Time
		want time.Time
	}{
		{
			name: "tuesday resolves to preceding monday",
			ref:  time.Date(2026, 2, 3, 0, 0, 0, 0, time.UTC),
			want: time.Date(2026, 2, 2, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "monday resolves to itself",
			ref:  time.Date(2026, 2, 2, 15, 30, 0, 0, time.UTC),
			want: time.Date(2026, 2, 2, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "sunday resolves to monday six days back",
			ref:  time.Date(2026, 2, 8, 0, 0, 0, 0, time.UTC),
			want: time.Date(2026, 2, 2, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "friday across month boundary",
			ref:  time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
			want: time.Date(2026, 2, 23, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, WeekMonday(tt.ref).Equal(tt.want), "WeekMonday(%v) = %v, want %v", tt.ref, WeekMonday(tt.ref), tt.want)
		})
	}
}

func TestWeekMondayIdempotent(t *testing.T) {
	ref := time.Date(2026, 8, 29, 11, 45, 0, 0, time.UTC)
	for i := 0; i < 14; i++ {
		d := ref.AddDate(0, 0, i)
		monday := WeekMonday(d)
		assert.True(t, WeekMonday(monday).Equal(monday), "WeekMonday not idempotent for %v", d)
	}
}

func TestWeekMondayBounds(t *testing.T) {
	ref := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 21; i++ {
		d := ref.AddDate(0, 0, i)
		monday := WeekMonday(d)
		assert.False(t, monday.After(d), "monday %v after reference %v", monday, d)
		assert.True(t, d.Before(monday.AddDate(0, 0, 7)), "reference %v beyond monday+7 for %v", d, monday)
	}
}

func TestParseReferenceDate(t *testing.T) {
	clock := mocks.NewMockClock(t)

	parsed, err := ParseReferenceDate("2026-02-03", clock)
	require.NoError(t, err)
	assert.True(t, parsed.Equal(time.Date(2026, 2, 3, 0, 0, 0, 0, time.UTC)))
}

func TestParseReferenceDateEmptyUsesClock(t *testing.T) {
	now := time.Date(2026, 2, 5, 9, 0, 0, 0, time.UTC)
	clock := mocks.NewMockClock(t)
	clock.EXPECT().Now().Return(now)

	parsed, err := ParseReferenceDate("  ", clock)
	require.NoError(t, err)
	assert.True(t, parsed.Equal(now))
}

func TestParseReferenceDateMalformed(t *testing.T) {
	clock := mocks.NewMockClock(t)

	_, err := ParseReferenceDate("03/02/2026", clock)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrDateParse))
}

func TestResolveDays(t *testing.T) {
	// 2026-02-05 is a Thursday; its week starts on 2026-02-02.
	ref := time.Date(2026, 2, 5, 0, 0, 0, 0, time.UTC)
	monday := time.Date(2026, 2, 2, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		names []string
		want  []time.Time
	}{
		{
			name:  "monday and tuesday",
			names: []string{"lunes", "martes"},
			want:  []time.Time{monday, monday.AddDate(0, 0, 1)},
		},
		{
			name:  "case and whitespace insensitive",
			names: []string{"  LUNES ", "Viernes"},
			want:  []time.Time{monday, monday.AddDate(0, 0, 4)},
		},
		{
			name:  "weekend name yields nothing",
			names: []string{"domingo"},
			want:  []time.Time{},
		},
		{
			name:  "unknown names skipped in place",
			names: []string{"lunes", "feriado", "miercoles"},
			want:  []time.Time{monday, monday.AddDate(0, 0, 2)},
		},
		{
			name:  "empty input",
			names: nil,
			want:  []time.Time{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolveDays(tt.names, ref)
			require.Len(t, got, len(tt.want))
			for i := range tt.want {
				assert.True(t, got[i].Equal(tt.want[i]), "date %d = %v, want %v", i, got[i], tt.want[i])
			}
		})
	}
}
