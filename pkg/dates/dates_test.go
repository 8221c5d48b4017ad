package dates

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseString(t *testing.T) {
	midday := time.Date(2026, time.January, 17, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		in   string
		want time.Time
		ok   bool
	}{
		{"strict calendar date", "2026-01-17", midday, true},
		{"padded strict date", "  2026-01-17 ", midday, true},
		{"short month long form", "Jan 17, 2026", midday, true},
		{"full month long form", "January 17, 2026", midday, true},
		{"four letter month", "Sept 17, 2026", time.Date(2026, time.September, 17, 12, 0, 0, 0, time.UTC), true},
		{"lower case month", "jan 17, 2026", midday, true},
		{"rfc3339", "2026-01-17T08:30:00Z", time.Date(2026, time.January, 17, 8, 30, 0, 0, time.UTC), true},
		{"naive datetime", "2026-01-17 08:30:00", time.Date(2026, time.January, 17, 8, 30, 0, 0, time.UTC), true},
		{"empty", "", time.Time{}, false},
		{"blank", "   ", time.Time{}, false},
		{"garbage", "not a date", time.Time{}, false},
		{"impossible day", "2026-02-30", time.Time{}, false},
		{"unknown month", "Foo 17, 2026", time.Time{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseString(tt.in)
			require.Equal(t, tt.ok, ok)
			assert.True(t, tt.want.Equal(got), "got %v want %v", got, tt.want)
		})
	}
}

func TestParse_NonStringInputs(t *testing.T) {
	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

	got, ok := Parse(now)
	assert.True(t, ok)
	assert.Equal(t, now, got)

	got, ok = Parse(&now)
	assert.True(t, ok)
	assert.Equal(t, now, got)

	for _, v := range []any{nil, time.Time{}, (*time.Time)(nil), 42, map[string]any{}} {
		_, ok := Parse(v)
		assert.False(t, ok, "%#v", v)
	}
}

func TestFormat_NeverFails(t *testing.T) {
	assert.Equal(t, "", ShortLabel(time.Time{}))
	assert.Equal(t, "", DayLabel(time.Time{}))
	assert.Equal(t, "TBD", LabelOr(time.Time{}, "TBD"))

	d, ok := ParseString("2026-01-17")
	require.True(t, ok)
	assert.Equal(t, "Jan 17, 2026", ShortLabel(d))
	assert.Equal(t, "Jan 17", DayLabel(d))
}

func TestAddDays(t *testing.T) {
	d := time.Date(2026, 1, 30, 12, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC), AddDays(d, 2))
}
