package daterange_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"tourbase/shared/daterange"
)

func day(value string) time.Time {
	t, err := daterange.ParseDay(value)
	if err != nil {
		panic(err)
	}

	return t
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name   string
		aStart string
		aEnd   string
		bStart string
		bEnd   string
		want   bool
	}{
		{
			name:   "disjoint ranges",
			aStart: "2026-01-01", aEnd: "2026-01-05",
			bStart: "2026-01-10", bEnd: "2026-01-12",
			want: false,
		},
		{
			name:   "back to back is not an overlap",
			aStart: "2026-01-01", aEnd: "2026-01-05",
			bStart: "2026-01-05", bEnd: "2026-01-08",
			want: false,
		},
		{
			name:   "single shared night",
			aStart: "2026-01-01", aEnd: "2026-01-05",
			bStart: "2026-01-04", bEnd: "2026-01-06",
			want: true,
		},
		{
			name:   "contained range",
			aStart: "2026-01-01", aEnd: "2026-01-10",
			bStart: "2026-01-03", bEnd: "2026-01-04",
			want: true,
		},
		{
			name:   "identical range",
			aStart: "2026-01-01", aEnd: "2026-01-05",
			bStart: "2026-01-01", bEnd: "2026-01-05",
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := daterange.Overlaps(day(tt.aStart), day(tt.aEnd), day(tt.bStart), day(tt.bEnd))
			assert.Equal(t, tt.want, got)

			// Overlap is symmetric.
			mirrored := daterange.Overlaps(day(tt.bStart), day(tt.bEnd), day(tt.aStart), day(tt.aEnd))
			assert.Equal(t, tt.want, mirrored)
		})
	}
}

func TestContains(t *testing.T) {
	start := day("2026-01-01")
	end := day("2026-01-05")

	assert.True(t, daterange.Contains(start, end, day("2026-01-01")))
	assert.True(t, daterange.Contains(start, end, day("2026-01-04")))
	assert.False(t, daterange.Contains(start, end, day("2026-01-05")), "checkout day is free again")
	assert.False(t, daterange.Contains(start, end, day("2025-12-31")))
}

func TestNights(t *testing.T) {
	assert.Equal(t, 4, daterange.Nights(day("2026-01-01"), day("2026-01-05")))
	assert.Equal(t, 1, daterange.Nights(day("2026-01-01"), day("2026-01-02")))
	assert.Equal(t, 0, daterange.Nights(day("2026-01-05"), day("2026-01-01")))
}

func TestDaysBetween(t *testing.T) {
	assert.Equal(t, 7, daterange.DaysBetween(day("2026-01-01"), day("2026-01-08")))
	assert.Equal(t, -7, daterange.DaysBetween(day("2026-01-08"), day("2026-01-01")))
	assert.Equal(t, 0, daterange.DaysBetween(day("2026-01-01"), day("2026-01-01")))
}

func TestOverlapNights(t *testing.T) {
	assert.Equal(t, 2,
		daterange.OverlapNights(day("2026-01-01"), day("2026-01-05"), day("2026-01-03"), day("2026-01-10")))
	assert.Equal(t, 0,
		daterange.OverlapNights(day("2026-01-01"), day("2026-01-05"), day("2026-01-05"), day("2026-01-10")))
	assert.Equal(t, 4,
		daterange.OverlapNights(day("2026-01-01"), day("2026-01-05"), day("2025-12-01"), day("2026-02-01")))
}
