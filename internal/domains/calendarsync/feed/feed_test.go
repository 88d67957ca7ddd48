package feed_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"tourbase/internal/domains/calendarsync/feed"
)

const sampleFeed = `BEGIN:VCALENDAR
VERSION:2.0
PRODID:-//airbnb//hosting//EN
BEGIN:VEVENT
UID:evt-1@airbnb.com
DTSTART;VALUE=DATE:20260901
DTEND;VALUE=DATE:20260904
SUMMARY:Reserved
END:VEVENT
BEGIN:VEVENT
DTSTART;VALUE=DATE:20260910
DTEND;VALUE=DATE:20260912
SUMMARY:No UID
END:VEVENT
BEGIN:VEVENT
UID:evt-2@airbnb.com
DTSTART:20261001T140000Z
SUMMARY:Single day
END:VEVENT
BEGIN:VEVENT
UID:evt-3@airbnb.com
SUMMARY:No dates
END:VEVENT
END:VCALENDAR
`

func TestParse(t *testing.T) {
	events, err := feed.Parse(strings.NewReader(sampleFeed))

	assert.NoError(t, err)
	assert.Len(t, events, 2)

	assert.Equal(t, "evt-1@airbnb.com", events[0].UID)
	assert.Equal(t, time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC), events[0].Start)
	assert.Equal(t, time.Date(2026, 9, 4, 0, 0, 0, 0, time.UTC), events[0].End)
	assert.Equal(t, "Reserved", events[0].Summary)

	// DATE-TIME values collapse to the day, and a missing DTEND means a
	// one-day block.
	assert.Equal(t, "evt-2@airbnb.com", events[1].UID)
	assert.Equal(t, time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC), events[1].Start)
	assert.Equal(t, time.Date(2026, 10, 2, 0, 0, 0, 0, time.UTC), events[1].End)
}

func TestParse_InvalidDocument(t *testing.T) {
	_, err := feed.Parse(strings.NewReader("this is not an ical document"))

	assert.Error(t, err)
}

func TestSerialize_RoundTrip(t *testing.T) {
	in := []feed.Event{
		{
			UID:     "booking-1",
			Start:   time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
			End:     time.Date(2026, 9, 4, 0, 0, 0, 0, time.UTC),
			Summary: "Reserved",
		},
		{
			UID:     "booking-2",
			Start:   time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC),
			End:     time.Date(2026, 9, 11, 0, 0, 0, 0, time.UTC),
			Summary: "Reserved",
		},
	}

	doc := feed.Serialize("tourbase.example.com", "unit-1", in)

	assert.True(t, strings.Contains(doc, "BEGIN:VCALENDAR"))
	assert.True(t, strings.Contains(doc, "booking-1@tourbase.example.com"))

	out, err := feed.Parse(strings.NewReader(doc))

	assert.NoError(t, err)
	assert.Len(t, out, 2)
	assert.Equal(t, in[0].Start, out[0].Start)
	assert.Equal(t, in[0].End, out[0].End)
	assert.Equal(t, in[1].Start, out[1].Start)
	assert.Equal(t, in[1].End, out[1].End)
}
