package feed

//go:generate go run go.uber.org/mock/mockgen -source=./feed.go -destination=../mocks/feed_mock.go -package=mocks

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
	"tourbase/shared/constant"
	"tourbase/shared/failure"
	"tourbase/shared/logger"

	ics "github.com/arran4/golang-ical"
)

// Event is one busy range lifted out of an iCal feed. Start and End follow
// iCal all-day semantics: End is the first free day (exclusive).
type Event struct {
	UID     string
	Start   time.Time
	End     time.Time
	Summary string
}

type Fetcher interface {
	Fetch(ctx context.Context, url string) ([]Event, error)
}

type httpFetcher struct {
	client *http.Client
}

func NewFetcher(timeout time.Duration) Fetcher {
	return &httpFetcher{
		client: &http.Client{Timeout: timeout},
	}
}

func (f *httpFetcher) Fetch(ctx context.Context, url string) ([]Event, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		logger.ErrorWithStack(err)

		return nil, fmt.Errorf("failed to build feed request: %w", err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, failure.BadGateway(fmt.Sprintf("calendar feed unreachable: %v", err)) // nolint:wrapcheck
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, failure.BadGateway(fmt.Sprintf("calendar feed returned status %d", resp.StatusCode)) // nolint:wrapcheck
	}

	events, err := Parse(resp.Body)
	if err != nil {
		return nil, failure.BadGateway(fmt.Sprintf("calendar feed is not valid iCal: %v", err)) // nolint:wrapcheck
	}

	return events, nil
}

// Parse reads an iCal document and returns its events as busy ranges.
// Events missing a UID or a date range are skipped rather than failing the
// whole feed, since external platforms are sloppy about both.
func Parse(r io.Reader) ([]Event, error) {
	cal, err := ics.ParseCalendar(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse calendar: %w", err)
	}

	events := []Event{}

	for _, e := range cal.Events() {
		uid := e.Id()
		if uid == "" {
			continue
		}

		start, ok := parseDayProperty(e, ics.ComponentPropertyDtStart)
		if !ok {
			continue
		}

		end, ok := parseDayProperty(e, ics.ComponentPropertyDtEnd)
		if !ok {
			// DTEND is optional for single-day events.
			end = start.AddDate(0, 0, 1)
		}

		if !start.Before(end) {
			continue
		}

		summary := ""
		if prop := e.GetProperty(ics.ComponentPropertySummary); prop != nil {
			summary = prop.Value
		}

		events = append(events, Event{
			UID:     uid,
			Start:   start,
			End:     end,
			Summary: summary,
		})
	}

	return events, nil
}

func parseDayProperty(e *ics.VEvent, name ics.ComponentProperty) (time.Time, bool) {
	prop := e.GetProperty(name)
	if prop == nil || len(prop.Value) < len(constant.ICalDayFormat) {
		return time.Time{}, false
	}

	// Both DATE (20060102) and DATE-TIME (20060102T150405Z) values carry the
	// day in the first eight characters. Busy blocks are day-granular.
	day, err := time.Parse(constant.ICalDayFormat, prop.Value[:len(constant.ICalDayFormat)])
	if err != nil {
		return time.Time{}, false
	}

	return day, true
}

// Serialize renders busy ranges as an iCal document for platforms that pull
// our availability.
func Serialize(host, unitID string, events []Event) string {
	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//tourbase//booking-calendar//EN")
	// Identify which unit the feed belongs to without leaking guest data.
	cal.SetXWRCalName("unit-" + unitID)

	for _, e := range events {
		event := cal.AddEvent(fmt.Sprintf("%s@%s", e.UID, host))
		event.SetAllDayStartAt(e.Start)
		event.SetAllDayEndAt(e.End)
		event.SetSummary(e.Summary)
		event.SetStatus(ics.ObjectStatusConfirmed)
	}

	return cal.Serialize()
}
