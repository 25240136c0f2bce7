package store

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"time"

	"restodesk/models"
)

const calendarPrefix = "calendar/"

// CalendarBook persists calendar events through any Store.
type CalendarBook struct {
	store Store
	now   func() time.Time
}

// NewCalendarBook wraps a Store for calendar use.
func NewCalendarBook(s Store) *CalendarBook {
	return &CalendarBook{store: s, now: time.Now}
}

// Add saves the event, assigning a millisecond-timestamp ID when it has
// none, and returns the stored event.
func (b *CalendarBook) Add(ev models.CalendarEvent) (models.CalendarEvent, error) {
	if ev.ID == "" {
		ev.ID = strconv.FormatInt(b.now().UnixMilli(), 10)
	}
	encoded, err := json.Marshal(ev)
	if err != nil {
		return models.CalendarEvent{}, fmt.Errorf("encode event: %w", err)
	}
	if err := b.store.Set(calendarPrefix+ev.ID, encoded); err != nil {
		return models.CalendarEvent{}, fmt.Errorf("save event %s: %w", ev.ID, err)
	}
	return ev, nil
}

// Events returns all stored events ordered by date, then start time.
func (b *CalendarBook) Events() ([]models.CalendarEvent, error) {
	keys, err := b.store.Keys(calendarPrefix)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}

	events := make([]models.CalendarEvent, 0, len(keys))
	for _, key := range keys {
		raw, err := b.store.Get(key)
		if err != nil {
			return nil, fmt.Errorf("load event %s: %w", key, err)
		}
		var ev models.CalendarEvent
		if err := json.Unmarshal(raw, &ev); err != nil {
			return nil, fmt.Errorf("decode event %s: %w", key, err)
		}
		events = append(events, ev)
	}

	sort.SliceStable(events, func(i, j int) bool {
		if events[i].EventDate != events[j].EventDate {
			return events[i].EventDate < events[j].EventDate
		}
		return events[i].StartTime < events[j].StartTime
	})
	return events, nil
}

// Remove deletes the event with the given ID. Removing a missing ID is not
// an error.
func (b *CalendarBook) Remove(id string) error {
	if err := b.store.Delete(calendarPrefix + id); err != nil {
		return fmt.Errorf("remove event %s: %w", id, err)
	}
	return nil
}
