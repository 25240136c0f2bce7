package store

import (
	"testing"
	"time"

	"restodesk/models"
)

func TestCalendarBook_AddAssignsID(t *testing.T) {
	book := NewCalendarBook(NewMemStore())
	book.now = func() time.Time { return time.UnixMilli(1740000000000) }

	ev, err := book.Add(models.CalendarEvent{Title: "Moisture check", EventDate: "2025-03-05"})
	if err != nil {
		t.Fatalf("Add() error = %v", err)
	}
	if ev.ID != "1740000000000" {
		t.Errorf("assigned ID = %q, want 1740000000000", ev.ID)
	}

	// A caller-supplied ID is kept.
	ev, err = book.Add(models.CalendarEvent{ID: "custom", Title: "Walkthrough"})
	if err != nil {
		t.Fatalf("Add() error = %v", err)
	}
	if ev.ID != "custom" {
		t.Errorf("ID = %q, want custom", ev.ID)
	}
}

func TestCalendarBook_EventsSortedByDateThenTime(t *testing.T) {
	book := NewCalendarBook(NewMemStore())

	for _, ev := range []models.CalendarEvent{
		{ID: "a", Title: "Late job", EventDate: "2025-03-10", StartTime: "14:00"},
		{ID: "b", Title: "Early job", EventDate: "2025-03-10", StartTime: "08:00"},
		{ID: "c", Title: "Prior day", EventDate: "2025-03-09", StartTime: "16:00"},
	} {
		if _, err := book.Add(ev); err != nil {
			t.Fatalf("Add(%s) error = %v", ev.ID, err)
		}
	}

	events, err := book.Events()
	if err != nil {
		t.Fatalf("Events() error = %v", err)
	}
	got := make([]string, len(events))
	for i, ev := range events {
		got[i] = ev.ID
	}
	want := []string{"c", "b", "a"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("event order = %v, want %v", got, want)
		}
	}
}

func TestCalendarBook_Remove(t *testing.T) {
	book := NewCalendarBook(NewMemStore())

	if _, err := book.Add(models.CalendarEvent{ID: "gone", Title: "Temp"}); err != nil {
		t.Fatalf("Add() error = %v", err)
	}
	if err := book.Remove("gone"); err != nil {
		t.Fatalf("Remove() error = %v", err)
	}

	events, err := book.Events()
	if err != nil {
		t.Fatalf("Events() error = %v", err)
	}
	if len(events) != 0 {
		t.Errorf("Events() after remove = %+v, want empty", events)
	}

	if err := book.Remove("never-existed"); err != nil {
		t.Errorf("Remove() of missing ID error = %v", err)
	}
}

func TestCalendarBook_SQLiteBacked(t *testing.T) {
	s, err := OpenSQLite(t.TempDir() + "/cal.db")
	if err != nil {
		t.Fatalf("OpenSQLite() error = %v", err)
	}
	defer s.Close()

	book := NewCalendarBook(s)
	if _, err := book.Add(models.CalendarEvent{ID: "1", Title: "Dry-out start", EventDate: "2025-03-01"}); err != nil {
		t.Fatalf("Add() error = %v", err)
	}

	events, err := book.Events()
	if err != nil {
		t.Fatalf("Events() error = %v", err)
	}
	if len(events) != 1 || events[0].Title != "Dry-out start" {
		t.Errorf("Events() = %+v", events)
	}
}
