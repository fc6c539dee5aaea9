package calendar

import (
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"
)

func TestBookAppointment(t *testing.T) {
	now := time.Date(2026, 9, 1, 8, 0, 0, 0, time.UTC)
	svc := &fakeEventService{}
	cal := testCalendar(svc, testConfig(), now)

	raw := cal.BookAppointment(context.Background(), BookingRequest{
		Date:          "2026-09-02",
		Time:          "10:00",
		ServiceName:   "Haircut",
		CustomerName:  "Alice Smith",
		CustomerEmail: "alice@example.com",
		Notes:         "first visit",
	})

	var result bookingResult
	if err := json.Unmarshal([]byte(raw), &result); err != nil {
		t.Fatalf("failed to decode booking result %q: %v", raw, err)
	}
	if !result.Success {
		t.Fatalf("booking failed: %s", raw)
	}
	if result.EventId != "evt-1" {
		t.Errorf("event_id = %q", result.EventId)
	}
	if result.Start != "2026-09-02 10:00" || result.End != "2026-09-02 10:45" {
		t.Errorf("start/end = %q/%q", result.Start, result.End)
	}
	if result.DurationMinutes != 45 {
		t.Errorf("duration_minutes = %d, want 45", result.DurationMinutes)
	}
	if result.Price != "30" {
		t.Errorf("price = %q, want 30", result.Price)
	}

	if len(svc.inserted) != 1 {
		t.Fatalf("inserted %d events, want exactly 1", len(svc.inserted))
	}
	created := svc.inserted[0]
	if created.Summary != "Haircut - Alice Smith" {
		t.Errorf("summary = %q", created.Summary)
	}
	if !created.Start.Equal(time.Date(2026, 9, 2, 10, 0, 0, 0, time.UTC)) {
		t.Errorf("stored start = %v, want UTC instant", created.Start)
	}
	if len(created.Attendees) != 1 || created.Attendees[0] != "alice@example.com" {
		t.Errorf("attendees = %v", created.Attendees)
	}
	if !strings.Contains(created.Description, "Customer: Alice Smith") {
		t.Errorf("description missing customer line: %q", created.Description)
	}
	if !strings.Contains(created.Description, "Booked via Workky Salon AI Assistant") {
		t.Errorf("description missing provenance line: %q", created.Description)
	}
}

func TestBookAppointmentMinNotice(t *testing.T) {
	now := time.Date(2026, 9, 1, 8, 0, 0, 0, time.UTC)
	svc := &fakeEventService{}
	cal := testCalendar(svc, testConfig(), now)

	raw := cal.BookAppointment(context.Background(), BookingRequest{
		Date:         "2026-09-01",
		Time:         "08:30",
		ServiceName:  "Haircut",
		CustomerName: "Alice",
	})
	if !strings.Contains(raw, "at least 1 hour(s) in advance") {
		t.Errorf("unexpected result: %s", raw)
	}
	if len(svc.inserted) != 0 {
		t.Error("rejected booking must not reach the calendar")
	}
}

func TestBookAppointmentMaxAdvance(t *testing.T) {
	now := time.Date(2026, 9, 1, 8, 0, 0, 0, time.UTC)
	cal := testCalendar(&fakeEventService{}, testConfig(), now)

	raw := cal.BookAppointment(context.Background(), BookingRequest{
		Date:         "2026-10-15",
		Time:         "10:00",
		ServiceName:  "Haircut",
		CustomerName: "Alice",
	})
	if !strings.Contains(raw, "up to 30 days in advance") {
		t.Errorf("unexpected result: %s", raw)
	}
}

func TestBookAppointmentInvalidTime(t *testing.T) {
	cal := testCalendar(&fakeEventService{}, testConfig(), time.Date(2026, 9, 1, 8, 0, 0, 0, time.UTC))
	raw := cal.BookAppointment(context.Background(), BookingRequest{
		Date:         "2026-09-02",
		Time:         "10am",
		ServiceName:  "Haircut",
		CustomerName: "Alice",
	})
	if !strings.Contains(raw, "Invalid date/time format") {
		t.Errorf("unexpected result: %s", raw)
	}
}

func TestPriceString(t *testing.T) {
	cases := []struct {
		in   any
		want string
	}{
		{nil, "N/A"},
		{"", "N/A"},
		{"free", "free"},
		{30.0, "30"},
		{29.5, "29.5"},
	}
	for _, tc := range cases {
		if got := priceString(tc.in); got != tc.want {
			t.Errorf("priceString(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
