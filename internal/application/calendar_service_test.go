package application

import (
	"context"
	"testing"
	"time"
)

func TestCalendarService_EventsFor(t *testing.T) {
	t.Parallel()

	repo := &calendarRepoStub{events: []CalendarEvent{
		{ID: "e1", ProgramID: "p-yoga", Title: "Campus Yoga", Date: time.Now(), UserEmail: "jane@student.edu"},
		{ID: "e2", ProgramID: "p-yoga", Title: "Campus Yoga", Date: time.Now(), UserEmail: "other@student.edu"},
		{ID: "e3", ProgramID: "p-gone", Title: "Program", Date: time.Now(), UserEmail: "jane@student.edu"},
	}}
	service := NewCalendarService(repo)

	owned, err := service.EventsFor(context.Background(), student())
	if err != nil {
		t.Fatalf("EventsFor returned error: %v", err)
	}
	if len(owned) != 2 {
		t.Fatalf("expected 2 events, got %+v", owned)
	}
	for _, event := range owned {
		if event.UserEmail != "jane@student.edu" {
			t.Fatalf("foreign event leaked: %+v", event)
		}
	}

	guests, err := service.EventsFor(context.Background(), Principal{})
	if err != nil {
		t.Fatalf("EventsFor returned error: %v", err)
	}
	if guests != nil {
		t.Fatalf("guests own no events, got %+v", guests)
	}
}
