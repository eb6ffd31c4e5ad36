package analytics_test

import (
	"testing"

	"github.com/p-n-ai/bootcamp-landing/internal/analytics"
)

func TestMemoryEventLogger_LogEvent(t *testing.T) {
	logger := analytics.NewMemoryEventLogger()

	err := logger.LogEvent(analytics.Event{
		SessionID: "sess-1",
		Type:      analytics.EventSyllabusOpened,
		CourseID:  "php8",
		Data: map[string]any{
			"surface": "ws",
		},
	})
	if err != nil {
		t.Fatalf("LogEvent() error = %v", err)
	}

	events := logger.Events()
	if len(events) != 1 {
		t.Fatalf("len(events) = %d, want 1", len(events))
	}
	if events[0].Type != analytics.EventSyllabusOpened {
		t.Errorf("Type = %q, want %s", events[0].Type, analytics.EventSyllabusOpened)
	}
	if events[0].CreatedAt.IsZero() {
		t.Error("CreatedAt should be set")
	}
}

func TestMemoryEventLogger_RequiresType(t *testing.T) {
	logger := analytics.NewMemoryEventLogger()

	if err := logger.LogEvent(analytics.Event{CourseID: "php8"}); err == nil {
		t.Fatal("expected error for missing event type")
	}
	if len(logger.Events()) != 0 {
		t.Error("invalid event should not be stored")
	}
}

func TestNopEventLogger(t *testing.T) {
	var logger analytics.EventLogger = analytics.NopEventLogger{}
	if err := logger.LogEvent(analytics.Event{}); err != nil {
		t.Errorf("LogEvent() error = %v", err)
	}
}

func TestPostgresEventLogger_LogEvent_NilPool(t *testing.T) {
	logger := analytics.NewPostgresEventLogger(nil)

	err := logger.LogEvent(analytics.Event{
		Type:     analytics.EventCTAClicked,
		CourseID: "laravel12",
	})
	if err == nil {
		t.Fatal("expected error for nil pool")
	}
}
