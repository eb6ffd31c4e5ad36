// Package analytics records landing-page events such as syllabus opens and
// call-to-action clicks.
package analytics

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

const dbTimeout = 5 * time.Second

// Event types emitted by the landing page.
const (
	EventSyllabusOpened   = "syllabus_opened"
	EventSyllabusExported = "syllabus_exported"
	EventCTAClicked       = "cta_clicked"
)

// Event is a single analytics event.
type Event struct {
	SessionID string         `json:"session_id,omitempty"`
	Type      string         `json:"type"`
	CourseID  string         `json:"course_id,omitempty"`
	Data      map[string]any `json:"data,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
}

// EventLogger defines event logging behavior.
type EventLogger interface {
	LogEvent(event Event) error
}

// NopEventLogger ignores all events.
type NopEventLogger struct{}

func (NopEventLogger) LogEvent(Event) error {
	return nil
}

// MemoryEventLogger keeps events in memory. Used in development and tests.
type MemoryEventLogger struct {
	mu     sync.Mutex
	events []Event
}

func NewMemoryEventLogger() *MemoryEventLogger {
	return &MemoryEventLogger{
		events: []Event{},
	}
}

func (l *MemoryEventLogger) LogEvent(event Event) error {
	if event.Type == "" {
		return fmt.Errorf("event type is required")
	}
	if event.CreatedAt.IsZero() {
		event.CreatedAt = time.Now()
	}

	l.mu.Lock()
	l.events = append(l.events, event)
	l.mu.Unlock()

	return nil
}

func (l *MemoryEventLogger) Events() []Event {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]Event{}, l.events...)
}

// Schema creates the landing_events table. Run it through database.Migrate.
const Schema = `CREATE TABLE IF NOT EXISTS landing_events (
	id         BIGSERIAL PRIMARY KEY,
	session_id TEXT,
	event_type TEXT NOT NULL,
	course_id  TEXT,
	data       JSONB NOT NULL DEFAULT '{}'::jsonb,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
)`

// PostgresEventLogger inserts events into the landing_events table.
type PostgresEventLogger struct {
	pool *pgxpool.Pool
}

func NewPostgresEventLogger(pool *pgxpool.Pool) *PostgresEventLogger {
	return &PostgresEventLogger{pool: pool}
}

func (l *PostgresEventLogger) LogEvent(event Event) error {
	if l == nil || l.pool == nil {
		return fmt.Errorf("event logger pool is nil")
	}
	if event.Type == "" {
		return fmt.Errorf("event type is required")
	}

	payload := event.Data
	if payload == nil {
		payload = map[string]any{}
	}
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal event data: %w", err)
	}

	createdAt := event.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}

	ctx, cancel := context.WithTimeout(context.Background(), dbTimeout)
	defer cancel()

	_, err = l.pool.Exec(ctx,
		`INSERT INTO landing_events (session_id, event_type, course_id, data, created_at)
		 VALUES ($1, $2, $3, $4::jsonb, $5)`,
		nullIfEmpty(event.SessionID),
		event.Type,
		nullIfEmpty(event.CourseID),
		string(data),
		createdAt,
	)
	if err != nil {
		return fmt.Errorf("insert event: %w", err)
	}

	slog.Debug("event logged",
		"type", event.Type,
		"course_id", event.CourseID,
		"session_id", event.SessionID,
	)
	return nil
}

// CountByType returns how many events of each type have been stored.
func (l *PostgresEventLogger) CountByType(ctx context.Context) (map[string]int64, error) {
	rows, err := l.pool.Query(ctx,
		`SELECT event_type, COUNT(*) FROM landing_events GROUP BY event_type`)
	if err != nil {
		return nil, fmt.Errorf("count events: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int64)
	for rows.Next() {
		var typ string
		var n int64
		if err := rows.Scan(&typ, &n); err != nil {
			return nil, fmt.Errorf("scan event count: %w", err)
		}
		counts[typ] = n
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate event counts: %w", err)
	}
	return counts, nil
}

func nullIfEmpty(v string) any {
	if v == "" {
		return nil
	}
	return v
}
