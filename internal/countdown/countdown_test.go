package countdown

import (
	"testing"
	"time"
)

func TestCountdown_Remaining(t *testing.T) {
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	c := New(start, 72*time.Hour)

	tests := []struct {
		name string
		now  time.Time
		want Remaining
	}{
		{"at start", start, Remaining{Days: 3}},
		{"one second in", start.Add(time.Second), Remaining{Days: 2, Hours: 23, Minutes: 59, Seconds: 59}},
		{"mid window", start.Add(25*time.Hour + 30*time.Minute), Remaining{Days: 1, Hours: 22, Minutes: 30}},
		{"sub-second truncates", start.Add(72*time.Hour - 1500*time.Millisecond), Remaining{Seconds: 1}},
		{"rolls over at deadline", start.Add(72 * time.Hour), Remaining{Days: 3}},
		{"second window", start.Add(100 * time.Hour), Remaining{Days: 1, Hours: 20}},
		{"before start", start.Add(-time.Hour), Remaining{Days: 3, Hours: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := c.Remaining(tt.now); got != tt.want {
				t.Errorf("Remaining() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestCountdown_DeadlineAlwaysAhead(t *testing.T) {
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	c := New(start, time.Hour)

	for i := 0; i < 500; i++ {
		now := start.Add(time.Duration(i) * 7 * time.Minute)
		d := c.Deadline(now)
		if !d.After(now) {
			t.Fatalf("Deadline(%v) = %v, not after now", now, d)
		}
		if d.Sub(now) > time.Hour {
			t.Fatalf("Deadline(%v) = %v, more than one period ahead", now, d)
		}
	}
}

func TestNew_DefaultPeriod(t *testing.T) {
	c := New(time.Time{}, 0)
	if c.period != DefaultPeriod {
		t.Errorf("period = %v, want %v", c.period, DefaultPeriod)
	}
}

func TestPad(t *testing.T) {
	tests := map[int]string{0: "00", 7: "07", 42: "42", 123: "123"}
	for in, want := range tests {
		if got := Pad(in); got != want {
			t.Errorf("Pad(%d) = %q, want %q", in, got, want)
		}
	}
}
