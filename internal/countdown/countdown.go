// Package countdown computes the promo banner countdown. The deadline rolls
// forward by whole periods, so the banner never sits at zero.
package countdown

import (
	"fmt"
	"time"
)

// DefaultPeriod matches the three-day promo window.
const DefaultPeriod = 72 * time.Hour

// Remaining is the time left until the deadline, split for display.
type Remaining struct {
	Days    int `json:"days"`
	Hours   int `json:"hours"`
	Minutes int `json:"minutes"`
	Seconds int `json:"seconds"`
}

// Pad formats a component as two digits, e.g. 7 -> "07".
func Pad(n int) string {
	return fmt.Sprintf("%02d", n)
}

// Countdown is a rolling deadline anchored at a start time.
type Countdown struct {
	start  time.Time
	period time.Duration
}

// New creates a countdown whose first deadline is start+period.
func New(start time.Time, period time.Duration) *Countdown {
	if period <= 0 {
		period = DefaultPeriod
	}
	return &Countdown{start: start, period: period}
}

// Deadline returns the first start+k*period strictly after now.
func (c *Countdown) Deadline(now time.Time) time.Time {
	elapsed := now.Sub(c.start)
	if elapsed < 0 {
		return c.start.Add(c.period)
	}
	k := elapsed/c.period + 1
	return c.start.Add(k * c.period)
}

// Remaining returns the time left at now, truncated to whole seconds.
func (c *Countdown) Remaining(now time.Time) Remaining {
	secs := int(c.Deadline(now).Sub(now) / time.Second)
	return Remaining{
		Days:    secs / 86400,
		Hours:   (secs % 86400) / 3600,
		Minutes: (secs % 3600) / 60,
		Seconds: secs % 60,
	}
}
