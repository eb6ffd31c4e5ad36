package catalog

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

var (
	errMissingColon = errors.New("missing ':' separator")
	errNotNumeric   = errors.New("minutes and seconds must be non-negative integers")

	// ErrDurationOutOfRange reports a duration, or a running total, that
	// does not fit in a time.Duration.
	ErrDurationOutOfRange = errors.New("duration out of range")
)

const maxSeconds = math.MaxInt64 / int64(time.Second)

// ParseDuration parses a "minutes:seconds" string. Minutes are unbounded and
// seconds are not required to be below 60; the value is simply m*60 + s.
func ParseDuration(s string) (time.Duration, error) {
	mins, secs, ok := strings.Cut(s, ":")
	if !ok {
		return 0, errMissingColon
	}
	m, err := parseUnsigned(mins)
	if err != nil {
		return 0, err
	}
	sec, err := parseUnsigned(secs)
	if err != nil {
		return 0, err
	}
	// Both parts fit in 32 bits, so m*60+sec cannot overflow int64.
	total := m*60 + sec
	if total > maxSeconds {
		return 0, ErrDurationOutOfRange
	}
	return time.Duration(total) * time.Second, nil
}

func parseUnsigned(s string) (int64, error) {
	if s == "" {
		return 0, errNotNumeric
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, errNotNumeric
		}
	}
	n, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("out of range: %w", err)
	}
	return n, nil
}

// Sum adds up the durations of every material in topics. The first material
// that fails to parse, or that pushes the total out of range, is reported as
// a *MalformedDurationError.
func Sum(topics []Topic) (time.Duration, error) {
	_, total, err := totals(topics)
	return total, err
}

// totals parses every material once and returns each topic's duration along
// with the overall sum. Every per-topic value is bounded by the sum.
func totals(topics []Topic) ([]time.Duration, time.Duration, error) {
	perTopic := make([]time.Duration, len(topics))
	var total time.Duration
	for i, t := range topics {
		for _, m := range t.Materials {
			d, err := ParseDuration(m.Duration)
			if err == nil {
				total, err = add(total, d)
			}
			if err != nil {
				return nil, 0, &MalformedDurationError{
					Topic:    t.Title,
					Material: m.Title,
					Value:    m.Duration,
					Err:      err,
				}
			}
			perTopic[i] += d
		}
	}
	return perTopic, total, nil
}

func add(a, b time.Duration) (time.Duration, error) {
	if b > math.MaxInt64-a {
		return 0, ErrDurationOutOfRange
	}
	return a + b, nil
}

// FormatTotal renders d as "<h> Jam <m> Menit", or "<m> Menit" under an hour.
// Leftover seconds are truncated.
func FormatTotal(d time.Duration) string {
	secs := int64(d / time.Second)
	hours := secs / 3600
	minutes := (secs % 3600) / 60
	if hours >= 1 {
		return fmt.Sprintf("%d Jam %d Menit", hours, minutes)
	}
	return fmt.Sprintf("%d Menit", minutes)
}

// Aggregate sums the material durations in topics and formats the result.
func Aggregate(topics []Topic) (string, error) {
	total, err := Sum(topics)
	if err != nil {
		return "", err
	}
	return FormatTotal(total), nil
}
