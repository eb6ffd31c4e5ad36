package catalog_test

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/p-n-ai/bootcamp-landing/internal/catalog"
)

func TestParseDuration(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    time.Duration
		wantErr bool
	}{
		{"zero-padded", "08:12", 8*time.Minute + 12*time.Second, false},
		{"minutes over an hour", "65:30", 65*time.Minute + 30*time.Second, false},
		{"seconds over sixty", "01:75", 2*time.Minute + 15*time.Second, false},
		{"zero", "00:00", 0, false},
		{"missing colon", "0812", 0, true},
		{"empty", "", 0, true},
		{"empty minutes", ":12", 0, true},
		{"empty seconds", "08:", 0, true},
		{"extra colon", "01:02:03", 0, true},
		{"non-numeric", "ab:cd", 0, true},
		{"negative", "-1:00", 0, true},
		{"plus sign", "+1:00", 0, true},
		{"whitespace", " 1:00", 0, true},
		{"minutes past time.Duration range", "200000000:00", 0, true},
		{"minutes past 32 bits", "99999999999:00", 0, true},
		{"largest representable minutes", "153722867:00", 153722867 * time.Minute, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := catalog.ParseDuration(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseDuration(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseDuration(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestAggregate(t *testing.T) {
	tests := []struct {
		name   string
		topics []catalog.Topic
		want   string
	}{
		{
			name:   "no topics",
			topics: nil,
			want:   "0 Menit",
		},
		{
			name: "example syllabus truncates seconds",
			topics: []catalog.Topic{{
				Title: "X",
				Materials: []catalog.Material{
					{Title: "M1", Duration: "08:12"},
					{Title: "M2", Duration: "04:41"},
				},
			}},
			want: "12 Menit",
		},
		{
			name:   "over an hour",
			topics: single("65:30"),
			want:   "1 Jam 5 Menit",
		},
		{
			name:   "exactly one hour",
			topics: single("60:00"),
			want:   "1 Jam 0 Menit",
		},
		{
			name: "across topics",
			topics: []catalog.Topic{
				{Title: "A", Materials: []catalog.Material{{Title: "a", Duration: "59:30"}}},
				{Title: "B", Materials: []catalog.Material{{Title: "b", Duration: "00:30"}}},
			},
			want: "1 Jam 0 Menit",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := catalog.Aggregate(tt.topics)
			if err != nil {
				t.Fatalf("Aggregate() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Aggregate() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestAggregate_SingleMaterial(t *testing.T) {
	for m := 0; m <= 150; m++ {
		for _, s := range []int{0, 1, 30, 59} {
			in := fmt.Sprintf("%02d:%02d", m, s)

			want := fmt.Sprintf("%d Menit", m)
			if m >= 60 {
				want = fmt.Sprintf("%d Jam %d Menit", m/60, m%60)
			}

			got, err := catalog.Aggregate(single(in))
			if err != nil {
				t.Fatalf("Aggregate(%q) error = %v", in, err)
			}
			if got != want {
				t.Fatalf("Aggregate(%q) = %q, want %q", in, got, want)
			}
		}
	}
}

func TestAggregate_Malformed(t *testing.T) {
	topics := []catalog.Topic{{
		Title: "Dasar",
		Materials: []catalog.Material{
			{Title: "ok", Duration: "01:00"},
			{Title: "rusak", Duration: "1 menit"},
		},
	}}

	_, err := catalog.Aggregate(topics)
	if err == nil {
		t.Fatal("Aggregate() should fail on malformed duration")
	}

	var mde *catalog.MalformedDurationError
	if !errors.As(err, &mde) {
		t.Fatalf("error = %T, want *MalformedDurationError", err)
	}
	if mde.Material != "rusak" {
		t.Errorf("Material = %q, want rusak", mde.Material)
	}
	if mde.Topic != "Dasar" {
		t.Errorf("Topic = %q, want Dasar", mde.Topic)
	}
	if mde.Value != "1 menit" {
		t.Errorf("Value = %q, want %q", mde.Value, "1 menit")
	}
}

func TestAggregate_TotalOutOfRange(t *testing.T) {
	topics := []catalog.Topic{{
		Title: "Panjang",
		Materials: []catalog.Material{
			{Title: "pertama", Duration: "100000000:00"},
			{Title: "kedua", Duration: "100000000:00"},
		},
	}}

	got, err := catalog.Aggregate(topics)
	if err == nil {
		t.Fatalf("Aggregate() = %q, want out-of-range error", got)
	}
	if !errors.Is(err, catalog.ErrDurationOutOfRange) {
		t.Errorf("error = %v, want ErrDurationOutOfRange", err)
	}
	var mde *catalog.MalformedDurationError
	if !errors.As(err, &mde) {
		t.Fatalf("error = %T, want *MalformedDurationError", err)
	}
	if mde.Material != "kedua" {
		t.Errorf("Material = %q, want kedua", mde.Material)
	}
}

func TestParseDuration_OutOfRangeIsReported(t *testing.T) {
	_, err := catalog.ParseDuration("200000000:00")
	if !errors.Is(err, catalog.ErrDurationOutOfRange) {
		t.Errorf("ParseDuration() error = %v, want ErrDurationOutOfRange", err)
	}
}

func TestFormatTotal(t *testing.T) {
	tests := []struct {
		in   time.Duration
		want string
	}{
		{0, "0 Menit"},
		{59 * time.Second, "0 Menit"},
		{773 * time.Second, "12 Menit"},
		{3930 * time.Second, "1 Jam 5 Menit"},
		{25*time.Hour + 59*time.Minute + 59*time.Second, "25 Jam 59 Menit"},
	}

	for _, tt := range tests {
		if got := catalog.FormatTotal(tt.in); got != tt.want {
			t.Errorf("FormatTotal(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func single(duration string) []catalog.Topic {
	return []catalog.Topic{{
		Title:     "T",
		Materials: []catalog.Material{{Title: "M", Duration: duration}},
	}}
}
