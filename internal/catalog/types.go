package catalog

import "time"

// Course is a bootcamp course as shown on a card and in the syllabus modal.
type Course struct {
	ID          string  `yaml:"id" json:"id"`
	Title       string  `yaml:"title" json:"title"`
	Description string  `yaml:"description" json:"description"`
	Badge       string  `yaml:"badge,omitempty" json:"badge,omitempty"`
	Level       string  `yaml:"level,omitempty" json:"level,omitempty"`
	Price       int     `yaml:"price,omitempty" json:"price,omitempty"` // IDR, 0 means free
	Topics      []Topic `yaml:"topics" json:"topics"`

	total time.Duration
}

// Topic is an ordered group of materials within a course syllabus.
type Topic struct {
	Title     string     `yaml:"title" json:"title"`
	Materials []Material `yaml:"materials" json:"materials"`

	total time.Duration
}

// TotalDuration returns the summed duration of the topic's materials. It is
// computed once when the catalog is built.
func (t Topic) TotalDuration() time.Duration {
	return t.total
}

// TotalLabel returns TotalDuration formatted for display.
func (t Topic) TotalLabel() string {
	return FormatTotal(t.total)
}

// Material is a single timed lesson. Duration is "minutes:seconds", e.g. "08:12".
type Material struct {
	Title    string `yaml:"title" json:"title"`
	Duration string `yaml:"duration" json:"duration"`
}

// TotalDuration returns the summed duration of every material in the course.
// It is computed once when the catalog is built.
func (c Course) TotalDuration() time.Duration {
	return c.total
}

// TotalLabel returns TotalDuration formatted for display.
func (c Course) TotalLabel() string {
	return FormatTotal(c.total)
}

// MaterialCount returns the number of materials across all topics.
func (c Course) MaterialCount() int {
	n := 0
	for _, t := range c.Topics {
		n += len(t.Materials)
	}
	return n
}
