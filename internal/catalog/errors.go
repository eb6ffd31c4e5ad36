package catalog

import (
	"fmt"
	"strings"
)

// UnknownCourseError is returned when a course ID is not in the catalog.
type UnknownCourseError struct {
	ID string
}

func (e *UnknownCourseError) Error() string {
	return fmt.Sprintf("unknown course: %q", e.ID)
}

// MalformedDurationError reports a material whose duration is not "minutes:seconds".
type MalformedDurationError struct {
	Course   string
	Topic    string
	Material string
	Value    string
	Err      error
}

func (e *MalformedDurationError) Error() string {
	var b strings.Builder
	if e.Course != "" {
		fmt.Fprintf(&b, "course %q: ", e.Course)
	}
	if e.Topic != "" {
		fmt.Fprintf(&b, "topic %q: ", e.Topic)
	}
	fmt.Fprintf(&b, "material %q has malformed duration %q", e.Material, e.Value)
	if e.Err != nil {
		fmt.Fprintf(&b, ": %v", e.Err)
	}
	return b.String()
}

func (e *MalformedDurationError) Unwrap() error {
	return e.Err
}

// SchemaError lists every schema violation found in a catalog document.
type SchemaError struct {
	Violations []string
}

func (e *SchemaError) Error() string {
	return "catalog does not match schema: " + strings.Join(e.Violations, "; ")
}
