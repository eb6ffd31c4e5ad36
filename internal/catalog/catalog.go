// Package catalog holds the immutable course catalog behind the landing page.
package catalog

import (
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"slices"

	"golang.org/x/crypto/blake2b"
)

// Catalog maps course IDs to courses. It is built once and never mutated,
// so it is safe to share between goroutines.
type Catalog struct {
	courses     map[string]Course
	order       []string
	fingerprint string
}

// New validates courses and builds a catalog. Every course needs an ID and a
// title, IDs must be unique, and every material duration must parse.
func New(courses []Course) (*Catalog, error) {
	c := &Catalog{
		courses: make(map[string]Course, len(courses)),
		order:   make([]string, 0, len(courses)),
	}

	for i, course := range courses {
		if course.ID == "" {
			return nil, fmt.Errorf("course #%d: id is required", i+1)
		}
		if course.Title == "" {
			return nil, fmt.Errorf("course %q: title is required", course.ID)
		}
		if _, dup := c.courses[course.ID]; dup {
			return nil, fmt.Errorf("course %q: duplicate id", course.ID)
		}

		perTopic, total, err := totals(course.Topics)
		if err != nil {
			var mde *MalformedDurationError
			if errors.As(err, &mde) {
				mde.Course = course.ID
			}
			return nil, err
		}
		// Clone so the per-topic totals never write into the caller's slice.
		course.Topics = slices.Clone(course.Topics)
		for j := range course.Topics {
			course.Topics[j].total = perTopic[j]
		}
		course.total = total

		c.courses[course.ID] = course
		c.order = append(c.order, course.ID)
	}

	sum, err := fingerprint(courses)
	if err != nil {
		return nil, err
	}
	c.fingerprint = sum

	return c, nil
}

func fingerprint(courses []Course) (string, error) {
	data, err := json.Marshal(courses)
	if err != nil {
		return "", fmt.Errorf("encoding catalog for fingerprint: %w", err)
	}
	sum := blake2b.Sum256(data)
	return hex.EncodeToString(sum[:]), nil
}

// Course returns the course with the given ID, or *UnknownCourseError.
func (c *Catalog) Course(id string) (Course, error) {
	course, ok := c.courses[id]
	if !ok {
		return Course{}, &UnknownCourseError{ID: id}
	}
	return course, nil
}

// Courses returns all courses in source order.
func (c *Catalog) Courses() []Course {
	out := make([]Course, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.courses[id])
	}
	return out
}

// Len returns the number of courses.
func (c *Catalog) Len() int {
	return len(c.order)
}

// Fingerprint is the hex BLAKE2b-256 digest of the catalog content.
func (c *Catalog) Fingerprint() string {
	return c.fingerprint
}
