// Package syllabus presents a course syllabus in a modal with an accordion
// of topics. A Presenter is driven from a single goroutine; it is not safe
// for concurrent use.
package syllabus

import (
	"log/slog"
	"time"

	"github.com/p-n-ai/bootcamp-landing/internal/catalog"
)

const (
	// DefaultShowDelay is the gap between displaying the modal and making it opaque.
	DefaultShowDelay = 10 * time.Millisecond
	// DefaultHideDelay lets the fade-out finish before the modal leaves the layout.
	DefaultHideDelay = 300 * time.Millisecond
)

// Phase is the modal's place in its show/hide transition.
type Phase int

const (
	PhaseHidden Phase = iota
	PhaseShowing
	PhaseVisible
	PhaseHiding
)

func (p Phase) String() string {
	switch p {
	case PhaseHidden:
		return "hidden"
	case PhaseShowing:
		return "showing"
	case PhaseVisible:
		return "visible"
	case PhaseHiding:
		return "hiding"
	}
	return "unknown"
}

// State is a snapshot of the presentation state.
type State struct {
	CourseID string
	Expanded int // -1 when no topic is expanded
	Phase    Phase
}

// Config holds dependencies for a Presenter.
type Config struct {
	Catalog   *catalog.Catalog
	Surface   Surface
	Scheduler Scheduler     // defaults to ImmediateScheduler
	ShowDelay time.Duration // defaults to DefaultShowDelay
	HideDelay time.Duration // defaults to DefaultHideDelay
}

// Presenter binds catalog courses to a Surface.
type Presenter struct {
	catalog   *catalog.Catalog
	surface   Surface
	scheduler Scheduler
	showDelay time.Duration
	hideDelay time.Duration

	course        catalog.Course
	open          bool
	accordion     Accordion
	phase         Phase
	pending       Timer
	removeDismiss func()
}

// New creates a presenter with the modal hidden.
func New(cfg Config) *Presenter {
	scheduler := cfg.Scheduler
	if scheduler == nil {
		scheduler = ImmediateScheduler{}
	}
	showDelay := cfg.ShowDelay
	if showDelay == 0 {
		showDelay = DefaultShowDelay
	}
	hideDelay := cfg.HideDelay
	if hideDelay == 0 {
		hideDelay = DefaultHideDelay
	}
	return &Presenter{
		catalog:   cfg.Catalog,
		surface:   cfg.Surface,
		scheduler: scheduler,
		showDelay: showDelay,
		hideDelay: hideDelay,
		phase:     PhaseHidden,
	}
}

// State returns the current presentation state.
func (p *Presenter) State() State {
	s := State{Expanded: -1, Phase: p.phase}
	if p.open {
		s.CourseID = p.course.ID
		s.Expanded = p.accordion.Expanded()
	}
	return s
}

// Open shows the syllabus for courseID with its first topic expanded.
// Unknown IDs are ignored.
func (p *Presenter) Open(courseID string) {
	course, err := p.catalog.Course(courseID)
	if err != nil {
		slog.Debug("syllabus open ignored", "course_id", courseID, "error", err)
		return
	}

	p.course = course
	p.open = true
	p.accordion = NewAccordion(len(course.Topics))

	p.surface.SetText(FieldTitle, course.Title)
	p.surface.SetText(FieldDescription, course.Description)
	p.surface.SetText(FieldTotalDuration, course.TotalLabel())
	p.renderTopics()

	p.show()

	if p.removeDismiss == nil {
		p.removeDismiss = p.surface.OnBackdropDismiss(p.Close)
	}
}

// ToggleTopic handles a click on the header of topic i. It does nothing
// while the modal is closed or when i is out of range.
func (p *Presenter) ToggleTopic(i int) {
	if !p.open || i < 0 || i >= p.accordion.Len() {
		return
	}
	p.accordion.Toggle(i)
	p.renderTopics()
}

// Close fades the modal out and unregisters the backdrop handler.
// Closing a closed or closing modal does nothing.
func (p *Presenter) Close() {
	if p.phase == PhaseHidden || p.phase == PhaseHiding {
		return
	}

	p.open = false
	p.accordion = Accordion{}
	if p.removeDismiss != nil {
		p.removeDismiss()
		p.removeDismiss = nil
	}

	p.surface.SetOpaque(false)
	p.phase = PhaseHiding
	p.schedule(p.hideDelay, func() {
		p.phase = PhaseHidden
		p.surface.HideContainer()
	})
}

func (p *Presenter) show() {
	if p.phase == PhaseShowing || p.phase == PhaseVisible {
		return
	}

	p.surface.ShowContainer()
	p.phase = PhaseShowing
	p.schedule(p.showDelay, func() {
		p.phase = PhaseVisible
		p.surface.SetOpaque(true)
	})
}

// schedule replaces any pending transition with fn after d.
func (p *Presenter) schedule(d time.Duration, fn func()) {
	if p.pending != nil {
		p.pending.Stop()
		p.pending = nil
	}

	fired := false
	t := p.scheduler.AfterFunc(d, func() {
		fired = true
		p.pending = nil
		fn()
	})
	if !fired {
		p.pending = t
	}
}

func (p *Presenter) renderTopics() {
	sections := make([]TopicSection, 0, len(p.course.Topics))
	number := 0
	for i, topic := range p.course.Topics {
		rows := make([]MaterialRow, 0, len(topic.Materials))
		for _, m := range topic.Materials {
			number++
			rows = append(rows, MaterialRow{Number: number, Title: m.Title, Duration: m.Duration})
		}
		sections = append(sections, TopicSection{
			Index:     i,
			Title:     topic.Title,
			Duration:  topic.TotalLabel(),
			Expanded:  p.accordion.IsExpanded(i),
			Materials: rows,
		})
	}
	p.surface.RenderTopicList(sections)
}
