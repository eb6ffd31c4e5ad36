package web

import (
	"github.com/p-n-ai/bootcamp-landing/internal/syllabus"
	"github.com/p-n-ai/bootcamp-landing/internal/web/view"
)

// HTMLSurface collects presenter output into a view.Modal for server-side
// rendering. Transitions settle synchronously under an immediate scheduler.
type HTMLSurface struct {
	modal   view.Modal
	dismiss func()
}

func (s *HTMLSurface) SetText(field syllabus.Field, text string) {
	switch field {
	case syllabus.FieldTitle:
		s.modal.Title = text
	case syllabus.FieldDescription:
		s.modal.Description = text
	case syllabus.FieldTotalDuration:
		s.modal.Total = text
	}
}

func (s *HTMLSurface) ShowContainer()    { s.modal.Shown = true }
func (s *HTMLSurface) HideContainer()    { s.modal.Shown = false }
func (s *HTMLSurface) SetOpaque(on bool) { s.modal.Opaque = on }

func (s *HTMLSurface) RenderTopicList(sections []syllabus.TopicSection) {
	s.modal.Sections = sections
}

// OnBackdropDismiss records fn. There is no backdrop to click in a rendered
// page; the close link plays that role.
func (s *HTMLSurface) OnBackdropDismiss(fn func()) func() {
	s.dismiss = fn
	return func() { s.dismiss = nil }
}

// Modal returns the modal as rendered so far.
func (s *HTMLSurface) Modal() view.Modal {
	return s.modal
}

// Instruction ops sent to the browser.
const (
	OpSetText  = "set_text"
	OpShow     = "show"
	OpHide     = "hide"
	OpOpacity  = "opacity"
	OpTopics   = "topics"
	OpBackdrop = "backdrop"
)

// Instruction is one DOM update for the page script to apply.
type Instruction struct {
	Op       string                  `json:"op"`
	Field    syllabus.Field          `json:"field,omitempty"`
	Text     string                  `json:"text,omitempty"`
	Enabled  bool                    `json:"enabled,omitempty"`
	Sections []syllabus.TopicSection `json:"sections,omitempty"`
}

// WireSurface buffers presenter output as instructions until drained.
type WireSurface struct {
	pending []Instruction
	dismiss func()
}

func (s *WireSurface) SetText(field syllabus.Field, text string) {
	s.push(Instruction{Op: OpSetText, Field: field, Text: text})
}

func (s *WireSurface) ShowContainer() { s.push(Instruction{Op: OpShow}) }
func (s *WireSurface) HideContainer() { s.push(Instruction{Op: OpHide}) }

func (s *WireSurface) SetOpaque(on bool) {
	s.push(Instruction{Op: OpOpacity, Enabled: on})
}

func (s *WireSurface) RenderTopicList(sections []syllabus.TopicSection) {
	s.push(Instruction{Op: OpTopics, Sections: sections})
}

func (s *WireSurface) OnBackdropDismiss(fn func()) func() {
	s.dismiss = fn
	s.push(Instruction{Op: OpBackdrop, Enabled: true})
	return func() {
		s.dismiss = nil
		s.push(Instruction{Op: OpBackdrop, Enabled: false})
	}
}

// Dismiss reports a backdrop click. It is ignored when no handler is registered.
func (s *WireSurface) Dismiss() {
	if s.dismiss != nil {
		s.dismiss()
	}
}

// Drain returns and clears the buffered instructions.
func (s *WireSurface) Drain() []Instruction {
	out := s.pending
	s.pending = nil
	return out
}

func (s *WireSurface) push(in Instruction) {
	s.pending = append(s.pending, in)
}
