package view

import (
	"fmt"
	"strconv"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/p-n-ai/bootcamp-landing/internal/syllabus"
)

// Modal is the rendered state of the syllabus modal.
type Modal struct {
	CourseID    string
	Shown       bool
	Opaque      bool
	Title       string
	Description string
	Total       string
	Sections    []syllabus.TopicSection
}

// SyllabusModal renders the modal. With JS the element is driven over the
// WebSocket; without it, topic headers are links back to /syllabus/{id}.
func SyllabusModal(m Modal) g.Node {
	class := "modal"
	if m.Opaque {
		class += " show"
	}
	display := "display:none"
	if m.Shown {
		display = "display:block"
	}
	exportHref := "#"
	if m.CourseID != "" {
		exportHref = fmt.Sprintf("/api/courses/%s/syllabus.xlsx", m.CourseID)
	}

	return Div(
		ID("syllabusModal"),
		Class(class),
		Style(display),
		g.Attr("role", "dialog"),
		Aria("modal", "true"),
		Aria("labelledby", "modalTitle"),
		Div(
			Class("modal-content"),
			A(Class("modal-close"), Href("/#courses"), Data("action", "close"), Aria("label", "Tutup"), g.Text("×")),
			H2(ID("modalTitle"), g.Text(m.Title)),
			P(ID("modalDesc"), g.Text(m.Description)),
			P(Class("modal-total"), g.Text("Total durasi: "), Strong(ID("modalTotal"), g.Text(m.Total))),
			Div(
				ID("modalSyllabus"),
				Class("accordion"),
				g.Map(m.Sections, func(s syllabus.TopicSection) g.Node {
					return topicSection(m.CourseID, s)
				}),
			),
			A(ID("modalExport"), Class("btn btn-outline"), Href(exportHref), g.Text("Unduh Silabus (.xlsx)")),
		),
	)
}

func topicSection(courseID string, s syllabus.TopicSection) g.Node {
	class := "accordion-item"
	// The link leads to the state a click produces: collapse when expanded.
	next := s.Index
	if s.Expanded {
		class += " open"
		next = -1
	}
	index := strconv.Itoa(s.Index)

	return Div(
		Class(class),
		Data("topic", index),
		A(
			Class("accordion-header"),
			Href(fmt.Sprintf("/syllabus/%s?topic=%d", courseID, next)),
			Data("topic", index),
			Aria("expanded", strconv.FormatBool(s.Expanded)),
			Span(Class("accordion-title"), g.Text(s.Title)),
			Span(Class("accordion-meta"), g.Textf("%d Materi · %s", len(s.Materials), s.Duration)),
		),
		Div(
			Class("accordion-body"),
			g.If(!s.Expanded, g.Attr("hidden")),
			Table(
				TBody(
					g.Map(s.Materials, func(r syllabus.MaterialRow) g.Node {
						return Tr(
							Td(g.Text(strconv.Itoa(r.Number))),
							Td(g.Text(r.Title)),
							Td(Class("duration"), g.Text(r.Duration)),
						)
					}),
				),
			),
		),
	)
}
