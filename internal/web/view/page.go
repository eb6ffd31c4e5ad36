// Package view renders the landing page with gomponents.
package view

import (
	"fmt"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// Course is a course card.
type Course struct {
	ID          string
	Title       string
	Description string
	Badge       string
	Level       string
	Price       string
	Duration    string
	Topics      int
	Materials   int
}

// FAQ is one question in the FAQ accordion.
type FAQ struct {
	Question string
	Answer   string
}

// Countdown holds the zero-padded banner values.
type Countdown struct {
	Days    string
	Hours   string
	Minutes string
	Seconds string
}

// Page is everything the landing page shows.
type Page struct {
	Courses   []Course
	FAQs      []FAQ
	Countdown Countdown
	Modal     Modal
}

func LandingPage(p Page) g.Node {
	return Doctype(
		HTML(
			Lang("id"),
			Head(
				Meta(Charset("utf-8")),
				Meta(Name("viewport"), Content("width=device-width, initial-scale=1")),
				Meta(Name("description"), Content("Bootcamp Full Stack Web Developer: PHP 8, Laravel 12, dan AI tools dalam satu paket belajar.")),
				TitleEl(g.Text("Bootcamp Full Stack Laravel 12 + AI")),
				Link(Rel("stylesheet"), Href("/static/landing.css")),
				Script(Src("/static/landing.js"), Defer()),
			),
			Body(
				navbar(),
				hero(),
				countdownBanner(p.Countdown),
				courseList(p.Courses),
				faqList(p.FAQs),
				SyllabusModal(p.Modal),
				pageFooter(),
			),
		),
	)
}

func navbar() g.Node {
	return Nav(
		Class("navbar"),
		A(Class("brand"), Href("/"), g.Text("KelasFullstack")),
		Button(Class("nav-toggle"), Type("button"), Aria("label", "Menu"), g.Text("☰")),
		Ul(
			Class("nav-links"),
			Li(A(Href("#courses"), g.Text("Materi"))),
			Li(A(Href("#faq"), g.Text("FAQ"))),
			Li(A(Class("btn btn-primary"), Href("#courses"), Data("cta", "navbar"), g.Text("Daftar"))),
		),
	)
}

func hero() g.Node {
	return Section(
		Class("hero"),
		Div(
			Class("hero-content"),
			Span(Class("hero-tag"), g.Text("Bootcamp Online")),
			H1(g.Text("Jadi Full Stack Web Developer dengan Laravel 12 + AI")),
			P(g.Text("Belajar dari dasar PHP 8 sampai membangun aplikasi HRIS dan POS, dibantu AI tools seperti Windsurf dan Github Copilot.")),
			Div(
				Class("hero-actions"),
				A(Class("btn btn-primary"), Href("#courses"), Data("cta", "hero"), g.Text("Daftar Sekarang")),
				A(Class("btn btn-outline"), Href("#courses"), g.Text("Lihat Materi")),
			),
		),
		Div(
			Class("code-window"),
			Aria("hidden", "true"),
			Pre(Code(g.Text("Route::get('/karir', fn () => view('sukses'));"))),
		),
	)
}

func countdownBanner(c Countdown) g.Node {
	unit := func(id, value, label string) g.Node {
		return Div(
			Class("countdown-unit"),
			Span(Class("countdown-value"), ID(id), g.Text(value)),
			Span(Class("countdown-label"), g.Text(label)),
		)
	}

	return Section(
		Class("countdown-banner"),
		P(g.Text("Harga promo berakhir dalam")),
		Div(
			Class("countdown"),
			ID("countdown"),
			unit("days", c.Days, "Hari"),
			unit("hours", c.Hours, "Jam"),
			unit("minutes", c.Minutes, "Menit"),
			unit("seconds", c.Seconds, "Detik"),
		),
	)
}

func courseList(courses []Course) g.Node {
	return Section(
		Class("courses"),
		ID("courses"),
		H2(g.Text("Materi yang Kamu Dapatkan")),
		Div(
			Class("course-grid"),
			g.Map(courses, courseCard),
		),
	)
}

func courseCard(c Course) g.Node {
	return Div(
		Class("course-card scroll-animate"),
		Data("course", c.ID),
		g.If(c.Badge != "", Span(Class("course-badge"), g.Text(c.Badge))),
		H3(g.Text(c.Title)),
		P(Class("course-desc"), g.Text(c.Description)),
		Ul(
			Class("course-meta"),
			Li(g.Textf("%d Topik · %d Materi", c.Topics, c.Materials)),
			Li(g.Text(c.Duration)),
			g.If(c.Level != "", Li(g.Text(c.Level))),
		),
		Div(
			Class("course-footer"),
			Span(Class("course-price"), g.Text(c.Price)),
			A(
				Class("btn btn-outline"),
				Href(fmt.Sprintf("/syllabus/%s", c.ID)),
				Data("syllabus", c.ID),
				g.Text("Lihat Silabus"),
			),
		),
	)
}

func faqList(faqs []FAQ) g.Node {
	return Section(
		Class("faq"),
		ID("faq"),
		H2(g.Text("Pertanyaan yang Sering Diajukan")),
		Div(
			Class("faq-list"),
			g.Map(faqs, func(f FAQ) g.Node {
				return Div(
					Class("faq-item"),
					Button(Class("faq-question"), Type("button"), Aria("expanded", "false"), g.Text(f.Question)),
					Div(Class("faq-answer"), P(g.Text(f.Answer))),
				)
			}),
		),
	)
}

func pageFooter() g.Node {
	return Footer(
		Class("site-footer"),
		P(g.Text("© KelasFullstack. Semua hak dilindungi.")),
	)
}
