// Package web serves the landing page, the syllabus modal, and the JSON,
// export, and WebSocket endpoints around them.
package web

import (
	"bytes"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/p-n-ai/bootcamp-landing/internal/analytics"
	"github.com/p-n-ai/bootcamp-landing/internal/catalog"
	"github.com/p-n-ai/bootcamp-landing/internal/countdown"
	"github.com/p-n-ai/bootcamp-landing/internal/export"
	"github.com/p-n-ai/bootcamp-landing/internal/platform/cache"
	"github.com/p-n-ai/bootcamp-landing/internal/syllabus"
	"github.com/p-n-ai/bootcamp-landing/internal/web/view"
)

//go:embed static
var assets embed.FS

const (
	maxEventBody  = 4 << 10
	xlsxMediaType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

// Options holds dependencies for a Server. Nil Events, Fragments, and
// Countdown get in-memory or default implementations.
type Options struct {
	Catalog        *catalog.Catalog
	Events         analytics.EventLogger
	Fragments      cache.Fragments
	Countdown      *countdown.Countdown
	ShowDelay      time.Duration
	HideDelay      time.Duration
	AllowedOrigins []string
	Now            func() time.Time
	// Version identifies the deployed build in page validators and cache
	// keys. Empty means the VCS revision, or the process start time.
	Version string
}

// Server holds the handlers' shared, read-only state.
type Server struct {
	catalog        *catalog.Catalog
	events         analytics.EventLogger
	fragments      cache.Fragments
	countdown      *countdown.Countdown
	showDelay      time.Duration
	hideDelay      time.Duration
	allowedOrigins []string
	now            func() time.Time
	cards          []view.Course
	static         fs.FS
	version        string
}

func New(opts Options) *Server {
	s := &Server{
		catalog:        opts.Catalog,
		events:         opts.Events,
		fragments:      opts.Fragments,
		countdown:      opts.Countdown,
		showDelay:      opts.ShowDelay,
		hideDelay:      opts.HideDelay,
		allowedOrigins: opts.AllowedOrigins,
		now:            opts.Now,
	}
	if s.events == nil {
		s.events = analytics.NopEventLogger{}
	}
	if s.fragments == nil {
		s.fragments = cache.NewMemory(0)
	}
	if s.now == nil {
		s.now = time.Now
	}
	if s.countdown == nil {
		s.countdown = countdown.New(s.now(), countdown.DefaultPeriod)
	}
	for _, c := range s.catalog.Courses() {
		s.cards = append(s.cards, courseCard(c))
	}

	static, err := fs.Sub(assets, "static")
	if err != nil {
		panic(fmt.Sprintf("static assets: %v", err))
	}
	s.static = static

	build := opts.Version
	if build == "" {
		build = buildVersion()
	}
	version, err := contentVersion(s.catalog.Fingerprint(), build, static)
	if err != nil {
		panic(fmt.Sprintf("content version: %v", err))
	}
	s.version = version
	return s
}

// Register adds the site's routes to mux.
func (s *Server) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /{$}", s.handleLanding)
	mux.HandleFunc("GET /syllabus/{id}", s.handleSyllabus)
	mux.HandleFunc("GET /api/courses", s.handleCourses)
	mux.HandleFunc("GET /api/courses/{id}/syllabus.xlsx", s.handleExport)
	mux.HandleFunc("GET /api/countdown", s.handleCountdown)
	mux.HandleFunc("POST /api/events", s.handleEvent)
	mux.HandleFunc("GET /ws", s.handleWS)
	mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServerFS(s.static)))
}

// ETag returns the landing page validator. It changes with the catalog, the
// build, and the static assets. The countdown is left out: the page script
// resyncs it from /api/countdown on load.
func (s *Server) ETag() string {
	return `"` + s.version + `"`
}

func (s *Server) handleLanding(w http.ResponseWriter, r *http.Request) {
	etag := s.ETag()
	w.Header().Set("ETag", etag)
	if strings.Contains(r.Header.Get("If-None-Match"), etag) {
		w.WriteHeader(http.StatusNotModified)
		return
	}
	s.renderPage(w, view.Modal{})
}

// handleSyllabus renders the modal without JS. ?topic=N leaves topic N as
// the expanded one (-1 collapses all); ?partial=1 returns only the modal.
func (s *Server) handleSyllabus(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if _, err := s.catalog.Course(id); err != nil {
		writeError(w, err)
		return
	}
	topic, hasTopic := parseTopic(r.URL.Query().Get("topic"))
	partial := r.URL.Query().Get("partial") == "1"
	// Topic links are accordion clicks inside an already open modal.
	if !hasTopic {
		s.logEvent(analytics.Event{
			Type:     analytics.EventSyllabusOpened,
			CourseID: id,
			Data:     map[string]any{"surface": "html", "partial": partial},
		})
	}

	if !partial {
		s.renderPage(w, s.modal(id, topic, hasTopic))
		return
	}

	key := s.fragmentKey(id, topic, hasTopic)
	if body, ok, err := s.fragments.Get(r.Context(), key); err != nil {
		slog.Warn("fragment cache get failed", "key", key, "error", err)
	} else if ok {
		writeHTML(w, body)
		return
	}

	var buf bytes.Buffer
	if err := view.SyllabusModal(s.modal(id, topic, hasTopic)).Render(&buf); err != nil {
		slog.Error("render syllabus fragment", "course_id", id, "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	if err := s.fragments.Set(r.Context(), key, buf.Bytes()); err != nil {
		slog.Warn("fragment cache set failed", "key", key, "error", err)
	}
	writeHTML(w, buf.Bytes())
}

// modal drives a presenter through an HTMLSurface: open, then toggle until
// the requested topic is the expanded one.
func (s *Server) modal(id string, topic int, hasTopic bool) view.Modal {
	surface := &HTMLSurface{}
	p := syllabus.New(syllabus.Config{Catalog: s.catalog, Surface: surface})
	p.Open(id)

	if current := p.State().Expanded; hasTopic && topic != current {
		if topic < 0 {
			p.ToggleTopic(current)
		} else {
			p.ToggleTopic(topic)
		}
	}

	m := surface.Modal()
	m.CourseID = id
	return m
}

func (s *Server) fragmentKey(id string, topic int, hasTopic bool) string {
	t := "default"
	if hasTopic {
		t = strconv.Itoa(topic)
	}
	return fmt.Sprintf("%s:%s:%s", s.version[:16], id, t)
}

func (s *Server) renderPage(w http.ResponseWriter, modal view.Modal) {
	rem := s.countdown.Remaining(s.now())
	page := view.Page{
		Courses: s.cards,
		FAQs:    faqs,
		Countdown: view.Countdown{
			Days:    countdown.Pad(rem.Days),
			Hours:   countdown.Pad(rem.Hours),
			Minutes: countdown.Pad(rem.Minutes),
			Seconds: countdown.Pad(rem.Seconds),
		},
		Modal: modal,
	}

	var buf bytes.Buffer
	if err := view.LandingPage(page).Render(&buf); err != nil {
		slog.Error("render landing page", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	writeHTML(w, buf.Bytes())
}

type courseSummary struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Badge       string `json:"badge,omitempty"`
	Level       string `json:"level,omitempty"`
	Price       int    `json:"price"`
	PriceLabel  string `json:"price_label"`
	Duration    string `json:"duration"`
	Topics      int    `json:"topics"`
	Materials   int    `json:"materials"`
}

func (s *Server) handleCourses(w http.ResponseWriter, r *http.Request) {
	courses := s.catalog.Courses()
	out := make([]courseSummary, 0, len(courses))
	for _, c := range courses {
		out = append(out, courseSummary{
			ID:          c.ID,
			Title:       c.Title,
			Description: c.Description,
			Badge:       c.Badge,
			Level:       c.Level,
			Price:       c.Price,
			PriceLabel:  formatPrice(c.Price),
			Duration:    c.TotalLabel(),
			Topics:      len(c.Topics),
			Materials:   c.MaterialCount(),
		})
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	course, err := s.catalog.Course(r.PathValue("id"))
	if err != nil {
		writeError(w, err)
		return
	}

	f, err := export.SyllabusWorkbook(course)
	if err != nil {
		slog.Error("build syllabus workbook", "course_id", course.ID, "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	defer f.Close()

	w.Header().Set("Content-Type", xlsxMediaType)
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="silabus-%s.xlsx"`, course.ID))
	if _, err := f.WriteTo(w); err != nil {
		slog.Warn("write syllabus workbook", "course_id", course.ID, "error", err)
		return
	}
	s.logEvent(analytics.Event{Type: analytics.EventSyllabusExported, CourseID: course.ID})
}

func (s *Server) handleCountdown(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.countdown.Remaining(s.now()))
}

type eventRequest struct {
	SessionID string         `json:"session_id"`
	Type      string         `json:"type"`
	CourseID  string         `json:"course_id"`
	Data      map[string]any `json:"data"`
}

// Only client-side events may be posted; the server records the rest itself.
var clientEvents = map[string]bool{
	analytics.EventCTAClicked: true,
}

func (s *Server) handleEvent(w http.ResponseWriter, r *http.Request) {
	var req eventRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxEventBody)).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON body"})
		return
	}
	if !clientEvents[req.Type] {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": fmt.Sprintf("unsupported event type %q", req.Type)})
		return
	}
	if req.CourseID != "" {
		if _, err := s.catalog.Course(req.CourseID); err != nil {
			writeError(w, err)
			return
		}
	}

	s.logEvent(analytics.Event{
		SessionID: req.SessionID,
		Type:      req.Type,
		CourseID:  req.CourseID,
		Data:      req.Data,
		CreatedAt: s.now(),
	})
	writeJSON(w, http.StatusAccepted, map[string]string{"status": "accepted"})
}

func (s *Server) logEvent(event analytics.Event) {
	if err := s.events.LogEvent(event); err != nil {
		slog.Warn("failed to log event", "type", event.Type, "error", err)
	}
}

// parseTopic reads ?topic. Anything that is not an integer counts as absent.
func parseTopic(raw string) (int, bool) {
	if raw == "" {
		return 0, false
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	if n < 0 {
		n = -1
	}
	return n, true
}

func writeHTML(w http.ResponseWriter, body []byte) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(body)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Warn("encode response", "error", err)
	}
}

func writeError(w http.ResponseWriter, err error) {
	var unknown *catalog.UnknownCourseError
	if errors.As(err, &unknown) {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": unknown.Error()})
		return
	}
	slog.Error("request failed", "error", err)
	writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal error"})
}

