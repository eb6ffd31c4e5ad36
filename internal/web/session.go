package web

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"

	"github.com/p-n-ai/bootcamp-landing/internal/analytics"
	"github.com/p-n-ai/bootcamp-landing/internal/syllabus"
)

const writeTimeout = 5 * time.Second

// Client message types.
const (
	msgOpen     = "open"
	msgToggle   = "toggle"
	msgBackdrop = "backdrop"
	msgClose    = "close"
)

type clientMessage struct {
	Type   string `json:"type"`
	Course string `json:"course,omitempty"`
	Topic  int    `json:"topic,omitempty"`
}

type serverMessage struct {
	Instructions []Instruction `json:"instructions"`
	State        stateView     `json:"state"`
}

type stateView struct {
	Course   string `json:"course"`
	Expanded int    `json:"expanded"`
	Phase    string `json:"phase"`
}

// session owns one presenter. Everything that touches it runs on the run
// loop; timer callbacks arrive through tasks.
type session struct {
	id        string
	conn      *websocket.Conn
	surface   *WireSurface
	presenter *syllabus.Presenter
	events    analytics.EventLogger
	tasks     chan func()
	done      chan struct{}
}

func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		OriginPatterns: s.allowedOrigins,
	})
	if err != nil {
		slog.Warn("websocket accept failed", "error", err)
		return
	}
	defer conn.CloseNow()

	sess := s.newSession(conn)
	slog.Debug("syllabus session started", "session_id", sess.id)

	err = sess.run(r.Context())
	switch websocket.CloseStatus(err) {
	case websocket.StatusNormalClosure, websocket.StatusGoingAway:
		conn.Close(websocket.StatusNormalClosure, "")
	default:
		if err != nil && !errors.Is(err, context.Canceled) {
			slog.Warn("syllabus session ended", "session_id", sess.id, "error", err)
		}
	}
}

func (s *Server) newSession(conn *websocket.Conn) *session {
	sess := &session{
		id:      newSessionID(),
		conn:    conn,
		surface: &WireSurface{},
		events:  s.events,
		tasks:   make(chan func()),
		done:    make(chan struct{}),
	}
	sess.presenter = syllabus.New(syllabus.Config{
		Catalog:   s.catalog,
		Surface:   sess.surface,
		Scheduler: syllabus.NewLoopScheduler(sess.post),
		ShowDelay: s.showDelay,
		HideDelay: s.hideDelay,
	})
	return sess
}

// post hands fn to the run loop. It gives up once the loop has exited.
func (s *session) post(fn func()) {
	select {
	case s.tasks <- fn:
	case <-s.done:
	}
}

func (s *session) run(ctx context.Context) error {
	defer close(s.done)

	inbound := make(chan clientMessage)
	readErr := make(chan error, 1)
	go func() {
		for {
			var msg clientMessage
			if err := wsjson.Read(ctx, s.conn, &msg); err != nil {
				readErr <- err
				return
			}
			select {
			case inbound <- msg:
			case <-s.done:
				return
			}
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case err := <-readErr:
			return err
		case msg := <-inbound:
			s.handle(msg)
		case fn := <-s.tasks:
			fn()
		}
		if err := s.flush(ctx); err != nil {
			return err
		}
	}
}

func (s *session) handle(msg clientMessage) {
	switch msg.Type {
	case msgOpen:
		s.presenter.Open(msg.Course)
		if s.presenter.State().CourseID == msg.Course {
			s.logEvent(analytics.EventSyllabusOpened, msg.Course)
		}
	case msgToggle:
		s.presenter.ToggleTopic(msg.Topic)
	case msgBackdrop:
		s.surface.Dismiss()
	case msgClose:
		s.presenter.Close()
	default:
		slog.Debug("unknown session message", "session_id", s.id, "type", msg.Type)
	}
}

func (s *session) flush(ctx context.Context) error {
	instructions := s.surface.Drain()
	if len(instructions) == 0 {
		return nil
	}
	state := s.presenter.State()

	ctx, cancel := context.WithTimeout(ctx, writeTimeout)
	defer cancel()
	return wsjson.Write(ctx, s.conn, serverMessage{
		Instructions: instructions,
		State: stateView{
			Course:   state.CourseID,
			Expanded: state.Expanded,
			Phase:    state.Phase.String(),
		},
	})
}

func (s *session) logEvent(eventType, courseID string) {
	err := s.events.LogEvent(analytics.Event{
		SessionID: s.id,
		Type:      eventType,
		CourseID:  courseID,
		Data:      map[string]any{"surface": "websocket"},
	})
	if err != nil {
		slog.Warn("failed to log event", "type", eventType, "error", err)
	}
}

func newSessionID() string {
	b := make([]byte, 8)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}
