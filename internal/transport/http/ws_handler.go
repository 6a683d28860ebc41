package http

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strconv"
	"sync"
	"time"

	"quest-academy-service/internal/app"
	"quest-academy-service/internal/domain"
	"quest-academy-service/internal/session"

	"github.com/gorilla/websocket"
)

// wrongAnswerDelay is the pause before auto-advancing past a missed problem;
// rewardDelay auto-dismisses the reward screen when the client does not.
const (
	wrongAnswerDelay = 1 * time.Second
	rewardDelay      = 3 * time.Second
)

type WSHandler struct {
	service  *app.ActivityService
	upgrader websocket.Upgrader
}

func NewWSHandler(service *app.ActivityService) *WSHandler {
	return &WSHandler{
		service: service,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
	}
}

type inboundMessage struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

type selectPayload struct {
	Value string `json:"value"`
}

type outboundMessage[T any] struct {
	Type    string `json:"type"`
	Payload T      `json:"payload"`
}

type errorPayload struct {
	Message string `json:"message"`
}

// problemView is the client-facing problem shape with the answer stripped.
type problemView struct {
	ID        string             `json:"id"`
	Type      domain.ProblemType `json:"type"`
	Index     int                `json:"index"`
	Total     int                `json:"total"`
	Question  string             `json:"question"`
	Story     string             `json:"story,omitempty"`
	Sequence  []string           `json:"sequence,omitempty"`
	Scrambled string             `json:"scrambled,omitempty"`
	Hint      string             `json:"hint,omitempty"`
	Options   []string           `json:"options,omitempty"`
}

type answerResult struct {
	ProblemID     string `json:"problemId"`
	Correct       bool   `json:"correct"`
	Awarded       int    `json:"awarded"`
	TotalScore    int    `json:"totalScore"`
	CorrectAnswer string `json:"correctAnswer,omitempty"` // revealed only on a miss
	FirstSuccess  bool   `json:"firstSuccess,omitempty"`
}

type completedPayload struct {
	Outcome      any                      `json:"outcome"`
	Mode         domain.Mode              `json:"mode"`
	NewBadges    []string                 `json:"newBadges,omitempty"`
	Entry        *domain.LeaderboardEntry `json:"leaderboardEntry,omitempty"`
	TotalPlayers int                      `json:"totalPlayers,omitempty"`
}

type timerPayload struct {
	Remaining int `json:"remaining"`
}

// pendingAdvance tracks the connection's scheduled auto-advance so a
// client-driven advance can cancel it. Submits run on the reader goroutine
// while the deferred callback runs on a timer goroutine, hence the lock.
type pendingAdvance struct {
	mu     sync.Mutex
	cancel func()
}

func (p *pendingAdvance) set(cancel func()) {
	p.mu.Lock()
	p.cancel = cancel
	p.mu.Unlock()
}

// clear cancels and drops the scheduled auto-advance, if any. Cancelling a
// timer that already fired is a no-op.
func (p *pendingAdvance) clear() {
	p.mu.Lock()
	cancel := p.cancel
	p.cancel = nil
	p.mu.Unlock()
	if cancel != nil {
		cancel()
	}
}

// channelNotifier forwards session notifications into the writer channel.
type channelNotifier struct {
	send chan<- outboundMessage[any]
}

func (n channelNotifier) Notify(note domain.Notification) {
	select {
	case n.send <- outboundMessage[any]{Type: "notification", Payload: note}:
	default:
		// Slow client; toasts are fire-and-forget and safe to drop.
	}
}

// ServeWS upgrades the request and runs one practice session over the socket.
func (h *WSHandler) ServeWS(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	user := app.User{ID: query.Get("userId"), DisplayName: query.Get("name")}
	subject := domain.Subject(query.Get("subject"))
	mode := domain.Mode(query.Get("mode"))
	difficulty, _ := strconv.Atoi(query.Get("difficulty"))
	if user.ID == "" || user.DisplayName == "" {
		http.Error(w, "missing userId or name", http.StatusBadRequest)
		return
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("ws upgrade failed: %v", err)
		return
	}
	defer conn.Close()

	send := make(chan outboundMessage[any], 32)
	writerStop := make(chan struct{})
	writerDone := make(chan struct{})
	go func() {
		defer close(writerDone)
		for {
			select {
			case msg := <-send:
				if err := conn.WriteJSON(msg); err != nil {
					log.Printf("ws write error: %v", err)
					return
				}
			case <-writerStop:
				// Flush whatever is buffered, then stop.
				for {
					select {
					case msg := <-send:
						if err := conn.WriteJSON(msg); err != nil {
							return
						}
					default:
						return
					}
				}
			}
		}
	}()

	notifier := channelNotifier{send: send}
	finished := make(chan struct{})
	onComplete := func(outcome domain.Outcome) {
		// Outlives the request context when the client disconnects mid-run.
		result := h.service.Finish(context.Background(), user, outcome)
		payload := completedPayload{
			Outcome:      outcome,
			Mode:         outcome.Mode(),
			NewBadges:    result.NewBadges,
			Entry:        result.Entry,
			TotalPlayers: result.TotalPlayers,
		}
		if result.LeaderboardErr != nil {
			notifier.Notify(domain.Notification{
				Kind:       domain.NotifyError,
				Message:    "Your score was saved, but the leaderboard submission failed.",
				DurationMs: 4000,
			})
		}
		select {
		case send <- outboundMessage[any]{Type: "completed", Payload: payload}:
		default:
			// Writer is gone or backed up; the result is already persisted.
		}
		select {
		case send <- outboundMessage[any]{Type: "progress", Payload: h.service.Progress().Read()}:
		default:
		}
		close(finished)
	}

	sess, startErr := h.startSession(r, subject, difficulty, mode, notifier, onComplete)
	if startErr != nil {
		close(writerStop)
		<-writerDone
		_ = conn.WriteJSON(outboundMessage[errorPayload]{Type: "error", Payload: errorPayload{Message: startErr.Error()}})
		return
	}

	sess.RunClock(time.Second)
	go h.pushTimer(sess, send, finished)

	pending := &pendingAdvance{}

	send <- outboundMessage[any]{Type: "problem", Payload: h.problemView(sess)}

	for {
		var inbound inboundMessage
		if err := conn.ReadJSON(&inbound); err != nil {
			break
		}
		switch inbound.Type {
		case "select":
			var payload selectPayload
			if err := json.Unmarshal(inbound.Payload, &payload); err != nil {
				send <- outboundMessage[any]{Type: "error", Payload: errorPayload{Message: "invalid select payload"}}
				continue
			}
			if err := sess.Select(payload.Value); err != nil {
				send <- outboundMessage[any]{Type: "error", Payload: errorPayload{Message: err.Error()}}
			}
		case "submit":
			h.handleSubmit(sess, send, pending)
		case "advance":
			h.advance(sess, send, pending)
		case "quit":
			if err := sess.Quit(); err != nil {
				send <- outboundMessage[any]{Type: "error", Payload: errorPayload{Message: err.Error()}}
			}
		default:
			send <- outboundMessage[any]{Type: "error", Payload: errorPayload{Message: "unsupported message type"}}
		}
	}

	// Client went away mid-run; a quit preserves whatever score accrued.
	if sess.State() != session.StateCompleted {
		_ = sess.Quit()
	}

	<-finished
	close(writerStop)
	<-writerDone
}

func (h *WSHandler) startSession(r *http.Request, subject domain.Subject, difficulty int, mode domain.Mode, notifier session.Notifier, onComplete func(domain.Outcome)) (*session.Session, error) {
	ctx := r.Context()
	switch mode {
	case domain.ModeGame:
		sess, _, err := h.service.StartGame(ctx, r.URL.Query().Get("gameId"), notifier, onComplete)
		return sess, err
	case domain.ModeChallenge:
		return h.service.StartChallenge(ctx, subject, difficulty, r.URL.Query().Get("challengeType"), notifier, onComplete)
	default:
		return h.service.StartLesson(ctx, subject, difficulty, notifier, onComplete)
	}
}

func (h *WSHandler) handleSubmit(sess *session.Session, send chan<- outboundMessage[any], pending *pendingAdvance) {
	event, err := sess.Submit()
	if err != nil {
		send <- outboundMessage[any]{Type: "error", Payload: errorPayload{Message: err.Error()}}
		return
	}
	result := answerResult{
		ProblemID:    event.ProblemID,
		Correct:      event.Correct,
		Awarded:      event.Awarded,
		TotalScore:   sess.Score(),
		FirstSuccess: event.FirstSuccess,
	}
	delay := rewardDelay
	if !event.Correct {
		result.CorrectAnswer = sess.Current().Answer
		delay = wrongAnswerDelay
	}
	send <- outboundMessage[any]{Type: "answerResult", Payload: result}

	// Fall through to the next problem if the client stalls; cancelled
	// automatically when the session ends first.
	pending.set(sess.Defer(delay, func() {
		h.advance(sess, send, pending)
	}))
}

// advance moves the session forward and pushes the next problem. A session
// that already advanced (client raced the auto-advance) is left alone. On
// success any still-scheduled auto-advance is cancelled so it cannot skip
// the problem now on screen.
func (h *WSHandler) advance(sess *session.Session, send chan<- outboundMessage[any], pending *pendingAdvance) {
	if err := sess.Advance(); err != nil {
		return
	}
	pending.clear()
	if sess.State() == session.StatePresenting {
		send <- outboundMessage[any]{Type: "problem", Payload: h.problemView(sess)}
	}
}

func (h *WSHandler) problemView(sess *session.Session) problemView {
	p := sess.Current()
	return problemView{
		ID:        p.ID,
		Type:      p.Type,
		Index:     sess.Cursor(),
		Total:     sess.ProblemCount(),
		Question:  p.Question,
		Story:     p.Story,
		Sequence:  p.Sequence,
		Scrambled: p.Scrambled,
		Hint:      p.Hint,
		Options:   p.Options,
	}
}

func (h *WSHandler) pushTimer(sess *session.Session, send chan<- outboundMessage[any], finished <-chan struct{}) {
	if sess.Remaining() <= 0 {
		return
	}
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			select {
			case send <- outboundMessage[any]{Type: "timer", Payload: timerPayload{Remaining: sess.Remaining()}}:
			default:
			}
		case <-finished:
			return
		case <-sess.Done():
			return
		}
	}
}
