package service

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"sync"
	"time"

	"citizen-services/internal/model"
)

var (
	ErrEmptyMessage       = errors.New("empty message")
	ErrConversationBusy   = errors.New("bot is still composing a reply")
	ErrConversationClosed = errors.New("conversation closed")
)

// Conversation is one session's append-only transcript. A submitted user turn and
// its bot turn are appended together once the typing delay has elapsed, so every
// committed user turn has exactly one bot turn after it.
type Conversation struct {
	responder *Responder
	delay     time.Duration
	now       func() time.Time

	mu       sync.Mutex
	messages []model.Message
	lastID   int64
	pending  *PendingReply

	closeOnce sync.Once
	closed    chan struct{}
}

func NewConversation(r *Responder, delay time.Duration, now func() time.Time) *Conversation {
	if now == nil {
		now = time.Now
	}
	c := &Conversation{responder: r, delay: delay, now: now, closed: make(chan struct{})}
	t := now()
	c.messages = []model.Message{{
		ID:          c.nextID(t),
		Role:        model.RoleBot,
		Content:     "chat.greeting",
		CreatedAt:   t,
		Suggestions: r.Greeting(),
	}}
	return c
}

func (c *Conversation) Transcript() []model.Message {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]model.Message, len(c.messages))
	copy(out, c.messages)
	return out
}

// Typing reports whether a reply is being composed.
func (c *Conversation) Typing() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.pending != nil
}

func (c *Conversation) Popular() []string { return c.responder.Popular() }

// PendingReply is a user turn waiting out the typing delay. Callers must finish it
// with Wait or Cancel.
type PendingReply struct {
	User model.Message

	conv       *Conversation
	timer      *time.Timer
	cancel     chan struct{}
	cancelOnce sync.Once
}

// Begin accepts a user turn and starts the typing delay. Whitespace-only text is
// rejected without touching the transcript.
func (c *Conversation) Begin(text string) (*PendingReply, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrEmptyMessage
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	select {
	case <-c.closed:
		return nil, ErrConversationClosed
	default:
	}
	if c.pending != nil {
		return nil, ErrConversationBusy
	}

	t := c.now()
	p := &PendingReply{
		User:   model.Message{ID: c.nextID(t), Role: model.RoleUser, Content: text, CreatedAt: t},
		conv:   c,
		timer:  time.NewTimer(c.delay),
		cancel: make(chan struct{}),
	}
	c.pending = p
	return p, nil
}

// Wait blocks until the delay elapses, then commits the user and bot turns and
// returns the bot turn. If ctx ends, Cancel is called, or the conversation is closed
// first, nothing is appended.
func (p *PendingReply) Wait(ctx context.Context) (model.Message, error) {
	c := p.conv
	defer p.timer.Stop()

	select {
	case <-p.timer.C:
	case <-ctx.Done():
		c.release(p)
		return model.Message{}, ctx.Err()
	case <-p.cancel:
		c.release(p)
		return model.Message{}, context.Canceled
	case <-c.closed:
		c.release(p)
		return model.Message{}, ErrConversationClosed
	}

	reply, _ := c.responder.Reply(p.User.Content)
	suggestions := c.responder.Suggestions()

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.pending != p {
		return model.Message{}, context.Canceled
	}
	t := c.now()
	bot := model.Message{
		ID:          c.nextID(t),
		Role:        model.RoleBot,
		Content:     reply,
		CreatedAt:   t,
		Suggestions: suggestions,
	}
	c.messages = append(c.messages, p.User, bot)
	c.pending = nil
	return bot, nil
}

// Cancel abandons the pending reply. Safe to call more than once and after Wait.
func (p *PendingReply) Cancel() {
	p.cancelOnce.Do(func() { close(p.cancel) })
	p.timer.Stop()
	p.conv.release(p)
}

// Submit runs Begin and Wait as one call.
func (c *Conversation) Submit(ctx context.Context, text string) (user, bot model.Message, err error) {
	p, err := c.Begin(text)
	if err != nil {
		return model.Message{}, model.Message{}, err
	}
	bot, err = p.Wait(ctx)
	if err != nil {
		return model.Message{}, model.Message{}, err
	}
	return p.User, bot, nil
}

// Close aborts any pending reply. Further submissions fail with ErrConversationClosed.
func (c *Conversation) Close() {
	c.closeOnce.Do(func() { close(c.closed) })
}

func (c *Conversation) release(p *PendingReply) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.pending == p {
		c.pending = nil
	}
}

// nextID derives ids from the millisecond clock, bumped past the last id so two
// turns in the same millisecond stay unique. Callers hold c.mu.
func (c *Conversation) nextID(t time.Time) string {
	id := t.UnixMilli()
	if id <= c.lastID {
		id = c.lastID + 1
	}
	c.lastID = id
	return strconv.FormatInt(id, 10)
}
