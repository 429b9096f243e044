package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"citizen-services/internal/i18n"
	"citizen-services/internal/logger"

	"github.com/google/uuid"
)

var ErrUnknownLocale = errors.New("unsupported locale")

// Session is the state of one login: its notifications, transcript, dashboard and
// chosen locale.
type Session struct {
	ID     string
	UserID int

	Notifications *NotificationStore
	Dashboard     *DashboardService
	Chat          *Conversation

	mu       sync.Mutex
	locale   i18n.Locale
	lastSeen time.Time
}

// Locale returns the locale chosen for this session, or "" when none was set.
func (s *Session) Locale() i18n.Locale {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.locale
}

// SetLocale accepts "th", "en" and their region variants.
func (s *Session) SetLocale(raw string) (i18n.Locale, error) {
	l, ok := i18n.Parse(raw)
	if !ok {
		return "", fmt.Errorf("locale %q: %w", raw, ErrUnknownLocale)
	}
	s.mu.Lock()
	s.locale = l
	s.mu.Unlock()
	return l, nil
}

func (s *Session) touch(t time.Time) {
	s.mu.Lock()
	s.lastSeen = t
	s.mu.Unlock()
}

func (s *Session) idleSince() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastSeen
}

// SessionOptions configures the state every new session starts with.
type SessionOptions struct {
	TypingDelay time.Duration
	TTL         time.Duration
	Now         func() time.Time
	// NewResponder builds the chat responder of a session. Defaults to DefaultResponder(nil).
	NewResponder func() *Responder
}

// SessionRegistry holds live sessions keyed by id.
type SessionRegistry struct {
	opts SessionOptions

	mu       sync.Mutex
	sessions map[string]*Session
}

func NewSessionRegistry(opts SessionOptions) *SessionRegistry {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.NewResponder == nil {
		opts.NewResponder = func() *Responder { return DefaultResponder(nil) }
	}
	return &SessionRegistry{opts: opts, sessions: make(map[string]*Session)}
}

// Create starts a session with freshly seeded mock data.
func (r *SessionRegistry) Create(uid int) *Session {
	return r.Ensure(uuid.NewString(), uid)
}

// Ensure returns the session with id sid, recreating it from seed data when it was
// swept or the process restarted.
func (r *SessionRegistry) Ensure(sid string, uid int) *Session {
	now := r.opts.Now()
	r.mu.Lock()
	defer r.mu.Unlock()
	if s, ok := r.sessions[sid]; ok && s.UserID == uid {
		s.touch(now)
		return s
	}
	s := &Session{
		ID:            sid,
		UserID:        uid,
		Notifications: NewNotificationStore(DefaultNotifications()),
		Dashboard:     NewDashboardService(SeedDocuments(now, DefaultDocumentSeeds()), DefaultRecommendations(now), r.opts.Now),
		Chat:          NewConversation(r.opts.NewResponder(), r.opts.TypingDelay, r.opts.Now),
		lastSeen:      now,
	}
	if old, ok := r.sessions[sid]; ok {
		old.Chat.Close()
	}
	r.sessions[sid] = s
	logger.Debug("session.create", "sid", sid, "uid", uid)
	return s
}

func (r *SessionRegistry) Get(sid string) (*Session, bool) {
	r.mu.Lock()
	s, ok := r.sessions[sid]
	r.mu.Unlock()
	if ok {
		s.touch(r.opts.Now())
	}
	return s, ok
}

func (r *SessionRegistry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}

// Sweep drops sessions idle longer than the TTL and closes their conversations,
// aborting any reply still being typed.
func (r *SessionRegistry) Sweep() int {
	if r.opts.TTL <= 0 {
		return 0
	}
	cutoff := r.opts.Now().Add(-r.opts.TTL)
	var expired []*Session
	r.mu.Lock()
	for id, s := range r.sessions {
		if s.idleSince().Before(cutoff) {
			expired = append(expired, s)
			delete(r.sessions, id)
		}
	}
	r.mu.Unlock()

	for _, s := range expired {
		s.Chat.Close()
	}
	if len(expired) > 0 {
		logger.Info("session.sweep", "expired", len(expired))
	}
	return len(expired)
}

// Run sweeps every interval until ctx ends, then closes all remaining sessions.
func (r *SessionRegistry) Run(ctx context.Context, interval time.Duration) error {
	if interval <= 0 {
		interval = time.Minute
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			r.closeAll()
			return nil
		case <-ticker.C:
			r.Sweep()
		}
	}
}

func (r *SessionRegistry) closeAll() {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, s := range r.sessions {
		s.Chat.Close()
	}
}
