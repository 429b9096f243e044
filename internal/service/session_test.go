package service

import (
	"context"
	"testing"
	"time"

	"citizen-services/internal/i18n"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRegistry(clock *fakeClock, ttl time.Duration) *SessionRegistry {
	return NewSessionRegistry(SessionOptions{
		TypingDelay:  time.Hour,
		TTL:          ttl,
		Now:          clock.Now,
		NewResponder: func() *Responder { return DefaultResponder(seeded(3)) },
	})
}

func TestCreateSeedsIndependentState(t *testing.T) {
	reg := newTestRegistry(&fakeClock{t: time.Date(2024, 9, 1, 8, 0, 0, 0, time.UTC)}, time.Hour)
	a := reg.Create(1)
	b := reg.Create(1)
	require.NotEqual(t, a.ID, b.ID)
	assert.Equal(t, 2, reg.Len())

	a.Notifications.MarkAllRead()
	assert.Equal(t, 0, a.Notifications.UnreadCount())
	assert.Equal(t, 2, b.Notifications.UnreadCount())
	assert.Len(t, a.Chat.Transcript(), 1)
	assert.Len(t, a.Dashboard.Documents(), 3)
}

func TestEnsureRecreatesMissingSession(t *testing.T) {
	reg := newTestRegistry(&fakeClock{t: time.Now()}, time.Hour)
	s := reg.Ensure("stale-sid", 1)
	assert.Equal(t, "stale-sid", s.ID)
	assert.Same(t, s, reg.Ensure("stale-sid", 1))

	got, ok := reg.Get("stale-sid")
	require.True(t, ok)
	assert.Same(t, s, got)
	_, ok = reg.Get("other")
	assert.False(t, ok)
}

func TestSessionLocale(t *testing.T) {
	reg := newTestRegistry(&fakeClock{t: time.Now()}, time.Hour)
	s := reg.Create(1)
	assert.Equal(t, i18n.Locale(""), s.Locale())

	l, err := s.SetLocale("en-GB")
	require.NoError(t, err)
	assert.Equal(t, i18n.EN, l)
	assert.Equal(t, i18n.EN, s.Locale())

	_, err = s.SetLocale("ja")
	assert.ErrorIs(t, err, ErrUnknownLocale)
	assert.Equal(t, i18n.EN, s.Locale())
}

func TestSweepClosesIdleSessions(t *testing.T) {
	clock := &fakeClock{t: time.Date(2024, 9, 1, 8, 0, 0, 0, time.UTC)}
	reg := newTestRegistry(clock, 30*time.Minute)
	idle := reg.Create(1)
	p, err := idle.Chat.Begin("ใบขับขี่")
	require.NoError(t, err)

	clock.t = clock.t.Add(20 * time.Minute)
	active := reg.Create(2)
	clock.t = clock.t.Add(15 * time.Minute)

	assert.Equal(t, 1, reg.Sweep())
	_, ok := reg.Get(idle.ID)
	assert.False(t, ok)
	_, ok = reg.Get(active.ID)
	assert.True(t, ok)

	_, err = p.Wait(context.Background())
	assert.ErrorIs(t, err, ErrConversationClosed)
	assert.Len(t, idle.Chat.Transcript(), 1)
}

func TestRunStopsWithContext(t *testing.T) {
	reg := newTestRegistry(&fakeClock{t: time.Now()}, time.Hour)
	s := reg.Create(1)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- reg.Run(ctx, time.Millisecond) }()

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("sweeper did not stop")
	}
	_, err := s.Chat.Begin("hello")
	assert.ErrorIs(t, err, ErrConversationClosed)
}
