package service

import (
	"context"
	"math/rand/v2"
	"sync"
	"testing"
	"time"

	"citizen-services/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seeded(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed))
}

type fakeClock struct {
	mu sync.Mutex
	t  time.Time
}

func (f *fakeClock) Now() time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.t
}

func newTestConversation(delay time.Duration) *Conversation {
	clock := &fakeClock{t: time.Date(2024, 9, 1, 10, 0, 0, 0, time.UTC)}
	return NewConversation(DefaultResponder(seeded(1)), delay, clock.Now)
}

func TestResponderRules(t *testing.T) {
	r := DefaultResponder(seeded(7))

	cases := map[string]string{
		"ใบขับขี่กำลังจะหมดอายุ ต้องทำอย่างไร?": "chat.reply.driverLicense",
		"อยากขับรถไปต่างจังหวัด":                "chat.reply.driverLicense",
		"วิธีต่ออายุบัตรประชาชน":                "chat.reply.idCard",
		"ตรวจสอบสิทธิ์ประกันสังคม":              "chat.reply.socialSecurity",
		"How do I renew my DRIVER license?":     "chat.reply.driverLicense",
		"Lost my ID Card":                       "chat.reply.idCard",
	}
	for in, want := range cases {
		got, matched := r.Reply(in)
		assert.True(t, matched, in)
		assert.Equal(t, want, got, in)
	}
}

func TestResponderFirstRuleWins(t *testing.T) {
	r := DefaultResponder(seeded(7))
	// mentions both the driver license and the ID card
	got, _ := r.Reply("ใบขับขี่กับบัตรประชาชน")
	assert.Equal(t, "chat.reply.driverLicense", got)
}

func TestResponderDefaultPool(t *testing.T) {
	r := DefaultResponder(seeded(42))
	seen := map[string]bool{}
	for range 200 {
		got, matched := r.Reply("สวัสดี")
		assert.False(t, matched)
		assert.Contains(t, defaultReplies, got)
		seen[got] = true
	}
	assert.Len(t, seen, len(defaultReplies))
}

func TestResponderIsReproducibleWithSeed(t *testing.T) {
	a := DefaultResponder(seeded(99))
	b := DefaultResponder(seeded(99))
	for range 20 {
		ra, _ := a.Reply("hello")
		rb, _ := b.Reply("hello")
		assert.Equal(t, ra, rb)
		assert.Equal(t, a.Suggestions(), b.Suggestions())
	}
}

func TestSuggestionsAreContiguousSlices(t *testing.T) {
	r := DefaultResponder(seeded(3))
	for range 100 {
		s := r.Suggestions()
		require.NotEmpty(t, s)
		require.LessOrEqual(t, len(s), 5)
		start := -1
		for i, q := range quickSuggestions {
			if q == s[0] {
				start = i
			}
		}
		require.GreaterOrEqual(t, start, 0)
		require.Less(t, start, 3)
		assert.Equal(t, quickSuggestions[start:start+len(s)], s)
		assert.GreaterOrEqual(t, start+len(s), 3)
	}
}

func TestSuggestionsClampToShortPool(t *testing.T) {
	r := NewResponder(nil, []string{"x"}, []string{"only"}, seeded(1))
	for range 20 {
		s := r.Suggestions()
		assert.LessOrEqual(t, len(s), 1)
	}
	assert.Equal(t, []string{"only"}, r.Popular())
}

func TestConversationStartsWithGreeting(t *testing.T) {
	c := newTestConversation(0)
	msgs := c.Transcript()
	require.Len(t, msgs, 1)
	assert.Equal(t, model.RoleBot, msgs[0].Role)
	assert.Equal(t, "chat.greeting", msgs[0].Content)
	assert.Equal(t, quickSuggestions[:3], msgs[0].Suggestions)
	assert.Equal(t, quickSuggestions[:4], c.Popular())
}

func TestSubmitAppendsExactlyOneBotTurn(t *testing.T) {
	c := newTestConversation(time.Millisecond)
	ctx := context.Background()

	for i := range 3 {
		before := len(c.Transcript())
		user, bot, err := c.Submit(ctx, "  ใบขับขี่หมดอายุ  ")
		require.NoError(t, err)

		msgs := c.Transcript()
		require.Len(t, msgs, before+2, "exchange %d", i)
		assert.Equal(t, user, msgs[len(msgs)-2])
		assert.Equal(t, bot, msgs[len(msgs)-1])
		assert.Equal(t, model.RoleUser, user.Role)
		assert.Equal(t, "ใบขับขี่หมดอายุ", user.Content)
		assert.Equal(t, model.RoleBot, bot.Role)
		assert.Equal(t, "chat.reply.driverLicense", bot.Content)
		assert.NotEmpty(t, bot.Suggestions)
	}
}

func TestMessageIDsUniqueUnderFrozenClock(t *testing.T) {
	c := newTestConversation(0)
	for range 5 {
		_, _, err := c.Submit(context.Background(), "hello")
		require.NoError(t, err)
	}
	ids := map[string]bool{}
	for _, m := range c.Transcript() {
		assert.False(t, ids[m.ID], "duplicate id %s", m.ID)
		ids[m.ID] = true
	}
	assert.Len(t, ids, 11)
}

func TestSubmitRejectsBlankInput(t *testing.T) {
	c := newTestConversation(0)
	before := c.Transcript()
	for _, in := range []string{"", "   ", "\n\t"} {
		_, _, err := c.Submit(context.Background(), in)
		assert.ErrorIs(t, err, ErrEmptyMessage)
	}
	assert.Equal(t, before, c.Transcript())
	assert.False(t, c.Typing())
}

func TestCancelledDelayLeavesTranscriptUnchanged(t *testing.T) {
	c := newTestConversation(time.Hour)
	before := c.Transcript()

	ctx, cancel := context.WithCancel(context.Background())
	errc := make(chan error, 1)
	go func() {
		_, _, err := c.Submit(ctx, "ประกันสังคม")
		errc <- err
	}()

	require.Eventually(t, c.Typing, time.Second, time.Millisecond)
	cancel()

	select {
	case err := <-errc:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(time.Second):
		t.Fatal("submit did not return after cancel")
	}
	assert.Equal(t, before, c.Transcript())
	assert.False(t, c.Typing())

	// the conversation accepts new turns afterwards
	c.delay = 0
	_, _, err := c.Submit(context.Background(), "ประกันสังคม")
	require.NoError(t, err)
	assert.Len(t, c.Transcript(), len(before)+2)
}

func TestBusyWhileComposing(t *testing.T) {
	c := newTestConversation(time.Hour)
	p, err := c.Begin("first")
	require.NoError(t, err)

	_, err = c.Begin("second")
	assert.ErrorIs(t, err, ErrConversationBusy)

	p.Cancel()
	p.Cancel()
	_, err = p.Wait(context.Background())
	assert.ErrorIs(t, err, context.Canceled)
	assert.Len(t, c.Transcript(), 1)

	p2, err := c.Begin("second")
	require.NoError(t, err)
	p2.Cancel()
}

func TestCloseAbortsPendingReply(t *testing.T) {
	c := newTestConversation(time.Hour)
	p, err := c.Begin("hello")
	require.NoError(t, err)

	errc := make(chan error, 1)
	go func() {
		_, err := p.Wait(context.Background())
		errc <- err
	}()
	c.Close()
	c.Close()

	assert.ErrorIs(t, <-errc, ErrConversationClosed)
	_, err = c.Begin("again")
	assert.ErrorIs(t, err, ErrConversationClosed)
	assert.Len(t, c.Transcript(), 1)
}
