package metrics

import (
	"io"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCounters(t *testing.T) {
	m := New(func() int { return 4 })
	m.Login(true)
	m.Login(false)
	m.Login(false)
	m.Registration("quick", false)
	m.Read(2)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.Logins.WithLabelValues("ok")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.Logins.WithLabelValues("failed")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Registrations.WithLabelValues("quick", "failed")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.NotificationsRead))
}

func TestHandlerExposesSessions(t *testing.T) {
	m := New(func() int { return 4 })
	m.Chat("ok")

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))
	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "citizen_sessions_active 4")
	assert.Contains(t, string(body), `citizen_chat_exchanges_total{outcome="ok"} 1`)
}
