package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics counts citizen-facing actions.
type Metrics struct {
	Logins            *prometheus.CounterVec
	ChatExchanges     *prometheus.CounterVec
	NotificationsRead prometheus.Counter
	Registrations     *prometheus.CounterVec
	WebhookDuration   prometheus.Histogram

	gatherer prometheus.Gatherer
}

// New registers all metrics on a private registry. activeSessions is sampled at
// scrape time.
func New(activeSessions func() int) *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	f := promauto.With(reg)

	m := &Metrics{
		Logins: f.NewCounterVec(prometheus.CounterOpts{
			Name: "citizen_logins_total",
			Help: "Login attempts by outcome",
		}, []string{"outcome"}),
		ChatExchanges: f.NewCounterVec(prometheus.CounterOpts{
			Name: "citizen_chat_exchanges_total",
			Help: "Chat submissions by outcome",
		}, []string{"outcome"}),
		NotificationsRead: f.NewCounter(prometheus.CounterOpts{
			Name: "citizen_notifications_read_total",
			Help: "Notifications flipped from unread to read",
		}),
		Registrations: f.NewCounterVec(prometheus.CounterOpts{
			Name: "citizen_registrations_total",
			Help: "Registration submissions by form variant and outcome",
		}, []string{"variant", "outcome"}),
		WebhookDuration: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "citizen_webhook_duration_seconds",
			Help:    "Duration of registration webhook calls",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}),
		gatherer: reg,
	}
	if activeSessions != nil {
		f.NewGaugeFunc(prometheus.GaugeOpts{
			Name: "citizen_sessions_active",
			Help: "Sessions currently held in memory",
		}, func() float64 { return float64(activeSessions()) })
	}
	return m
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}

func (m *Metrics) Login(ok bool) { m.Logins.WithLabelValues(outcome(ok)).Inc() }

func (m *Metrics) Chat(result string) { m.ChatExchanges.WithLabelValues(result).Inc() }

func (m *Metrics) Read(n int) { m.NotificationsRead.Add(float64(n)) }

func (m *Metrics) Registration(variant string, ok bool) {
	m.Registrations.WithLabelValues(variant, outcome(ok)).Inc()
}

func outcome(ok bool) string {
	if ok {
		return "ok"
	}
	return "failed"
}
