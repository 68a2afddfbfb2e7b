package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the planner's Prometheus collectors. A nil *Metrics is valid
// and records nothing.
type Metrics struct {
	Submissions    *prometheus.CounterVec
	ChannelCalls   *prometheus.CounterVec
	FanOutDuration prometheus.Histogram
	DueRelays      *prometheus.CounterVec
}

func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Submissions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "postplanner_schedule_submissions_total",
				Help: "Scheduling submissions by outcome (success, rejected, failed)",
			},
			[]string{"result"},
		),
		ChannelCalls: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "postplanner_channel_calls_total",
				Help: "Per-channel post creation results",
			},
			[]string{"channel", "result"},
		),
		FanOutDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "postplanner_fanout_duration_seconds",
				Help:    "Wall time of the concurrent per-channel creation calls",
				Buckets: []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
			},
		),
		DueRelays: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "postplanner_due_relays_total",
				Help: "Due posts handed to the automation webhook",
			},
			[]string{"channel", "result"},
		),
	}
	if reg != nil {
		reg.MustRegister(m.Submissions, m.ChannelCalls, m.FanOutDuration, m.DueRelays)
	}
	return m
}

func (m *Metrics) Submission(result string) {
	if m == nil {
		return
	}
	m.Submissions.WithLabelValues(result).Inc()
}

func (m *Metrics) ChannelCall(channel, result string) {
	if m == nil {
		return
	}
	m.ChannelCalls.WithLabelValues(channel, result).Inc()
}

func (m *Metrics) FanOut(d time.Duration) {
	if m == nil {
		return
	}
	m.FanOutDuration.Observe(d.Seconds())
}

func (m *Metrics) DueRelay(channel, result string) {
	if m == nil {
		return
	}
	m.DueRelays.WithLabelValues(channel, result).Inc()
}
