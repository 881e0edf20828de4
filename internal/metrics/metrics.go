package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"shootinggallery/internal/game"
	"shootinggallery/internal/targets"
)

// Collector counts gameplay across every session of a process. It is a
// game.Listener, so it can sit next to audio in a game.Listeners fan-out.
type Collector struct {
	reg *prometheus.Registry
	now func() time.Time

	sessions   prometheus.Gauge
	rounds     prometheus.Counter
	hits       *prometheus.CounterVec
	misses     prometheus.Counter
	overs      *prometheus.CounterVec
	finalScore prometheus.Histogram
	reaction   prometheus.Histogram
}

func New() *Collector {
	c := &Collector{
		reg: prometheus.NewRegistry(),
		now: time.Now,
		sessions: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "gallery_sessions_active",
			Help: "Sessions currently connected.",
		}),
		rounds: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "gallery_rounds_started_total",
			Help: "Rounds started, restarts included.",
		}),
		hits: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "gallery_hits_total",
			Help: "Targets hit, by tier.",
		}, []string{"tier"}),
		misses: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "gallery_misses_total",
			Help: "Shots that hit nothing.",
		}),
		overs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "gallery_rounds_over_total",
			Help: "Finished rounds, by what ran out.",
		}, []string{"reason"}),
		finalScore: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "gallery_final_score",
			Help:    "Score at the end of a round.",
			Buckets: prometheus.LinearBuckets(0, 1000, 11),
		}),
		reaction: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "gallery_hit_reaction_seconds",
			Help:    "Time from a target appearing to it being hit.",
			Buckets: prometheus.ExponentialBuckets(0.25, 2, 8),
		}),
	}
	c.reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		c.sessions, c.rounds, c.hits, c.misses, c.overs, c.finalScore, c.reaction,
	)
	return c
}

func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.reg, promhttp.HandlerOpts{})
}

func (c *Collector) SessionOpened() { c.sessions.Inc() }
func (c *Collector) SessionClosed() { c.sessions.Dec() }

func (c *Collector) OnStart(uint64) {
	c.rounds.Inc()
}

func (c *Collector) OnHit(t targets.Target) {
	c.hits.WithLabelValues(t.Tier.String()).Inc()
	if !t.SpawnedAt.IsZero() {
		c.reaction.Observe(c.now().Sub(t.SpawnedAt).Seconds())
	}
}

func (c *Collector) OnMiss(uint32) {
	c.misses.Inc()
}

func (c *Collector) OnGameOver(r game.Result) {
	c.overs.WithLabelValues(string(r.Reason)).Inc()
	c.finalScore.Observe(float64(r.Score))
}
