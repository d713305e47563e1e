package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)
)

// Event Metrics
var (
	EventsPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventsPublished,
			Help: HelpTextEventsPublished,
		},
		[]string{LabelType},
	)

	EventHandlerErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventHandlerErrors,
			Help: HelpTextEventHandlerErrors,
		},
		[]string{LabelType},
	)
)

// Tournament Metrics
var (
	TournamentsCreated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameTournamentsCreated,
			Help: HelpTextTournamentsCreated,
		},
	)

	TournamentsCompleted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameTournamentsCompleted,
			Help: HelpTextTournamentsCompleted,
		},
	)

	RoundsPlayed = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameRoundsPlayed,
			Help: HelpTextRoundsPlayed,
		},
	)

	BattlesResolved = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameBattlesResolved,
			Help: HelpTextBattlesResolved,
		},
	)

	ByesAwarded = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameByesAwarded,
			Help: HelpTextByesAwarded,
		},
	)

	CustomCardsAdded = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameCustomCardsAdded,
			Help: HelpTextCustomCardsAdded,
		},
		[]string{LabelType},
	)

	PrizePaid = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNamePrizePaid,
			Help: HelpTextPrizePaid,
		},
		[]string{LabelPlace},
	)

	PlatformCut = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNamePlatformCut,
			Help: HelpTextPlatformCut,
		},
	)

	ActiveSessions = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameActiveSessions,
			Help: HelpTextActiveSessions,
		},
	)

	StreamClients = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameStreamClients,
			Help: HelpTextStreamClients,
		},
	)
)
