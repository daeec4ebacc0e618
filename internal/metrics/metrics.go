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

// Mechanic Metrics
var (
	MechanicsRegistered = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameMechanicsRegistered,
			Help: HelpTextMechanicsRegistered,
		},
		[]string{LabelMechanic},
	)

	MechanicsBound = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameMechanicsBound,
			Help: HelpTextMechanicsBound,
		},
		[]string{LabelMechanic},
	)

	BindingErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameBindingErrors,
			Help: HelpTextBindingErrors,
		},
		[]string{LabelReason},
	)

	DefinitionsRejected = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameDefinitionsRejected,
			Help: HelpTextDefinitionsRejected,
		},
	)

	ItemsDepleted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameItemsDepleted,
			Help: HelpTextItemsDepleted,
		},
		[]string{LabelItem},
	)
)
