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

// Business Metrics
var (
	SpinsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameSpinsTotal,
			Help: HelpTextSpinsTotal,
		},
	)

	FragmentsGenerated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameFragmentsGenerated,
			Help: HelpTextFragmentsGenerated,
		},
		[]string{LabelType, LabelRarity},
	)

	FragmentsShattered = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameFragmentsShattered,
			Help: HelpTextFragmentsShattered,
		},
		[]string{LabelRarity},
	)

	FragmentsSold = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameFragmentsSold,
			Help: HelpTextFragmentsSold,
		},
		[]string{LabelType, LabelRarity},
	)

	DeviceUpgrades = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameDeviceUpgrades,
			Help: HelpTextDeviceUpgrades,
		},
		[]string{LabelTrack},
	)

	MutationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameMutationsTotal,
			Help: HelpTextMutationsTotal,
		},
		[]string{LabelOutcome},
	)

	FluxSpent = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameFluxSpent,
			Help: HelpTextFluxSpent,
		},
		[]string{LabelOperation},
	)

	FluxEarned = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameFluxEarned,
			Help: HelpTextFluxEarned,
		},
		[]string{LabelOperation},
	)
)
