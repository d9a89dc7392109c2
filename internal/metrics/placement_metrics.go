package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// PlacementMetrics содержит метрики конвейера размещения заказов.
type PlacementMetrics struct {
	// Счётчики исходов размещения
	placementsStarted   prometheus.Counter
	placementsCommitted prometheus.Counter
	placementsFailed    prometheus.Counter
	placementsRejected  *prometheus.CounterVec

	// Гистограмма полного времени размещения
	placementDuration prometheus.Histogram

	// Счётчик событий, поставленных в outbox
	outboxEvents prometheus.Counter
}

// NewPlacementMetrics создаёт новый экземпляр метрик размещения.
func NewPlacementMetrics() *PlacementMetrics {
	return newPlacementMetricsWithRegisterer(prometheus.DefaultRegisterer)
}

func newPlacementMetricsWithRegisterer(registerer prometheus.Registerer) *PlacementMetrics {
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}

	return &PlacementMetrics{
		placementsStarted: registerCounter(registerer, prometheus.CounterOpts{
			Name: "sampleapi_placements_started_total",
			Help: "Total number of order placements received",
		}),
		placementsCommitted: registerCounter(registerer, prometheus.CounterOpts{
			Name: "sampleapi_placements_committed_total",
			Help: "Total number of order placements committed to storage",
		}),
		placementsFailed: registerCounter(registerer, prometheus.CounterOpts{
			Name: "sampleapi_placements_failed_total",
			Help: "Total number of order placements failed at the storage boundary",
		}),
		placementsRejected: registerCounterVec(registerer, prometheus.CounterOpts{
			Name: "sampleapi_placements_rejected_total",
			Help: "Total number of order placements rejected by validation grouped by reason",
		}, []string{"reason"}),
		placementDuration: registerHistogram(registerer, prometheus.HistogramOpts{
			Name:    "sampleapi_placement_duration_seconds",
			Help:    "Duration of successful order placements in seconds",
			Buckets: prometheus.DefBuckets,
		}),
		outboxEvents: registerCounter(registerer, prometheus.CounterOpts{
			Name: "sampleapi_outbox_events_total",
			Help: "Total number of order events enqueued to transactional outbox",
		}),
	}
}

func registerCounter(registerer prometheus.Registerer, opts prometheus.CounterOpts) prometheus.Counter {
	collector := prometheus.NewCounter(opts)
	if err := registerer.Register(collector); err != nil {
		if alreadyRegistered, ok := err.(prometheus.AlreadyRegisteredError); ok {
			existing, ok := alreadyRegistered.ExistingCollector.(prometheus.Counter)
			if !ok {
				panic(fmt.Sprintf("collector %q already registered with unexpected type", opts.Name))
			}
			return existing
		}
		panic(fmt.Sprintf("register counter %q: %v", opts.Name, err))
	}
	return collector
}

func registerCounterVec(registerer prometheus.Registerer, opts prometheus.CounterOpts, labels []string) *prometheus.CounterVec {
	collector := prometheus.NewCounterVec(opts, labels)
	if err := registerer.Register(collector); err != nil {
		if alreadyRegistered, ok := err.(prometheus.AlreadyRegisteredError); ok {
			existing, ok := alreadyRegistered.ExistingCollector.(*prometheus.CounterVec)
			if !ok {
				panic(fmt.Sprintf("collector %q already registered with unexpected type", opts.Name))
			}
			return existing
		}
		panic(fmt.Sprintf("register counter vec %q: %v", opts.Name, err))
	}
	return collector
}

func registerHistogram(registerer prometheus.Registerer, opts prometheus.HistogramOpts) prometheus.Histogram {
	collector := prometheus.NewHistogram(opts)
	if err := registerer.Register(collector); err != nil {
		if alreadyRegistered, ok := err.(prometheus.AlreadyRegisteredError); ok {
			existing, ok := alreadyRegistered.ExistingCollector.(prometheus.Histogram)
			if !ok {
				panic(fmt.Sprintf("collector %q already registered with unexpected type", opts.Name))
			}
			return existing
		}
		panic(fmt.Sprintf("register histogram %q: %v", opts.Name, err))
	}
	return collector
}

// RecordPlacementStarted увеличивает счётчик принятых размещений.
func (m *PlacementMetrics) RecordPlacementStarted() {
	m.placementsStarted.Inc()
}

// RecordPlacementCommitted увеличивает счётчик успешно закоммиченных размещений.
func (m *PlacementMetrics) RecordPlacementCommitted() {
	m.placementsCommitted.Inc()
}

// RecordPlacementFailed увеличивает счётчик размещений, упавших на хранилище.
func (m *PlacementMetrics) RecordPlacementFailed() {
	m.placementsFailed.Inc()
}

// RecordPlacementRejected увеличивает счётчик отклонённых размещений.
func (m *PlacementMetrics) RecordPlacementRejected(reason string) {
	m.placementsRejected.WithLabelValues(reason).Inc()
}

// RecordPlacementDuration записывает полное время успешного размещения.
func (m *PlacementMetrics) RecordPlacementDuration(duration time.Duration) {
	m.placementDuration.Observe(duration.Seconds())
}

// RecordOutboxEvent увеличивает счётчик событий outbox.
func (m *PlacementMetrics) RecordOutboxEvent() {
	m.outboxEvents.Inc()
}
