package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Результаты размещения заказа для метки result.
const (
	ResultPlaced = "placed"
)

// Результаты обращения к кешу товаров.
const (
	CacheHit   = "hit"
	CacheMiss  = "miss"
	CacheError = "error"
)

// PlacementMetrics содержит метрики размещения заказов и каталога.
type PlacementMetrics struct {
	// Счётчик размещений по результату: placed или вид ошибки.
	placements *prometheus.CounterVec

	placementDuration prometheus.Histogram
	lineItems         prometheus.Histogram
	unitsSold         prometheus.Counter
	inFlight          prometheus.Gauge

	cacheRequests *prometheus.CounterVec
}

// NewPlacementMetrics создаёт метрики в глобальном registry.
func NewPlacementMetrics() *PlacementMetrics {
	return NewPlacementMetricsWithRegisterer(prometheus.DefaultRegisterer)
}

// NewPlacementMetricsWithRegisterer создаёт метрики в заданном registry (удобно для тестов).
func NewPlacementMetricsWithRegisterer(registerer prometheus.Registerer) *PlacementMetrics {
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}

	return &PlacementMetrics{
		placements: registerCounterVec(registerer, prometheus.CounterOpts{
			Name: "storefront_order_placements_total",
			Help: "Total number of order placement attempts by result",
		}, []string{"result"}),
		placementDuration: registerHistogram(registerer, prometheus.HistogramOpts{
			Name:    "storefront_order_placement_duration_seconds",
			Help:    "Duration of order placement including the storage transaction",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0, 2.5, 5.0},
		}),
		lineItems: registerHistogram(registerer, prometheus.HistogramOpts{
			Name:    "storefront_order_line_items",
			Help:    "Number of distinct products per placed order",
			Buckets: []float64{1, 2, 3, 5, 8, 13, 21, 34},
		}),
		unitsSold: registerCounter(registerer, prometheus.CounterOpts{
			Name: "storefront_stock_units_sold_total",
			Help: "Total number of stock units decremented by placed orders",
		}),
		inFlight: registerGauge(registerer, prometheus.GaugeOpts{
			Name: "storefront_order_placements_in_flight",
			Help: "Number of order placements currently being processed",
		}),
		cacheRequests: registerCounterVec(registerer, prometheus.CounterOpts{
			Name: "storefront_product_cache_requests_total",
			Help: "Product cache lookups by result",
		}, []string{"result"}),
	}
}

func registerCounter(registerer prometheus.Registerer, opts prometheus.CounterOpts) prometheus.Counter {
	return register(registerer, opts.Name, prometheus.NewCounter(opts))
}

func registerCounterVec(registerer prometheus.Registerer, opts prometheus.CounterOpts, labels []string) *prometheus.CounterVec {
	return register(registerer, opts.Name, prometheus.NewCounterVec(opts, labels))
}

func registerGauge(registerer prometheus.Registerer, opts prometheus.GaugeOpts) prometheus.Gauge {
	return register(registerer, opts.Name, prometheus.NewGauge(opts))
}

func registerHistogram(registerer prometheus.Registerer, opts prometheus.HistogramOpts) prometheus.Histogram {
	return register(registerer, opts.Name, prometheus.NewHistogram(opts))
}

// register регистрирует коллектор; при повторной регистрации возвращает уже существующий.
func register[C prometheus.Collector](registerer prometheus.Registerer, name string, collector C) C {
	if err := registerer.Register(collector); err != nil {
		if alreadyRegistered, ok := err.(prometheus.AlreadyRegisteredError); ok {
			existing, ok := alreadyRegistered.ExistingCollector.(C)
			if !ok {
				panic(fmt.Sprintf("collector %q already registered with unexpected type", name))
			}
			return existing
		}
		panic(fmt.Sprintf("register collector %q: %v", name, err))
	}
	return collector
}

// PlacementStarted отмечает начало размещения.
func (m *PlacementMetrics) PlacementStarted() {
	m.inFlight.Inc()
}

// PlacementFinished фиксирует результат и длительность размещения.
// result — ResultPlaced или вид ошибки.
func (m *PlacementMetrics) PlacementFinished(result string, duration time.Duration) {
	m.inFlight.Dec()
	m.placements.WithLabelValues(result).Inc()
	m.placementDuration.Observe(duration.Seconds())
}

// OrderPlaced учитывает состав успешно размещённого заказа.
func (m *PlacementMetrics) OrderPlaced(lines int, units int64) {
	m.lineItems.Observe(float64(lines))
	m.unitsSold.Add(float64(units))
}

// CacheLookup учитывает обращение к кешу товаров.
func (m *PlacementMetrics) CacheLookup(result string) {
	m.cacheRequests.WithLabelValues(result).Inc()
}
