package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics сборщик метрик сервиса
type Metrics struct {
	httpRequests  *prometheus.CounterVec
	httpDuration  *prometheus.HistogramVec
	bookings      *prometheus.CounterVec
	ledgerErrors  *prometheus.CounterVec
	slotsReturned prometheus.Histogram
}

// New создает и регистрирует метрики в DefaultRegisterer
func New(serviceName string) *Metrics {
	return NewWithRegisterer(serviceName, prometheus.DefaultRegisterer)
}

// NewWithRegisterer создает метрики и регистрирует их в переданном реестре
func NewWithRegisterer(serviceName string, reg prometheus.Registerer) *Metrics {
	labels := prometheus.Labels{"service": serviceName}

	m := &Metrics{
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total HTTP requests by method, route and status",
			ConstLabels: labels,
		}, []string{"method", "route", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request latency",
			ConstLabels: labels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "route"}),
		bookings: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "bookings_committed_total",
			Help:        "Booking submissions by outcome",
			ConstLabels: labels,
		}, []string{"outcome"}),
		ledgerErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "ledger_errors_total",
			Help:        "Booking ledger storage failures by operation",
			ConstLabels: labels,
		}, []string{"operation"}),
		slotsReturned: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:        "available_slots_returned",
			Help:        "Number of available slots returned per query",
			ConstLabels: labels,
			Buckets:     []float64{0, 1, 2, 4, 8, 16},
		}),
	}

	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.httpRequests, m.httpDuration, m.bookings, m.ledgerErrors, m.slotsReturned)

	return m
}

// ObserveHTTPRequest учитывает обработанный HTTP-запрос
func (m *Metrics) ObserveHTTPRequest(method, route string, status int, seconds float64) {
	if m == nil {
		return
	}
	m.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpDuration.WithLabelValues(method, route).Observe(seconds)
}

// ObserveBooking учитывает результат отправки бронирования
func (m *Metrics) ObserveBooking(outcome string) {
	if m == nil {
		return
	}
	m.bookings.WithLabelValues(outcome).Inc()
}

// ObserveLedgerError учитывает сбой хранилища журнала бронирований
func (m *Metrics) ObserveLedgerError(operation string) {
	if m == nil {
		return
	}
	m.ledgerErrors.WithLabelValues(operation).Inc()
}

// ObserveSlotsReturned учитывает размер выдачи доступных слотов
func (m *Metrics) ObserveSlotsReturned(count int) {
	if m == nil {
		return
	}
	m.slotsReturned.Observe(float64(count))
}
