package core

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/openpanel/ai-service/pkg/metrics"
)

type Metrics struct {
	manager         *metrics.Manager
	apiResponseTime *prometheus.HistogramVec
	apiErrorCounter *prometheus.CounterVec
	apiInFlight     *prometheus.GaugeVec
	storeOpTime     *prometheus.HistogramVec
	storeOpError    *prometheus.CounterVec
}

func NewMetrics(ns, system string) *Metrics {
	m := metrics.NewManager(ns, system)

	return &Metrics{
		manager:         m,
		apiResponseTime: m.NewHistogramVec("api_response_time", []string{"method", "api"}),
		apiErrorCounter: m.NewCounterVec("api_error", []string{"method", "api", "status"}),
		apiInFlight:     m.NewGaugeVec("api_in_flight", []string{"method"}),
		storeOpTime:     m.NewHistogramVec("store_op_time", []string{"op"}),
		storeOpError:    m.NewCounterVec("store_op_error", []string{"op"}),
	}
}

func (m *Metrics) ApiErrorInc(method, api string, status int) {
	m.apiErrorCounter.WithLabelValues(method, api, strconv.Itoa(status)).Inc()
}

func (m *Metrics) ApiResponseTimer(method, api string) *prometheus.Timer {
	return prometheus.NewTimer(m.apiResponseTime.WithLabelValues(method, api))
}

// ApiInFlight is the number of requests of the given method still being
// served.
func (m *Metrics) ApiInFlight(method string) prometheus.Gauge {
	return m.apiInFlight.WithLabelValues(method)
}

func (m *Metrics) StoreOpTimer(op string) *prometheus.Timer {
	return prometheus.NewTimer(m.storeOpTime.WithLabelValues(op))
}

func (m *Metrics) StoreOpErrorInc(op string) {
	m.storeOpError.WithLabelValues(op).Inc()
}

func (m *Metrics) ExportHandler() gin.HandlerFunc {
	return m.manager.ExportHandler()
}
