// Package metrics собирает метрики Prometheus для HTTP-слоя и доменных событий каталога.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Recorder описывает доменные события, которые фиксируют сервисы.
type Recorder interface {
	RecordAuth(action, result string)
	RecordCacheLookup(hit bool)
	RecordMiraclesImported(imported, failed int)
	RecordContactMessage(kind string)
	RecordUpload(sizeBytes int64)
}

// Collector хранит метрики сервиса и регистрирует их в переданном реестре.
type Collector struct {
	httpRequests    *prometheus.CounterVec
	httpDuration    *prometheus.HistogramVec
	authAttempts    *prometheus.CounterVec
	cacheLookups    *prometheus.CounterVec
	importedTotal   *prometheus.CounterVec
	contactMessages *prometheus.CounterVec
	uploadedBytes   prometheus.Counter
}

// NewCollector создаёт Collector и регистрирует метрики в reg.
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "miracles_http_requests_total",
			Help: "Количество HTTP-запросов по маршруту, методу и коду ответа",
		}, []string{"route", "method", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "miracles_http_request_duration_seconds",
			Help:    "Длительность обработки HTTP-запросов",
			Buckets: prometheus.DefBuckets,
		}, []string{"route", "method"}),
		authAttempts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "miracles_auth_attempts_total",
			Help: "Попытки регистрации и входа по результату",
		}, []string{"action", "result"}),
		cacheLookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "miracles_cache_lookups_total",
			Help: "Обращения к кэшу документов",
		}, []string{"result"}),
		importedTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "miracles_bulk_import_items_total",
			Help: "Элементы массового импорта по результату",
		}, []string{"result"}),
		contactMessages: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "miracles_contact_messages_total",
			Help: "Принятые сообщения обратной связи по типу",
		}, []string{"type"}),
		uploadedBytes: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "miracles_uploaded_bytes_total",
			Help: "Объём загруженных файлов",
		}),
	}

	reg.MustRegister(
		c.httpRequests,
		c.httpDuration,
		c.authAttempts,
		c.cacheLookups,
		c.importedTotal,
		c.contactMessages,
		c.uploadedBytes,
	)
	return c
}

// ObserveHTTP фиксирует завершённый HTTP-запрос.
func (c *Collector) ObserveHTTP(route, method string, status int, d time.Duration) {
	c.httpRequests.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	c.httpDuration.WithLabelValues(route, method).Observe(d.Seconds())
}

// RecordAuth фиксирует попытку регистрации или входа.
func (c *Collector) RecordAuth(action, result string) {
	c.authAttempts.WithLabelValues(action, result).Inc()
}

// RecordCacheLookup фиксирует попадание или промах кэша.
func (c *Collector) RecordCacheLookup(hit bool) {
	result := "miss"
	if hit {
		result = "hit"
	}
	c.cacheLookups.WithLabelValues(result).Inc()
}

// RecordMiraclesImported фиксирует итог массового импорта.
func (c *Collector) RecordMiraclesImported(imported, failed int) {
	c.importedTotal.WithLabelValues("imported").Add(float64(imported))
	c.importedTotal.WithLabelValues("failed").Add(float64(failed))
}

// RecordContactMessage фиксирует новое сообщение обратной связи.
func (c *Collector) RecordContactMessage(kind string) {
	c.contactMessages.WithLabelValues(kind).Inc()
}

// RecordUpload фиксирует загруженный файл.
func (c *Collector) RecordUpload(sizeBytes int64) {
	c.uploadedBytes.Add(float64(sizeBytes))
}

// Handler возвращает HTTP-обработчик для сбора метрик Prometheus.
func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}

// Nop не записывает ничего.
type Nop struct{}

func (Nop) RecordAuth(string, string)       {}
func (Nop) RecordCacheLookup(bool)          {}
func (Nop) RecordMiraclesImported(int, int) {}
func (Nop) RecordContactMessage(string)     {}
func (Nop) RecordUpload(int64)              {}
