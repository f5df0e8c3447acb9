// Package metrics expõe as métricas Prometheus do cadastro.
package metrics

import (
	"context"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/jhoicas/cadastro-funcionarios/internal/application/employee"
	"github.com/jhoicas/cadastro-funcionarios/internal/domain/repository"
)

var _ employee.OperationRecorder = (*Metrics)(nil)

// Metrics agrupa os coletores registrados em um Registry próprio.
type Metrics struct {
	registry     *prometheus.Registry
	operations   *prometheus.CounterVec
	storeLatency *prometheus.HistogramVec
	storeErrors  *prometheus.CounterVec
}

// New cria e registra os coletores. Cada chamada usa um Registry novo, o que permite
// várias instâncias no mesmo processo (testes).
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(prometheus.NewGoCollector(), prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{}))
	factory := promauto.With(reg)
	return &Metrics{
		registry: reg,
		operations: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "cadastro_operations_total",
			Help: "Operações do cadastro por tipo e resultado",
		}, []string{"operation", "outcome"}),
		storeLatency: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "cadastro_store_request_duration_seconds",
			Help:    "Latência das chamadas ao armazenamento da planilha",
			Buckets: []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}, []string{"method"}),
		storeErrors: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "cadastro_store_errors_total",
			Help: "Falhas nas chamadas ao armazenamento da planilha",
		}, []string{"method"}),
	}
}

// RecordOperation incrementa o contador da operação.
func (m *Metrics) RecordOperation(operation, outcome string) {
	m.operations.WithLabelValues(operation, outcome).Inc()
}

// Registry usado pelos testes e pelo handler.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serve o formato de exposição do Prometheus.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// InstrumentStore envolve o RecordStore medindo latência e falhas por método.
func (m *Metrics) InstrumentStore(next repository.RecordStore) repository.RecordStore {
	return &instrumentedStore{next: next, m: m}
}

type instrumentedStore struct {
	next repository.RecordStore
	m    *Metrics
}

func (s *instrumentedStore) observe(method string, start time.Time, err error) {
	s.m.storeLatency.WithLabelValues(method).Observe(time.Since(start).Seconds())
	if err != nil {
		s.m.storeErrors.WithLabelValues(method).Inc()
	}
}

func (s *instrumentedStore) ReadAllRows(ctx context.Context) (rows [][]string, err error) {
	defer func(start time.Time) { s.observe("read_all_rows", start, err) }(time.Now())
	return s.next.ReadAllRows(ctx)
}

func (s *instrumentedStore) AppendRow(ctx context.Context, values []string) (err error) {
	defer func(start time.Time) { s.observe("append_row", start, err) }(time.Now())
	return s.next.AppendRow(ctx, values)
}

func (s *instrumentedStore) UpdateRowRange(ctx context.Context, row int, values []string) (err error) {
	defer func(start time.Time) { s.observe("update_row_range", start, err) }(time.Now())
	return s.next.UpdateRowRange(ctx, row, values)
}

func (s *instrumentedStore) DeleteRow(ctx context.Context, row int) (err error) {
	defer func(start time.Time) { s.observe("delete_row", start, err) }(time.Now())
	return s.next.DeleteRow(ctx, row)
}
