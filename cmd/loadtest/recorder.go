package main

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"google.golang.org/grpc/codes"
)

const scenarioMethod = "scenario"

// recorder собирает длительности и коды ответов в собственный prometheus-реестр,
// чтобы отчёт строился из тех же summary, что и у сервиса.
type recorder struct {
	registry *prometheus.Registry
	calls    *prometheus.CounterVec
	latency  *prometheus.SummaryVec
}

func newRecorder() *recorder {
	r := &recorder{
		registry: prometheus.NewRegistry(),
		calls: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "loadtest_calls_total",
			Help: "Calls grouped by method and gRPC code.",
		}, []string{"method", "code"}),
		latency: prometheus.NewSummaryVec(prometheus.SummaryOpts{
			Name:       "loadtest_call_duration_seconds",
			Help:       "Call latency by method.",
			Objectives: map[float64]float64{0.5: 0.01, 0.95: 0.005, 0.99: 0.001},
			MaxAge:     time.Hour,
		}, []string{"method"}),
	}
	r.registry.MustRegister(r.calls, r.latency)
	return r
}

func (r *recorder) record(method string, took time.Duration, code codes.Code) {
	r.calls.WithLabelValues(method, code.String()).Inc()
	r.latency.WithLabelValues(method).Observe(took.Seconds())
}

type latencySummary struct {
	Avg float64 `json:"avg"`
	P50 float64 `json:"p50"`
	P95 float64 `json:"p95"`
	P99 float64 `json:"p99"`
}

type methodReport struct {
	Calls     int64            `json:"calls"`
	Success   int64            `json:"success"`
	Failed    int64            `json:"failed"`
	ErrorRate float64          `json:"error_rate"`
	Codes     map[string]int64 `json:"codes"`
	LatencyMs latencySummary   `json:"latency_ms"`
}

type report struct {
	StartedAt       time.Time               `json:"started_at"`
	DurationSeconds float64                 `json:"duration_seconds"`
	RPS             float64                 `json:"rps"`
	Scenarios       methodReport            `json:"scenarios"`
	Methods         map[string]methodReport `json:"methods"`
}

// report читает накопленные метрики через Gather.
func (r *recorder) report(startedAt time.Time, took time.Duration) (report, error) {
	families, err := r.registry.Gather()
	if err != nil {
		return report{}, fmt.Errorf("gather loadtest metrics: %w", err)
	}

	methods := make(map[string]*methodReport)
	get := func(name string) *methodReport {
		m, ok := methods[name]
		if !ok {
			m = &methodReport{Codes: make(map[string]int64)}
			methods[name] = m
		}
		return m
	}

	for _, family := range families {
		for _, metric := range family.GetMetric() {
			labels := labelMap(metric.GetLabel())
			m := get(labels["method"])
			switch family.GetType() {
			case dto.MetricType_COUNTER:
				n := int64(metric.GetCounter().GetValue())
				m.Codes[labels["code"]] += n
				m.Calls += n
				if labels["code"] != codes.OK.String() {
					m.Failed += n
				}
			case dto.MetricType_SUMMARY:
				m.LatencyMs = summarize(metric.GetSummary())
			}
		}
	}

	out := report{
		StartedAt:       startedAt.UTC(),
		DurationSeconds: took.Seconds(),
		Methods:         make(map[string]methodReport, len(methods)),
	}
	for name, m := range methods {
		m.Success = m.Calls - m.Failed
		m.ErrorRate = ratio(m.Failed, m.Calls)
		if name == scenarioMethod {
			out.Scenarios = *m
			continue
		}
		out.Methods[name] = *m
	}
	if took > 0 {
		out.RPS = float64(out.Scenarios.Calls) / took.Seconds()
	}
	return out, nil
}

func labelMap(pairs []*dto.LabelPair) map[string]string {
	out := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		out[pair.GetName()] = pair.GetValue()
	}
	return out
}

func summarize(s *dto.Summary) latencySummary {
	var out latencySummary
	if s.GetSampleCount() == 0 {
		return out
	}
	out.Avg = s.GetSampleSum() / float64(s.GetSampleCount()) * 1000
	for _, q := range s.GetQuantile() {
		ms := q.GetValue() * 1000
		switch q.GetQuantile() {
		case 0.5:
			out.P50 = ms
		case 0.95:
			out.P95 = ms
		case 0.99:
			out.P99 = ms
		}
	}
	return out
}

func ratio(part, total int64) float64 {
	if total <= 0 {
		return 0
	}
	return float64(part) / float64(total)
}
