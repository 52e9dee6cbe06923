package health

import (
	"context"
	"encoding/json"
	"net/http"
	"sort"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"golang.org/x/sync/errgroup"
)

const defaultCheckTimeout = 2 * time.Second

var componentUp = promauto.NewGaugeVec(prometheus.GaugeOpts{
	Name: "storefront_component_up",
	Help: "Result of the last health check per component: 1 healthy, 0.5 degraded, 0 unhealthy.",
}, []string{"component"})

// Response — тело ответа /healthz. Checks отсортированы по имени.
type Response struct {
	Status        Status    `json:"status"`
	Timestamp     time.Time `json:"timestamp"`
	Checks        []Check   `json:"checks,omitempty"`
	Version       string    `json:"version,omitempty"`
	UptimeSeconds int64     `json:"uptime_seconds"`
}

// Check возвращает результат проверки name.
func (r Response) Check(name string) (Check, bool) {
	for _, c := range r.Checks {
		if c.Name == name {
			return c, true
		}
	}
	return Check{}, false
}

type registration struct {
	checker  Checker
	critical bool
}

// Option настраивает Handler.
type Option func(*Handler)

// WithCheckTimeout ограничивает время одной проверки.
func WithCheckTimeout(d time.Duration) Option {
	return func(h *Handler) {
		if d > 0 {
			h.timeout = d
		}
	}
}

// WithCacheTTL разрешает отдавать предыдущий результат, пока он моложе ttl.
// Частые пробы оркестратора тогда не нагружают хранилище.
func WithCacheTTL(ttl time.Duration) Option {
	return func(h *Handler) { h.cacheTTL = max(ttl, 0) }
}

// Handler собирает проверки компонентов. Сбой критичного компонента делает сервис
// unhealthy, сбой вспомогательного только degraded.
type Handler struct {
	version  string
	started  time.Time
	timeout  time.Duration
	cacheTTL time.Duration
	now      func() time.Time

	mu       sync.RWMutex
	checkers map[string]registration

	cacheMu sync.Mutex
	last    Response
	lastAt  time.Time
}

func NewHandler(version string, opts ...Option) *Handler {
	h := &Handler{
		version:  version,
		started:  time.Now(),
		timeout:  defaultCheckTimeout,
		now:      time.Now,
		checkers: make(map[string]registration),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// RegisterChecker добавляет критичный компонент.
func (h *Handler) RegisterChecker(name string, checker Checker) {
	h.register(name, checker, true)
}

// RegisterOptional добавляет компонент, без которого сервис продолжает работать.
func (h *Handler) RegisterOptional(name string, checker Checker) {
	h.register(name, checker, false)
}

func (h *Handler) register(name string, checker Checker, critical bool) {
	h.mu.Lock()
	h.checkers[name] = registration{checker: checker, critical: critical}
	h.mu.Unlock()

	h.cacheMu.Lock()
	h.lastAt = time.Time{}
	h.cacheMu.Unlock()
}

func (h *Handler) Names() []string {
	h.mu.RLock()
	defer h.mu.RUnlock()

	names := make([]string, 0, len(h.checkers))
	for name := range h.checkers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Evaluate выполняет проверки параллельно, каждую со своим таймаутом.
func (h *Handler) Evaluate(ctx context.Context) Response {
	if h.cacheTTL > 0 {
		h.cacheMu.Lock()
		defer h.cacheMu.Unlock()
		if !h.lastAt.IsZero() && h.now().Sub(h.lastAt) < h.cacheTTL {
			return h.last
		}
	}

	resp := h.evaluate(ctx)

	if h.cacheTTL > 0 {
		h.last, h.lastAt = resp, resp.Timestamp
	}
	return resp
}

func (h *Handler) evaluate(ctx context.Context) Response {
	h.mu.RLock()
	regs := make(map[string]registration, len(h.checkers))
	for name, reg := range h.checkers {
		regs[name] = reg
	}
	h.mu.RUnlock()

	checks := make([]Check, 0, len(regs))
	var mu sync.Mutex
	group, groupCtx := errgroup.WithContext(ctx)
	for name, reg := range regs {
		group.Go(func() error {
			checkCtx, cancel := context.WithTimeout(groupCtx, h.timeout)
			defer cancel()

			check := reg.checker.Check(checkCtx)
			check.Name = name
			check.Critical = reg.critical
			if !reg.critical && check.Status == StatusUnhealthy {
				check.Status = StatusDegraded
			}

			mu.Lock()
			checks = append(checks, check)
			mu.Unlock()
			return nil
		})
	}
	_ = group.Wait()

	sort.Slice(checks, func(i, j int) bool { return checks[i].Name < checks[j].Name })

	overall := StatusHealthy
	for _, check := range checks {
		componentUp.WithLabelValues(check.Name).Set(upValue(check.Status))
		if check.Status.rank() > overall.rank() {
			overall = check.Status
		}
	}

	now := h.now()
	return Response{
		Status:        overall,
		Timestamp:     now,
		Checks:        checks,
		Version:       h.version,
		UptimeSeconds: int64(now.Sub(h.started).Seconds()),
	}
}

func upValue(s Status) float64 {
	switch s {
	case StatusHealthy:
		return 1
	case StatusDegraded:
		return 0.5
	default:
		return 0
	}
}

// ServeHTTP отдаёт полный отчёт; 503 только при сбое критичного компонента.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	resp := h.Evaluate(r.Context())

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode(resp.Status))
	_ = json.NewEncoder(w).Encode(resp)
}

// ReadinessHandler отвечает ready, пока критичные компоненты доступны.
func (h *Handler) ReadinessHandler(w http.ResponseWriter, r *http.Request) {
	resp := h.Evaluate(r.Context())

	code := statusCode(resp.Status)
	w.WriteHeader(code)
	if code != http.StatusOK {
		_, _ = w.Write([]byte("not ready"))
		return
	}
	_, _ = w.Write([]byte("ready"))
}

// LivenessHandler отвечает 200, пока процесс жив.
func LivenessHandler(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func statusCode(s Status) int {
	if s == StatusUnhealthy {
		return http.StatusServiceUnavailable
	}
	return http.StatusOK
}
