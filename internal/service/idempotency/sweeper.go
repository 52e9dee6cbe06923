package idempotency

import (
	"context"
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/storefront/internal/domain"
)

var (
	sweepDeletedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "storefront_idempotency_swept_keys_total",
		Help: "Total number of expired idempotency keys removed by the sweeper.",
	})
	sweepRunsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "storefront_idempotency_sweeps_total",
		Help: "Total number of idempotency sweeps grouped by result.",
	}, []string{"result"})
	sweepDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "storefront_idempotency_sweep_duration_seconds",
		Help:    "Duration of a single idempotency sweep.",
		Buckets: prometheus.ExponentialBuckets(0.005, 2, 10),
	})
)

// SweeperConfig задаёт расписание и размер порций очистки.
type SweeperConfig struct {
	Interval  time.Duration
	BatchSize int
	// MaxBatches ограничивает число порций за один проход; 0 — без ограничения.
	MaxBatches int
	Now        func() time.Time
}

func (c SweeperConfig) withDefaults() SweeperConfig {
	if c.Interval <= 0 {
		c.Interval = time.Minute
	}
	if c.BatchSize <= 0 {
		c.BatchSize = 500
	}
	if c.MaxBatches < 0 {
		c.MaxBatches = 0
	}
	if c.Now == nil {
		c.Now = func() time.Time { return time.Now().UTC() }
	}
	return c
}

// SweepReport — итог одного прохода очистки.
type SweepReport struct {
	Cutoff  time.Time
	Deleted int
	Batches int
	// Truncated: проход остановлен по MaxBatches, просроченные ключи ещё остались.
	Truncated bool
}

// Sweeper удаляет ключи с истёкшим TTL. Reserve и так переиспользует просроченный ключ,
// поэтому очистка только ограничивает рост таблицы.
type Sweeper struct {
	repo   domain.IdempotencyRepository
	cfg    SweeperConfig
	logger *log.Entry
}

// NewSweeper создаёт Sweeper.
func NewSweeper(repo domain.IdempotencyRepository, cfg SweeperConfig, logger *log.Entry) *Sweeper {
	if logger == nil {
		logger = log.WithField("component", "idempotency-sweeper")
	}
	return &Sweeper{repo: repo, cfg: cfg.withDefaults(), logger: logger}
}

// Run выполняет проход сразу и затем по таймеру, пока ctx не отменён.
func (s *Sweeper) Run(ctx context.Context) {
	if s.repo == nil {
		s.logger.Warn("idempotency sweeper is disabled: repository is nil")
		return
	}

	timer := time.NewTimer(0)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-timer.C:
		}

		report, err := s.Sweep(ctx)
		switch {
		case errors.Is(err, context.Canceled):
			return
		case err != nil:
			s.logger.WithError(err).Warn("idempotency sweep failed")
		case report.Deleted > 0:
			s.logger.WithFields(log.Fields{
				"deleted":   report.Deleted,
				"batches":   report.Batches,
				"truncated": report.Truncated,
				"cutoff":    report.Cutoff.Format(time.RFC3339),
			}).Info("expired idempotency keys removed")
		}

		next := s.cfg.Interval
		if report.Truncated {
			// хвост дочищаем без ожидания полного интервала
			next = s.cfg.Interval / 10
		}
		timer.Reset(next)
	}
}

// Sweep удаляет записи с ttl_at <= Now() порциями BatchSize.
func (s *Sweeper) Sweep(ctx context.Context) (SweepReport, error) {
	started := time.Now()
	report := SweepReport{Cutoff: s.cfg.Now()}

	err := s.sweep(ctx, &report)
	sweepDuration.Observe(time.Since(started).Seconds())
	sweepDeletedTotal.Add(float64(report.Deleted))

	switch {
	case err != nil:
		sweepRunsTotal.WithLabelValues("error").Inc()
	case report.Truncated:
		sweepRunsTotal.WithLabelValues("truncated").Inc()
	default:
		sweepRunsTotal.WithLabelValues("ok").Inc()
	}
	return report, err
}

func (s *Sweeper) sweep(ctx context.Context, report *SweepReport) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if s.cfg.MaxBatches > 0 && report.Batches >= s.cfg.MaxBatches {
			report.Truncated = true
			return nil
		}

		deleted, err := s.repo.DeleteExpired(ctx, report.Cutoff, s.cfg.BatchSize)
		if err != nil {
			return err
		}
		report.Batches++
		report.Deleted += deleted

		if deleted < s.cfg.BatchSize {
			return nil
		}
	}
}
