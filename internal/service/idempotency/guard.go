package idempotency

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	log "github.com/sirupsen/logrus"
	"google.golang.org/protobuf/proto"

	"github.com/vladislavdragonenkov/storefront/internal/domain"
)

// DefaultTTL — срок хранения ответа по idempotency-key.
const DefaultTTL = 24 * time.Hour

// ErrInFlight — запрос с тем же ключом ещё обрабатывается.
var ErrInFlight = errors.New("request with the same idempotency key is already processing")

var idempotencyRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "storefront_idempotency_requests_total",
	Help: "Total number of idempotent requests grouped by outcome.",
}, []string{"outcome"})

// Replay — сохранённый результат предыдущего запроса с тем же ключом.
type Replay struct {
	Status domain.IdempotencyStatus
	Body   []byte
	Code   int
}

// Failed сообщает, что исходный запрос завершился ошибкой.
func (r Replay) Failed() bool {
	return r.Status == domain.IdempotencyStatusFailed
}

// GuardOption настраивает Guard.
type GuardOption func(*Guard)

// WithTTL задаёт срок жизни записи.
func WithTTL(ttl time.Duration) GuardOption {
	return func(g *Guard) {
		if ttl > 0 {
			g.ttl = ttl
		}
	}
}

// WithGuardLogger задаёт logger.
func WithGuardLogger(logger *log.Entry) GuardOption {
	return func(g *Guard) {
		if logger != nil {
			g.logger = logger
		}
	}
}

// WithGuardClock подменяет источник времени.
func WithGuardClock(now func() time.Time) GuardOption {
	return func(g *Guard) {
		if now != nil {
			g.now = now
		}
	}
}

// Guard реализует протокол idempotency-key поверх IdempotencyRepository:
// первый запрос резервирует ключ, повторы получают сохранённый ответ.
type Guard struct {
	repo   domain.IdempotencyRepository
	ttl    time.Duration
	logger *log.Entry
	now    func() time.Time
}

// NewGuard создаёт Guard.
func NewGuard(repo domain.IdempotencyRepository, options ...GuardOption) *Guard {
	g := &Guard{
		repo:   repo,
		ttl:    DefaultTTL,
		logger: log.WithField("component", "idempotency-guard"),
		now:    func() time.Time { return time.Now().UTC() },
	}
	for _, option := range options {
		option(g)
	}
	return g
}

// HashRequest строит отпечаток запроса: одинаковый ключ с другим телом считается ошибкой клиента.
func HashRequest(method string, req proto.Message) (string, error) {
	if req == nil {
		return "", fmt.Errorf("request is nil")
	}

	data, err := proto.MarshalOptions{Deterministic: true}.Marshal(req)
	if err != nil {
		return "", fmt.Errorf("encode request for hash: %w", err)
	}

	payload := make([]byte, 0, len(method)+1+len(data))
	payload = append(payload, method...)
	payload = append(payload, ':')
	payload = append(payload, data...)
	sum := sha256.Sum256(payload)
	return hex.EncodeToString(sum[:]), nil
}

// Begin резервирует ключ. nil Replay без ошибки означает, что запрос нужно выполнить
// и затем вызвать Complete, Fail или Release.
func (g *Guard) Begin(ctx context.Context, key domain.IdempotencyKey, requestHash string) (*Replay, error) {
	if err := key.Validate(); err != nil {
		return nil, err
	}

	record, err := g.repo.Reserve(ctx, key, requestHash, g.now().Add(g.ttl))
	switch {
	case err == nil:
		idempotencyRequestsTotal.WithLabelValues("new").Inc()
		return nil, nil
	case errors.Is(err, domain.ErrIdempotencyHashMismatch):
		idempotencyRequestsTotal.WithLabelValues("mismatch").Inc()
		return nil, err
	case errors.Is(err, domain.ErrIdempotencyKeyAlreadyExists):
	default:
		return nil, fmt.Errorf("reserve idempotency key: %w", err)
	}

	switch {
	case record.Status == domain.IdempotencyStatusProcessing:
		idempotencyRequestsTotal.WithLabelValues("in_flight").Inc()
		return nil, ErrInFlight
	case record.Status.Final():
		idempotencyRequestsTotal.WithLabelValues("replayed").Inc()
		return &Replay{
			Status: record.Status,
			Body:   append([]byte(nil), record.ResponseBody...),
			Code:   record.ResponseCode,
		}, nil
	default:
		return nil, fmt.Errorf("unknown idempotency record status %q", record.Status)
	}
}

// Complete сохраняет успешный ответ.
func (g *Guard) Complete(ctx context.Context, key domain.IdempotencyKey, body []byte) {
	g.finish(ctx, key, domain.IdempotencyStatusDone, body, 0)
}

// Fail сохраняет окончательную ошибку: повтор с тем же ключом вернёт её же.
func (g *Guard) Fail(ctx context.Context, key domain.IdempotencyKey, body []byte, code int) {
	g.finish(ctx, key, domain.IdempotencyStatusFailed, body, code)
}

func (g *Guard) finish(ctx context.Context, key domain.IdempotencyKey, status domain.IdempotencyStatus, body []byte, code int) {
	if err := g.repo.Finish(ctx, key, status, body, code); err != nil {
		g.logger.WithError(err).WithFields(log.Fields{
			"idempotency_key": key.String(),
			"status":          string(status),
		}).Warn("failed to store idempotent response")
	}
}

// Release освобождает ключ после ретраябельной ошибки.
func (g *Guard) Release(ctx context.Context, key domain.IdempotencyKey) {
	if err := g.repo.Release(ctx, key); err != nil {
		g.logger.WithError(err).WithField("idempotency_key", key.String()).Warn("failed to release idempotency key")
	}
}
