// Package health агрегирует проверки зависимостей сервиса для /healthz и /readyz.
package health

import (
	"context"
	"time"
)

// Status — состояние компонента или сервиса целиком.
type Status string

const (
	StatusHealthy   Status = "healthy"
	StatusDegraded  Status = "degraded"
	StatusUnhealthy Status = "unhealthy"
)

// rank упорядочивает статусы от лучшего к худшему.
func (s Status) rank() int {
	switch s {
	case StatusHealthy:
		return 0
	case StatusDegraded:
		return 1
	default:
		return 2
	}
}

// Check — результат проверки одного компонента.
type Check struct {
	Name       string `json:"name"`
	Status     Status `json:"status"`
	Critical   bool   `json:"critical"`
	Message    string `json:"message,omitempty"`
	DurationMs int64  `json:"duration_ms"`
}

// Checker проверяет компонент в пределах ctx.
type Checker interface {
	Check(ctx context.Context) Check
}

// SimpleChecker превращает функцию пинга в Checker.
type SimpleChecker struct {
	name string
	ping func(ctx context.Context) error
}

func NewSimpleChecker(name string, ping func(ctx context.Context) error) *SimpleChecker {
	return &SimpleChecker{name: name, ping: ping}
}

func (c *SimpleChecker) Check(ctx context.Context) Check {
	started := time.Now()
	err := c.ping(ctx)

	check := Check{
		Name:       c.name,
		Status:     StatusHealthy,
		DurationMs: time.Since(started).Milliseconds(),
	}
	if err != nil {
		check.Status = StatusUnhealthy
		check.Message = err.Error()
	}
	return check
}
