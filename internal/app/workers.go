package app

import (
	"context"
	"time"

	log "github.com/sirupsen/logrus"
)

const workerStopTimeout = 5 * time.Second

// backgroundWorker — фоновая задача с собственной отменой.
type backgroundWorker struct {
	name   string
	cancel context.CancelFunc
	done   chan struct{}
}

// startWorker запускает run в отдельной горутине с дочерним контекстом.
func startWorker(ctx context.Context, name string, run func(ctx context.Context), logger *log.Entry) *backgroundWorker {
	workerCtx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})

	go func() {
		defer close(done)
		run(workerCtx)
	}()

	logger.WithField("worker", name).Info("background worker started")
	return &backgroundWorker{name: name, cancel: cancel, done: done}
}

// stop отменяет воркер и ждёт завершения не дольше workerStopTimeout.
func (w *backgroundWorker) stop(logger *log.Entry) {
	if w == nil {
		return
	}
	shutdownWorker(w.cancel, w.done, logger.WithField("worker", w.name))
}

func shutdownWorker(cancel context.CancelFunc, done <-chan struct{}, logger *log.Entry) {
	if cancel != nil {
		cancel()
	}
	if done == nil {
		return
	}

	select {
	case <-done:
	case <-time.After(workerStopTimeout):
		logger.Warn("worker did not stop in time")
	}
}
