// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-vault-keeper/internal/adapter"
	"github.com/MKhiriev/go-vault-keeper/internal/config"
	"github.com/MKhiriev/go-vault-keeper/internal/logger"
	"github.com/MKhiriev/go-vault-keeper/models"
)

const (
	defaultPushQueueSize = 256
	defaultSendTimeout   = 5 * time.Second
)

// PushWorker delivers sync notifications through a [adapter.PushRelay] from
// a bounded in-memory queue. Notify never blocks the caller: when the queue
// is full or the worker is stopped, the notification is dropped and logged.
// Clients fall back to their periodic sync, so a lost notification only
// delays it.
type PushWorker struct {
	relay       adapter.PushRelay
	queue       chan models.PushNotification
	sendTimeout time.Duration

	mu      sync.RWMutex
	stopped bool
	wg      sync.WaitGroup

	logger *logger.Logger
}

// NewPushWorker builds a worker for relay sized by cfg.PushQueueSize.
// sendTimeout bounds each relay call; non-positive values use 5s.
func NewPushWorker(relay adapter.PushRelay, cfg config.Workers, sendTimeout time.Duration, logger *logger.Logger) *PushWorker {
	size := cfg.PushQueueSize
	if size <= 0 {
		size = defaultPushQueueSize
	}
	if sendTimeout <= 0 {
		sendTimeout = defaultSendTimeout
	}

	return &PushWorker{
		relay:       relay,
		queue:       make(chan models.PushNotification, size),
		sendTimeout: sendTimeout,
		logger:      logger,
	}
}

// Notify enqueues notification for delivery.
func (w *PushWorker) Notify(ctx context.Context, notification models.PushNotification) {
	log := logger.FromContext(ctx)

	w.mu.RLock()
	defer w.mu.RUnlock()

	if w.stopped {
		log.Warn().Str("func", "PushWorker.Notify").Int("type", int(notification.Type)).Msg("push worker stopped, notification dropped")
		return
	}

	select {
	case w.queue <- notification:
	default:
		log.Warn().Str("func", "PushWorker.Notify").Int("type", int(notification.Type)).Msg("push queue is full, notification dropped")
	}
}

// Run starts the delivery goroutine.
func (w *PushWorker) Run() {
	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		for notification := range w.queue {
			w.send(notification)
		}
	}()
	w.logger.Info().Str("func", "PushWorker.Run").Int("queue_size", cap(w.queue)).Msg("push worker started")
}

// Stop rejects new notifications, delivers everything already queued and
// waits for the delivery goroutine to exit. It is safe to call more than
// once.
func (w *PushWorker) Stop() {
	w.mu.Lock()
	if w.stopped {
		w.mu.Unlock()
		return
	}
	w.stopped = true
	close(w.queue)
	w.mu.Unlock()

	w.wg.Wait()
	w.logger.Info().Str("func", "PushWorker.Stop").Msg("push worker stopped")
}

func (w *PushWorker) send(notification models.PushNotification) {
	ctx, cancel := context.WithTimeout(w.logger.WithContext(context.Background()), w.sendTimeout)
	defer cancel()

	if err := w.relay.Send(ctx, notification); err != nil {
		w.logger.Err(err).
			Str("func", "PushWorker.send").
			Int("type", int(notification.Type)).
			Msg("failed to deliver push notification")
	}
}
