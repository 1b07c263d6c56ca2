// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-vault-keeper/internal/config"
	"github.com/MKhiriev/go-vault-keeper/internal/logger"
	"github.com/MKhiriev/go-vault-keeper/models"
)

type recordingRelay struct {
	mu    sync.Mutex
	sent  []models.PushNotification
	gate  chan struct{}
	err   error
	hasDL bool
}

func (r *recordingRelay) Send(ctx context.Context, n models.PushNotification) error {
	if r.gate != nil {
		<-r.gate
	}
	_, hasDeadline := ctx.Deadline()

	r.mu.Lock()
	defer r.mu.Unlock()
	r.sent = append(r.sent, n)
	r.hasDL = hasDeadline
	return r.err
}

func (r *recordingRelay) Sent() []models.PushNotification {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]models.PushNotification(nil), r.sent...)
}

func notification(pushType models.PushType) models.PushNotification {
	return models.NewPushNotification(pushType, models.UserOwner(uuid.New()), time.Now())
}

func TestPushWorker_DeliversInOrder(t *testing.T) {
	relay := &recordingRelay{}
	w := NewPushWorker(relay, config.Workers{PushQueueSize: 8}, time.Second, logger.Nop())
	w.Run()

	ctx := context.Background()
	w.Notify(ctx, notification(models.PushTypeSyncCiphers))
	w.Notify(ctx, notification(models.PushTypeSyncVault))
	w.Notify(ctx, notification(models.PushTypeLogOut))
	w.Stop()

	sent := relay.Sent()
	require.Len(t, sent, 3)
	assert.Equal(t, models.PushTypeSyncCiphers, sent[0].Type)
	assert.Equal(t, models.PushTypeSyncVault, sent[1].Type)
	assert.Equal(t, models.PushTypeLogOut, sent[2].Type)
	assert.True(t, relay.hasDL, "relay calls must be bounded by a timeout")
}

func TestPushWorker_DropsWhenFull(t *testing.T) {
	relay := &recordingRelay{gate: make(chan struct{})}
	w := NewPushWorker(relay, config.Workers{PushQueueSize: 1}, time.Second, logger.Nop())

	ctx := context.Background()
	w.Notify(ctx, notification(models.PushTypeSyncVault))
	w.Notify(ctx, notification(models.PushTypeLogOut))

	w.Run()
	close(relay.gate)
	w.Stop()

	sent := relay.Sent()
	require.Len(t, sent, 1)
	assert.Equal(t, models.PushTypeSyncVault, sent[0].Type)
}

func TestPushWorker_RelayErrorDoesNotStopDelivery(t *testing.T) {
	relay := &recordingRelay{err: assert.AnError}
	w := NewPushWorker(relay, config.Workers{}, 0, logger.Nop())
	w.Run()

	w.Notify(context.Background(), notification(models.PushTypeSyncVault))
	w.Notify(context.Background(), notification(models.PushTypeSyncVault))
	w.Stop()

	assert.Len(t, relay.Sent(), 2)
}

func TestPushWorker_NotifyAfterStop(t *testing.T) {
	relay := &recordingRelay{}
	w := NewPushWorker(relay, config.Workers{PushQueueSize: 4}, time.Second, logger.Nop())
	w.Run()
	w.Stop()

	assert.NotPanics(t, func() {
		w.Notify(context.Background(), notification(models.PushTypeLogOut))
		w.Stop()
	})
	assert.Empty(t, relay.Sent())
}

func TestNewPushWorker_Defaults(t *testing.T) {
	w := NewPushWorker(&recordingRelay{}, config.Workers{PushQueueSize: -1}, -time.Second, logger.Nop())
	assert.Equal(t, defaultPushQueueSize, cap(w.queue))
	assert.Equal(t, defaultSendTimeout, w.sendTimeout)
}
