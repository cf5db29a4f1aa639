// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The ChatVault Authors

package workers

import (
	"context"
	"sync"
	"time"

	"github.com/quillchat/chatvault/internal/adapter"
	"github.com/quillchat/chatvault/internal/logger"
	"github.com/quillchat/chatvault/internal/store"
)

const defaultKeySyncInterval = 5 * time.Minute

// KeySyncWorker retries remote upserts for wrapped-key records whose upload
// failed at creation time. Key creation never blocks on the network, so this
// worker is what makes remote durability eventually consistent.
type KeySyncWorker struct {
	local    store.LocalKeyRepository
	remote   adapter.RemoteKeyStore
	interval time.Duration
	log      *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewKeySyncWorker builds the worker. A zero or negative interval defaults
// to 5 minutes.
func NewKeySyncWorker(local store.LocalKeyRepository, remote adapter.RemoteKeyStore, interval time.Duration, log *logger.Logger) *KeySyncWorker {
	if interval <= 0 {
		interval = defaultKeySyncInterval
	}
	return &KeySyncWorker{local: local, remote: remote, interval: interval, log: log}
}

// Run implements [Worker]. It starts the sync loop in a background
// goroutine and returns immediately.
func (w *KeySyncWorker) Run() {
	w.Start(context.Background())
}

// Start stops any previously running loop, then launches a goroutine that
// drains pending records every interval. The goroutine exits when ctx is
// cancelled or Stop is called.
func (w *KeySyncWorker) Start(ctx context.Context) {
	w.Stop()

	w.mu.Lock()
	loopCtx, cancel := context.WithCancel(ctx)
	w.cancel = cancel
	w.wg.Add(1)
	w.mu.Unlock()

	go func() {
		defer w.wg.Done()
		t := time.NewTicker(w.interval)
		defer t.Stop()

		for {
			select {
			case <-loopCtx.Done():
				return
			case <-t.C:
				w.SyncPending(loopCtx)
			}
		}
	}()
}

// Stop cancels the sync loop and blocks until the goroutine has exited.
// Safe to call when the worker is not running.
func (w *KeySyncWorker) Stop() {
	w.mu.Lock()
	cancel := w.cancel
	w.cancel = nil
	w.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	w.wg.Wait()
}

// SyncPending uploads every record still flagged pending and clears the
// flag on success. A record that fails again simply stays pending for the
// next tick.
func (w *KeySyncWorker) SyncPending(ctx context.Context) {
	pending, err := w.local.ListPendingRemote(ctx)
	if err != nil {
		w.log.Warn().Err(err).Msg("listing pending key records failed")
		return
	}
	if len(pending) == 0 {
		return
	}

	synced := 0
	for _, record := range pending {
		if err = w.remote.UpsertKey(ctx, record); err != nil {
			w.log.Debug().Err(err).Str("conversation_id", record.ConversationID).Msg("pending key upsert failed, will retry")
			continue
		}
		if err = w.local.ClearPendingRemote(ctx, record.ConversationID); err != nil {
			w.log.Warn().Err(err).Str("conversation_id", record.ConversationID).Msg("clearing pending flag failed")
			continue
		}
		synced++
	}

	w.log.Info().Int("pending", len(pending)).Int("synced", synced).Msg("key sync pass finished")
}
