package sync

import (
	"context"
	"log/slog"
	stdsync "sync"
	"time"
)

// Scheduler owns the repeating sync trigger: one immediate cycle at startup,
// then one per interval until Stop. Cancellation stops the trigger; an
// in-flight cycle runs to completion.
type Scheduler struct {
	syncer   SyncerInterface
	interval time.Duration
	ctx      context.Context
	cancel   context.CancelFunc
	wg       stdsync.WaitGroup
}

func NewScheduler(syncer SyncerInterface, interval time.Duration) *Scheduler {
	ctx, cancel := context.WithCancel(context.Background())

	return &Scheduler{
		syncer:   syncer,
		interval: interval,
		ctx:      ctx,
		cancel:   cancel,
	}
}

func (s *Scheduler) Start() {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()

		slog.Info("Scheduler started", "interval", s.interval)

		// Cycles deliberately get a fresh context: teardown cancels the
		// trigger, not work already in flight.
		s.syncer.RunCycle(context.Background())

		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()

		for {
			select {
			case <-s.ctx.Done():
				slog.Info("Scheduler stopped")
				return
			case <-ticker.C:
				s.syncer.RunCycle(context.Background())
			}
		}
	}()
}

func (s *Scheduler) Stop() {
	s.cancel()
	s.wg.Wait()
}
