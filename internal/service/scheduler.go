package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/mailfleet/mailfleet/pkg/logger"
)

const (
	dispatchSpec = "* * * * *" // scheduled + recurring + sequence dispatch
	drainSpec    = "1 0 * * *" // daily queue drain, just past UTC midnight
)

// Scheduler owns the cron wheel driving the dispatchers and the daily queue
// drain. Every tick handler recovers panics and logs failures; a bad tick
// never stops the wheel.
type Scheduler struct {
	scheduled *ScheduledDispatcher
	recurring *RecurringDispatcher
	sequences *SequenceDispatcher
	queue     *QueueProcessorService
	logger    logger.Logger

	cron    *cron.Cron
	mu      sync.Mutex
	running bool
}

// NewScheduler creates the scheduler. Start must be called to begin ticking.
func NewScheduler(
	scheduled *ScheduledDispatcher,
	recurring *RecurringDispatcher,
	sequences *SequenceDispatcher,
	queue *QueueProcessorService,
	log logger.Logger,
) *Scheduler {
	return &Scheduler{
		scheduled: scheduled,
		recurring: recurring,
		sequences: sequences,
		queue:     queue,
		logger:    log,
	}
}

// Start registers the cron entries and starts the wheel in UTC.
func (s *Scheduler) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.running {
		return fmt.Errorf("scheduler already running")
	}

	s.cron = cron.New(cron.WithLocation(time.UTC))

	if _, err := s.cron.AddFunc(dispatchSpec, s.safeTick("dispatch", s.dispatchTick)); err != nil {
		return fmt.Errorf("failed to register dispatch entry: %w", err)
	}
	if _, err := s.cron.AddFunc(drainSpec, s.safeTick("queue drain", s.drainTick)); err != nil {
		return fmt.Errorf("failed to register drain entry: %w", err)
	}

	s.cron.Start()
	s.running = true
	s.logger.WithFields(map[string]interface{}{
		"dispatch": dispatchSpec,
		"drain":    drainSpec,
	}).Info("Scheduler started")
	return nil
}

// Stop halts the wheel and waits up to 5s for in-flight jobs.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.running {
		return
	}

	stopCtx := s.cron.Stop()
	select {
	case <-stopCtx.Done():
		s.logger.Info("Scheduler stopped")
	case <-time.After(5 * time.Second):
		s.logger.Warn("Scheduler stop timed out waiting for jobs")
	}
	s.running = false
}

// IsRunning reports whether the wheel is ticking.
func (s *Scheduler) IsRunning() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.running
}

func (s *Scheduler) dispatchTick() {
	ctx := context.Background()
	s.scheduled.Tick(ctx)
	s.recurring.Tick(ctx)
	s.sequences.Tick(ctx)
}

func (s *Scheduler) drainTick() {
	processed, failed, err := s.queue.Drain(context.Background())
	if err != nil {
		s.logger.Error(fmt.Sprintf("Queue drain failed: %v", err))
		return
	}
	if processed > 0 || failed > 0 {
		s.logger.WithFields(map[string]interface{}{
			"processed": processed,
			"failed":    failed,
		}).Info("Queue drain finished")
	}
}

func (s *Scheduler) safeTick(name string, tick func()) func() {
	return func() {
		defer func() {
			if r := recover(); r != nil {
				s.logger.Error(fmt.Sprintf("Recovered from panic in %s tick: %v", name, r))
			}
		}()
		tick()
	}
}
