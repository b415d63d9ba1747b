package cron

import (
	"context"
	"log/slog"
	"math/rand"
	"sync"
	"time"
)

// JobFunc is a scheduled unit of work. It receives the scheduler's context
// and reports failure through the returned error.
type JobFunc func(ctx context.Context) error

type job struct {
	name  string
	every time.Duration
	run   JobFunc
}

// Scheduler runs registered jobs on fixed intervals until stopped.
type Scheduler struct {
	jobs   []job
	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
	mu     sync.Mutex
}

func NewScheduler() *Scheduler {
	ctx, cancel := context.WithCancel(context.Background())
	return &Scheduler{ctx: ctx, cancel: cancel}
}

// AddJob registers a job to run every interval. Jobs added after Start are
// not picked up.
func (s *Scheduler) AddJob(name string, every time.Duration, fn JobFunc) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.jobs = append(s.jobs, job{name: name, every: every, run: fn})
	slog.Info("Cron job registered", "name", name, "interval", every)
}

// Start launches one goroutine per job. Each job runs once at startup,
// offset by a small random delay so jobs sharing an interval do not hit the
// database at the same instant.
func (s *Scheduler) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, j := range s.jobs {
		s.wg.Add(1)
		go s.loop(j, startJitter(j.every))
	}
	slog.Info("Cron scheduler started", "job_count", len(s.jobs))
}

// Stop cancels the scheduler context and waits for in-flight runs.
func (s *Scheduler) Stop() {
	slog.Info("Stopping cron scheduler...")
	s.cancel()
	s.wg.Wait()
	slog.Info("Cron scheduler stopped")
}

// startJitter spreads initial runs across a tenth of the interval, capped at
// a minute so long intervals still start promptly.
func startJitter(every time.Duration) time.Duration {
	limit := every / 10
	if limit > time.Minute {
		limit = time.Minute
	}
	if limit <= 0 {
		return 0
	}
	return time.Duration(rand.Int63n(int64(limit)))
}

func (s *Scheduler) loop(j job, delay time.Duration) {
	defer s.wg.Done()

	select {
	case <-s.ctx.Done():
		return
	case <-time.After(delay):
	}
	s.execute(j)

	ticker := time.NewTicker(j.every)
	defer ticker.Stop()
	for {
		select {
		case <-s.ctx.Done():
			slog.Info("Cron job stopping", "name", j.name)
			return
		case <-ticker.C:
			s.execute(j)
		}
	}
}

func (s *Scheduler) execute(j job) {
	start := time.Now()
	if err := j.run(s.ctx); err != nil {
		slog.Error("Cron job failed", "name", j.name, "error", err, "duration", time.Since(start))
		return
	}
	slog.Debug("Cron job completed", "name", j.name, "duration", time.Since(start))
}

// RunOnce executes every registered job once, synchronously. Tests and
// one-shot maintenance use it instead of Start.
func (s *Scheduler) RunOnce(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, j := range s.jobs {
		if err := j.run(ctx); err != nil {
			slog.Error("Cron job failed", "name", j.name, "error", err)
		}
	}
}
