// Package schedule implements the daily timer that drives the
// background passes of the backend.
package schedule

import (
	"math/rand"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
)

// A Scheduler runs a function once per day inside a jittered window.
//
// Schedule arms a single timer for the day after between 02:00 and
// 04:00 UTC. When the timer fires, the runner is executed and the
// scheduler re-arms itself, no matter how the run ended. At most one
// timer is pending per scheduler, arming again cancels the previous
// timer.
type Scheduler struct {
	name string

	mu    sync.Mutex
	timer *time.Timer

	now    func() time.Time
	jitter func(n int) int
}

// Option configures a Scheduler.
type Option func(*Scheduler)

// WithClock replaces the wall clock, used by tests.
func WithClock(now func() time.Time) Option {
	return func(s *Scheduler) {
		s.now = now
	}
}

// WithJitter replaces the random minute offset, used by tests.
func WithJitter(jitter func(n int) int) Option {
	return func(s *Scheduler) {
		s.jitter = jitter
	}
}

// New returns a scheduler. The name only appears in logs.
func New(name string, options ...Option) *Scheduler {
	s := &Scheduler{
		name:   name,
		now:    time.Now,
		jitter: rand.Intn,
	}

	for _, option := range options {
		option(s)
	}

	return s
}

// NextAfter computes the target instant for a run that follows a run
// started at from: the next day at 02:00 UTC plus a uniformly random
// offset of up to two hours.
func (s *Scheduler) NextAfter(from time.Time) time.Time {
	t := from.UTC()
	return time.Date(t.Year(), t.Month(), t.Day()+1, 2, s.jitter(120), 0, 0, time.UTC)
}

// Schedule arms the timer for the next run of the runner. A pending
// timer is cancelled first, so re-arming is idempotent.
func (s *Scheduler) Schedule(run func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}

	now := s.now()
	next := s.NextAfter(now)

	log.Info().Str("scheduler", s.name).Time("next", next).Msg("next run scheduled")

	s.timer = time.AfterFunc(next.Sub(now), func() {
		s.fire(run)
	})
}

// RunNow executes the runner immediately and arms the regular schedule
// afterwards. It blocks until the run is finished.
func (s *Scheduler) RunNow(run func()) {
	s.fire(run)
}

// Stop cancels a pending timer. Nothing is re-armed afterwards.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
}

// Pending reports whether a timer is armed.
func (s *Scheduler) Pending() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.timer != nil
}

// fire runs the runner and re-arms the scheduler. A panicking runner
// must not kill future runs, so the re-arm happens unconditionally and
// the panic is logged instead of propagated.
func (s *Scheduler) fire(run func()) {
	defer s.Schedule(run)

	defer func() {
		if r := recover(); r != nil {
			log.Error().Str("scheduler", s.name).Interface("panic", r).Msg("scheduled run panicked")
		}
	}()

	run()
}
