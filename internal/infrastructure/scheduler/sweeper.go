// Package scheduler runs periodic maintenance jobs on a cron schedule.
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"

	"github.com/mmemodas/storefront/internal/core/domain"
)

const runTimeout = time.Minute

// Completer marks confirmed appointments dated before today as completed.
type Completer interface {
	CompletePast(ctx context.Context, today string) (int, error)
}

// Sweeper periodically closes out appointments whose day has passed.
type Sweeper struct {
	completer Completer
	log       zerolog.Logger
	now       func() time.Time

	mu   sync.Mutex
	cron *cron.Cron
}

func NewSweeper(completer Completer, log zerolog.Logger) *Sweeper {
	return &Sweeper{completer: completer, log: log, now: time.Now}
}

// Start schedules RunOnce with a standard five-field spec or a descriptor
// such as "@hourly".
func (s *Sweeper) Start(schedule string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cron != nil {
		return fmt.Errorf("sweeper already started")
	}

	c := cron.New()
	if _, err := c.AddFunc(schedule, func() { s.RunOnce(context.Background()) }); err != nil {
		return fmt.Errorf("sweeper schedule %q: %w", schedule, err)
	}
	c.Start()
	s.cron = c

	s.log.Info().Str("schedule", schedule).Msg("appointment sweeper started")
	return nil
}

// RunOnce performs a single sweep and returns how many appointments changed.
func (s *Sweeper) RunOnce(ctx context.Context) int {
	ctx, cancel := context.WithTimeout(ctx, runTimeout)
	defer cancel()

	today := s.now().Format(domain.DateLayout)
	n, err := s.completer.CompletePast(ctx, today)
	if err != nil {
		s.log.Error().Err(err).Int("completed", n).Msg("appointment sweep failed")
		return n
	}
	if n > 0 {
		s.log.Info().Int("completed", n).Str("before", today).Msg("past appointments completed")
	}
	return n
}

// Stop halts scheduling and waits for a running sweep to finish.
func (s *Sweeper) Stop() {
	s.mu.Lock()
	c := s.cron
	s.cron = nil
	s.mu.Unlock()

	if c == nil {
		return
	}
	<-c.Stop().Done()
	s.log.Info().Msg("appointment sweeper stopped")
}
