package sweep

import (
	"context"
	"fmt"
	"time"

	pkgLog "condopay-srv/pkg/log"

	"github.com/robfig/cron/v3"
)

// Scheduler drives the sweep on a fixed interval. The first pass runs
// immediately on Start so a restart never waits a full interval.
type Scheduler struct {
	l        pkgLog.Logger
	uc       UseCase
	interval time.Duration
	engine   *cron.Cron
}

func NewScheduler(l pkgLog.Logger, uc UseCase, interval time.Duration) *Scheduler {
	return &Scheduler{
		l:        l,
		uc:       uc,
		interval: interval,
		engine:   cron.New(),
	}
}

func (s *Scheduler) Start(ctx context.Context) error {
	spec := fmt.Sprintf("@every %s", s.interval)
	if _, err := s.engine.AddFunc(spec, func() {
		s.run(ctx)
	}); err != nil {
		return err
	}

	s.run(ctx)
	s.engine.Start()
	s.l.Infof(ctx, "internal.sweep.Scheduler.Start: sweeping every %s", s.interval)
	return nil
}

// Stop halts scheduling and waits for an in-flight pass to finish.
func (s *Scheduler) Stop(ctx context.Context) {
	stopCtx := s.engine.Stop()
	select {
	case <-stopCtx.Done():
	case <-ctx.Done():
	}
	s.l.Infof(ctx, "internal.sweep.Scheduler.Stop: stopped")
}

func (s *Scheduler) run(ctx context.Context) {
	runCtx, cancel := context.WithTimeout(ctx, time.Minute)
	defer cancel()

	if _, err := s.uc.RunOnce(runCtx, time.Now()); err != nil {
		s.l.Errorf(ctx, "internal.sweep.Scheduler.run: %v", err)
	}
}
