package scheduler

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

var ErrScheduleExhausted = errors.New("schedule has no further activations")

// Loop runs a job repeatedly on a single goroutine. The next activation is computed
// from the moment the previous run finished, so runs never overlap and "@every 10m"
// means a ten-minute pause after each run.
type Loop struct {
	schedule cron.Schedule
	spec     string
	logger   *logrus.Entry

	now   func() time.Time
	after func(time.Duration) <-chan time.Time
}

// NewLoop parses spec as a standard five-field cron expression or a descriptor
// such as "@every 10m" or "@hourly".
func NewLoop(spec string, logger *logrus.Entry) (*Loop, error) {
	schedule, err := cron.ParseStandard(spec)
	if err != nil {
		return nil, fmt.Errorf("invalid poll schedule %q: %w", spec, err)
	}
	return &Loop{
		schedule: schedule,
		spec:     spec,
		logger:   logger,
		now:      time.Now,
		after:    time.After,
	}, nil
}

// Run executes job immediately and then after every pause until ctx is cancelled.
// It returns ctx.Err() on cancellation.
func (l *Loop) Run(ctx context.Context, job func(ctx context.Context)) error {
	l.logger.WithField("schedule", l.spec).Info("Starting poll loop")

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		job(ctx)
		if err := ctx.Err(); err != nil {
			l.logger.Info("Poll loop stopped")
			return err
		}

		finished := l.now()
		next := l.schedule.Next(finished)
		if next.IsZero() {
			return ErrScheduleExhausted
		}
		wait := next.Sub(finished)
		l.logger.WithFields(logrus.Fields{
			"next_run": next.Format(time.RFC3339),
			"wait":     wait.String(),
		}).Debug("Sleeping until next cycle")

		select {
		case <-ctx.Done():
			l.logger.Info("Poll loop stopped")
			return ctx.Err()
		case <-l.after(wait):
		}
	}
}
