// internal/app/poller.go
package app

import (
	"context"
	"fmt"
	"time"

	"homework_status_bot/internal/domain/homework"
	"homework_status_bot/internal/infra/metrics"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// StatusFetcher queries the homework status API for changes since cursor.
type StatusFetcher interface {
	Fetch(ctx context.Context, cursor int64) (*homework.Envelope, error)
}

// Notifier delivers a single text message to the operator's chat.
type Notifier interface {
	Notify(ctx context.Context, text string) error
}

// Runner repeats a job until ctx is cancelled. Implemented by scheduler.Loop.
type Runner interface {
	Run(ctx context.Context, job func(ctx context.Context)) error
}

// Poller implements the poll-check-notify cycle. Every error inside a cycle is
// logged and reported to the chat; none of them stops the loop.
type Poller struct {
	fetcher  StatusFetcher
	notifier Notifier
	runner   Runner
	logger   *logrus.Entry
	now      func() time.Time
}

func NewPoller(
	fetcher StatusFetcher,
	notifier Notifier,
	runner Runner,
	logger *logrus.Entry,
) *Poller {
	return &Poller{
		fetcher:  fetcher,
		notifier: notifier,
		runner:   runner,
		logger:   logger,
		now:      time.Now,
	}
}

// Run executes cycles until ctx is cancelled.
func (p *Poller) Run(ctx context.Context) error {
	return p.runner.Run(ctx, func(ctx context.Context) {
		_ = p.Cycle(ctx)
	})
}

// Cycle performs one poll. The cursor is recomputed from the local clock on every
// cycle; the server's current_date is logged but does not move it.
// The returned error has already been logged and reported.
func (p *Poller) Cycle(ctx context.Context) error {
	cursor := p.now().Unix()
	log := p.logger.WithFields(logrus.Fields{
		"cycle_id": uuid.NewString(),
		"cursor":   cursor,
	})

	outcome, err := p.safeProcess(ctx, cursor, log)
	if err == nil {
		metrics.RecordCycle(outcome)
		return nil
	}

	kind := ClassifyError(err)
	metrics.RecordCycle(metrics.OutcomeFailed)
	metrics.RecordCycleError(string(kind))

	if ctx.Err() != nil {
		log.WithError(err).Info("Cycle interrupted by shutdown")
		return err
	}

	log.WithError(err).WithField("error_kind", kind).Error("Cycle failed")
	if notifyErr := p.notifier.Notify(ctx, FailureReport(err)); notifyErr != nil {
		log.WithError(notifyErr).Error("Failed to report cycle failure to chat")
	}
	return err
}

// safeProcess turns a panic inside the cycle into an ordinary error.
func (p *Poller) safeProcess(ctx context.Context, cursor int64, log *logrus.Entry) (outcome string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrCyclePanic, r)
		}
	}()
	return p.process(ctx, cursor, log)
}

func (p *Poller) process(ctx context.Context, cursor int64, log *logrus.Entry) (string, error) {
	envelope, err := p.fetcher.Fetch(ctx, cursor)
	if err != nil {
		return "", fmt.Errorf("failed to fetch homework statuses: %w", err)
	}
	if envelope != nil && envelope.CurrentDate != nil {
		log = log.WithField("server_date", *envelope.CurrentDate)
	}

	records, err := ValidateResponse(envelope)
	if err != nil {
		return "", err
	}
	if len(records) == 0 {
		log.Info("No homework status updates")
		return metrics.OutcomeNoUpdates, nil
	}

	latest := records[0]
	message, err := homework.Format(latest)
	if err != nil {
		return "", err
	}

	if err := p.notifier.Notify(ctx, message); err != nil {
		return "", fmt.Errorf("failed to send status update: %w", err)
	}
	log.WithFields(logrus.Fields{
		"homework": latest.Name,
		"status":   latest.Status,
	}).Info("Status update delivered")
	return metrics.OutcomeNotified, nil
}
