package scheduler

import (
	"context"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLoop(t *testing.T, spec string, now time.Time) (*Loop, *[]time.Duration) {
	t.Helper()
	l, _ := test.NewNullLogger()
	loop, err := NewLoop(spec, logrus.NewEntry(l))
	require.NoError(t, err)

	var waits []time.Duration
	loop.now = func() time.Time { return now }
	loop.after = func(d time.Duration) <-chan time.Time {
		waits = append(waits, d)
		ch := make(chan time.Time, 1)
		ch <- now.Add(d)
		return ch
	}
	return loop, &waits
}

func TestLoop_RunsImmediatelyThenWaitsFixedInterval(t *testing.T) {
	now := time.Date(2024, 5, 1, 10, 30, 0, 0, time.UTC)
	loop, waits := newTestLoop(t, "@every 10m", now)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	runs := 0
	err := loop.Run(ctx, func(ctx context.Context) {
		runs++
		if runs == 3 {
			cancel()
		}
	})

	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 3, runs)
	// The third run cancels the context, so only two pauses happen.
	assert.Equal(t, []time.Duration{10 * time.Minute, 10 * time.Minute}, *waits)
}

func TestLoop_CronExpression(t *testing.T) {
	now := time.Date(2024, 5, 1, 10, 30, 0, 0, time.Local)
	loop, waits := newTestLoop(t, "0 * * * *", now)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	runs := 0
	_ = loop.Run(ctx, func(ctx context.Context) {
		runs++
		if runs == 2 {
			cancel()
		}
	})

	require.Len(t, *waits, 1)
	assert.Equal(t, 30*time.Minute, (*waits)[0])
}

func TestLoop_CancelledBeforeStart(t *testing.T) {
	loop, _ := newTestLoop(t, "@every 1m", time.Now())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	runs := 0
	err := loop.Run(ctx, func(context.Context) { runs++ })
	assert.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, runs)
}

func TestNewLoop_InvalidSpec(t *testing.T) {
	l, _ := test.NewNullLogger()
	_, err := NewLoop("every ten minutes", logrus.NewEntry(l))
	assert.Error(t, err)
}
