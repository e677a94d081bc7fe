package scheduler

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"newsletter-dispatch/internal/core/port"
)

type stubRunner struct {
	calls    atomic.Int32
	deadline atomic.Bool
	err      error
}

func (r *stubRunner) Run(ctx context.Context) (*port.RunStats, error) {
	r.calls.Add(1)
	if _, ok := ctx.Deadline(); ok {
		r.deadline.Store(true)
	}
	if r.err != nil {
		return nil, r.err
	}
	return &port.RunStats{}, nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestNewRejectsInvalidSpec(t *testing.T) {
	_, err := New("every hour", time.UTC, &stubRunner{}, time.Minute, discardLogger())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse dispatch schedule")
}

func TestNextFollowsScheduleAndLocation(t *testing.T) {
	loc := time.FixedZone("UTC-3", -3*60*60)
	s, err := New("0 * * * *", loc, &stubRunner{}, time.Minute, discardLogger())
	require.NoError(t, err)
	s.Start(context.Background())
	defer func() { _ = s.Stop(context.Background()) }()

	next := s.Next()
	require.False(t, next.IsZero())
	assert.Equal(t, 0, next.Minute())
	assert.Equal(t, loc, next.Location())
}

func TestRunNowAppliesTimeout(t *testing.T) {
	runner := &stubRunner{err: errors.New("store down")}
	s, err := New("@hourly", time.UTC, runner, time.Minute, discardLogger())
	require.NoError(t, err)

	_, err = s.RunNow(context.Background())
	assert.EqualError(t, err, "store down")
	assert.True(t, runner.deadline.Load())
}

func TestScheduledRuns(t *testing.T) {
	runner := &stubRunner{}
	s, err := New("@every 1s", time.UTC, runner, time.Minute, discardLogger())
	require.NoError(t, err)

	s.Start(context.Background())
	assert.Eventually(t, func() bool { return runner.calls.Load() >= 1 }, 3*time.Second, 20*time.Millisecond)
	require.NoError(t, s.Stop(context.Background()))
}

// blockingRunner holds each run until its context ends or release closes.
type blockingRunner struct {
	started chan context.Context
	release chan struct{}
}

func (r *blockingRunner) Run(ctx context.Context) (*port.RunStats, error) {
	select {
	case r.started <- ctx:
	default:
	}
	select {
	case <-r.release:
		return &port.RunStats{}, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func TestSignalDoesNotCancelRunningDispatch(t *testing.T) {
	runner := &blockingRunner{started: make(chan context.Context, 1), release: make(chan struct{})}
	s, err := New("@hourly", time.UTC, runner, time.Minute, discardLogger())
	require.NoError(t, err)

	parent, cancel := context.WithCancel(context.Background())
	s.Start(parent)
	s.Trigger()

	var runCtx context.Context
	select {
	case runCtx = <-runner.started:
	case <-time.After(time.Second):
		t.Fatal("triggered run did not start")
	}

	cancel()
	assert.Never(t, func() bool { return runCtx.Err() != nil }, 50*time.Millisecond, 5*time.Millisecond)

	close(runner.release)
	require.NoError(t, s.Stop(context.Background()))
}

func TestStopCancelsRunAfterDeadline(t *testing.T) {
	runner := &blockingRunner{started: make(chan context.Context, 1), release: make(chan struct{})}
	s, err := New("@hourly", time.UTC, runner, time.Minute, discardLogger())
	require.NoError(t, err)

	s.Start(context.Background())
	s.Trigger()

	var runCtx context.Context
	select {
	case runCtx = <-runner.started:
	case <-time.After(time.Second):
		t.Fatal("triggered run did not start")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	err = s.Stop(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.ErrorIs(t, runCtx.Err(), context.Canceled)
}
