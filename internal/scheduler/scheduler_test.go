package scheduler

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type fakeExpirer struct {
	calls atomic.Int64
	err   error
}

func (f *fakeExpirer) ExpireStaleBookings(ctx context.Context) (int64, error) {
	f.calls.Add(1)
	return 1, f.err
}

func TestScheduler_RunsSweepOnInterval(t *testing.T) {
	expirer := &fakeExpirer{}
	s := New(expirer, 20*time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), 90*time.Millisecond)
	defer cancel()

	s.Start(ctx)

	assert.GreaterOrEqual(t, expirer.calls.Load(), int64(3))
}

func TestScheduler_KeepsRunningAfterSweepError(t *testing.T) {
	expirer := &fakeExpirer{err: errors.New("db down")}
	s := New(expirer, 20*time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), 70*time.Millisecond)
	defer cancel()

	s.Start(ctx)

	assert.GreaterOrEqual(t, expirer.calls.Load(), int64(2), "errors are logged, not fatal")
}

func TestScheduler_StopsOnContextCancel(t *testing.T) {
	expirer := &fakeExpirer{}
	s := New(expirer, time.Second) // interval longer than the test

	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		s.Start(ctx)
		close(done)
	}()

	cancel()

	select {
	case <-done:
		// success
	case <-time.After(time.Second):
		t.Fatal("scheduler did not stop on context cancel")
	}
}
