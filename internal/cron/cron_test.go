package cron

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type countingCleaner struct {
	mu    sync.Mutex
	calls []int
	err   error
}

func (c *countingCleaner) CleanupOldLogs(days int) (int64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.calls = append(c.calls, days)
	return 1, c.err
}

func (c *countingCleaner) count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.calls)
}

func TestRunCleanup_RunsImmediatelyAndOnTick(t *testing.T) {
	cleaner := &countingCleaner{}
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		runCleanup(ctx, cleaner, 7, 10*time.Millisecond)
		close(done)
	}()

	assert.Eventually(t, func() bool { return cleaner.count() >= 2 }, time.Second, 5*time.Millisecond)
	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("cleanup loop did not stop after cancel")
	}
	assert.Equal(t, 7, cleaner.calls[0])
}

func TestRunCleanup_ErrorKeepsLooping(t *testing.T) {
	cleaner := &countingCleaner{err: errors.New("db down")}
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go runCleanup(ctx, cleaner, 30, 10*time.Millisecond)

	assert.Eventually(t, func() bool { return cleaner.count() >= 3 }, time.Second, 5*time.Millisecond)
}
