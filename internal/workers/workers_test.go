// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"errors"
	"runtime"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPool_DefaultSize(t *testing.T) {
	p := NewPool(0)
	assert.Equal(t, runtime.GOMAXPROCS(0), p.Size())

	p = NewPool(-3)
	assert.Equal(t, runtime.GOMAXPROCS(0), p.Size())
}

func TestNewPool_ExplicitSize(t *testing.T) {
	assert.Equal(t, 7, NewPool(7).Size())
}

func TestPool_Do_ReturnsJobError(t *testing.T) {
	p := NewPool(1)
	jobErr := errors.New("job failed")

	err := p.Do(context.Background(), func() error { return jobErr })
	assert.ErrorIs(t, err, jobErr)
}

func TestPool_Do_RunsJob(t *testing.T) {
	p := NewPool(1)
	called := false

	err := p.Do(context.Background(), func() error {
		called = true
		return nil
	})

	require.NoError(t, err)
	assert.True(t, called)
}

func TestPool_Do_BoundsConcurrency(t *testing.T) {
	const size = 3
	p := NewPool(size)

	var running, peak atomic.Int32
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = p.Do(context.Background(), func() error {
				n := running.Add(1)
				for {
					old := peak.Load()
					if n <= old || peak.CompareAndSwap(old, n) {
						break
					}
				}
				time.Sleep(5 * time.Millisecond)
				running.Add(-1)
				return nil
			})
		}()
	}
	wg.Wait()

	assert.LessOrEqual(t, peak.Load(), int32(size))
	assert.Greater(t, peak.Load(), int32(1), "jobs must run concurrently")
}

func TestPool_Do_CancelledWhileWaiting(t *testing.T) {
	p := NewPool(1)

	release := make(chan struct{})
	started := make(chan struct{})
	go func() {
		_ = p.Do(context.Background(), func() error {
			close(started)
			<-release
			return nil
		})
	}()
	<-started

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	called := false
	err := p.Do(ctx, func() error {
		called = true
		return nil
	})
	close(release)

	assert.ErrorIs(t, err, ErrPoolUnavailable)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.False(t, called)
}

func TestPool_ImplementsRunner(t *testing.T) {
	var _ Runner = NewPool(1)
}
