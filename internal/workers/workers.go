// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"errors"
	"fmt"
	"runtime"

	"golang.org/x/sync/semaphore"
)

// ErrPoolUnavailable is returned by [Pool.Do] when the context ends before a
// slot frees up.
var ErrPoolUnavailable = errors.New("worker pool unavailable")

// Pool is a [Runner] that allows at most Size jobs to run concurrently.
// Jobs run on the calling goroutine; the pool only gates admission.
type Pool struct {
	sem  *semaphore.Weighted
	size int64
}

// NewPool creates a pool with size slots. A non-positive size means one slot
// per available CPU.
func NewPool(size int) *Pool {
	if size <= 0 {
		size = runtime.GOMAXPROCS(0)
	}

	return &Pool{
		sem:  semaphore.NewWeighted(int64(size)),
		size: int64(size),
	}
}

// Size returns the number of jobs the pool runs concurrently.
func (p *Pool) Size() int {
	return int(p.size)
}

// Do waits for a free slot, runs job and releases the slot. The job's error
// is returned unchanged.
func (p *Pool) Do(ctx context.Context, job func() error) error {
	if err := p.sem.Acquire(ctx, 1); err != nil {
		return fmt.Errorf("%w: %w", ErrPoolUnavailable, err)
	}
	defer p.sem.Release(1)

	return job()
}
