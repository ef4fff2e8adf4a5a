// Package workers bounds how many CPU-heavy jobs run at the same time.
//
// The service uses it around key derivation: every request derives its own
// key with ~100k hash iterations, and the [Pool] lets many of them run in
// parallel while keeping a burst of requests from starving the process.
package workers

import "context"

// Runner executes a job under the runner's concurrency policy.
//
// Example implementation:
//
//	type inline struct{}
//
//	func (inline) Do(ctx context.Context, job func() error) error {
//	    return job()
//	}
type Runner interface {
	Do(ctx context.Context, job func() error) error
}
