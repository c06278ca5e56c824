package marketplace

import (
	"context"
	"time"

	"github.com/coder-yr/taste-link/models"
)

// Submitter delivers a validated join request. Implementations must
// honour ctx cancellation.
type Submitter interface {
	Submit(ctx context.Context, req models.JoinRequest) error
}

// SubmitterFunc adapts a function to Submitter
type SubmitterFunc func(ctx context.Context, req models.JoinRequest) error

// Submit calls f(ctx, req)
func (f SubmitterFunc) Submit(ctx context.Context, req models.JoinRequest) error {
	return f(ctx, req)
}

// SimulatedSubmitter stands in for the future join API: it waits Delay
// and always succeeds unless ctx ends first.
type SimulatedSubmitter struct {
	Delay time.Duration
}

// Submit waits for the configured delay
func (s SimulatedSubmitter) Submit(ctx context.Context, _ models.JoinRequest) error {
	if s.Delay <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(s.Delay)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
