package execution

import (
	"context"
	"time"

	"osctest/internal/domain"
)

// Executor sends a sequence of test cases
type Executor interface {
	Run(ctx context.Context, cases []domain.TestCase) error
}

// Reporter receives progress while a sequence is sent
type Reporter interface {
	Start(target string, total int, settle time.Duration)
	Sending(index, total int, tc domain.TestCase)
	Result(result domain.SendResult)
	Finish(total int)
}

// SleepFunc pauses for d or until ctx is done, whichever comes first
type SleepFunc func(ctx context.Context, d time.Duration) error

// Sleep waits for d. It returns ctx.Err() if ctx is done before d elapses.
func Sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
