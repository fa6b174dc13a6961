package execution

import (
	"context"

	"osctest/internal/config"
	"osctest/internal/domain"
	"osctest/internal/transport"

	"go.uber.org/zap"
)

// Runner sends test cases one at a time, pausing after each
type Runner struct {
	config    *config.Config
	sender    transport.Sender
	reporters []Reporter
	sleep     SleepFunc
	logger    *zap.Logger
}

// NewRunner creates a new Runner that sends through sender
func NewRunner(cfg *config.Config, sender transport.Sender, logger *zap.Logger) *Runner {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Runner{
		config: cfg,
		sender: sender,
		sleep:  Sleep,
		logger: logger,
	}
}

// AddReporter registers a reporter for progress output
func (r *Runner) AddReporter(reporter Reporter) {
	r.reporters = append(r.reporters, reporter)
}

// SetSleep replaces the function used to wait between sends
func (r *Runner) SetSleep(sleep SleepFunc) {
	r.sleep = sleep
}

// Run waits the settle delay, then sends every case in order. A failed send
// is reported and the run moves on. Run returns ctx.Err() when ctx is
// cancelled, otherwise nil.
func (r *Runner) Run(ctx context.Context, cases []domain.TestCase) error {
	total := len(cases)
	for _, rep := range r.reporters {
		rep.Start(r.sender.Target(), total, r.config.SettleDelay)
	}

	if err := r.sleep(ctx, r.config.SettleDelay); err != nil {
		return err
	}

	for i, tc := range cases {
		if err := ctx.Err(); err != nil {
			return err
		}

		index := i + 1
		for _, rep := range r.reporters {
			rep.Sending(index, total, tc)
		}

		err := r.sender.Send(tc.Address, tc.Args)
		if err != nil {
			r.logger.Debug("send failed", zap.String("address", tc.Address), zap.Error(err))
		}

		result := domain.SendResult{Index: index, Total: total, Case: tc, Err: err}
		for _, rep := range r.reporters {
			rep.Result(result)
		}

		if err := r.sleep(ctx, tc.Delay); err != nil {
			return err
		}
	}

	for _, rep := range r.reporters {
		rep.Finish(total)
	}
	return nil
}
