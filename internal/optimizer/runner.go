package optimizer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/Veraticus/portops/internal/common"
	"github.com/Veraticus/portops/internal/model"
	"github.com/Veraticus/portops/internal/service"
)

// Runner performs an optimization run and optionally journals it.
type Runner struct {
	store    service.RunStore
	now      func() time.Time
	progress func(model.ModelName)
	retry    common.RetryOptions
}

// RunnerOption configures a Runner.
type RunnerOption func(*Runner)

// WithStore journals every run to store.
func WithStore(store service.RunStore) RunnerOption {
	return func(r *Runner) {
		r.store = store
	}
}

// WithProgress registers a callback invoked once per model as it reports.
func WithProgress(fn func(model.ModelName)) RunnerOption {
	return func(r *Runner) {
		r.progress = fn
	}
}

// WithRetry retries failed journal writes with backoff. Invalid records are
// never retried.
func WithRetry(opts common.RetryOptions) RunnerOption {
	return func(r *Runner) {
		r.retry = opts
	}
}

// WithClock overrides the time source used for journal timestamps.
func WithClock(now func() time.Time) RunnerOption {
	return func(r *Runner) {
		r.now = now
	}
}

// NewRunner creates a Runner. Without WithStore runs are not persisted.
func NewRunner(opts ...RunnerOption) *Runner {
	r := &Runner{
		now:   time.Now,
		retry: common.RetryOptions{MaxAttempts: 1},
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run derives the prediction for in, collects the model outcomes and, if a
// store is configured, appends the run to the journal.
func (r *Runner) Run(ctx context.Context, in model.InputParameters) (model.RunResult, error) {
	in = in.Clamp()
	pred := Derive(in)

	outcomes := Outcomes()
	for _, o := range outcomes {
		if err := ctx.Err(); err != nil {
			return model.RunResult{}, err
		}
		if r.progress != nil {
			r.progress(o.Model)
		}
	}

	result := model.RunResult{
		Message:    RunSuccessMessage,
		Outcomes:   outcomes,
		Input:      in,
		Prediction: pred,
	}

	if r.store == nil {
		return result, nil
	}

	record := &model.RunRecord{
		CreatedAt:  r.now().UTC(),
		Input:      in,
		Prediction: pred,
	}
	err := common.WithRetry(ctx, func() error {
		err := r.store.SaveRun(ctx, record)
		if errors.Is(err, common.ErrInvalidInput) {
			return common.Permanent(err)
		}
		return err
	}, r.retry)
	if err != nil {
		return model.RunResult{}, fmt.Errorf("failed to record run: %w", err)
	}
	slog.Debug("Recorded optimization run",
		"id", record.ID,
		"strategy", pred.Strategy,
		"score", pred.Score)

	return result, nil
}
