// Package mretry wraps a nullary operation with bounded exponential-backoff
// retry for transient I/O faults (spec C8).
package mretry

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/yuyonghai6/quiz-cms-backend-v2-sub003/pkg/constant"
	"github.com/yuyonghai6/quiz-cms-backend-v2-sub003/pkg/mmetrics"
)

// Retryable wraps err to signal it is a transient failure eligible for retry.
// Any error not wrapped this way is treated as non-retryable and surfaces immediately.
func Retryable(err error) error {
	if err == nil {
		return nil
	}

	return retryableError{err}
}

type retryableError struct{ err error }

func (r retryableError) Error() string { return r.err.Error() }
func (r retryableError) Unwrap() error { return r.err }

// Budget configures the bounded-retry schedule.
type Budget struct {
	InitialInterval time.Duration
	MaxInterval     time.Duration
	MaxElapsedTime  time.Duration
}

// DefaultBudget is a conservative bound: a handful of attempts within a few seconds.
var DefaultBudget = Budget{
	InitialInterval: 50 * time.Millisecond,
	MaxInterval:     1 * time.Second,
	MaxElapsedTime:  5 * time.Second,
}

// Do runs op under ctx, retrying errors wrapped by Retryable with exponential
// backoff bounded by budget. Non-retryable errors are returned unchanged.
// Exhausting the budget returns constant.ErrRetryExhausted wrapping the last error.
// name is recorded against the metrics recorder's failure/step counters.
func Do(ctx context.Context, recorder *mmetrics.Recorder, name string, budget Budget, op func(ctx context.Context) error) error {
	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = budget.InitialInterval
	bo.MaxInterval = budget.MaxInterval
	bo.MaxElapsedTime = budget.MaxElapsedTime

	boCtx := backoff.WithContext(bo, ctx)

	start := time.Now()

	var lastErr error

	err := backoff.Retry(func() error {
		err := op(ctx)
		if err == nil {
			return nil
		}

		lastErr = err

		var retryable retryableError
		if errors.As(err, &retryable) {
			return err
		}

		return backoff.Permanent(err)
	}, boCtx)

	recorder.ObserveStep(name, time.Since(start), err == nil)

	if err == nil {
		return nil
	}

	var permanent *backoff.PermanentError
	if errors.As(err, &permanent) {
		return lastErr
	}

	recorder.IncrementErrorCode(constant.ErrRetryExhausted.Error())

	return fmt.Errorf("%w: %w", constant.ErrRetryExhausted, lastErr)
}
