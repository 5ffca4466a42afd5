// Package mmetrics implements the counters and timers of C8: validation
// success/failure, failure-by-error-code, failure-by-step, a slow-operation
// timer, and a taxonomy-batch-size counter. Backed by redis (INCR/HINCRBY)
// so counts are correct across multiple instances. When no redis client is
// configured, success/failure counts fall back to process-local atomic
// counters and the by-code, by-step and taxonomy-batch counts are not
// recorded, so unit tests and single-instance runs work without a redis
// dependency.
package mmetrics

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/yuyonghai6/quiz-cms-backend-v2-sub003/pkg/mlog"
)

const (
	keyValidationSuccess  = "metrics:validation:success"
	keyValidationFailure  = "metrics:validation:failure"
	keyFailureByCode      = "metrics:validation:failure_by_code"
	keyFailureByStep      = "metrics:validation:failure_by_step"
	keyTaxonomyBatchLarge = "metrics:taxonomy:batches_over_20"

	slowOperationThreshold = 100 * time.Millisecond
	largeTaxonomyBatch     = 20
)

// Recorder records C8's metrics. The zero value is usable and falls back to
// local counters; build it with NewRecorder and a non-nil client to back it
// with redis.
type Recorder struct {
	client *redis.Client
	logger mlog.Logger

	localSuccess int64
	localFailure int64
}

// NewRecorder builds a Recorder backed by client (nil is fine, see package doc).
func NewRecorder(client *redis.Client, logger mlog.Logger) *Recorder {
	return &Recorder{client: client, logger: logger}
}

// IncrementSuccess records one successful validation step.
func (r *Recorder) IncrementSuccess() {
	if r.client == nil {
		atomic.AddInt64(&r.localSuccess, 1)
		return
	}

	r.client.Incr(context.Background(), keyValidationSuccess)
}

// IncrementFailure records one failed validation step.
func (r *Recorder) IncrementFailure() {
	if r.client == nil {
		atomic.AddInt64(&r.localFailure, 1)
		return
	}

	r.client.Incr(context.Background(), keyValidationFailure)
}

// IncrementErrorCode records one failure attributed to code.
func (r *Recorder) IncrementErrorCode(code string) {
	if r.client == nil {
		return
	}

	r.client.HIncrBy(context.Background(), keyFailureByCode, code, 1)
}

// IncrementStepFailure records one failure attributed to the named validation step.
func (r *Recorder) IncrementStepFailure(step string) {
	if r.client == nil {
		return
	}

	r.client.HIncrBy(context.Background(), keyFailureByStep, step, 1)
}

// ObserveStep records a step's outcome and, when it took longer than
// slowOperationThreshold, logs it.
func (r *Recorder) ObserveStep(name string, d time.Duration, ok bool) {
	if ok {
		r.IncrementSuccess()
	} else {
		r.IncrementFailure()
		r.IncrementStepFailure(name)
	}

	if d > slowOperationThreshold && r.logger != nil {
		r.logger.Warnf("step %q took %s, exceeding the %s threshold", name, d, slowOperationThreshold)
	}
}

// ObserveTaxonomyBatch increments the large-batch counter when a command
// references more than largeTaxonomyBatch taxonomy ids. The number of
// references itself is not recorded, and smaller batches are not counted.
func (r *Recorder) ObserveTaxonomyBatch(count int) {
	if count <= largeTaxonomyBatch {
		return
	}

	if r.client == nil {
		return
	}

	r.client.Incr(context.Background(), keyTaxonomyBatchLarge)
}
