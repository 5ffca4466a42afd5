// Package security composes the mongodb audit sink and the rabbitmq
// publisher behind the single security.Repository port the command core
// depends on, so C1 only ever talks to one interface regardless of how many
// downstream systems a security event fans out to.
package security

import (
	"context"

	"github.com/yuyonghai6/quiz-cms-backend-v2-sub003/internal/adapters/mongodb"
	"github.com/yuyonghai6/quiz-cms-backend-v2-sub003/internal/adapters/rabbitmq"
	"github.com/yuyonghai6/quiz-cms-backend-v2-sub003/internal/domain/security"
	"github.com/yuyonghai6/quiz-cms-backend-v2-sub003/pkg/mlog"
)

// Repository persists every security event to mongodb and additionally
// publishes it to rabbitmq for downstream alerting/SIEM consumers.
type Repository struct {
	store    *mmongo.SecurityEventRepository
	producer *mrabbitmq.Producer
	logger   mlog.Logger
}

// NewRepository returns a Repository backed by store and producer.
func NewRepository(store *mmongo.SecurityEventRepository, producer *mrabbitmq.Producer, logger mlog.Logger) *Repository {
	return &Repository{store: store, producer: producer, logger: logger}
}

// Append persists event synchronously and, per C7, never fails the caller's
// command on a downstream publish failure — it logs and swallows it.
func (r *Repository) Append(ctx context.Context, event *security.Event) error {
	if err := r.store.Append(ctx, event); err != nil {
		return err
	}

	if err := r.producer.Publish(ctx, event); err != nil {
		r.logger.Errorf("failed to publish security event to rabbitmq: %v", err)
	}

	return nil
}

// AppendAsync persists and publishes event on a detached goroutine, per
// C7's requirement that audit writes never block or fail the command they audit.
func (r *Repository) AppendAsync(ctx context.Context, event *security.Event) {
	go func() {
		bgCtx := context.WithoutCancel(ctx)

		if err := r.store.Append(bgCtx, event); err != nil {
			r.logger.Errorf("failed to persist security event asynchronously: %v", err)
			return
		}

		if err := r.producer.Publish(bgCtx, event); err != nil {
			r.logger.Errorf("failed to publish security event to rabbitmq: %v", err)
		}
	}()
}
