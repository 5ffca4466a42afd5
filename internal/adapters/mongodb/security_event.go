package mmongo

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/yuyonghai6/quiz-cms-backend-v2-sub003/internal/domain/security"
	"github.com/yuyonghai6/quiz-cms-backend-v2-sub003/pkg/mlog"
)

const securityEventCollection = "security_events"

// SecurityEventRepository is a mongodb-backed implementation of security.Repository.
type SecurityEventRepository struct {
	conn   *MongoConnection
	logger mlog.Logger
}

// NewSecurityEventRepository returns a SecurityEventRepository backed by conn.
func NewSecurityEventRepository(conn *MongoConnection, logger mlog.Logger) *SecurityEventRepository {
	return &SecurityEventRepository{conn: conn, logger: logger}
}

func (r *SecurityEventRepository) collection(ctx context.Context) (*mongo.Collection, error) {
	db, err := r.conn.database(ctx)
	if err != nil {
		return nil, err
	}

	return db.Collection(securityEventCollection), nil
}

// Append writes event synchronously, surfacing any storage failure to the caller.
func (r *SecurityEventRepository) Append(ctx context.Context, event *security.Event) error {
	coll, err := r.collection(ctx)
	if err != nil {
		return err
	}

	_, err = coll.InsertOne(ctx, event)

	return err
}

// AppendAsync writes event on a detached goroutine and swallows any failure
// except for logging it — per C7, a security-audit write must never block or
// fail the command it is auditing.
func (r *SecurityEventRepository) AppendAsync(ctx context.Context, event *security.Event) {
	go func() {
		bgCtx := context.WithoutCancel(ctx)

		if err := r.Append(bgCtx, event); err != nil {
			r.logger.Errorf("failed to persist security event asynchronously: %v", err)
		}
	}()
}
