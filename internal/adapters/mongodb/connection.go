// Package mmongo wires the mongo.Client every repository implementation in
// this package shares, plus the session helper C3/C4 use to run their writes
// inside one transaction.
package mmongo

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/yuyonghai6/quiz-cms-backend-v2-sub003/pkg/mlog"
)

// MongoConnection is a hub which deals with mongodb connections.
type MongoConnection struct {
	ConnectionStringSource string
	DB                     *mongo.Client
	Connected              bool
	Database               string
	Logger                 mlog.Logger
}

// Connect establishes a singleton connection with mongodb.
func (mc *MongoConnection) Connect(ctx context.Context) error {
	mc.Logger.Info("connecting to mongodb...")

	clientOptions := options.Client().ApplyURI(mc.ConnectionStringSource)

	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		mc.Logger.Errorf("failed to connect to mongodb: %v", err)
		return err
	}

	if err := client.Ping(ctx, nil); err != nil {
		mc.Logger.Errorf("mongodb ping failed: %v", err)
		return err
	}

	mc.Logger.Info("connected to mongodb")

	mc.Connected = true
	mc.DB = client

	return nil
}

// GetDB returns the mongodb client, connecting lazily if necessary.
func (mc *MongoConnection) GetDB(ctx context.Context) (*mongo.Client, error) {
	if mc.DB == nil {
		if err := mc.Connect(ctx); err != nil {
			return nil, err
		}
	}

	return mc.DB, nil
}

// database returns the configured database handle.
func (mc *MongoConnection) database(ctx context.Context) (*mongo.Database, error) {
	client, err := mc.GetDB(ctx)
	if err != nil {
		return nil, err
	}

	return client.Database(mc.Database), nil
}

// WithTransaction runs fn inside a mongo session transaction, the mechanism
// C3 and C4 rely on to make a multi-collection write atomic (I4, I5, I2).
func (mc *MongoConnection) WithTransaction(ctx context.Context, fn func(sessCtx mongo.SessionContext) (any, error)) error {
	client, err := mc.GetDB(ctx)
	if err != nil {
		return err
	}

	session, err := client.StartSession()
	if err != nil {
		return err
	}

	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, fn)

	return err
}
