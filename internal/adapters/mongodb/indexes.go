package mmongo

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes creates the unique, text, and compound indexes spec §4.6
// requires: one question bank record per user, one taxonomy set per bank,
// one question per natural key, one relationship edge per identity, a
// title/content text index weighted for relevance ranking (P8), and the
// (user_id, bank_id, status, created_at desc) compound index C5's default
// sort/filter combination relies on.
func EnsureIndexes(ctx context.Context, conn *MongoConnection) error {
	db, err := conn.database(ctx)
	if err != nil {
		return err
	}

	models := map[string][]mongo.IndexModel{
		bankCollection: {
			{Keys: bson.D{{Key: "user_id", Value: 1}}, Options: options.Index().SetUnique(true)},
		},
		taxonomyCollection: {
			{Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "bank_id", Value: 1}}, Options: options.Index().SetUnique(true)},
		},
		questionCollection: {
			{
				Keys: bson.D{
					{Key: "user_id", Value: 1},
					{Key: "bank_id", Value: 1},
					{Key: "source_question_id", Value: 1},
				},
				Options: options.Index().SetUnique(true),
			},
			{
				Keys: bson.D{{Key: "title", Value: "text"}, {Key: "content", Value: "text"}},
				Options: options.Index().SetWeights(bson.D{
					{Key: "title", Value: 10},
					{Key: "content", Value: 5},
				}),
			},
			{
				Keys: bson.D{
					{Key: "user_id", Value: 1},
					{Key: "bank_id", Value: 1},
					{Key: "status", Value: 1},
					{Key: "created_at", Value: -1},
				},
			},
		},
		relationshipCollection: {
			{
				Keys: bson.D{
					{Key: "user_id", Value: 1},
					{Key: "bank_id", Value: 1},
					{Key: "question_id", Value: 1},
					{Key: "taxonomy_type", Value: 1},
					{Key: "taxonomy_id", Value: 1},
				},
				Options: options.Index().SetUnique(true),
			},
		},
	}

	for collName, indexModels := range models {
		if _, err := db.Collection(collName).Indexes().CreateMany(ctx, indexModels); err != nil {
			return err
		}
	}

	return nil
}
