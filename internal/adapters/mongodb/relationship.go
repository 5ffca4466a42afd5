package mmongo

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/yuyonghai6/quiz-cms-backend-v2-sub003/internal/domain/relationship"
)

const relationshipCollection = "question_taxonomy_relationships"

// RelationshipRepository is a mongodb-backed implementation of relationship.Repository.
type RelationshipRepository struct {
	conn *MongoConnection
}

// NewRelationshipRepository returns a RelationshipRepository backed by conn.
func NewRelationshipRepository(conn *MongoConnection) *RelationshipRepository {
	return &RelationshipRepository{conn: conn}
}

func (r *RelationshipRepository) collection(ctx context.Context) (*mongo.Collection, error) {
	db, err := r.conn.database(ctx)
	if err != nil {
		return nil, err
	}

	return db.Collection(relationshipCollection), nil
}

// ReplaceForQuestion deletes every relationship for questionID and inserts
// relationships, in that order (I4: a question's relationship set is always
// rewritten wholesale, never merged).
func (r *RelationshipRepository) ReplaceForQuestion(ctx context.Context, questionID string, relationships []relationship.Relationship) error {
	coll, err := r.collection(ctx)
	if err != nil {
		return err
	}

	if _, err := coll.DeleteMany(ctx, bson.M{"question_id": questionID}); err != nil {
		return err
	}

	if len(relationships) == 0 {
		return nil
	}

	docs := make([]any, len(relationships))
	for i, rel := range relationships {
		docs[i] = rel
	}

	_, err = coll.InsertMany(ctx, docs)

	return err
}

// FindByQuestion lists every relationship owned by questionID.
func (r *RelationshipRepository) FindByQuestion(ctx context.Context, questionID string) ([]relationship.Relationship, error) {
	coll, err := r.collection(ctx)
	if err != nil {
		return nil, err
	}

	cur, err := coll.Find(ctx, bson.M{"question_id": questionID})
	if err != nil {
		return nil, err
	}

	defer cur.Close(ctx)

	var relationships []relationship.Relationship
	if err := cur.All(ctx, &relationships); err != nil {
		return nil, err
	}

	return relationships, nil
}

// ResolveCandidates returns question ids matching every required
// (taxonomyType, taxonomyID) pair within requiredAxes — an AND across axes,
// OR within each axis's id list (spec §4.5's filter composition rule).
func (r *RelationshipRepository) ResolveCandidates(ctx context.Context, userID int64, bankID string, requiredAxes map[relationship.TaxonomyType][]string) ([]string, error) {
	coll, err := r.collection(ctx)
	if err != nil {
		return nil, err
	}

	var candidateSets [][]string

	for taxonomyType, ids := range requiredAxes {
		filter := bson.M{
			"user_id":       userID,
			"bank_id":       bankID,
			"taxonomy_type": taxonomyType,
			"taxonomy_id":   bson.M{"$in": ids},
		}

		distinct, err := coll.Distinct(ctx, "question_id", filter)
		if err != nil {
			return nil, err
		}

		matched := make([]string, 0, len(distinct))
		for _, v := range distinct {
			if s, ok := v.(string); ok {
				matched = append(matched, s)
			}
		}

		candidateSets = append(candidateSets, matched)
	}

	return intersect(candidateSets), nil
}

func intersect(sets [][]string) []string {
	if len(sets) == 0 {
		return []string{}
	}

	counts := map[string]int{}

	for _, set := range sets {
		seen := map[string]bool{}

		for _, id := range set {
			if seen[id] {
				continue
			}

			seen[id] = true
			counts[id]++
		}
	}

	var result []string

	for id, count := range counts {
		if count == len(sets) {
			result = append(result, id)
		}
	}

	return result
}
