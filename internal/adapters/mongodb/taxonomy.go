package mmongo

import (
	"context"
	"strconv"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/yuyonghai6/quiz-cms-backend-v2-sub003/internal/domain/taxonomy"
)

const taxonomyCollection = "taxonomy_sets"

// TaxonomyRepository is a mongodb-backed implementation of taxonomy.Repository.
type TaxonomyRepository struct {
	conn *MongoConnection
}

// NewTaxonomyRepository returns a TaxonomyRepository backed by conn.
func NewTaxonomyRepository(conn *MongoConnection) *TaxonomyRepository {
	return &TaxonomyRepository{conn: conn}
}

func (r *TaxonomyRepository) collection(ctx context.Context) (*mongo.Collection, error) {
	db, err := r.conn.database(ctx)
	if err != nil {
		return nil, err
	}

	return db.Collection(taxonomyCollection), nil
}

// Exists reports whether a TaxonomySet already exists for (user_id, bank_id).
func (r *TaxonomyRepository) Exists(ctx context.Context, userID int64, bankID string) (bool, error) {
	coll, err := r.collection(ctx)
	if err != nil {
		return false, err
	}

	count, err := coll.CountDocuments(ctx, bson.M{"user_id": userID, "bank_id": bankID})
	if err != nil {
		return false, err
	}

	return count > 0, nil
}

// Get returns the TaxonomySet for (user_id, bank_id).
func (r *TaxonomyRepository) Get(ctx context.Context, userID int64, bankID string) (*taxonomy.TaxonomySet, error) {
	coll, err := r.collection(ctx)
	if err != nil {
		return nil, err
	}

	var set taxonomy.TaxonomySet

	if err := coll.FindOne(ctx, bson.M{"user_id": userID, "bank_id": bankID}).Decode(&set); err != nil {
		return nil, err
	}

	return &set, nil
}

// GetUnknownReferences returns the subset of ids that are not known
// taxonomy references of kind taxonomyType for (user_id, bank_id).
func (r *TaxonomyRepository) GetUnknownReferences(ctx context.Context, userID int64, bankID, taxonomyType string, ids []string) ([]string, error) {
	set, err := r.Get(ctx, userID, bankID)
	if err != nil {
		return ids, err
	}

	known := map[string]bool{}

	switch taxonomyType {
	case "category_level_1":
		for _, c := range set.CategoryL1 {
			known[c.ID] = true
		}
	case "category_level_2":
		for _, c := range set.CategoryL2 {
			known[c.ID] = true
		}
	case "category_level_3":
		for _, c := range set.CategoryL3 {
			known[c.ID] = true
		}
	case "category_level_4":
		for _, c := range set.CategoryL4 {
			known[c.ID] = true
		}
	case "tag":
		for _, t := range set.Tags {
			known[t.ID] = true
		}
	case "quiz":
		for _, q := range set.Quizzes {
			known[strconv.FormatInt(q.QuizID, 10)] = true
		}
	case "difficulty_level":
		for _, d := range set.Difficulty {
			known[d.Level] = true
		}
	}

	var unknown []string

	for _, id := range ids {
		if !known[id] {
			unknown = append(unknown, id)
		}
	}

	return unknown, nil
}

// Insert persists a new TaxonomySet.
func (r *TaxonomyRepository) Insert(ctx context.Context, set *taxonomy.TaxonomySet) error {
	coll, err := r.collection(ctx)
	if err != nil {
		return err
	}

	_, err = coll.InsertOne(ctx, set)

	return err
}

