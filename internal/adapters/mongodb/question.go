package mmongo

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/yuyonghai6/quiz-cms-backend-v2-sub003/internal/domain/question"
)

const questionCollection = "questions"

// QuestionRepository is a mongodb-backed implementation of question.Repository.
type QuestionRepository struct {
	conn *MongoConnection
}

// NewQuestionRepository returns a QuestionRepository backed by conn.
func NewQuestionRepository(conn *MongoConnection) *QuestionRepository {
	return &QuestionRepository{conn: conn}
}

func (r *QuestionRepository) collection(ctx context.Context) (*mongo.Collection, error) {
	db, err := r.conn.database(ctx)
	if err != nil {
		return nil, err
	}

	return db.Collection(questionCollection), nil
}

// FindByNaturalKey looks up a question by (user_id, bank_id, source_question_id).
// Returns (nil, nil) when absent.
func (r *QuestionRepository) FindByNaturalKey(ctx context.Context, userID int64, bankID, sourceQuestionID string) (*question.Question, error) {
	coll, err := r.collection(ctx)
	if err != nil {
		return nil, err
	}

	var q question.Question

	filter := bson.M{"user_id": userID, "bank_id": bankID, "source_question_id": sourceQuestionID}

	err = coll.FindOne(ctx, filter).Decode(&q)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}

	return &q, nil
}

// UpsertByNaturalKey inserts or replaces q by its natural key (I5) and
// returns the persisted document.
func (r *QuestionRepository) UpsertByNaturalKey(ctx context.Context, q *question.Question) (*question.Question, error) {
	coll, err := r.collection(ctx)
	if err != nil {
		return nil, err
	}

	filter := bson.M{"user_id": q.UserID, "bank_id": q.BankID, "source_question_id": q.SourceQuestionID}

	_, err = coll.ReplaceOne(ctx, filter, q, options.Replace().SetUpsert(true))
	if err != nil {
		return nil, err
	}

	return q, nil
}

// FindByBank lists every question owned by (user_id, bank_id).
func (r *QuestionRepository) FindByBank(ctx context.Context, userID int64, bankID string) ([]question.Question, error) {
	coll, err := r.collection(ctx)
	if err != nil {
		return nil, err
	}

	cur, err := coll.Find(ctx, bson.M{"user_id": userID, "bank_id": bankID})
	if err != nil {
		return nil, err
	}

	defer cur.Close(ctx)

	var questions []question.Question
	if err := cur.All(ctx, &questions); err != nil {
		return nil, err
	}

	return questions, nil
}

// Query executes a resolved filter plan, optionally restricted to
// candidateIDs (non-nil when the caller already resolved taxonomy candidates
// via the relationship store).
func (r *QuestionRepository) Query(ctx context.Context, plan question.FilterPlan, candidateIDs []string) (question.Page, error) {
	coll, err := r.collection(ctx)
	if err != nil {
		return question.Page{}, err
	}

	filter := filterFromPlan(plan, candidateIDs)

	total, err := coll.CountDocuments(ctx, filter)
	if err != nil {
		return question.Page{}, err
	}

	opts := options.Find().
		SetSkip(int64(plan.Page * plan.Size)).
		SetLimit(int64(plan.Size)).
		SetSort(sortFromPlan(plan))

	cur, err := coll.Find(ctx, filter, opts)
	if err != nil {
		return question.Page{}, err
	}

	defer cur.Close(ctx)

	var items []question.Question
	if err := cur.All(ctx, &items); err != nil {
		return question.Page{}, err
	}

	return question.Page{
		Items:      items,
		Pagination: question.NewPagination(plan.Page, plan.Size, total),
	}, nil
}

func filterFromPlan(plan question.FilterPlan, candidateIDs []string) bson.M {
	filter := bson.M{"user_id": plan.UserID, "bank_id": plan.BankID}

	if plan.QuestionType != "" {
		filter["question_type"] = plan.QuestionType
	}

	if plan.Status != "" {
		filter["status"] = plan.Status
	}

	if plan.Search != "" {
		filter["$text"] = bson.M{"$search": plan.Search}
	}

	if candidateIDs != nil {
		filter["_id"] = bson.M{"$in": candidateIDs}
	}

	return filter
}

func sortFromPlan(plan question.FilterPlan) bson.D {
	sort := bson.D{}

	for _, s := range plan.Sort {
		dir := 1
		if s.Desc {
			dir = -1
		}

		sort = append(sort, bson.E{Key: s.Field, Value: dir})
	}

	return sort
}
