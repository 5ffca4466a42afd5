package query

import (
	"context"

	"github.com/yuyonghai6/quiz-cms-backend-v2-sub003/internal/domain/question"
	"github.com/yuyonghai6/quiz-cms-backend-v2-sub003/internal/domain/relationship"
)

// Hand-written fakes standing in for mockgen-generated mocks; see
// internal/services/command/fakes_test.go for the same pattern.

type fakeQuestionRepo struct {
	queryFn func(ctx context.Context, plan question.FilterPlan, candidateIDs []string) (question.Page, error)
}

func (f *fakeQuestionRepo) FindByNaturalKey(ctx context.Context, userID int64, bankID, sourceQuestionID string) (*question.Question, error) {
	return nil, nil
}

func (f *fakeQuestionRepo) UpsertByNaturalKey(ctx context.Context, q *question.Question) (*question.Question, error) {
	return q, nil
}

func (f *fakeQuestionRepo) FindByBank(ctx context.Context, userID int64, bankID string) ([]question.Question, error) {
	return nil, nil
}

func (f *fakeQuestionRepo) Query(ctx context.Context, plan question.FilterPlan, candidateIDs []string) (question.Page, error) {
	if f.queryFn != nil {
		return f.queryFn(ctx, plan, candidateIDs)
	}
	return question.Page{}, nil
}

type fakeRelationshipRepo struct {
	resolveCandidatesFn func(ctx context.Context, userID int64, bankID string, requiredAxes map[relationship.TaxonomyType][]string) ([]string, error)
}

func (f *fakeRelationshipRepo) ReplaceForQuestion(ctx context.Context, questionID string, relationships []relationship.Relationship) error {
	return nil
}

func (f *fakeRelationshipRepo) FindByQuestion(ctx context.Context, questionID string) ([]relationship.Relationship, error) {
	return nil, nil
}

func (f *fakeRelationshipRepo) ResolveCandidates(ctx context.Context, userID int64, bankID string, requiredAxes map[relationship.TaxonomyType][]string) ([]string, error) {
	if f.resolveCandidatesFn != nil {
		return f.resolveCandidatesFn(ctx, userID, bankID, requiredAxes)
	}
	return nil, nil
}
