package query

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yuyonghai6/quiz-cms-backend-v2-sub003/internal/domain/question"
	"github.com/yuyonghai6/quiz-cms-backend-v2-sub003/internal/domain/relationship"
	"github.com/yuyonghai6/quiz-cms-backend-v2-sub003/pkg/mmetrics"
	"github.com/yuyonghai6/quiz-cms-backend-v2-sub003/pkg/mmodel"
	"github.com/yuyonghai6/quiz-cms-backend-v2-sub003/pkg/mretry"
)

func TestQueryQuestionsWithoutTaxonomyFilterSkipsCandidateResolution(t *testing.T) {
	called := false

	relationshipRepo := &fakeRelationshipRepo{
		resolveCandidatesFn: func(ctx context.Context, userID int64, bankID string, requiredAxes map[relationship.TaxonomyType][]string) ([]string, error) {
			called = true
			return nil, nil
		},
	}

	questionRepo := &fakeQuestionRepo{
		queryFn: func(ctx context.Context, plan question.FilterPlan, candidateIDs []string) (question.Page, error) {
			assert.Nil(t, candidateIDs)
			return question.Page{
				Items:      []question.Question{{ID: "q1"}},
				Pagination: question.NewPagination(0, 20, 1),
			}, nil
		},
	}

	uc := &UseCase{
		QuestionRepo:     questionRepo,
		RelationshipRepo: relationshipRepo,
		Metrics:          mmetrics.NewRecorder(nil, nil),
		RetryBudget:      mretry.DefaultBudget,
	}

	out, err := uc.QueryQuestions(context.Background(), &mmodel.QueryQuestionsInput{UserID: 1, BankID: "bank-1"})

	require.NoError(t, err)
	assert.False(t, called)
	assert.Len(t, out.Questions, 1)
	assert.Equal(t, 1, out.Filters.ResultCount)
}

func TestQueryQuestionsWithTaxonomyFilterResolvesCandidatesFirst(t *testing.T) {
	var receivedAxes map[relationship.TaxonomyType][]string

	relationshipRepo := &fakeRelationshipRepo{
		resolveCandidatesFn: func(ctx context.Context, userID int64, bankID string, requiredAxes map[relationship.TaxonomyType][]string) ([]string, error) {
			receivedAxes = requiredAxes
			return []string{"q1", "q2"}, nil
		},
	}

	var receivedCandidates []string

	questionRepo := &fakeQuestionRepo{
		queryFn: func(ctx context.Context, plan question.FilterPlan, candidateIDs []string) (question.Page, error) {
			receivedCandidates = candidateIDs
			return question.Page{Pagination: question.NewPagination(0, 20, 0)}, nil
		},
	}

	uc := &UseCase{
		QuestionRepo:     questionRepo,
		RelationshipRepo: relationshipRepo,
		Metrics:          mmetrics.NewRecorder(nil, nil),
		RetryBudget:      mretry.DefaultBudget,
	}

	in := &mmodel.QueryQuestionsInput{UserID: 1, BankID: "bank-1", DifficultyLevel: "easy"}

	_, err := uc.QueryQuestions(context.Background(), in)

	require.NoError(t, err)
	assert.Equal(t, []string{"easy"}, receivedAxes[relationship.TaxonomyTypeDifficulty])
	assert.Equal(t, []string{"q1", "q2"}, receivedCandidates)
}

// TestQueryQuestionsPageConcatenationReconstructsFullSet exercises P7:
// concatenating page=0..total_pages-1 (zero-indexed, mirroring the mongo
// adapter's skip=page*size) must reproduce every item exactly once, in
// order, with no gaps or duplicates.
func TestQueryQuestionsPageConcatenationReconstructsFullSet(t *testing.T) {
	all := make([]question.Question, 0, 21)
	for i := 0; i < 21; i++ {
		all = append(all, question.Question{ID: string(rune('a' + i))})
	}

	const size = 10

	questionRepo := &fakeQuestionRepo{
		queryFn: func(ctx context.Context, plan question.FilterPlan, candidateIDs []string) (question.Page, error) {
			start := plan.Page * plan.Size
			end := start + plan.Size

			if start > len(all) {
				start = len(all)
			}

			if end > len(all) {
				end = len(all)
			}

			return question.Page{
				Items:      all[start:end],
				Pagination: question.NewPagination(plan.Page, plan.Size, int64(len(all))),
			}, nil
		},
	}

	uc := &UseCase{
		QuestionRepo:     questionRepo,
		RelationshipRepo: &fakeRelationshipRepo{},
		Metrics:          mmetrics.NewRecorder(nil, nil),
		RetryBudget:      mretry.DefaultBudget,
	}

	var reassembled []question.Question

	totalPages := 0

	for page := 0; ; page++ {
		out, err := uc.QueryQuestions(context.Background(), &mmodel.QueryQuestionsInput{
			UserID: 1, BankID: "bank-1", Page: page, Size: size,
		})
		require.NoError(t, err)

		if page == 0 {
			totalPages = out.Pagination.TotalPages
			assert.True(t, out.Pagination.IsFirst)
		}

		reassembled = append(reassembled, out.Questions...)

		if page >= totalPages-1 {
			assert.True(t, out.Pagination.IsLast)
			break
		}
	}

	assert.Equal(t, all, reassembled)
}

func TestQueryQuestionsPropagatesFilterPlanValidationError(t *testing.T) {
	uc := &UseCase{
		QuestionRepo:     &fakeQuestionRepo{},
		RelationshipRepo: &fakeRelationshipRepo{},
		Metrics:          mmetrics.NewRecorder(nil, nil),
		RetryBudget:      mretry.DefaultBudget,
	}

	_, err := uc.QueryQuestions(context.Background(), &mmodel.QueryQuestionsInput{UserID: 1, BankID: "bank-1", Size: 999})

	require.Error(t, err)
}
