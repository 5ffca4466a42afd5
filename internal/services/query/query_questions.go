package query

import (
	"context"
	"fmt"

	"github.com/yuyonghai6/quiz-cms-backend-v2-sub003/internal/domain/question"
	"github.com/yuyonghai6/quiz-cms-backend-v2-sub003/internal/domain/relationship"
	"github.com/yuyonghai6/quiz-cms-backend-v2-sub003/pkg/apperr"
	"github.com/yuyonghai6/quiz-cms-backend-v2-sub003/pkg/constant"
	"github.com/yuyonghai6/quiz-cms-backend-v2-sub003/pkg/mcontext"
	"github.com/yuyonghai6/quiz-cms-backend-v2-sub003/pkg/mmodel"
	"github.com/yuyonghai6/quiz-cms-backend-v2-sub003/pkg/mopentelemetry"
	"github.com/yuyonghai6/quiz-cms-backend-v2-sub003/pkg/mretry"
)

// QueryQuestions implements C5: build and validate the filter plan, resolve
// taxonomy-filtered candidate ids via the relationship store when any
// taxonomy axis is requested, then execute the plan against the question
// store and project the response's pagination and applied-filters metadata.
func (uc *UseCase) QueryQuestions(ctx context.Context, in *mmodel.QueryQuestionsInput) (*mmodel.QueryQuestionsOutput, error) {
	tracer := mcontext.NewTracerFromContext(ctx)
	ctx, span := tracer.Start(ctx, "query.query_questions")

	defer span.End()

	if err := mopentelemetry.SetSpanAttributesFromStruct(&span, "app.request", in); err != nil {
		mopentelemetry.HandleSpanError(&span, "failed to set span attributes", err)
	}

	plan, err := buildFilterPlan(in)
	if err != nil {
		mopentelemetry.HandleSpanError(&span, "filter plan validation failed", err)
		return nil, err
	}

	var candidateIDs []string

	if plan.HasTaxonomyFilter() {
		axes := requiredAxesFromPlan(plan)

		resolveErr := mretry.Do(ctx, uc.Metrics, "resolve_taxonomy_candidates", uc.RetryBudget, func(ctx context.Context) error {
			ids, err := uc.RelationshipRepo.ResolveCandidates(ctx, plan.UserID, plan.BankID, axes)
			if err != nil {
				return mretry.Retryable(err)
			}

			candidateIDs = ids

			return nil
		})
		if resolveErr != nil {
			mopentelemetry.HandleSpanError(&span, "taxonomy candidate resolution failed", resolveErr)
			return nil, apperr.Translate(constant.ErrQueryFailed, "Question", resolveErr)
		}

		if candidateIDs == nil {
			candidateIDs = []string{}
		}
	}

	var page question.Page

	queryErr := mretry.Do(ctx, uc.Metrics, "execute_query_plan", uc.RetryBudget, func(ctx context.Context) error {
		p, err := uc.QuestionRepo.Query(ctx, plan, candidateIDs)
		if err != nil {
			return mretry.Retryable(err)
		}

		page = p

		return nil
	})
	if queryErr != nil {
		mopentelemetry.HandleSpanError(&span, "query plan execution failed", queryErr)
		return nil, apperr.Translate(constant.ErrQueryFailed, "Question", queryErr)
	}

	return &mmodel.QueryQuestionsOutput{
		Questions:  page.Items,
		Pagination: page.Pagination,
		Filters: mmodel.QueryFilters{
			Applied:     filtersAppliedFromPlan(plan),
			ResultCount: len(page.Items),
		},
	}, nil
}

func requiredAxesFromPlan(plan question.FilterPlan) map[relationship.TaxonomyType][]string {
	axes := map[relationship.TaxonomyType][]string{}

	levelTypes := [4]relationship.TaxonomyType{
		relationship.TaxonomyTypeCategoryLevel1,
		relationship.TaxonomyTypeCategoryLevel2,
		relationship.TaxonomyTypeCategoryLevel3,
		relationship.TaxonomyTypeCategoryLevel4,
	}

	for i, level := range plan.CategoryLevels {
		if level != "" {
			axes[levelTypes[i]] = []string{level}
		}
	}

	if len(plan.Tags) > 0 {
		axes[relationship.TaxonomyTypeTag] = plan.Tags
	}

	if len(plan.Quizzes) > 0 {
		ids := make([]string, len(plan.Quizzes))
		for i, q := range plan.Quizzes {
			ids[i] = fmt.Sprint(q)
		}

		axes[relationship.TaxonomyTypeQuiz] = ids
	}

	if plan.DifficultyLevel != "" {
		axes[relationship.TaxonomyTypeDifficulty] = []string{plan.DifficultyLevel}
	}

	return axes
}

func filtersAppliedFromPlan(plan question.FilterPlan) mmodel.FiltersApplied {
	return mmodel.FiltersApplied{
		CategoryLevel1:  plan.CategoryLevels[0],
		CategoryLevel2:  plan.CategoryLevels[1],
		CategoryLevel3:  plan.CategoryLevels[2],
		CategoryLevel4:  plan.CategoryLevels[3],
		Tags:            plan.Tags,
		Quizzes:         plan.Quizzes,
		DifficultyLevel: plan.DifficultyLevel,
		QuestionType:    string(plan.QuestionType),
		Status:          string(plan.Status),
		Search:          plan.Search,
	}
}
