package query

import (
	"strings"

	"github.com/yuyonghai6/quiz-cms-backend-v2-sub003/internal/domain/question"
	"github.com/yuyonghai6/quiz-cms-backend-v2-sub003/pkg/apperr"
	"github.com/yuyonghai6/quiz-cms-backend-v2-sub003/pkg/constant"
	"github.com/yuyonghai6/quiz-cms-backend-v2-sub003/pkg/mmodel"
)

const (
	defaultPage = 0
	defaultSize = 20
	maxSize     = 100
)

// buildFilterPlan validates in (C5) and resolves it into a FilterPlan: an
// unrecognized question_type/status, an out-of-range page/size, or a sort
// field outside the whitelist all fail INVALID_QUERY_PARAMETER. A size of 0
// selects the default size of 20.
func buildFilterPlan(in *mmodel.QueryQuestionsInput) (question.FilterPlan, error) {
	plan := question.FilterPlan{
		UserID: in.UserID,
		BankID: in.BankID,
		CategoryLevels: [4]string{
			in.CategoryLevel1, in.CategoryLevel2, in.CategoryLevel3, in.CategoryLevel4,
		},
		Tags:            in.Tags,
		Quizzes:         in.Quizzes,
		DifficultyLevel: in.DifficultyLevel,
		Search:          strings.TrimSpace(in.Search),
	}

	if in.QuestionType != "" {
		qt := question.Type(in.QuestionType)

		switch qt {
		case question.TypeMCQ, question.TypeTrueFalse, question.TypeEssay:
			plan.QuestionType = qt
		default:
			return plan, apperr.Translate(constant.ErrInvalidQueryParameter, "Question", "question_type="+in.QuestionType)
		}
	}

	if in.Status != "" {
		st := question.Status(in.Status)

		switch st {
		case question.StatusDraft, question.StatusPublished, question.StatusArchived:
			plan.Status = st
		default:
			return plan, apperr.Translate(constant.ErrInvalidQueryParameter, "Question", "status="+in.Status)
		}
	}

	page := in.Page
	if page < 0 {
		return plan, apperr.Translate(constant.ErrInvalidQueryParameter, "Question", "page must be >= 0")
	}

	size := in.Size
	if size < 0 {
		return plan, apperr.Translate(constant.ErrInvalidQueryParameter, "Question", "size must be >= 1")
	}

	if size == 0 {
		size = defaultSize
	}

	if size > maxSize {
		return plan, apperr.Translate(constant.ErrInvalidQueryParameter, "Question", "size must be <= 100")
	}

	plan.Page = page
	plan.Size = size

	sort, err := buildSort(in.Sort)
	if err != nil {
		return plan, err
	}

	plan.Sort = sort

	return plan, nil
}

// buildSort parses "field" / "-field" tokens against the sort-field
// whitelist; an unrecognized field fails INVALID_QUERY_PARAMETER.
func buildSort(tokens []string) ([]question.SortField, error) {
	if len(tokens) == 0 {
		return []question.SortField{{Field: "created_at", Desc: true}}, nil
	}

	sort := make([]question.SortField, 0, len(tokens))

	for _, token := range tokens {
		desc := false

		field := token
		if strings.HasPrefix(field, "-") {
			desc = true
			field = strings.TrimPrefix(field, "-")
		}

		if !question.AllowedSortFields[field] {
			return nil, apperr.Translate(constant.ErrInvalidQueryParameter, "Question", "sort="+token)
		}

		sort = append(sort, question.SortField{Field: field, Desc: desc})
	}

	return sort, nil
}
