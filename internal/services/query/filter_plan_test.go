package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yuyonghai6/quiz-cms-backend-v2-sub003/internal/domain/question"
	"github.com/yuyonghai6/quiz-cms-backend-v2-sub003/pkg/constant"
	"github.com/yuyonghai6/quiz-cms-backend-v2-sub003/pkg/mmodel"
)

func TestBuildFilterPlanDefaults(t *testing.T) {
	in := &mmodel.QueryQuestionsInput{UserID: 1, BankID: "bank-1"}

	plan, err := buildFilterPlan(in)

	require.NoError(t, err)
	assert.Equal(t, defaultPage, plan.Page)
	assert.Equal(t, defaultSize, plan.Size)
	assert.Equal(t, []question.SortField{{Field: "created_at", Desc: true}}, plan.Sort)
}

func TestBuildFilterPlanRejectsUnknownQuestionType(t *testing.T) {
	in := &mmodel.QueryQuestionsInput{UserID: 1, BankID: "bank-1", QuestionType: "bogus"}

	_, err := buildFilterPlan(in)

	require.ErrorContains(t, err, constant.ErrInvalidQueryParameter.Error())
}

func TestBuildFilterPlanRejectsUnknownSortField(t *testing.T) {
	in := &mmodel.QueryQuestionsInput{UserID: 1, BankID: "bank-1", Sort: []string{"bogus_field"}}

	_, err := buildFilterPlan(in)

	require.ErrorContains(t, err, constant.ErrInvalidQueryParameter.Error())
}

func TestBuildFilterPlanDescendingSort(t *testing.T) {
	in := &mmodel.QueryQuestionsInput{UserID: 1, BankID: "bank-1", Sort: []string{"-points"}}

	plan, err := buildFilterPlan(in)

	require.NoError(t, err)
	require.Len(t, plan.Sort, 1)
	assert.Equal(t, "points", plan.Sort[0].Field)
	assert.True(t, plan.Sort[0].Desc)
}

func TestBuildFilterPlanRejectsOversizedPage(t *testing.T) {
	in := &mmodel.QueryQuestionsInput{UserID: 1, BankID: "bank-1", Size: 101}

	_, err := buildFilterPlan(in)

	require.ErrorContains(t, err, constant.ErrInvalidQueryParameter.Error())
}

func TestBuildFilterPlanAcceptsZeroPageAsFirstPage(t *testing.T) {
	in := &mmodel.QueryQuestionsInput{UserID: 1, BankID: "bank-1", Page: 0}

	plan, err := buildFilterPlan(in)

	require.NoError(t, err)
	assert.Equal(t, 0, plan.Page)
}

func TestBuildFilterPlanRejectsNegativePage(t *testing.T) {
	in := &mmodel.QueryQuestionsInput{UserID: 1, BankID: "bank-1", Page: -1}

	_, err := buildFilterPlan(in)

	require.ErrorContains(t, err, constant.ErrInvalidQueryParameter.Error())
}
