package command

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yuyonghai6/quiz-cms-backend-v2-sub003/internal/domain/question"
	"github.com/yuyonghai6/quiz-cms-backend-v2-sub003/pkg/constant"
	"github.com/yuyonghai6/quiz-cms-backend-v2-sub003/pkg/mmodel"
)

func intPtr(v int) *int { return &v }

func TestBuildMCQ(t *testing.T) {
	t.Run("valid single correct option", func(t *testing.T) {
		in := &mmodel.UpsertQuestionInput{
			QuestionType: question.TypeMCQ,
			MCQData: &question.MCQData{
				Options: []question.MCQOption{
					{Text: "a", IsCorrect: true},
					{Text: "b"},
				},
			},
		}

		mcq, tf, essay, err := buildMCQ(in)

		require.NoError(t, err)
		assert.NotNil(t, mcq)
		assert.Nil(t, tf)
		assert.Nil(t, essay)
	})

	t.Run("rejects too few options", func(t *testing.T) {
		in := &mmodel.UpsertQuestionInput{
			MCQData: &question.MCQData{Options: []question.MCQOption{{Text: "a", IsCorrect: true}}},
		}

		_, _, _, err := buildMCQ(in)

		require.ErrorContains(t, err, constant.ErrMCQInvalidOptionsCount.Error())
	})

	t.Run("rejects no correct option", func(t *testing.T) {
		in := &mmodel.UpsertQuestionInput{
			MCQData: &question.MCQData{Options: []question.MCQOption{{Text: "a"}, {Text: "b"}}},
		}

		_, _, _, err := buildMCQ(in)

		require.ErrorContains(t, err, constant.ErrMCQNoCorrectOption.Error())
	})

	t.Run("rejects multiple correct without flag", func(t *testing.T) {
		in := &mmodel.UpsertQuestionInput{
			MCQData: &question.MCQData{
				Options: []question.MCQOption{
					{Text: "a", IsCorrect: true},
					{Text: "b", IsCorrect: true},
				},
			},
		}

		_, _, _, err := buildMCQ(in)

		require.ErrorContains(t, err, constant.ErrMCQMultipleCorrectNotAllowed.Error())
	})

	t.Run("allows multiple correct with flag", func(t *testing.T) {
		in := &mmodel.UpsertQuestionInput{
			MCQData: &question.MCQData{
				AllowMultipleCorrect: true,
				Options: []question.MCQOption{
					{Text: "a", IsCorrect: true},
					{Text: "b", IsCorrect: true},
				},
			},
		}

		_, _, _, err := buildMCQ(in)

		require.NoError(t, err)
	})

	t.Run("rejects out-of-range time limit", func(t *testing.T) {
		in := &mmodel.UpsertQuestionInput{
			MCQData: &question.MCQData{
				Options:          []question.MCQOption{{Text: "a", IsCorrect: true}, {Text: "b"}},
				TimeLimitSeconds: intPtr(0),
			},
		}

		_, _, _, err := buildMCQ(in)

		require.ErrorContains(t, err, constant.ErrMCQInvalidTimeLimit.Error())
	})
}

func TestBuildTrueFalse(t *testing.T) {
	t.Run("valid with no explanation", func(t *testing.T) {
		in := &mmodel.UpsertQuestionInput{TrueFalseData: &question.TrueFalseData{CorrectAnswer: true}}

		_, tf, _, err := buildTrueFalse(in)

		require.NoError(t, err)
		assert.NotNil(t, tf)
	})

	t.Run("rejects blank explanation", func(t *testing.T) {
		blank := ""
		in := &mmodel.UpsertQuestionInput{TrueFalseData: &question.TrueFalseData{CorrectAnswer: true, Explanation: &blank}}

		_, _, _, err := buildTrueFalse(in)

		require.ErrorContains(t, err, constant.ErrTrueFalseInvalidExplanation.Error())
	})
}

func TestBuildEssay(t *testing.T) {
	t.Run("valid with rubric", func(t *testing.T) {
		in := &mmodel.UpsertQuestionInput{
			EssayData: &question.EssayData{
				MinWords: 10,
				MaxWords: 500,
				Rubric:   []question.RubricCriterion{{Criterion: "clarity", MaxPoints: 10}},
			},
		}

		_, _, essay, err := buildEssay(in)

		require.NoError(t, err)
		assert.NotNil(t, essay)
	})

	t.Run("rejects min greater than max", func(t *testing.T) {
		in := &mmodel.UpsertQuestionInput{EssayData: &question.EssayData{MinWords: 500, MaxWords: 10}}

		_, _, _, err := buildEssay(in)

		require.ErrorContains(t, err, constant.ErrEssayInvalidWordLimits.Error())
	})

	t.Run("rejects invalid rubric points", func(t *testing.T) {
		in := &mmodel.UpsertQuestionInput{
			EssayData: &question.EssayData{
				MinWords: 0,
				MaxWords: 100,
				Rubric:   []question.RubricCriterion{{Criterion: "clarity", MaxPoints: 0}},
			},
		}

		_, _, _, err := buildEssay(in)

		require.ErrorContains(t, err, constant.ErrEssayInvalidRubric.Error())
	})
}
