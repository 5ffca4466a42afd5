package command

import (
	"strings"
	"unicode/utf8"

	"github.com/yuyonghai6/quiz-cms-backend-v2-sub003/internal/domain/question"
	"github.com/yuyonghai6/quiz-cms-backend-v2-sub003/pkg/apperr"
	"github.com/yuyonghai6/quiz-cms-backend-v2-sub003/pkg/constant"
	"github.com/yuyonghai6/quiz-cms-backend-v2-sub003/pkg/mmodel"
)

// strategy is C2's per-type builder: it validates the type-specific payload
// of in and, on success, returns the fields to graft onto the Question
// aggregate. On failure it returns a typed, code-prefixed error.
type strategy func(in *mmodel.UpsertQuestionInput) (mcqPayload *question.MCQData, tfPayload *question.TrueFalseData, essayPayload *question.EssayData, err error)

var strategies = map[question.Type]strategy{
	question.TypeMCQ:       buildMCQ,
	question.TypeTrueFalse: buildTrueFalse,
	question.TypeEssay:     buildEssay,
}

// buildTypedPayload dispatches to the strategy registered for
// in.QuestionType. dataIntegrityStep already asserted the payload exists
// and matches the discriminator, so a missing entry here would be a
// programmer error rather than a command validation failure.
func buildTypedPayload(in *mmodel.UpsertQuestionInput) (*question.MCQData, *question.TrueFalseData, *question.EssayData, error) {
	s, ok := strategies[in.QuestionType]
	if !ok {
		return nil, nil, nil, apperr.Translate(constant.ErrInvalidQuestionType, "Question", in.QuestionType)
	}

	return s(in)
}

const maxTimeLimitSeconds = 3600

// buildMCQ validates an mcq_data payload: 2-10 options, each with non-empty
// text of at most 500 characters, exactly one correct option unless
// allow_multiple_correct is set, and an optional time limit in (0, 3600].
func buildMCQ(in *mmodel.UpsertQuestionInput) (*question.MCQData, *question.TrueFalseData, *question.EssayData, error) {
	data := in.MCQData

	if len(data.Options) < 2 || len(data.Options) > 10 {
		return nil, nil, nil, apperr.Translate(constant.ErrMCQInvalidOptionsCount, "Question")
	}

	correctCount := 0

	for _, opt := range data.Options {
		text := opt.Text
		if text == "" || utf8.RuneCountInString(text) > 500 {
			return nil, nil, nil, apperr.Translate(constant.ErrMCQInvalidOptionText, "Question")
		}

		if opt.IsCorrect {
			correctCount++
		}
	}

	if correctCount == 0 {
		return nil, nil, nil, apperr.Translate(constant.ErrMCQNoCorrectOption, "Question")
	}

	if correctCount > 1 && !data.AllowMultipleCorrect {
		return nil, nil, nil, apperr.Translate(constant.ErrMCQMultipleCorrectNotAllowed, "Question")
	}

	if data.TimeLimitSeconds != nil && (*data.TimeLimitSeconds <= 0 || *data.TimeLimitSeconds > maxTimeLimitSeconds) {
		return nil, nil, nil, apperr.Translate(constant.ErrMCQInvalidTimeLimit, "Question")
	}

	return data, nil, nil, nil
}

// buildTrueFalse validates a true_false_data payload: a required boolean
// answer, an optional non-blank explanation of at most 2000 characters, and
// an optional time limit in (0, 3600].
func buildTrueFalse(in *mmodel.UpsertQuestionInput) (*question.MCQData, *question.TrueFalseData, *question.EssayData, error) {
	data := in.TrueFalseData

	if data.Explanation != nil {
		explanation := *data.Explanation
		if strings.TrimSpace(explanation) == "" || utf8.RuneCountInString(explanation) > 2000 {
			return nil, nil, nil, apperr.Translate(constant.ErrTrueFalseInvalidExplanation, "Question")
		}
	}

	if data.TimeLimitSeconds != nil && (*data.TimeLimitSeconds <= 0 || *data.TimeLimitSeconds > maxTimeLimitSeconds) {
		return nil, nil, nil, apperr.Translate(constant.ErrTrueFalseInvalidTimeLimit, "Question")
	}

	return nil, data, nil, nil
}

const (
	maxEssayWords       = 10000
	maxRubricMaxPoints  = 1000
	maxRubricTextLength = 1000
)

// buildEssay validates an essay_data payload: 0 <= min_words <= max_words <=
// 10000 with max_words > 0, and, when a rubric is present, each criterion
// non-empty and at most 1000 characters with 0 < max_points <= 1000.
func buildEssay(in *mmodel.UpsertQuestionInput) (*question.MCQData, *question.TrueFalseData, *question.EssayData, error) {
	data := in.EssayData

	if data.MinWords < 0 || data.MaxWords <= 0 || data.MinWords > data.MaxWords || data.MaxWords > maxEssayWords {
		return nil, nil, nil, apperr.Translate(constant.ErrEssayInvalidWordLimits, "Question")
	}

	for _, criterion := range data.Rubric {
		if criterion.Criterion == "" || utf8.RuneCountInString(criterion.Criterion) > maxRubricTextLength {
			return nil, nil, nil, apperr.Translate(constant.ErrEssayInvalidRubric, "Question")
		}

		if criterion.MaxPoints <= 0 || criterion.MaxPoints > maxRubricMaxPoints {
			return nil, nil, nil, apperr.Translate(constant.ErrEssayInvalidRubric, "Question")
		}
	}

	return nil, nil, data, nil
}
