package services

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yuyonghai6/quiz-cms-backend-v2-sub003/pkg/constant"
)

func TestTranslateMongoErrorDistinguishesRetryExhausted(t *testing.T) {
	err := TranslateMongoError(constant.ErrRetryExhausted, "Question", constant.ErrDuplicateSourceQuestionID)

	assert.ErrorContains(t, err, constant.ErrRetryExhausted.Error())
}

func TestTranslateMongoErrorDistinguishesTransactionFailure(t *testing.T) {
	wrapped := fmt.Errorf("%w: commit aborted", constant.ErrTransactionError)

	err := TranslateMongoError(wrapped, "Question", constant.ErrDuplicateSourceQuestionID)

	assert.ErrorContains(t, err, constant.ErrTransactionError.Error())
}

func TestTranslateMongoErrorFallsBackToDatabaseError(t *testing.T) {
	err := TranslateMongoError(errors.New("disk full"), "Question", constant.ErrDuplicateSourceQuestionID)

	assert.ErrorContains(t, err, constant.ErrDatabaseError.Error())
}

func TestTranslateLookupErrorDistinguishesRetryExhausted(t *testing.T) {
	err := TranslateLookupError(constant.ErrRetryExhausted, "QuestionBanksPerUser")

	assert.ErrorContains(t, err, constant.ErrRetryExhausted.Error())
}

func TestTranslateLookupErrorFallsBackToDatabaseError(t *testing.T) {
	err := TranslateLookupError(errors.New("connection reset"), "QuestionBanksPerUser")

	assert.ErrorContains(t, err, constant.ErrDatabaseError.Error())
}
