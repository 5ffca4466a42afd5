// Package services holds cross-cutting helpers shared by the command and
// query use cases that don't belong to either package alone.
package services

import (
	"errors"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/yuyonghai6/quiz-cms-backend-v2-sub003/pkg/apperr"
	"github.com/yuyonghai6/quiz-cms-backend-v2-sub003/pkg/constant"
)

// TranslateMongoError maps a write-path error to the typed error its
// entityType implies, mirroring the teacher's constraint-name-to-business-error
// switch but over mongo write exceptions instead of postgres constraint names
// (this store has no foreign keys or named constraints to switch on). A
// retry-budget exhaustion or a failed transaction commit are distinguished
// from an ordinary duplicate-key/database error so spec §7's distinct
// RETRY_EXHAUSTED/TRANSACTION_FAILED/DATABASE_ERROR codes don't collapse into
// one.
func TranslateMongoError(err error, entityType string, duplicateSentinel error) error {
	if errors.Is(err, constant.ErrRetryExhausted) {
		return apperr.Translate(constant.ErrRetryExhausted, entityType, err)
	}

	if errors.Is(err, constant.ErrTransactionError) {
		return apperr.Translate(constant.ErrTransactionError, entityType, err)
	}

	if mongo.IsDuplicateKeyError(err) {
		return apperr.Translate(duplicateSentinel, entityType)
	}

	return apperr.Translate(constant.ErrDatabaseError, entityType, err)
}

// TranslateLookupError maps a read-path error from a retry-wrapped lookup
// (FindByNaturalKey, Exists, ...) to its typed error: a retry-budget
// exhaustion is distinguished from an ordinary database error so it surfaces
// as RETRY_EXHAUSTED rather than a generic DATABASE_ERROR.
func TranslateLookupError(err error, entityType string) error {
	if errors.Is(err, constant.ErrRetryExhausted) {
		return apperr.Translate(constant.ErrRetryExhausted, entityType, err)
	}

	return apperr.Translate(constant.ErrDatabaseError, entityType, err)
}
