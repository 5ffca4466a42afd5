// Package constant enumerates the sentinel errors the command/query core
// returns. Each sentinel's Error() string IS the wire error code — callers
// compare with errors.Is and apperr.Translate maps it to a typed wrapper.
package constant

import "errors"

var (
	// Structural (400).
	ErrMissingRequiredField  = errors.New("MISSING_REQUIRED_FIELD")
	ErrInvalidQuestionType   = errors.New("INVALID_QUESTION_TYPE")
	ErrTypeDataMismatch      = errors.New("TYPE_DATA_MISMATCH")
	ErrConstraintViolation   = errors.New("CONSTRAINT_VIOLATION")
	ErrInvalidQueryParameter = errors.New("INVALID_QUERY_PARAMETER")

	// Referential (422).
	ErrUnauthorizedAccess        = errors.New("UNAUTHORIZED_ACCESS")
	ErrQuestionBankNotFound      = errors.New("QUESTION_BANK_NOT_FOUND")
	ErrTaxonomyReferenceNotFound = errors.New("TAXONOMY_REFERENCE_NOT_FOUND")

	// Conflict (409).
	ErrDuplicateUser             = errors.New("DUPLICATE_USER")
	ErrDuplicateSourceQuestionID = errors.New("DUPLICATE_SOURCE_QUESTION_ID")

	// MCQ strategy (400).
	ErrMCQInvalidOptionsCount       = errors.New("MCQ_INVALID_OPTIONS_COUNT")
	ErrMCQNoCorrectOption           = errors.New("MCQ_NO_CORRECT_OPTION")
	ErrMCQMultipleCorrectNotAllowed = errors.New("MCQ_MULTIPLE_CORRECT_NOT_ALLOWED")
	ErrMCQInvalidOptionText         = errors.New("MCQ_INVALID_OPTION_TEXT")
	ErrMCQInvalidTimeLimit          = errors.New("MCQ_INVALID_TIME_LIMIT")

	// True/False strategy (400).
	ErrTrueFalseInvalidAnswer      = errors.New("TRUE_FALSE_INVALID_ANSWER")
	ErrTrueFalseInvalidExplanation = errors.New("TRUE_FALSE_INVALID_EXPLANATION")
	ErrTrueFalseInvalidTimeLimit   = errors.New("TRUE_FALSE_INVALID_TIME_LIMIT")

	// Essay strategy (400).
	ErrEssayInvalidWordLimits = errors.New("ESSAY_INVALID_WORD_LIMITS")
	ErrEssayInvalidRubric     = errors.New("ESSAY_INVALID_RUBRIC")

	// Infrastructure (500).
	ErrDatabaseError    = errors.New("DATABASE_ERROR")
	ErrTransactionError = errors.New("TRANSACTION_FAILED")
	ErrRetryExhausted   = errors.New("RETRY_EXHAUSTED")
	ErrTimeout          = errors.New("TIMEOUT")

	// Internal (500), always logged with stack.
	ErrOwnershipValidation = errors.New("OWNERSHIP_VALIDATION_ERROR")
	ErrUpsertFailed        = errors.New("UPSERT_ERROR")
	ErrQueryFailed         = errors.New("QUERY_ERROR")
)
