// Package apperr defines the typed error wrappers returned by the
// command/query core and the translation from a sentinel error
// (pkg/constant) to its wrapper.
package apperr

import (
	"errors"
	"fmt"
	"strings"

	cn "github.com/yuyonghai6/quiz-cms-backend-v2-sub003/pkg/constant"
)

// ValidationError indicates a structural or semantic validation failure (400).
type ValidationError struct {
	EntityType string
	Title      string
	Message    string
	Code       string
	Err        error
}

// Error implements the error interface; the message is always code-prefixed.
func (e ValidationError) Error() string {
	if strings.TrimSpace(e.Code) != "" {
		return fmt.Sprintf("%s: %s", e.Code, e.Message)
	}

	return e.Message
}

// Unwrap implements the error interface introduced in Go 1.13 to unwrap the internal error.
func (e ValidationError) Unwrap() error {
	return e.Err
}

// EntityNotFoundError indicates a referenced entity could not be resolved (422).
type EntityNotFoundError struct {
	EntityType string
	Title      string
	Message    string
	Code       string
	Err        error
}

// Error implements the error interface.
func (e EntityNotFoundError) Error() string {
	if strings.TrimSpace(e.Code) != "" {
		return fmt.Sprintf("%s: %s", e.Code, e.Message)
	}

	if strings.TrimSpace(e.EntityType) != "" {
		return fmt.Sprintf("entity %s not found", e.EntityType)
	}

	return "entity not found"
}

// Unwrap implements the error interface introduced in Go 1.13 to unwrap the internal error.
func (e EntityNotFoundError) Unwrap() error {
	return e.Err
}

// EntityConflictError indicates a natural-key or uniqueness conflict (409).
type EntityConflictError struct {
	EntityType string
	Title      string
	Message    string
	Code       string
	Err        error
}

// Error implements the error interface.
func (e EntityConflictError) Error() string {
	if strings.TrimSpace(e.Code) != "" {
		return fmt.Sprintf("%s: %s", e.Code, e.Message)
	}

	return e.Message
}

// Unwrap implements the error interface introduced in Go 1.13 to unwrap the internal error.
func (e EntityConflictError) Unwrap() error {
	return e.Err
}

// UnauthorizedError indicates the caller's identity does not match the
// command's claimed identity, or an ownership probe failed (422).
type UnauthorizedError struct {
	EntityType string
	Title      string
	Message    string
	Code       string
	Err        error
}

// Error implements the error interface.
func (e UnauthorizedError) Error() string {
	if strings.TrimSpace(e.Code) != "" {
		return fmt.Sprintf("%s: %s", e.Code, e.Message)
	}

	return e.Message
}

// Unwrap implements the error interface introduced in Go 1.13 to unwrap the internal error.
func (e UnauthorizedError) Unwrap() error {
	return e.Err
}

// InternalServerError is the catch-all for infrastructure and unanticipated failures (500).
type InternalServerError struct {
	EntityType string
	Title      string
	Message    string
	Code       string
	Err        error
}

// Error implements the error interface.
func (e InternalServerError) Error() string {
	if strings.TrimSpace(e.Code) != "" {
		return fmt.Sprintf("%s: %s", e.Code, e.Message)
	}

	return e.Message
}

// Unwrap implements the error interface introduced in Go 1.13 to unwrap the internal error.
func (e InternalServerError) Unwrap() error {
	return e.Err
}

// ResponseError is the uniform envelope shape `{success, message, data}`'s error half.
type ResponseError struct {
	Code    string `json:"code,omitempty"`
	Title   string `json:"title,omitempty"`
	Message string `json:"message,omitempty"`
}

// Error returns the message of the ResponseError.
func (r ResponseError) Error() string {
	return r.Message
}

// ValidateInternalError wraps an unanticipated error as an InternalServerError,
// always logged with stack by the caller.
func ValidateInternalError(err error, entityType string) error {
	return InternalServerError{
		EntityType: entityType,
		Code:       cn.ErrDatabaseError.Error(),
		Title:      "Internal Server Error",
		Message:    "the server encountered an unexpected error: " + err.Error(),
		Err:        err,
	}
}

// Translate maps a sentinel error from pkg/constant to its typed wrapper,
// formatting Message with the code-prefix contract ("<CODE>: <reason>").
// Unrecognized errors pass through unchanged.
//
//nolint:gocyclo
func Translate(err error, entityType string, args ...any) error {
	switch {
	case errors.Is(err, cn.ErrMissingRequiredField):
		return ValidationError{
			EntityType: entityType,
			Code:       cn.ErrMissingRequiredField.Error(),
			Title:      "Missing Required Field",
			Message:    fmt.Sprintf("a required field is missing: %s", joinArgs(args)),
		}
	case errors.Is(err, cn.ErrInvalidQuestionType):
		return ValidationError{
			EntityType: entityType,
			Code:       cn.ErrInvalidQuestionType.Error(),
			Title:      "Invalid Question Type",
			Message:    fmt.Sprintf("question_type must be one of mcq, true_false, essay: %s", joinArgs(args)),
		}
	case errors.Is(err, cn.ErrTypeDataMismatch):
		return ValidationError{
			EntityType: entityType,
			Code:       cn.ErrTypeDataMismatch.Error(),
			Title:      "Type Data Mismatch",
			Message:    "question_type does not match the supplied type-specific payload",
		}
	case errors.Is(err, cn.ErrConstraintViolation):
		return ValidationError{
			EntityType: entityType,
			Code:       cn.ErrConstraintViolation.Error(),
			Title:      "Constraint Violation",
			Message:    fmt.Sprintf("a field constraint was violated: %s", joinArgs(args)),
		}
	case errors.Is(err, cn.ErrInvalidQueryParameter):
		return ValidationError{
			EntityType: entityType,
			Code:       cn.ErrInvalidQueryParameter.Error(),
			Title:      "Invalid Query Parameter",
			Message:    fmt.Sprintf("a query parameter is invalid: %s", joinArgs(args)),
		}
	case errors.Is(err, cn.ErrUnauthorizedAccess):
		return UnauthorizedError{
			EntityType: entityType,
			Code:       cn.ErrUnauthorizedAccess.Error(),
			Title:      "Unauthorized Access",
			Message:    "the authenticated identity may not act on the command's user or bank",
		}
	case errors.Is(err, cn.ErrQuestionBankNotFound):
		return EntityNotFoundError{
			EntityType: entityType,
			Code:       cn.ErrQuestionBankNotFound.Error(),
			Title:      "Question Bank Not Found",
			Message:    fmt.Sprintf("the bank does not exist or is not owned by this user: %s", joinArgs(args)),
		}
	case errors.Is(err, cn.ErrTaxonomyReferenceNotFound):
		return EntityNotFoundError{
			EntityType: entityType,
			Code:       cn.ErrTaxonomyReferenceNotFound.Error(),
			Title:      "Taxonomy Reference Not Found",
			Message:    fmt.Sprintf("unknown taxonomy reference(s): %s", joinArgs(args)),
		}
	case errors.Is(err, cn.ErrDuplicateUser):
		return EntityConflictError{
			EntityType: entityType,
			Code:       cn.ErrDuplicateUser.Error(),
			Title:      "Duplicate User",
			Message:    fmt.Sprintf("a question bank already exists for this user: %s", joinArgs(args)),
		}
	case errors.Is(err, cn.ErrDuplicateSourceQuestionID):
		return EntityConflictError{
			EntityType: entityType,
			Code:       cn.ErrDuplicateSourceQuestionID.Error(),
			Title:      "Duplicate Source Question ID",
			Message:    fmt.Sprintf("a question with this source_question_id already exists: %s", joinArgs(args)),
		}
	case errors.Is(err, cn.ErrMCQInvalidOptionsCount):
		return ValidationError{
			EntityType: entityType,
			Code:       cn.ErrMCQInvalidOptionsCount.Error(),
			Title:      "MCQ Invalid Options Count",
			Message:    "mcq_data.options must contain between 2 and 10 options",
		}
	case errors.Is(err, cn.ErrMCQNoCorrectOption):
		return ValidationError{
			EntityType: entityType,
			Code:       cn.ErrMCQNoCorrectOption.Error(),
			Title:      "MCQ No Correct Option",
			Message:    "mcq_data.options must include at least one option with is_correct=true",
		}
	case errors.Is(err, cn.ErrMCQMultipleCorrectNotAllowed):
		return ValidationError{
			EntityType: entityType,
			Code:       cn.ErrMCQMultipleCorrectNotAllowed.Error(),
			Title:      "MCQ Multiple Correct Not Allowed",
			Message:    "multiple correct options require allow_multiple_correct=true",
		}
	case errors.Is(err, cn.ErrMCQInvalidOptionText):
		return ValidationError{
			EntityType: entityType,
			Code:       cn.ErrMCQInvalidOptionText.Error(),
			Title:      "MCQ Invalid Option Text",
			Message:    "each mcq option text must be non-empty and at most 500 characters",
		}
	case errors.Is(err, cn.ErrMCQInvalidTimeLimit):
		return ValidationError{
			EntityType: entityType,
			Code:       cn.ErrMCQInvalidTimeLimit.Error(),
			Title:      "MCQ Invalid Time Limit",
			Message:    "mcq_data.time_limit_seconds must be in (0, 3600]",
		}
	case errors.Is(err, cn.ErrTrueFalseInvalidAnswer):
		return ValidationError{
			EntityType: entityType,
			Code:       cn.ErrTrueFalseInvalidAnswer.Error(),
			Title:      "True/False Invalid Answer",
			Message:    "true_false_data.correct_answer must be a boolean",
		}
	case errors.Is(err, cn.ErrTrueFalseInvalidExplanation):
		return ValidationError{
			EntityType: entityType,
			Code:       cn.ErrTrueFalseInvalidExplanation.Error(),
			Title:      "True/False Invalid Explanation",
			Message:    "true_false_data.explanation must be non-blank and at most 2000 characters when present",
		}
	case errors.Is(err, cn.ErrTrueFalseInvalidTimeLimit):
		return ValidationError{
			EntityType: entityType,
			Code:       cn.ErrTrueFalseInvalidTimeLimit.Error(),
			Title:      "True/False Invalid Time Limit",
			Message:    "true_false_data.time_limit_seconds must be in (0, 3600]",
		}
	case errors.Is(err, cn.ErrEssayInvalidWordLimits):
		return ValidationError{
			EntityType: entityType,
			Code:       cn.ErrEssayInvalidWordLimits.Error(),
			Title:      "Essay Invalid Word Limits",
			Message:    "essay_data requires 0 <= min_words <= max_words <= 10000 and max_words > 0",
		}
	case errors.Is(err, cn.ErrEssayInvalidRubric):
		return ValidationError{
			EntityType: entityType,
			Code:       cn.ErrEssayInvalidRubric.Error(),
			Title:      "Essay Invalid Rubric",
			Message:    "each rubric criterion must be non-empty, at most 1000 characters, with 0 < max_points <= 1000",
		}
	case errors.Is(err, cn.ErrDatabaseError):
		return InternalServerError{
			EntityType: entityType,
			Code:       cn.ErrDatabaseError.Error(),
			Title:      "Database Error",
			Message:    fmt.Sprintf("a storage operation failed: %s", joinArgs(args)),
		}
	case errors.Is(err, cn.ErrTransactionError):
		return InternalServerError{
			EntityType: entityType,
			Code:       cn.ErrTransactionError.Error(),
			Title:      "Transaction Failed",
			Message:    "the transaction could not be committed",
		}
	case errors.Is(err, cn.ErrRetryExhausted):
		return InternalServerError{
			EntityType: entityType,
			Code:       cn.ErrRetryExhausted.Error(),
			Title:      "Retry Exhausted",
			Message:    fmt.Sprintf("the retry budget was exhausted: %s", joinArgs(args)),
		}
	case errors.Is(err, cn.ErrTimeout):
		return InternalServerError{
			EntityType: entityType,
			Code:       cn.ErrTimeout.Error(),
			Title:      "Timeout",
			Message:    "the command's deadline was exceeded",
		}
	case errors.Is(err, cn.ErrOwnershipValidation):
		return InternalServerError{
			EntityType: entityType,
			Code:       cn.ErrOwnershipValidation.Error(),
			Title:      "Ownership Validation Error",
			Message:    "an unanticipated error occurred while validating bank ownership",
		}
	case errors.Is(err, cn.ErrUpsertFailed):
		return InternalServerError{
			EntityType: entityType,
			Code:       cn.ErrUpsertFailed.Error(),
			Title:      "Upsert Error",
			Message:    "an unanticipated error occurred while upserting the question",
		}
	case errors.Is(err, cn.ErrQueryFailed):
		return InternalServerError{
			EntityType: entityType,
			Code:       cn.ErrQueryFailed.Error(),
			Title:      "Query Error",
			Message:    "an unanticipated error occurred while executing the query plan",
		}
	default:
		return err
	}
}

func joinArgs(args []any) string {
	parts := make([]string, 0, len(args))
	for _, a := range args {
		parts = append(parts, fmt.Sprint(a))
	}

	return strings.Join(parts, ", ")
}
