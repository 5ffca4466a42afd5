package question

import "context"

// Repository is the persistence port for Question documents.
//
//go:generate mockgen --destination=../../../gen/mock/question/question_mock.go --package=mock . Repository
type Repository interface {
	// FindByNaturalKey looks up a question by (user_id, bank_id, source_question_id).
	// Returns (nil, nil) when absent.
	FindByNaturalKey(ctx context.Context, userID int64, bankID, sourceQuestionID string) (*Question, error)
	// UpsertByNaturalKey inserts or replaces q by its natural key and returns the persisted document.
	UpsertByNaturalKey(ctx context.Context, q *Question) (*Question, error)
	// FindByBank lists every question owned by (user_id, bank_id).
	FindByBank(ctx context.Context, userID int64, bankID string) ([]Question, error)
	// Query executes a resolved filter plan, optionally restricted to candidateIDs
	// (non-nil when the caller already resolved taxonomy candidates via the relationship store).
	Query(ctx context.Context, plan FilterPlan, candidateIDs []string) (Page, error)
}
