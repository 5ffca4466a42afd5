package bank

import "context"

// Repository is the persistence port for QuestionBanksPerUser records.
//
//go:generate mockgen --destination=../../../gen/mock/bank/bank_mock.go --package=mock . Repository
type Repository interface {
	// Exists reports whether a QuestionBanksPerUser record already exists for user_id.
	Exists(ctx context.Context, userID int64) (bool, error)
	// ValidateOwnership reports whether user_id owns bank_id.
	ValidateOwnership(ctx context.Context, userID int64, bankID string) (bool, error)
	// IsActive reports whether bank_id is active for user_id.
	IsActive(ctx context.Context, userID int64, bankID string) (bool, error)
	// DefaultBankID returns the user's default bank id.
	DefaultBankID(ctx context.Context, userID int64) (string, error)
	// Insert persists a new QuestionBanksPerUser record.
	Insert(ctx context.Context, record *QuestionBanksPerUser) error
}
