// Package bank models QuestionBanksPerUser, the per-user envelope of
// question banks a user owns.
package bank

import "time"

// QuestionBank is one embedded bank record inside QuestionBanksPerUser.
type QuestionBank struct {
	BankID      string    `bson:"bank_id" json:"bank_id"`
	Name        string    `bson:"name" json:"name"`
	Description string    `bson:"description" json:"description"`
	IsActive    bool      `bson:"is_active" json:"is_active"`
	CreatedAt   time.Time `bson:"created_at" json:"created_at"`
}

// QuestionBanksPerUser is identified by user_id; created exactly once per
// user at bootstrap. Banks may be appended but never removed in this spec.
type QuestionBanksPerUser struct {
	UserID        int64          `bson:"user_id" json:"user_id"`
	Banks         []QuestionBank `bson:"banks" json:"banks"`
	DefaultBankID string         `bson:"default_bank_id" json:"default_bank_id"`
	CreatedAt     time.Time      `bson:"created_at" json:"created_at"`
}

// Find returns the embedded bank with the given id, if present.
func (q *QuestionBanksPerUser) Find(bankID string) (QuestionBank, bool) {
	for _, b := range q.Banks {
		if b.BankID == bankID {
			return b, true
		}
	}

	return QuestionBank{}, false
}
