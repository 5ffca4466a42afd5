package mmongo

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/yuyonghai6/quiz-cms-backend-v2-sub003/internal/domain/bank"
)

const bankCollection = "question_banks_per_user"

// BankRepository is a mongodb-backed implementation of bank.Repository.
type BankRepository struct {
	conn *MongoConnection
}

// NewBankRepository returns a BankRepository backed by conn.
func NewBankRepository(conn *MongoConnection) *BankRepository {
	return &BankRepository{conn: conn}
}

func (r *BankRepository) collection(ctx context.Context) (*mongo.Collection, error) {
	db, err := r.conn.database(ctx)
	if err != nil {
		return nil, err
	}

	return db.Collection(bankCollection), nil
}

// Exists reports whether a QuestionBanksPerUser record already exists for user_id (I1).
func (r *BankRepository) Exists(ctx context.Context, userID int64) (bool, error) {
	coll, err := r.collection(ctx)
	if err != nil {
		return false, err
	}

	count, err := coll.CountDocuments(ctx, bson.M{"user_id": userID})
	if err != nil {
		return false, err
	}

	return count > 0, nil
}

// ValidateOwnership reports whether user_id owns bank_id.
func (r *BankRepository) ValidateOwnership(ctx context.Context, userID int64, bankID string) (bool, error) {
	coll, err := r.collection(ctx)
	if err != nil {
		return false, err
	}

	count, err := coll.CountDocuments(ctx, bson.M{"user_id": userID, "banks.bank_id": bankID})
	if err != nil {
		return false, err
	}

	return count > 0, nil
}

// IsActive reports whether bank_id is active for user_id.
func (r *BankRepository) IsActive(ctx context.Context, userID int64, bankID string) (bool, error) {
	coll, err := r.collection(ctx)
	if err != nil {
		return false, err
	}

	var record bank.QuestionBanksPerUser

	err = coll.FindOne(ctx, bson.M{"user_id": userID, "banks.bank_id": bankID}).Decode(&record)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return false, nil
	}

	if err != nil {
		return false, err
	}

	found, ok := record.Find(bankID)
	if !ok {
		return false, nil
	}

	return found.IsActive, nil
}

// DefaultBankID returns the user's default bank id.
func (r *BankRepository) DefaultBankID(ctx context.Context, userID int64) (string, error) {
	coll, err := r.collection(ctx)
	if err != nil {
		return "", err
	}

	var record bank.QuestionBanksPerUser

	err = coll.FindOne(ctx, bson.M{"user_id": userID}).Decode(&record)
	if err != nil {
		return "", err
	}

	return record.DefaultBankID, nil
}

// Insert persists a new QuestionBanksPerUser record.
func (r *BankRepository) Insert(ctx context.Context, record *bank.QuestionBanksPerUser) error {
	coll, err := r.collection(ctx)
	if err != nil {
		return err
	}

	_, err = coll.InsertOne(ctx, record)

	return err
}
