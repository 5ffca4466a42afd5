package command

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/yuyonghai6/quiz-cms-backend-v2-sub003/internal/domain/bank"
	"github.com/yuyonghai6/quiz-cms-backend-v2-sub003/internal/domain/taxonomy"
	"github.com/yuyonghai6/quiz-cms-backend-v2-sub003/pkg/constant"
	"github.com/yuyonghai6/quiz-cms-backend-v2-sub003/pkg/mmetrics"
	"github.com/yuyonghai6/quiz-cms-backend-v2-sub003/pkg/mmodel"
	"github.com/yuyonghai6/quiz-cms-backend-v2-sub003/pkg/mretry"
)

func TestBootstrapDefaultBankRejectsIdentityMismatch(t *testing.T) {
	uc := &UseCase{
		BankRepo:     &fakeBankRepo{},
		TaxonomyRepo: &fakeTaxonomyRepo{},
		Mongo:        &fakeTxRunner{},
		Metrics:      mmetrics.NewRecorder(nil, nil),
		RetryBudget:  mretry.DefaultBudget,
	}

	_, err := uc.BootstrapDefaultBank(context.Background(), 2, &mmodel.BootstrapInput{UserID: 1})

	require.ErrorContains(t, err, constant.ErrUnauthorizedAccess.Error())
}

func TestBootstrapDefaultBankRejectsSecondCall(t *testing.T) {
	bankRepo := &fakeBankRepo{
		existsFn: func(ctx context.Context, userID int64) (bool, error) {
			return true, nil
		},
	}

	uc := &UseCase{
		BankRepo:     bankRepo,
		TaxonomyRepo: &fakeTaxonomyRepo{},
		Mongo:        &fakeTxRunner{},
		Metrics:      mmetrics.NewRecorder(nil, nil),
		RetryBudget:  mretry.DefaultBudget,
	}

	_, err := uc.BootstrapDefaultBank(context.Background(), 1, &mmodel.BootstrapInput{UserID: 1})

	require.ErrorContains(t, err, constant.ErrDuplicateUser.Error())
}

func TestBootstrapDefaultBankCreatesBankAndSeedsTaxonomy(t *testing.T) {
	var insertedBankUserID int64

	var taxonomyInserted bool

	bankRepo := &fakeBankRepo{
		insertFn: func(ctx context.Context, record *bank.QuestionBanksPerUser) error {
			insertedBankUserID = record.UserID
			return nil
		},
	}
	taxonomyRepo := &fakeTaxonomyRepo{
		insertFn: func(ctx context.Context, set *taxonomy.TaxonomySet) error {
			taxonomyInserted = true
			return nil
		},
	}

	uc := &UseCase{
		BankRepo:     bankRepo,
		TaxonomyRepo: taxonomyRepo,
		Mongo:        &fakeTxRunner{},
		Metrics:      mmetrics.NewRecorder(nil, nil),
		RetryBudget:  mretry.DefaultBudget,
	}

	out, err := uc.BootstrapDefaultBank(context.Background(), 1, &mmodel.BootstrapInput{UserID: 1})

	require.NoError(t, err)
	assert.Equal(t, int64(1), insertedBankUserID)
	assert.True(t, taxonomyInserted)
	assert.NotEmpty(t, out.BankID)
	assert.True(t, out.TaxonomySetCreated)
	assert.Contains(t, out.AvailableTaxonomy.Categories, "category_level_1")
	assert.Contains(t, out.AvailableTaxonomy.Difficulty, "easy")
}

// TestBootstrapDefaultBankRunsWriteInsideOneTransaction asserts the bank
// insert and the taxonomy seed both happen inside a single call to
// Mongo.WithTransaction (I2), not as two independent writes.
func TestBootstrapDefaultBankRunsWriteInsideOneTransaction(t *testing.T) {
	var transactionCalls int

	var inTransaction bool

	var writesInsideTransaction int

	txRunner := &fakeTxRunner{
		withTransactionFn: func(ctx context.Context, fn func(sessCtx mongo.SessionContext) (any, error)) error {
			transactionCalls++
			inTransaction = true
			_, err := fn(nil)
			inTransaction = false
			return err
		},
	}

	uc := &UseCase{
		BankRepo: &fakeBankRepo{
			insertFn: func(ctx context.Context, record *bank.QuestionBanksPerUser) error {
				if inTransaction {
					writesInsideTransaction++
				}
				return nil
			},
		},
		TaxonomyRepo: &fakeTaxonomyRepo{
			insertFn: func(ctx context.Context, set *taxonomy.TaxonomySet) error {
				if inTransaction {
					writesInsideTransaction++
				}
				return nil
			},
		},
		Mongo:       txRunner,
		Metrics:     mmetrics.NewRecorder(nil, nil),
		RetryBudget: mretry.DefaultBudget,
	}

	_, err := uc.BootstrapDefaultBank(context.Background(), 1, &mmodel.BootstrapInput{UserID: 1})

	require.NoError(t, err)
	assert.Equal(t, 1, transactionCalls)
	assert.Equal(t, 2, writesInsideTransaction)
}

// TestBootstrapDefaultBankTranslatesTransactionFailureAsRetryExhausted
// asserts a failing transaction surfaces as RETRY_EXHAUSTED rather than a
// generic DATABASE_ERROR, once C8's retry budget gives up on it.
func TestBootstrapDefaultBankTranslatesTransactionFailureAsRetryExhausted(t *testing.T) {
	uc := &UseCase{
		BankRepo:     &fakeBankRepo{},
		TaxonomyRepo: &fakeTaxonomyRepo{},
		Mongo: &fakeTxRunner{
			withTransactionFn: func(ctx context.Context, fn func(sessCtx mongo.SessionContext) (any, error)) error {
				return errors.New("commit failed: replica set election in progress")
			},
		},
		Metrics:     mmetrics.NewRecorder(nil, nil),
		RetryBudget: mretry.Budget{InitialInterval: time.Millisecond, MaxInterval: time.Millisecond, MaxElapsedTime: 5 * time.Millisecond},
	}

	_, err := uc.BootstrapDefaultBank(context.Background(), 1, &mmodel.BootstrapInput{UserID: 1})

	require.ErrorContains(t, err, constant.ErrRetryExhausted.Error())
}
