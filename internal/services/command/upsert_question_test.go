package command

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/yuyonghai6/quiz-cms-backend-v2-sub003/internal/domain/question"
	"github.com/yuyonghai6/quiz-cms-backend-v2-sub003/internal/domain/relationship"
	"github.com/yuyonghai6/quiz-cms-backend-v2-sub003/pkg/constant"
	"github.com/yuyonghai6/quiz-cms-backend-v2-sub003/pkg/mmetrics"
	"github.com/yuyonghai6/quiz-cms-backend-v2-sub003/pkg/mmodel"
	"github.com/yuyonghai6/quiz-cms-backend-v2-sub003/pkg/mretry"
)

func TestUpsertQuestionCreatesWhenNaturalKeyAbsent(t *testing.T) {
	questionRepo := &fakeQuestionRepo{}
	relationshipRepo := &fakeRelationshipRepo{}

	uc := &UseCase{
		BankRepo:         &fakeBankRepo{},
		TaxonomyRepo:     &fakeTaxonomyRepo{},
		QuestionRepo:     questionRepo,
		RelationshipRepo: relationshipRepo,
		SecurityRepo:     &fakeSecurityRepo{},
		Mongo:            &fakeTxRunner{},
		Metrics:          mmetrics.NewRecorder(nil, nil),
		RetryBudget:      mretry.DefaultBudget,
	}

	in := validUpsertInput()
	in.SourceQuestionID = "src-1"
	in.Taxonomy.Tags = []string{"beginner"}

	out, err := uc.UpsertQuestion(context.Background(), in.UserID, in)

	require.NoError(t, err)
	assert.Equal(t, mmodel.OperationCreated, out.Operation)
	assert.NotEmpty(t, out.QuestionID)
	assert.Equal(t, 1, out.TaxonomyRelationshipsCount)
}

func TestUpsertQuestionUpdatesWhenNaturalKeyPresent(t *testing.T) {
	existing := &question.Question{ID: "existing-id", SourceQuestionID: "src-1"}

	questionRepo := &fakeQuestionRepo{
		findByNaturalKeyFn: func(ctx context.Context, userID int64, bankID, sourceQuestionID string) (*question.Question, error) {
			return existing, nil
		},
	}

	uc := &UseCase{
		BankRepo:         &fakeBankRepo{},
		TaxonomyRepo:     &fakeTaxonomyRepo{},
		QuestionRepo:     questionRepo,
		RelationshipRepo: &fakeRelationshipRepo{},
		SecurityRepo:     &fakeSecurityRepo{},
		Mongo:            &fakeTxRunner{},
		Metrics:          mmetrics.NewRecorder(nil, nil),
		RetryBudget:      mretry.DefaultBudget,
	}

	in := validUpsertInput()
	in.SourceQuestionID = "src-1"

	out, err := uc.UpsertQuestion(context.Background(), in.UserID, in)

	require.NoError(t, err)
	assert.Equal(t, mmodel.OperationUpdated, out.Operation)
	assert.Equal(t, "existing-id", out.QuestionID)
}

// TestUpsertQuestionRunsWriteInsideOneTransaction asserts the natural-key
// write and the relationship replace both happen inside a single call to
// Mongo.WithTransaction (I4, I5), not as two independent writes.
func TestUpsertQuestionRunsWriteInsideOneTransaction(t *testing.T) {
	var transactionCalls int

	var replacedRelationshipsFor string

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
		BankRepo:     &fakeBankRepo{},
		TaxonomyRepo: &fakeTaxonomyRepo{},
		QuestionRepo: &fakeQuestionRepo{
			upsertByNaturalKeyFn: func(ctx context.Context, q *question.Question) (*question.Question, error) {
				if inTransaction {
					writesInsideTransaction++
				}
				return q, nil
			},
		},
		RelationshipRepo: &fakeRelationshipRepo{
			replaceForQuestionFn: func(ctx context.Context, questionID string, relationships []relationship.Relationship) error {
				if inTransaction {
					writesInsideTransaction++
				}
				replacedRelationshipsFor = questionID
				return nil
			},
		},
		SecurityRepo: &fakeSecurityRepo{},
		Mongo:        txRunner,
		Metrics:      mmetrics.NewRecorder(nil, nil),
		RetryBudget:  mretry.DefaultBudget,
	}

	in := validUpsertInput()

	out, err := uc.UpsertQuestion(context.Background(), in.UserID, in)

	require.NoError(t, err)
	assert.Equal(t, 1, transactionCalls)
	assert.Equal(t, out.QuestionID, replacedRelationshipsFor)
	assert.Equal(t, 2, writesInsideTransaction)
}

// TestUpsertQuestionTranslatesTransactionFailureAsRetryExhausted asserts a
// failing transaction surfaces as RETRY_EXHAUSTED rather than a generic
// DATABASE_ERROR, once C8's retry budget gives up on it.
func TestUpsertQuestionTranslatesTransactionFailureAsRetryExhausted(t *testing.T) {
	uc := &UseCase{
		BankRepo:         &fakeBankRepo{},
		TaxonomyRepo:     &fakeTaxonomyRepo{},
		QuestionRepo:     &fakeQuestionRepo{},
		RelationshipRepo: &fakeRelationshipRepo{},
		SecurityRepo:     &fakeSecurityRepo{},
		Mongo: &fakeTxRunner{
			withTransactionFn: func(ctx context.Context, fn func(sessCtx mongo.SessionContext) (any, error)) error {
				return errors.New("commit failed: replica set election in progress")
			},
		},
		Metrics:     mmetrics.NewRecorder(nil, nil),
		RetryBudget: mretry.Budget{InitialInterval: time.Millisecond, MaxInterval: time.Millisecond, MaxElapsedTime: 5 * time.Millisecond},
	}

	in := validUpsertInput()

	_, err := uc.UpsertQuestion(context.Background(), in.UserID, in)

	require.ErrorContains(t, err, constant.ErrRetryExhausted.Error())
}

func TestUpsertQuestionPropagatesValidationFailure(t *testing.T) {
	uc := &UseCase{
		BankRepo:         &fakeBankRepo{},
		TaxonomyRepo:     &fakeTaxonomyRepo{},
		QuestionRepo:     &fakeQuestionRepo{},
		RelationshipRepo: &fakeRelationshipRepo{},
		SecurityRepo:     &fakeSecurityRepo{},
		Mongo:            &fakeTxRunner{},
		Metrics:          mmetrics.NewRecorder(nil, nil),
		RetryBudget:      mretry.DefaultBudget,
	}

	in := validUpsertInput()

	_, err := uc.UpsertQuestion(context.Background(), 999, in)

	require.Error(t, err)
}
