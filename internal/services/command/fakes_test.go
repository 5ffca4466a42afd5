package command

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/yuyonghai6/quiz-cms-backend-v2-sub003/internal/domain/bank"
	"github.com/yuyonghai6/quiz-cms-backend-v2-sub003/internal/domain/question"
	"github.com/yuyonghai6/quiz-cms-backend-v2-sub003/internal/domain/relationship"
	"github.com/yuyonghai6/quiz-cms-backend-v2-sub003/internal/domain/security"
	"github.com/yuyonghai6/quiz-cms-backend-v2-sub003/internal/domain/taxonomy"
)

// The fakes below stand in for mockgen-generated mocks: each repository
// interface gets a minimal hand-written struct with one func field per
// method, defaulting to a zero-value/no-op behavior so tests only wire the
// calls they care about.

type fakeBankRepo struct {
	existsFn            func(ctx context.Context, userID int64) (bool, error)
	validateOwnershipFn func(ctx context.Context, userID int64, bankID string) (bool, error)
	isActiveFn          func(ctx context.Context, userID int64, bankID string) (bool, error)
	defaultBankIDFn     func(ctx context.Context, userID int64) (string, error)
	insertFn            func(ctx context.Context, record *bank.QuestionBanksPerUser) error
}

func (f *fakeBankRepo) Exists(ctx context.Context, userID int64) (bool, error) {
	if f.existsFn != nil {
		return f.existsFn(ctx, userID)
	}
	return false, nil
}

func (f *fakeBankRepo) ValidateOwnership(ctx context.Context, userID int64, bankID string) (bool, error) {
	if f.validateOwnershipFn != nil {
		return f.validateOwnershipFn(ctx, userID, bankID)
	}
	return true, nil
}

func (f *fakeBankRepo) IsActive(ctx context.Context, userID int64, bankID string) (bool, error) {
	if f.isActiveFn != nil {
		return f.isActiveFn(ctx, userID, bankID)
	}
	return true, nil
}

func (f *fakeBankRepo) DefaultBankID(ctx context.Context, userID int64) (string, error) {
	if f.defaultBankIDFn != nil {
		return f.defaultBankIDFn(ctx, userID)
	}
	return "", nil
}

func (f *fakeBankRepo) Insert(ctx context.Context, record *bank.QuestionBanksPerUser) error {
	if f.insertFn != nil {
		return f.insertFn(ctx, record)
	}
	return nil
}

type fakeTaxonomyRepo struct {
	existsFn               func(ctx context.Context, userID int64, bankID string) (bool, error)
	getFn                  func(ctx context.Context, userID int64, bankID string) (*taxonomy.TaxonomySet, error)
	getUnknownReferencesFn func(ctx context.Context, userID int64, bankID, taxonomyType string, ids []string) ([]string, error)
	insertFn               func(ctx context.Context, set *taxonomy.TaxonomySet) error
}

func (f *fakeTaxonomyRepo) Exists(ctx context.Context, userID int64, bankID string) (bool, error) {
	if f.existsFn != nil {
		return f.existsFn(ctx, userID, bankID)
	}
	return false, nil
}

func (f *fakeTaxonomyRepo) Get(ctx context.Context, userID int64, bankID string) (*taxonomy.TaxonomySet, error) {
	if f.getFn != nil {
		return f.getFn(ctx, userID, bankID)
	}
	return &taxonomy.TaxonomySet{UserID: userID, BankID: bankID}, nil
}

func (f *fakeTaxonomyRepo) GetUnknownReferences(ctx context.Context, userID int64, bankID, taxonomyType string, ids []string) ([]string, error) {
	if f.getUnknownReferencesFn != nil {
		return f.getUnknownReferencesFn(ctx, userID, bankID, taxonomyType, ids)
	}
	return nil, nil
}

func (f *fakeTaxonomyRepo) Insert(ctx context.Context, set *taxonomy.TaxonomySet) error {
	if f.insertFn != nil {
		return f.insertFn(ctx, set)
	}
	return nil
}

type fakeQuestionRepo struct {
	findByNaturalKeyFn   func(ctx context.Context, userID int64, bankID, sourceQuestionID string) (*question.Question, error)
	upsertByNaturalKeyFn func(ctx context.Context, q *question.Question) (*question.Question, error)
	findByBankFn         func(ctx context.Context, userID int64, bankID string) ([]question.Question, error)
	queryFn              func(ctx context.Context, plan question.FilterPlan, candidateIDs []string) (question.Page, error)
}

func (f *fakeQuestionRepo) FindByNaturalKey(ctx context.Context, userID int64, bankID, sourceQuestionID string) (*question.Question, error) {
	if f.findByNaturalKeyFn != nil {
		return f.findByNaturalKeyFn(ctx, userID, bankID, sourceQuestionID)
	}
	return nil, nil
}

func (f *fakeQuestionRepo) UpsertByNaturalKey(ctx context.Context, q *question.Question) (*question.Question, error) {
	if f.upsertByNaturalKeyFn != nil {
		return f.upsertByNaturalKeyFn(ctx, q)
	}
	return q, nil
}

func (f *fakeQuestionRepo) FindByBank(ctx context.Context, userID int64, bankID string) ([]question.Question, error) {
	if f.findByBankFn != nil {
		return f.findByBankFn(ctx, userID, bankID)
	}
	return nil, nil
}

func (f *fakeQuestionRepo) Query(ctx context.Context, plan question.FilterPlan, candidateIDs []string) (question.Page, error) {
	if f.queryFn != nil {
		return f.queryFn(ctx, plan, candidateIDs)
	}
	return question.Page{}, nil
}

type fakeRelationshipRepo struct {
	replaceForQuestionFn func(ctx context.Context, questionID string, relationships []relationship.Relationship) error
	findByQuestionFn     func(ctx context.Context, questionID string) ([]relationship.Relationship, error)
	resolveCandidatesFn  func(ctx context.Context, userID int64, bankID string, requiredAxes map[relationship.TaxonomyType][]string) ([]string, error)
}

func (f *fakeRelationshipRepo) ReplaceForQuestion(ctx context.Context, questionID string, relationships []relationship.Relationship) error {
	if f.replaceForQuestionFn != nil {
		return f.replaceForQuestionFn(ctx, questionID, relationships)
	}
	return nil
}

func (f *fakeRelationshipRepo) FindByQuestion(ctx context.Context, questionID string) ([]relationship.Relationship, error) {
	if f.findByQuestionFn != nil {
		return f.findByQuestionFn(ctx, questionID)
	}
	return nil, nil
}

func (f *fakeRelationshipRepo) ResolveCandidates(ctx context.Context, userID int64, bankID string, requiredAxes map[relationship.TaxonomyType][]string) ([]string, error) {
	if f.resolveCandidatesFn != nil {
		return f.resolveCandidatesFn(ctx, userID, bankID, requiredAxes)
	}
	return nil, nil
}

type fakeSecurityRepo struct {
	appendFn      func(ctx context.Context, event *security.Event) error
	appendedAsync []*security.Event
}

func (f *fakeSecurityRepo) Append(ctx context.Context, event *security.Event) error {
	if f.appendFn != nil {
		return f.appendFn(ctx, event)
	}
	return nil
}

func (f *fakeSecurityRepo) AppendAsync(ctx context.Context, event *security.Event) {
	f.appendedAsync = append(f.appendedAsync, event)
}

// fakeTxRunner stands in for *mmongo.MongoConnection's session transaction:
// by default it just invokes fn once with a nil session context (these tests
// never call a session-only method on it), so C3/C4's repo calls run exactly
// as they would inside a real transaction, minus the atomicity.
type fakeTxRunner struct {
	withTransactionFn func(ctx context.Context, fn func(sessCtx mongo.SessionContext) (any, error)) error
}

func (f *fakeTxRunner) WithTransaction(ctx context.Context, fn func(sessCtx mongo.SessionContext) (any, error)) error {
	if f.withTransactionFn != nil {
		return f.withTransactionFn(ctx, fn)
	}

	_, err := fn(nil)

	return err
}
