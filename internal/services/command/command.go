// Package command implements the write path: C1 validation chain, C2
// strategy layer, C3 upsert engine, and C4 default-bank bootstrap.
package command

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/yuyonghai6/quiz-cms-backend-v2-sub003/internal/domain/bank"
	"github.com/yuyonghai6/quiz-cms-backend-v2-sub003/internal/domain/question"
	"github.com/yuyonghai6/quiz-cms-backend-v2-sub003/internal/domain/relationship"
	"github.com/yuyonghai6/quiz-cms-backend-v2-sub003/internal/domain/security"
	"github.com/yuyonghai6/quiz-cms-backend-v2-sub003/internal/domain/taxonomy"
	"github.com/yuyonghai6/quiz-cms-backend-v2-sub003/pkg/mmetrics"
	"github.com/yuyonghai6/quiz-cms-backend-v2-sub003/pkg/mretry"
)

// MongoTxRunner runs fn inside one mongo session transaction; satisfied
// structurally by *mmongo.MongoConnection so this package never needs to
// import the adapter. C3 and C4 use it to make their multi-collection
// writes atomic (I2, I4, I5).
type MongoTxRunner interface {
	WithTransaction(ctx context.Context, fn func(sessCtx mongo.SessionContext) (any, error)) error
}

// UseCase aggregates the repositories and cross-cutting helpers the write
// path needs, for simplified access from the command handlers.
type UseCase struct {
	// BankRepo provides an abstraction on top of the QuestionBanksPerUser data source.
	BankRepo bank.Repository

	// TaxonomyRepo provides an abstraction on top of the TaxonomySet data source.
	TaxonomyRepo taxonomy.Repository

	// QuestionRepo provides an abstraction on top of the Question data source.
	QuestionRepo question.Repository

	// RelationshipRepo provides an abstraction on top of the
	// QuestionTaxonomyRelationship data source.
	RelationshipRepo relationship.Repository

	// SecurityRepo provides an abstraction on top of the SecurityEvent audit sink.
	SecurityRepo security.Repository

	// Mongo runs C3/C4's natural-key-lookup-and-write / bank-and-taxonomy-seed
	// sequences inside one transaction.
	Mongo MongoTxRunner

	// Metrics records C8's counters and timers.
	Metrics *mmetrics.Recorder

	// RetryBudget bounds C8's retry helper.
	RetryBudget mretry.Budget
}
