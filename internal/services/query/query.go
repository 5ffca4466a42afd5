// Package query implements the read path: C5's filter-plan builder and the
// query-questions entry point.
package query

import (
	"github.com/yuyonghai6/quiz-cms-backend-v2-sub003/internal/domain/question"
	"github.com/yuyonghai6/quiz-cms-backend-v2-sub003/internal/domain/relationship"
	"github.com/yuyonghai6/quiz-cms-backend-v2-sub003/internal/domain/taxonomy"
	"github.com/yuyonghai6/quiz-cms-backend-v2-sub003/pkg/mmetrics"
	"github.com/yuyonghai6/quiz-cms-backend-v2-sub003/pkg/mretry"
)

// UseCase aggregates the repositories and cross-cutting helpers the read
// path needs, for simplified access from the query handlers.
type UseCase struct {
	// QuestionRepo provides an abstraction on top of the Question data source.
	QuestionRepo question.Repository

	// RelationshipRepo provides an abstraction on top of the
	// QuestionTaxonomyRelationship data source.
	RelationshipRepo relationship.Repository

	// TaxonomyRepo provides an abstraction on top of the TaxonomySet data source.
	TaxonomyRepo taxonomy.Repository

	// Metrics records C8's counters and timers.
	Metrics *mmetrics.Recorder

	// RetryBudget bounds C8's retry helper.
	RetryBudget mretry.Budget
}
