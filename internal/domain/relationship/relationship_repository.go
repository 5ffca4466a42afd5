package relationship

import "context"

// Repository is the persistence port for QuestionTaxonomyRelationship edges.
//
//go:generate mockgen --destination=../../../gen/mock/relationship/relationship_mock.go --package=mock . Repository
type Repository interface {
	// ReplaceForQuestion deletes every relationship for questionID and inserts relationships,
	// in that order, inside the caller's transaction.
	ReplaceForQuestion(ctx context.Context, questionID string, relationships []Relationship) error
	// FindByQuestion lists every relationship owned by questionID.
	FindByQuestion(ctx context.Context, questionID string) ([]Relationship, error)
	// ResolveCandidates returns question ids matching every required (taxonomyType, taxonomyID)
	// pair within requiredAxes — used by C5 when taxonomy filters are present.
	ResolveCandidates(ctx context.Context, userID int64, bankID string, requiredAxes map[TaxonomyType][]string) ([]string, error)
}
