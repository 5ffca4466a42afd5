// Package relationship models QuestionTaxonomyRelationship, the rewritten-
// wholesale edge set between a question and the taxonomy it is tagged with.
package relationship

// TaxonomyType is the closed set of relationship edge kinds.
type TaxonomyType string

// The taxonomy axes a question can be related to.
const (
	TaxonomyTypeCategoryLevel1 TaxonomyType = "category_level_1"
	TaxonomyTypeCategoryLevel2 TaxonomyType = "category_level_2"
	TaxonomyTypeCategoryLevel3 TaxonomyType = "category_level_3"
	TaxonomyTypeCategoryLevel4 TaxonomyType = "category_level_4"
	TaxonomyTypeTag            TaxonomyType = "tag"
	TaxonomyTypeQuiz           TaxonomyType = "quiz"
	TaxonomyTypeDifficulty     TaxonomyType = "difficulty_level"
)

// Relationship is one edge between a question and a taxonomy reference.
// Identity: (user_id, bank_id, question_id, taxonomy_type, taxonomy_id).
type Relationship struct {
	UserID       int64        `bson:"user_id" json:"user_id"`
	BankID       string       `bson:"bank_id" json:"bank_id"`
	QuestionID   string       `bson:"question_id" json:"question_id"`
	TaxonomyType TaxonomyType `bson:"taxonomy_type" json:"taxonomy_type"`
	TaxonomyID   string       `bson:"taxonomy_id" json:"taxonomy_id"`
}
