// Package taxonomy models TaxonomySet, the per-bank catalog of categories,
// tags, quizzes, and difficulty levels that questions reference.
package taxonomy

// CategoryLevel is one ordered level of the category hierarchy (1..4).
type CategoryLevel struct {
	ID       string `bson:"id" json:"id"`
	Name     string `bson:"name" json:"name"`
	Slug     string `bson:"slug" json:"slug"`
	ParentID string `bson:"parent_id,omitempty" json:"parent_id,omitempty"`
}

// Tag is a freeform label questions can be associated with.
type Tag struct {
	ID    string `bson:"id" json:"id"`
	Name  string `bson:"name" json:"name"`
	Color string `bson:"color,omitempty" json:"color,omitempty"`
}

// Quiz groups questions under a named, numbered quiz.
type Quiz struct {
	QuizID   int64  `bson:"quiz_id" json:"quiz_id"`
	QuizName string `bson:"quiz_name" json:"quiz_name"`
	QuizSlug string `bson:"quiz_slug" json:"quiz_slug"`
}

// DifficultyLevel is one allowed difficulty rating.
type DifficultyLevel struct {
	Level        string `bson:"level" json:"level"`
	NumericValue int    `bson:"numeric_value" json:"numeric_value"`
	Description  string `bson:"description,omitempty" json:"description,omitempty"`
}

// TaxonomySet is identified by (user_id, bank_id); seeded at bootstrap,
// mutated only by administrative flows outside this core.
type TaxonomySet struct {
	UserID      int64             `bson:"user_id" json:"user_id"`
	BankID      string            `bson:"bank_id" json:"bank_id"`
	CategoryL1  []CategoryLevel   `bson:"category_level_1,omitempty" json:"category_level_1,omitempty"`
	CategoryL2  []CategoryLevel   `bson:"category_level_2,omitempty" json:"category_level_2,omitempty"`
	CategoryL3  []CategoryLevel   `bson:"category_level_3,omitempty" json:"category_level_3,omitempty"`
	CategoryL4  []CategoryLevel   `bson:"category_level_4,omitempty" json:"category_level_4,omitempty"`
	Tags        []Tag             `bson:"tags,omitempty" json:"tags,omitempty"`
	Quizzes     []Quiz            `bson:"quizzes,omitempty" json:"quizzes,omitempty"`
	Difficulty  []DifficultyLevel `bson:"difficulty,omitempty" json:"difficulty,omitempty"`
}

// CategoryLevelByNumber returns the category slice for level n (1..4).
func (t *TaxonomySet) CategoryLevelByNumber(n int) []CategoryLevel {
	switch n {
	case 1:
		return t.CategoryL1
	case 2:
		return t.CategoryL2
	case 3:
		return t.CategoryL3
	case 4:
		return t.CategoryL4
	default:
		return nil
	}
}

// HasCategoryID reports whether level n contains a category with the given id.
func (t *TaxonomySet) HasCategoryID(n int, id string) bool {
	for _, c := range t.CategoryLevelByNumber(n) {
		if c.ID == id {
			return true
		}
	}

	return false
}

// HasTagID reports whether id names a known tag.
func (t *TaxonomySet) HasTagID(id string) bool {
	for _, tg := range t.Tags {
		if tg.ID == id {
			return true
		}
	}

	return false
}

// HasQuizID reports whether id names a known quiz.
func (t *TaxonomySet) HasQuizID(id int64) bool {
	for _, q := range t.Quizzes {
		if q.QuizID == id {
			return true
		}
	}

	return false
}

// HasDifficultyLevel reports whether level names a known difficulty level.
func (t *TaxonomySet) HasDifficultyLevel(level string) bool {
	for _, d := range t.Difficulty {
		if d.Level == level {
			return true
		}
	}

	return false
}

// DefaultSeed returns the project's default categories, tags, and
// difficulty levels seeded into a new bank's TaxonomySet at bootstrap.
func DefaultSeed(userID int64, bankID string) TaxonomySet {
	return TaxonomySet{
		UserID: userID,
		BankID: bankID,
		CategoryL1: []CategoryLevel{
			{ID: "general", Name: "General", Slug: "general"},
		},
		Tags: []Tag{
			{ID: "beginner", Name: "Beginner"},
		},
		Difficulty: []DifficultyLevel{
			{Level: "easy", NumericValue: 1},
			{Level: "medium", NumericValue: 2},
			{Level: "hard", NumericValue: 3},
		},
	}
}
