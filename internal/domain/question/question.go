// Package question models Question, its three closed question-type
// payloads (mcq, true_false, essay), and the query filter/pagination shapes
// C5 builds its plan from.
package question

import "time"

// Type is the closed set of question-type discriminators.
type Type string

// The three supported question types.
const (
	TypeMCQ       Type = "mcq"
	TypeTrueFalse Type = "true_false"
	TypeEssay     Type = "essay"
)

// Status is the closed set of question lifecycle states.
type Status string

// The three supported question statuses.
const (
	StatusDraft     Status = "draft"
	StatusPublished Status = "published"
	StatusArchived  Status = "archived"
)

// MCQOption is one answer choice of an MCQ question.
type MCQOption struct {
	Text      string `bson:"text" json:"text"`
	IsCorrect bool   `bson:"is_correct" json:"is_correct"`
}

// MCQData is the type-specific payload for question_type=mcq.
type MCQData struct {
	Options              []MCQOption `bson:"options" json:"options"`
	AllowMultipleCorrect bool        `bson:"allow_multiple_correct,omitempty" json:"allow_multiple_correct,omitempty"`
	TimeLimitSeconds     *int        `bson:"time_limit_seconds,omitempty" json:"time_limit_seconds,omitempty"`
}

// TrueFalseData is the type-specific payload for question_type=true_false.
type TrueFalseData struct {
	CorrectAnswer    bool    `bson:"correct_answer" json:"correct_answer"`
	Explanation      *string `bson:"explanation,omitempty" json:"explanation,omitempty"`
	TimeLimitSeconds *int    `bson:"time_limit_seconds,omitempty" json:"time_limit_seconds,omitempty"`
}

// RubricCriterion is one scored criterion of an essay's optional rubric.
type RubricCriterion struct {
	Criterion string `bson:"criterion" json:"criterion"`
	MaxPoints int     `bson:"max_points" json:"max_points"`
}

// EssayData is the type-specific payload for question_type=essay.
type EssayData struct {
	MinWords int               `bson:"min_words" json:"min_words"`
	MaxWords int               `bson:"max_words" json:"max_words"`
	Rubric   []RubricCriterion `bson:"rubric,omitempty" json:"rubric,omitempty"`
}

// TaxonomySelection is the taxonomy portion of an upsert command: the
// category/tag/quiz/difficulty references the question should be related to.
type TaxonomySelection struct {
	CategoryLevel1  string   `json:"category_level_1,omitempty"`
	CategoryLevel2  string   `json:"category_level_2,omitempty"`
	CategoryLevel3  string   `json:"category_level_3,omitempty"`
	CategoryLevel4  string   `json:"category_level_4,omitempty"`
	Tags            []string `json:"tags,omitempty"`
	Quizzes         []int64  `json:"quizzes,omitempty"`
	DifficultyLevel string   `json:"difficulty_level,omitempty"`
}

// Question is the persisted write-side aggregate. Its natural key is
// (user_id, bank_id, source_question_id); the surrogate id is store-assigned.
type Question struct {
	ID                 string         `bson:"_id" json:"question_id"`
	UserID             int64          `bson:"user_id" json:"user_id"`
	BankID             string         `bson:"bank_id" json:"bank_id"`
	SourceQuestionID   string         `bson:"source_question_id" json:"source_question_id"`
	QuestionType       Type           `bson:"question_type" json:"question_type"`
	Title              string         `bson:"title" json:"title"`
	Content            string         `bson:"content" json:"content"`
	Status             Status         `bson:"status" json:"status"`
	Points             *int           `bson:"points,omitempty" json:"points,omitempty"`
	DisplayOrder       *int           `bson:"display_order,omitempty" json:"display_order,omitempty"`
	SolutionExplanation *string       `bson:"solution_explanation,omitempty" json:"solution_explanation,omitempty"`
	Attachments        []string       `bson:"attachments,omitempty" json:"attachments,omitempty"`
	QuestionSettings   map[string]any `bson:"question_settings,omitempty" json:"question_settings,omitempty"`
	Metadata           map[string]any `bson:"metadata,omitempty" json:"metadata,omitempty"`
	MCQData            *MCQData       `bson:"mcq_data,omitempty" json:"mcq_data,omitempty"`
	TrueFalseData      *TrueFalseData `bson:"true_false_data,omitempty" json:"true_false_data,omitempty"`
	EssayData          *EssayData     `bson:"essay_data,omitempty" json:"essay_data,omitempty"`
	CreatedAt          time.Time      `bson:"created_at" json:"created_at"`
	UpdatedAt          time.Time      `bson:"updated_at" json:"updated_at"`
	PublishedAt        *time.Time     `bson:"published_at,omitempty" json:"published_at,omitempty"`
	ArchivedAt         *time.Time     `bson:"archived_at,omitempty" json:"archived_at,omitempty"`
}

// FilterPlan is C5's resolved, validated query plan.
type FilterPlan struct {
	UserID          int64
	BankID          string
	CategoryLevels  [4]string // index 0 = level 1 ... index 3 = level 4, empty = not filtered
	Tags            []string
	Quizzes         []int64
	DifficultyLevel string
	QuestionType    Type
	Status          Status
	Search          string
	Page            int
	Size            int
	Sort            []SortField
}

// SortField is one whitelisted sort key and its direction.
type SortField struct {
	Field string
	Desc  bool
}

// AllowedSortFields is the whitelist C5 validates requested sort fields against.
var AllowedSortFields = map[string]bool{
	"title":         true,
	"created_at":    true,
	"updated_at":    true,
	"display_order": true,
	"points":        true,
}

// HasTaxonomyFilter reports whether any taxonomy axis is present, which
// determines whether C5 must resolve candidates via the relationship store first.
func (p *FilterPlan) HasTaxonomyFilter() bool {
	for _, c := range p.CategoryLevels {
		if c != "" {
			return true
		}
	}

	return len(p.Tags) > 0 || len(p.Quizzes) > 0 || p.DifficultyLevel != ""
}

// Pagination is the response pagination metadata shape (spec §4.5).
type Pagination struct {
	CurrentPage    int  `json:"current_page"`
	PageSize       int  `json:"page_size"`
	TotalElements  int64 `json:"total_elements"`
	TotalPages     int  `json:"total_pages"`
	IsFirst        bool `json:"is_first"`
	IsLast         bool `json:"is_last"`
	HasNext        bool `json:"has_next"`
	HasPrevious    bool `json:"has_previous"`
}

// Page is the result shape returned by Query.
type Page struct {
	Items      []Question `json:"items"`
	Pagination Pagination `json:"pagination"`
}

// NewPagination derives spec §4.5's pagination metadata from the requested
// zero-indexed page/size and the total element count; shared by every
// repository implementation of Query so the metadata shape never drifts
// between stores. page==0 is the first page; the last page is
// totalPages-1.
func NewPagination(page, size int, total int64) Pagination {
	totalPages := int(total) / size
	if int(total)%size != 0 {
		totalPages++
	}

	return Pagination{
		CurrentPage:   page,
		PageSize:      size,
		TotalElements: total,
		TotalPages:    totalPages,
		IsFirst:       page <= 0,
		IsLast:        page >= totalPages-1,
		HasNext:       page < totalPages-1,
		HasPrevious:   page > 0,
	}
}
